package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileKV stores key-value pairs as a JSON object in a single file.
type FileKV struct {
	path string
}

func NewFileKV(path string) *FileKV {
	return &FileKV{path: path}
}

func (kv *FileKV) Get(key string) (string, bool, error) {
	values, err := kv.read()
	if err != nil {
		return "", false, fmt.Errorf("kv.read > %w", err)
	}
	value, ok := values[key]
	return value, ok, nil
}

func (kv *FileKV) Set(key, value string) error {
	values, err := kv.read()
	if err != nil {
		return fmt.Errorf("kv.read > %w", err)
	}
	values[key] = value

	contents, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("json.Marshal > %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(kv.path), 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}
	if err := os.WriteFile(kv.path, contents, 0o600); err != nil {
		return fmt.Errorf("os.WriteFile > %w", err)
	}
	return nil
}

func (kv *FileKV) read() (map[string]string, error) {
	contents, err := os.ReadFile(kv.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile > %w", err)
	}

	var values map[string]string
	if err := json.Unmarshal(contents, &values); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}
	if values == nil {
		values = map[string]string{}
	}
	return values, nil
}
