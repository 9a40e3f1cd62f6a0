// Package audio plays pronunciation clips through an external player.
package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

//go:generate mockgen -source=player.go -destination=../mocks/audio/mock_player.go -package=mock_audio

// Player plays a pronunciation clip by URL.
type Player interface {
	Play(ctx context.Context, clipURL string) error
}

// ErrNoPlayer reports that no player command is configured.
var ErrNoPlayer = errors.New("no audio player command configured")

// ExecPlayer runs an external player (mpv, ffplay, afplay, ...) with the
// clip URL appended as the final argument.
type ExecPlayer struct {
	command []string
}

func NewExecPlayer(command []string) *ExecPlayer {
	return &ExecPlayer{command: command}
}

func (p *ExecPlayer) Play(ctx context.Context, clipURL string) error {
	if len(p.command) == 0 {
		return ErrNoPlayer
	}

	args := append(append([]string{}, p.command[1:]...), clipURL)
	cmd := exec.CommandContext(ctx, p.command[0], args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if message := strings.TrimSpace(stderr.String()); message != "" {
			return fmt.Errorf("cmd.Run(%s) > %w: %s", p.command[0], err, message)
		}
		return fmt.Errorf("cmd.Run(%s) > %w", p.command[0], err)
	}
	return nil
}
