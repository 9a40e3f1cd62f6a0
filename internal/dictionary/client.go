package dictionary

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/okanda/wordbook/internal/dictionary/freedict"
	"resty.dev/v3"
)

//go:generate mockgen -source=client.go -destination=../mocks/dictionary/mock_client.go -package=mock_dictionary

// Lookuper looks up a single word in a dictionary source.
type Lookuper interface {
	Lookup(ctx context.Context, word string) (freedict.Entry, error)
}

// Client queries the free dictionary API over HTTPS.
type Client struct {
	httpClient *resty.Client
}

// NewClient creates a Client against baseURL, e.g.
// https://api.dictionaryapi.dev/api/v2/entries/en. A zero timeout disables
// the request deadline.
func NewClient(baseURL string, timeout time.Duration) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &Client{httpClient: client}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// Lookup fetches the entry for word. The caller is expected to pass a
// trimmed, lowercased, non-empty word; the client only URL-escapes it.
// Missing words are reported by wrapping ErrNotFound.
func (client *Client) Lookup(ctx context.Context, word string) (freedict.Entry, error) {
	var entries []freedict.Entry
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetResult(&entries).
		Get("/" + url.PathEscape(word))
	if err != nil {
		return freedict.Entry{}, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.StatusCode() == http.StatusNotFound {
		return freedict.Entry{}, fmt.Errorf("%q: %w", word, ErrNotFound)
	}
	if response.IsError() {
		return freedict.Entry{}, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}
	if len(entries) == 0 {
		// the API occasionally returns 200 with no entries
		return freedict.Entry{}, fmt.Errorf("%q: %w", word, ErrNotFound)
	}

	slog.Default().Debug("dictionary lookup",
		"word", word,
		"entries", len(entries),
		"status", response.StatusCode(),
	)
	return entries[0], nil
}
