/*
Package suggest fetches ranked autocomplete suggestions from the Google
suggest endpoint.

A single GET per keyword, no retries and no caching of results. The
endpoint answers with a JSON array whose first element echoes the query
and whose second element is the ranked suggestion list:

	["hel", ["hello", "hello world", "helium"], ...]

Failures are tagged with an ErrorKind so the caller can report a short
message and carry on with an empty result.
*/
package suggest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
	"github.com/orenagassy/google-autocomplete-scraper/pkg/config"
)

// Fetcher issues autocomplete lookups against a single endpoint.
type Fetcher struct {
	client   *http.Client
	baseURL  string
	clientID string
}

// NewFetcher builds a Fetcher from the HTTP settings.
func NewFetcher(cfg config.HTTPConfig) *Fetcher {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Fetcher{
		client:   &http.Client{Timeout: timeout},
		baseURL:  cfg.BaseURL,
		clientID: cfg.Client,
	}
}

// Suggest fetches the ranked suggestion list for keyword in the given
// language. The keyword is percent-encoded, the echoed query element of
// the response is discarded. Errors are always *Error values.
func (f *Fetcher) Suggest(ctx context.Context, keyword, lang string) ([]string, error) {
	params := url.Values{}
	params.Set("client", f.clientID)
	params.Set("q", keyword)
	params.Set("hl", lang)
	u := f.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, &Error{Kind: ErrTransport, Err: err}
	}

	log.Debugf("GET %s", u)
	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, &Error{Kind: ErrTimeout, Err: err}
		}
		return nil, &Error{Kind: ErrTransport, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{Kind: ErrTransport, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, &Error{Kind: ErrTimeout, Err: err}
		}
		return nil, &Error{Kind: ErrTransport, Err: err}
	}
	log.Debugf("Took [ %v ] for keyword '%s'", time.Since(start), keyword)

	suggestions, err := parseResponse(body)
	if err != nil {
		return nil, &Error{Kind: ErrFormat, Err: err}
	}
	return suggestions, nil
}

// parseResponse extracts the suggestion array from the raw body.
func parseResponse(body []byte) ([]string, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(body, &elements); err != nil {
		return nil, fmt.Errorf("decoding response array: %w", err)
	}
	if len(elements) < 2 {
		return nil, fmt.Errorf("response array has %d element(s), want at least 2", len(elements))
	}

	var suggestions []string
	if err := json.Unmarshal(elements[1], &suggestions); err != nil {
		return nil, fmt.Errorf("decoding suggestion list: %w", err)
	}
	return suggestions, nil
}

// isTimeout reports whether err is a deadline style failure.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}
