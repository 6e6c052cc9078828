package levels

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mkarpows/sokotui/internal/sokoban"
)

// maxFetchBytes caps a remote collection download. Level files are tiny
// text; anything bigger is not a level file.
const maxFetchBytes = 1 << 20

var fetchClient = &http.Client{Timeout: 30 * time.Second}

// Fetch downloads and parses a collection from a URL.
func Fetch(ctx context.Context, url string) (*sokoban.Collection, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("levels: bad URL %s: %w", url, err)
	}

	resp, err := fetchClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("levels: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("levels: fetch %s: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes+1))
	if err != nil {
		return nil, fmt.Errorf("levels: fetch %s: %w", url, err)
	}
	if len(data) > maxFetchBytes {
		return nil, fmt.Errorf("levels: fetch %s: response too large", url)
	}

	col, err := sokoban.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", url, err)
	}
	return col, nil
}
