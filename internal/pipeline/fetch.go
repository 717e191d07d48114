package pipeline

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const fetchTimeout = 2 * time.Minute

// isRemote reports whether the input names an HTTP(S) URL rather than a
// local file.
func isRemote(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

// fetchRemote downloads a remote document to a temporary file and returns
// its path with a cleanup func. The cleanup func must be called on every
// exit path of the caller.
func fetchRemote(ctx context.Context, url string) (string, func(), error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", nil, fmt.Errorf("building request for %s: %w", url, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("downloading %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil, fmt.Errorf("downloading %s: status %d", url, resp.StatusCode)
	}

	tmpDir, err := os.MkdirTemp("", "citegrab-fetch-*")
	if err != nil {
		return "", nil, fmt.Errorf("creating download temp dir: %w", err)
	}
	cleanup := func() { os.RemoveAll(tmpDir) }

	outPath := filepath.Join(tmpDir, "download.pdf")
	f, err := os.Create(outPath)
	if err != nil {
		cleanup()
		return "", nil, fmt.Errorf("creating download file: %w", err)
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		cleanup()
		return "", nil, fmt.Errorf("saving %s: %w", url, err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("saving %s: %w", url, err)
	}

	return outPath, cleanup, nil
}
