package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxRemoteManifest caps how much of a remote manifest is read.
const maxRemoteManifest = 4 << 20

func loadHTTP(ctx context.Context, client *http.Client, url string, timeout time.Duration) ([]byte, error) {
	if client == nil {
		return nil, errors.New("manifest loader: http client is not configured")
	}
	if url == "" {
		return nil, errors.New("manifest loader: url is required")
	}

	reqCtx := ctx
	var cancel context.CancelFunc
	if timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("manifest loader: fetch %s: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteManifest+1))
	if err != nil {
		return nil, fmt.Errorf("manifest loader: read %s: %w", url, err)
	}
	if len(data) > maxRemoteManifest {
		return nil, fmt.Errorf("manifest loader: %s exceeds %d bytes", url, maxRemoteManifest)
	}
	return data, nil
}
