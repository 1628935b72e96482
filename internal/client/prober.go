package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ImageProber verifies that a direct image URL resolves to an image, the way
// a browser img element reports a load error.
type ImageProber struct {
	client HTTPClient
}

func NewImageProber(httpClient HTTPClient) *ImageProber {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &ImageProber{client: httpClient}
}

func (p *ImageProber) Probe(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 512))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("image URL returned status %d", resp.StatusCode)
	}
	contentType := resp.Header.Get("Content-Type")
	if contentType != "" && !strings.HasPrefix(contentType, "image/") {
		return fmt.Errorf("URL is not an image: %s", contentType)
	}
	return nil
}
