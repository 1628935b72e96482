package client

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"tiffin-pos-frontend/internal/domain"
)

// Menu create/update use multipart form data so the backend can accept file
// uploads. A non-empty ImageURL takes precedence: the file part is never
// written alongside it.
func encodeMenuForm(form domain.MenuForm) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	fields := map[string]string{
		"name":        form.Name,
		"price":       strconv.FormatFloat(form.Price, 'f', 2, 64),
		"description": form.Description,
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", name, err)
		}
	}

	if form.ImageURL != "" {
		if err := writer.WriteField("image_url", form.ImageURL); err != nil {
			return nil, "", fmt.Errorf("write field image_url: %w", err)
		}
	} else if form.Image != nil {
		part, err := writer.CreateFormFile("image", form.Image.Filename)
		if err != nil {
			return nil, "", fmt.Errorf("create file part: %w", err)
		}
		if _, err := part.Write(form.Image.Content); err != nil {
			return nil, "", fmt.Errorf("write file part: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize multipart body: %w", err)
	}
	return buf, writer.FormDataContentType(), nil
}

func (c *Client) submitMenuForm(ctx context.Context, method, path string, form domain.MenuForm) error {
	body, contentType, err := encodeMenuForm(form)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	_, err = c.do(req)
	return err
}

func (c *Client) CreateMenuItem(ctx context.Context, form domain.MenuForm) error {
	return c.submitMenuForm(ctx, http.MethodPost, "/api/menu", form)
}

func (c *Client) UpdateMenuItem(ctx context.Context, id int, form domain.MenuForm) error {
	return c.submitMenuForm(ctx, http.MethodPut, "/api/menu/"+strconv.Itoa(id), form)
}

func (c *Client) DeleteMenuItem(ctx context.Context, id int) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/menu/"+strconv.Itoa(id), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	_, err = c.do(req)
	return err
}
