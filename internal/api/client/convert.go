package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
)

// Converted is a classified workbook returned by the server.
type Converted struct {
	Filename string
	Data     []byte
}

// Convert uploads a workbook and returns the classified result. filename
// is sent as the upload's name and determines the download name.
func (c *Client) Convert(ctx context.Context, filename string, r io.Reader) (*Converted, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("creating form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("reading workbook: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart body: %w", err)
	}

	data, header, err := c.send(ctx, http.MethodPost, "/api/v1/convert", mw.FormDataContentType(), &body)
	if err != nil {
		return nil, err
	}

	return &Converted{
		Filename: attachmentName(header.Get("Content-Disposition")),
		Data:     data,
	}, nil
}

// attachmentName extracts the filename parameter. mime.ParseMediaType
// decodes the RFC 2231 filename* form.
func attachmentName(disposition string) string {
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}
	return params["filename"]
}
