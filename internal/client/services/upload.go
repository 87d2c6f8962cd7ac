package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/portfolio/internal/models"
	"github.com/dmitrijs2005/portfolio/internal/netx"
)

// UploadImage stores an image in object storage through a presigned URL and
// returns the public URL to put into a profile or project.
func (a *Admin) UploadImage(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	if filepath.Base(filename) == "." || len(data) == 0 {
		return "", errors.New("nothing to upload")
	}

	ticket, err := a.client.PresignUpload(ctx, models.UploadRequest{
		FileName:    filepath.Base(filename),
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("presign error: %w", err)
	}

	if err := netx.UploadToPresignedURL(ctx, a.hc, ticket.UploadURL, contentType, data); err != nil {
		return "", fmt.Errorf("upload error: %w", err)
	}

	a.log.Info(ctx, "image uploaded", "file", filename, "url", ticket.PublicURL)
	return ticket.PublicURL, nil
}
