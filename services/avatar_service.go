package services

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/tournoi-uno/webapp/storage"
)

// AvatarService copies an externally hosted profile photo into our own
// object storage and returns the public URL of the copy.
type AvatarService interface {
	Mirror(ctx context.Context, userID int, photoURL string) (string, error)
}

type avatarService struct {
	client   *resty.Client
	uploader storage.FileUploader
}

func NewAvatarService(uploader storage.FileUploader) AvatarService {
	return &avatarService{
		client:   resty.New(),
		uploader: uploader,
	}
}

func (s *avatarService) Mirror(ctx context.Context, userID int, photoURL string) (string, error) {
	resp, err := s.client.R().SetContext(ctx).Get(photoURL)
	if err != nil {
		return "", fmt.Errorf("fetching avatar: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("unexpected status code fetching avatar: %d", resp.StatusCode())
	}

	contentType := resp.Header().Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	key := fmt.Sprintf("avatars/%d%s", userID, extensionFor(contentType))
	result, err := s.uploader.Upload(ctx, key, contentType, bytes.NewReader(resp.Body()))
	if err != nil {
		return "", fmt.Errorf("uploading avatar: %w", err)
	}
	return result.Location, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}
