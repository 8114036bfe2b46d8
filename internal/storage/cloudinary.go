// AngelaMos | 2026
// cloudinary.go

package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/primebid/auction-api/internal/config"
)

// Asset is the stored object handle persisted alongside the owning record.
// PublicID is what Destroy needs; URL is what clients render.
type Asset struct {
	PublicID string
	URL      string
}

type Store interface {
	Upload(ctx context.Context, file io.Reader, folder string) (*Asset, error)
	Destroy(ctx context.Context, publicID string) error
}

type cloudinaryStore struct {
	client *cloudinary.Cloudinary
}

func NewCloudinaryStore(cfg config.StorageConfig) (Store, error) {
	client, err := cloudinary.NewFromURL(cfg.CloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}

	client.Config.URL.Secure = true

	return &cloudinaryStore{client: client}, nil
}

func (s *cloudinaryStore) Upload(
	ctx context.Context,
	file io.Reader,
	folder string,
) (*Asset, error) {
	resp, err := s.client.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       folder,
		ResourceType: "image",
	})
	if err != nil {
		return nil, fmt.Errorf("upload asset: %w", err)
	}

	if resp.Error.Message != "" {
		return nil, fmt.Errorf("upload asset: %s", resp.Error.Message)
	}

	return &Asset{
		PublicID: resp.PublicID,
		URL:      resp.SecureURL,
	}, nil
}

func (s *cloudinaryStore) Destroy(ctx context.Context, publicID string) error {
	resp, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return fmt.Errorf("destroy asset: %w", err)
	}

	if resp.Result != "ok" && resp.Result != "not found" {
		return fmt.Errorf("destroy asset: unexpected result %q", resp.Result)
	}

	return nil
}

var allowedImageTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/webp": {},
}

// AllowedImageType reports whether the declared content type is one the
// platform accepts for profile pictures and payment screenshots.
func AllowedImageType(contentType string) bool {
	_, ok := allowedImageTypes[contentType]
	return ok
}
