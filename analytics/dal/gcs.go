package dal

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/pajkicdj/POC-user-product-flow/analytics/domain"
)

const csvContentType = "text/csv"

// GCSArchive copies written exports into a Cloud Storage bucket.
type GCSArchive struct {
	bucket string
	opts   []option.ClientOption
}

func NewGCSArchive(bucket string, opts ...option.ClientOption) *GCSArchive {
	return &GCSArchive{bucket: bucket, opts: opts}
}

// Upload copies the local file at path to gs://bucket/<base name> and returns the
// object URI.
func (a *GCSArchive) Upload(ctx context.Context, path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: failed to open %s: %w", domain.ErrIO, path, err)
	}

	defer src.Close()

	gcs, err := storage.NewClient(ctx, a.opts...)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create storage client: %w", domain.ErrIO, err)
	}

	defer gcs.Close()

	objectName := filepath.Base(path)

	objWriter := gcs.Bucket(a.bucket).Object(objectName).NewWriter(ctx)
	objWriter.ContentType = csvContentType

	if _, err := io.Copy(objWriter, src); err != nil {
		objWriter.Close()
		return "", fmt.Errorf("%w: failed to upload %s: %w", domain.ErrIO, objectName, err)
	}

	if err := objWriter.Close(); err != nil {
		return "", fmt.Errorf("%w: failed to upload %s: %w", domain.ErrIO, objectName, err)
	}

	return fmt.Sprintf("gs://%s/%s", a.bucket, objectName), nil
}
