package s3

import (
	"context"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Store implements export.Store for S3. Uploads stream through the
// multipart uploader, so artifact size is not bounded by memory.
type Store struct {
	uploader *manager.Uploader
	bucket   string
	prefix   string
}

// NewStore creates a new S3 artifact store.
// rootPrefix is prepended to all keys (e.g. "distmats/subject-01/").
func NewStore(client *s3.Client, bucket, rootPrefix string) *Store {
	return &Store{
		uploader: manager.NewUploader(client),
		bucket:   bucket,
		prefix:   rootPrefix,
	}
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Put uploads the object under prefix/name.
func (s *Store) Put(ctx context.Context, name string, r io.Reader, size int64) error {
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
		Body:   r,
	})
	return err
}
