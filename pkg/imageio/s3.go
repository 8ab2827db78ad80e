package imageio

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// UploadTimeout bounds a single object upload
const UploadTimeout = 10 * time.Second

// S3Config holds the object storage settings
type S3Config struct {
	AccessKey string
	SecretKey string
	Endpoint  string
	Region    string
	Bucket    string
}

// S3Uploader publishes encoded frames to a bucket
type S3Uploader struct {
	client s3iface.S3API
	bucket string
}

// NewS3Uploader creates an uploader using static credentials and path-style addressing
func NewS3Uploader(cfg S3Config) (*S3Uploader, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("imageio: no S3 bucket configured")
	}

	awsConfig := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("imageio: creating S3 session: %w", err)
	}

	return NewS3UploaderWithClient(s3.New(sess), cfg.Bucket), nil
}

// NewS3UploaderWithClient wraps an existing S3 client
func NewS3UploaderWithClient(client s3iface.S3API, bucket string) *S3Uploader {
	return &S3Uploader{client: client, bucket: bucket}
}

// Upload stores data under key
func (u *S3Uploader) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("imageio: uploading %s: %w", key, err)
	}
	return nil
}

// Bucket returns the target bucket name
func (u *S3Uploader) Bucket() string {
	return u.bucket
}
