package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const defaultPresignExpiry = 15 * time.Minute

// MediaPresigner hands out presigned PUT URLs so heavy media can go
// straight to the bucket instead of through the API. Every grant is tied
// to one generated object key and the content type implied by the
// extension, so it cannot be replayed for an arbitrary object.
type MediaPresigner struct {
	client *s3.PresignClient
	bucket string
	expiry time.Duration
}

// NewMediaPresigner reads the S3_* / AWS_* environment and builds a
// presign client. S3_PRESIGN_EXPIRY_MINUTES overrides the grant lifetime.
func NewMediaPresigner() (*MediaPresigner, error) {
	bucket := os.Getenv("S3_BUCKET_NAME")
	if bucket == "" {
		return nil, errors.New("S3_BUCKET_NAME is not set")
	}

	cfg, err := config.LoadDefaultConfig(
		context.Background(),
		config.WithRegion(os.Getenv("AWS_REGION")),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			os.Getenv("AWS_ACCESS_KEY_ID"), os.Getenv("AWS_SECRET_ACCESS_KEY"), "")),
	)
	if err != nil {
		return nil, err
	}

	endpoint := os.Getenv("S3_ENDPOINT")
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = os.Getenv("S3_USE_PATH_STYLE") == "true"
	})

	expiry := defaultPresignExpiry
	if minutes, err := strconv.Atoi(os.Getenv("S3_PRESIGN_EXPIRY_MINUTES")); err == nil && minutes > 0 {
		expiry = time.Duration(minutes) * time.Minute
	}

	return &MediaPresigner{
		client: s3.NewPresignClient(client),
		bucket: bucket,
		expiry: expiry,
	}, nil
}

// PresignUpload validates the filename against the upload allow-list and
// returns the object key together with a PUT URL bound to it.
func (p *MediaPresigner) PresignUpload(ctx context.Context, originalFilename, category string) (objectKey, uploadURL string, err error) {
	objectKey, contentType, err := MediaObjectKey(originalFilename, category)
	if err != nil {
		return "", "", err
	}

	request, err := p.client.PresignPutObject(ctx,
		&s3.PutObjectInput{
			Bucket:      aws.String(p.bucket),
			Key:         aws.String(objectKey),
			ContentType: aws.String(contentType),
		},
		s3.WithPresignExpires(p.expiry),
	)
	if err != nil {
		return "", "", err
	}

	return objectKey, request.URL, nil
}

// MediaObjectKey builds the bucket key for a direct upload. The extension
// must be on the upload allow-list; the category and stem go through the
// same sanitizing as disk uploads so the key is a clean two-segment path.
func MediaObjectKey(originalFilename, category string) (objectKey, contentType string, err error) {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	mimes, ok := allowedExtensions[ext]
	if !ok {
		return "", "", ErrExtensionBlocked
	}

	category = SanitizeCategory(category)
	if category == "" {
		category = "media"
	}

	stem := sanitizeStem(strings.TrimSuffix(filepath.Base(originalFilename), filepath.Ext(originalFilename)))
	objectKey = fmt.Sprintf("%s/%d_%s_%s%s", category, time.Now().Unix(), uuid.NewString()[:8], stem, ext)

	return objectKey, mimes[0], nil
}
