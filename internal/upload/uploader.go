// Package upload stores payment-receipt images in an S3-compatible bucket
// and returns their public URLs. It works against AWS S3, MinIO or any
// other S3-compatible endpoint.
package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Config holds the bucket connection settings.
type Config struct {
	Endpoint      string
	Region        string
	Bucket        string
	AccessKey     string
	SecretKey     string
	UsePathStyle  bool
	PublicBaseURL string
}

// objectPutter is the slice of the S3 client the uploader needs.
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Uploader struct {
	store      objectPutter
	bucket     string
	publicBase string
	logger     *log.Logger
}

// New dials the configured S3-compatible endpoint.
func New(cfg Config, logger *log.Logger) (*Uploader, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("storage bucket is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, errors.New("storage credentials are required")
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey, cfg.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	publicBase := strings.TrimSuffix(cfg.PublicBaseURL, "/")
	if publicBase == "" {
		publicBase = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, region)
	}

	return &Uploader{store: client, bucket: cfg.Bucket, publicBase: publicBase, logger: logger}, nil
}

// ReceiptKey generates a unique object key for a receipt upload.
func ReceiptKey() string {
	return fmt.Sprintf("receipts/%d-%s.jpg", time.Now().UnixMilli(), uuid.NewString())
}

// SaveReceipt compresses the image and stores it under a fresh key,
// returning the publicly retrievable URL.
func (u *Uploader) SaveReceipt(ctx context.Context, r io.Reader) (string, error) {
	data, err := Compress(r)
	if err != nil {
		return "", err
	}

	key := ReceiptKey()
	_, err = u.store.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/jpeg"),
	})
	if err != nil {
		return "", fmt.Errorf("store receipt: %w", err)
	}

	if u.logger != nil {
		u.logger.Printf("stored receipt %s (%d bytes)", key, len(data))
	}
	return u.publicBase + "/" + key, nil
}
