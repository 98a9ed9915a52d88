// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package fetch

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/apex/log"
	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	awsx "github.com/staranto/sgdatago/internal/aws"
)

// S3GetObjectAPI is the part of the S3 client the fetcher uses.
type S3GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Fetcher fetches s3://bucket/key URLs. When Client is nil one is built on
// first use from the shell's AWS configuration with retries disabled.
type S3Fetcher struct {
	Client   S3GetObjectAPI
	Endpoint string
	Options  []awsx.Option
}

// NewS3Fetcher returns an S3Fetcher that resolves its client lazily.
func NewS3Fetcher() *S3Fetcher {
	return &S3Fetcher{}
}

// ParseS3URL splits s3://bucket/key into its bucket and key.
func ParseS3URL(rawURL string) (bucket, key string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse URL %q: %w", rawURL, err)
	}
	if !strings.EqualFold(u.Scheme, "s3") {
		return "", "", fmt.Errorf("%w %q in %s", ErrUnsupportedScheme, u.Scheme, rawURL)
	}
	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("s3 URL must be s3://bucket/key, got %s", rawURL)
	}
	return bucket, key, nil
}

// Fetch implements Fetcher.
func (f *S3Fetcher) Fetch(ctx context.Context, rawURL, dest string, onProgress ProgressFunc) (int64, error) {
	bucket, key, err := ParseS3URL(rawURL)
	if err != nil {
		return 0, err
	}

	client, err := f.client(ctx)
	if err != nil {
		return 0, err
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get S3 object: %w", err)
	}
	defer out.Body.Close()
	log.Debugf("GetObject s3://%s/%s", bucket, key)

	total := int64(-1)
	if out.ContentLength != nil {
		total = *out.ContentLength
	}
	return writeFile(dest, out.Body, total, onProgress)
}

func (f *S3Fetcher) client(ctx context.Context) (S3GetObjectAPI, error) {
	if f.Client != nil {
		return f.Client, nil
	}

	opts := append([]awsx.Option{awsx.WithoutRetries()}, f.Options...)
	cfg, err := awsx.LoadAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var optFns []func(*s3.Options)
	if f.Endpoint != "" {
		optFns = append(optFns, awsx.WithS3Endpoint(f.Endpoint))
	}
	f.Client = awsx.NewS3(cfg, optFns...)
	return f.Client, nil
}
