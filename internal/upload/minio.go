// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package upload

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"

	"github.com/MKhiriev/go-web-scaffold/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStorage writes files to an S3 compatible bucket. Object keys are
// "<prefix>/<partition>/<name>".
type MinioStorage struct {
	client  *minio.Client
	bucket  string
	prefix  string
	baseURL string
}

// NewMinioStorage builds a client for cfg. No request is sent until
// [MinioStorage.EnsureBucket] or Store is called.
func NewMinioStorage(cfg config.Minio, prefix string) (*MinioStorage, error) {
	host, secure, err := normaliseEndpoint(cfg.Endpoint)
	if err != nil {
		return nil, err
	}

	client, err := minio.New(host, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating minio client: %w", err)
	}

	return &MinioStorage{
		client:  client,
		bucket:  cfg.Bucket,
		prefix:  prefix,
		baseURL: client.EndpointURL().String(),
	}, nil
}

// EnsureBucket creates the bucket when it does not exist.
func (s *MinioStorage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("error checking bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}

	if err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("error creating bucket %s: %w", s.bucket, err)
	}
	return nil
}

func (s *MinioStorage) Store(ctx context.Context, partition, name, contentType string, src io.Reader) (Object, error) {
	key := s.objectKey(partition, name)

	info, err := s.client.PutObject(ctx, s.bucket, key, src, -1, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return Object{}, fmt.Errorf("error storing object %s: %w", key, err)
	}

	return Object{
		Location: key,
		URL:      s.objectURL(key),
		Size:     info.Size,
	}, nil
}

func (s *MinioStorage) Remove(ctx context.Context, location string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, location, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("error removing object %s: %w", location, err)
	}
	return nil
}

func (s *MinioStorage) objectKey(partition, name string) string {
	return path.Join(s.prefix, partition, name)
}

// objectURL is absolute, unlike the root-relative paths of DiskStorage.
func (s *MinioStorage) objectURL(key string) string {
	return s.baseURL + "/" + path.Join(s.bucket, key)
}

// normaliseEndpoint accepts "host:port" (plain http) or an http(s) URL
// without a path and returns the host and whether TLS is used.
func normaliseEndpoint(raw string) (host string, secure bool, err error) {
	if raw == "" {
		return "", false, fmt.Errorf("%w: empty endpoint", ErrInvalidEndpoint)
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return raw, false, nil
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidEndpoint, u.Scheme)
	}
	if u.Path != "" && u.Path != "/" {
		return "", false, fmt.Errorf("%w: endpoint must not contain a path", ErrInvalidEndpoint)
	}

	return u.Host, u.Scheme == "https", nil
}
