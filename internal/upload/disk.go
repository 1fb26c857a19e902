// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
)

// DiskStorage writes files below root and reports them under urlPrefix.
// Partition directories are created on first use.
type DiskStorage struct {
	root      string
	urlPrefix string
}

// NewDiskStorage returns a DiskStorage writing to root. urlPrefix is the
// root-relative URL path of root, for example "/temp/upload".
func NewDiskStorage(root, urlPrefix string) *DiskStorage {
	return &DiskStorage{root: root, urlPrefix: urlPrefix}
}

func (s *DiskStorage) Store(ctx context.Context, partition, name, contentType string, src io.Reader) (Object, error) {
	dir := filepath.Join(s.root, partition)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Object{}, fmt.Errorf("error creating upload directory: %w", err)
	}

	location := filepath.Join(dir, name)
	f, err := os.OpenFile(location, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return Object{}, fmt.Errorf("error creating upload file: %w", err)
	}

	size, err := io.Copy(f, src)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return Object{}, errors.Join(fmt.Errorf("error writing upload file: %w", err), os.Remove(location))
	}

	return Object{
		Location: location,
		URL:      path.Join(s.urlPrefix, partition, name),
		Size:     size,
	}, nil
}

func (s *DiskStorage) Remove(ctx context.Context, location string) error {
	if err := os.Remove(location); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error removing upload file: %w", err)
	}
	return nil
}
