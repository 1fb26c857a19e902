package upload

//go:generate mockgen -source=interfaces.go -destination=../mock/upload_storage_mock.go -package=mock

import (
	"context"
	"io"
)

// Object describes a stored file.
type Object struct {
	// Location is the disk path or the object key of the file.
	Location string
	// URL is where clients can find the file and is returned as "url" by
	// the default upload response. [DiskStorage] gives a path relative to
	// the server root; [MinioStorage] gives an absolute bucket URL instead.
	URL string
	// Size is the number of bytes stored.
	Size int64
}

// Storage persists uploaded files. Implementations must tolerate
// concurrent calls with distinct names.
type Storage interface {
	// Store streams src into the partition directory under name.
	Store(ctx context.Context, partition, name, contentType string, src io.Reader) (Object, error)

	// Remove deletes a file previously returned by Store.
	Remove(ctx context.Context, location string) error
}
