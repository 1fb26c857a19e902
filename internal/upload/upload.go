// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package upload receives single-file multipart uploads.
//
// [Uploader.Route] returns two stages. The first streams the multipart
// body, stores the file sent under the configured field with a
// collision-resistant name in a per-day partition and records it on the
// request. The second either calls a completion handler or answers with
// the stored file's URL and extension.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"path/filepath"

	"github.com/MKhiriev/go-web-scaffold/internal/app"
	"github.com/MKhiriev/go-web-scaffold/internal/config"
	"github.com/MKhiriev/go-web-scaffold/internal/logger"
	"github.com/MKhiriev/go-web-scaffold/internal/utils"
	"github.com/MKhiriev/go-web-scaffold/internal/web"
	"github.com/MKhiriev/go-web-scaffold/models"
)

// maxFieldSize caps each non-file form field.
const maxFieldSize = 1 << 20

// File is the stored upload.
type File struct {
	// Field is the multipart field the file was sent under.
	Field string
	// OriginalName is the client supplied file name.
	OriginalName string
	// Ext is the original extension including the dot, or "".
	Ext string
	// ContentType is the part's declared media type.
	ContentType string
	// Partition is the "YYYYMMDD" directory the file was stored in.
	Partition string
	// Name is the generated file name.
	Name string

	Object
}

// Record is attached to the request by the first stage.
type Record struct {
	// File is nil when the request carried no file.
	File *File
	// Fields holds the non-file form values in arrival order.
	Fields url.Values
}

type recordKey struct{}

// FromRequest returns the record of the first stage, or nil when the
// stage did not run.
func FromRequest(r *http.Request) *Record {
	rec, _ := r.Context().Value(recordKey{}).(*Record)
	return rec
}

// Uploader implements the upload route.
type Uploader struct {
	storage Storage
	field   string
	maxSize int64
	names   *utils.NameGenerator
}

// NewUploader returns an Uploader storing files sent under
// cfg.Upload.Field into storage.
func NewUploader(cfg *config.StructuredConfig, storage Storage) *Uploader {
	return &Uploader{
		storage: storage,
		field:   cfg.Upload.Field,
		maxSize: cfg.Upload.MaxSize,
		names:   utils.NewNameGenerator(),
	}
}

// NewStorage builds the storage backend selected by cfg.Upload.Storage.
// Object storage buckets are created when missing.
func NewStorage(ctx context.Context, cfg *config.StructuredConfig) (Storage, error) {
	switch cfg.Upload.Storage {
	case config.StorageMinio:
		s, err := NewMinioStorage(cfg.Upload.Minio, cfg.Upload.Dir)
		if err != nil {
			return nil, err
		}
		if err = s.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return s, nil
	default:
		return NewDiskStorage(cfg.UploadRoot(), "/"+path.Join(config.UploadTempDir, cfg.Upload.Dir)), nil
	}
}

// Route returns the two stages of an upload route. done may be nil.
func (u *Uploader) Route(done web.HandlerFunc) (web.Middleware, web.HandlerFunc) {
	return u.Receive, u.respond(done)
}

// Receive is the first stage. Requests that are not multipart pass
// through with an empty record.
func (u *Uploader) Receive(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if u.maxSize > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, u.maxSize)
		}

		rec, err := u.receive(r)
		if err != nil {
			web.Fail(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), recordKey{}, rec)))
	})
}

func (u *Uploader) receive(r *http.Request) (rec *Record, err error) {
	rec = &Record{Fields: url.Values{}}

	mr, err := r.MultipartReader()
	if err != nil {
		return rec, nil
	}

	ctx := r.Context()
	defer func() {
		if err != nil && rec.File != nil {
			if removeErr := u.storage.Remove(ctx, rec.File.Location); removeErr != nil {
				logger.FromRequest(r).Err(removeErr).Msg("error removing partial upload")
			}
		}
	}()

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return rec, nil
		}
		if err != nil {
			return rec, classify(err)
		}

		if part.FileName() == "" {
			value, err := io.ReadAll(io.LimitReader(part, maxFieldSize))
			if err != nil {
				return rec, classify(err)
			}
			rec.Fields.Add(part.FormName(), string(value))
			continue
		}

		if part.FormName() != u.field {
			return rec, web.NewError(http.StatusBadRequest, app.MsgUnexpectedFileField,
				fmt.Errorf("%w: %q", ErrUnexpectedField, part.FormName()))
		}
		if rec.File != nil {
			return rec, web.NewError(http.StatusBadRequest, app.MsgTooManyFiles, ErrTooManyFiles)
		}

		rec.File, err = u.store(ctx, part.FormName(), part.FileName(), part.Header.Get("Content-Type"), part)
		if err != nil {
			return rec, classify(err)
		}
	}
}

func (u *Uploader) store(ctx context.Context, field, filename, contentType string, src io.Reader) (*File, error) {
	ext := filepath.Ext(filepath.Base(filename))
	partition, name := u.names.Generate(ext)

	obj, err := u.storage.Store(ctx, partition, name, contentType, src)
	if err != nil {
		return nil, err
	}

	return &File{
		Field:        field,
		OriginalName: filename,
		Ext:          ext,
		ContentType:  contentType,
		Partition:    partition,
		Name:         name,
		Object:       obj,
	}, nil
}

// classify maps body read failures onto client errors.
func classify(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return web.NewError(http.StatusRequestEntityTooLarge, app.MsgPayloadTooLarge, err)
	}

	var webErr *web.Error
	if errors.As(err, &webErr) {
		return err
	}

	if errors.Is(err, io.ErrUnexpectedEOF) {
		return web.NewError(http.StatusBadRequest, app.MsgMalformedBody, err)
	}
	return fmt.Errorf("error receiving upload: %w", err)
}

func (u *Uploader) respond(done web.HandlerFunc) web.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		if done != nil {
			return done(w, r)
		}

		rec := FromRequest(r)
		if rec == nil || rec.File == nil {
			return web.NewError(http.StatusBadRequest, app.MsgNoFileUploaded, ErrNoFile)
		}

		return utils.WriteJSON(w, http.StatusOK, models.UploadResponse{
			URL: rec.File.URL,
			Ext: rec.File.Ext,
		})
	}
}
