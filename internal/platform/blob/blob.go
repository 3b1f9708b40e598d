// Copyright (c) 2026 Clipstream. All rights reserved.

// Package blob handles durable storage of user-uploaded media (videos,
// thumbnails, channel banners).
//
// # Architecture
//
// The Store interface decouples domain services from the storage backend.
// The production implementation writes to an S3-compatible bucket
// (Cloudflare R2); tests substitute an in-memory fake.
package blob

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/clipstream/clipstream/internal/platform/apperr"
	"github.com/clipstream/clipstream/internal/platform/constants"
	"github.com/clipstream/clipstream/pkg/uuid"
)

// Store persists media objects and returns their public URL.
type Store interface {
	// Put uploads the object under key and returns its public URL.
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)

	// Delete removes the object stored under key. Missing objects are not
	// an error.
	Delete(ctx context.Context, key string) error
}

// Accepted upload content types.
var (
	imageContentTypes = map[string]string{
		"image/jpeg": ".jpg",
		"image/jpg":  ".jpg",
		"image/png":  ".png",
	}
	videoContentTypes = map[string]string{
		"video/mp4":  ".mp4",
		"video/webm": ".webm",
		"video/ogg":  ".ogv",
	}
)

// Upload describes a validated multipart file ready for storage.
type Upload struct {
	Key         string
	ContentType string
	Size        int64
	File        multipart.File
}

// Close releases the underlying temp file.
func (u *Upload) Close() error {
	if u.File == nil {
		return nil
	}
	return u.File.Close()
}

// Image extracts and validates an image upload from the multipart form.
//
// Constraints: jpeg/jpg/png content type, at most 5 MB. Violations are
// returned as field-level validation errors on the given form field.
func Image(r *http.Request, field, keyPrefix string) (*Upload, error) {
	return formFile(r, field, keyPrefix, imageContentTypes, constants.MaxImageBytes,
		"Invalid file type. Allowed types are jpeg, png, and jpg.",
		"File size must be less than 5MB.")
}

// Video extracts and validates a video upload from the multipart form.
//
// Constraints: mp4/webm/ogg content type, at most 10 MB.
func Video(r *http.Request, field, keyPrefix string) (*Upload, error) {
	return formFile(r, field, keyPrefix, videoContentTypes, constants.MaxVideoBytes,
		"Invalid file type. Allowed types are mp4, webm, and ogg.",
		"File size must be less than 10MB.")
}

// formFile performs the shared multipart extraction and constraint checks.
//
// Type and size are enforced here, before any handler logic or storage
// access runs.
func formFile(r *http.Request, field, keyPrefix string, accepted map[string]string, maxBytes int64, typeMsg, sizeMsg string) (*Upload, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, apperr.ValidationFailed("Validation failed", apperr.FieldError{
			Field:   field,
			Message: field + " file is required",
		})
	}

	contentType := sniffContentType(file, header)

	ext, ok := accepted[contentType]
	if !ok {
		_ = file.Close()
		return nil, apperr.ValidationFailed("Validation failed", apperr.FieldError{
			Field:   field,
			Message: typeMsg,
		})
	}

	if header.Size > maxBytes {
		_ = file.Close()
		return nil, apperr.ValidationFailed("Validation failed", apperr.FieldError{
			Field:   field,
			Message: sizeMsg,
		})
	}

	return &Upload{
		Key:         keyPrefix + "/" + uuid.New() + ext,
		ContentType: contentType,
		Size:        header.Size,
		File:        file,
	}, nil
}

// sniffContentType determines the upload's content type.
//
// The declared Content-Type header is preferred; when absent, the file
// extension decides. The reader position is left at the start.
func sniffContentType(file multipart.File, header *multipart.FileHeader) string {
	declared := header.Header.Get("Content-Type")
	if declared != "" && declared != "application/octet-stream" {
		return strings.ToLower(strings.TrimSpace(declared))
	}

	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".mp4":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	case ".ogv", ".ogg":
		return "video/ogg"
	}

	buffer := make([]byte, 512)
	n, _ := file.Read(buffer)
	_, _ = file.Seek(0, io.SeekStart)
	return http.DetectContentType(buffer[:n])
}
