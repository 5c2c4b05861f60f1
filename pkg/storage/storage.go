// Package storage writes accepted uploads to local disk. Stored rows only keep
// the public /uploads/... path returned here.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"job-portal-backend/pkg/logger"
)

const PublicPrefix = "/uploads"

const DefaultMaxBytes int64 = 5 * 1024 * 1024

type RejectReason string

const (
	ReasonUnsupportedType RejectReason = "unsupported_type"
	ReasonTooLarge        RejectReason = "too_large"
)

// Accepted is a file written to disk.
type Accepted struct {
	Field string
	Path  string // public path, e.g. /uploads/resumes/<uuid>.pdf
	MIME  string
	Size  int64
	file  string
}

type Rejected struct {
	Field   string
	Reason  RejectReason
	Message string
}

// Outcome holds exactly one of Accepted or Rejected.
type Outcome struct {
	Accepted *Accepted
	Rejected *Rejected
}

type Local struct {
	root     string
	maxBytes int64
}

func NewLocal(root string, maxBytes int64) (*Local, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Local{root: root, maxBytes: maxBytes}, nil
}

func (s *Local) Root() string    { return s.root }
func (s *Local) MaxBytes() int64 { return s.maxBytes }

// Accept validates one uploaded file against the policy and writes it to disk.
// A non-nil error means an I/O failure, not a rejection.
func (s *Local) Accept(fh *multipart.FileHeader, p Policy) (Outcome, error) {
	if fh.Size > s.maxBytes {
		return s.reject(p, ReasonTooLarge, fmt.Sprintf("%s exceeds the %d MB limit", p.Field, s.maxBytes>>20)), nil
	}

	f, err := fh.Open()
	if err != nil {
		return Outcome{}, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, s.maxBytes+1))
	if err != nil {
		return Outcome{}, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return s.reject(p, ReasonTooLarge, fmt.Sprintf("%s exceeds the %d MB limit", p.Field, s.maxBytes>>20)), nil
	}

	mt := mimetype.Detect(data)
	ext, ok := p.check(fh.Filename, mt)
	if !ok {
		return s.reject(p, ReasonUnsupportedType, fmt.Sprintf("%s of type %s is not allowed", p.Field, mt.String())), nil
	}

	mimeType := mt.String()
	if p.Compress && (mt.Is("image/jpeg") || mt.Is("image/png")) {
		if compressed, err := compressImage(data, maxImageDimension, jpegQuality); err == nil {
			data, ext, mimeType = compressed, ".jpg", "image/jpeg"
		} else {
			logger.Log.Warn("Image compression failed, storing original", zap.String("field", p.Field), zap.Error(err))
		}
	}

	dir := filepath.Join(s.root, p.Dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Outcome{}, fmt.Errorf("create upload dir: %w", err)
	}
	name := uuid.NewString() + ext
	full := filepath.Join(dir, name)
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return Outcome{}, fmt.Errorf("write upload: %w", err)
	}

	return Outcome{Accepted: &Accepted{
		Field: p.Field,
		Path:  path.Join(PublicPrefix, p.Dir, name),
		MIME:  mimeType,
		Size:  int64(len(data)),
		file:  full,
	}}, nil
}

// Remove deletes an accepted file. Missing files are ignored.
func (s *Local) Remove(a *Accepted) error {
	if a == nil || a.file == "" {
		return nil
	}
	if err := os.Remove(a.file); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Local) reject(p Policy, reason RejectReason, msg string) Outcome {
	return Outcome{Rejected: &Rejected{Field: p.Field, Reason: reason, Message: msg}}
}
