// Package storage keeps uploaded attachments on the local filesystem.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"weiyue/internal/shared/id"
)

var (
	ErrInvalidName = errors.New("invalid file name")
	ErrNotFound    = errors.New("file not found")
	ErrTooLarge    = errors.New("file exceeds the upload limit")
)

var allowedExtensions = map[string]bool{
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
	".png": true, ".jpg": true, ".jpeg": true, ".txt": true, ".zip": true,
}

// LocalStore saves files under a base directory. Names handed out by Save are
// the only names Open accepts.
type LocalStore struct {
	fs       afero.Fs
	maxBytes int64
}

// NewLocalStore roots the store at dir, creating it when missing.
func NewLocalStore(dir string, maxUploadMB int) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return newLocalStore(afero.NewBasePathFs(afero.NewOsFs(), dir), maxUploadMB), nil
}

func newLocalStore(fs afero.Fs, maxUploadMB int) *LocalStore {
	if maxUploadMB <= 0 {
		maxUploadMB = 16
	}
	return &LocalStore{fs: fs, maxBytes: int64(maxUploadMB) << 20}
}

// MaxBytes is the largest accepted upload.
func (s *LocalStore) MaxBytes() int64 {
	return s.maxBytes
}

// Save stores r under a generated name keeping the extension of original.
func (s *LocalStore) Save(original string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(original))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: extension %q not allowed", ErrInvalidName, ext)
	}

	name := id.NewFileName(ext)
	f, err := s.fs.OpenFile(name, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	n, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	closeErr := f.Close()
	if err == nil && n > s.maxBytes {
		err = ErrTooLarge
	}
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = s.fs.Remove(name)
		return "", err
	}

	return name, nil
}

// Open returns the stored file. The caller closes it.
func (s *LocalStore) Open(name string) (afero.File, error) {
	if !validName(name) {
		return nil, ErrInvalidName
	}
	f, err := s.fs.Open(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}

func validName(name string) bool {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}
