// Package filestore provides file listing and copying adapters.
// Clean Architecture: Adapter implementing ports.FileStore on top of afero.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrSameFile is returned when the copy destination is the source file itself.
var ErrSameFile = errors.New("source and destination are the same file")

// AferoStore implements ports.FileStore over any afero filesystem.
type AferoStore struct {
	fs afero.Fs
}

// NewAferoStore creates a store backed by fs.
func NewAferoStore(fs afero.Fs) *AferoStore {
	return &AferoStore{fs: fs}
}

// NewOsStore creates a store backed by the real filesystem.
func NewOsStore() *AferoStore {
	return NewAferoStore(afero.NewOsFs())
}

// List returns the names of the regular files directly inside dir, sorted by name.
func (s *AferoStore) List(ctx context.Context, dir string) ([]string, error) {
	infos, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		names = append(names, info.Name())
	}
	return names, nil
}

// Copy copies src into dstDir under its base name. An existing file is overwritten.
// dstDir must already exist.
func (s *AferoStore) Copy(ctx context.Context, src, dstDir string) error {
	dirInfo, err := s.fs.Stat(dstDir)
	if err != nil {
		return err
	}
	if !dirInfo.IsDir() {
		return fmt.Errorf("%s is not a directory", dstDir)
	}

	in, err := s.fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	dst := filepath.Join(dstDir, filepath.Base(src))
	if s.sameFile(src, dst, info) {
		return fmt.Errorf("%w: %s", ErrSameFile, src)
	}

	out, err := s.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// sameFile reports whether dst names src, by path or, on the OS filesystem, by inode.
func (s *AferoStore) sameFile(src, dst string, srcInfo os.FileInfo) bool {
	if filepath.Clean(src) == filepath.Clean(dst) {
		return true
	}
	dstInfo, err := s.fs.Stat(dst)
	if err != nil {
		return false
	}
	return os.SameFile(srcInfo, dstInfo)
}
