// Package ports defines interfaces for external dependencies.
// Clean Architecture: These are the boundaries - usecases depend on these abstractions,
// not concrete implementations. Adapters implement these interfaces.
package ports

import (
	"context"

	"github.com/0xcro3dile/mapextract/internal/domain/entities"
)

// FilenameCodec turns a filename into a typed record.
// Unrecognized names are not errors; they decode to entities.KindUnrecognized.
type FilenameCodec interface {
	Decode(name string) entities.FileRecord
}

// FileStore lists and copies files.
type FileStore interface {
	// List returns the names of the regular files directly inside dir.
	List(ctx context.Context, dir string) ([]string, error)

	// Copy copies src into dstDir under its original name, overwriting any existing file.
	Copy(ctx context.Context, src, dstDir string) error
}

// RunLog is the operator-facing, append-only record of a run.
type RunLog interface {
	// Add appends a plain line.
	Add(line string)

	// AddHeader appends a section header.
	AddHeader(title string)

	// Timestamp appends the current time.
	Timestamp()

	// EnableTreeView renders "> " item lines as tree branches.
	EnableTreeView()

	// Lines returns the rendered log.
	Lines() []string

	// Save persists the log. It returns the written path, or "" when saving is disabled.
	Save() (string, error)
}

// RegionPrompter asks the operator which region to use.
// It returns the raw answer; interpreting it is the resolver's job.
type RegionPrompter interface {
	Prompt(ctx context.Context, regions []entities.Region) (string, error)
}

// FileWatcher monitors a directory for changes.
type FileWatcher interface {
	// Watch starts monitoring the directory and emits events.
	Watch(ctx context.Context, dir string) (<-chan FileEvent, error)

	// Stop stops the watcher.
	Stop() error
}

// FileEvent represents a file system change.
type FileEvent struct {
	Path      string
	Operation FileOperation
}

// FileOperation is the type of file change.
type FileOperation int

const (
	FileCreated FileOperation = iota
	FileModified
	FileDeleted
)

// Logger is the structured diagnostic logger.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}
