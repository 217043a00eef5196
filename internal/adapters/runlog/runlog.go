// Package runlog provides the operator-facing run log.
// Clean Architecture: Adapter implementing ports.RunLog.
package runlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/0xcro3dile/mapextract/internal/domain/ports"
)

// DefaultWidth is the header width when Options.Width is zero.
const DefaultWidth = 65

const (
	itemPrefix = "> "
	branch     = "├─ "
	lastBranch = "└─ "
)

type entryKind int

const (
	entryLine entryKind = iota
	entryHeader
	entryTimestamp
)

type entry struct {
	kind entryKind
	text string
}

// Options configures a Log.
type Options struct {
	Width  int    // header width, DefaultWidth when zero
	Save   bool   // write the log to Dir on Save
	Dir    string // directory for saved logs
	Fs     afero.Fs
	Logger ports.Logger // every rendered entry is echoed here at info level
	Now    func() time.Time
}

// Log is an in-memory, append-only run log.
type Log struct {
	opts    Options
	entries []entry
	tree    bool
}

// New creates an empty log.
func New(opts Options) *Log {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Log{opts: opts}
}

// Add appends a plain line.
func (l *Log) Add(line string) {
	l.append(entry{kind: entryLine, text: line})
}

// AddHeader appends a section header.
func (l *Log) AddHeader(title string) {
	l.append(entry{kind: entryHeader, text: title})
}

// Timestamp appends the current time.
func (l *Log) Timestamp() {
	l.append(entry{kind: entryTimestamp, text: l.opts.Now().Format("2006-01-02 15:04:05")})
}

// EnableTreeView renders "> " lines as tree branches from now on.
func (l *Log) EnableTreeView() {
	l.tree = true
}

func (l *Log) append(e entry) {
	l.entries = append(l.entries, e)
	if l.opts.Logger != nil {
		l.opts.Logger.Info(l.renderPlain(e))
	}
}

// Lines returns the rendered log.
func (l *Log) Lines() []string {
	lines := make([]string, len(l.entries))
	for i, e := range l.entries {
		if l.tree && e.kind == entryLine && strings.HasPrefix(e.text, itemPrefix) {
			lines[i] = l.renderBranch(i)
			continue
		}
		lines[i] = l.renderPlain(e)
	}
	return lines
}

func (l *Log) renderPlain(e entry) string {
	switch e.kind {
	case entryHeader:
		return l.header(e.text)
	case entryTimestamp:
		return "[" + e.text + "]"
	default:
		return e.text
	}
}

// renderBranch draws item i as the last branch when no item directly follows it.
func (l *Log) renderBranch(i int) string {
	text := strings.TrimPrefix(l.entries[i].text, itemPrefix)
	next := i + 1
	if next < len(l.entries) && l.entries[next].kind == entryLine &&
		strings.HasPrefix(l.entries[next].text, itemPrefix) {
		return branch + text
	}
	return lastBranch + text
}

func (l *Log) header(title string) string {
	h := "=== " + title + " "
	if pad := l.opts.Width - len([]rune(h)); pad > 0 {
		h += strings.Repeat("=", pad)
	}
	return h
}

// String returns the rendered log, one entry per line.
func (l *Log) String() string {
	return strings.Join(l.Lines(), "\n") + "\n"
}

// Save writes the rendered log to Options.Dir. It returns "" when saving is disabled.
func (l *Log) Save() (string, error) {
	if !l.opts.Save {
		return "", nil
	}
	if err := l.opts.Fs.MkdirAll(l.opts.Dir, 0o755); err != nil {
		return "", fmt.Errorf("creating log directory: %w", err)
	}

	name := fmt.Sprintf("mapextract-%s.log", l.opts.Now().Format("20060102-150405"))
	path := filepath.Join(l.opts.Dir, name)
	if err := afero.WriteFile(l.opts.Fs, path, []byte(l.String()), os.FileMode(0o644)); err != nil {
		return "", fmt.Errorf("writing log: %w", err)
	}
	return path, nil
}
