// Package entities contains core business entities.
// These are the enterprise business rules - pure domain objects with no external dependencies.
package entities

import (
	"fmt"
	"strconv"
	"time"
)

// TileGridFactor is the number of raw tile addresses spanned by one map file along each axis.
const TileGridFactor = 10

// Coordinate is an integer (X, Y) pair. Whether it is a tile or chunk position
// depends on the rectangle it is tested against.
type Coordinate struct {
	X int
	Y int
}

// Rectangle is an axis-aligned rectangle, closed on both axes.
type Rectangle struct {
	Start Coordinate
	End   Coordinate
}

// Contains reports whether c lies inside r, edges included.
// A rectangle with Start > End on either axis contains nothing.
func (r Rectangle) Contains(c Coordinate) bool {
	return c.X >= r.Start.X && c.X <= r.End.X &&
		c.Y >= r.Start.Y && c.Y <= r.End.Y
}

// Inverted reports whether Start lies past End on some axis.
func (r Rectangle) Inverted() bool {
	return r.Start.X > r.End.X || r.Start.Y > r.End.Y
}

// Corner is one end of a region: a raw tile address plus a chunk address.
type Corner struct {
	TileX  int
	TileY  int
	ChunkX int
	ChunkY int
}

// Region is a named selection covering tile space and chunk space at once.
type Region struct {
	Name  string
	Start Corner
	Stop  Corner
}

// TileRect returns the raw (unscaled) tile rectangle of the region.
func (r Region) TileRect() Rectangle {
	return Rectangle{
		Start: Coordinate{X: r.Start.TileX, Y: r.Start.TileY},
		End:   Coordinate{X: r.Stop.TileX, Y: r.Stop.TileY},
	}
}

// ChunkRect returns the chunk rectangle of the region.
func (r Region) ChunkRect() Rectangle {
	return Rectangle{
		Start: Coordinate{X: r.Start.ChunkX, Y: r.Start.ChunkY},
		End:   Coordinate{X: r.Stop.ChunkX, Y: r.Stop.ChunkY},
	}
}

// FileKind classifies a directory entry.
type FileKind int

const (
	KindUnrecognized FileKind = iota
	KindTile
	KindChunkMeta
)

func (k FileKind) String() string {
	switch k {
	case KindTile:
		return "tile"
	case KindChunkMeta:
		return "chunk-metadata"
	default:
		return "unrecognized"
	}
}

// FileRecord is the decoded form of a filename.
// Coordinate tokens stay as text until they are compared.
type FileRecord struct {
	Kind   FileKind
	XToken string
	YToken string
	Name   string
}

// Recognized reports whether the record names a tile or chunk-metadata file.
func (f FileRecord) Recognized() bool {
	return f.Kind != KindUnrecognized
}

// Coordinate interprets the X and Y tokens as integers.
func (f FileRecord) Coordinate() (Coordinate, error) {
	x, err := strconv.Atoi(f.XToken)
	if err != nil {
		return Coordinate{}, &CoordinateParseError{File: f.Name, Token: f.XToken, Err: err}
	}
	y, err := strconv.Atoi(f.YToken)
	if err != nil {
		return Coordinate{}, &CoordinateParseError{File: f.Name, Token: f.YToken, Err: err}
	}
	return Coordinate{X: x, Y: y}, nil
}

// CoordinateParseError reports a filename coordinate that is not an integer.
type CoordinateParseError struct {
	File  string
	Token string
	Err   error
}

func (e *CoordinateParseError) Error() string {
	return fmt.Sprintf("parsing coordinate %q in %s: %v", e.Token, e.File, e.Err)
}

func (e *CoordinateParseError) Unwrap() error {
	return e.Err
}

// ScanSummary is the result of one extraction run.
type ScanSummary struct {
	Elapsed      time.Duration
	TilesCopied  int
	ChunksCopied int
	Skipped      int // unrecognized or out of bounds
}

// Copied returns the total number of files copied.
func (s ScanSummary) Copied() int {
	return s.TilesCopied + s.ChunksCopied
}
