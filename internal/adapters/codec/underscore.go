// Package codec provides filename codec adapters.
// Clean Architecture: Adapter implementing ports.FilenameCodec.
package codec

import (
	"strings"

	"github.com/0xcro3dile/mapextract/internal/domain/entities"
)

const (
	extLen    = 4 // ".dat", ".bin", ...
	separator = "_"
	tokens    = 3
)

// UnderscoreCodec decodes names of the form <kind>_<X>_<Y>.<ext>.
type UnderscoreCodec struct {
	kinds map[string]entities.FileKind
}

// NewUnderscoreCodec creates a codec for "map" tile files and "chunkdata" metadata files.
func NewUnderscoreCodec() *UnderscoreCodec {
	return &UnderscoreCodec{
		kinds: map[string]entities.FileKind{
			"map":       entities.KindTile,
			"chunkdata": entities.KindChunkMeta,
		},
	}
}

// Decode classifies name. The extension is assumed to be four characters long,
// dot included, and is dropped without being inspected. Characters are runes, not bytes.
func (c *UnderscoreCodec) Decode(name string) entities.FileRecord {
	rec := entities.FileRecord{Kind: entities.KindUnrecognized, Name: name}

	stem := ""
	if r := []rune(name); len(r) > extLen {
		stem = string(r[:len(r)-extLen])
	}

	parts := strings.Split(stem, separator)
	if len(parts) != tokens {
		return rec
	}

	kind, ok := c.kinds[parts[0]]
	if !ok {
		return rec
	}

	rec.Kind = kind
	rec.XToken = parts[1]
	rec.YToken = parts[2]
	return rec
}
