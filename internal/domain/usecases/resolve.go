package usecases

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/0xcro3dile/mapextract/internal/domain/entities"
)

var (
	// ErrSelectionFormat is returned when the selection is not an integer.
	ErrSelectionFormat = errors.New("incorrect region selection")
	// ErrSelectionRange is returned when the selection is not a configured region index.
	ErrSelectionRange = errors.New("region out of bounds")
)

// ResolveRegion interprets the operator's answer as an index into regions.
func ResolveRegion(selection string, regions []entities.Region) (int, entities.Region, error) {
	idx, err := strconv.Atoi(strings.TrimSpace(selection))
	if err != nil {
		return 0, entities.Region{}, fmt.Errorf("%w: %q", ErrSelectionFormat, selection)
	}
	if idx < 0 || idx >= len(regions) {
		return 0, entities.Region{}, fmt.Errorf("%w: %d not in [0, %d)", ErrSelectionRange, idx, len(regions))
	}
	return idx, regions[idx], nil
}
