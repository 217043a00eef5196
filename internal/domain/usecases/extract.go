// Package usecases contains application business rules.
// Clean Architecture: Usecases orchestrate entities and depend on port interfaces.
package usecases

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/0xcro3dile/mapextract/internal/domain/entities"
	"github.com/0xcro3dile/mapextract/internal/domain/ports"
)

// ExtractRequest describes one extraction run.
type ExtractRequest struct {
	SourceDir string
	OutputDir string
	Region    entities.Region
}

// ExtractUseCase copies the files of a region from the source directory to the output directory.
// Single Responsibility: Only scan, filter and copy.
type ExtractUseCase struct {
	codec  ports.FilenameCodec
	store  ports.FileStore
	runLog ports.RunLog
	logger ports.Logger
	now    func() time.Time
}

// NewExtractUseCase creates an ExtractUseCase with injected dependencies.
func NewExtractUseCase(
	codec ports.FilenameCodec,
	store ports.FileStore,
	runLog ports.RunLog,
	logger ports.Logger,
) *ExtractUseCase {
	return &ExtractUseCase{
		codec:  codec,
		store:  store,
		runLog: runLog,
		logger: logger,
		now:    time.Now,
	}
}

// Extract scans req.SourceDir once and copies every file inside the region.
// Any failure aborts the scan; files copied before it stay in the output directory.
func (uc *ExtractUseCase) Extract(ctx context.Context, req ExtractRequest) (*entities.ScanSummary, error) {
	sel := newSelection(req.Region)
	uc.warnInverted(req.Region, sel)

	started := uc.now()

	names, err := uc.store.List(ctx, req.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", req.SourceDir, err)
	}

	summary := &entities.ScanSummary{}
	for _, name := range names {
		rec := uc.codec.Decode(name)

		ok, err := sel.match(rec)
		if err != nil {
			return nil, err
		}
		if !ok {
			summary.Skipped++
			continue
		}

		if err := copyFile(ctx, uc.store, uc.runLog, req, name); err != nil {
			return nil, err
		}

		switch rec.Kind {
		case entities.KindTile:
			summary.TilesCopied++
		case entities.KindChunkMeta:
			summary.ChunksCopied++
		}
	}

	summary.Elapsed = uc.now().Sub(started)
	uc.report(summary)
	return summary, nil
}

// copyFile logs and copies one matched file.
func copyFile(ctx context.Context, store ports.FileStore, runLog ports.RunLog, req ExtractRequest, name string) error {
	runLog.Add(fmt.Sprintf("> Copying %s to %s", name, req.OutputDir))
	if err := store.Copy(ctx, filepath.Join(req.SourceDir, name), req.OutputDir); err != nil {
		return fmt.Errorf("copying %s: %w", name, err)
	}
	return nil
}

func (uc *ExtractUseCase) report(s *entities.ScanSummary) {
	uc.runLog.AddHeader("Summary")
	uc.runLog.Add(fmt.Sprintf("> Completed in %.2f seconds", s.Elapsed.Seconds()))
	uc.runLog.Add(fmt.Sprintf("> Copied %s map files", humanize.Comma(int64(s.TilesCopied))))
	uc.runLog.Add(fmt.Sprintf("> Copied %s meta files", humanize.Comma(int64(s.ChunksCopied))))
}

func (uc *ExtractUseCase) warnInverted(region entities.Region, sel selection) {
	if sel.tile.Inverted() {
		uc.logger.Warn("tile rectangle start lies past stop; no map files will match", "region", region.Name)
	}
	if sel.chunk.Inverted() {
		uc.logger.Warn("chunk rectangle start lies past stop; no meta files will match", "region", region.Name)
	}
}

// selection holds the two rectangles a file is tested against.
type selection struct {
	tile  entities.Rectangle // scaled to the map-file grid
	chunk entities.Rectangle
}

func newSelection(region entities.Region) selection {
	return selection{
		tile:  ScaleTileRect(region.TileRect()),
		chunk: region.ChunkRect(),
	}
}

// match reports whether rec falls inside the rectangle for its kind.
func (s selection) match(rec entities.FileRecord) (bool, error) {
	var rect entities.Rectangle
	switch rec.Kind {
	case entities.KindTile:
		rect = s.tile
	case entities.KindChunkMeta:
		rect = s.chunk
	default:
		return false, nil
	}

	c, err := rec.Coordinate()
	if err != nil {
		return false, err
	}
	return rect.Contains(c), nil
}
