package usecases

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/0xcro3dile/mapextract/internal/domain/entities"
	"github.com/0xcro3dile/mapextract/internal/domain/ports"
)

// FollowUseCase keeps copying region files as they are written into the source directory.
// Events are handled one at a time on the caller's goroutine.
type FollowUseCase struct {
	codec   ports.FilenameCodec
	store   ports.FileStore
	watcher ports.FileWatcher
	runLog  ports.RunLog
	logger  ports.Logger
}

// NewFollowUseCase creates a FollowUseCase with injected dependencies.
func NewFollowUseCase(
	codec ports.FilenameCodec,
	store ports.FileStore,
	watcher ports.FileWatcher,
	runLog ports.RunLog,
	logger ports.Logger,
) *FollowUseCase {
	return &FollowUseCase{
		codec:   codec,
		store:   store,
		watcher: watcher,
		runLog:  runLog,
		logger:  logger,
	}
}

// Follow blocks until ctx is done or a copy fails. The returned summary
// counts the files copied while following; Elapsed is left zero.
func (uc *FollowUseCase) Follow(ctx context.Context, req ExtractRequest) (*entities.ScanSummary, error) {
	sel := newSelection(req.Region)

	defer uc.watcher.Stop()

	events, err := uc.watcher.Watch(ctx, req.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("watching %s: %w", req.SourceDir, err)
	}

	uc.logger.Info("following source directory", "dir", req.SourceDir, "region", req.Region.Name)

	summary := &entities.ScanSummary{}
	for event := range events {
		if event.Operation == ports.FileDeleted {
			continue
		}

		name := filepath.Base(event.Path)
		rec := uc.codec.Decode(name)
		ok, err := sel.match(rec)
		if err != nil {
			return summary, err
		}
		if !ok {
			summary.Skipped++
			continue
		}

		if err := copyFile(ctx, uc.store, uc.runLog, req, name); err != nil {
			return summary, err
		}

		switch rec.Kind {
		case entities.KindTile:
			summary.TilesCopied++
		case entities.KindChunkMeta:
			summary.ChunksCopied++
		}
	}

	return summary, nil
}
