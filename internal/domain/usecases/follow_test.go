package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xcro3dile/mapextract/internal/adapters/codec"
	"github.com/0xcro3dile/mapextract/internal/domain/ports"
	"github.com/0xcro3dile/mapextract/internal/infrastructure/logger"
)

// mockWatcher implements ports.FileWatcher for testing
type mockWatcher struct {
	events  []ports.FileEvent
	watchFn func(dir string) error
	stopped bool
}

func (m *mockWatcher) Watch(ctx context.Context, dir string) (<-chan ports.FileEvent, error) {
	if m.watchFn != nil {
		if err := m.watchFn(dir); err != nil {
			return nil, err
		}
	}
	ch := make(chan ports.FileEvent, len(m.events))
	for _, e := range m.events {
		ch <- e
	}
	close(ch)
	return ch, nil
}

func (m *mockWatcher) Stop() error {
	m.stopped = true
	return nil
}

func TestFollow_CopiesMatchingEvents(t *testing.T) {
	watcher := &mockWatcher{events: []ports.FileEvent{
		{Path: "/world/map_5_5.dat", Operation: ports.FileCreated},
		{Path: "/world/map_20_20.dat", Operation: ports.FileCreated},
		{Path: "/world/chunkdata_1_1.dat", Operation: ports.FileModified},
		{Path: "/world/map_6_6.dat", Operation: ports.FileDeleted},
	}}
	store := &mockStore{}
	runLog := &mockRunLog{}
	uc := NewFollowUseCase(codec.NewUnderscoreCodec(), store, watcher, runLog, logger.NewDiscard())

	summary, err := uc.Follow(context.Background(), ExtractRequest{SourceDir: "/world", OutputDir: "/out", Region: spawnRegion()})

	require.NoError(t, err)
	assert.Equal(t, []string{"/world/map_5_5.dat", "/world/chunkdata_1_1.dat"}, store.copied)
	assert.Equal(t, 1, summary.TilesCopied)
	assert.Equal(t, 1, summary.ChunksCopied)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, []string{
		"> Copying map_5_5.dat to /out",
		"> Copying chunkdata_1_1.dat to /out",
	}, runLog.lines)
	assert.True(t, watcher.stopped)
}

func TestFollow_WatchError(t *testing.T) {
	denied := errors.New("permission denied")
	watcher := &mockWatcher{watchFn: func(string) error { return denied }}
	uc := NewFollowUseCase(codec.NewUnderscoreCodec(), &mockStore{}, watcher, &mockRunLog{}, logger.NewDiscard())

	_, err := uc.Follow(context.Background(), ExtractRequest{SourceDir: "/world", OutputDir: "/out", Region: spawnRegion()})

	assert.ErrorIs(t, err, denied)
}

func TestFollow_ParseErrorStops(t *testing.T) {
	watcher := &mockWatcher{events: []ports.FileEvent{
		{Path: "/world/map_1_1.dat", Operation: ports.FileCreated},
		{Path: "/world/chunkdata_a_b.dat", Operation: ports.FileCreated},
		{Path: "/world/map_2_2.dat", Operation: ports.FileCreated},
	}}
	store := &mockStore{}
	uc := NewFollowUseCase(codec.NewUnderscoreCodec(), store, watcher, &mockRunLog{}, logger.NewDiscard())

	summary, err := uc.Follow(context.Background(), ExtractRequest{SourceDir: "/world", OutputDir: "/out", Region: spawnRegion()})

	assert.Error(t, err)
	assert.Equal(t, 1, summary.TilesCopied)
	assert.Len(t, store.copied, 1)
}
