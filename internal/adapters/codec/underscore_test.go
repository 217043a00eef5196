package codec

import (
	"testing"

	"github.com/0xcro3dile/mapextract/internal/domain/entities"
	"github.com/stretchr/testify/assert"
)

func TestUnderscoreCodec_Decode(t *testing.T) {
	c := NewUnderscoreCodec()

	tests := []struct {
		name string
		kind entities.FileKind
		x, y string
	}{
		{"map_12_7.dat", entities.KindTile, "12", "7"},
		{"chunkdata_3_-2.dat", entities.KindChunkMeta, "3", "-2"},
		{"map_0_0.bin", entities.KindTile, "0", "0"},
		{"map_x_7.dat", entities.KindTile, "x", "7"},
		{"readme.txt", entities.KindUnrecognized, "", ""},
		{"map_1_2_3.dat", entities.KindUnrecognized, "", ""},
		{"region_1_2.dat", entities.KindUnrecognized, "", ""},
		{"map_1.dat", entities.KindUnrecognized, "", ""},
		{"map_1_2xyé", entities.KindTile, "1", ""},
		{"map", entities.KindUnrecognized, "", ""},
		{"", entities.KindUnrecognized, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := c.Decode(tt.name)
			assert.Equal(t, tt.kind, rec.Kind)
			assert.Equal(t, tt.x, rec.XToken)
			assert.Equal(t, tt.y, rec.YToken)
			assert.Equal(t, tt.name, rec.Name)
		})
	}
}

func TestUnderscoreCodec_ExtensionIsPositional(t *testing.T) {
	c := NewUnderscoreCodec()

	// Only the last four characters are dropped, whatever they are.
	rec := c.Decode("map_12_75.gz")
	assert.Equal(t, entities.KindTile, rec.Kind)
	assert.Equal(t, "12", rec.XToken)
	assert.Equal(t, "7", rec.YToken)

	rec = c.Decode("map_12_7.gz")
	assert.Equal(t, entities.KindTile, rec.Kind)
	assert.Equal(t, "", rec.YToken)

	_, err := rec.Coordinate()
	assert.Error(t, err)

	// "é" is one character: the stem is "map_1_", not "map_1_2".
	rec = c.Decode("map_1_2xyé")
	assert.Equal(t, entities.KindTile, rec.Kind)
	assert.Equal(t, "1", rec.XToken)
	assert.Equal(t, "", rec.YToken)

	_, err = rec.Coordinate()
	assert.Error(t, err)
}
