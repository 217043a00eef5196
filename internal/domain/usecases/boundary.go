package usecases

import "github.com/0xcro3dile/mapextract/internal/domain/entities"

// InBoundary reports whether (x, y) lies inside the closed rectangle
// [startX, endX] x [startY, endY].
func InBoundary(x, y, startX, startY, endX, endY int) bool {
	return entities.Rectangle{
		Start: entities.Coordinate{X: startX, Y: startY},
		End:   entities.Coordinate{X: endX, Y: endY},
	}.Contains(entities.Coordinate{X: x, Y: y})
}

// ScaleTile converts a raw tile address to the map-file grid, rounding toward negative infinity.
func ScaleTile(v int) int {
	q := v / entities.TileGridFactor
	if v%entities.TileGridFactor != 0 && v < 0 {
		q--
	}
	return q
}

// ScaleTileRect converts every corner value of a raw tile rectangle with ScaleTile.
func ScaleTileRect(r entities.Rectangle) entities.Rectangle {
	return entities.Rectangle{
		Start: entities.Coordinate{X: ScaleTile(r.Start.X), Y: ScaleTile(r.Start.Y)},
		End:   entities.Coordinate{X: ScaleTile(r.End.X), Y: ScaleTile(r.End.Y)},
	}
}
