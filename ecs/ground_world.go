package ecs

import (
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// Collision categories for ground layer shapes.
const (
	CategoryGround uint = 1 << iota
	CategoryDecor
)

const (
	DefaultTileY         = -0.05
	DefaultTileThickness = 0.1
)

type cell struct{ x, z int }

// GroundWorld owns the Chipmunk space holding the walkable floor. Tiles are
// unit boxes on the X/Z plane; height is a single slab shared by all tiles.
type GroundWorld struct {
	space     *cp.Space
	tileY     float64
	thickness float64

	shapes map[cell]*cp.Shape
	filter cp.ShapeFilter
}

// NewGroundWorld creates an empty ground layer whose tiles are centred at
// tileY.
func NewGroundWorld(tileY, thickness float64) *GroundWorld {
	if thickness <= 0 {
		thickness = DefaultTileThickness
	}
	space := cp.NewSpace()
	space.Iterations = 10

	return &GroundWorld{
		space:     space,
		tileY:     tileY,
		thickness: thickness,
		shapes:    make(map[cell]*cp.Shape),
		filter:    cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, CategoryGround),
	}
}

// Space returns the underlying Chipmunk space.
func (gw *GroundWorld) Space() *cp.Space {
	if gw == nil {
		return nil
	}
	return gw.space
}

func (gw *GroundWorld) TileY() float64 { return gw.tileY }

// Top is the walkable surface height.
func (gw *GroundWorld) Top() float64 { return gw.tileY + gw.thickness/2 }

// AddTile registers a 1x1 footprint centred on (x, z). Tiles added with a
// category other than CategoryGround are stored but never support the cuboid.
func (gw *GroundWorld) AddTile(x, z int, e Entity, category uint) {
	if gw == nil || gw.space == nil {
		return
	}
	gw.RemoveTile(x, z)

	fx, fz := float64(x), float64(z)
	bb := cp.BB{L: fx - 0.5, B: fz - 0.5, R: fx + 0.5, T: fz + 0.5}
	shape := cp.NewBox2(gw.space.StaticBody, bb, 0)
	shape.SetFriction(0.8)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, category, cp.ALL_CATEGORIES))
	shape.UserData = e
	gw.space.AddShape(shape)
	gw.shapes[cell{x, z}] = shape
}

// RemoveTile drops the tile at (x, z), if any.
func (gw *GroundWorld) RemoveTile(x, z int) bool {
	if gw == nil {
		return false
	}
	shape, ok := gw.shapes[cell{x, z}]
	if !ok {
		return false
	}
	gw.space.RemoveShape(shape)
	delete(gw.shapes, cell{x, z})
	return true
}

// Clear removes every tile.
func (gw *GroundWorld) Clear() {
	if gw == nil {
		return
	}
	for c := range gw.shapes {
		gw.RemoveTile(c.x, c.z)
	}
}

func (gw *GroundWorld) Len() int {
	if gw == nil {
		return 0
	}
	return len(gw.shapes)
}

// TileAt returns the entity of the ground tile under world point (x, z).
func (gw *GroundWorld) TileAt(x, z float64) (Entity, bool) {
	if gw == nil || gw.space == nil {
		return 0, false
	}
	info := gw.space.PointQueryNearest(cp.Vector{X: x, Y: z}, 0, gw.filter)
	if info == nil || info.Shape == nil {
		return 0, false
	}
	e, ok := info.Shape.UserData.(Entity)
	return e, ok
}

// CastDown reports whether a ray from origin straight down, maxDist long,
// reaches a ground tile.
func (gw *GroundWorld) CastDown(origin mgl64.Vec3, maxDist float64) bool {
	if gw == nil || maxDist < 0 || math.IsNaN(maxDist) {
		return false
	}
	top := gw.Top()
	bottom := gw.tileY - gw.thickness/2
	if origin.Y() < bottom || origin.Y()-maxDist > top {
		return false
	}
	_, ok := gw.TileAt(origin.X(), origin.Z())
	return ok
}

// LogTiles dumps the registered footprint, for debugging level builds.
func (gw *GroundWorld) LogTiles() {
	if gw == nil {
		return
	}
	log.Printf("GroundWorld: %d tiles at y=%.2f", len(gw.shapes), gw.tileY)
}
