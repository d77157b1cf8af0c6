package system

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/bloxroll/common"
	"github.com/milk9111/bloxroll/cuboid"
	"github.com/milk9111/bloxroll/ecs"
	"github.com/milk9111/bloxroll/ecs/component"
	"golang.org/x/image/colornames"
)

// RenderSystem draws the level top-down: tiles as squares, the cuboid as its
// footprint. Height is shown by shading and size.
type RenderSystem struct {
	camEntity ecs.Entity
	Debug     bool
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

type view struct {
	center mgl64.Vec2
	zoom   float64
	sw, sh float64
}

func (v view) project(x, z float64) (float64, float64) {
	return v.sw/2 + (x-v.center.X())*v.zoom, v.sh/2 - (z-v.center.Y())*v.zoom
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil {
		return
	}

	if !w.IsAlive(r.camEntity) {
		if camEntity, ok := w.First(component.CameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}

	v := view{zoom: 48, sw: float64(screen.Bounds().Dx()), sh: float64(screen.Bounds().Dy())}
	if cam, ok := ecs.Get(w, r.camEntity, component.CameraComponent); ok {
		v.center = cam.Center
		if cam.Zoom > 0 {
			v.zoom = cam.Zoom
		}
	}

	entities := w.Query(component.TransformComponent.Kind(), component.RenderLayerComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li, _ := ecs.Get(w, entities[i], component.RenderLayerComponent)
		lj, _ := ecs.Get(w, entities[j], component.RenderLayerComponent)
		if li.Index != lj.Index {
			return li.Index < lj.Index
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent)
		if tile, ok := ecs.Get(w, e, component.TileComponent); ok {
			cr, _ := ecs.Get(w, e, component.CrumbleComponent)
			r.drawTile(screen, v, t, tile, cr)
			continue
		}
		if look, ok := ecs.Get(w, e, component.AppearanceComponent); ok {
			r.drawBody(screen, v, t, look)
		}
	}

	if r.Debug {
		r.drawDebug(w, screen)
	}
}

func (r *RenderSystem) drawTile(screen *ebiten.Image, v view, t *component.Transform, tile *component.Tile, cr *component.Crumble) {
	if cr != nil && cr.Broken {
		return
	}
	// tiles fade in as they rise
	depth := tile.RestY - t.Position.Y()
	alpha := common.Clamp(1-depth/4, 0, 1)
	if alpha == 0 {
		return
	}
	c := tile.Color
	if cr != nil && cr.On {
		c = colornames.White
	}
	c.A = uint8(float64(c.A) * alpha)

	size := v.zoom * 0.94
	x, y := v.project(t.Position.X(), t.Position.Z())
	vector.FillRect(screen, float32(x-size/2), float32(y-size/2), float32(size), float32(size), c, false)
	vector.StrokeRect(screen, float32(x-size/2), float32(y-size/2), float32(size), float32(size), 1, colornames.Dimgray, false)
}

func (r *RenderSystem) drawBody(screen *ebiten.Image, v view, t *component.Transform, look *component.Appearance) {
	pose := cuboid.Pose{Position: t.Position, Rotation: t.Rotation}
	if pose.Rotation.Len() == 0 {
		pose.Rotation = mgl64.QuatIdent()
	}
	center, ext := pose.Bounds(t.Scale.Mul(0.5))

	// shrink as it falls away from the camera
	scale := common.Clamp(1+center.Y()*0.08, 0.15, 1.5)
	hw, hd := ext.X()*v.zoom*scale, ext.Z()*v.zoom*scale
	x, y := v.project(center.X(), center.Z())

	vector.FillRect(screen, float32(x-hw), float32(y-hd), float32(hw*2), float32(hd*2), look.Color, true)
	if ext.Y() > ext.X() && ext.Y() > ext.Z() {
		// upright: mark the top face
		in := hw * 0.5
		vector.FillRect(screen, float32(x-in), float32(y-in), float32(in*2), float32(in*2), look.Accent, true)
	}
	vector.StrokeRect(screen, float32(x-hw), float32(y-hd), float32(hw*2), float32(hd*2), 1.5, color.Black, true)
}

func (r *RenderSystem) drawDebug(w *ecs.World, screen *ebiten.Image) {
	line := 0
	ecs.ForEach(w, component.CuboidControlComponent.Kind(), func(e ecs.Entity, ctl *component.CuboidControl) {
		c := ctl.Controller
		if c == nil {
			return
		}
		s := c.State()
		g := c.LastGround()
		text := fmt.Sprintf("%v %s standing=%t pos=(%.2f, %.2f, %.2f) ground A=%t B=%t edge=%t",
			e, s.Phase, s.Standing, s.Pose.Position.X(), s.Pose.Position.Y(), s.Pose.Position.Z(), g.A, g.B, g.PartiallyOffEdge)
		ebitenutil.DebugPrintAt(screen, text, 10, 10+line*16)
		line++
	})
}
