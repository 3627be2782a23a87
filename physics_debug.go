package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/mechplatformer/common"
	"github.com/milk9111/mechplatformer/physics"
)

// shapeDrawer outlines collision shapes in screen space.
type shapeDrawer struct {
	screen *ebiten.Image
	cam    common.Vec2
}

func (d *shapeDrawer) toScreen(v cp.Vector) (float32, float32) {
	x, y := worldToScreen(d.cam, common.Vec2{X: v.X, Y: v.Y})
	return float32(x), float32(y)
}

func (d *shapeDrawer) line(a, b cp.Vector, c color.Color) {
	ax, ay := d.toScreen(a)
	bx, by := d.toScreen(b)
	vector.StrokeLine(d.screen, ax, ay, bx, by, 1, c, false)
}

func (d *shapeDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	c := fcolorToRGBA(outline)
	const steps = 20
	prev := cp.Vector{X: pos.X + radius, Y: pos.Y}
	for i := 1; i <= steps; i++ {
		th := float64(i) * (2 * math.Pi / steps)
		cur := cp.Vector{X: pos.X + math.Cos(th)*radius, Y: pos.Y + math.Sin(th)*radius}
		d.line(prev, cur, c)
		prev = cur
	}
}

func (d *shapeDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.line(a, b, fcolorToRGBA(fill))
}

func (d *shapeDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.line(a, b, fcolorToRGBA(outline))
}

func (d *shapeDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	c := fcolorToRGBA(fill)
	for i := 0; i < count; i++ {
		d.line(verts[i], verts[(i+1)%count], c)
	}
}

func (d *shapeDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	x, y := d.toScreen(pos)
	vector.FillRect(d.screen, x-1, y-1, 2, 2, fcolorToRGBA(fill), false)
}

func (d *shapeDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *shapeDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1.0, B: 0.2, A: 1.0}
}

// ShapeColor tells terrain from damageable colliders by filter category.
func (d *shapeDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape != nil && shape.Filter.Categories&uint(physics.LayerEnemy) != 0 {
		return cp.FColor{R: 1.0, G: 0.3, B: 0.3, A: 1.0}
	}
	return cp.FColor{R: 0.4, G: 0.7, B: 1.0, A: 1.0}
}

func (d *shapeDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 0.7, G: 0.7, B: 0.7, A: 1.0}
}

func (d *shapeDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1.0, G: 0.1, B: 0.1, A: 1.0}
}

func (d *shapeDrawer) Data() interface{} {
	return nil
}

func fcolorToRGBA(c cp.FColor) color.RGBA {
	clamp := func(v float32) uint8 {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return uint8(v * 255)
	}
	return color.RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}
