package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bouncers/ecs"
	"github.com/milk9111/bouncers/ecs/component"
)

// Options controls how a frame is drawn.
type Options struct {
	Background color.Color
	Tint       color.Color
}

// Renderer draws every sprite entity as a quad centered on its transform.
// It must only run after the frame's systems have finished.
type Renderer struct {
	opts Options
	op   ebiten.DrawImageOptions
}

func NewRenderer(opts Options) *Renderer {
	r := &Renderer{}
	r.SetOptions(opts)
	return r
}

// SetOptions swaps the drawing options, e.g. after a config reload.
func (r *Renderer) SetOptions(opts Options) {
	if opts.Background == nil {
		opts.Background = color.Black
	}
	if opts.Tint == nil {
		opts.Tint = color.White
	}
	r.opts = opts
}

func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || screen == nil {
		return
	}
	screen.Fill(r.opts.Background)

	// Consecutive DrawImage calls sharing a source image are batched into
	// one draw call by ebiten.
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(_ ecs.Entity, t *component.Transform, s *component.Sprite) {
		img := GetImage(s.Key)
		if img == nil {
			return
		}
		b := img.Bounds()
		if b.Dx() == 0 || b.Dy() == 0 {
			return
		}

		r.op.GeoM.Reset()
		r.op.GeoM.Scale(s.Width/float64(b.Dx()), s.Height/float64(b.Dy()))
		r.op.GeoM.Translate(t.X-s.Width/2, t.Y-s.Height/2)
		r.op.ColorScale.Reset()
		r.op.ColorScale.ScaleWithColor(r.opts.Tint)
		screen.DrawImage(img, &r.op)
	})
}
