package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// LoopPolicy controls what a sprite does after its last frame.
type LoopPolicy int

const (
	// LoopNone plays once and reports completion at the last frame.
	LoopNone LoopPolicy = iota
	// LoopCount repeats a fixed number of times, then reports completion.
	LoopCount
	// LoopForever repeats and never completes.
	LoopForever
)

// Sprite is a frame-sequence animation. One type covers every variant the
// game uses: optional per-frame pixel offsets, optional per-frame sizes, and
// a loop policy selected via configuration instead of subtypes.
type Sprite struct {
	name   string
	frames []*ebiten.Image

	frameW, frameH int
	frameSizes     []image.Point // optional, per frame, unscaled
	offsetX        int
	offsetY        int
	frameOffsets   []image.Point // optional, per frame

	scaleX, scaleY float64
	frameDuration  float64 // seconds per frame
	loop           LoopPolicy
	maxLoops       int

	index     int
	timer     float64
	loops     int
	completed bool
}

// NewSprite creates a sprite. frames may contain nil entries (or be empty)
// when the backing image failed to load; timing and geometry still work so
// the game can fall back to placeholder rendering.
func NewSprite(name string, frames []*ebiten.Image, frameW, frameH int, frameDuration float64, loop LoopPolicy) *Sprite {
	return &Sprite{
		name:          name,
		frames:        frames,
		frameW:        frameW,
		frameH:        frameH,
		scaleX:        1,
		scaleY:        1,
		frameDuration: frameDuration,
		loop:          loop,
		maxLoops:      1,
	}
}

func (s *Sprite) SetScale(sx, sy float64) {
	s.scaleX = sx
	s.scaleY = sy
}

func (s *Sprite) SetOffset(x, y int) {
	s.offsetX = x
	s.offsetY = y
}

// SetFrameOffsets installs per-frame pixel offsets, overriding the global
// offset for frames that have an entry.
func (s *Sprite) SetFrameOffsets(offsets []image.Point) {
	s.frameOffsets = offsets
}

// SetFrameSizes installs per-frame unscaled sizes for sheets whose frames
// are not uniform.
func (s *Sprite) SetFrameSizes(sizes []image.Point) {
	s.frameSizes = sizes
}

// SetMaxLoops sets the repeat count used by LoopCount.
func (s *Sprite) SetMaxLoops(n int) {
	if n < 1 {
		n = 1
	}
	s.maxLoops = n
}

// Update advances the animation by dt seconds. Negative deltas clamp to zero
// so a timer glitch can never rewind a sprite past a completed state.
func (s *Sprite) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	n := s.FrameCount()
	if n == 0 {
		return
	}
	if s.completed && s.loop != LoopForever {
		return
	}
	if s.frameDuration <= 0 || n == 1 {
		if s.loop == LoopNone {
			s.completed = true
		}
		return
	}

	s.timer += dt
	for s.timer >= s.frameDuration {
		s.timer -= s.frameDuration
		s.advance(n)
		if s.completed {
			s.timer = 0
			break
		}
	}
}

func (s *Sprite) advance(n int) {
	s.index++
	if s.index < n {
		if s.loop == LoopNone && s.index == n-1 {
			s.completed = true
		}
		return
	}
	switch s.loop {
	case LoopNone:
		s.index = n - 1
		s.completed = true
	case LoopForever:
		s.index = 0
	case LoopCount:
		s.loops++
		if s.loops >= s.maxLoops {
			s.index = n - 1
			s.completed = true
		} else {
			s.index = 0
		}
	}
}

// Reset rewinds to the first frame and clears completion.
func (s *Sprite) Reset() {
	s.index = 0
	s.timer = 0
	s.loops = 0
	s.completed = false
}

func (s *Sprite) Name() string { return s.name }

// Completed reports whether a LoopNone or exhausted LoopCount sprite has
// reached its final frame.
func (s *Sprite) Completed() bool { return s.completed }

// Looping reports whether the sprite repeats (finitely or forever).
func (s *Sprite) Looping() bool { return s.loop != LoopNone }

func (s *Sprite) Loop() LoopPolicy { return s.loop }

func (s *Sprite) FrameIndex() int { return s.index }

func (s *Sprite) FrameCount() int {
	if len(s.frameSizes) > 0 && len(s.frames) == 0 {
		return len(s.frameSizes)
	}
	return len(s.frames)
}

// Frame returns the current frame image, which may be nil when assets are
// missing.
func (s *Sprite) Frame() *ebiten.Image {
	if s.index < 0 || s.index >= len(s.frames) {
		return nil
	}
	return s.frames[s.index]
}

// Size returns the scaled pixel size of the current frame.
func (s *Sprite) Size() (int, int) {
	w, h := s.frameW, s.frameH
	if s.index < len(s.frameSizes) {
		w, h = s.frameSizes[s.index].X, s.frameSizes[s.index].Y
	}
	return int(float64(w) * s.scaleX), int(float64(h) * s.scaleY)
}

func (s *Sprite) Scale() (float64, float64) { return s.scaleX, s.scaleY }

// FrameOffset returns the pixel offset for the current frame, falling back
// to the global offset when no per-frame entry exists.
func (s *Sprite) FrameOffset() (int, int) {
	if s.index < len(s.frameOffsets) {
		return s.frameOffsets[s.index].X, s.frameOffsets[s.index].Y
	}
	return s.offsetX, s.offsetY
}

// RenderX returns the screen X for an entity anchored at entityX (center).
func (s *Sprite) RenderX(entityX float64) int {
	w, _ := s.Size()
	ox, _ := s.FrameOffset()
	return int(entityX-float64(w)/2) + ox
}

// RenderY aligns the sprite bottom with the bottom of the entity's collision
// box, entityY being the box center.
func (s *Sprite) RenderY(entityY, collisionHeight float64) int {
	_, h := s.Size()
	_, oy := s.FrameOffset()
	bottom := int(entityY + collisionHeight/2)
	return bottom - h + oy
}

// NewSheetSprite slices a horizontal strip of frameCount frames out of a
// spritesheet row. A nil sheet yields a sprite with no images but correct
// timing, so missing assets degrade to placeholder rendering.
func NewSheetSprite(name string, sheet *ebiten.Image, frameW, frameH, row, frameCount int, frameDuration float64, loop LoopPolicy) *Sprite {
	if sheet == nil || frameW <= 0 || frameH <= 0 || frameCount <= 0 {
		return NewSprite(name, make([]*ebiten.Image, max(frameCount, 1)), frameW, frameH, frameDuration, loop)
	}
	cols := sheet.Bounds().Dx() / frameW
	if cols < 1 {
		cols = 1
	}
	frames := make([]*ebiten.Image, 0, frameCount)
	start := row * cols
	for i := 0; i < frameCount; i++ {
		idx := start + i
		sx := (idx % cols) * frameW
		sy := (idx / cols) * frameH
		r := image.Rect(sx, sy, sx+frameW, sy+frameH)
		frames = append(frames, sheet.SubImage(r).(*ebiten.Image))
	}
	return NewSprite(name, frames, frameW, frameH, frameDuration, loop)
}
