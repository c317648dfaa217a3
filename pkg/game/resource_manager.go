package game

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	"github.com/gonewx/catcher/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	xdraw "golang.org/x/image/draw"
)

// ResourceManager is the asset collaborator of the game core: it decodes
// still sprites and animated GIFs, scales them to their display size, and
// loads fonts. Load failures never propagate into the game loop; a sprite
// that cannot be read degrades to a solid-color placeholder.
type ResourceManager struct {
	imageCache map[string]*ebiten.Image
	fontCache  map[string]*text.GoTextFace
}

// NewResourceManager creates a manager with empty caches.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache: make(map[string]*ebiten.Image),
		fontCache:  make(map[string]*text.GoTextFace),
	}
}

// PlaceholderImage returns a solid-color stand-in sprite.
func PlaceholderImage(width, height int, c color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(width, height)
	img.Fill(c)
	return img
}

// LoadSprite loads a still image and scales it to width x height. It never
// fails: a missing or undecodable file yields a solid placeholder of the
// fallback color, so the caller always receives a renderable.
func (rm *ResourceManager) LoadSprite(path string, width, height int, fallback color.RGBA) *ebiten.Image {
	key := fmt.Sprintf("%s@%dx%d", path, width, height)
	if img, ok := rm.imageCache[key]; ok {
		return img
	}

	img, err := rm.loadScaledImage(path, width, height)
	if err != nil {
		log.Printf("[Resource] %v, using placeholder", err)
		img = PlaceholderImage(width, height, fallback)
	}

	rm.imageCache[key] = img
	return img
}

func (rm *ResourceManager) loadScaledImage(path string, width, height int) (*ebiten.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sprite %s: %w", path, err)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode sprite %s: %w", path, err)
	}

	return ebiten.NewImageFromImage(scaleImage(src, width, height)), nil
}

// LoadAnimation decodes an animated GIF into an ordered (frame, duration)
// list, each frame composited over the previous ones and scaled to
// width x height. GIF delays are centiseconds; frames with no delay get
// the conventional 100ms.
func (rm *ResourceManager) LoadAnimation(path string, width, height int) ([]components.AnimationFrame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read animation %s: %w", path, err)
	}

	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode animation %s: %w", path, err)
	}
	if len(g.Image) == 0 {
		return nil, fmt.Errorf("animation %s has no frames", path)
	}

	// Frames can be partial updates; composite each one over a shared
	// canvas before scaling. Background/previous disposal is not handled,
	// which is fine for the simple looping GIFs this game plays.
	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		bounds = g.Image[0].Bounds()
	}
	canvas := image.NewRGBA(bounds)

	frames := make([]components.AnimationFrame, 0, len(g.Image))
	for i, paletted := range g.Image {
		draw.Draw(canvas, paletted.Bounds(), paletted, paletted.Bounds().Min, draw.Over)

		duration := float64(g.Delay[i]) / 100.0
		if duration <= 0 {
			duration = 0.1
		}

		frames = append(frames, components.AnimationFrame{
			Image:    ebiten.NewImageFromImage(scaleImage(canvas, width, height)),
			Duration: duration,
		})
	}

	log.Printf("[Resource] Loaded animation %s: %d frames", path, len(frames))
	return frames, nil
}

// LoadFont loads a TrueType/OpenType font and returns a text face of the
// given size. Faces are cached per path and size.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	key := fmt.Sprintf("%s@%.1f", path, size)
	if face, ok := rm.fontCache[key]; ok {
		return face, nil
	}

	fontData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font %s: %w", path, err)
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}
	rm.fontCache[key] = face
	return face, nil
}

func scaleImage(src image.Image, width, height int) image.Image {
	if b := src.Bounds(); b.Dx() == width && b.Dy() == height {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}
