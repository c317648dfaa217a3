package game

import (
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSpriteFallbackPlaceholder(t *testing.T) {
	rm := NewResourceManager()

	img := rm.LoadSprite(filepath.Join(t.TempDir(), "missing.png"), 80, 80, color.RGBA{0, 200, 0, 255})
	if img == nil {
		t.Fatal("Expected a placeholder image, got nil")
	}

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w != 80 || h != 80 {
		t.Errorf("Expected 80x80 placeholder, got %dx%d", w, h)
	}
}

func TestLoadSpriteDecodesAndScales(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sprite.png")

	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	rm := NewResourceManager()
	img := rm.LoadSprite(path, 50, 50, color.RGBA{200, 0, 0, 255})

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w != 50 || h != 50 {
		t.Errorf("Expected sprite scaled to 50x50, got %dx%d", w, h)
	}

	// Second load must come from the cache (same instance).
	if rm.LoadSprite(path, 50, 50, color.RGBA{}) != img {
		t.Error("Expected cached sprite instance on second load")
	}
}

func TestLoadAnimationFromGif(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "anim.gif")

	palette := color.Palette{color.Black, color.White}
	g := &gif.GIF{}
	for i := 0; i < 3; i++ {
		frame := image.NewPaletted(image.Rect(0, 0, 4, 4), palette)
		g.Image = append(g.Image, frame)
		g.Delay = append(g.Delay, 10) // 100ms
	}
	// No per-frame delay on the last frame: exercise the default.
	g.Delay[2] = 0

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := gif.EncodeAll(f, g); err != nil {
		t.Fatal(err)
	}
	f.Close()

	rm := NewResourceManager()
	frames, err := rm.LoadAnimation(path, 200, 200)
	if err != nil {
		t.Fatalf("LoadAnimation() error: %v", err)
	}

	if len(frames) != 3 {
		t.Fatalf("Expected 3 frames, got %d", len(frames))
	}
	for i, fr := range frames {
		if fr.Image == nil {
			t.Fatalf("Frame %d has nil image", i)
		}
		w, h := fr.Image.Bounds().Dx(), fr.Image.Bounds().Dy()
		if w != 200 || h != 200 {
			t.Errorf("Frame %d: expected 200x200, got %dx%d", i, w, h)
		}
	}
	if frames[0].Duration != 0.1 {
		t.Errorf("Expected 0.1s frame duration, got %v", frames[0].Duration)
	}
	if frames[2].Duration != 0.1 {
		t.Errorf("Expected default 0.1s for zero-delay frame, got %v", frames[2].Duration)
	}
}

func TestLoadAnimationMissingFile(t *testing.T) {
	rm := NewResourceManager()

	if _, err := rm.LoadAnimation(filepath.Join(t.TempDir(), "missing.gif"), 10, 10); err == nil {
		t.Error("Expected an error for a missing animation file")
	}
}

func TestLoadFontMissingFile(t *testing.T) {
	rm := NewResourceManager()

	if _, err := rm.LoadFont(filepath.Join(t.TempDir(), "missing.ttf"), 36); err == nil {
		t.Error("Expected an error for a missing font file")
	}
}

func TestPlaceholderImageSize(t *testing.T) {
	img := PlaceholderImage(200, 200, color.RGBA{0, 0, 255, 255})

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w != 200 || h != 200 {
		t.Errorf("Expected 200x200, got %dx%d", w, h)
	}
}
