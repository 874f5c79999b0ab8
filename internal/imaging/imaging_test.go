package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func jpegBytes(w, h int) []byte {
	var buf bytes.Buffer
	jpeg.Encode(&buf, solid(w, h, color.RGBA{200, 0, 0, 255}), &jpeg.Options{Quality: 90})
	return buf.Bytes()
}

func pngBytes(w, h int) []byte {
	var buf bytes.Buffer
	png.Encode(&buf, solid(w, h, color.RGBA{0, 0, 200, 255}))
	return buf.Bytes()
}

func decodedSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestNormalizePNGBecomesJPEG(t *testing.T) {
	photo, err := Normalize(bytes.NewReader(pngBytes(80, 60)))
	if err != nil {
		t.Fatalf("Normalize PNG: %v", err)
	}
	if photo.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", photo.MIME)
	}
	if w, h := decodedSize(t, photo.Data); w != 80 || h != 60 {
		t.Errorf("small photo should keep its size, got %dx%d", w, h)
	}
}

func TestNormalizeLandscapeKeepsAspect(t *testing.T) {
	photo, err := Normalize(bytes.NewReader(jpegBytes(2048, 1024)))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	w, h := decodedSize(t, photo.Data)
	if w != MaxDimension || h != MaxDimension/2 {
		t.Errorf("expected %dx%d, got %dx%d", MaxDimension, MaxDimension/2, w, h)
	}
}

func TestNormalizePortrait(t *testing.T) {
	photo, err := Normalize(bytes.NewReader(jpegBytes(600, 1200)))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	w, h := decodedSize(t, photo.Data)
	if h != MaxDimension || w != 512 {
		t.Errorf("expected 512x%d, got %dx%d", MaxDimension, w, h)
	}
}

func TestNormalizeRejectsOtherFormats(t *testing.T) {
	for name, data := range map[string][]byte{
		"text": []byte("not an image"),
		"gif":  []byte("GIF89a..."),
	} {
		_, err := Normalize(bytes.NewReader(data))
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("%s: expected ErrUnsupportedFormat, got %v", name, err)
		}
	}
}

func TestNormalizeRejectsTruncatedJPEG(t *testing.T) {
	data := jpegBytes(40, 40)
	_, err := Normalize(bytes.NewReader(data[:20]))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat for truncated JPEG, got %v", err)
	}
}
