package render

import (
	"image/color"
	"testing"
)

func TestFillPaletteRGBAClampsIndex(t *testing.T) {
	palette := []color.RGBA{{R: 1, A: 255}, {G: 2, A: 255}}
	buf := make([]byte, 12)
	fillPaletteRGBA(buf, []uint8{0, 1, 9}, palette)

	want := []byte{1, 0, 0, 255, 0, 2, 0, 255, 0, 2, 0, 255}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %d, want %d", i, buf[i], want[i])
		}
	}
}

func TestFillPaletteRGBAEmptyPaletteClears(t *testing.T) {
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9}
	fillPaletteRGBA(buf, []uint8{3, 4}, nil)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buf[%d] = %d, want 0", i, v)
		}
	}
}

func TestPaletteImage(t *testing.T) {
	palette := []color.RGBA{{A: 255}, {R: 200, G: 100, B: 50, A: 255}}
	img := PaletteImage(2, 2, []uint8{0, 1, 1, 0}, palette)
	if img == nil {
		t.Fatal("PaletteImage returned nil")
	}
	if got := img.RGBAAt(1, 0); got != palette[1] {
		t.Fatalf("pixel (1,0) = %+v, want %+v", got, palette[1])
	}
	if got := img.RGBAAt(1, 1); got != palette[0] {
		t.Fatalf("pixel (1,1) = %+v, want %+v", got, palette[0])
	}
	if PaletteImage(3, 2, []uint8{0}, palette) != nil {
		t.Fatal("mismatched buffer must yield nil")
	}
}
