package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/matzehuels/socketgraph/pkg/errors"
	"github.com/matzehuels/socketgraph/pkg/geom"
)

var (
	red   = color.NRGBA{255, 0, 0, 255}
	white = color.NRGBA{255, 255, 255, 255}
)

func TestNewValidates(t *testing.T) {
	tests := []struct {
		name     string
		viewport geom.Rect
		scale    float64
	}{
		{"zero scale", geom.Rect{Max: geom.Pt(10, 10)}, 0},
		{"empty viewport", geom.Rect{}, 1},
		{"too large", geom.Rect{Max: geom.Pt(100000, 100000)}, 1},
		{"int overflow", geom.Rect{Max: geom.Pt(2e9, 2e9)}, 2},
		{"infinite", geom.Rect{Max: geom.Pt(math.Inf(1), 10)}, 1},
		{"nan", geom.Rect{Max: geom.Pt(math.NaN(), 10)}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.viewport, tt.scale); !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("New() error = %v, want %s", err, errors.ErrCodeInvalidInput)
			}
		})
	}
}

func TestFillRectPaintsPixels(t *testing.T) {
	s, err := New(geom.Rect{Min: geom.Pt(100, 100), Max: geom.Pt(200, 200)}, 2, WithBackground(white))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.FillRect(geom.Pt(100, 100), geom.Pt(150, 150), red, 0)

	img := s.Image()
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 200 {
		t.Fatalf("image size = %dx%d, want 200x200", b.Dx(), b.Dy())
	}

	inside := color.NRGBAModel.Convert(img.At(50, 50)).(color.NRGBA)
	if inside != red {
		t.Errorf("pixel inside rect = %v, want red", inside)
	}
	outside := color.NRGBAModel.Convert(img.At(150, 150)).(color.NRGBA)
	if outside != white {
		t.Errorf("pixel outside rect = %v, want white", outside)
	}
}

func TestCircleAndCurve(t *testing.T) {
	s, err := New(geom.Rect{Max: geom.Pt(100, 100)}, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.FillCircle(geom.Pt(50, 50), 10, red)
	s.StrokeCircle(geom.Pt(50, 50), 10, white)
	s.StrokeRect(geom.Pt(10, 10), geom.Pt(90, 90), white, 4)
	s.CubicBezier(geom.Pt(0, 0), geom.Pt(50, 0), geom.Pt(50, 100), geom.Pt(100, 100), red, 2)

	center := color.NRGBAModel.Convert(s.Image().At(50, 50)).(color.NRGBA)
	if center != red {
		t.Errorf("circle center = %v, want red", center)
	}
	corner := color.NRGBAModel.Convert(s.Image().At(95, 5)).(color.NRGBA)
	if corner.A != 0 {
		t.Errorf("untouched corner = %v, want transparent", corner)
	}
}

func TestPNG(t *testing.T) {
	s, err := New(geom.Rect{Max: geom.Pt(40, 30)}, 1.5)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	data, err := s.PNG()
	if err != nil {
		t.Fatalf("PNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 60 || b.Dy() != 45 {
		t.Errorf("decoded size = %dx%d, want 60x45", b.Dx(), b.Dy())
	}
}
