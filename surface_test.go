package blit

import (
	"errors"
	"testing"
)

func TestNewSurface(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		depth   Depth
		wantErr error
	}{
		{"valid 8bpp", 320, 200, Depth8, nil},
		{"valid 32bpp", 64, 64, Depth32, nil},
		{"1x1 minimum", 1, 1, Depth24, nil},
		{"zero width", 0, 10, Depth8, ErrInvalidDimensions},
		{"negative height", 10, -1, Depth16, ErrInvalidDimensions},
		{"invalid depth", 10, 10, Depth(9), ErrUnsupportedDepth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSurface(tt.width, tt.height, tt.depth)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewSurface() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if s.Pitch() != tt.depth.RowBytes(tt.width) {
				t.Errorf("Pitch() = %d, want %d", s.Pitch(), tt.depth.RowBytes(tt.width))
			}
			if len(s.Data()) != s.Pitch()*tt.height {
				t.Errorf("len(Data()) = %d, want %d", len(s.Data()), s.Pitch()*tt.height)
			}
		})
	}
}

func TestFromRaw(t *testing.T) {
	data := make([]byte, 16*4)

	tests := []struct {
		name    string
		data    []byte
		width   int
		height  int
		depth   Depth
		pitch   int
		wantErr error
	}{
		{"padded pitch", data, 5, 4, Depth24, 16, nil},
		{"exact pitch", data, 4, 4, Depth32, 16, nil},
		{"pitch too small", data, 6, 4, Depth24, 16, ErrInvalidPitch},
		{"data too small", data[:40], 4, 4, Depth32, 16, ErrDataTooSmall},
		{"zero height", data, 4, 0, Depth8, 16, ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := FromRaw(tt.data, tt.width, tt.height, tt.depth, tt.pitch)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("FromRaw() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && &s.Data()[0] != &tt.data[0] {
				t.Error("FromRaw() copied the buffer")
			}
		})
	}
}

func TestPixelOffsetWithPadding(t *testing.T) {
	s, err := NewSurfaceWithPitch(3, 2, Depth16, 8)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		x, y, want int
	}{
		{0, 0, 0},
		{2, 0, 4},
		{0, 1, 8},
		{2, 1, 12},
		{3, 0, -1},
		{0, 2, -1},
		{-1, 0, -1},
	}
	for _, tt := range tests {
		if got := s.PixelOffset(tt.x, tt.y); got != tt.want {
			t.Errorf("PixelOffset(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
	if got := len(s.RowBytes(1)); got != 6 {
		t.Errorf("len(RowBytes(1)) = %d, want 6 (padding excluded)", got)
	}
	if s.RowBytes(2) != nil {
		t.Error("RowBytes(2) should be nil")
	}
}

func TestPixelRoundTrip(t *testing.T) {
	tests := []struct {
		depth Depth
		value uint32
	}{
		{Depth8, 0xAB},
		{Depth16, 0xF81F},
		{Depth24, 0x123456},
		{Depth32, 0xFEDCBA},
	}
	for _, tt := range tests {
		t.Run(tt.depth.String(), func(t *testing.T) {
			s, _ := NewSurface(2, 2, tt.depth)
			if err := s.SetPixel(1, 1, tt.value); err != nil {
				t.Fatalf("SetPixel() = %v", err)
			}
			got, err := s.Pixel(1, 1)
			if err != nil {
				t.Fatalf("Pixel() = %v", err)
			}
			if got != tt.value {
				t.Errorf("Pixel() = %#x, want %#x", got, tt.value)
			}
			if err := s.SetPixel(2, 0, 0); !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("SetPixel out of bounds = %v, want ErrOutOfBounds", err)
			}
		})
	}
}

func TestPixelByteOrder(t *testing.T) {
	s, _ := NewSurface(1, 1, Depth32)
	_ = s.SetPixel(0, 0, PackRGB(Color{R: 1, G: 2, B: 3}))
	want := []byte{3, 2, 1, 0xFF}
	for i, b := range want {
		if s.Data()[i] != b {
			t.Fatalf("Data() = %v, want %v", s.Data(), want)
		}
	}
}

func TestRGB(t *testing.T) {
	s, _ := NewSurface(1, 1, Depth8)
	if _, err := s.RGB(0, 0); !errors.Is(err, ErrMissingPalette) {
		t.Errorf("RGB() without palette = %v, want ErrMissingPalette", err)
	}
	var pal Palette
	pal[7] = Color{R: 10, G: 20, B: 30}
	s.SetPalette(&pal)
	_ = s.SetPixel(0, 0, 7)
	if c, _ := s.RGB(0, 0); c != pal[7] {
		t.Errorf("RGB() = %v, want %v", c, pal[7])
	}
}

func TestFillLeavesPadding(t *testing.T) {
	s, _ := NewSurfaceWithPitch(2, 2, Depth8, 4)
	s.Fill(9)
	want := []byte{9, 9, 0, 0, 9, 9, 0, 0}
	for i := range want {
		if s.Data()[i] != want[i] {
			t.Fatalf("Data() = %v, want %v", s.Data(), want)
		}
	}
}

func TestSubSurface(t *testing.T) {
	s, _ := NewSurface(4, 4, Depth8)
	for y := range 4 {
		for x := range 4 {
			_ = s.SetPixel(x, y, uint32(y*4+x))
		}
	}

	sub := s.SubSurface(Rect{X: 1, Y: 2, Width: 2, Height: 2})
	if sub == nil {
		t.Fatal("SubSurface() = nil")
	}
	if v, _ := sub.Pixel(0, 0); v != 9 {
		t.Errorf("sub.Pixel(0,0) = %d, want 9", v)
	}
	_ = sub.SetPixel(1, 1, 99)
	if v, _ := s.Pixel(2, 3); v != 99 {
		t.Errorf("write through sub-surface not visible, got %d", v)
	}

	if s.SubSurface(Rect{X: 3, Y: 3, Width: 2, Height: 1}) != nil {
		t.Error("SubSurface() past the edge should be nil")
	}
}

func TestClone(t *testing.T) {
	s, _ := NewSurface(2, 1, Depth16)
	_ = s.SetPixel(0, 0, 0x1234)
	c := s.Clone()
	_ = c.SetPixel(0, 0, 0)
	if v, _ := s.Pixel(0, 0); v != 0x1234 {
		t.Error("Clone() shares pixel memory with the original")
	}
}

func TestDepthFromBits(t *testing.T) {
	for _, bits := range []int{8, 16, 24, 32} {
		d, err := DepthFromBits(bits)
		if err != nil || d.Bits() != bits {
			t.Errorf("DepthFromBits(%d) = %v, %v", bits, d, err)
		}
	}
	for _, bits := range []int{0, 1, 15, 64} {
		if _, err := DepthFromBits(bits); !errors.Is(err, ErrUnsupportedDepth) {
			t.Errorf("DepthFromBits(%d) error = %v, want ErrUnsupportedDepth", bits, err)
		}
	}
}
