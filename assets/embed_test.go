package assets

import "testing"

func TestLoadImage(t *testing.T) {
	cases := []struct {
		path    string
		wantErr bool
	}{
		{WhiteSquare, false},
		{"assets/" + WhiteSquare, false},
		{"missing.png", true},
		{"", true},
	}
	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			img, err := LoadImage(c.path)
			if (err != nil) != c.wantErr {
				t.Fatalf("expected error=%v, got %v", c.wantErr, err)
			}
			if err != nil {
				return
			}
			b := img.Bounds()
			if b.Dx() != 10 || b.Dy() != 10 {
				t.Fatalf("expected a 10x10 sprite, got %v", b)
			}
			r, g, bl, a := img.At(5, 5).RGBA()
			if r != 0xffff || g != 0xffff || bl != 0xffff || a != 0xffff {
				t.Fatalf("expected opaque white, got %v %v %v %v", r, g, bl, a)
			}
		})
	}
}
