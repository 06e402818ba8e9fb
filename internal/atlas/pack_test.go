package atlas

import "testing"

func TestAlignUp4(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, 0}, {1, 4}, {3, 4}, {4, 4}, {5, 8}, {17, 20}, {64, 64},
	}
	for _, tt := range tests {
		if got := alignUp4(tt.in); got != tt.want {
			t.Errorf("alignUp4(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestAlignUp4Idempotent(t *testing.T) {
	for x := 0; x < 100; x++ {
		once := alignUp4(x)
		if twice := alignUp4(once); twice != once {
			t.Errorf("alignUp4 not idempotent at %d: %d then %d", x, once, twice)
		}
	}
}

func TestNextPow2(t *testing.T) {
	tests := []struct{ in, want int }{
		{1, 1}, {2, 2}, {3, 4}, {4, 4}, {5, 8}, {16, 16}, {17, 32}, {1000, 1024},
	}
	for _, tt := range tests {
		if got := nextPow2(tt.in); got != tt.want {
			t.Errorf("nextPow2(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNextPow2Idempotent(t *testing.T) {
	for x := 1; x < 300; x++ {
		once := nextPow2(x)
		if twice := nextPow2(once); twice != once {
			t.Errorf("nextPow2 not idempotent at %d: %d then %d", x, once, twice)
		}
	}
}

func TestCanvasSizeSkipsEmptySprites(t *testing.T) {
	opts := DefaultOptions()
	sprites := []Sprite{{}} // empty sprite only
	w, h := canvasSize(opts, sprites)
	if w%4 != 0 || h%4 != 0 || w == 0 || h == 0 {
		t.Errorf("canvasSize of empty set = %dx%d, want small aligned non-zero", w, h)
	}
}
