package cursor

import "testing"

func TestNew(t *testing.T) {
	c := New(2)
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("New() = pos %d offset %d, want 0 0", c.Pos(), c.Offset())
	}
	if New(-3).margin != 0 {
		t.Error("negative margin should clamp to 0")
	}
}

func TestFollow(t *testing.T) {
	tests := []struct {
		name       string
		margin     int
		start      int
		pos        int
		listLen    int
		height     int
		wantPos    int
		wantOffset int
	}{
		{"inside window", 1, 0, 2, 10, 5, 2, 0},
		{"scrolls down keeping margin", 1, 0, 4, 10, 5, 4, 1},
		{"jump to end", 1, 0, 9, 10, 5, 9, 5},
		{"clamped past end", 0, 0, 20, 10, 5, 9, 5},
		{"negative clamps to start", 0, 0, -1, 10, 5, 0, 0},
		{"scrolls back up", 1, 5, 5, 10, 5, 5, 4},
		{"short list never scrolls", 2, 0, 2, 3, 5, 2, 0},
		{"large margin on tiny window", 10, 0, 3, 10, 2, 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.margin)
			c.offset = tt.start
			c.Follow(tt.pos, tt.listLen, tt.height)
			if c.Pos() != tt.wantPos || c.Offset() != tt.wantOffset {
				t.Errorf("Follow(%d) = pos %d offset %d, want %d %d",
					tt.pos, c.Pos(), c.Offset(), tt.wantPos, tt.wantOffset)
			}
		})
	}
}

func TestFollowEmptyListResets(t *testing.T) {
	c := New(1)
	c.Follow(5, 10, 3)
	c.Follow(5, 0, 3)
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("after empty list: pos %d offset %d", c.Pos(), c.Offset())
	}
}

func TestVisibleRange(t *testing.T) {
	c := New(0)
	c.Follow(7, 10, 4)

	start, end := c.VisibleRange(10, 4)
	if start != 4 || end != 8 {
		t.Errorf("VisibleRange = [%d,%d), want [4,8)", start, end)
	}

	// List shrank under the window
	start, end = c.VisibleRange(2, 4)
	if start != 2 || end != 2 {
		t.Errorf("VisibleRange on shrunk list = [%d,%d), want [2,2)", start, end)
	}

	if s, e := c.VisibleRange(0, 4); s != 0 || e != 0 {
		t.Errorf("empty VisibleRange = [%d,%d)", s, e)
	}
}
