package core

import "testing"

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with empty cells
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
			if s.OwnerAt(x, y) != OwnerEmpty {
				t.Errorf("New screen cell (%d, %d) owned by %v, expected empty", x, y, s.OwnerAt(x, y))
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', ColorGreen, OwnerShield)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorGreen || cell.Owner != OwnerShield {
		t.Errorf("GetCell(5, 5) = %+v, expected X/green/shield", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', ColorDefault, OwnerStar)
	s.Set(100, 0, 'A', ColorDefault, OwnerStar)
	s.Set(0, -1, 'A', ColorDefault, OwnerStar)
	s.Set(0, 100, 'A', ColorDefault, OwnerStar)

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.OwnerAt(100, 0) != OwnerEmpty {
		t.Error("Out of bounds OwnerAt should return empty")
	}
}

func TestScreenSetLastWriterWins(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(3, 3, '·', ColorGray, OwnerStar)
	s.Set(3, 3, '●', ColorBrown, OwnerMeteor)

	cell := s.GetCell(3, 3)
	if cell.Owner != OwnerMeteor || cell.Rune != '●' {
		t.Errorf("overwrite failed: %+v", cell)
	}
}

func TestScreenEraseIf(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(4, 4, '█', ColorGreen, OwnerShield)

	// Mismatched owner: read-only no-op
	if s.EraseIf(4, 4, OwnerMeteor, OwnerStar) {
		t.Error("EraseIf cleared a cell with a foreign owner")
	}
	if s.OwnerAt(4, 4) != OwnerShield {
		t.Error("EraseIf mutated a cell it did not clear")
	}

	// Matching owner in the set
	if !s.EraseIf(4, 4, OwnerMeteor, OwnerShield) {
		t.Error("EraseIf refused to clear an owned cell")
	}
	cell := s.GetCell(4, 4)
	if cell.Rune != ' ' || cell.Owner != OwnerEmpty {
		t.Errorf("cell after erase = %+v, expected empty", cell)
	}

	// Erasing an already-empty cell is false
	if s.EraseIf(4, 4, OwnerShield) {
		t.Error("EraseIf reported clearing an empty cell")
	}

	// Out of bounds is false
	if s.EraseIf(-1, 0, OwnerShield) {
		t.Error("EraseIf cleared out of bounds")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.Set(x, y, 'X', ColorRed, OwnerMeteor)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' || s.OwnerAt(x, y) != OwnerEmpty {
				t.Fatalf("After Clear, cell (%d, %d) = %+v", x, y, s.GetCell(x, y))
			}
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(0, 0, 'X', ColorRed, OwnerMeteor)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if s.OwnerAt(0, 0) != OwnerEmpty {
		t.Error("Resize should discard content")
	}

	// Same size is a no-op that keeps content
	s.Set(1, 1, 'Y', ColorGreen, OwnerShield)
	s.Resize(8, 4)
	if s.Get(1, 1) != 'Y' {
		t.Error("Same-size Resize should not discard content")
	}
}

func TestScreenCopyInto(t *testing.T) {
	src := NewScreen(4, 3)
	src.Set(1, 1, '▲', ColorBrightCyan, OwnerHUD)

	dst := NewScreen(10, 10)
	src.CopyInto(dst, 3, 2)

	cell := dst.GetCell(4, 3)
	if cell.Rune != '▲' || cell.Owner != OwnerHUD {
		t.Errorf("CopyInto: cell at offset = %+v", cell)
	}

	// Clipping must not panic
	src.CopyInto(dst, 8, 9)
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorWhite)

	for i, ch := range "Hello" {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
		if s.OwnerAt(2+i, 1) != OwnerHUD {
			t.Error("DrawText cells should be HUD-owned")
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello", ColorWhite)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorWhite)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorWhite)
	s.DrawText(0, 1, "BBBBB", ColorWhite)
	s.DrawText(0, 2, "CCCCC", ColorWhite)

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}
