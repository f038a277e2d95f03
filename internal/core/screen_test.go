package core

import "testing"

func TestNewScreen(t *testing.T) {
	s := NewScreen(10, 5)
	if s.Width() != 10 || s.Height() != 5 {
		t.Errorf("size = %dx%d, expected 10x5", s.Width(), s.Height())
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("Get(%d, %d) = %q, expected space", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 2, 'X')
	if got := s.Get(1, 2); got != 'X' {
		t.Errorf("Get(1, 2) = %q, expected 'X'", got)
	}
	s.SetColored(3, 3, '*', ColorBrightRed)
	cell := s.GetCell(3, 3)
	if cell.Rune != '*' || cell.Color != ColorBrightRed {
		t.Errorf("GetCell(3, 3) = %+v, expected '*' bright red", cell)
	}

	// Out of range writes and reads are harmless.
	s.Set(-1, 0, 'Y')
	s.Set(4, 0, 'Y')
	if got := s.Get(10, 10); got != ' ' {
		t.Errorf("Get(10, 10) = %q, expected space", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawTextColored(6, 0, "abcd", ColorGreen)
	if got := s.Row(0); got != "      ab" {
		t.Errorf("Row(0) = %q, expected clipped text", got)
	}
	if s.GetCell(7, 0).Color != ColorGreen {
		t.Error("text colour not applied")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "WIN", ColorDefault)
	if got := s.Row(0); got != "   WIN    " {
		t.Errorf("Row(0) = %q, expected %q", got, "   WIN    ")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(s.Bounds(), ColorDefault)
	expected := "┌──┐\n│  │\n└──┘"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenResizeClears(t *testing.T) {
	s := NewScreen(3, 3)
	s.Set(0, 0, 'Q')
	s.Resize(2, 2)
	if s.Width() != 2 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 2x2", s.Width(), s.Height())
	}
	if s.Get(0, 0) != ' ' {
		t.Error("Resize should clear the buffer")
	}
	s.Resize(-1, 5)
	if s.Width() != 0 || s.String() != "\n\n\n\n" {
		t.Errorf("negative width should clamp to 0, got %q", s.String())
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(2, 2)
	if s.Row(-1) != "" || s.Row(2) != "" {
		t.Error("Row() out of range should be empty")
	}
}
