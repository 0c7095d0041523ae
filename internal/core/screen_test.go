package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.SetColored(0, -1, 'A', ColorRed)
	s.SetColored(0, 100, 'A', ColorRed)

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0).Color != ColorDefault {
		t.Error("Out of bounds GetCell should be uncolored")
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(4, 2)

	s.SetColored(1, 1, '■', ColorYellow)
	got := s.GetCell(1, 1)
	if got.Rune != '■' || got.Color != ColorYellow {
		t.Errorf("GetCell(1, 1) = %+v, expected yellow ■", got)
	}

	s.Set(1, 1, '.')
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Set should reset the color")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)

	s.DrawTextColored(1, 0, "▲■■", ColorGreen)
	if s.Row(0) != " ▲■■      " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
	if s.GetCell(3, 0).Color != ColorGreen {
		t.Error("DrawTextColored should color every rune")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)

	s.DrawTextCentered(0, "WIN")
	if s.Row(0) != "    WIN    " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(6, 4)

	s.DrawRect(NewRect(1, 1, 3, 2), '#', ColorGray)
	expected := []string{
		"      ",
		" ###  ",
		" ###  ",
		"      ",
	}
	for y, row := range expected {
		if s.Row(y) != row {
			t.Errorf("Row(%d) = %q, expected %q", y, s.Row(y), row)
		}
	}
	if s.GetCell(2, 2).Color != ColorGray {
		t.Error("DrawRect should apply the color")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)

	s.DrawBox(NewRect(0, 0, 5, 3), ColorWhite)
	expected := "┌───┐\n│   │\n└───┘"
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(1, 1, 'B', ColorRed)

	s.Resize(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("Resize() got %dx%d", s.Width(), s.Height())
	}
	if c := s.GetCell(1, 1); c.Rune != 'B' || c.Color != ColorRed {
		t.Errorf("Resize should preserve content, got %+v", c)
	}

	s.Resize(1, 1)
	if s.String() != " " {
		t.Errorf("String() after shrink = %q", s.String())
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Fill('.')

	if got := s.String(); got != "...\n..." {
		t.Errorf("String() = %q", got)
	}
	if len(strings.Split(s.String(), "\n")) != 2 {
		t.Error("String() should have one line per row")
	}
	if s.Row(5) != "   " {
		t.Errorf("Row(5) out of range = %q", s.Row(5))
	}
}
