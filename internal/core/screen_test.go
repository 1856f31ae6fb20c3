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

	for y := range s.Height() {
		for x := range s.Width() {
			if s.GetCell(x, y).Rune != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.GetCell(x, y).Rune, x, y)
			}
		}
	}
}

func TestScreenSetGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.GetCell(5, 5).Rune != 'X' {
		t.Errorf("GetCell(5, 5).Rune = %q, expected 'X'", s.GetCell(5, 5).Rune)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("Out of bounds GetCell should return a space")
	}
	if s.GetCell(100, 0).Rune != ' ' {
		t.Error("Out of bounds GetCell should return a space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := range 10 {
		for x := range 10 {
			s.SetColored(x, y, 'X', ColorRed)
		}
	}

	s.Clear()

	for y := range 10 {
		for x := range 10 {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' '}) {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenFill(t *testing.T) {
	s := NewScreen(5, 5)
	s.Fill('#')

	for y := range 5 {
		for x := range 5 {
			if s.GetCell(x, y).Rune != '#' {
				t.Errorf("After Fill, expected '#' at (%d, %d), got %q", x, y, s.GetCell(x, y).Rune)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	if n := s.DrawText(2, 1, "Hello"); n != 5 {
		t.Errorf("DrawText returned %d columns, expected 5", n)
	}

	expected := "Hello"
	for i, ch := range expected {
		if s.GetCell(2+i, 1).Rune != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.GetCell(2+i, 1).Rune)
		}
	}

	s.DrawText(18, 0, "Hello") // Only "He" should fit
	if s.GetCell(18, 0).Rune != 'H' || s.GetCell(19, 0).Rune != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	text := "Hi"
	s.DrawTextCentered(2, text)

	// "Hi" is 2 chars, centered in 20 chars should start at position 9
	x := (20 - 2) / 2
	if s.GetCell(x, 2).Rune != 'H' || s.GetCell(x+1, 2).Rune != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	r := NewRect(2, 2, 3, 3)
	s.DrawRect(r, '#')

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.GetCell(x, y).Rune != '#' {
				t.Errorf("DrawRect: expected '#' at (%d, %d), got %q", x, y, s.GetCell(x, y).Rune)
			}
		}
	}

	if s.GetCell(1, 1).Rune != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
	if s.GetCell(5, 5).Rune != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	r := NewRect(1, 1, 5, 4)
	s.DrawBox(r)

	// Check corners
	if s.GetCell(1, 1).Rune != '┌' {
		t.Errorf("Top-left corner should be '┌', got %q", s.GetCell(1, 1).Rune)
	}
	if s.GetCell(5, 1).Rune != '┐' {
		t.Errorf("Top-right corner should be '┐', got %q", s.GetCell(5, 1).Rune)
	}
	if s.GetCell(1, 4).Rune != '└' {
		t.Errorf("Bottom-left corner should be '└', got %q", s.GetCell(1, 4).Rune)
	}
	if s.GetCell(5, 4).Rune != '┘' {
		t.Errorf("Bottom-right corner should be '┘', got %q", s.GetCell(5, 4).Rune)
	}

	// Check horizontal edges
	for x := 2; x < 5; x++ {
		if s.GetCell(x, 1).Rune != '─' {
			t.Errorf("Top edge should be '─' at x=%d, got %q", x, s.GetCell(x, 1).Rune)
		}
		if s.GetCell(x, 4).Rune != '─' {
			t.Errorf("Bottom edge should be '─' at x=%d, got %q", x, s.GetCell(x, 4).Rune)
		}
	}

	// Check vertical edges
	for y := 2; y < 4; y++ {
		if s.GetCell(1, y).Rune != '│' {
			t.Errorf("Left edge should be '│' at y=%d, got %q", y, s.GetCell(1, y).Rune)
		}
		if s.GetCell(5, y).Rune != '│' {
			t.Errorf("Right edge should be '│' at y=%d, got %q", y, s.GetCell(5, y).Rune)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	// Resize smaller - should preserve top-left content
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}

	row0 := s.Row(0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row0)
	}

	// Resize larger - old content should still be there
	s.Resize(15, 8)
	row0 = s.Row(0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", row0)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	// Out of bounds row
	outOfBounds := s.Row(-1)
	if outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}

func TestScreenBounds(t *testing.T) {
	s := NewScreen(7, 3)
	if b := s.Bounds(); b != NewRect(0, 0, 7, 3) {
		t.Errorf("Bounds() = %+v, expected %+v", b, NewRect(0, 0, 7, 3))
	}
	s.Resize(4, 2)
	if b := s.Bounds(); b != NewRect(0, 0, 4, 2) {
		t.Errorf("Bounds() after resize = %+v, expected %+v", b, NewRect(0, 0, 4, 2))
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColored(1, 1, "12", ColorBlue)

	want := []Cell{{Rune: '1', Color: ColorBlue}, {Rune: '2', Color: ColorBlue}}
	for i, w := range want {
		if got := s.GetCell(1+i, 1); got != w {
			t.Errorf("GetCell(%d, 1) = %+v, want %+v", 1+i, got, w)
		}
	}
	if got := s.GetCell(3, 1); got.Color != ColorDefault {
		t.Errorf("cell after text should keep default color, got %v", got.Color)
	}
	if got := s.GetCell(-1, 0); got != (Cell{Rune: ' '}) {
		t.Errorf("out of bounds GetCell = %+v, want blank", got)
	}
}

func TestScreenWideRunes(t *testing.T) {
	s := NewScreen(6, 1)
	if n := s.DrawText(0, 0, "界a"); n != 3 {
		t.Errorf("DrawText(\"界a\") = %d columns, expected 3", n)
	}
	if s.GetCell(0, 0).Rune != '界' || s.GetCell(1, 0).Rune != 0 || s.GetCell(2, 0).Rune != 'a' {
		t.Errorf("wide rune layout wrong: %q", s.Row(0))
	}
	if row := s.Row(0); row != "界a   " {
		t.Errorf("Row(0) = %q, expected %q", row, "界a   ")
	}
}

func TestScreenDrawTextInRect(t *testing.T) {
	s := NewScreen(12, 5)
	r := NewRect(2, 1, 8, 3)
	s.DrawTextInRect(r, "48", ColorWhite)

	// (8-2)/2 = 3 columns in, middle row
	if s.GetCell(5, 2).Rune != '4' || s.GetCell(6, 2).Rune != '8' {
		t.Errorf("DrawTextInRect placed text wrong: %q", s.Row(2))
	}
	if s.GetCell(5, 2).Color != ColorWhite {
		t.Errorf("DrawTextInRect color = %v, expected %v", s.GetCell(5, 2).Color, ColorWhite)
	}
}

func TestScreenDrawBoxTooSmall(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawBox(NewRect(0, 0, 1, 1))
	if s.GetCell(0, 0).Rune != ' ' {
		t.Errorf("DrawBox on a 1x1 rect should draw nothing, got %q", s.GetCell(0, 0).Rune)
	}
}
