package vtinput

import "testing"

func TestCUP_MovesToOneBasedPosition(t *testing.T) {
	scr := newTestScreen(20, 10)
	p := New(scr)
	p.WriteString("\x1b[3;5H")
	x, y := scr.CursorPosition()
	if x != 4 || y != 2 {
		t.Errorf("cursor = (%d,%d), want (4,2)", x, y)
	}
}

func TestCUP_ClampsToScreenBounds(t *testing.T) {
	scr := newTestScreen(10, 5)
	p := New(scr)
	p.WriteString("\x1b[100;100H")
	x, y := scr.CursorPosition()
	if x != 9 || y != 4 {
		t.Errorf("cursor = (%d,%d), want (9,4) clamped", x, y)
	}
}

func TestCursorMotion_CUU_CUD_CUF_CUB(t *testing.T) {
	scr := newTestScreen(20, 10)
	p := New(scr)
	p.WriteString("\x1b[5;5H")
	p.WriteString("\x1b[2A") // up 2
	if _, y := scr.CursorPosition(); y != 2 {
		t.Errorf("after CUU: y = %d, want 2", y)
	}
	p.WriteString("\x1b[3B") // down 3
	if _, y := scr.CursorPosition(); y != 5 {
		t.Errorf("after CUD: y = %d, want 5", y)
	}
	p.WriteString("\x1b[2C") // forward 2
	if x, _ := scr.CursorPosition(); x != 6 {
		t.Errorf("after CUF: x = %d, want 6", x)
	}
	p.WriteString("\x1b[4D") // back 4
	if x, _ := scr.CursorPosition(); x != 2 {
		t.Errorf("after CUB: x = %d, want 2", x)
	}
}

func TestEraseDisplay_ModeTwoClearsEverything(t *testing.T) {
	scr := newTestScreen(5, 2)
	p := New(scr)
	p.WriteString("ABCDE\r\nFGHIJ")
	p.WriteString("\x1b[2J")
	for y := 0; y < 2; y++ {
		if got := scr.ViewStringCells(0, y, 5); got != "     " {
			t.Errorf("row %d = %q, want blank", y, got)
		}
	}
}

func TestEraseDisplay_ModeZeroClearsFromCursor(t *testing.T) {
	scr := newTestScreen(5, 1)
	p := New(scr)
	p.WriteString("ABCDE\x1b[1;3H\x1b[0J")
	if got := scr.ViewStringCells(0, 0, 5); got != "AB   " {
		t.Errorf("row = %q, want %q", got, "AB   ")
	}
}

func TestEraseLine_ModeOneClearsToCursor(t *testing.T) {
	scr := newTestScreen(5, 1)
	p := New(scr)
	p.WriteString("ABCDE\x1b[1;3H\x1b[1K")
	if got := scr.ViewStringCells(0, 0, 5); got != "   DE" {
		t.Errorf("row = %q, want %q", got, "   DE")
	}
}

func TestInsertDeleteLines(t *testing.T) {
	scr := newTestScreen(5, 4)
	p := New(scr)
	p.WriteString("1111\r\n2222\r\n3333\r\n4444")
	p.WriteString("\x1b[2;1H\x1b[2L") // insert 2 blank lines at row 2
	if got := scr.ViewStringCells(0, 1, 4); got != "    " {
		t.Errorf("row1 after insert = %q, want blank", got)
	}
	if got := scr.ViewStringCells(0, 3, 4); got != "2222" {
		t.Errorf("row3 after insert = %q, want %q", got, "2222")
	}

	p.WriteString("\x1b[2;1H\x1b[2M") // delete the 2 lines just inserted
	if got := scr.ViewStringCells(0, 1, 4); got != "2222" {
		t.Errorf("row1 after delete = %q, want %q", got, "2222")
	}
}

func TestInsertDeleteChars(t *testing.T) {
	scr := newTestScreen(10, 1)
	p := New(scr)
	p.WriteString("ABCDE")
	p.WriteString("\x1b[1;2H\x1b[2@") // insert 2 blanks at col 2
	if got := scr.ViewStringCells(0, 0, 7); got != "A  BCDE" {
		t.Errorf("after insert chars = %q, want %q", got, "A  BCDE")
	}
	p.WriteString("\x1b[1;2H\x1b[2P") // delete the 2 blanks just inserted
	if got := scr.ViewStringCells(0, 0, 5); got != "ABCDE" {
		t.Errorf("after delete chars = %q, want %q", got, "ABCDE")
	}
}

func TestScrollUpDown(t *testing.T) {
	scr := newTestScreen(5, 3)
	p := New(scr)
	p.WriteString("1111\r\n2222\r\n3333")
	p.WriteString("\x1b[1S") // scroll up 1
	if got := scr.ViewStringCells(0, 0, 4); got != "2222" {
		t.Errorf("row0 after SU = %q, want %q", got, "2222")
	}
	p.WriteString("\x1b[1T") // scroll down 1, undoing
	if got := scr.ViewStringCells(0, 0, 4); got != "    " {
		t.Errorf("row0 after SD = %q, want blank", got)
	}
	if got := scr.ViewStringCells(0, 1, 4); got != "2222" {
		t.Errorf("row1 after SD = %q, want %q", got, "2222")
	}
}

func TestOriginMode_ClampsToScrollRegion(t *testing.T) {
	scr := newTestScreen(10, 10)
	p := New(scr)
	p.WriteString("\x1b[3;7r")    // scroll region rows 3..7 (1-based)
	p.WriteString("\x1b[?6h")     // origin mode
	p.WriteString("\x1b[1;1H")    // home -> top-left of region
	if _, y := scr.CursorPosition(); y != 2 {
		t.Errorf("origin-mode home y = %d, want 2 (region top)", y)
	}
}

func TestRepeatLast(t *testing.T) {
	scr := newTestScreen(10, 1)
	p := New(scr)
	p.WriteString("A\x1b[3b") // REP: repeat 'A' 3 more times
	if got := scr.ViewStringCells(0, 0, 4); got != "AAAA" {
		t.Errorf("row = %q, want %q", got, "AAAA")
	}
}

func TestTabClear(t *testing.T) {
	scr := newTestScreen(20, 1)
	p := New(scr)
	p.WriteString("\x1b[1;9H\x1b[0g") // clear tab stop at current column
	found := false
	for _, ts := range scr.tabStops {
		if ts == 8 {
			found = true
		}
	}
	if found {
		t.Error("tab stop at column 8 should have been cleared")
	}
}
