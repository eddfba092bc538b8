package refscreen

import (
	"testing"

	"github.com/cdavis5e/vtinput/vtinput"
)

func TestScreen_LineFeedScrollsIntoScrollback(t *testing.T) {
	scr, term := newTermScreen(3, 10)
	term.WriteString("one\r\n")
	term.WriteString("two\r\n")
	term.WriteString("three\r\n")
	term.WriteString("four")

	if got := scr.primary.ScrollbackLen(); got != 1 {
		t.Fatalf("ScrollbackLen = %d, want 1", got)
	}
	if got := scr.primary.LineContent(0); got != "two" {
		t.Errorf("row 0 = %q, want %q (one scrolled into history)", got, "two")
	}
	if got := scr.ViewStringCells(0, 2, 4); got != "four" {
		t.Errorf("row 2 = %q, want %q", got, "four")
	}
}

func TestScreen_AlternateScreenSwapIsolatesContent(t *testing.T) {
	scr, term := newTermScreen(3, 20)
	term.WriteString("primary text")

	term.WriteString("\x1b[?1049h")
	if !scr.HasMode(vtinput.ModeAltScreen) {
		t.Fatal("ModeAltScreen not set after CSI ?1049h")
	}
	if got := scr.ViewStringCells(0, 0, 12); got != "            " {
		t.Errorf("alt screen row 0 = %q, want blank", got)
	}
	term.WriteString("\x1b[Halt text")
	if got := scr.ViewStringCells(0, 0, 8); got != "alt text" {
		t.Errorf("alt screen after write = %q, want %q", got, "alt text")
	}

	term.WriteString("\x1b[?1049l")
	if scr.HasMode(vtinput.ModeAltScreen) {
		t.Fatal("ModeAltScreen still set after CSI ?1049l")
	}
	if got := scr.ViewStringCells(0, 0, 12); got != "primary text" {
		t.Errorf("primary screen after restore = %q, want %q", got, "primary text")
	}
}

func TestScreen_AlternateScreenHasNoScrollback(t *testing.T) {
	scr, term := newTermScreen(2, 10)
	term.WriteString("\x1b[?1047h")
	term.WriteString("a\r\nb\r\nc\r\nd")
	if got := scr.alternate.ScrollbackLen(); got != 0 {
		t.Errorf("alternate scrollback = %d, want 0", got)
	}
}

func TestScreen_TabStopsDefaultEveryEightColumns(t *testing.T) {
	scr := NewScreen(5, 30)
	want := []int{0, 8, 16, 24}
	got := scr.TabStops()
	if len(got) != len(want) {
		t.Fatalf("TabStops = %v, want %v", got, want)
	}
	for i, c := range want {
		if got[i] != c {
			t.Errorf("TabStops[%d] = %d, want %d", i, got[i], c)
		}
	}
}

func TestScreen_HorizontalTabAdvancesToNextStop(t *testing.T) {
	scr, term := newTermScreen(5, 30)
	term.WriteString("a\tb")
	x, y := scr.CursorPosition()
	if y != 0 || x != 9 {
		t.Errorf("cursor after a<TAB>b = (%d,%d), want (9,0)", x, y)
	}
	if got := scr.ViewStringCells(0, 0, 9); got[0] != 'a' || got[8] != 'b' {
		t.Errorf("row = %q, want 'a' at 0 and 'b' at 8", got)
	}
}

func TestScreen_ClearTabStopRemovesOnlyThatColumn(t *testing.T) {
	scr, term := newTermScreen(5, 30)
	term.WriteString("\x1b[9G") // column 9 (1-based) = index 8
	term.WriteString("\x1b[g")  // TBC 0: clear tab stop at cursor
	got := scr.TabStops()
	for _, c := range got {
		if c == 8 {
			t.Fatalf("tab stop at column 8 still present after CSI g: %v", got)
		}
	}
	if len(got) != 3 {
		t.Errorf("TabStops = %v, want 3 remaining stops", got)
	}
}

func TestScreen_HyperlinkRoundTripsThroughCell(t *testing.T) {
	scr, term := newTermScreen(2, 20)
	term.WriteString("\x1b]8;;https://example.com\x1b\\link\x1b]8;;\x1b\\")
	cell := scr.GridView.ViewGetCell(0, 0)
	if cell.Attrs.HyperlinkID == "" {
		t.Fatal("cell has no hyperlink id after OSC 8")
	}
	if got := scr.hyperlinks[cell.Attrs.HyperlinkID]; got != "https://example.com" {
		t.Errorf("hyperlink uri = %q, want %q", got, "https://example.com")
	}
}

func TestScreen_SixelImagePlacedAtCursor(t *testing.T) {
	scr := NewScreen(10, 40)
	scr.SetCursorPosition(5, 2)
	scr.PlaceSixelImage(5, 2, vtinput.SixelImage{
		Width: 16, Height: 16,
		Pixels: make([]vtinput.Color, 16*16),
	})
	placements := scr.images.Placements()
	if len(placements) != 1 {
		t.Fatalf("Placements = %d, want 1", len(placements))
	}
	p := placements[0]
	if p.Row != 2 || p.Col != 5 {
		t.Errorf("placement at (%d,%d), want (5,2) in (col,row)", p.Col, p.Row)
	}
	if p.Cols != 2 || p.Rows != 1 {
		t.Errorf("placement size = %dx%d cells, want 2x1", p.Cols, p.Rows)
	}
}

func TestScreen_ScrollRegionConfinesScroll(t *testing.T) {
	scr, term := newTermScreen(5, 10)
	term.WriteString("TOP")
	term.WriteString("\x1b[5;1H") // row 5 (1-based), col 1
	term.WriteString("BOT")

	term.WriteString("\x1b[2;4r") // DECSTBM rows 2-4 (0-based rows 1-3)
	for i := 0; i < 6; i++ {
		term.WriteString("x\r\n")
	}

	if got := scr.ViewStringCells(0, 0, 3); got != "TOP" {
		t.Errorf("row 0 = %q, want %q (outside the scroll region, untouched)", got, "TOP")
	}
	if got := scr.ViewStringCells(0, 4, 3); got != "BOT" {
		t.Errorf("row 4 = %q, want %q (outside the scroll region, untouched)", got, "BOT")
	}
	if got := scr.primary.ScrollbackLen(); got != 0 {
		t.Errorf("ScrollbackLen = %d, want 0 (region scroll doesn't grow primary scrollback)", got)
	}
}

func TestScreen_SoftResetRestoresMarginsAndOriginMode(t *testing.T) {
	scr, term := newTermScreen(5, 10)
	term.WriteString("\x1b[2;4r")
	term.WriteString("\x1b[?6h") // DECOM
	term.WriteString("\x1b[!p")  // DECSTR soft reset
	top, bottom := scr.ScrollRegion()
	if top != 0 || bottom != 4 {
		t.Errorf("ScrollRegion after DECSTR = (%d,%d), want (0,4)", top, bottom)
	}
	if scr.HasMode(vtinput.ModeOrigin) {
		t.Error("ModeOrigin still set after DECSTR")
	}
}

func TestScreen_FullResetClearsTitleAndImages(t *testing.T) {
	scr, term := newTermScreen(5, 10)
	term.WriteString("\x1b]0;My Title\x07")
	scr.PlaceSixelImage(0, 0, vtinput.SixelImage{Width: 8, Height: 8, Pixels: make([]vtinput.Color, 64)})
	term.WriteString("\x1bc") // RIS
	if scr.Title() != "" {
		t.Errorf("Title after RIS = %q, want empty", scr.Title())
	}
	if n := scr.images.ImageCount(); n != 0 {
		t.Errorf("ImageCount after RIS = %d, want 0", n)
	}
}

func TestScreen_TitleStackPushPop(t *testing.T) {
	scr, term := newTermScreen(5, 10)
	term.WriteString("\x1b]0;first\x07")
	term.WriteString("\x1b[22t") // push title
	term.WriteString("\x1b]0;second\x07")
	term.WriteString("\x1b[23t") // pop title
	if scr.Title() != "first" {
		t.Errorf("Title after push/pop = %q, want %q", scr.Title(), "first")
	}
}

func TestScreen_CursorColorSetFromOSC(t *testing.T) {
	scr, term := newTermScreen(5, 10)
	term.WriteString("\x1b]12;#ff0000\x07")
	if scr.cursorColor == nil {
		t.Fatal("cursorColor not set after OSC 12")
	}
}
