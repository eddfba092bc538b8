package vtinput

import "strings"

// testScreen is a minimal in-memory ScreenWriter used by this package's
// own tests: a flat grid with no scrollback, just enough mode/margin/title
// bookkeeping for the dispatch logic it exercises to behave like a real
// backend would. It is not a reference implementation (see package
// refscreen for that); it exists purely so vtinput's tests can drive a
// Parser without pulling in another package.
type testScreen struct {
	sx, sy int
	cells  [][]GridCell

	cx, cy int
	modes  ModeFlags

	scrollTop, scrollBottom int
	marginLeft, marginRight int

	title      string
	titleStack []string

	cursorColor Color
	cursorStyle CursorStyle

	selections map[byte][]byte
	hyperlinks map[string]string // placeholder store, keyed by id

	tabStops []int

	raw          strings.Builder
	flushes      int
	sixelImages  []placedSixel
	resetCount   int
	redrawCount  int
}

type placedSixel struct {
	x, y int
	img  SixelImage
}

func newTestScreen(sx, sy int) *testScreen {
	s := &testScreen{
		sx: sx, sy: sy,
		scrollTop: 0, scrollBottom: sy - 1,
		marginLeft: 0, marginRight: sx - 1,
		modes:      ModeAutowrap | ModeCursorVisible,
		selections: map[byte][]byte{},
		hyperlinks: map[string]string{},
	}
	s.cells = make([][]GridCell, sy)
	for y := range s.cells {
		s.cells[y] = make([]GridCell, sx)
		for x := range s.cells[y] {
			s.cells[y][x] = GridCell{Ch: ' ', Width: 1}
		}
	}
	for x := 0; x < sx; x += 8 {
		s.tabStops = append(s.tabStops, x)
	}
	return s
}

func (s *testScreen) Size() (int, int) { return s.sx, s.sy }

func (s *testScreen) ViewGetCell(px, py int) GridCell {
	if py < 0 || py >= s.sy || px < 0 || px >= s.sx {
		return GridCell{}
	}
	return s.cells[py][px]
}

func (s *testScreen) ViewSetCell(px, py int, c GridCell) {
	if py < 0 || py >= s.sy || px < 0 || px >= s.sx {
		return
	}
	s.cells[py][px] = c
}

func (s *testScreen) ViewSetPadding(px, py int) {
	s.ViewSetCell(px, py, GridCell{Width: 0})
}

func (s *testScreen) ViewSetCells(px, py int, attrs CellAttrs, runes []rune) {
	for i, r := range runes {
		s.ViewSetCell(px+i, py, GridCell{Ch: r, Width: 1, Attrs: attrs})
	}
}

func (s *testScreen) ViewStringCells(px, py, nx int) string {
	if py < 0 || py >= s.sy {
		return ""
	}
	var b strings.Builder
	for x := px; x < px+nx && x < s.sx; x++ {
		if x < 0 {
			continue
		}
		c := s.cells[py][x]
		if c.Width == 0 {
			continue
		}
		if c.Ch == 0 {
			b.WriteRune(' ')
		} else {
			b.WriteRune(c.Ch)
		}
	}
	return b.String()
}

func (s *testScreen) ViewClear(px, py, nx, ny int, bg Color) {
	for y := py; y < py+ny && y < s.sy; y++ {
		if y < 0 {
			continue
		}
		for x := px; x < px+nx && x < s.sx; x++ {
			if x < 0 {
				continue
			}
			s.cells[y][x] = GridCell{Ch: ' ', Width: 1, Attrs: CellAttrs{Bg: bg}}
		}
	}
}

func (s *testScreen) ViewClearHistory(bg Color) {}

func (s *testScreen) shiftRows(top, bottom, n int) {
	if n > 0 {
		for y := bottom; y >= top+n; y-- {
			s.cells[y] = s.cells[y-n]
		}
		for y := top; y < top+n && y <= bottom; y++ {
			s.cells[y] = make([]GridCell, s.sx)
			for x := range s.cells[y] {
				s.cells[y][x] = GridCell{Ch: ' ', Width: 1}
			}
		}
	} else if n < 0 {
		n = -n
		for y := top; y <= bottom-n; y++ {
			s.cells[y] = s.cells[y+n]
		}
		for y := bottom - n + 1; y <= bottom; y++ {
			s.cells[y] = make([]GridCell, s.sx)
			for x := range s.cells[y] {
				s.cells[y][x] = GridCell{Ch: ' ', Width: 1}
			}
		}
	}
}

// ViewScrollRegionUp moves content up within the region (the top line is
// discarded, a blank line enters at the bottom) — shiftRows' negative-n
// case.
func (s *testScreen) ViewScrollRegionUp(rupper, rlower, rleft, rright int, bg Color) {
	s.shiftRows(rupper, rlower, -1)
}

// ViewScrollRegionDown is the mirror: content moves down, a blank line
// enters at the top.
func (s *testScreen) ViewScrollRegionDown(rupper, rlower, rleft, rright int, bg Color) {
	s.shiftRows(rupper, rlower, 1)
}
func (s *testScreen) ViewScrollRegionLeft(rupper, rlower, rleft, rright int, bg Color) {}
func (s *testScreen) ViewScrollRegionRight(rupper, rlower, rleft, rright int, bg Color) {}

func (s *testScreen) ViewInsertLines(py, ny int, bg Color) {
	s.shiftRows(py, s.sy-1, ny)
}
func (s *testScreen) ViewInsertLinesRegion(rlower, py, ny, rleft, rright int, bg Color) {
	s.shiftRows(py, rlower, ny)
}
func (s *testScreen) ViewDeleteLines(py, ny int, bg Color) {
	s.shiftRows(py, s.sy-1, -ny)
}
func (s *testScreen) ViewDeleteLinesRegion(rlower, py, ny, rleft, rright int, bg Color) {
	s.shiftRows(py, rlower, -ny)
}

func (s *testScreen) ViewInsertCells(rright, px, py, nx int, bg Color) {
	if py < 0 || py >= s.sy {
		return
	}
	row := s.cells[py]
	for x := rright; x >= px+nx; x-- {
		row[x] = row[x-nx]
	}
	for x := px; x < px+nx && x <= rright; x++ {
		row[x] = GridCell{Ch: ' ', Width: 1, Attrs: CellAttrs{Bg: bg}}
	}
}
func (s *testScreen) ViewDeleteCells(rright, px, py, nx int, bg Color) {
	if py < 0 || py >= s.sy {
		return
	}
	row := s.cells[py]
	for x := px; x <= rright-nx; x++ {
		row[x] = row[x+nx]
	}
	for x := rright - nx + 1; x <= rright; x++ {
		if x < 0 || x >= s.sx {
			continue
		}
		row[x] = GridCell{Ch: ' ', Width: 1, Attrs: CellAttrs{Bg: bg}}
	}
}
func (s *testScreen) ViewInsertColumns(rright, px, nx, rupper, rlower int, bg Color) {
	for y := rupper; y <= rlower; y++ {
		s.ViewInsertCells(rright, px, y, nx, bg)
	}
}
func (s *testScreen) ViewDeleteColumns(rright, px, nx, rupper, rlower int, bg Color) {
	for y := rupper; y <= rlower; y++ {
		s.ViewDeleteCells(rright, px, y, nx, bg)
	}
}

func (s *testScreen) CursorPosition() (int, int)  { return s.cx, s.cy }
func (s *testScreen) SetCursorPosition(x, y int)  { s.cx, s.cy = x, y }

func (s *testScreen) SetMode(m ModeFlags)      { s.modes |= m }
func (s *testScreen) ClearMode(m ModeFlags)    { s.modes &^= m }
func (s *testScreen) HasMode(m ModeFlags) bool { return s.modes&m != 0 }

func (s *testScreen) ScrollRegion() (int, int)     { return s.scrollTop, s.scrollBottom }
func (s *testScreen) SetScrollRegion(top, bottom int) { s.scrollTop, s.scrollBottom = top, bottom }
func (s *testScreen) ScrollMargin() (int, int)     { return s.marginLeft, s.marginRight }
func (s *testScreen) SetScrollMargin(left, right int) { s.marginLeft, s.marginRight = left, right }

func (s *testScreen) SetAlternateScreen(on bool) {}
func (s *testScreen) SoftReset()                 {}
func (s *testScreen) FullReset()                 { s.resetCount++ }
func (s *testScreen) Redraw()                    { s.redrawCount++ }

func (s *testScreen) SetTitle(t string) { s.title = t }
func (s *testScreen) PushTitle()        { s.titleStack = append(s.titleStack, s.title) }
func (s *testScreen) PopTitle() {
	if n := len(s.titleStack); n > 0 {
		s.title = s.titleStack[n-1]
		s.titleStack = s.titleStack[:n-1]
	}
}

func (s *testScreen) SetCursorColor(c Color)      { s.cursorColor = c }
func (s *testScreen) SetCursorStyle(st CursorStyle) { s.cursorStyle = st }

func (s *testScreen) SetSelection(kind byte, payload []byte) {
	s.selections[kind] = append([]byte(nil), payload...)
}
func (s *testScreen) GetSelection(kind byte) ([]byte, bool) {
	v, ok := s.selections[kind]
	return v, ok
}

func (s *testScreen) RawString(str string) { s.raw.WriteString(str) }
func (s *testScreen) Flush()               { s.flushes++ }

func (s *testScreen) SetHyperlink(id, uri string) { s.hyperlinks[id] = uri }

func (s *testScreen) PlaceSixelImage(x, y int, img SixelImage) {
	s.sixelImages = append(s.sixelImages, placedSixel{x, y, img})
}

func (s *testScreen) SetTabStop(x int) {
	for _, t := range s.tabStops {
		if t == x {
			return
		}
	}
	s.tabStops = append(s.tabStops, x)
}
func (s *testScreen) ClearTabStop(x int) {
	out := s.tabStops[:0]
	for _, t := range s.tabStops {
		if t != x {
			out = append(out, t)
		}
	}
	s.tabStops = out
}
func (s *testScreen) ClearAllTabStops() { s.tabStops = nil }
func (s *testScreen) NextTabStop(x int) int {
	best := -1
	for _, t := range s.tabStops {
		if t > x && (best == -1 || t < best) {
			best = t
		}
	}
	if best == -1 {
		return s.sx - 1
	}
	return best
}
func (s *testScreen) PrevTabStop(x int) int {
	best := -1
	for _, t := range s.tabStops {
		if t < x && t > best {
			best = t
		}
	}
	return best
}
func (s *testScreen) TabStops() []int { return append([]int(nil), s.tabStops...) }
func (s *testScreen) SetTabStops(cols []int) { s.tabStops = append([]int(nil), cols...) }

var _ ScreenWriter = (*testScreen)(nil)
