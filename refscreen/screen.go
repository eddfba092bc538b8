package refscreen

import (
	"image/color"
	"strings"
	"sync"

	"github.com/cdavis5e/vtinput/vtinput"
)

// Screen is the reference vtinput.ScreenWriter backend: two Buffers (primary
// and alternate), a Cursor, an ImageManager, and the mode/margin/title state
// ChromeWriter exposes. It obtains its Grid-derived half by embedding a
// *vtinput.GridView built over gridAdapter, which translates GridView's
// absolute addressing onto whichever Buffer is currently active.
type Screen struct {
	*vtinput.GridView

	mu sync.RWMutex

	rows, cols int

	primary      *Buffer
	alternate    *Buffer
	activeBuffer *Buffer
	altActive    bool

	cursor      *Cursor
	cursorColor color.Color

	modes vtinput.ModeFlags

	scrollTop, scrollBottom int
	marginLeft, marginRight int

	title      string
	titleStack []string

	selections map[byte][]byte
	hyperlinks map[string]string

	images *ImageManager

	passthrough []string
	flushes     int
}

// NewScreen creates a Screen with the given dimensions and a bounded
// scrollback on the primary buffer. The alternate buffer never accumulates
// history, matching every real terminal's altscreen behavior.
func NewScreen(rows, cols int) *Screen {
	s := &Screen{
		rows:         rows,
		cols:         cols,
		primary:      NewBufferWithStorage(rows, cols, NewRingScrollback(10000)),
		alternate:    NewBuffer(rows, cols),
		cursor:       NewCursor(),
		scrollBottom: rows - 1,
		marginRight:  cols - 1,
		modes:        vtinput.ModeAutowrap | vtinput.ModeCursorVisible,
		selections:   map[byte][]byte{},
		hyperlinks:   map[string]string{},
		images:       NewImageManager(),
	}
	s.activeBuffer = s.primary
	s.GridView = vtinput.NewGridView(&gridAdapter{s: s})
	return s
}

var _ vtinput.ScreenWriter = (*Screen)(nil)

func (s *Screen) CursorPosition() (x, y int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cursor.Col, s.cursor.Row
}

func (s *Screen) SetCursorPosition(x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor.Col, s.cursor.Row = x, y
}

func (s *Screen) SetMode(m vtinput.ModeFlags) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modes |= m
	if m&vtinput.ModeCursorVisible != 0 {
		s.cursor.Visible = true
	}
}

func (s *Screen) ClearMode(m vtinput.ModeFlags) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modes &^= m
	if m&vtinput.ModeCursorVisible != 0 {
		s.cursor.Visible = false
	}
}

// HasMode answers DECRQM. ModeAltScreen is derived from altActive rather
// than tracked in the bitmask: SetAlternateScreen is the sole signal the
// dispatch layer sends for 1047/1049, never SetMode/ClearMode.
func (s *Screen) HasMode(m vtinput.ModeFlags) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if m == vtinput.ModeAltScreen {
		return s.altActive
	}
	return s.modes&m != 0
}

func (s *Screen) ScrollRegion() (top, bottom int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scrollTop, s.scrollBottom
}

func (s *Screen) SetScrollRegion(top, bottom int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scrollTop, s.scrollBottom = top, bottom
}

func (s *Screen) ScrollMargin() (left, right int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.marginLeft, s.marginRight
}

func (s *Screen) SetScrollMargin(left, right int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marginLeft, s.marginRight = left, right
}

// SetAlternateScreen implements smcup/rmcup. Entering the alternate screen
// always starts from a freshly cleared buffer, matching xterm's 1047/1049.
func (s *Screen) SetAlternateScreen(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if on == s.altActive {
		return
	}
	s.altActive = on
	if on {
		s.alternate = NewBuffer(s.rows, s.cols)
		s.activeBuffer = s.alternate
	} else {
		s.activeBuffer = s.primary
	}
}

func (s *Screen) SoftReset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scrollTop, s.scrollBottom = 0, s.rows-1
	s.marginLeft, s.marginRight = 0, s.cols-1
	s.modes &^= vtinput.ModeOrigin
	s.cursor.Style = CursorStyleBlinkingBlock
}

func (s *Screen) FullReset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.primary = NewBufferWithStorage(s.rows, s.cols, s.primary.ScrollbackProvider())
	s.alternate = NewBuffer(s.rows, s.cols)
	s.altActive = false
	s.activeBuffer = s.primary
	s.cursor = NewCursor()
	s.scrollTop, s.scrollBottom = 0, s.rows-1
	s.marginLeft, s.marginRight = 0, s.cols-1
	s.modes = vtinput.ModeAutowrap | vtinput.ModeCursorVisible
	s.title = ""
	s.titleStack = nil
	s.images.Clear()
	s.hyperlinks = map[string]string{}
	s.selections = map[byte][]byte{}
}

// Redraw asks the backend to repaint. Screen has no display of its own to
// refresh, so this is a no-op; a renderer embedding Screen would override
// the behavior by wrapping rather than by editing this method.
func (s *Screen) Redraw() {}

func (s *Screen) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.title = title
}

func (s *Screen) PushTitle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.titleStack = append(s.titleStack, s.title)
}

func (s *Screen) PopTitle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.titleStack) == 0 {
		return
	}
	s.title = s.titleStack[len(s.titleStack)-1]
	s.titleStack = s.titleStack[:len(s.titleStack)-1]
}

// Title returns the current window title, as set by SetTitle/PopTitle.
func (s *Screen) Title() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.title
}

func (s *Screen) SetCursorColor(c vtinput.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursorColor = colorToRefscreen(c, true)
}

func (s *Screen) SetCursorStyle(st vtinput.CursorStyle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor.SetStyleFromVT(st)
}

func (s *Screen) SetSelection(kind byte, payload []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(payload))
	copy(cp, payload)
	s.selections[kind] = cp
}

func (s *Screen) GetSelection(kind byte) (payload []byte, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payload, ok = s.selections[kind]
	return
}

// RawString records a tmux DCS passthrough payload verbatim; Screen has no
// outer terminal to forward it to, so it is only kept for inspection.
func (s *Screen) RawString(raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.passthrough = append(s.passthrough, raw)
}

func (s *Screen) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushes++
}

func (s *Screen) SetHyperlink(id, uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if uri == "" {
		delete(s.hyperlinks, id)
		return
	}
	s.hyperlinks[id] = uri
}

// sixelCellWidth/sixelCellHeight are the pixel-per-cell assumption used to
// size a Sixel placement in cells; real terminals derive this from the
// active font metrics, which this package does not track.
const (
	sixelCellWidth  = 8
	sixelCellHeight = 16
)

func (s *Screen) PlaceSixelImage(x, y int, img vtinput.SixelImage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := make([]byte, 0, img.Width*img.Height*4)
	for _, c := range img.Pixels {
		rgba := resolveDefaultColor(colorToRefscreen(c, false), false)
		data = append(data, rgba.R, rgba.G, rgba.B, rgba.A)
	}
	id := s.images.Store(uint32(img.Width), uint32(img.Height), data)

	cols := (img.Width + sixelCellWidth - 1) / sixelCellWidth
	rows := (img.Height + sixelCellHeight - 1) / sixelCellHeight
	if cols == 0 {
		cols = 1
	}
	if rows == 0 {
		rows = 1
	}
	s.images.Place(&ImagePlacement{
		ImageID: id,
		Row:     y,
		Col:     x,
		Cols:    cols,
		Rows:    rows,
		SrcW:    uint32(img.Width),
		SrcH:    uint32(img.Height),
	})
}

func (s *Screen) SetTabStop(x int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeBuffer.SetTabStop(x)
}

func (s *Screen) ClearTabStop(x int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeBuffer.ClearTabStop(x)
}

func (s *Screen) ClearAllTabStops() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeBuffer.ClearAllTabStops()
}

func (s *Screen) NextTabStop(x int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeBuffer.NextTabStop(x)
}

func (s *Screen) PrevTabStop(x int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeBuffer.PrevTabStop(x)
}

func (s *Screen) TabStops() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeBuffer.TabStops()
}

func (s *Screen) SetTabStops(cols []int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeBuffer.SetTabStops(cols)
}

// colorToRefscreen converts an SGR-parameter color into the image/color.Color
// Cell stores. ColorIndexed keeps the raw index rather than resolving it
// against DefaultPalette immediately, so a later palette change (OSC 4)
// still affects already-written cells, matching real terminal behavior.
func colorToRefscreen(c vtinput.Color, fg bool) color.Color {
	switch c.Kind {
	case vtinput.ColorIndexed:
		return &IndexedColor{Index: c.Index}
	case vtinput.ColorRGB:
		return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
	default:
		if fg {
			return &NamedColor{Name: NamedColorForeground}
		}
		return &NamedColor{Name: NamedColorBackground}
	}
}

// refscreenColorToVT reverses colorToRefscreen for the cells this package
// itself wrote. A *NamedColor produced elsewhere (e.g. NewCell's zero
// value) always names the default foreground/background in practice, so it
// maps back to vtinput.DefaultColor.
func refscreenColorToVT(c color.Color) vtinput.Color {
	switch v := c.(type) {
	case *IndexedColor:
		return vtinput.IndexedColor(v.Index)
	case color.RGBA:
		return vtinput.RGBColor(v.R, v.G, v.B)
	default:
		return vtinput.DefaultColor
	}
}

// gridAdapter implements vtinput.Grid over Screen's active Buffer, bridging
// Buffer's separate on-screen/scrollback storage into the single absolute
// coordinate space Grid addresses: row 0 is the oldest scrollback line,
// row HistorySize() the top of the visible screen.
type gridAdapter struct {
	s *Screen
}

func (g *gridAdapter) buf() *Buffer { return g.s.activeBuffer }

func (g *gridAdapter) Size() (sx, sy int) {
	g.s.mu.RLock()
	defer g.s.mu.RUnlock()
	return g.s.cols, g.s.rows
}

func (g *gridAdapter) HistorySize() int {
	g.s.mu.RLock()
	defer g.s.mu.RUnlock()
	if g.s.altActive {
		return 0
	}
	return g.s.primary.ScrollbackLen()
}

func (g *gridAdapter) HasHistory() bool {
	g.s.mu.RLock()
	defer g.s.mu.RUnlock()
	return !g.s.altActive
}

// unlockedHistorySize is HistorySize without taking the lock, for callers
// that already hold it (every Grid method below). Callers index into the
// active Buffer with y - unlockedHistorySize(); GridView only ever asks a
// Grid to mutate on-screen rows, never true scrollback.
func (g *gridAdapter) unlockedHistorySize() int {
	if g.s.altActive {
		return 0
	}
	return g.s.primary.ScrollbackLen()
}

func (g *gridAdapter) LineUsed(y int) bool {
	g.s.mu.RLock()
	defer g.s.mu.RUnlock()
	hist := g.unlockedHistorySize()
	if y < hist {
		for _, c := range g.buf().ScrollbackLine(y) {
			if c.Char != ' ' && c.Char != 0 {
				return true
			}
		}
		return false
	}
	buf := g.buf()
	row := y - hist
	for x := 0; x < buf.Cols(); x++ {
		if c := buf.Cell(row, x); c != nil && c.Char != ' ' && c.Char != 0 {
			return true
		}
	}
	return false
}

func (g *gridAdapter) GetCell(x, y int) vtinput.GridCell {
	g.s.mu.RLock()
	defer g.s.mu.RUnlock()
	hist := g.unlockedHistorySize()
	buf := g.buf()
	if y < hist {
		line := buf.ScrollbackLine(y)
		if x < 0 || x >= len(line) {
			return vtinput.GridCell{Ch: ' ', Width: 1}
		}
		return line[x].ToGridCell()
	}
	c := buf.Cell(y-hist, x)
	if c == nil {
		return vtinput.GridCell{Ch: ' ', Width: 1}
	}
	return c.ToGridCell()
}

func (g *gridAdapter) SetCell(x, y int, c vtinput.GridCell) {
	g.s.mu.Lock()
	defer g.s.mu.Unlock()
	row := y - g.unlockedHistorySize()
	g.buf().SetCell(row, x, CellFromGridCell(c, g.s.hyperlinks))
}

func (g *gridAdapter) SetPadding(x, y int) {
	g.s.mu.Lock()
	defer g.s.mu.Unlock()
	row := y - g.unlockedHistorySize()
	g.buf().SetCell(row, x, NewWideCharSpacer())
}

func (g *gridAdapter) SetCells(x, y int, attrs vtinput.CellAttrs, s []rune) {
	g.s.mu.Lock()
	defer g.s.mu.Unlock()
	row := y - g.unlockedHistorySize()
	base := CellFromAttrs(attrs, g.s.hyperlinks)
	for i, r := range s {
		c := base
		c.Char = r
		g.buf().SetCell(row, x+i, c)
	}
}

func (g *gridAdapter) StringCells(x, y, nx int) string {
	g.s.mu.RLock()
	defer g.s.mu.RUnlock()
	row := y - g.unlockedHistorySize()
	buf := g.buf()
	var b strings.Builder
	for i := 0; i < nx; i++ {
		c := buf.Cell(row, x+i)
		if c == nil || c.IsWideSpacer() {
			continue
		}
		ch := c.Char
		if ch == 0 {
			ch = ' '
		}
		b.WriteRune(ch)
	}
	return b.String()
}

func (g *gridAdapter) blankCell(bg vtinput.Color) Cell {
	return CellFromAttrs(vtinput.CellAttrs{Bg: bg}, nil)
}

func (g *gridAdapter) Clear(x, y, nx, ny int, bg vtinput.Color) {
	g.s.mu.Lock()
	defer g.s.mu.Unlock()
	row0 := y - g.unlockedHistorySize()
	buf := g.buf()
	blank := g.blankCell(bg)
	for i := 0; i < ny; i++ {
		for j := 0; j < nx; j++ {
			buf.SetCell(row0+i, x+j, blank)
		}
	}
}

// MoveLines copies n rows from src to dst (both absolute, history-inclusive)
// and blanks whatever source rows the destination range doesn't cover,
// mirroring grid.c's grid_move_lines: the caller relies on this to do the
// blanking itself rather than issuing a separate Clear in every case (see
// ViewScrollRegionDown in gridview.go).
func (g *gridAdapter) MoveLines(dst, src, n int, bg vtinput.Color) {
	if n <= 0 || dst == src {
		return
	}
	g.s.mu.Lock()
	defer g.s.mu.Unlock()
	hist := g.unlockedHistorySize()
	buf := g.buf()
	d, s := dst-hist, src-hist
	blank := g.blankCell(bg)

	if d > s {
		for i := n - 1; i >= 0; i-- {
			g.copyRow(buf, d+i, s+i)
		}
	} else {
		for i := 0; i < n; i++ {
			g.copyRow(buf, d+i, s+i)
		}
	}
	for i := 0; i < n; i++ {
		row := s + i
		if row >= d && row < d+n {
			continue
		}
		g.blankRow(buf, row, blank)
	}
}

func (g *gridAdapter) copyRow(buf *Buffer, dst, src int) {
	cols := buf.Cols()
	for x := 0; x < cols; x++ {
		c := buf.Cell(src, x)
		if c == nil {
			continue
		}
		buf.SetCell(dst, x, *c)
	}
}

func (g *gridAdapter) blankRow(buf *Buffer, row int, blank Cell) {
	for x := 0; x < buf.Cols(); x++ {
		buf.SetCell(row, x, blank)
	}
}

func (g *gridAdapter) MoveCells(dstX, srcX, y, n int, bg vtinput.Color) {
	if n <= 0 {
		return
	}
	g.s.mu.Lock()
	defer g.s.mu.Unlock()
	row := y - g.unlockedHistorySize()
	buf := g.buf()
	cols := buf.Cols()
	blank := g.blankCell(bg)

	saved := make([]Cell, n)
	for i := 0; i < n; i++ {
		if c := buf.Cell(row, srcX+i); c != nil {
			saved[i] = *c
		} else {
			saved[i] = NewCell()
		}
	}
	for i := 0; i < n; i++ {
		if dstX+i >= 0 && dstX+i < cols {
			buf.SetCell(row, dstX+i, saved[i])
		}
	}
	for i := 0; i < n; i++ {
		col := srcX + i
		if col >= dstX && col < dstX+n {
			continue
		}
		if col < 0 || col >= cols {
			continue
		}
		buf.SetCell(row, col, blank)
	}
}

func (g *gridAdapter) MoveRect(dstX, dstY, srcX, srcY, nx, ny int, bg vtinput.Color) {
	if nx <= 0 || ny <= 0 {
		return
	}
	g.s.mu.Lock()
	defer g.s.mu.Unlock()
	hist := g.unlockedHistorySize()
	buf := g.buf()
	dY, sY := dstY-hist, srcY-hist
	blank := g.blankCell(bg)

	saved := make([][]Cell, ny)
	for i := 0; i < ny; i++ {
		row := make([]Cell, nx)
		for j := 0; j < nx; j++ {
			if c := buf.Cell(sY+i, srcX+j); c != nil {
				row[j] = *c
			} else {
				row[j] = NewCell()
			}
		}
		saved[i] = row
	}
	for i := 0; i < ny; i++ {
		for j := 0; j < nx; j++ {
			buf.SetCell(dY+i, dstX+j, saved[i][j])
		}
	}
	for i := 0; i < ny; i++ {
		row := sY + i
		rowCovered := row >= dY && row < dY+ny
		for j := 0; j < nx; j++ {
			col := srcX + j
			if rowCovered && col >= dstX && col < dstX+nx {
				continue
			}
			buf.SetCell(row, col, blank)
		}
	}
}

// CollectHistory folds the oldest on-screen line into history storage
// ahead of ScrollHistory actually pushing it; Buffer.ScrollUp does both
// steps in one call, so there is nothing to do here in advance.
func (g *gridAdapter) CollectHistory() {}

func (g *gridAdapter) ScrollHistory(bg vtinput.Color) {
	g.s.mu.Lock()
	defer g.s.mu.Unlock()
	buf := g.buf()
	rows := buf.Rows()
	buf.ScrollUp(0, rows, 1)
	g.blankRow(buf, rows-1, g.blankCell(bg))
}

// ScrollHistoryRegion handles a scroll-up confined to [rupper, rlower] while
// history is active but the region isn't the full screen. It shifts rows
// within the region only; unlike ScrollHistory it does not grow true
// scrollback, so the line pushed off the top of the region is lost rather
// than retained. This is a deliberate simplification for this reference
// backend rather than a fidelity goal: real terminals differ on whether a
// partial-screen scroll should feed history at all.
func (g *gridAdapter) ScrollHistoryRegion(rupper, rlower int, bg vtinput.Color) {
	g.s.mu.Lock()
	defer g.s.mu.Unlock()
	hist := g.unlockedHistorySize()
	buf := g.buf()
	top, bottom := rupper-hist, rlower-hist+1
	sb := buf.ScrollbackProvider()
	buf.SetScrollbackProvider(nil) // Buffer.ScrollUp pushes to scrollback when top == 0
	buf.ScrollUp(top, bottom, 1)
	buf.SetScrollbackProvider(sb)
	g.blankRow(buf, bottom-1, g.blankCell(bg))
}

var _ vtinput.Grid = (*gridAdapter)(nil)
