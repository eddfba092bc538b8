package vtinput

// Grid is the out-of-scope cell storage engine: a rectangular array of
// cells plus whatever scrollback history sits above row 0, addressed in
// absolute coordinates (row 0 is the oldest scrollback line, not the top
// of the visible screen). The parser core never implements one; package
// refscreen ships a reference backend, and any renderer's own grid works
// equally well as long as it satisfies this contract.
//
// Every method name and argument order mirrors the grid.c primitives that
// grid-view.c (the Grid-View Translator, see GridView below) is written
// against, so the translation arithmetic in gridview.go has a direct,
// checkable counterpart here.
type Grid interface {
	// Size returns the visible screen dimensions (sx columns, sy rows).
	Size() (sx, sy int)
	// HistorySize returns the number of scrollback lines currently stored
	// above the visible screen (gd->hsize).
	HistorySize() int
	// HasHistory reports whether this grid accumulates scrollback at all;
	// the alternate screen buffer does not.
	HasHistory() bool

	// LineUsed reports whether the line at absolute row y has any non-empty
	// cell (grid_line.cellused != 0), used by ViewClearHistory's scan.
	LineUsed(y int) bool

	GetCell(x, y int) GridCell
	SetCell(x, y int, c GridCell)
	SetPadding(x, y int)
	SetCells(x, y int, attrs CellAttrs, s []rune)
	StringCells(x, y, nx int) string

	Clear(x, y, nx, ny int, bg Color)
	MoveLines(dst, src, n int, bg Color)
	MoveCells(dstX, srcX, y, n int, bg Color)
	MoveRect(dstX, dstY, srcX, srcY, nx, ny int, bg Color)

	// CollectHistory folds the oldest on-screen line into history storage,
	// and ScrollHistory/ScrollHistoryRegion push it into the scrollback
	// buffer proper (matching grid_collect_history/grid_scroll_history(_region)).
	CollectHistory()
	ScrollHistory(bg Color)
	ScrollHistoryRegion(rupper, rlower int, bg Color)
}

// ChromeWriter covers everything about the screen that is not a grid cell:
// cursor position and shape, mode bits, scroll/margin state, title stack,
// selection, and the handful of pass-through sinks (raw string, Sixel
// placement) dispatch needs. Together with Grid it forms ScreenWriter.
type ChromeWriter interface {
	CursorPosition() (x, y int)
	SetCursorPosition(x, y int)

	SetMode(m ModeFlags)
	ClearMode(m ModeFlags)
	HasMode(m ModeFlags) bool

	ScrollRegion() (top, bottom int)
	SetScrollRegion(top, bottom int)
	ScrollMargin() (left, right int)
	SetScrollMargin(left, right int)

	SetAlternateScreen(on bool)
	SoftReset()
	FullReset()
	Redraw()

	SetTitle(s string)
	PushTitle()
	PopTitle()

	SetCursorColor(c Color)
	SetCursorStyle(s CursorStyle)

	// SetSelection and GetSelection back OSC 52: kind is the clipboard
	// selector byte ('c', 'p', 's', '0'-'7', etc.).
	SetSelection(kind byte, payload []byte)
	GetSelection(kind byte) (payload []byte, ok bool)

	// RawString delivers a verbatim passthrough payload (the tmux DCS
	// "tmux;" extension) straight to the backend.
	RawString(s string)
	// Flush asks the backend to present whatever has been drawn so far;
	// used by the passthrough DCS's "immediate" variant.
	Flush()

	SetHyperlink(id, uri string)

	PlaceSixelImage(x, y int, img SixelImage)

	// Tab stop management backs HTS/TBC and the DECRSPS DECTABSR restore
	// form, which replaces the whole bitmap at once.
	SetTabStop(x int)
	ClearTabStop(x int)
	ClearAllTabStops()
	NextTabStop(x int) int
	PrevTabStop(x int) int
	TabStops() []int
	SetTabStops(cols []int)
}

// ScreenWriter is the single contract the dispatch layer is written
// against. A concrete backend typically implements
// ChromeWriter directly and obtains the Grid-derived half of the
// interface by embedding a *GridView built over its own Grid
// implementation — see refscreen.Screen.
type ScreenWriter interface {
	ViewGrid
	ChromeWriter
}

// ViewGrid is the view-coordinate (screen-relative) half of ScreenWriter:
// exactly the method set GridView implements over a Grid. Keeping it as a
// named interface lets a backend satisfy ScreenWriter purely by embedding
// a *GridView alongside its own ChromeWriter methods.
type ViewGrid interface {
	Size() (sx, sy int)

	ViewGetCell(px, py int) GridCell
	ViewSetCell(px, py int, c GridCell)
	ViewSetPadding(px, py int)
	ViewSetCells(px, py int, attrs CellAttrs, s []rune)
	ViewStringCells(px, py, nx int) string

	ViewClear(px, py, nx, ny int, bg Color)
	ViewClearHistory(bg Color)

	ViewScrollRegionUp(rupper, rlower, rleft, rright int, bg Color)
	ViewScrollRegionDown(rupper, rlower, rleft, rright int, bg Color)
	ViewScrollRegionLeft(rupper, rlower, rleft, rright int, bg Color)
	ViewScrollRegionRight(rupper, rlower, rleft, rright int, bg Color)

	ViewInsertLines(py, ny int, bg Color)
	ViewInsertLinesRegion(rlower, py, ny, rleft, rright int, bg Color)
	ViewDeleteLines(py, ny int, bg Color)
	ViewDeleteLinesRegion(rlower, py, ny, rleft, rright int, bg Color)

	ViewInsertCells(rright, px, py, nx int, bg Color)
	ViewDeleteCells(rright, px, py, nx int, bg Color)
	ViewInsertColumns(rright, px, nx, rupper, rlower int, bg Color)
	ViewDeleteColumns(rright, px, nx, rupper, rlower int, bg Color)
}
