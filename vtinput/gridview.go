package vtinput

// GridView translates screen-relative coordinates into the grid's
// absolute coordinate space and forwards to a Grid. It is a direct,
// line-by-line port of tmux's grid-view.c: grid_view_x is the identity
// (x is unchanged) and grid_view_y adds the history size, so every method
// below differs from its Grid counterpart only in that translation plus,
// for the scroll/insert/delete family, the region arithmetic grid-view.c
// performs on top of it.
//
// GridView holds no state of its own beyond the Grid it wraps: it is a
// pure, stateless projection.
type GridView struct {
	g Grid
}

// NewGridView returns a translator over g.
func NewGridView(g Grid) *GridView {
	return &GridView{g: g}
}

func (v *GridView) viewY(py int) int {
	return v.g.HistorySize() + py
}

func (v *GridView) Size() (sx, sy int) {
	return v.g.Size()
}

func (v *GridView) ViewGetCell(px, py int) GridCell {
	return v.g.GetCell(px, v.viewY(py))
}

func (v *GridView) ViewSetCell(px, py int, c GridCell) {
	v.g.SetCell(px, v.viewY(py), c)
}

func (v *GridView) ViewSetPadding(px, py int) {
	v.g.SetPadding(px, v.viewY(py))
}

func (v *GridView) ViewSetCells(px, py int, attrs CellAttrs, s []rune) {
	v.g.SetCells(px, v.viewY(py), attrs, s)
}

func (v *GridView) ViewStringCells(px, py, nx int) string {
	return v.g.StringCells(px, v.viewY(py), nx)
}

// ViewClearHistory finds the last used line on screen and scrolls
// everything up to and including it into history, exactly as
// grid_view_clear_history: if nothing on screen has been touched it just
// clears the whole visible area instead of manufacturing empty history.
func (v *GridView) ViewClearHistory(bg Color) {
	sx, sy := v.g.Size()
	last := 0
	for yy := 0; yy < sy; yy++ {
		if v.g.LineUsed(v.viewY(yy)) {
			last = yy + 1
		}
	}
	if last == 0 {
		v.ViewClear(0, 0, sx, sy, bg)
		return
	}
	for yy := 0; yy < last; yy++ {
		v.g.CollectHistory()
		v.g.ScrollHistory(bg)
	}
	if last < sy {
		v.ViewClear(0, 0, sx, sy-last, bg)
	}
}

func (v *GridView) ViewClear(px, py, nx, ny int, bg Color) {
	v.g.Clear(px, v.viewY(py), nx, ny, bg)
}

// ViewScrollRegionUp ports grid_view_scroll_region_up, including its
// history fast-path: a region spanning the full screen height (whatever
// its left/right columns) scrolls a line into
// history instead of shuffling the whole grid in place.
func (v *GridView) ViewScrollRegionUp(rupper, rlower, rleft, rright int, bg Color) {
	_, sy := v.g.Size()
	if v.g.HasHistory() {
		v.g.CollectHistory()
		if rupper == 0 && rlower == sy-1 {
			v.g.ScrollHistory(bg)
		} else {
			v.g.ScrollHistoryRegion(v.viewY(rupper), v.viewY(rlower), bg)
		}
		return
	}
	up, lo, le, ri := v.viewY(rupper), v.viewY(rlower), rleft, rright
	v.g.MoveRect(le, up, le, up+1, ri-le+1, lo-up, bg)
}

func (v *GridView) ViewScrollRegionDown(rupper, rlower, rleft, rright int, bg Color) {
	up, lo, le, ri := v.viewY(rupper), v.viewY(rlower), rleft, rright
	v.g.MoveRect(le, up+1, le, up, ri-le+1, lo-up, bg)
}

func (v *GridView) ViewScrollRegionLeft(rupper, rlower, rleft, rright int, bg Color) {
	up, lo, le, ri := v.viewY(rupper), v.viewY(rlower), rleft, rright
	v.g.MoveRect(le, up, le+1, up, ri-le, lo-up+1, bg)
}

func (v *GridView) ViewScrollRegionRight(rupper, rlower, rleft, rright int, bg Color) {
	up, lo, le, ri := v.viewY(rupper), v.viewY(rlower), rleft, rright
	v.g.MoveRect(le+1, up, le, up, ri-le, lo-up+1, bg)
}

func (v *GridView) ViewInsertLines(py, ny int, bg Color) {
	absPy := v.viewY(py)
	_, sy := v.g.Size()
	absSy := v.viewY(sy)
	v.g.MoveLines(absPy+ny, absPy, absSy-absPy-ny, bg)
}

func (v *GridView) ViewInsertLinesRegion(rlower, py, ny, rleft, rright int, bg Color) {
	absLower := v.viewY(rlower)
	absPy := v.viewY(py)
	nx := rright - rleft + 1
	ny2 := absLower + 1 - absPy - ny
	v.g.MoveRect(rleft, absLower+1-ny2, rleft, absPy, nx, ny2, bg)
	v.g.Clear(rleft, absPy+ny2, nx, ny-ny2, bg)
}

func (v *GridView) ViewDeleteLines(py, ny int, bg Color) {
	absPy := v.viewY(py)
	sx, sy := v.g.Size()
	absSy := v.viewY(sy)
	v.g.MoveLines(absPy, absPy+ny, absSy-absPy-ny, bg)
	v.g.Clear(0, absSy-ny, sx, ny, bg)
}

func (v *GridView) ViewDeleteLinesRegion(rlower, py, ny, rleft, rright int, bg Color) {
	absLower := v.viewY(rlower)
	absPy := v.viewY(py)
	ny2 := absLower + 1 - absPy - ny
	nx := rright - rleft + 1
	v.g.MoveRect(rleft, absPy, rleft, absPy+ny, nx, ny2, bg)
	v.g.Clear(rleft, absPy+ny2, nx, ny-ny2, bg)
}

func (v *GridView) ViewInsertCells(rright, px, py, nx int, bg Color) {
	absPy := v.viewY(py)
	if px == rright {
		v.g.Clear(px, absPy, 1, 1, bg)
		return
	}
	v.g.MoveCells(px+nx, px, absPy, rright+1-px-nx, bg)
}

func (v *GridView) ViewDeleteCells(rright, px, py, nx int, bg Color) {
	absPy := v.viewY(py)
	v.g.MoveCells(px, px+nx, absPy, rright+1-px-nx, bg)
	v.g.Clear(rright+1-nx, absPy, nx, 1, bg)
}

func (v *GridView) ViewInsertColumns(rright, px, nx, rupper, rlower int, bg Color) {
	absUpper, absLower := v.viewY(rupper), v.viewY(rlower)
	nx2 := rright + 1 - px - nx
	ny := absLower - absUpper + 1
	v.g.MoveRect(rright+1-nx2, absUpper, px, absUpper, nx2, ny, bg)
	v.g.Clear(px+nx2, absUpper, nx-nx2, ny, bg)
}

func (v *GridView) ViewDeleteColumns(rright, px, nx, rupper, rlower int, bg Color) {
	absUpper, absLower := v.viewY(rupper), v.viewY(rlower)
	nx2 := rright + 1 - px - nx
	ny := absLower - absUpper + 1
	v.g.MoveRect(px, absUpper, px+nx, absUpper, nx2, ny, bg)
	v.g.Clear(px+nx2, absUpper, nx-nx2, ny, bg)
}
