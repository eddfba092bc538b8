package vtinput

// writeRune draws one glyph at the cursor and advances it, implementing
// insert mode, wide-character padding, and deferred autowrap (a printed
// character that would cross the right margin instead leaves the cursor
// parked at the margin with wrapPending set; the wrap itself happens on
// the *next* printable, matching real VT100-family behavior so that a
// line exactly sx columns wide does not leave a blank trailing row).
func (p *Parser) writeRune(r rune, width int) {
	if width <= 0 {
		width = 1
	}
	sx, _ := p.screen.Size()
	left, right := p.screen.ScrollMargin()
	if right == 0 || right >= sx {
		right = sx - 1
	}

	if p.wrapPending && p.screen.HasMode(ModeAutowrap) {
		p.lineFeed(true)
		p.wrapPending = false
	}
	x, y := p.screen.CursorPosition()
	if x < left {
		x = left
	}

	if p.screen.HasMode(ModeInsert) {
		p.screen.ViewInsertCells(right, x, y, width, p.pen.Bg)
	}

	if width == 2 {
		p.screen.ViewSetCell(x, y, GridCell{Ch: r, Width: 2, Attrs: p.pen})
		if x+1 <= right {
			p.screen.ViewSetPadding(x+1, y)
		}
	} else {
		p.screen.ViewSetCell(x, y, GridCell{Ch: r, Width: width, Attrs: p.pen})
	}

	newX := x + width
	if newX > right {
		p.wrapPending = p.screen.HasMode(ModeAutowrap)
		newX = right
	}
	p.screen.SetCursorPosition(newX, y)

	p.lastPrinted = r
	p.lastFlag = true
}

// lineFeed moves the cursor down one row, scrolling the active region if
// it is already on the bottom margin; toHome additionally returns the
// cursor to the left margin (used by LF under LNM and by NEL).
func (p *Parser) lineFeed(toHome bool) {
	left, _ := p.screen.ScrollMargin()
	top, bottom := p.screen.ScrollRegion()
	x, y := p.screen.CursorPosition()
	if y == bottom {
		p.screen.ViewScrollRegionUp(top, bottom, marginLeft(p, left), marginRight(p), p.pen.Bg)
	} else if y < bottom {
		y++
	}
	if toHome {
		x = left
	}
	p.screen.SetCursorPosition(x, y)
	p.wrapPending = false
}

// reverseIndex is the mirror of lineFeed: moves up, scrolling the region
// down off the top margin.
func (p *Parser) reverseIndex() {
	left, _ := p.screen.ScrollMargin()
	top, bottom := p.screen.ScrollRegion()
	x, y := p.screen.CursorPosition()
	if y == top {
		p.screen.ViewScrollRegionDown(top, bottom, marginLeft(p, left), marginRight(p), p.pen.Bg)
	} else if y > top {
		y--
	}
	p.screen.SetCursorPosition(x, y)
	p.wrapPending = false
}

func marginLeft(p *Parser, left int) int {
	if p.screen.HasMode(ModeLeftRightMargin) {
		return left
	}
	return 0
}

// effectiveMarginLeft reads the backend's left scroll margin and resolves
// it through marginLeft in one step, for callers that have not already
// fetched ScrollMargin themselves.
func effectiveMarginLeft(p *Parser) int {
	left, _ := p.screen.ScrollMargin()
	return marginLeft(p, left)
}

func marginRight(p *Parser) int {
	sx, _ := p.screen.Size()
	_, right := p.screen.ScrollMargin()
	if p.screen.HasMode(ModeLeftRightMargin) && right > 0 {
		return right
	}
	return sx - 1
}

// tabForward advances the cursor to the n-th next tab stop the backend
// has recorded, never past the right margin.
func (p *Parser) tabForward(n int) {
	x, y := p.screen.CursorPosition()
	sx, _ := p.screen.Size()
	for ; n > 0; n-- {
		nx := p.screen.NextTabStop(x)
		if nx <= x {
			x = sx - 1
			break
		}
		x = nx
	}
	if x > sx-1 {
		x = sx - 1
	}
	p.screen.SetCursorPosition(x, y)
}

// tabBackward moves the cursor to the n-th previous tab stop.
func (p *Parser) tabBackward(n int) {
	x, y := p.screen.CursorPosition()
	for ; n > 0 && x > 0; n-- {
		px := p.screen.PrevTabStop(x)
		if px >= x {
			x = 0
			break
		}
		x = px
	}
	if x < 0 {
		x = 0
	}
	p.screen.SetCursorPosition(x, y)
}

// translateCharset applies the G0/G1 ACS substitution table when the
// designated charset is DEC Special Graphics (line drawing); every other
// charset passes the byte through unchanged (UK national differs from
// ASCII only in '#' -> '£', which this core does not special-case beyond
// line drawing, matching input.c's own narrow ACS table).
func translateCharset(cs CharsetIndex, r rune) rune {
	if cs != CharsetLineDrawing || r < 0x60 || r > 0x7E {
		return r
	}
	return lineDrawingTable[r-0x60]
}

// lineDrawingTable maps 0x60-0x7E under DEC Special Graphics onto the
// Unicode box-drawing block, the same 31-entry table every VT100-family
// emulator carries.
var lineDrawingTable = [31]rune{
	'◆', '▒', '␉', '␌', '␍', '␊', '°', '±',
	'␤', '␋', '┘', '┐', '┌', '└', '┼', '⎺',
	'⎻', '─', '⎼', '⎽', '├', '┤', '┴', '┬',
	'│', '≤', '≥', 'π', '≠', '£', '·',
}
