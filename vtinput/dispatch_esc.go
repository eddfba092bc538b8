package vtinput

// buildEscTables builds esc_enter and esc_intermediate. Both states share
// almost the same table: C0 codes execute inline, 0x20-0x2F collects an
// intermediate, the "final byte" ranges dispatch (with 'P','X','[',']',
// '^','_' breaking out to their own sub-grammars and 'k' breaking out to
// rename_string), and 0x7F is ignored.
func buildEscTables() {
	common := []transition{
		{0x00, 0x17, doExecute},
		{0x19, 0x19, doExecute},
		{0x1C, 0x1F, doExecute},
		{0x20, 0x2F, escCollectIntermediate},
		{0x30, 0x4F, escDispatch},
		{0x50, 0x50, escEnterDCS},
		{0x51, 0x57, escDispatch},
		{0x58, 0x58, escEnterAPCLike}, // SOS
		{0x59, 0x5A, escDispatch},
		{0x5B, 0x5B, escEnterCSI},
		{0x5C, 0x5C, escDispatch}, // stray ST
		{0x5D, 0x5D, escEnterOSC},
		{0x5E, 0x5E, escEnterAPCLike}, // PM
		{0x5F, 0x5F, escEnterAPCLike}, // APC
		{0x60, 0x6A, escDispatch},
		{0x6B, 0x6B, escEnterRename}, // old title-set compatibility
		{0x6C, 0x7E, escDispatch},
		{0x7F, 0x7F, doIgnore},
		{0x80, 0xFF, doIgnore},
	}
	addState(StateEscEnter, common...)
	addState(StateEscIntermediate, common...)
}

func escCollectIntermediate(p *Parser, b byte) State {
	p.col.collectIntermediate(b)
	return StateEscIntermediate
}

func escEnterDCS(p *Parser, b byte) State { return StateDCSEnter }
func escEnterCSI(p *Parser, b byte) State { return StateCSIEnter }

func escEnterOSC(p *Parser, b byte) State {
	p.stringKind = 'O'
	return StateOSCString
}

// escEnterAPCLike handles the three string introducers that carry no
// structured payload of their own (SOS 0x58, PM 0x5E, APC 0x5F): they all
// collect into the same state, distinguished only by which byte got them
// there.
func escEnterAPCLike(p *Parser, b byte) State {
	p.stringKind = b
	return StateAPCString
}

func escEnterRename(p *Parser, b byte) State {
	p.stringKind = 'k'
	return StateRenameString
}

// escDispatch is reached on the ESC family's final byte. The lookup key
// is (intermediates, final), here a small switch rather than a literal
// binary search table since the ESC command set is short enough not to
// need one.
func escDispatch(p *Parser, final byte) State {
	defer p.col.reset()
	switch string(p.col.intermediates) {
	case "":
		switch final {
		case '7':
			p.saveCursor()
		case '8':
			p.restoreCursor()
		case 'D':
			p.lineFeed(false) // IND
		case 'E':
			p.lineFeed(true) // NEL
		case 'H':
			x, _ := p.screen.CursorPosition()
			p.screen.SetTabStop(x)
		case 'M':
			p.reverseIndex() // RI
		case 'c':
			p.Reset(true) // RIS
		case '=':
			p.screen.SetMode(ModeAppKeypad)
		case '>':
			p.screen.ClearMode(ModeAppKeypad)
		case '6':
			if p.level >= EmulationVT220 {
				p.backIndex()
			}
		case '9':
			if p.level >= EmulationVT220 {
				p.forwardIndex()
			}
		case '\\':
			// Stray ST outside any string-collecting state: no-op.
		default:
			p.hooks.unrecognized("ESC", string(final))
		}
	case "#":
		if final == '8' {
			p.decaln()
		} else {
			p.hooks.unrecognized("ESC", "#"+string(final))
		}
	case "(":
		p.designate(G0, final)
	case ")":
		p.designate(G1, final)
	case "*":
		p.designate(G2, final)
	case "+":
		p.designate(G3, final)
	default:
		p.hooks.unrecognized("ESC", string(p.col.intermediates)+string(final))
	}
	return StateGround
}

// saveCursor implements DECSC: the cursor position is owned by the
// backend, so only the pen, origin mode and charset state round-trip
// through the Parser's own savedCursor.
func (p *Parser) saveCursor() {
	x, y := p.screen.CursorPosition()
	p.saved = savedCursor{
		valid:    true,
		x:        x,
		y:        y,
		pen:      p.pen,
		origin:   p.screen.HasMode(ModeOrigin),
		charsets: p.charsets,
		active:   p.activeCharset,
	}
}

// restoreCursor implements DECRC; a DECRC with no prior DECSC restores to
// the home position with default pen, matching input.c's behavior of
// treating an empty saved-cursor slot as "origin, defaults".
func (p *Parser) restoreCursor() {
	if !p.saved.valid {
		p.screen.SetCursorPosition(0, 0)
		p.pen.Reset()
		p.screen.ClearMode(ModeOrigin)
		return
	}
	p.screen.SetCursorPosition(p.saved.x, p.saved.y)
	p.pen = p.saved.pen
	if p.saved.origin {
		p.screen.SetMode(ModeOrigin)
	} else {
		p.screen.ClearMode(ModeOrigin)
	}
	p.charsets = p.saved.charsets
	p.activeCharset = p.saved.active
	p.wrapPending = false
}

// decaln implements DECALN (ESC # 8): fills the visible screen with 'E'
// and resets margins, used as a terminal self-test pattern.
func (p *Parser) decaln() {
	sx, sy := p.screen.Size()
	for y := 0; y < sy; y++ {
		row := make([]rune, sx)
		for i := range row {
			row[i] = 'E'
		}
		p.screen.ViewSetCells(0, y, CellAttrs{}, row)
	}
	p.screen.SetScrollRegion(0, sy-1)
	p.screen.SetCursorPosition(0, 0)
}

// designate implements SCS: assign a charset identity to one of the four
// G0-G3 slots. '0' is DEC Special Graphics (line drawing); 'A' is the UK
// national set; 'B' and anything else recognized-but-unremarkable maps to
// plain ASCII, matching the narrow ACS table input.c actually carries.
func (p *Parser) designate(slot Charset, final byte) {
	var cs CharsetIndex
	switch final {
	case '0':
		cs = CharsetLineDrawing
	case 'A':
		cs = CharsetUKNational
	case 'B':
		cs = CharsetASCII
	default:
		p.hooks.unrecognized("ESC", "charset "+string(final))
		return
	}
	p.charsets[slot] = cs
}

// backIndex/forwardIndex implement DECBI/DECFI (VT220+): move the cursor
// one column left/right, scrolling the scroll region horizontally when
// already at its edge.
func (p *Parser) backIndex() {
	left, right := p.screen.ScrollMargin()
	top, bottom := p.screen.ScrollRegion()
	x, y := p.screen.CursorPosition()
	if x == left {
		p.screen.ViewScrollRegionRight(top, bottom, marginLeft(p, left), marginRight(p), p.pen.Bg)
	} else {
		x--
	}
	_ = right
	p.screen.SetCursorPosition(x, y)
}

func (p *Parser) forwardIndex() {
	left, right := p.screen.ScrollMargin()
	top, bottom := p.screen.ScrollRegion()
	x, y := p.screen.CursorPosition()
	if x == marginRight(p) {
		p.screen.ViewScrollRegionLeft(top, bottom, marginLeft(p, left), marginRight(p), p.pen.Bg)
	} else {
		x++
	}
	_ = right
	p.screen.SetCursorPosition(x, y)
}
