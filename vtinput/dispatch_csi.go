package vtinput

// buildCSITables wires the four CSI-family states. Each follows the
// standard vt500 shape: C0 codes execute inline and stay, 0x20-0x2F
// collects an intermediate, 0x30-0x3F collects a parameter byte (only
// valid as the very first byte if it is a private marker '<','=','>','?'),
// and 0x40-0x7E dispatches.
func buildCSITables() {
	addState(StateCSIEnter,
		transition{0x00, 0x17, doExecute},
		transition{0x19, 0x19, doExecute},
		transition{0x1C, 0x1F, doExecute},
		transition{0x20, 0x2F, csiCollectIntermediate},
		transition{0x30, 0x39, csiCollectParam},
		transition{0x3A, 0x3B, csiCollectParam},
		transition{0x3C, 0x3F, csiCollectParam},
		transition{0x40, 0x7E, csiDispatch},
		transition{0x7F, 0x7F, doIgnore},
		transition{0x80, 0xFF, doIgnore},
	)
	addState(StateCSIParameter,
		transition{0x00, 0x17, doExecute},
		transition{0x19, 0x19, doExecute},
		transition{0x1C, 0x1F, doExecute},
		transition{0x20, 0x2F, csiCollectIntermediate},
		transition{0x30, 0x39, csiCollectParamStay},
		transition{0x3A, 0x3B, csiCollectParamStay},
		transition{0x3C, 0x3F, csiToIgnore},
		transition{0x40, 0x7E, csiDispatch},
		transition{0x7F, 0x7F, doIgnore},
		transition{0x80, 0xFF, doIgnore},
	)
	addState(StateCSIIntermediate,
		transition{0x00, 0x17, doExecute},
		transition{0x19, 0x19, doExecute},
		transition{0x1C, 0x1F, doExecute},
		transition{0x20, 0x2F, csiCollectIntermediateStay},
		transition{0x30, 0x3F, csiToIgnore},
		transition{0x40, 0x7E, csiDispatch},
		transition{0x7F, 0x7F, doIgnore},
		transition{0x80, 0xFF, doIgnore},
	)
	addState(StateCSIIgnore,
		transition{0x00, 0x17, doExecute},
		transition{0x19, 0x19, doExecute},
		transition{0x1C, 0x1F, doExecute},
		transition{0x20, 0x3F, doIgnore},
		transition{0x40, 0x7E, csiIgnoreDispatch},
		transition{0x7F, 0x7F, doIgnore},
		transition{0x80, 0xFF, doIgnore},
	)
}

func csiCollectIntermediate(p *Parser, b byte) State {
	p.col.collectIntermediate(b)
	return StateCSIIntermediate
}
func csiCollectIntermediateStay(p *Parser, b byte) State {
	p.col.collectIntermediate(b)
	return StateCSIIntermediate
}
func csiCollectParam(p *Parser, b byte) State {
	p.col.collectParam(b)
	return StateCSIParameter
}
func csiCollectParamStay(p *Parser, b byte) State {
	p.col.collectParam(b)
	return StateCSIParameter
}
func csiToIgnore(p *Parser, b byte) State { return StateCSIIgnore }

func csiIgnoreDispatch(p *Parser, b byte) State {
	p.col.reset()
	return StateGround
}

func getParam(params []Param, i int, min, def int64) int64 {
	if i < 0 || i >= len(params) {
		return def
	}
	pr := params[i]
	switch pr.Type {
	case ParamMissing:
		return def
	case ParamString:
		return -1
	default:
		if pr.Value < min {
			return min
		}
		return pr.Value
	}
}

// csiDispatch is reached on a CSI final byte with a complete, in-bounds
// sequence. It resolves the private marker, splits the typed parameter
// list, and switches on (marker, intermediates, final).
func csiDispatch(p *Parser, final byte) State {
	if p.col.discard {
		p.hooks.discarded("CSI")
		p.col.reset()
		return StateGround
	}
	marker, _ := p.col.privateMarker()
	interm := string(p.col.intermediates)
	params := p.col.params()
	p.col.reset()
	p.dispatchCSI(marker, interm, final, params)
	return StateGround
}

func (p *Parser) dispatchCSI(marker byte, interm string, final byte, params []Param) {
	n := func(def int64) int64 { return getParam(params, 0, 1, def) }

	switch {
	case interm == "" && marker == 0:
		switch final {
		case 'A':
			p.moveCursor(0, -n(1))
		case 'B':
			p.moveCursor(0, n(1))
		case 'C':
			p.moveCursor(n(1), 0)
		case 'D':
			p.moveCursor(-n(1), 0)
		case 'E':
			p.cursorNextLine(n(1))
		case 'F':
			p.cursorPrevLine(n(1))
		case '`':
			p.gotoCol(int(getParam(params, 0, 1, 1)) - 1)
		case 'H', 'f':
			p.gotoRowCol(params)
		case 'I':
			p.tabForward(int(n(1)))
		case 'J':
			p.eraseDisplay(n(0), false)
		case 'K':
			p.eraseLine(n(0), false)
		case 'L':
			p.insertLines(n(1))
		case 'M':
			p.deleteLines(n(1))
		case 'P':
			p.deleteChars(n(1))
		case 'S':
			p.scrollUp(n(1))
		case 'T':
			p.scrollDown(n(1))
		case 'X':
			p.eraseChars(n(1), false)
		case 'Z':
			p.tabBackward(int(n(1)))
		case '@':
			p.insertChars(n(1))
		case 'a':
			p.moveCursor(n(1), 0) // HPR, right-relative
		case 'b':
			p.repeatLast(n(1))
		case 'c':
			p.replyDA1()
		case 'd':
			p.gotoRow(int(getParam(params, 0, 1, 1)) - 1)
		case 'e':
			p.moveCursor(0, n(1)) // VPR, down-relative
		case 'g':
			p.tabClear(n(0))
		case 'h':
			p.setAnsiModes(params, true)
		case 'l':
			p.setAnsiModes(params, false)
		case 'm':
			p.sgr(params)
		case 'n':
			p.deviceStatusReport(n(0), false)
		case 'r':
			p.setScrollRegionRows(params)
		case 's':
			p.scpOrMargin(params, true)
		case 'u':
			p.rcpOrMargin(false)
		case 't':
			p.winops(params)
		default:
			p.hooks.unrecognized("CSI", string(final))
		}
	case interm == "" && marker == '?':
		switch final {
		case 'h':
			p.setPrivateModes(params, true)
		case 'l':
			p.setPrivateModes(params, false)
		case 'J':
			p.eraseDisplay(n(0), true) // DECSED
		case 'K':
			p.eraseLine(n(0), true) // DECSEL
		case 'n':
			p.deviceStatusReport(n(0), true)
		default:
			p.hooks.unrecognized("CSI", "?"+string(final))
		}
	case interm == "" && marker == '>':
		switch final {
		case 'c':
			p.replyDA2()
		case 'm':
			p.setModifyOtherKeys(params)
		default:
			p.hooks.unrecognized("CSI", ">"+string(final))
		}
	case interm == "" && marker == '=':
		if final == 'c' {
			p.replyDA3()
		} else {
			p.hooks.unrecognized("CSI", "="+string(final))
		}
	case interm == "'" && final == '}':
		p.insertColumns(n(1))
	case interm == "'" && final == '~':
		p.deleteColumns(n(1))
	case interm == " " && final == '@':
		p.scrollLeft(n(1))
	case interm == " " && final == 'A':
		p.scrollRight(n(1))
	case interm == " " && final == 'q':
		p.setCursorStyle(n(0))
	case interm == "\"" && final == 'q':
		p.setDECSCA(n(0))
	case interm == "\"" && final == 'p':
		p.setDECSCL(params)
	case interm == "!" && final == 'p':
		p.softReset()
	case interm == "$" && final == 'p':
		p.requestMode(params, marker == '?')
	case interm == "$" && final == 'w':
		p.requestPresentationState(n(1))
	case interm == "$" && final == 'u':
		p.requestTerminalState(n(1))
	default:
		p.hooks.unrecognized("CSI", interm+string(final))
	}
}
