package vtinput

// feed drives one byte through the state machine. CAN and SUB always abort
// whatever is in progress, in every state. ESC normally jumps straight to
// esc_enter too, except in the control-string states that need a one-byte
// lookahead to tell an embedded ST (ESC \) from a genuine abort; those
// handle 0x1B through their own transition table instead (see
// stateHandlesEscItself).
func (p *Parser) feed(b byte) {
	if p.state != StateGround {
		p.since.push(b)
	}

	switch b {
	case 0x18, 0x1A:
		p.execute(b)
		p.cancelSequence()
		return
	case 0x1B:
		if !stateHandlesEscItself[p.state] {
			p.enterState(StateEscEnter)
			return
		}
	}

	act := lookup(p.state, b)
	if act == nil {
		// Every table is checked for completeness at init() time; reaching
		// here means a genuine gap in a state's byte-range coverage.
		panic("vtinput: no transition for byte 0x" + hexByte(b) + " in state " + p.state.String())
	}
	if p.state == StateGround {
		p.lastFlag = false // actions that print set this back to true themselves
	}
	next := act(p, b)
	if p.state != StateGround && next == StateGround {
		p.lastFlag = false // a completed control sequence is not a print
	}
	if next != p.state {
		p.enterState(next)
	}
}

func (p *Parser) enterState(next State) {
	prev := p.state
	p.state = next
	if next == StateGround {
		p.since.reset()
		p.timer.disarm()
	}
	if stringCollectingState[next] {
		p.timer.arm(p.now())
	}
	switch next {
	case StateCSIEnter, StateDCSEnter:
		p.col.reset()
	case StateOSCString, StateAPCString, StateRenameString:
		p.str.reset()
		p.oscKind = 0
	case StateDCSEscape, StateConsumeST:
		p.escReturn = prev
	}
}

func hexByte(b byte) string {
	const hex = "0123456789abcdef"
	return string([]byte{hex[b>>4], hex[b&0xF]})
}

// execute runs the semantic effect of a C0 control code. It is shared by
// the ground-state table and every other state's "anywhere" C0 handling
// (intermediate collection states still execute C0 codes inline).
func (p *Parser) execute(b byte) {
	switch b {
	case 0x07: // BEL
		p.bell.Ring()
	case 0x08: // BS
		x, y := p.screen.CursorPosition()
		if x > 0 {
			p.screen.SetCursorPosition(x-1, y)
		}
	case 0x09: // HT
		p.tabForward(1)
	case 0x0A, 0x0B, 0x0C: // LF, VT, FF
		p.lineFeed(p.screen.HasMode(ModeNewline))
	case 0x0D: // CR
		_, y := p.screen.CursorPosition()
		left, _ := p.screen.ScrollMargin()
		p.screen.SetCursorPosition(left, y)
	case 0x0E, 0x0F: // SO, SI: shift to G1/G0
		if b == 0x0E {
			p.activeCharset = G1
		} else {
			p.activeCharset = G0
		}
	default:
		// NUL, ENQ, XON/XOFF, DC1-DC4, and other C0 codes this core does
		// not give independent meaning to are consumed silently.
	}
}

func buildGroundTable() {
	addState(StateGround,
		transition{0x00, 0x06, doExecute},
		transition{0x07, 0x0F, doExecute},
		transition{0x10, 0x17, doExecute},
		transition{0x18, 0x18, doExecute}, // only reached if ever called without the anywhere short-circuit
		transition{0x19, 0x19, doExecute},
		transition{0x1A, 0x1A, doExecute},
		transition{0x1B, 0x1B, doExecute}, // likewise
		transition{0x1C, 0x1F, doExecute},
		transition{0x20, 0x7E, doPrint},
		transition{0x7F, 0x7F, doIgnore},
		transition{0x80, 0xFF, doUTF8Start},
	)
}

func doExecute(p *Parser, b byte) State {
	p.execute(b)
	return StateGround
}

func doIgnore(p *Parser, b byte) State {
	return p.state
}

// doPrint implements the ground-state printable path: stop any
// in-progress UTF-8 assembly (inserting U+FFFD for a partial sequence),
// apply the active G0/G1 charset substitution, and hand the rune to the
// cell-writing logic in cellwrite.go's writeRune.
func doPrint(p *Parser, b byte) State {
	if p.utf8.need != 0 {
		p.writeRune(0xFFFD, 1)
		p.utf8.reset()
	}
	r := translateCharset(p.charsets[p.activeCharset], rune(b))
	p.writeRune(r, runeWidth(r))
	return StateGround
}

// doUTF8Start handles every byte 0x80-0xFF the ground state sees. Bytes in
// this range serve double duty: the lead byte of a new sequence, or a
// continuation byte of one already in progress (the state machine itself
// has no separate "mid-UTF8" node, since the assembler is only ever driven
// from ground). A byte with the assembler mid-sequence is routed to Feed;
// only when the assembler is idle is it treated as a fresh lead byte.
func doUTF8Start(p *Parser, b byte) State {
	if p.utf8.need != 0 {
		result, r := p.utf8.Feed(b)
		switch result {
		case utf8More:
			return StateGround
		case utf8Done:
			p.writeRune(r, runeWidth(r))
			return StateGround
		case utf8Error:
			p.writeRune(0xFFFD, 1)
			p.utf8.reset()
			if !p.utf8.start(b) {
				p.writeRune(0xFFFD, 1)
			}
			return StateGround
		}
	}
	if !p.utf8.start(b) {
		p.writeRune(0xFFFD, 1)
	}
	return StateGround
}
