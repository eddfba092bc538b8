package vtinput

import "bytes"

// dcsKind records which sub-grammar a DCS payload belongs to once its
// introducer (parameters, intermediates and final byte) has been read, so
// the single dcs_handler collecting state knows how to interpret the
// bytes it accumulates and what to do with them on ST.
type dcsKind int

const (
	dcsUnknown dcsKind = iota
	dcsSixel
	dcsRestorePresentation // DECRSPS
	dcsRestoreTerminalState // DECRSTS
)

// buildDCSTables wires dcs_enter, dcs_parameter, dcs_intermediate,
// dcs_handler, dcs_escape and dcs_ignore. The first three behave like
// their CSI counterparts except C0 codes are ignored rather than executed
// (a DCS control string has not yet decided what kind of payload it is
// collecting, so nothing is safe to execute), and handler/escape/ignore
// are payload-level states outside the normal byte-range dispatch.
func buildDCSTables() {
	addState(StateDCSEnter,
		transition{0x00, 0x17, doIgnore},
		transition{0x19, 0x19, doIgnore},
		transition{0x1C, 0x1F, doIgnore},
		transition{0x20, 0x2F, dcsCollectIntermediate},
		transition{0x30, 0x39, dcsCollectParam},
		transition{0x3A, 0x3A, dcsToIgnore},
		transition{0x3B, 0x3B, dcsCollectParam},
		transition{0x3C, 0x3F, dcsCollectParam},
		transition{0x40, 0x7E, dcsEnterDispatch},
		transition{0x7F, 0x7F, doIgnore},
		transition{0x80, 0xFF, doIgnore},
	)
	addState(StateDCSParameter,
		transition{0x00, 0x17, doIgnore},
		transition{0x19, 0x19, doIgnore},
		transition{0x1C, 0x1F, doIgnore},
		transition{0x20, 0x2F, dcsCollectIntermediate},
		transition{0x30, 0x39, dcsCollectParamStay},
		transition{0x3A, 0x3F, dcsToIgnore},
		transition{0x40, 0x7E, dcsEnterDispatch},
		transition{0x7F, 0x7F, doIgnore},
		transition{0x80, 0xFF, doIgnore},
	)
	addState(StateDCSIntermediate,
		transition{0x00, 0x17, doIgnore},
		transition{0x19, 0x19, doIgnore},
		transition{0x1C, 0x1F, doIgnore},
		transition{0x20, 0x2F, dcsCollectIntermediateStay},
		transition{0x30, 0x3F, dcsToIgnore},
		transition{0x40, 0x7E, dcsEnterDispatch},
		transition{0x7F, 0x7F, doIgnore},
		transition{0x80, 0xFF, doIgnore},
	)
	addState(StateDCSIgnore,
		transition{0x00, 0x17, doIgnore},
		transition{0x19, 0x19, doIgnore},
		transition{0x1C, 0x1F, doIgnore},
		transition{0x20, 0x7E, doIgnore},
		transition{0x7F, 0x7F, doIgnore},
		transition{0x80, 0xFF, doIgnore},
	)
	addState(StateDCSHandler,
		transition{0x00, 0x1A, dcsHandlerCollect},
		transition{0x1B, 0x1B, dcsHandlerEsc},
		transition{0x1C, 0xFF, dcsHandlerCollect},
	)
	addState(StateDCSEscape,
		transition{0x00, 0x5B, dcsEscapeOther},
		transition{0x5C, 0x5C, dcsEscapeComplete},
		transition{0x5D, 0xFF, dcsEscapeOther},
	)
}

func dcsCollectIntermediate(p *Parser, b byte) State {
	p.col.collectIntermediate(b)
	return StateDCSIntermediate
}
func dcsCollectIntermediateStay(p *Parser, b byte) State {
	p.col.collectIntermediate(b)
	return StateDCSIntermediate
}
func dcsCollectParam(p *Parser, b byte) State {
	p.col.collectParam(b)
	return StateDCSParameter
}
func dcsCollectParamStay(p *Parser, b byte) State {
	p.col.collectParam(b)
	return StateDCSParameter
}
func dcsToIgnore(p *Parser, b byte) State { return StateDCSIgnore }

// dcsEnterDispatch is reached on the DCS introducer's final byte: the
// intermediates and private marker collected so far decide which
// sub-grammar follows. "$q" breaks out to the DECRQSS mini-parser; every
// other recognized introducer starts the raw dcs_handler collector with
// dcsPending recording how to interpret it on ST.
func dcsEnterDispatch(p *Parser, final byte) State {
	if p.col.discard {
		p.hooks.discarded("DCS")
		p.dcsPending = dcsUnknown
		p.str.reset()
		return StateDCSIgnore
	}
	interm := string(p.col.intermediates)

	if interm == "$" && final == 'q' {
		p.str.reset()
		return StateDECRQSSEnter
	}

	p.str.reset()
	switch {
	case interm == "" && final == 'q':
		p.dcsPending = dcsSixel
	case interm == "$" && final == 'p':
		p.dcsPending = dcsRestorePresentation
		p.dcsPs = getParam(p.col.params(), 0, 0, 0)
	case interm == "$" && final == 's':
		p.dcsPending = dcsRestoreTerminalState
		p.dcsPs = getParam(p.col.params(), 0, 0, 0)
	default:
		// Not yet known: the tmux control-mode wrapper is recognized by
		// its payload, not its introducer shape ("ESC P tmux;<data> ESC
		// \" carries no private marker and the 't' of "tmux;" is itself
		// this dispatch byte), so it is held back and re-prepended to
		// the body in dispatchDCSPayload, where the full string is
		// checked for the "tmux;" prefix once ST completes it.
		p.dcsPending = dcsUnknown
		p.dcsIntroducer = interm
		p.dcsFirstByte = final
	}
	return StateDCSHandler
}

func dcsHandlerCollect(p *Parser, b byte) State {
	p.str.append(b)
	return StateDCSHandler
}

func dcsHandlerEsc(p *Parser, b byte) State { return StateDCSEscape }

// dcsEscapeComplete finalizes ST: dispatch whatever dcs_handler collected
// according to dcsPending, then return to ground.
func dcsEscapeComplete(p *Parser, b byte) State {
	p.dispatchDCSPayload()
	p.col.reset()
	return StateGround
}

// dcsEscapeOther handles a byte after ESC that turns out not to be '\':
// the ESC itself becomes a literal payload byte, and b is re-fed into
// whatever state this escape lookahead was entered from.
func dcsEscapeOther(p *Parser, b byte) State {
	p.str.append(0x1B)
	if p.escReturn == StateDCSHandler {
		if b == 0x1B {
			return StateDCSEscape
		}
		return dcsHandlerCollect(p, b)
	}
	return p.escReturn
}

var tmuxPassthroughPrefix = []byte("tmux;")

func (p *Parser) dispatchDCSPayload() {
	payload := p.str.Bytes()
	switch p.dcsPending {
	case dcsSixel:
		p.decodeSixel(payload)
	case dcsRestorePresentation:
		p.restorePresentationState(payload)
	case dcsRestoreTerminalState:
		p.restoreTerminalState(payload)
	default:
		full := append([]byte{p.dcsFirstByte}, payload...)
		if p.allowPassthrough != 0 && bytes.HasPrefix(full, tmuxPassthroughPrefix) {
			p.screen.RawString(string(full[len(tmuxPassthroughPrefix):]))
			p.screen.Flush()
			return
		}
		p.hooks.unrecognized("DCS", p.dcsIntroducer+string(p.dcsFirstByte))
	}
}

// decodeSixel hands a raw Sixel payload to the configured SixelDecoder and
// places the resulting image at the cursor; Sixel decoding itself is
// deliberately out of this core's scope (package sixelcodec implements
// SixelDecoder).
func (p *Parser) decodeSixel(payload []byte) {
	if p.sixel == nil {
		p.hooks.discarded("SIXEL")
		return
	}
	params := parseDCSIntroducerParams(p.col.params())
	img, err := p.sixel.Decode(params, payload)
	if err != nil {
		p.hooks.unrecognized("SIXEL", err.Error())
		return
	}
	x, y := p.screen.CursorPosition()
	p.screen.PlaceSixelImage(x, y, img)
}

func parseDCSIntroducerParams(params []Param) []int64 {
	out := make([]int64, len(params))
	for i, pr := range params {
		out[i] = pr.Int(0)
	}
	return out
}

// restorePresentationState implements the incoming half of DECRSPS: the
// introducer's leading parameter (stashed in p.dcsPs) selects cursor
// information (kind 1) or the tab-stop bitmap (kind 2), and the payload
// carries exactly the data requestPresentationState's matching reply
// body does. This is the direction tmux's control-mode session restore
// actually uses DECRSPS for.
func (p *Parser) restorePresentationState(payload []byte) {
	switch p.dcsPs {
	case 1:
		parts := splitBytes(payload, ';')
		if len(parts) < 2 {
			return
		}
		row := atoiBytes(parts[0]) - 1
		col := atoiBytes(parts[1]) - 1
		if row < 0 || col < 0 {
			return
		}
		p.screen.SetCursorPosition(col, row)
	case 2:
		parts := splitBytes(payload, '/')
		stops := make([]int, 0, len(parts))
		for _, seg := range parts {
			if n := atoiBytes(seg); n > 0 {
				stops = append(stops, n-1)
			}
		}
		p.screen.SetTabStops(stops)
	}
}

// restoreTerminalState implements the incoming half of DECRSTS: kind 2
// carries a DECCTR-format palette table. This core exposes no addressable
// palette through ChromeWriter, so a kind-2 payload is acknowledged but
// not applied; kind 1 is specified as ignored outright.
func (p *Parser) restoreTerminalState(payload []byte) {
	switch p.dcsPs {
	case 1:
	case 2:
		p.hooks.discarded("DECRSTS palette")
	}
}

func splitBytes(b []byte, sep byte) [][]byte {
	var out [][]byte
	start := 0
	for i := 0; i <= len(b); i++ {
		if i == len(b) || b[i] == sep {
			out = append(out, b[start:i])
			start = i + 1
		}
	}
	return out
}

func atoiBytes(b []byte) int {
	n := 0
	neg := false
	for i, c := range b {
		if i == 0 && c == '-' {
			neg = true
			continue
		}
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int(c-'0')
	}
	if neg {
		n = -n
	}
	return n
}
