package vtinput

import (
	"fmt"
	"strconv"
	"strings"
)

// reply writes a response string straight to the configured
// ResponseProvider. Every query-reply in this file funnels through here so
// there is exactly one place a host could wrap or log outgoing replies.
func (p *Parser) reply(s string) {
	_, _ = p.response.Write([]byte(s))
}

// replyDA1 answers CSI c (primary Device Attributes) with the feature list
// for the configured maximum emulation level, e.g. "\x1b[?62;1;2;6;16;17;21;22c" for a
// VT220.
func (p *Parser) replyDA1() {
	ps := p.daFeatures()
	parts := make([]string, len(ps))
	for i, v := range ps {
		parts[i] = strconv.Itoa(v)
	}
	p.reply("\x1b[?" + strings.Join(parts, ";") + "c")
}

// replyDA2 answers CSI > c (secondary Device Attributes) with the same
// fixed identity string regardless of emulation level.
func (p *Parser) replyDA2() {
	p.reply("\x1b[>84;0;0c")
}

// replyDA3 answers CSI = c (tertiary Device Attributes) with a DECRPTUI
// unit-ID report; this core has no persistent unit identity, so it always
// reports the all-zero ID.
func (p *Parser) replyDA3() {
	p.reply("\x1bP!|00000000\x1b\\")
}

// deviceStatusReport answers DSR. Ps 5 reports terminal-OK; Ps 6 reports
// the cursor position, using the ? prefix when the request itself was
// marked private (DECXCPR).
func (p *Parser) deviceStatusReport(ps int64, private bool) {
	switch ps {
	case 5:
		p.reply("\x1b[0n")
	case 6:
		x, y := p.screen.CursorPosition()
		if origin := p.screen.HasMode(ModeOrigin); origin {
			top, left := p.originBase()
			x -= left
			y -= top
		}
		if private {
			p.reply(fmt.Sprintf("\x1b[?%d;%dR", y+1, x+1))
		} else {
			p.reply(fmt.Sprintf("\x1b[%d;%dR", y+1, x+1))
		}
	default:
		p.hooks.unrecognized("DSR", strconv.FormatInt(ps, 10))
	}
}

// requestMode answers DECRQM: CSI Ps $p or CSI ? Ps $p. The reply code
// follows the ANSI DECRPM convention: 0 not recognized, 1 set, 2 reset, 3
// permanently set, 4 permanently reset. This core never reports a
// permanently-fixed mode, so only 0/1/2 are ever produced.
func (p *Parser) requestMode(params []Param, private bool) {
	ps := getParam(params, 0, 0, 0)
	if ps < 0 {
		return
	}
	code := 0
	if m, ok := modeForParam(ps, private); ok {
		if p.screen.HasMode(m) {
			code = 1
		} else {
			code = 2
		}
	}
	if private {
		p.reply(fmt.Sprintf("\x1b[?%d;%d$y", ps, code))
	} else {
		p.reply(fmt.Sprintf("\x1b[%d;%d$y", ps, code))
	}
}

func modeForParam(ps int64, private bool) (ModeFlags, bool) {
	if !private {
		switch ps {
		case 4:
			return ModeInsert, true
		case 20:
			return ModeNewline, true
		}
		return 0, false
	}
	switch ps {
	case 1:
		return ModeAppCursorKeys, true
	case 5:
		return ModeReverseVideo, true
	case 6:
		return ModeOrigin, true
	case 7:
		return ModeAutowrap, true
	case 9:
		return ModeMouseX10, true
	case 25:
		return ModeCursorVisible, true
	case 69:
		return ModeLeftRightMargin, true
	case 1000:
		return ModeMouseVT200, true
	case 1002:
		return ModeMouseBtnEvent, true
	case 1003:
		return ModeMouseAnyEvent, true
	case 1004:
		return ModeFocusReporting, true
	case 1005:
		return ModeMouseUTF8, true
	case 1006:
		return ModeMouseSGR, true
	case 1047, 1049:
		return ModeAltScreen, true
	case 2004:
		return ModeBracketedPaste, true
	}
	return 0, false
}

// requestPresentationState answers DECRQPSR (CSI Ps $w). Ps 1 reports
// cursor information (DECCIR); Ps 2 reports the tab-stop bitmap
// (DECTABSR). Both are returned as a DCS string terminated by ST, the same
// wire shape DECRSPS accepts back on the way in.
func (p *Parser) requestPresentationState(ps int64) {
	switch ps {
	case 1:
		x, y := p.screen.CursorPosition()
		rend := 0
		if p.pen.Flags&AttrBold != 0 {
			rend |= 1
		}
		if p.pen.Flags&AttrReverse != 0 {
			rend |= 2
		}
		att := 0
		if p.pen.Flags&AttrProtected != 0 {
			att = 1
		}
		gl, gr := int(p.activeCharset), 0
		p.reply(fmt.Sprintf("\x1bP1$u%d;%d;%d;%d;%d;%d;%d;%d\x1b\\",
			y+1, x+1, 1, rend, att, gl, gr, int(p.charsets[0])))
	case 2:
		stops := p.screen.TabStops()
		parts := make([]string, len(stops))
		for i, s := range stops {
			parts[i] = strconv.Itoa(s + 1)
		}
		p.reply("\x1bP2$u" + strings.Join(parts, "/") + "\x1b\\")
	default:
		p.hooks.unrecognized("DECRQPSR", strconv.FormatInt(ps, 10))
	}
}

// requestTerminalState answers DECRQTSR (CSI Ps $u). This core keeps no
// addressable color palette of its own (palette storage is the screen
// backend's concern and is not exposed through ChromeWriter), so Ps 2
// reports an empty DECCTR color table rather than fabricating entries.
func (p *Parser) requestTerminalState(ps int64) {
	switch ps {
	case 1:
		p.hooks.discarded("DECRQTSR terminal-state")
	case 2:
		p.reply("\x1bP2$s\x1b\\")
	default:
		p.hooks.unrecognized("DECRQTSR", strconv.FormatInt(ps, 10))
	}
}
