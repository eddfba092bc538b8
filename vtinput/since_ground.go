package vtinput

// sinceGround records every byte seen since the state machine last
// entered the ground state, so a control client can ask "what has this
// pane received since the last complete, quiescent point" without the
// parser replaying partially-interpreted escape sequences. It resets on
// every ground-state entry and is read-only to everything but the state
// machine driver.
type sinceGround struct {
	buf []byte
}

func newSinceGround() *sinceGround {
	return &sinceGround{buf: make([]byte, 0, 64)}
}

func (s *sinceGround) reset() {
	s.buf = s.buf[:0]
}

func (s *sinceGround) push(b byte) {
	s.buf = append(s.buf, b)
}

// Bytes returns a copy of the buffer; callers must not retain a reference
// to the parser's internal slice.
func (s *sinceGround) Bytes() []byte {
	out := make([]byte, len(s.buf))
	copy(out, s.buf)
	return out
}

// Pending returns the bytes seen since the parser last settled in the
// ground state. Used by control-client "dump state" style tooling.
func (p *Parser) Pending() []byte {
	return p.since.Bytes()
}
