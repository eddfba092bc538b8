package vtinput

// daFeatures returns the DA1 (Device Attributes) feature list, the literal
// Ps sequence input.c hard-codes per configured terminal type. It is keyed
// off maxLevel, the configured ceiling, not the running level: a DECSCL
// downgrade changes what DECRQSS "\"p" reports but never changes what DA1
// answers, matching input.c's switch on ictx->max_level rather than
// ictx->term_level. A configured VT131 or VT132 level has no case of its
// own and is silently treated the same as VT220 (the default branch).
func (p *Parser) daFeatures() []int {
	switch p.maxLevel {
	case EmulationVT125:
		return []int{12, 7, 0, 1}
	case EmulationVT100:
		return []int{1, 2}
	case EmulationVT101:
		return []int{1, 0}
	case EmulationVT102:
		return []int{6}
	case EmulationVT241:
		return []int{62, 1, 2, 4, 6, 16, 17, 21, 22}
	default: // EmulationVT220 and the silently-remapped VT131/VT132
		return []int{62, 1, 2, 6, 16, 17, 21, 22}
	}
}

// decsclLevel maps a DECSCL Ps;Pc pair onto a running EmulationLevel:
// Ps 61 selects VT100-compatible behavior, 62-65 select the corresponding
// VT2xx/VT4xx graphics tier. Pc (0 or 1) is accepted but does not change
// which level we run, since 8-bit controls are not part of this core's
// wire format (7-bit only).
func decsclLevel(ps int64, current, max EmulationLevel) EmulationLevel {
	var lvl EmulationLevel
	switch ps {
	case 61:
		lvl = EmulationVT100
	case 62:
		lvl = EmulationVT220
	case 63:
		lvl = EmulationVT220
	case 64:
		lvl = EmulationVT241
	case 65:
		lvl = EmulationVT220
	default:
		return current
	}
	if lvl > max {
		return max
	}
	return lvl
}

// decsclReplyPs is the Ps DECRQSS replies with for the current level (the
// inverse of decsclLevel): 61 for VT100, 62 for VT220-and-up.
func (p *Parser) decsclReplyPs() int {
	if p.level >= EmulationVT220 {
		return 62
	}
	return 61
}
