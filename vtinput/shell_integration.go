package vtinput

import "strings"

// Mark kinds recorded by OSC 133 shell-integration sequences (see
// PromptMark.Kind).
const (
	MarkPromptStart     = 'A'
	MarkCommandStart    = 'B'
	MarkCommandExecuted = 'C'
	MarkCommandFinished = 'D'
)

// recordShellIntegrationMark appends mark to the prompt-mark history and
// notifies the shell integration provider, if one is attached. Row is the
// absolute, scrollback-inclusive row the cursor is on when the mark
// arrives, tracked exactly as tmux does.
func (p *Parser) recordShellIntegrationMark(kind byte, exitCode int) {
	_, y := p.screen.CursorPosition()
	_, sy := p.screen.Size()
	row := y
	if sy > 0 {
		row += historyOffset(p.screen)
	}
	mark := PromptMark{Kind: kind, Row: row, ExitCode: exitCode}
	p.promptMarks = append(p.promptMarks, mark)
	p.shellInt.OnMark(mark)
}

// historyOffset reads the backend's scrollback depth through the Grid
// half of ScreenWriter when available, so absolute row numbers stay
// comparable across a scrolled session; backends that don't expose a
// Grid-typed history (e.g. a stub in tests) simply contribute zero.
func historyOffset(s ScreenWriter) int {
	if g, ok := s.(interface{ HistorySize() int }); ok {
		return g.HistorySize()
	}
	return 0
}

// PromptMarks returns a copy of the recorded OSC 133 marks.
func (p *Parser) PromptMarks() []PromptMark {
	out := make([]PromptMark, len(p.promptMarks))
	copy(out, p.promptMarks)
	return out
}

// ClearPromptMarks discards all recorded marks.
func (p *Parser) ClearPromptMarks() {
	p.promptMarks = nil
}

// PromptMarkCount reports how many marks are currently recorded.
func (p *Parser) PromptMarkCount() int {
	return len(p.promptMarks)
}

// GetPromptMarkAt returns the mark recorded at the given absolute row, or
// nil if none was recorded there.
func (p *Parser) GetPromptMarkAt(row int) *PromptMark {
	for i := range p.promptMarks {
		if p.promptMarks[i].Row == row {
			m := p.promptMarks[i]
			return &m
		}
	}
	return nil
}

// NextPromptRow returns the row of the first recorded mark after "after"
// whose Kind matches kind, or -1 if none; kind of -1 matches any.
func (p *Parser) NextPromptRow(after, kind int) int {
	for _, m := range p.promptMarks {
		if m.Row <= after {
			continue
		}
		if kind != -1 && int(m.Kind) != kind {
			continue
		}
		return m.Row
	}
	return -1
}

// PrevPromptRow returns the row of the last recorded mark before
// "before" whose Kind matches kind, or -1 if none; kind of -1 matches any.
func (p *Parser) PrevPromptRow(before, kind int) int {
	best := -1
	for _, m := range p.promptMarks {
		if m.Row >= before {
			continue
		}
		if kind != -1 && int(m.Kind) != kind {
			continue
		}
		if m.Row > best {
			best = m.Row
		}
	}
	return best
}

// GetLastCommandOutput returns the screen text between the most recent
// matched CommandExecuted/CommandFinished mark pair: the rows a command's
// output actually occupied, trimmed of trailing blank lines.
func (p *Parser) GetLastCommandOutput() string {
	var c, d *PromptMark
	for i := len(p.promptMarks) - 1; i >= 0; i-- {
		m := &p.promptMarks[i]
		if d == nil {
			if m.Kind == MarkCommandFinished {
				d = m
			}
			continue
		}
		if m.Kind == MarkCommandExecuted {
			c = m
			break
		}
	}
	if c == nil || d == nil {
		return ""
	}
	sx, _ := p.screen.Size()
	var lines []string
	for row := c.Row; row <= d.Row-1; row++ {
		lines = append(lines, strings.TrimRight(p.screen.ViewStringCells(0, row, sx), " "))
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// workingDirectory is the last OSC 7 URI received, and the decoded path
// portion WorkingDirectoryPath extracts from it.
func (p *Parser) setWorkingDirectory(uri string) {
	p.workingDirectory = uri
}

// WorkingDirectory returns the full file:// URI from the most recent OSC
// 7 sequence, or "" if none has been seen.
func (p *Parser) WorkingDirectory() string {
	return p.workingDirectory
}

// WorkingDirectoryPath returns just the path component of WorkingDirectory
// (the hostname, if any, is dropped), or "" if none has been seen.
func (p *Parser) WorkingDirectoryPath() string {
	uri := p.workingDirectory
	if uri == "" {
		return ""
	}
	const scheme = "file://"
	if !strings.HasPrefix(uri, scheme) {
		return uri
	}
	rest := uri[len(scheme):]
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		return rest[i:]
	}
	return ""
}
