package vtinput

import (
	"bytes"
	"encoding/base64"
	"testing"
)

type fakeClipboard struct {
	store map[byte][]byte
}

func newFakeClipboard() *fakeClipboard { return &fakeClipboard{store: map[byte][]byte{}} }

func (c *fakeClipboard) Read(sel byte) ([]byte, bool) {
	v, ok := c.store[sel]
	return v, ok
}

func (c *fakeClipboard) Write(sel byte, data []byte) { c.store[sel] = append([]byte(nil), data...) }

func TestOSC_SetTitle(t *testing.T) {
	scr := newTestScreen(20, 3)
	p := New(scr)
	p.WriteString("\x1b]2;my title\x07")
	if scr.title != "my title" {
		t.Errorf("title = %q, want %q", scr.title, "my title")
	}
}

func TestOSC_SetTitleSuppressedWhenDisallowed(t *testing.T) {
	scr := newTestScreen(20, 3)
	p := New(scr, WithAllowSetTitle(false))
	p.WriteString("\x1b]0;nope\x07")
	if scr.title != "" {
		t.Errorf("title = %q, want empty (title changes disallowed)", scr.title)
	}
}

func TestOSC_SetTitleTerminatedByST(t *testing.T) {
	scr := newTestScreen(20, 3)
	p := New(scr)
	p.WriteString("\x1b]2;via ST\x1b\\")
	if scr.title != "via ST" {
		t.Errorf("title = %q, want %q", scr.title, "via ST")
	}
}

func TestOSC_Hyperlink(t *testing.T) {
	scr := newTestScreen(20, 3)
	p := New(scr)
	p.WriteString("\x1b]8;id=42;https://example.com\x07")
	if scr.hyperlinks["42"] != "https://example.com" {
		t.Errorf("hyperlinks[42] = %q, want %q", scr.hyperlinks["42"], "https://example.com")
	}
}

func TestOSC_HyperlinkClose(t *testing.T) {
	scr := newTestScreen(20, 3)
	p := New(scr)
	p.WriteString("\x1b]8;id=1;http://a\x07\x1b]8;;\x07")
	uri, ok := scr.hyperlinks[""]
	if !ok || uri != "" {
		t.Errorf("closing hyperlink should register an empty uri under the empty id, got %q (present=%v)", uri, ok)
	}
}

func TestOSC_ClipboardWrite(t *testing.T) {
	scr := newTestScreen(20, 3)
	cb := newFakeClipboard()
	p := New(scr, WithClipboard(cb))
	payload := base64.StdEncoding.EncodeToString([]byte("hello"))
	p.WriteString("\x1b]52;c;" + payload + "\x07")
	got, ok := cb.Read('c')
	if !ok || string(got) != "hello" {
		t.Errorf("clipboard[c] = %q, ok=%v, want %q", got, ok, "hello")
	}
	if sel, ok := scr.GetSelection('c'); !ok || string(sel) != "hello" {
		t.Errorf("screen selection[c] = %q, ok=%v, want %q", sel, ok, "hello")
	}
}

func TestOSC_ClipboardWriteSuppressedWhenOff(t *testing.T) {
	scr := newTestScreen(20, 3)
	cb := newFakeClipboard()
	p := New(scr, WithClipboard(cb), WithClipboardPolicy("off"))
	payload := base64.StdEncoding.EncodeToString([]byte("nope"))
	p.WriteString("\x1b]52;c;" + payload + "\x07")
	if _, ok := cb.Read('c'); ok {
		t.Error("clipboard write should have been suppressed by the off policy")
	}
}

func TestOSC_ClipboardQuery(t *testing.T) {
	var buf bytes.Buffer
	scr := newTestScreen(20, 3)
	cb := newFakeClipboard()
	cb.Write('c', []byte("stashed"))
	p := New(scr, WithClipboard(cb), WithResponse(&buf))
	p.WriteString("\x1b]52;c;?\x07")
	want := "\x1b]52;;" + base64.StdEncoding.EncodeToString([]byte("stashed")) + "\x07"
	if buf.String() != want {
		t.Errorf("clipboard query reply = %q, want %q", buf.String(), want)
	}
}

func TestOSC_ShellIntegrationMarks(t *testing.T) {
	scr := newTestScreen(20, 3)
	p := New(scr)
	p.WriteString("\x1b]133;A\x07")
	p.WriteString("prompt$ \x1b]133;B\x07")
	p.WriteString("\x1b]133;C\x07")
	p.WriteString("output\r\n\x1b]133;D;0\x07")

	marks := p.PromptMarks()
	if len(marks) != 4 {
		t.Fatalf("got %d marks, want 4", len(marks))
	}
	if marks[3].Kind != MarkCommandFinished || marks[3].ExitCode != 0 {
		t.Errorf("last mark = %+v, want Kind=D ExitCode=0", marks[3])
	}
}

func TestOSC_WorkingDirectory(t *testing.T) {
	scr := newTestScreen(20, 3)
	p := New(scr)
	p.WriteString("\x1b]7;file://host/home/user\x07")
	if got := p.WorkingDirectory(); got != "file://host/home/user" {
		t.Errorf("WorkingDirectory() = %q, want %q", got, "file://host/home/user")
	}
	if got := p.WorkingDirectoryPath(); got != "/home/user" {
		t.Errorf("WorkingDirectoryPath() = %q, want %q", got, "/home/user")
	}
}

func TestOSC_CursorColor(t *testing.T) {
	scr := newTestScreen(20, 3)
	p := New(scr)
	p.WriteString("\x1b]12;#ff0000\x07")
	if scr.cursorColor != RGBColor(0xff, 0, 0) {
		t.Errorf("cursor color = %v, want RGB(255,0,0)", scr.cursorColor)
	}
}

func TestOSC_RenameWindow(t *testing.T) {
	scr := newTestScreen(20, 3)
	p := New(scr)
	p.WriteString("\x1bkrenamed\x1b\\")
	if scr.title != "renamed" {
		t.Errorf("title after ESC k rename = %q, want %q", scr.title, "renamed")
	}
}

func TestOSC_RenameWindowSuppressedWhenDisallowed(t *testing.T) {
	scr := newTestScreen(20, 3)
	p := New(scr, WithAllowRename(false))
	p.WriteString("\x1bknope\x1b\\")
	if scr.title != "" {
		t.Errorf("title = %q, want empty (rename disallowed)", scr.title)
	}
}
