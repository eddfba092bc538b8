package vtinput

import "io"

// ResponseProvider is where reply sequences (DA, DSR, DECRPSS, OSC colour
// replies, ...) are written; typically the write end of the pseudo-
// terminal. Wire format must match bit-for-bit what real clients expect,
// so only the destination is pluggable, never the formatting.
type ResponseProvider = io.Writer

// NoopResponse discards every reply; useful for tests that only care
// about screen side effects.
type NoopResponse struct{}

func (NoopResponse) Write(p []byte) (int, error) { return len(p), nil }

// BellProvider handles BEL (0x07).
type BellProvider interface {
	Ring()
}

type NoopBell struct{}

func (NoopBell) Ring() {}

// APCProvider receives a completed Application Program Command payload
// (ESC _ ... ST). APC/SOS/PM are treated as undifferentiated string
// collectors beyond title-setting, so all three share this interface.
type APCProvider interface {
	Receive(data []byte)
}

type NoopAPC struct{}

func (NoopAPC) Receive([]byte) {}

// PMProvider receives a completed Privacy Message payload (ESC ^ ... ST).
type PMProvider interface {
	Receive(data []byte)
}

type NoopPM struct{}

func (NoopPM) Receive([]byte) {}

// SOSProvider receives a completed Start-of-String payload (ESC X ... ST).
type SOSProvider interface {
	Receive(data []byte)
}

type NoopSOS struct{}

func (NoopSOS) Receive([]byte) {}

// ClipboardProvider backs OSC 52: Read returns the current content of the
// named selection ('c' clipboard, 'p' primary, 's' selection, '0'-'7'
// cut-buffers); Write installs new content.
type ClipboardProvider interface {
	Read(selection byte) (data []byte, ok bool)
	Write(selection byte, data []byte)
}

type NoopClipboard struct{}

func (NoopClipboard) Read(byte) ([]byte, bool) { return nil, false }
func (NoopClipboard) Write(byte, []byte)       {}

// RecordingProvider captures raw bytes as they arrive, before any
// parsing, for replay or debugging — independent of since_ground, which
// only covers bytes consumed since the last ground-state entry.
type RecordingProvider interface {
	Record(data []byte)
}

type NoopRecording struct{}

func (NoopRecording) Record([]byte) {}

// ShellIntegrationProvider is notified of OSC 133 marks as they are
// recorded (see shell_integration.go for the bookkeeping the Parser does
// regardless of whether a provider is attached).
type ShellIntegrationProvider interface {
	OnMark(mark PromptMark)
}

type NoopShellIntegration struct{}

func (NoopShellIntegration) OnMark(PromptMark) {}

var (
	_ BellProvider             = NoopBell{}
	_ APCProvider              = NoopAPC{}
	_ PMProvider               = NoopPM{}
	_ SOSProvider              = NoopSOS{}
	_ ClipboardProvider        = NoopClipboard{}
	_ RecordingProvider        = NoopRecording{}
	_ ShellIntegrationProvider = NoopShellIntegration{}
	_ ResponseProvider         = NoopResponse{}
)
