package vtinput

import "testing"

func TestShellIntegrationMark_PromptStart(t *testing.T) {
	term := New(newTestScreen(80, 24))

	term.WriteString("\x1b]133;A\x07")

	marks := term.PromptMarks()
	if len(marks) != 1 {
		t.Fatalf("expected 1 mark, got %d", len(marks))
	}
	if marks[0].Kind != MarkPromptStart {
		t.Errorf("expected MarkPromptStart, got %c", marks[0].Kind)
	}
	if marks[0].ExitCode != -1 {
		t.Errorf("expected exit code -1, got %d", marks[0].ExitCode)
	}
}

func TestShellIntegrationMark_CommandStart(t *testing.T) {
	term := New(newTestScreen(80, 24))

	term.WriteString("\x1b]133;B\x07")

	marks := term.PromptMarks()
	if len(marks) != 1 {
		t.Fatalf("expected 1 mark, got %d", len(marks))
	}
	if marks[0].Kind != MarkCommandStart {
		t.Errorf("expected MarkCommandStart, got %c", marks[0].Kind)
	}
}

func TestShellIntegrationMark_CommandExecuted(t *testing.T) {
	term := New(newTestScreen(80, 24))

	term.WriteString("\x1b]133;C\x07")

	marks := term.PromptMarks()
	if len(marks) != 1 {
		t.Fatalf("expected 1 mark, got %d", len(marks))
	}
	if marks[0].Kind != MarkCommandExecuted {
		t.Errorf("expected MarkCommandExecuted, got %c", marks[0].Kind)
	}
}

func TestShellIntegrationMark_CommandFinished(t *testing.T) {
	term := New(newTestScreen(80, 24))

	term.WriteString("\x1b]133;D\x07")

	marks := term.PromptMarks()
	if len(marks) != 1 {
		t.Fatalf("expected 1 mark, got %d", len(marks))
	}
	if marks[0].Kind != MarkCommandFinished {
		t.Errorf("expected MarkCommandFinished, got %c", marks[0].Kind)
	}
	if marks[0].ExitCode != -1 {
		t.Errorf("expected exit code -1, got %d", marks[0].ExitCode)
	}
}

func TestShellIntegrationMark_CommandFinishedWithExitCode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		exitCode int
	}{
		{"exit code 0", "\x1b]133;D;0\x07", 0},
		{"exit code 1", "\x1b]133;D;1\x07", 1},
		{"exit code 127", "\x1b]133;D;127\x07", 127},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term := New(newTestScreen(80, 24))
			term.WriteString(tt.input)

			marks := term.PromptMarks()
			if len(marks) != 1 {
				t.Fatalf("expected 1 mark, got %d", len(marks))
			}
			if marks[0].ExitCode != tt.exitCode {
				t.Errorf("expected exit code %d, got %d", tt.exitCode, marks[0].ExitCode)
			}
		})
	}
}

func TestShellIntegrationMark_FullSequence(t *testing.T) {
	term := New(newTestScreen(80, 24))

	term.WriteString("\x1b]133;A\x07")     // Prompt start
	term.WriteString("$ ")                 // Prompt text
	term.WriteString("\x1b]133;B\x07")     // Command start
	term.WriteString("ls -la")             // User input
	term.WriteString("\r\n")               // Enter
	term.WriteString("\x1b]133;C\x07")     // Command executed
	term.WriteString("file1\r\nfile2\r\n") // Command output
	term.WriteString("\x1b]133;D;0\x07")   // Command finished with exit code 0

	marks := term.PromptMarks()
	if len(marks) != 4 {
		t.Fatalf("expected 4 marks, got %d", len(marks))
	}

	expected := []byte{MarkPromptStart, MarkCommandStart, MarkCommandExecuted, MarkCommandFinished}
	for i, exp := range expected {
		if marks[i].Kind != exp {
			t.Errorf("mark %d: expected kind %c, got %c", i, exp, marks[i].Kind)
		}
	}
	if marks[3].ExitCode != 0 {
		t.Errorf("expected exit code 0, got %d", marks[3].ExitCode)
	}
}

func TestShellIntegrationMark_RowTracking(t *testing.T) {
	term := New(newTestScreen(80, 24))

	term.WriteString("\x1b]133;A\x07") // Row 0
	term.WriteString("prompt1\r\n")
	term.WriteString("\x1b]133;A\x07") // Row 1
	term.WriteString("prompt2\r\n")
	term.WriteString("\x1b]133;A\x07") // Row 2

	marks := term.PromptMarks()
	if len(marks) != 3 {
		t.Fatalf("expected 3 marks, got %d", len(marks))
	}
	if marks[0].Row != 0 {
		t.Errorf("mark 0: expected row 0, got %d", marks[0].Row)
	}
	if marks[1].Row != 1 {
		t.Errorf("mark 1: expected row 1, got %d", marks[1].Row)
	}
	if marks[2].Row != 2 {
		t.Errorf("mark 2: expected row 2, got %d", marks[2].Row)
	}
}

func TestShellIntegrationMark_NextPromptRow(t *testing.T) {
	term := New(newTestScreen(80, 24))

	term.WriteString("\x1b]133;A\x07") // Row 0
	term.WriteString("prompt1\r\n")
	term.WriteString("\x1b]133;A\x07") // Row 1
	term.WriteString("prompt2\r\n")
	term.WriteString("\x1b]133;A\x07") // Row 2

	if next := term.NextPromptRow(-1, -1); next != 0 {
		t.Errorf("expected next prompt at row 0, got %d", next)
	}
	if next := term.NextPromptRow(0, -1); next != 1 {
		t.Errorf("expected next prompt at row 1, got %d", next)
	}
	if next := term.NextPromptRow(1, -1); next != 2 {
		t.Errorf("expected next prompt at row 2, got %d", next)
	}
	if next := term.NextPromptRow(2, -1); next != -1 {
		t.Errorf("expected no next prompt (-1), got %d", next)
	}
}

func TestShellIntegrationMark_PrevPromptRow(t *testing.T) {
	term := New(newTestScreen(80, 24))

	term.WriteString("\x1b]133;A\x07") // Row 0
	term.WriteString("prompt1\r\n")
	term.WriteString("\x1b]133;A\x07") // Row 1
	term.WriteString("prompt2\r\n")
	term.WriteString("\x1b]133;A\x07") // Row 2

	if prev := term.PrevPromptRow(3, -1); prev != 2 {
		t.Errorf("expected prev prompt at row 2, got %d", prev)
	}
	if prev := term.PrevPromptRow(2, -1); prev != 1 {
		t.Errorf("expected prev prompt at row 1, got %d", prev)
	}
	if prev := term.PrevPromptRow(1, -1); prev != 0 {
		t.Errorf("expected prev prompt at row 0, got %d", prev)
	}
	if prev := term.PrevPromptRow(0, -1); prev != -1 {
		t.Errorf("expected no prev prompt (-1), got %d", prev)
	}
}

func TestShellIntegrationMark_FilterByType(t *testing.T) {
	term := New(newTestScreen(80, 24))

	term.WriteString("\x1b]133;A\x07") // PromptStart at row 0
	term.WriteString("prompt\r\n")
	term.WriteString("\x1b]133;B\x07") // CommandStart at row 1
	term.WriteString("cmd\r\n")
	term.WriteString("\x1b]133;C\x07") // CommandExecuted at row 2
	term.WriteString("output\r\n")
	term.WriteString("\x1b]133;A\x07") // PromptStart at row 3

	if next := term.NextPromptRow(-1, MarkPromptStart); next != 0 {
		t.Errorf("expected next PromptStart at row 0, got %d", next)
	}
	if next := term.NextPromptRow(0, MarkPromptStart); next != 3 {
		t.Errorf("expected next PromptStart at row 3, got %d", next)
	}
}

func TestShellIntegrationMark_ClearMarks(t *testing.T) {
	term := New(newTestScreen(80, 24))

	term.WriteString("\x1b]133;A\x07")
	term.WriteString("\x1b]133;B\x07")

	if term.PromptMarkCount() != 2 {
		t.Fatalf("expected 2 marks, got %d", term.PromptMarkCount())
	}

	term.ClearPromptMarks()

	if term.PromptMarkCount() != 0 {
		t.Errorf("expected 0 marks after clear, got %d", term.PromptMarkCount())
	}
}

func TestShellIntegrationMark_GetMarkAt(t *testing.T) {
	term := New(newTestScreen(80, 24))

	term.WriteString("\x1b]133;A\x07") // Row 0

	mark := term.GetPromptMarkAt(0)
	if mark == nil {
		t.Fatal("expected mark at row 0, got nil")
	}
	if mark.Kind != MarkPromptStart {
		t.Errorf("expected MarkPromptStart, got %c", mark.Kind)
	}

	if mark := term.GetPromptMarkAt(1); mark != nil {
		t.Errorf("expected nil at row 1, got %v", mark)
	}
}

type testShellIntegrationProvider struct {
	marks []PromptMark
}

func (p *testShellIntegrationProvider) OnMark(mark PromptMark) {
	p.marks = append(p.marks, mark)
}

func TestShellIntegrationMark_Provider(t *testing.T) {
	provider := &testShellIntegrationProvider{}
	term := New(newTestScreen(80, 24), WithShellIntegration(provider))

	term.WriteString("\x1b]133;A\x07")
	term.WriteString("\x1b]133;D;42\x07")

	if len(provider.marks) != 2 {
		t.Fatalf("expected provider to receive 2 marks, got %d", len(provider.marks))
	}
	if provider.marks[0].Kind != MarkPromptStart {
		t.Errorf("expected MarkPromptStart, got %c", provider.marks[0].Kind)
	}
	if provider.marks[1].Kind != MarkCommandFinished {
		t.Errorf("expected MarkCommandFinished, got %c", provider.marks[1].Kind)
	}
	if provider.marks[1].ExitCode != 42 {
		t.Errorf("expected exit code 42, got %d", provider.marks[1].ExitCode)
	}
}

func TestShellIntegrationMark_ST_Terminator(t *testing.T) {
	term := New(newTestScreen(80, 24))

	// OSC 133 ; A ST (using ESC \ as string terminator)
	term.WriteString("\x1b]133;A\x1b\\")

	marks := term.PromptMarks()
	if len(marks) != 1 {
		t.Fatalf("expected 1 mark, got %d", len(marks))
	}
	if marks[0].Kind != MarkPromptStart {
		t.Errorf("expected MarkPromptStart, got %c", marks[0].Kind)
	}
}

// --- GetLastCommandOutput ---

func TestGetLastCommandOutput_Basic(t *testing.T) {
	term := New(newTestScreen(80, 24))

	term.WriteString("\x1b]133;A\x07") // Prompt start
	term.WriteString("$ ")
	term.WriteString("\x1b]133;B\x07") // Command start
	term.WriteString("echo hello")
	term.WriteString("\r\n")
	term.WriteString("\x1b]133;C\x07") // Command executed
	term.WriteString("hello\r\n")      // Output
	term.WriteString("\x1b]133;D;0\x07")

	if output := term.GetLastCommandOutput(); output != "hello" {
		t.Errorf("expected %q, got %q", "hello", output)
	}
}

func TestGetLastCommandOutput_MultiLine(t *testing.T) {
	term := New(newTestScreen(80, 24))

	term.WriteString("\x1b]133;C\x07")
	term.WriteString("line1\r\n")
	term.WriteString("line2\r\n")
	term.WriteString("line3\r\n")
	term.WriteString("\x1b]133;D;0\x07")

	expected := "line1\nline2\nline3"
	if output := term.GetLastCommandOutput(); output != expected {
		t.Errorf("expected %q, got %q", expected, output)
	}
}

func TestGetLastCommandOutput_NoOutput(t *testing.T) {
	term := New(newTestScreen(80, 24))

	term.WriteString("\x1b]133;C\x07")
	term.WriteString("\x1b]133;D;0\x07")

	if output := term.GetLastCommandOutput(); output != "" {
		t.Errorf("expected empty string, got %q", output)
	}
}

func TestGetLastCommandOutput_NoMarks(t *testing.T) {
	term := New(newTestScreen(80, 24))

	if output := term.GetLastCommandOutput(); output != "" {
		t.Errorf("expected empty string, got %q", output)
	}
}

func TestGetLastCommandOutput_OnlyExecutedNoFinished(t *testing.T) {
	term := New(newTestScreen(80, 24))

	term.WriteString("\x1b]133;C\x07")
	term.WriteString("output\r\n")

	if output := term.GetLastCommandOutput(); output != "" {
		t.Errorf("expected empty string (no pair), got %q", output)
	}
}

func TestGetLastCommandOutput_MultipleCommands(t *testing.T) {
	term := New(newTestScreen(80, 24))

	term.WriteString("\x1b]133;C\x07")
	term.WriteString("first output\r\n")
	term.WriteString("\x1b]133;D;0\x07")

	term.WriteString("\x1b]133;A\x07")
	term.WriteString("$ ")
	term.WriteString("\x1b]133;B\x07")
	term.WriteString("cmd2\r\n")
	term.WriteString("\x1b]133;C\x07")
	term.WriteString("second output\r\n")
	term.WriteString("\x1b]133;D;0\x07")

	if output := term.GetLastCommandOutput(); output != "second output" {
		t.Errorf("expected %q, got %q", "second output", output)
	}
}

func TestGetLastCommandOutput_WithExitCode(t *testing.T) {
	term := New(newTestScreen(80, 24))

	term.WriteString("\x1b]133;C\x07")
	term.WriteString("error message\r\n")
	term.WriteString("\x1b]133;D;1\x07")

	if output := term.GetLastCommandOutput(); output != "error message" {
		t.Errorf("expected %q, got %q", "error message", output)
	}
}

func TestGetLastCommandOutput_TrailingEmptyLines(t *testing.T) {
	term := New(newTestScreen(80, 24))

	term.WriteString("\x1b]133;C\x07")
	term.WriteString("content\r\n")
	term.WriteString("\r\n")
	term.WriteString("\r\n")
	term.WriteString("\x1b]133;D;0\x07")

	if output := term.GetLastCommandOutput(); output != "content" {
		t.Errorf("expected %q, got %q", "content", output)
	}
}
