package walk

import (
	"bytes"
	"os/exec"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestExpandTemplate(t *testing.T) {
	path := "/data/photos/cat.jpg"

	tests := []struct {
		template string
		expected string
	}{
		{"{}", "/data/photos/cat.jpg"},
		{"{base}", "cat.jpg"},
		{"{dir}", "/data/photos"},
		{"{ext}", ".jpg"},
		{"{base} in {dir}", "cat.jpg in /data/photos"},
		{`{""}`, `"/data/photos/cat.jpg"`},
		{`{"base"} {"ext"}`, `"cat.jpg" ".jpg"`},
		{`{"dir"}/x`, `"/data/photos"/x`},
		{"no placeholders", "no placeholders"},
	}

	for _, tt := range tests {
		if got := ExpandTemplate(tt.template, path); got != tt.expected {
			t.Errorf("ExpandTemplate(%q): expected %q, got %q", tt.template, tt.expected, got)
		}
	}
}

func TestPrintAction(t *testing.T) {
	var buf bytes.Buffer
	cb := PrintAction(&buf)
	cb("a.txt")
	cb("sub/b.txt")

	expected := "a.txt\nsub/b.txt\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestFormatActionWithWalk(t *testing.T) {
	var buf bytes.Buffer
	err := memWalker(newMemTree(t, "a.txt", "sub/b.go")).
		WithCallback(FormatAction(&buf, "{base} ({ext})")).
		Walk()
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	expected := "a.txt (.txt)\nb.go (.go)\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestExecAction(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not available")
	}

	var out bytes.Buffer
	cb := ExecAction("echo found {base}", zap.NewNop(), &out)
	cb("/tmp/x/report.csv")

	if out.String() != "found report.csv\n" {
		t.Errorf("Expected command output, got %q", out.String())
	}
}

func TestExecActionLogsFailure(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	cb := ExecAction("definitely-not-a-real-command-xyz {}", zap.New(core), nil)
	cb("file.txt")

	if logs.Len() != 1 {
		t.Fatalf("Expected 1 warning, got %d", logs.Len())
	}
	entry := logs.All()[0]
	if entry.Message != "exec failed" {
		t.Errorf("Expected exec failed message, got %q", entry.Message)
	}
	if entry.ContextMap()["path"] != "file.txt" {
		t.Errorf("Expected path field file.txt, got %v", entry.ContextMap()["path"])
	}
}

func TestExecActionEmptyCommand(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	ExecAction("   ", zap.New(core), nil)("file.txt")
	if logs.Len() != 1 {
		t.Errorf("Expected empty command to be logged, got %d entries", logs.Len())
	}
}
