package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-test/deep"
)

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	prevOut, prevErr, prevLogger := stdout, stderr, logger
	stdout, stderr = &out, &errOut
	t.Cleanup(func() {
		stdout, stderr, logger = prevOut, prevErr, prevLogger
	})
	return &out, &errOut
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const greeting = `
statements:
  - {type: Def, name: greeting, initial: {type: Literal, value: "hello"}}
  - {type: Print, expression: {type: Variable, name: greeting}}
`

func TestRunSharesGlobalsAcrossFiles(t *testing.T) {
	out, errOut := capture(t)
	dir := t.TempDir()
	first := writeFile(t, dir, "first.yml", greeting)
	second := writeFile(t, dir, "second.yml", `
statements:
  - {type: Print, expression: {type: Binary, operator: "+", left: {type: Variable, name: greeting}, right: {type: Literal, value: " again"}}}
`)

	if status := Dispatch([]string{"run", first, second}); status != ExitOK {
		t.Fatalf("expected status %d, got %d: %s", ExitOK, status, errOut)
	}
	if diff := deep.Equal(strings.Split(strings.TrimSpace(out.String()), "\n"), []string{"hello", "hello again"}); diff != nil {
		t.Error(diff)
	}
}

func TestRunExitStatuses(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name   string
		args   []string
		status int
		stderr string
	}{
		{
			name:   "no files",
			args:   []string{"run"},
			status: ExitUsage,
		},
		{
			name:   "missing file",
			args:   []string{"run", filepath.Join(dir, "nope.yml")},
			status: ExitNoInput,
		},
		{
			name:   "malformed document",
			args:   []string{"run", writeFile(t, dir, "bad.yml", "statements:\n  - {type: Jump}\n")},
			status: ExitDataErr,
			stderr: "statements[0] (Jump)",
		},
		{
			name:   "resolution error",
			args:   []string{"run", writeFile(t, dir, "ret.yml", "statements:\n  - {type: Return, line: 7}\n")},
			status: ExitDataErr,
			stderr: "[line 7] Error R004",
		},
		{
			name:   "runtime error",
			args:   []string{"run", writeFile(t, dir, "div.yml", "statements:\n  - {type: Print, line: 2, expression: {type: Binary, operator: \"/\", left: {type: Literal, value: 1}, right: {type: Literal, value: 0}}}\n")},
			status: ExitSoftware,
			stderr: "Division by zero.\n[line 2]",
		},
		{
			name:   "bad config",
			args:   []string{"run", "-c", writeFile(t, dir, "cfg.yml", "colour: red\n"), writeFile(t, dir, "ok.yml", greeting)},
			status: ExitConfig,
			stderr: "field colour not found",
		},
		{
			name:   "unknown command",
			args:   []string{"jump"},
			status: ExitUsage,
			stderr: "unknown command jump",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errOut := capture(t)
			if status := Dispatch(tt.args); status != tt.status {
				t.Errorf("expected status %d, got %d: %s", tt.status, status, errOut)
			}
			if !strings.Contains(errOut.String(), tt.stderr) {
				t.Errorf("expected %q in %q", tt.stderr, errOut.String())
			}
		})
	}
}

func TestRunWithNativesConfig(t *testing.T) {
	out, errOut := capture(t)
	dir := t.TempDir()
	cfg := writeFile(t, dir, "dis.yml", "natives: [string]\nlog_level: error\n")
	program := writeFile(t, dir, "main.yml", `
statements:
  - {type: Print, expression: {type: Call, callee: {type: Variable, name: upper}, args: [{type: Literal, value: "loud"}]}}
`)
	if status := Dispatch([]string{"run", "-c", cfg, program}); status != ExitOK {
		t.Fatalf("unexpected status %d: %s", status, errOut)
	}
	if got := strings.TrimSpace(out.String()); got != "LOUD" {
		t.Errorf("expected LOUD, got %q", got)
	}
}

func TestCheck(t *testing.T) {
	out, errOut := capture(t)
	dir := t.TempDir()
	good := writeFile(t, dir, "good.yml", greeting)
	bad := writeFile(t, dir, "bad.yml", "statements:\n  - {type: Print, expression: {type: Self}}\n  - {type: Return}\n")

	if status := Dispatch([]string{"check", good, bad}); status != ExitDataErr {
		t.Errorf("expected status %d, got %d", ExitDataErr, status)
	}
	if !strings.Contains(out.String(), good+": ok") {
		t.Errorf("missing ok line in %q", out.String())
	}
	if strings.Count(errOut.String(), bad+":") != 2 {
		t.Errorf("expected two diagnostics in %q", errOut.String())
	}
}

func TestPrint(t *testing.T) {
	out, _ := capture(t)
	path := writeFile(t, t.TempDir(), "main.yml", greeting)
	if status := Dispatch([]string{"print", path}); status != ExitOK {
		t.Fatalf("unexpected status %d", status)
	}
	expected := "(def greeting \"hello\")\n(log greeting)\n"
	if out.String() != expected {
		t.Errorf("expected=%q, got=%q", expected, out.String())
	}
}

func TestHelp(t *testing.T) {
	out, _ := capture(t)
	if status := Dispatch([]string{"help"}); status != ExitOK {
		t.Fatalf("unexpected status %d", status)
	}
	for _, name := range commandNames() {
		if !strings.Contains(out.String(), name) {
			t.Errorf("help does not list %s", name)
		}
	}

	out.Reset()
	if status := Dispatch([]string{"help", "print"}); status != ExitOK {
		t.Fatalf("unexpected status %d", status)
	}
	if !strings.Contains(out.String(), "(No flags available)") {
		t.Errorf("unexpected help output %q", out.String())
	}

	if status := Dispatch([]string{"help", "jump"}); status != ExitUsage {
		t.Errorf("expected status %d, got %d", ExitUsage, status)
	}
}
