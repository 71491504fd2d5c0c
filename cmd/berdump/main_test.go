package main

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_NoArgs(t *testing.T) {
	exitCode := run([]string{"berdump"})
	if exitCode != 1 {
		t.Errorf("expected exit code 1 for no args, got %d", exitCode)
	}
}

func TestRun_Help(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"help command", []string{"berdump", "help"}},
		{"short flag", []string{"berdump", "-h"}},
		{"long flag", []string{"berdump", "--help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exitCode := run(tt.args)
			if exitCode != 0 {
				t.Errorf("expected exit code 0 for help, got %d", exitCode)
			}
		})
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	exitCode := run([]string{"berdump", "unknown"})
	if exitCode != 1 {
		t.Errorf("expected exit code 1 for unknown command, got %d", exitCode)
	}
}

func TestRun_Version(t *testing.T) {
	exitCode := run([]string{"berdump", "version"})
	if exitCode != 0 {
		t.Errorf("expected exit code 0 for version, got %d", exitCode)
	}
}

func TestRun_VersionShort(t *testing.T) {
	exitCode := run([]string{"berdump", "version", "-short"})
	if exitCode != 0 {
		t.Errorf("expected exit code 0 for version -short, got %d", exitCode)
	}
}

func TestRun_VersionHelp(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"short flag", []string{"berdump", "version", "-h"}},
		{"long flag", []string{"berdump", "version", "-help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exitCode := run(tt.args)
			if exitCode != 0 {
				t.Errorf("expected exit code 0 for version help, got %d", exitCode)
			}
		})
	}
}

// writeTempBER writes raw as hex text to a temp file and returns its path.
func writeTempBER(t *testing.T, raw []byte) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "msg.hex")
	if err := os.WriteFile(path, []byte(hex.EncodeToString(raw)), 0644); err != nil {
		t.Fatalf("failed to write test input: %v", err)
	}
	return path
}

func TestRun_DumpHexFile(t *testing.T) {
	// SEQUENCE { INTEGER 1, BOOLEAN true }
	raw := []byte{0x30, 0x06, 0x02, 0x01, 0x01, 0x01, 0x01, 0xFF}
	path := writeTempBER(t, raw)

	exitCode := run([]string{"berdump", "dump", "-hex", path})
	if exitCode != 0 {
		t.Errorf("expected exit code 0 for dump, got %d", exitCode)
	}
}

func TestRun_DumpMissingFile(t *testing.T) {
	exitCode := run([]string{"berdump", "dump", "-hex", "/does/not/exist"})
	if exitCode != 1 {
		t.Errorf("expected exit code 1 for missing file, got %d", exitCode)
	}
}

func TestRun_DumpHelp(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"short flag", []string{"berdump", "dump", "-h"}},
		{"long flag", []string{"berdump", "dump", "-help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exitCode := run(tt.args)
			if exitCode != 0 {
				t.Errorf("expected exit code 0 for dump help, got %d", exitCode)
			}
		})
	}
}

func TestRun_ScriptMissingFmt(t *testing.T) {
	exitCode := run([]string{"berdump", "script"})
	if exitCode != 1 {
		t.Errorf("expected exit code 1 for script without -fmt, got %d", exitCode)
	}
}

func TestRun_ScriptOK(t *testing.T) {
	// SEQUENCE { INTEGER 1, BOOLEAN true }
	raw := []byte{0x30, 0x06, 0x02, 0x01, 0x01, 0x01, 0x01, 0xFF}
	path := writeTempBER(t, raw)

	exitCode := run([]string{"berdump", "script", "-fmt", "{ib}", "-hex", path})
	if exitCode != 0 {
		t.Errorf("expected exit code 0 for script, got %d", exitCode)
	}
}

func TestRun_ScriptArrayBytes(t *testing.T) {
	// SEQUENCE { OCTET STRING "foo", OCTET STRING "bar" }
	raw := []byte{
		0x30, 0x0A,
		0x04, 0x03, 'f', 'o', 'o',
		0x04, 0x03, 'b', 'a', 'r',
	}
	path := writeTempBER(t, raw)

	// "{v}" must not emit a begin-sequence opcode before "v": OpArrayBytes
	// enters the SEQUENCE itself via enterAnyAggregate.
	exitCode := run([]string{"berdump", "script", "-fmt", "{v}", "-hex", path})
	if exitCode != 0 {
		t.Errorf("expected exit code 0 for script with array opcode, got %d", exitCode)
	}
}

func TestRun_ScriptBadOpcode(t *testing.T) {
	raw := []byte{0x02, 0x01, 0x01}
	path := writeTempBER(t, raw)

	exitCode := run([]string{"berdump", "script", "-fmt", "Q", "-hex", path})
	if exitCode != 1 {
		t.Errorf("expected exit code 1 for bad opcode, got %d", exitCode)
	}
}

func TestRun_ScriptHelp(t *testing.T) {
	exitCode := run([]string{"berdump", "script", "-h"})
	if exitCode != 0 {
		t.Errorf("expected exit code 0 for script help, got %d", exitCode)
	}
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	printUsage(&buf)

	output := buf.String()
	expectedStrings := []string{
		"berdump - inspect BER-encoded buffers",
		"Usage:",
		"berdump <command> [options]",
		"Commands:",
		"dump",
		"script",
		"version",
	}

	for _, expected := range expectedStrings {
		if !strings.Contains(output, expected) {
			t.Errorf("expected usage to contain %q", expected)
		}
	}
}

func TestPrintDumpUsage(t *testing.T) {
	var buf bytes.Buffer
	printDumpUsage(&buf)

	output := buf.String()
	expectedStrings := []string{"Print a BER buffer's element tree", "-hex", "-b64"}
	for _, expected := range expectedStrings {
		if !strings.Contains(output, expected) {
			t.Errorf("expected dump usage to contain %q", expected)
		}
	}
}

func TestPrintScriptUsage(t *testing.T) {
	var buf bytes.Buffer
	printScriptUsage(&buf)

	output := buf.String()
	expectedStrings := []string{"Run a format-string script", "-fmt"}
	for _, expected := range expectedStrings {
		if !strings.Contains(output, expected) {
			t.Errorf("expected script usage to contain %q", expected)
		}
	}
}

func TestPrintVersionUsage(t *testing.T) {
	var buf bytes.Buffer
	printVersionUsage(&buf)

	output := buf.String()
	expectedStrings := []string{"Show version information", "-short"}
	for _, expected := range expectedStrings {
		if !strings.Contains(output, expected) {
			t.Errorf("expected version usage to contain %q", expected)
		}
	}
}

func TestGetVersion(t *testing.T) {
	v := GetVersion()
	if v == "" {
		t.Error("expected non-empty version")
	}
}

func TestGetCommit(t *testing.T) {
	c := GetCommit()
	if c == "" {
		t.Error("expected non-empty commit")
	}
}

func TestGetBuildDate(t *testing.T) {
	d := GetBuildDate()
	if d == "" {
		t.Error("expected non-empty build date")
	}
}
