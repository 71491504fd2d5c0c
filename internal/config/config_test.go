package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    Config
		wantErr bool
	}{
		{"empty", "", Config{Trace: false, Allocator: "heap"}, false},
		{"trace on", "trace: on\n", Config{Trace: true, Allocator: "heap"}, false},
		{"trace true", "trace: true\n", Config{Trace: true, Allocator: "heap"}, false},
		{"allocator pool", "allocator: pool\n", Config{Trace: false, Allocator: "pool"}, false},
		{"comment and blank lines", "# comment\n\ntrace: on\n", Config{Trace: true, Allocator: "heap"}, false},
		{"unknown key", "bogus: 1\n", Config{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.body))
			if tt.wantErr {
				if err == nil {
					t.Fatal("Parse succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if *got != tt.want {
				t.Errorf("Parse = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestParse_EnvSubstitution(t *testing.T) {
	t.Setenv("BERDUMP_TEST_ALLOCATOR", "pool")
	got, err := Parse([]byte("allocator: ${BERDUMP_TEST_ALLOCATOR}\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got.Allocator != "pool" {
		t.Errorf("Allocator = %q, want %q", got.Allocator, "pool")
	}
}

func TestParse_EnvSubstitutionDefault(t *testing.T) {
	os.Unsetenv("BERDUMP_TEST_MISSING")
	got, err := Parse([]byte("allocator: ${BERDUMP_TEST_MISSING:-heap}\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got.Allocator != "heap" {
		t.Errorf("Allocator = %q, want %q", got.Allocator, "heap")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *got != *DefaultConfig() {
		t.Errorf("Load = %+v, want defaults", *got)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "berdumprc")
	if err := os.WriteFile(path, []byte("trace: on\nallocator: pool\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := Config{Trace: true, Allocator: "pool"}
	if *got != want {
		t.Errorf("Load = %+v, want %+v", *got, want)
	}
}
