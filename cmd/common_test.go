package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/valpere/civiclink/internal"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: empty", internal.ErrInvalidInput), exitInvalid},
		{fmt.Errorf("%w: google", internal.ErrProviderUnavailable), exitUnavailable},
		{errors.New("boom"), exitFailure},
	}
	for _, tt := range tests {
		if got := exitCode(tt.err); got != tt.want {
			t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestReadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(path, []byte("from file"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := readInput(path, []string{"ignored"}, strings.NewReader("ignored"))
	if err != nil || got != "from file" {
		t.Errorf("file input: got %q, %v", got, err)
	}

	got, err = readInput("", []string{"from", "args"}, strings.NewReader("ignored"))
	if err != nil || got != "from args" {
		t.Errorf("args input: got %q, %v", got, err)
	}

	got, err = readInput("", nil, strings.NewReader("from stdin"))
	if err != nil || got != "from stdin" {
		t.Errorf("stdin input: got %q, %v", got, err)
	}

	if _, err := readInput(filepath.Join(t.TempDir(), "missing.txt"), nil, nil); err == nil {
		t.Error("expected error for missing input file")
	}
}

func TestWriteOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := writeOutput("", "Hola.", &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "Hola.\n" {
		t.Errorf("expected stdout output, got %q", buf.String())
	}

	path := filepath.Join(t.TempDir(), "nested", "out.txt")
	if err := writeOutput(path, "Hola.", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "Hola." {
		t.Errorf("expected file output, got %q, %v", data, err)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := truncate("line one\nline   two", 40); got != "line one line two" {
		t.Errorf("expected whitespace collapsed, got %q", got)
	}
	if got := truncate("ñññññññññññ", 8); got != "ñññññ..." {
		t.Errorf("expected rune-safe truncation, got %q", got)
	}
}

func TestOpenHistory_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "history.db")
	db, err := openHistory(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("expected directory to exist: %v", err)
	}
}
