package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestCreatedIsPlain(t *testing.T) {
	var out, errBuf bytes.Buffer
	c := NewConsole(&out, &errBuf)
	c.Created("icon16.png")
	c.Created("icon48.png")

	if got, want := out.String(), "Created icon16.png\nCreated icon48.png\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if errBuf.Len() != 0 {
		t.Errorf("stderr = %q, want empty", errBuf.String())
	}
}

func TestErrorWithoutTerminal(t *testing.T) {
	var out, errBuf bytes.Buffer
	NewConsole(&out, &errBuf).Error("create icon16.png: permission denied")

	if got, want := errBuf.String(), "[ERROR] create icon16.png: permission denied\n"; got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}
}

func TestErrorColored(t *testing.T) {
	var errBuf bytes.Buffer
	c := &Console{Out: &bytes.Buffer{}, Err: &errBuf, color: true}
	c.Error("boom")

	if got, want := errBuf.String(), Red+"[ERROR] "+Reset+"boom\n"; got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
}

func TestRegularFileIsNotTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "log"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if isTerminal(f) {
		t.Error("isTerminal(regular file) = true")
	}
}
