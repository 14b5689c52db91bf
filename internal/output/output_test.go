package output

import (
	"bytes"
	"context"
	"os"
	"testing"
)

func TestWithPrinter_FromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		ctx := WithPrinter(context.Background(), &buf)
		p := FromContext(ctx)
		if p == nil {
			t.Fatal("FromContext returned nil")
		}
		if p.Writer() != &buf {
			t.Error("Writer() should return the buffer passed to WithPrinter")
		}
	})

	t.Run("default to stdout when not set", func(t *testing.T) {
		t.Parallel()
		p := FromContext(context.Background())
		if p == nil {
			t.Fatal("FromContext returned nil on empty context")
		}
		if p.Writer() != os.Stdout {
			t.Error("Writer() should default to os.Stdout")
		}
	})
}

func TestPrinter_Print(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf)

	p.Print("git", " ", "init")
	if got := buf.String(); got != "git init" {
		t.Errorf("Print() wrote %q, want %q", got, "git init")
	}
}

func TestPrinter_Printf(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf)

	p.Printf("Mode set to: %s", "gh")
	if got := buf.String(); got != "Mode set to: gh" {
		t.Errorf("Printf() wrote %q, want %q", got, "Mode set to: gh")
	}
}

func TestPrinter_Println(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf)

	p.Println("line one")
	p.Println("line two")
	want := "line one\nline two\n"
	if got := buf.String(); got != want {
		t.Errorf("Println() wrote %q, want %q", got, want)
	}
}

func TestPrinter_StripsStylesOffTerminal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf)

	p.Print("\x1b[38;5;82mgit init -> OK\x1b[m")
	if got := buf.String(); got != "git init -> OK" {
		t.Errorf("Print() wrote %q, want escape sequences stripped", got)
	}
}
