package logger

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNewLogger_Environments(t *testing.T) {
	for _, env := range []string{"prod", "local", "dev", "docker"} {
		t.Run(env, func(t *testing.T) {
			l, err := NewLogger(env)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if l == nil {
				t.Fatal("expected logger")
			}
		})
	}
}

func TestNewLogger_UnknownEnv(t *testing.T) {
	if _, err := NewLogger("staging"); err == nil {
		t.Fatal("expected error for unknown env")
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	if _, err := NewLogger("local", "loud"); err == nil {
		t.Fatal("expected error for invalid level")
	}
}

func TestNewFileLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "browse.log")

	l, err := NewFileLogger(path, "debug")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l.Debug("page loaded", zap.Int("page", 3))
	_ = l.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "page loaded") {
		t.Errorf("expected log line in file, got %q", string(data))
	}
}

func TestNewFileLogger_EmptyPathIsNop(t *testing.T) {
	l, err := NewFileLogger("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l.Info("discarded")
}

func TestFromContext(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatal("expected nop logger for empty context")
	}

	l := zap.NewExample()
	ctx := ContextWithLogger(context.Background(), l)
	if FromContext(ctx) != l {
		t.Error("expected stored logger")
	}
}

func TestWith_DerivesChild(t *testing.T) {
	ctx := ContextWithLogger(context.Background(), zap.NewExample())
	ctx2, l := With(ctx, zap.Int("page", 2))
	if l == nil {
		t.Fatal("expected child logger")
	}
	if FromContext(ctx2) != l {
		t.Error("expected child logger stored in derived context")
	}
}
