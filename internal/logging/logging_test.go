// Package logging provides tests for session logs and the logger builder.
package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

// TestNewSessionLogger tests creating a session logger.
func TestNewSessionLogger(t *testing.T) {
	t.Run("successful creation with valid paths", func(t *testing.T) {
		session, err := NewSessionLogger(t.TempDir(), t.TempDir())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer session.Close()

		if session.Dir == "" || session.SessionID == "" || session.LogPath == "" {
			t.Errorf("expected Dir, SessionID and LogPath to be set, got %+v", session)
		}
		if !strings.HasSuffix(session.LogPath, ".log") {
			t.Errorf("expected .log file, got %s", session.LogPath)
		}
		if _, err := os.Stat(session.LogPath); err != nil {
			t.Errorf("log file not created: %v", err)
		}
	})

	t.Run("empty base dir returns error", func(t *testing.T) {
		_, err := NewSessionLogger("", t.TempDir())
		if err == nil {
			t.Fatal("expected error for empty base dir, got nil")
		}
		if !strings.Contains(err.Error(), "empty") {
			t.Errorf("expected empty dir error, got %v", err)
		}
	})

	t.Run("creates log directory if missing", func(t *testing.T) {
		newLogDir := filepath.Join(t.TempDir(), "new-logs", "nested")

		session, err := NewSessionLogger(newLogDir, t.TempDir())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer session.Close()

		if _, err := os.Stat(newLogDir); err != nil {
			t.Errorf("log directory not created: %v", err)
		}
	})

	t.Run("log directory is named after the project", func(t *testing.T) {
		workDir := filepath.Join(t.TempDir(), "my-board")
		if err := os.Mkdir(workDir, 0755); err != nil {
			t.Fatal(err)
		}

		session, err := NewSessionLogger(t.TempDir(), workDir)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer session.Close()

		if !strings.HasPrefix(filepath.Base(session.Dir), "my-board-") {
			t.Errorf("expected dir named after project, got %s", session.Dir)
		}
	})
}

func TestSessionLoggerWriterAndClose(t *testing.T) {
	session, err := NewSessionLogger(t.TempDir(), t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	logger := New(session.Writer(), Options{Level: log.DebugLevel, Formatter: log.LogfmtFormatter})
	logger.Info("card created", "column", "todo")

	if err := session.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	data, err := os.ReadFile(session.LogPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "card created") || !strings.Contains(string(data), "column=todo") {
		t.Errorf("unexpected log content: %q", data)
	}

	var nilSession *SessionLogger
	if err := nilSession.Close(); err != nil {
		t.Errorf("nil Close: %v", err)
	}
}

func TestNewRespectsLevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Level: log.WarnLevel, Formatter: log.JSONFormatter})
	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"key":"value"`) {
		t.Errorf("expected JSON warn line, got %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    log.Level
		wantErr bool
	}{
		{"debug", log.DebugLevel, false},
		{"", log.InfoLevel, false},
		{"INFO", log.InfoLevel, false},
		{"warning", log.WarnLevel, false},
		{"error", log.ErrorLevel, false},
		{"loud", log.InfoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseFormatter(t *testing.T) {
	tests := []struct {
		input   string
		want    log.Formatter
		wantErr bool
	}{
		{"", log.TextFormatter, false},
		{"json", log.JSONFormatter, false},
		{"Logfmt", log.LogfmtFormatter, false},
		{"xml", log.TextFormatter, true},
	}
	for _, tt := range tests {
		got, err := ParseFormatter(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormatter(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseFormatter(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"simple", "simple"},
		{"Hello World", "Hello_World"},
		{"many   spaces", "many_spaces"},
		{"special@chars!", "special_chars"},
		{"", "project"},
		{"___", "project"},
		{"test.-_project", "test.-_project"},
		{"test/directory", "test_directory"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := slugify(tt.input); got != tt.want {
				t.Errorf("slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHashPath(t *testing.T) {
	a := hashPath("/home/user/board")
	if len(a) != 8 {
		t.Errorf("expected 8 hex chars, got %q", a)
	}
	if a != hashPath("/home/user/board") {
		t.Error("hashPath is not deterministic")
	}
	if a == hashPath("/home/user/other") {
		t.Error("different paths hashed equal")
	}
}

func TestFindLogDir(t *testing.T) {
	if _, err := FindLogDir("", "."); err == nil {
		t.Error("expected error for empty base dir")
	}

	base := t.TempDir()
	work := t.TempDir()
	dir, err := FindLogDir(base, work)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Dir(dir) != base {
		t.Errorf("expected dir under %s, got %s", base, dir)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("FindLogDir must not create the directory")
	}

	rel, err := FindLogDir("logs", work)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(rel, filepath.Join(work, "logs")) {
		t.Errorf("relative base not resolved against work dir: %s", rel)
	}
}

func TestFindLatestLog(t *testing.T) {
	t.Run("finds latest log in directory", func(t *testing.T) {
		logDir := t.TempDir()
		past := time.Now().Add(-time.Hour)
		for i, name := range []string{"20240101-120000-100.log", "20240101-120001-101.log"} {
			path := filepath.Join(logDir, name)
			if err := os.WriteFile(path, []byte("test"), 0644); err != nil {
				t.Fatal(err)
			}
			mod := past.Add(time.Duration(i) * time.Minute)
			if err := os.Chtimes(path, mod, mod); err != nil {
				t.Fatal(err)
			}
		}
		if err := os.WriteFile(filepath.Join(logDir, "notes.txt"), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}

		latest, err := FindLatestLog(logDir)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if filepath.Base(latest) != "20240101-120001-101.log" {
			t.Errorf("expected newest .log file, got %s", latest)
		}
	})

	t.Run("returns empty for non-existent directory", func(t *testing.T) {
		latest, err := FindLatestLog(filepath.Join(t.TempDir(), "missing"))
		if err != nil {
			t.Fatalf("expected no error for non-existent dir, got %v", err)
		}
		if latest != "" {
			t.Errorf("expected empty path, got %s", latest)
		}
	})

	t.Run("returns empty for empty directory", func(t *testing.T) {
		latest, err := FindLatestLog(t.TempDir())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if latest != "" {
			t.Errorf("expected empty path, got %s", latest)
		}
	})
}

// TestTailLog tests tailing log files.
func TestTailLog(t *testing.T) {
	t.Run("tails entire file when n=0", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "test.log")
		content := "line1\nline2\nline3\n"
		if err := os.WriteFile(logFile, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		var buf bytes.Buffer
		if err := TailLog(context.Background(), &buf, logFile, 0, false); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if buf.String() != content {
			t.Errorf("got %q, want %q", buf.String(), content)
		}
	})

	t.Run("shows only the tail of a large file", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "big.log")
		var b strings.Builder
		for i := 0; i < 500; i++ {
			b.WriteString(strings.Repeat("x", 60))
			b.WriteString("\n")
		}
		b.WriteString("last line\n")
		if err := os.WriteFile(logFile, []byte(b.String()), 0644); err != nil {
			t.Fatal(err)
		}

		var buf bytes.Buffer
		if err := TailLog(context.Background(), &buf, logFile, 5, false); err != nil {
			t.Fatal(err)
		}
		if buf.Len() >= b.Len() {
			t.Errorf("expected a tail, got the whole file")
		}
		if !strings.HasSuffix(buf.String(), "last line\n") {
			t.Errorf("tail lost the last line: %q", buf.String())
		}
	})

	t.Run("follow stops when context is done", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "follow.log")
		if err := os.WriteFile(logFile, []byte("first\n"), 0644); err != nil {
			t.Fatal(err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
		defer cancel()

		var buf bytes.Buffer
		if err := TailLog(ctx, &buf, logFile, 0, true); err != nil {
			t.Fatal(err)
		}
		if buf.String() != "first\n" {
			t.Errorf("got %q", buf.String())
		}
	})

	t.Run("missing file returns error", func(t *testing.T) {
		if err := TailLog(context.Background(), &bytes.Buffer{}, filepath.Join(t.TempDir(), "nope.log"), 0, false); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestResolveBaseDir(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "logs")
	if got := resolveBaseDir(abs, "/work"); got != abs {
		t.Errorf("absolute base changed: %s", got)
	}
	if got := resolveBaseDir("logs", "/work"); got != filepath.Clean("/work/logs") {
		t.Errorf("relative base: got %s", got)
	}
}
