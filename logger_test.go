package shapemesh

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// captureLogs routes the package logger into a buffer for the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func TestLoggerSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)
	l := Logger()
	if l == nil {
		t.Fatal("Logger() = nil after SetLogger(nil)")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelWarn, slog.LevelError} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("Enabled(%v) = true, want false", level)
		}
	}
}

func TestFillFailureLogsWarning(t *testing.T) {
	buf := captureLogs(t)

	collinear := Ring{Pt(0, 0), Pt(1, 0), Pt(2, 0)}
	ok, err := Fill(NewMesh(), PolygonWithHoles{Outer: collinear})
	if ok || err != nil {
		t.Fatalf("Fill() = %v, %v, want false, nil", ok, err)
	}
	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "op=fill") {
		t.Errorf("log = %q, want a fill warning", out)
	}
}

func TestAntiAliasingAbortLogsWarning(t *testing.T) {
	m := filled(t, squareWithHole())
	buf := captureLogs(t)

	if err := AddAntiAliasing(m, 1.5, WithStrategy(StrategyPrecise)); err == nil {
		t.Fatal("AddAntiAliasing() = nil, want an error")
	}
	if !strings.Contains(buf.String(), "anti-aliasing aborted") {
		t.Errorf("log = %q, want an abort warning", buf.String())
	}
}

func TestSetLoggerDuringBatch(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	b := NewBatch(4)
	defer b.Close()

	jobs := make([]func(*Builder), 64)
	for i := range jobs {
		jobs[i] = func(bl *Builder) {
			// Zero-area rings take the logging path.
			bl.Fill(NewMesh(), PolygonWithHoles{Outer: Ring{Pt(0, 0), Pt(1, 0), Pt(2, 0)}})
		}
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range 100 {
			SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
			SetLogger(nil)
		}
	}()
	if err := b.Rebuild(jobs); err != nil {
		t.Errorf("Rebuild() = %v", err)
	}
	wg.Wait()
}

func BenchmarkLoggerDisabledLog(b *testing.B) {
	l := Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("message", "key", "value")
	}
}
