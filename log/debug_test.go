package log

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	charmlog "github.com/charmbracelet/log"
)

func TestDebugDisabledByDefault(t *testing.T) {
	DebugEnabled = false
	DebugLog = nil

	t.Setenv("TERMTABLE_DEBUG", "")
	InitDebug()

	if DebugEnabled {
		t.Error("Debug should be disabled by default")
	}
	if DebugLog == nil {
		t.Error("DebugLog should be a no-op logger, not nil")
	}
}

func TestDebugEnabledWithEnvVar(t *testing.T) {
	DebugEnabled = false
	DebugLog = nil
	debugLogFileName = t.TempDir() + "/debug.log"

	t.Setenv("TERMTABLE_DEBUG", "1")
	InitDebug()
	defer func() {
		CloseDebug()
		DebugEnabled = false
	}()

	if !DebugEnabled {
		t.Error("Debug should be enabled with TERMTABLE_DEBUG=1")
	}
	if DebugLog == nil {
		t.Error("DebugLog should be initialized")
	}
}

func TestTraceWritesWhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	DebugLog = charmlog.NewWithOptions(&buf, charmlog.Options{Level: charmlog.DebugLevel})
	DebugEnabled = true
	defer func() { DebugEnabled = false }()

	LayoutTrace("widths %v", []int{3, 4})
	RenderTrace("table", "%d lines", 7)
	InputTrace("key %s", "q")

	out := buf.String()
	for _, want := range []string{"[LAYOUT] widths [3 4]", "[RENDER:table] 7 lines", "[INPUT] key q"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in debug output:\n%s", want, out)
		}
	}
}

func TestTraceHelpersWithoutLogger(t *testing.T) {
	DebugEnabled = false
	DebugLog = nil
	Debug("test %s", "arg")
	LayoutTrace("test %s", "arg")
	RenderTrace("component", "test %s", "arg")
	InputTrace("test %s", "arg")

	DebugEnabled = true
	defer func() { DebugEnabled = false }()
	Debug("test %s", "arg")
	LayoutTrace("test %s", "arg")
	RenderTrace("component", "test %s", "arg")
	InputTrace("test %s", "arg")
}

func TestRenderProfiler(t *testing.T) {
	defer func() { DebugEnabled = false }()

	t.Run("StartRender returns noop when disabled", func(t *testing.T) {
		DebugEnabled = false
		profiler.Reset()

		done := profiler.StartRender("table")
		done()

		if _, ok := profiler.Component("table"); ok {
			t.Error("Should not record when disabled")
		}
	})

	t.Run("StartRender records when enabled", func(t *testing.T) {
		DebugEnabled = true
		profiler.Reset()

		done := profiler.StartRender("table")
		time.Sleep(time.Millisecond)
		done()

		m, ok := profiler.Component("table")
		if !ok {
			t.Fatal("Expected metrics for table")
		}
		if m.RenderCount != 1 {
			t.Errorf("Expected render count 1, got %d", m.RenderCount)
		}
		if m.TotalTime < time.Millisecond {
			t.Errorf("Expected total time >= 1ms, got %v", m.TotalTime)
		}
	})

	t.Run("multiple renders accumulate", func(t *testing.T) {
		DebugEnabled = true
		profiler.Reset()

		for i := 0; i < 5; i++ {
			profiler.StartRender("cell")()
		}

		m, _ := profiler.Component("cell")
		if m.RenderCount != 5 {
			t.Errorf("Expected render count 5, got %d", m.RenderCount)
		}
	})
}

func TestRecordFrame(t *testing.T) {
	DebugEnabled = true
	DebugLog = charmlog.New(&bytes.Buffer{})
	defer func() { DebugEnabled = false }()
	profiler.Reset()

	profiler.RecordFrame(10 * time.Millisecond)
	profiler.RecordFrame(20 * time.Millisecond)

	if profiler.frameCount != 2 {
		t.Errorf("Expected frame count 2, got %d", profiler.frameCount)
	}
	if profiler.totalTime != 30*time.Millisecond {
		t.Errorf("Expected total time 30ms, got %v", profiler.totalTime)
	}
}

func TestGetStats(t *testing.T) {
	DebugEnabled = true
	defer func() { DebugEnabled = false }()
	profiler.Reset()

	profiler.RecordFrame(10 * time.Millisecond)
	profiler.StartRender("table")()

	stats := profiler.GetStats()
	if !strings.Contains(stats, "Render Profile") {
		t.Error("Expected 'Render Profile' in stats")
	}
	if !strings.Contains(stats, "table") {
		t.Error("Expected 'table' in stats")
	}

	DebugEnabled = false
	if profiler.GetStats() != "" {
		t.Error("Expected empty stats when disabled")
	}
}

func TestRollingWindow(t *testing.T) {
	DebugEnabled = true
	defer func() { DebugEnabled = false }()
	profiler.Reset()

	for i := 0; i < 150; i++ {
		profiler.RecordFrame(time.Millisecond)
	}

	if len(profiler.frameTimings) != frameWindow {
		t.Errorf("Expected %d frame timings, got %d", frameWindow, len(profiler.frameTimings))
	}
}

func TestLoggerContext(t *testing.T) {
	if FromContext(context.Background()) != InfoLog {
		t.Error("Expected InfoLog without a logger in context")
	}

	l := charmlog.New(&bytes.Buffer{})
	if FromContext(WithLogger(context.Background(), l)) != l {
		t.Error("Expected logger from context")
	}
}

func TestInitializeToStderr(t *testing.T) {
	Initialize(true)
	defer Close()

	if InfoLog == nil || WarningLog == nil || ErrorLog == nil {
		t.Fatal("Expected loggers to be initialized")
	}
	if InfoLog.GetLevel() != charmlog.InfoLevel {
		t.Errorf("Expected info level, got %v", InfoLog.GetLevel())
	}
}
