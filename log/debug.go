package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	charmlog "github.com/charmbracelet/log"
)

// Debug mode configuration
var (
	DebugEnabled bool
	DebugLog     *charmlog.Logger
	debugLogFile *os.File
)

var debugLogFileName = filepath.Join(os.TempDir(), "termtable-debug.log")

// SlowFrame is the frame time above which RecordFrame logs a warning.
const SlowFrame = 16 * time.Millisecond

// frameWindow is the number of recent frames kept for statistics.
const frameWindow = 100

// InitDebug initializes debug logging if TERMTABLE_DEBUG=1 is set.
func InitDebug() {
	if os.Getenv("TERMTABLE_DEBUG") != "1" {
		DebugLog = charmlog.New(io.Discard)
		return
	}

	DebugEnabled = true

	f, err := os.OpenFile(debugLogFileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		ErrorLog.Errorf("could not open debug log file: %s", err)
		DebugLog = charmlog.New(io.Discard)
		return
	}

	DebugLog = newLogger(f, "debug", charmlog.DebugLevel)
	debugLogFile = f

	DebugLog.Debug("debug mode enabled", "file", debugLogFileName)
}

// CloseDebug closes the debug log file.
func CloseDebug() {
	if debugLogFile != nil {
		_ = debugLogFile.Close()
		debugLogFile = nil
		fmt.Fprintln(os.Stderr, "wrote debug logs to "+debugLogFileName)
	}
}

func debugf(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Debugf(format, v...)
	}
}

// Debug logs a debug message if debug mode is enabled.
func Debug(format string, v ...interface{}) {
	debugf(format, v...)
}

// LayoutTrace logs width allocation events.
func LayoutTrace(format string, v ...interface{}) {
	debugf("[LAYOUT] "+format, v...)
}

// RenderTrace logs render events for a component.
func RenderTrace(component, format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Debugf("[RENDER:%s] %s", component, fmt.Sprintf(format, v...))
	}
}

// InputTrace logs input handling events.
func InputTrace(format string, v ...interface{}) {
	debugf("[INPUT] "+format, v...)
}

// RenderProfiler tracks rendering performance metrics.
type RenderProfiler struct {
	mu           sync.RWMutex
	components   map[string]*ComponentMetrics
	frameCount   int64
	totalTime    time.Duration
	frameTimings []time.Duration
}

// ComponentMetrics tracks metrics for a single component.
type ComponentMetrics struct {
	Name        string
	RenderCount int64
	TotalTime   time.Duration
	MinTime     time.Duration
	MaxTime     time.Duration
}

var profiler = &RenderProfiler{
	components:   make(map[string]*ComponentMetrics),
	frameTimings: make([]time.Duration, 0, frameWindow),
}

// GetProfiler returns the global render profiler.
func GetProfiler() *RenderProfiler {
	return profiler
}

// StartRender begins timing a component render.
// Returns a function to call when render completes.
func (p *RenderProfiler) StartRender(component string) func() {
	if !DebugEnabled {
		return func() {}
	}

	start := time.Now()
	return func() {
		p.recordRender(component, time.Since(start))
	}
}

func (p *RenderProfiler) recordRender(component string, elapsed time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	m, ok := p.components[component]
	if !ok {
		m = &ComponentMetrics{Name: component, MinTime: elapsed, MaxTime: elapsed}
		p.components[component] = m
	}

	m.RenderCount++
	m.TotalTime += elapsed
	m.MinTime = min(m.MinTime, elapsed)
	m.MaxTime = max(m.MaxTime, elapsed)
}

// RecordFrame records a complete frame render.
func (p *RenderProfiler) RecordFrame(elapsed time.Duration) {
	if !DebugEnabled {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.frameCount++
	p.totalTime += elapsed

	if len(p.frameTimings) >= frameWindow {
		p.frameTimings = p.frameTimings[1:]
	}
	p.frameTimings = append(p.frameTimings, elapsed)

	if elapsed > SlowFrame && DebugLog != nil {
		DebugLog.Warn("slow frame", "elapsed", elapsed)
	}
}

// Component returns a copy of the metrics recorded for component.
func (p *RenderProfiler) Component(component string) (ComponentMetrics, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	m, ok := p.components[component]
	if !ok {
		return ComponentMetrics{}, false
	}
	return *m, true
}

// GetStats returns a summary of render statistics.
func (p *RenderProfiler) GetStats() string {
	if !DebugEnabled {
		return ""
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	var sb strings.Builder
	sb.WriteString("\n=== Render Profile ===\n")
	fmt.Fprintf(&sb, "Total frames: %d\n", p.frameCount)

	if p.frameCount > 0 {
		fmt.Fprintf(&sb, "Avg frame time: %v\n", p.totalTime/time.Duration(p.frameCount))
	}

	if n := len(p.frameTimings); n > 0 {
		var total time.Duration
		lo, hi := p.frameTimings[0], p.frameTimings[0]
		for _, t := range p.frameTimings {
			total += t
			lo = min(lo, t)
			hi = max(hi, t)
		}
		fmt.Fprintf(&sb, "Recent %d frames: avg=%v min=%v max=%v\n", n, total/time.Duration(n), lo, hi)
	}

	sb.WriteString("\n--- Components ---\n")

	sorted := make([]*ComponentMetrics, 0, len(p.components))
	for _, m := range p.components {
		sorted = append(sorted, m)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].TotalTime > sorted[j].TotalTime
	})

	for _, m := range sorted {
		avg := m.TotalTime / time.Duration(max(m.RenderCount, 1))
		fmt.Fprintf(&sb, "  %s: count=%d total=%v avg=%v min=%v max=%v\n",
			m.Name, m.RenderCount, m.TotalTime, avg, m.MinTime, m.MaxTime)
	}

	return sb.String()
}

// LogStats logs the current render statistics.
func (p *RenderProfiler) LogStats() {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Debug(p.GetStats())
	}
}

// Reset clears all profiling data.
func (p *RenderProfiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.components = make(map[string]*ComponentMetrics)
	p.frameCount = 0
	p.totalTime = 0
	p.frameTimings = make([]time.Duration, 0, frameWindow)
}
