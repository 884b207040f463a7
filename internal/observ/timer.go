package observ

import (
	"fmt"
	"strings"
	"time"
)

// Phase is one timed step of the front end: load, lex or parse.
// Count and Unit describe what the step produced, e.g. 12 "token".
type Phase struct {
	Name   string
	Start  time.Time
	Dur    time.Duration
	Count  int
	Unit   string
	Failed bool
}

// Note renders the produced amount for humans: "1 token", "3 statements".
func (p Phase) Note() string {
	switch {
	case p.Failed:
		return "failed"
	case p.Unit == "":
		return ""
	case p.Count == 1:
		return "1 " + p.Unit
	default:
		return fmt.Sprintf("%d %ss", p.Count, p.Unit)
	}
}

// Timer collects phases of a single-file run. It is not safe for concurrent
// use; directory runs report per-file progress through pipeline events.
// A nil *Timer is valid and records nothing.
type Timer struct {
	phases []Phase
}

func NewTimer() *Timer { return &Timer{phases: make([]Phase, 0, 4)} }

// Begin starts a phase and returns its index, -1 on a nil timer.
func (t *Timer) Begin(name string) int {
	if t == nil {
		return -1
	}
	t.phases = append(t.phases, Phase{Name: name, Start: time.Now()})
	return len(t.phases) - 1
}

func (t *Timer) phase(idx int) *Phase {
	if t == nil || idx < 0 || idx >= len(t.phases) {
		return nil
	}
	return &t.phases[idx]
}

// End closes a phase that produced nothing worth counting.
func (t *Timer) End(idx int) {
	if p := t.phase(idx); p != nil {
		p.Dur = time.Since(p.Start)
	}
}

// EndCount closes a phase that produced n items of unit.
func (t *Timer) EndCount(idx, n int, unit string) {
	if p := t.phase(idx); p != nil {
		p.Dur = time.Since(p.Start)
		p.Count = n
		p.Unit = unit
	}
}

// Fail closes a phase that stopped on a compile error.
func (t *Timer) Fail(idx int) {
	if p := t.phase(idx); p != nil {
		p.Dur = time.Since(p.Start)
		p.Failed = true
	}
}

// Summary renders the table printed by --timings.
func (t *Timer) Summary() string {
	report := t.Report()
	var sb strings.Builder
	sb.WriteString("timings:\n")
	for i, p := range report.Phases {
		fmt.Fprintf(&sb, "  %-8s %8.3f ms", p.Name, p.DurationMS)
		if note := t.phases[i].Note(); note != "" {
			sb.WriteString("  // " + note)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "  %-8s %8.3f ms\n", "total", report.TotalMS)
	return sb.String()
}

// PhaseReport is the serialized form of a Phase.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Count      int     `json:"count,omitempty"`
	Unit       string  `json:"unit,omitempty"`
	Failed     bool    `json:"failed,omitempty"`
}

// Report агрегирует фазы; TotalMS - сумма длительностей.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

func (t *Timer) Report() Report {
	if t == nil || len(t.phases) == 0 {
		return Report{}
	}
	report := Report{Phases: make([]PhaseReport, len(t.phases))}
	var total time.Duration
	for i, p := range t.phases {
		total += p.Dur
		report.Phases[i] = PhaseReport{
			Name:       p.Name,
			DurationMS: millis(p.Dur),
			Count:      p.Count,
			Unit:       p.Unit,
			Failed:     p.Failed,
		}
	}
	report.TotalMS = millis(total)
	return report
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
