package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"occ/internal/diag"
	"occ/internal/source"
)

type palette struct {
	err, warn, info, code, gutter, caret, note, path func(a ...any) string
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) func(a ...any) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	return palette{
		err:    mk(color.FgRed, color.Bold),
		warn:   mk(color.FgYellow, color.Bold),
		info:   mk(color.FgCyan, color.Bold),
		code:   mk(color.Bold),
		gutter: mk(color.FgBlue),
		caret:  mk(color.FgGreen, color.Bold),
		note:   mk(color.FgCyan),
		path:   mk(color.Bold),
	}
}

func (p palette) severity(sev diag.Severity) string {
	switch sev {
	case diag.SevError:
		return p.err(sev.String())
	case diag.SevWarning:
		return p.warn(sev.String())
	default:
		return p.info(sev.String())
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		start, _ := fs.Resolve(d.Primary)
		f := fs.Get(d.Primary.File)
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			pal.path(formatPath(f, fs, opts.PathMode)), start.Line, start.Col,
			pal.severity(d.Severity), pal.code(d.Code.ID()), d.Message)
		writeSnippet(w, fs, d.Primary, opts, pal)

		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			ns, _ := fs.Resolve(n.Span)
			nf := fs.Get(n.Span.File)
			fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", pal.note("note:"),
				formatPath(nf, fs, opts.PathMode), ns.Line, ns.Col, n.Msg)
		}
	}
}

// writeSnippet prints the context lines, the primary line and the underline.
func writeSnippet(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts, pal palette) {
	f := fs.Get(sp.File)
	start, end := fs.Resolve(sp)

	first := start.Line
	if opts.Context > 0 {
		ctx := uint32(opts.Context)
		if ctx >= first {
			first = 1
		} else {
			first -= ctx
		}
	}
	gutterWidth := len(fmt.Sprint(start.Line))

	for ln := first; ln <= start.Line; ln++ {
		text := expandTabs(f.GetLine(ln))
		fmt.Fprintf(w, " %s %s %s\n",
			pal.gutter(fmt.Sprintf("%*d", gutterWidth, ln)), pal.gutter("|"), clip(text, opts.Width))
	}

	line := f.GetLine(start.Line)
	col := int(start.Col) - 1
	if col > len(line) {
		col = len(line)
	}
	// ширина на экране, а не в байтах
	pad := runewidth.StringWidth(expandTabs(line[:col]))
	markLen := 1
	if end.Line == start.Line && end.Col > start.Col {
		stop := int(end.Col) - 1
		if stop > len(line) {
			stop = len(line)
		}
		if width := runewidth.StringWidth(line[col:stop]); width > 0 {
			markLen = width
		}
	}
	mark := "^" + strings.Repeat("~", markLen-1)
	fmt.Fprintf(w, " %s %s %s%s\n",
		strings.Repeat(" ", gutterWidth), pal.gutter("|"), strings.Repeat(" ", pad), pal.caret(mark))
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}

func clip(s string, width uint8) string {
	if width == 0 || runewidth.StringWidth(s) <= int(width) {
		return s
	}
	return runewidth.Truncate(s, int(width), "...")
}
