package diag

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"occ/internal/source"
)

// Reporter: минимальный контракт получения диагностик от фаз.
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, msg string, notes []Note)
}

// BagReporter writes into a *Bag.
type BagReporter struct{ Bag *Bag }

func (r *BagReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	if r == nil || r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{
		Severity: sev, Code: code, Message: msg,
		Primary: primary, Notes: notes,
	})
}

// NopReporter drops everything.
type NopReporter struct{}

func (NopReporter) Report(Code, Severity, source.Span, string, []Note) {}

// Emit reports err through r. A lexical error gets an extra note with the
// input left unread at the error position.
func Emit(r Reporter, err *Error) {
	if r == nil || err == nil {
		return
	}
	notes := err.Notes
	if err.Code.IsLexical() && err.Rest != "" {
		notes = append(notes[:len(notes):len(notes)], Note{
			Span: source.Span{File: err.Span.File, Start: err.Span.Start, End: err.Span.Start},
			Msg:  "remaining input: " + quoteRest(err.Rest),
		})
	}
	r.Report(err.Code, err.Code.Severity(), err.Span, err.Message, notes)
}

// maxRestRunes ограничивает хвост в заметке; полный хвост есть в Error().
const maxRestRunes = 32

// quoteRest quotes the first line of rest, shortened to maxRestRunes.
func quoteRest(rest string) string {
	cut := false
	if i := strings.IndexAny(rest, "\r\n"); i >= 0 {
		rest, cut = rest[:i], true
	}
	if utf8.RuneCountInString(rest) > maxRestRunes {
		n := 0
		for i := range rest {
			if n == maxRestRunes {
				rest, cut = rest[:i], true
				break
			}
			n++
		}
	}
	q := strconv.Quote(rest)
	if cut {
		q += "..."
	}
	return q
}
