package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"occ/internal/source"
	"occ/internal/token"
)

type TokenOutput struct {
	Kind  string      `json:"kind"`
	Class string      `json:"class"`
	Text  string      `json:"text,omitempty"`
	Value *uint64     `json:"value,omitempty"`
	Span  source.Span `json:"span"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		start, end := fs.Resolve(tok.Span)
		if _, err := fmt.Fprintf(w, "%3d: %-10s %-10s", i+1, tok.Kind, tok.Kind.Class()); err != nil {
			return err
		}
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d\n", start.Line, start.Col, end.Line, end.Col)
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{
			Kind:  tok.Kind.String(),
			Class: tok.Kind.Class().String(),
			Text:  tok.Text,
			Span:  tok.Span,
		}
		if tok.Kind == token.Number {
			v := tok.Value
			out.Value = &v
		}
		output = append(output, out)
		if tok.Kind == token.EOF {
			break
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
