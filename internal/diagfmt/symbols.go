package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"occ/internal/source"
	"occ/internal/symbols"
)

type SymbolOutput struct {
	Name  string `json:"name"`
	Slot  uint32 `json:"slot"`
	Uses  uint32 `json:"uses"`
	First string `json:"first"`
}

// BuildSymbolsOutput lists the table in first-seen order; nil table gives nil.
func BuildSymbolsOutput(table *symbols.Table, fs *source.FileSet) []SymbolOutput {
	if table == nil {
		return nil
	}
	return buildSymbols(table, fs)
}

func buildSymbols(table *symbols.Table, fs *source.FileSet) []SymbolOutput {
	out := make([]SymbolOutput, 0, table.Len())
	for _, id := range table.Symbols() {
		sym := table.Get(id)
		out = append(out, SymbolOutput{
			Name:  table.Name(id),
			Slot:  sym.Slot,
			Uses:  sym.Uses,
			First: formatSpan(sym.First, fs),
		})
	}
	return out
}

// FormatSymbolsPretty prints the table in first-seen order.
func FormatSymbolsPretty(w io.Writer, table *symbols.Table, fs *source.FileSet) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SLOT\tNAME\tUSES\tFIRST")
	for _, s := range buildSymbols(table, fs) {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", s.Slot, s.Name, s.Uses, s.First)
	}
	return tw.Flush()
}

// FormatSymbolsJSON writes the table as a JSON array.
func FormatSymbolsJSON(w io.Writer, table *symbols.Table, fs *source.FileSet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildSymbols(table, fs))
}
