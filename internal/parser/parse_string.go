package parser

import (
	"context"

	"occ/internal/ast"
	"occ/internal/diag"
	"occ/internal/lexer"
	"occ/internal/source"
	"occ/internal/symbols"
	"occ/internal/trace"
)

// Result bundles everything a single-file parse produces.
type Result struct {
	Program *ast.Program // nil when parsing failed
	Symbols *symbols.Table
	Strings *source.Interner
	FileSet *source.FileSet
	File    *source.File
	Bag     *diag.Bag
}

// ParseString parses src as a virtual file called name.
// The Result is returned even on error so that callers can render Bag.
func ParseString(name, src string) (*Result, error) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, []byte(src)))
	return ParseSource(context.Background(), fs, file, Options{})
}

// ParseSource parses one file of fs with fresh interner, table and bag.
// A nil opts.Reporter is replaced by a reporter into Result.Bag.
func ParseSource(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) (*Result, error) {
	res := &Result{
		Strings: source.NewInterner(),
		FileSet: fs,
		File:    file,
		Bag:     diag.NewBag(0),
	}
	res.Symbols = symbols.NewTable(res.Strings)
	if opts.Reporter == nil {
		opts.Reporter = &diag.BagReporter{Bag: res.Bag}
	}
	if opts.Tracer == nil {
		opts.Tracer = trace.FromContext(ctx)
	}

	lx := lexer.New(file, lexer.Options{Reporter: opts.Reporter, Tracer: opts.Tracer, Parent: trace.CurrentSpan(ctx)})
	prog, err := ParseFile(ctx, fs, lx, res.Strings, res.Symbols, opts)
	if err != nil {
		return res, err
	}
	res.Program = prog
	return res, nil
}
