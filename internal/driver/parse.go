package driver

import (
	"context"
	"fmt"

	"occ/internal/ast"
	"occ/internal/diag"
	"occ/internal/observ"
	"occ/internal/parser"
	"occ/internal/source"
	"occ/internal/symbols"
	"occ/internal/trace"
)

type ParseOptions struct {
	MaxDiagnostics int
	Timer          *observ.Timer // может быть nil
}

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Program *ast.Program // nil, если разбор упал
	Symbols *symbols.Table
	Strings *source.Interner
	Bag     *diag.Bag
	Err     error // первая лексическая или синтаксическая ошибка
}

// Failed reports whether parsing stopped on a compile error.
func (r *ParseResult) Failed() bool { return r.Err != nil }

// Parse loads and parses one file. The returned error is an I/O error or a
// context error; compile errors are reported in ParseResult.Err and Bag.
func Parse(ctx context.Context, path string, opts ParseOptions) (*ParseResult, error) {
	fs := source.NewFileSet()
	idx := opts.Timer.Begin("load")
	fileID, err := fs.Load(path)
	opts.Timer.End(idx)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return ParseFile(ctx, fs, fs.Get(fileID), opts)
}

// ParseSource parses in-memory source registered under name.
func ParseSource(ctx context.Context, name string, src []byte, opts ParseOptions) (*ParseResult, error) {
	fs := source.NewFileSet()
	return ParseFile(ctx, fs, fs.Get(fs.AddVirtual(name, src)), opts)
}

// settle orders a finished bag for rendering and drops repeats.
func settle(bag *diag.Bag) {
	bag.Sort()
	bag.Dedup()
}

// ParseFile parses a file already present in fs.
func ParseFile(ctx context.Context, fs *source.FileSet, file *source.File, opts ParseOptions) (*ParseResult, error) {
	bag := diag.NewBag(opts.MaxDiagnostics)
	idx := opts.Timer.Begin("parse")
	ctx, span := trace.Start(ctx, trace.ScopePass, "parse")
	span.WithExtra("file", file.Path)
	defer span.End("")
	res, err := parser.ParseSource(ctx, fs, file, parser.Options{
		Reporter: &diag.BagReporter{Bag: bag},
		Tracer:   trace.FromContext(ctx),
	})
	settle(bag)
	out := &ParseResult{
		FileSet: fs,
		File:    file,
		Symbols: res.Symbols,
		Strings: res.Strings,
		Bag:     bag,
	}
	if err != nil {
		opts.Timer.Fail(idx)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		out.Err = err
		return out, nil
	}
	out.Program = res.Program
	opts.Timer.EndCount(idx, len(res.Program.Stmts), "statement")
	span.Count("stmts", len(res.Program.Stmts))
	return out, nil
}
