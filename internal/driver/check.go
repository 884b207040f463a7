package driver

import (
	"context"
	"time"

	"occ/internal/diag"
	"occ/internal/pipeline"
	"occ/internal/source"
	"occ/internal/trace"
)

// ErrorSummary is the first compile error of a file, detached from spans.
type ErrorSummary struct {
	Code    string `msgpack:"code" json:"code"`
	Message string `msgpack:"message" json:"message"`
	Line    uint32 `msgpack:"line" json:"line"`
	Col     uint32 `msgpack:"col" json:"col"`
	Rest    string `msgpack:"rest,omitempty" json:"rest,omitempty"`
}

// CheckSummary is what `check` reports per file and what the cache stores.
type CheckSummary struct {
	Schema     uint16        `msgpack:"schema" json:"-"`
	Build      string        `msgpack:"build" json:"-"`
	Path       string        `msgpack:"-" json:"path"`
	Hash       Digest        `msgpack:"hash" json:"-"`
	Statements int           `msgpack:"statements" json:"statements"`
	Symbols    []string      `msgpack:"symbols" json:"symbols"` // в порядке слотов
	Error      *ErrorSummary `msgpack:"error,omitempty" json:"error,omitempty"`
	Cached     bool          `msgpack:"-" json:"cached"`
	LoadError  string        `msgpack:"-" json:"load_error,omitempty"`
}

// OK reports whether the file loaded and parsed cleanly.
func (s *CheckSummary) OK() bool {
	return s.Error == nil && s.LoadError == ""
}

// CheckOptions configures CheckDir and CheckFile.
type CheckOptions struct {
	DirOptions
	Cache *DiskCache // nil: без кэша
}

// CheckReport aggregates a directory check.
type CheckReport struct {
	Files  []CheckSummary `json:"files"`
	Failed int            `json:"failed"`
	Cached int            `json:"cached"`
}

// Summarize condenses a parse result.
func Summarize(res *ParseResult) CheckSummary {
	sum := CheckSummary{Hash: res.File.Hash}
	if res.Program != nil {
		sum.Statements = len(res.Program.Stmts)
	}
	if res.Symbols != nil {
		for _, id := range res.Symbols.Symbols() {
			sum.Symbols = append(sum.Symbols, res.Symbols.Name(id))
		}
	}
	if de, ok := diag.AsError(res.Err); ok {
		start, _ := res.FileSet.Resolve(de.Span)
		sum.Error = &ErrorSummary{
			Code:    de.Code.ID(),
			Message: de.Message,
			Line:    start.Line,
			Col:     start.Col,
			Rest:    de.Rest,
		}
	}
	return sum
}

// checkOne consults the cache, parses on a miss and stores the new summary.
func checkOne(ctx context.Context, fs *source.FileSet, file *source.File, path string, opts CheckOptions) (CheckSummary, error) {
	start := time.Now()
	var sum CheckSummary

	if opts.Cache != nil {
		pipeline.Emit(opts.Progress, pipeline.Event{File: path, Stage: pipeline.StageCache, Status: pipeline.StatusWorking})
		hit, err := opts.Cache.Get(file.Hash, &sum)
		// битая запись кэша считается промахом
		if err == nil && hit {
			sum.Path = path
			sum.Cached = true
			pipeline.Emit(opts.Progress, pipeline.Event{File: path, Stage: pipeline.StageCache, Status: pipeline.StatusCached, Elapsed: time.Since(start)})
			return sum, nil
		}
	}

	pipeline.Emit(opts.Progress, pipeline.Event{File: path, Stage: pipeline.StageParse, Status: pipeline.StatusWorking})
	res, err := ParseFile(ctx, fs, file, ParseOptions{MaxDiagnostics: opts.MaxDiagnostics})
	if err != nil {
		return CheckSummary{}, err
	}
	sum = Summarize(res)
	sum.Path = path
	// ошибка записи кэша не влияет на результат проверки
	_ = opts.Cache.Put(file.Hash, &sum)

	status := pipeline.StatusDone
	if !sum.OK() {
		status = pipeline.StatusError
	}
	pipeline.Emit(opts.Progress, pipeline.Event{File: path, Stage: pipeline.StageParse, Status: status, Err: res.Err, Elapsed: time.Since(start)})
	return sum, nil
}

// CheckFile checks a single file.
func CheckFile(ctx context.Context, path string, opts CheckOptions) (CheckSummary, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return CheckSummary{Path: path, LoadError: err.Error()}, err
	}
	return checkOne(ctx, fs, fs.Get(fileID), path, opts)
}

// CheckDir checks every source file under dir in parallel.
func CheckDir(ctx context.Context, dir string, opts CheckOptions) (*CheckReport, error) {
	ctx, span := trace.Start(ctx, trace.ScopeDriver, "check_dir")
	defer span.End("")
	ld, err := loadDir(dir, opts.DirOptions)
	if err != nil {
		return nil, err
	}
	span.Count("files", len(ld.files))
	sums := make([]CheckSummary, len(ld.files))
	pipeline.Emit(opts.Progress, pipeline.Event{Stage: pipeline.StageParse, Status: pipeline.StatusWorking})

	err = forEach(ctx, len(ld.files), opts.Jobs, func(ctx context.Context, i int) error {
		path := ld.files[i]
		if loadErr, ok := ld.loadErrors[path]; ok {
			sums[i] = CheckSummary{Path: path, LoadError: loadErr.Error()}
			pipeline.Emit(opts.Progress, pipeline.Event{File: path, Stage: pipeline.StageLoad, Status: pipeline.StatusError, Err: loadErr})
			return nil
		}
		sum, err := checkOne(ctx, ld.fileSet, ld.fileSet.Get(ld.fileIDs[path]), path, opts)
		if err != nil {
			return err
		}
		sums[i] = sum
		return nil
	})
	if err != nil {
		return nil, err
	}

	report := &CheckReport{Files: sums}
	for i := range sums {
		if !sums[i].OK() {
			report.Failed++
		}
		if sums[i].Cached {
			report.Cached++
		}
	}
	return report, nil
}
