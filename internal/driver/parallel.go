package driver

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"occ/internal/diag"
	"occ/internal/pipeline"
	"occ/internal/source"
	"occ/internal/trace"
)

// DirOptions configures directory runs.
type DirOptions struct {
	Extensions     []string // nil: DefaultExtensions
	Jobs           int      // <=0: GOMAXPROCS
	MaxDiagnostics int
	Progress       pipeline.ProgressSink // может быть nil
}

// ParseDirResult содержит результат парсинга одного файла
type ParseDirResult struct {
	Path string // путь к файлу
	*ParseResult
}

// loadedDir is a directory whose files were read into one FileSet up front.
// Workers only read from the FileSet, so it is shared without locking.
type loadedDir struct {
	fileSet    *source.FileSet
	files      []string
	fileIDs    map[string]source.FileID
	loadErrors map[string]error
}

func loadDir(dir string, opts DirOptions) (*loadedDir, error) {
	pipeline.Emit(opts.Progress, pipeline.Event{Stage: pipeline.StageLoad, Status: pipeline.StatusWorking})
	files, err := listSourceFiles(dir, opts.Extensions)
	if err != nil {
		return nil, err
	}
	ld := &loadedDir{
		fileSet:    source.NewFileSet(),
		files:      files,
		fileIDs:    make(map[string]source.FileID, len(files)),
		loadErrors: make(map[string]error),
	}
	ld.fileSet.SetBaseDir(dir)
	for _, path := range files {
		pipeline.Emit(opts.Progress, pipeline.Event{File: path, Stage: pipeline.StageLoad, Status: pipeline.StatusQueued})
		fileID, err := ld.fileSet.Load(path)
		if err != nil {
			// Сохраняем ошибку загрузки для последующей обработки
			ld.loadErrors[path] = err
			continue
		}
		ld.fileIDs[path] = fileID
	}
	return ld, nil
}

// forEach runs fn for every file index with at most jobs goroutines.
// Trace events emitted by fn carry task i+1.
func forEach(ctx context.Context, n, jobs int, fn func(ctx context.Context, i int) error) error {
	if n == 0 {
		return nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, n))
	for i := range n {
		g.Go(func() error {
			// Проверка отмены
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(trace.WithTask(gctx, i+1), i)
		})
	}
	return g.Wait()
}

func loadErrorBag(err error, maxDiagnostics int) *diag.Bag {
	bag := diag.NewBag(maxDiagnostics)
	bag.Add(diag.Diagnostic{
		Severity: diag.IOLoadFileError.Severity(),
		Code:     diag.IOLoadFileError,
		Message:  "failed to load file: " + err.Error(),
	})
	return bag
}

// ParseDir парсит все исходники в директории параллельно.
// Each file gets its own interner, symbol table and bag; there is no
// linking between files. Results are sorted by path.
func ParseDir(ctx context.Context, dir string, opts DirOptions) (*source.FileSet, []ParseDirResult, error) {
	ctx, span := trace.Start(ctx, trace.ScopeDriver, "parse_dir")
	defer span.End("")
	ld, err := loadDir(dir, opts)
	if err != nil {
		return nil, nil, err
	}
	span.Count("files", len(ld.files))
	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]ParseDirResult, len(ld.files))
	pipeline.Emit(opts.Progress, pipeline.Event{Stage: pipeline.StageParse, Status: pipeline.StatusWorking})

	err = forEach(ctx, len(ld.files), opts.Jobs, func(ctx context.Context, i int) error {
		path := ld.files[i]
		if loadErr, ok := ld.loadErrors[path]; ok {
			results[i] = ParseDirResult{Path: path, ParseResult: &ParseResult{
				FileSet: ld.fileSet,
				Bag:     loadErrorBag(loadErr, opts.MaxDiagnostics),
				Err:     loadErr,
			}}
			pipeline.Emit(opts.Progress, pipeline.Event{File: path, Stage: pipeline.StageLoad, Status: pipeline.StatusError, Err: loadErr})
			return nil
		}

		start := time.Now()
		pipeline.Emit(opts.Progress, pipeline.Event{File: path, Stage: pipeline.StageParse, Status: pipeline.StatusWorking})
		res, err := ParseFile(ctx, ld.fileSet, ld.fileSet.Get(ld.fileIDs[path]), ParseOptions{MaxDiagnostics: opts.MaxDiagnostics})
		if err != nil {
			return err
		}
		results[i] = ParseDirResult{Path: path, ParseResult: res}

		status := pipeline.StatusDone
		if res.Failed() {
			status = pipeline.StatusError
		}
		pipeline.Emit(opts.Progress, pipeline.Event{File: path, Stage: pipeline.StageParse, Status: status, Err: res.Err, Elapsed: time.Since(start)})
		return nil
	})
	if err != nil {
		return ld.fileSet, results, err
	}
	return ld.fileSet, results, nil
}
