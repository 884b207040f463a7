package driver

import (
	"occ/internal/diag"
	"occ/internal/lexer"
	"occ/internal/observ"
	"occ/internal/source"
	"occ/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token // до EOF включительно или до лексической ошибки
	Bag     *diag.Bag
	Err     error // лексическая ошибка, если была
}

// Tokenize loads path and lexes it to the end or to the first lexical error.
// The returned error is an I/O error; lexical errors land in Result.Err.
func Tokenize(path string, maxDiagnostics int, timer *observ.Timer) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	idx := timer.Begin("load")
	fileID, err := fs.Load(path)
	timer.End(idx)
	if err != nil {
		return nil, err
	}
	return TokenizeFile(fs, fs.Get(fileID), maxDiagnostics, timer), nil
}

// TokenizeFile lexes an already loaded file.
func TokenizeFile(fs *source.FileSet, file *source.File, maxDiagnostics int, timer *observ.Timer) *TokenizeResult {
	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})
	res := &TokenizeResult{FileSet: fs, File: file, Bag: bag}

	idx := timer.Begin("lex")
	for {
		tok, err := lx.Next()
		if err != nil {
			res.Err = err
			break
		}
		res.Tokens = append(res.Tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	settle(bag)
	if res.Err != nil {
		timer.Fail(idx)
	} else {
		timer.EndCount(idx, len(res.Tokens), "token")
	}
	return res
}
