package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB: ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

// languageSeeds cover every statement form and the edge cases of the grammar.
var languageSeeds = []string{
	"",
	"   \t\n",
	"1+2",
	"a = b = 1",
	"3 > 4; 3 => 4; 3 <= 4; 3 < 4",
	"a == b != c",
	"-5; +x; --5",
	"return returns",
	"if a return 1 else return 2",
	"else",
	"for (;;) x",
	"for (i = 0; i < 10; i = i + 1) s = s + i",
	"for (;;",
	"while n n = n - 1",
	"(((((1)))))",
	"(1 + 2",
	"1 + @",
	"99999999999999999999999",
	"café = café + 1",
	";",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.c файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".c" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
