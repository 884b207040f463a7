package driver

import (
	"crypto/sha256"
	"os"
	"path/filepath"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"occ/internal/version"
)

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := NewDiskCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := sha256.Sum256([]byte("a = 1"))

	var out CheckSummary
	if hit, err := cache.Get(key, &out); hit || err != nil {
		t.Fatalf("empty cache: hit=%v err=%v", hit, err)
	}

	in := CheckSummary{Path: "a.c", Hash: key, Statements: 1, Symbols: []string{"a"}, Error: &ErrorSummary{Code: "SYN2006", Line: 1, Col: 4}}
	if err := cache.Put(key, &in); err != nil {
		t.Fatal(err)
	}
	hit, err := cache.Get(key, &out)
	if !hit || err != nil {
		t.Fatalf("hit=%v err=%v", hit, err)
	}
	if out.Path != "" {
		t.Fatal("path must not be cached")
	}
	if out.Statements != 1 || out.Symbols[0] != "a" || out.Error.Code != "SYN2006" || out.Hash != key {
		t.Fatalf("unexpected summary: %+v", out)
	}
}

func TestDiskCacheCorruptEntry(t *testing.T) {
	cache, err := NewDiskCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := sha256.Sum256([]byte("x"))
	p := cache.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte{0xc1}, 0o600); err != nil {
		t.Fatal(err)
	}
	var out CheckSummary
	if hit, err := cache.Get(key, &out); hit || err == nil {
		t.Fatalf("corrupt entry: hit=%v err=%v", hit, err)
	}
}

func TestDiskCacheDropAll(t *testing.T) {
	cache, err := NewDiskCache(filepath.Join(t.TempDir(), "c"))
	if err != nil {
		t.Fatal(err)
	}
	key := sha256.Sum256([]byte("y"))
	if err := cache.Put(key, &CheckSummary{}); err != nil {
		t.Fatal(err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	var out CheckSummary
	if hit, _ := cache.Get(key, &out); hit {
		t.Fatal("entry survived DropAll")
	}
}

func TestNilDiskCache(t *testing.T) {
	var cache *DiskCache
	var out CheckSummary
	if err := cache.Put([32]byte{}, &out); err != nil {
		t.Fatal(err)
	}
	if hit, err := cache.Get([32]byte{}, &out); hit || err != nil {
		t.Fatal("nil cache must miss")
	}
}

func TestDiskCacheBuildMismatch(t *testing.T) {
	oldVersion, oldCommit := version.Version, version.GitCommit
	t.Cleanup(func() { version.Version, version.GitCommit = oldVersion, oldCommit })

	tests := []struct {
		name    string
		version string
		commit  string
		hit     bool
	}{
		{"same_build", "0.1.0", "abc", true},
		{"new_version", "0.2.0", "abc", false},
		{"new_commit", "0.1.0", "def", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			key := sha256.Sum256([]byte("a = 1"))

			version.Version, version.GitCommit = "0.1.0", "abc"
			writer, err := NewDiskCache(dir)
			if err != nil {
				t.Fatal(err)
			}
			if err := writer.Put(key, &CheckSummary{Statements: 1}); err != nil {
				t.Fatal(err)
			}

			version.Version, version.GitCommit = tt.version, tt.commit
			reader, err := NewDiskCache(dir)
			if err != nil {
				t.Fatal(err)
			}
			var out CheckSummary
			hit, err := reader.Get(key, &out)
			if err != nil || hit != tt.hit {
				t.Fatalf("hit=%v err=%v, want hit=%v", hit, err, tt.hit)
			}
		})
	}
}

func TestDiskCacheStaleSchema(t *testing.T) {
	cache, err := NewDiskCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := sha256.Sum256([]byte("b = 2"))
	data, err := msgpack.Marshal(&CheckSummary{Schema: diskCacheSchemaVersion - 1, Build: cache.build})
	if err != nil {
		t.Fatal(err)
	}
	p := cache.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, data, 0o600); err != nil {
		t.Fatal(err)
	}
	var out CheckSummary
	if hit, err := cache.Get(key, &out); hit || err != nil {
		t.Fatalf("stale schema: hit=%v err=%v", hit, err)
	}
}
