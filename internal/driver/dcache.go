package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"occ/internal/version"
)

// Current schema version - increment when CheckSummary format changes
const diskCacheSchemaVersion uint16 = 2

// buildStamp identifies the parser that produced an entry. Entries written
// by another version or commit are misses, so a parser change never serves
// stale results.
func buildStamp() string {
	info := version.Current()
	if info.GitCommit == "" {
		return info.Version
	}
	return info.Version + "+" + info.GitCommit
}

// Digest is a SHA-256 of normalized file content.
type Digest = [32]byte

// DiskCache хранит результаты проверки файлов по хэшу содержимого.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu    sync.RWMutex
	dir   string
	build string
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewDiskCache(filepath.Join(base, app))
}

// NewDiskCache opens a cache rooted at dir, creating it if needed.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir, build: buildStamp()}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string { return c.dir }

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "check", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a summary. The file appears atomically.
func (c *DiskCache) Put(key Digest, sum *CheckSummary) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	stored := *sum
	stored.Schema = diskCacheSchemaVersion
	stored.Build = c.build
	if err = msgpack.NewEncoder(f).Encode(&stored); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads a summary. Entries of another schema version or another build
// count as misses.
func (c *DiskCache) Get(key Digest, out *CheckSummary) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	var sum CheckSummary
	if err := msgpack.Unmarshal(data, &sum); err != nil {
		return false, err
	}
	if sum.Schema != diskCacheSchemaVersion || sum.Build != c.build {
		return false, nil
	}
	*out = sum
	return true, nil
}

// DropAll invalidates the cache.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// переименуем каталог и удалим
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}
