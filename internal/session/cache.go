package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const cacheFilename = "yandex_editor_sid.json"

// record is the on-disk cache format.
type record struct {
	SID       string `json:"sid"`
	Timestamp int64  `json:"timestamp"` // unix seconds of acquisition
}

var (
	cachePathOnce sync.Once
	cachePathVal  string
)

// DefaultCachePath resolves the cache file location once per process: the
// user cache directory when writable, the system temp directory otherwise.
// Repeated calls return the same resolved path without recomputation.
func DefaultCachePath() string {
	cachePathOnce.Do(func() {
		dir := os.TempDir()
		if base, err := os.UserCacheDir(); err == nil {
			candidate := filepath.Join(base, "yaedit")
			if err := os.MkdirAll(candidate, 0o700); err == nil && isWritableDir(candidate) {
				dir = candidate
			}
		}
		cachePathVal = filepath.Join(dir, cacheFilename)
	})
	return cachePathVal
}

// isWritableDir probes a directory by creating and removing a file in it.
func isWritableDir(dir string) bool {
	f, err := os.CreateTemp(dir, ".write_test-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}

// FileCache persists one SID with its acquisition time.
type FileCache struct {
	path string
	now  func() time.Time // injectable for tests
}

// NewFileCache creates a cache backed by the given file path.
func NewFileCache(path string) *FileCache {
	return &FileCache{path: path, now: time.Now}
}

// Load returns the cached SID if the record parses and is younger than ttl.
func (c *FileCache) Load(ttl time.Duration) (string, bool) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return "", false
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return "", false
	}
	if rec.SID == "" || rec.Timestamp == 0 {
		return "", false
	}

	age := c.now().Sub(time.Unix(rec.Timestamp, 0))
	if age < 0 || age >= ttl {
		return "", false
	}
	return rec.SID, true
}

// Store writes the SID with the current time. The write goes through a temp
// file and a rename in the same directory, so concurrent writers each land a
// complete record instead of interleaving.
func (c *FileCache) Store(sid string) error {
	data, err := json.Marshal(record{SID: sid, Timestamp: c.now().Unix()})
	if err != nil {
		return err
	}

	dir := filepath.Dir(c.path)
	tmp, err := os.CreateTemp(dir, cacheFilename+"-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, c.path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
