// Package cache provides localized filesystem-based caching for probed media metadata.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"path/filepath"
	"strings"
	"time"

	"github.com/chapsplit-cli/chapsplit/filesystem"
	"github.com/chapsplit-cli/chapsplit/where"
)

const TTL = 24 * time.Hour

func getDir() string {
	dir := filepath.Join(where.Cache(), "metadata")
	_ = filesystem.API().MkdirAll(dir, 0755)
	return dir
}

// GenerateKey generates a deterministic SHA-256 hash from a source URL for use as a cache identifier.
func GenerateKey(url string) string {
	sanitized := strings.TrimSpace(strings.ToLower(url))
	hash := sha256.Sum256([]byte(sanitized))
	return hex.EncodeToString(hash[:])
}

// Read attempts to retrieve and deserialize a cached object if it exists and has not exceeded its TTL.
func Read(key string, target interface{}) bool {
	fs := filesystem.API()
	path := filepath.Join(getDir(), key)

	info, err := fs.Stat(path)
	if err != nil || time.Since(info.ModTime()) > TTL {
		return false
	}

	f, err := fs.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	decoder := json.NewDecoder(f)
	if err := decoder.Decode(target); err != nil {
		return false
	}
	return true
}

// Write persists a serializable object to the cache using an atomic file swap to ensure data integrity.
func Write(key string, data interface{}) error {
	fs := filesystem.API()
	path := filepath.Join(getDir(), key)
	tmpPath := path + ".tmp"

	f, err := fs.Create(tmpPath)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(f)
	if err := encoder.Encode(data); err != nil {
		f.Close()
		return err
	}
	f.Close()

	return fs.Rename(tmpPath, path)
}

// CollectGarbage initializes an asynchronous background task to prune expired cache entries from the filesystem.
func CollectGarbage() {
	go func() {
		fs := filesystem.API()
		dir := getDir()

		infos, err := fs.ReadDir(dir)
		if err != nil {
			return
		}

		for _, info := range infos {
			if info.IsDir() {
				continue
			}
			if time.Since(info.ModTime()) > TTL {
				_ = fs.Remove(filepath.Join(dir, info.Name()))
			}
		}
	}()
}
