// Package history provides the implementation for tracking and persisting completed split runs.
package history

import (
	"github.com/chapsplit-cli/chapsplit/filesystem"
	"github.com/chapsplit-cli/chapsplit/where"
	"github.com/metafates/gache"
)

// cacher provides an abstracted, disk-backed registry for completed run records.
var cacher = gache.New[map[string]*SavedRun](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns the complete collection of saved run records from the persistent store.
func Get() (map[string]*SavedRun, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*SavedRun), nil
	}
	return cached, nil
}

// Save persists a completed run to the history registry. Re-running the same
// URL with the same output settings overwrites the previous record.
func Save(run *SavedRun) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	saved[run.encode()] = run

	return cacher.Set(saved)
}

// Remove permanently deletes a specific run record from the history registry.
func Remove(run *SavedRun) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, run.encode())
	return cacher.Set(saved)
}
