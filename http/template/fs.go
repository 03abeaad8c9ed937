package template

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sync"
)

// mergeFS implements fs.FS
type mergeFS struct {
	// A cache for minimizing ascertaining which directory holds the template.
	cache map[string]func(string) (fs.File, error)

	// Current working directory, or, a filesystem provided with WithFS
	userDir fs.FS

	// Package-level directory embedding tmpl/
	pkgDir fs.FS

	mu sync.RWMutex
}

// Open opens the file matching the name using the following strategy:
// - check the cache
// - check the user filesystem
// - check the package-level embedded filesystem
//
// Whenever a file is found and is not present in the cache, it is added.
// Nothing removes references from the cache.
func (mfs *mergeFS) Open(name string) (fs.File, error) {
	mfs.mu.RLock()
	fn, ok := mfs.cache[name]
	mfs.mu.RUnlock()
	if ok {
		return fn(name)
	}

	file, err := mfs.userDir.Open(name)
	if err == nil {
		mfs.remember(name, mfs.userDir.Open)
		return file, nil
	}

	var pe *fs.PathError
	if errors.As(err, &pe) && (errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid)) {
		file, err = mfs.pkgDir.Open(name)
		if err != nil {
			return nil, fmt.Errorf("could not open template %s: %w", name, err)
		}

		mfs.remember(name, mfs.pkgDir.Open)
		return file, nil
	}

	return nil, fmt.Errorf("unable to open template: %w", err)
}

func (mfs *mergeFS) remember(name string, open func(string) (fs.File, error)) {
	mfs.mu.Lock()
	mfs.cache[name] = open
	mfs.mu.Unlock()
}

//go:embed tmpl
var pkgFS embed.FS
