package timeago

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/snapcore/go-timeago/lang"
)

// Directory is a named location holding one resource file per locale.
type Directory struct {
	Name string
	FS   fs.FS
}

// Dir returns the Directory for a path on disk.
func Dir(path string) Directory {
	return Directory{Name: path, FS: os.DirFS(path)}
}

// Builtin returns the directory of bundled catalogues.
func Builtin() Directory {
	return Directory{Name: lang.Name, FS: lang.FS}
}

// Directories returns the names of the directory set, in search order.
func (t Translator) Directories() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	names := make([]string, 0, len(t.dirs))
	for _, dir := range t.dirs {
		names = append(names, dir.Name)
	}
	return names
}

// AddDirectory appends a directory on disk to the directory set. Earlier
// directories take precedence for locales present in several of them.
func (t Translator) AddDirectory(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return &ResourceLoadError{Path: path, Err: err}
	}
	if !fi.IsDir() {
		return &ResourceLoadError{Path: path, Err: fmt.Errorf("not a directory")}
	}
	t.AddFS(path, os.DirFS(path))
	return nil
}

// AddFS appends fsys to the directory set under name.
func (t Translator) AddFS(name string, fsys fs.FS) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.dirs = append(t.dirs, Directory{Name: name, FS: fsys})
	t.dropMisses()
}

// RemoveDirectory removes the named directory from the set and reports
// whether it was present. Locales already loaded from it stay usable.
func (t Translator) RemoveDirectory(name string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, dir := range t.dirs {
		if dir.Name == name {
			t.dirs = append(t.dirs[:i:i], t.dirs[i+1:]...)
			t.dropMisses()
			return true
		}
	}
	return false
}

// SetDirectories replaces the directory set.
func (t Translator) SetDirectories(dirs ...Directory) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.dirs = append([]Directory(nil), dirs...)
	t.dropMisses()
}

// dropMisses forgets locales no directory held, so that they are looked
// up again in the new directory set.
func (t *translator) dropMisses() {
	for locale, res := range t.resources {
		if res == nil {
			delete(t.resources, locale)
		}
	}
}
