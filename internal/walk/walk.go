// Package walk enumerates the files a codemod run should visit.
package walk

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrRootNotExist is returned when the start path is missing.
var ErrRootNotExist = errors.New("start path does not exist")

// EntryError describes an entry that could not be inspected.
type EntryError struct {
	Path  string
	Stage string
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

// Visitor receives the files selected by Walk. Returning an error from
// either hook stops the walk and Walk returns that error.
type Visitor struct {
	File func(path string) error
	// Error is called for entries that could not be inspected. When nil
	// such entries are skipped silently.
	Error func(err *EntryError) error
}

// Stats summarises a walk.
type Stats struct {
	Dirs         int
	Files        int
	SkippedLinks int
}

type frame struct {
	dir     string
	entries []os.DirEntry
}

// Walk visits root. A regular file root is visited regardless of its
// extension. A directory root is traversed depth first, following
// symlinks, and every regular file whose path ends with one of exts is
// visited. Directories reached twice through symlinks are skipped.
func Walk(ctx context.Context, root string, exts []string, v Visitor) (Stats, error) {
	var st Stats
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return st, fmt.Errorf("%w: %s", ErrRootNotExist, root)
		}
		return st, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		st.Files++
		return st, v.file(root)
	}

	seen := make(map[string]struct{})
	var stack []frame
	push := func(dir string) error {
		if real, err := filepath.EvalSymlinks(dir); err == nil {
			if _, dup := seen[real]; dup {
				st.SkippedLinks++
				return nil
			}
			seen[real] = struct{}{}
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			return v.fail(&EntryError{Path: dir, Stage: "readdir", Err: err})
		}
		st.Dirs++
		stack = append(stack, frame{dir: dir, entries: entries})
		return nil
	}
	if err := push(root); err != nil {
		return st, err
	}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		top := &stack[len(stack)-1]
		if len(top.entries) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		entry := top.entries[0]
		top.entries = top.entries[1:]
		full := filepath.Join(top.dir, entry.Name())

		info, err := os.Stat(full)
		if err != nil {
			if err := v.fail(&EntryError{Path: full, Stage: "stat", Err: err}); err != nil {
				return st, err
			}
			continue
		}
		switch {
		case info.IsDir():
			if err := push(full); err != nil {
				return st, err
			}
		case info.Mode().IsRegular() && HasExt(full, exts):
			st.Files++
			if err := v.file(full); err != nil {
				return st, err
			}
		}
	}
	return st, nil
}

// HasExt reports whether path ends with one of exts. The comparison is an
// exact, case-sensitive suffix match.
func HasExt(path string, exts []string) bool {
	for _, ext := range exts {
		if ext != "" && strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func (v Visitor) file(path string) error {
	if v.File == nil {
		return nil
	}
	return v.File(path)
}

func (v Visitor) fail(err *EntryError) error {
	if v.Error == nil {
		return nil
	}
	return v.Error(err)
}
