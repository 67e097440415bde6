package fonts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ErrNotFound is returned when no font matches a name.
var ErrNotFound = errors.New("font not found")

// DefaultDirs are searched when Resolve is given no directories.
var DefaultDirs = []string{"assets/fonts", "../../assets/fonts"}

var exts = []string{".ttf", ".otf"}

// Resolve turns a -font value into a file path. An existing file is returned as is;
// otherwise name is matched loosely ("Inter", "inter regular") against the font files
// under dirs, preferring a Regular face.
func Resolve(name string, dirs ...string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNotFound
	}
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return name, nil
	}
	if len(dirs) == 0 {
		dirs = DefaultDirs
	}
	want := normalize(strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)))
	var matches []string
	for _, dir := range dirs {
		files, err := scan(dir)
		if err != nil {
			return "", err
		}
		for _, f := range files {
			rel, err := filepath.Rel(dir, f)
			if err != nil {
				return "", err
			}
			if strings.Contains(normalize(rel), want) {
				matches = append(matches, f)
			}
		}
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	for _, m := range matches {
		if strings.Contains(strings.ToLower(filepath.Base(m)), "regular") {
			return m, nil
		}
	}
	return matches[0], nil
}

// scan lists font files under dir in lexical order. A missing dir is empty.
func scan(dir string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if !d.IsDir() && slices.Contains(exts, strings.ToLower(filepath.Ext(path))) {
			out = append(out, path)
		}
		return nil
	})
	return out, err
}

func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(s))
}
