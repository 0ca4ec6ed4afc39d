package driver

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/eleventy7/jruff/internal/config"
)

// ListJavaFiles exposes batch discovery for callers that need the file
// list before the run starts, such as the progress UI.
func ListJavaFiles(paths []string, cfg *config.Config) ([]string, error) {
	return listJavaFiles(paths, cfg)
}

// listJavaFiles expands the argument paths: files are taken as given,
// directories are walked for *.java, exclude patterns filter both. The
// result is sorted and de-duplicated for a deterministic batch order.
func listJavaFiles(paths []string, cfg *config.Config) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	wd, _ := os.Getwd()

	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		clean := filepath.Clean(path)
		if seen[clean] {
			return
		}
		// Exclude patterns are written relative to the working directory.
		match := clean
		if wd != "" && filepath.IsAbs(clean) {
			if rel, err := filepath.Rel(wd, clean); err == nil && !strings.HasPrefix(rel, "..") {
				match = rel
			}
		}
		if cfg.Excluded(filepath.ToSlash(match)) {
			return
		}
		seen[clean] = true
		files = append(files, clean)
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if d.Name() != "." && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasSuffix(path, ".java") {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}
