// Package levels provides level loading for the bus puzzle.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/busjam/internal/games/busjam/core"
	"github.com/vovakirdan/busjam/internal/games/busjam/levels/formats"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// ErrLevelNotFound is returned when no level has the requested ID.
var ErrLevelNotFound = errors.New("level not found")

// Level is a parsed level plus where it came from.
type Level struct {
	core.LevelData
	FilePath string
}

// Loader handles loading levels from a file system.
type Loader struct {
	fsys   fs.FS
	root   string
	label  string
	logger *log.Logger
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(dir string) *Loader {
	return &Loader{fsys: os.DirFS(dir), root: ".", label: dir}
}

// NewFSLoader creates a loader over root inside fsys.
func NewFSLoader(fsys fs.FS, root string) *Loader {
	return &Loader{fsys: fsys, root: root, label: root}
}

// Builtin returns a loader over the levels compiled into the binary.
func Builtin() *Loader {
	return &Loader{fsys: builtinFS, root: "builtin", label: "builtin"}
}

// WithLogger sets the logger used to report skipped files.
func (l *Loader) WithLogger(logger *log.Logger) *Loader {
	l.logger = logger
	return l
}

// LoadAll recursively scans and loads all level files. Files that fail to
// parse are skipped. Levels are sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	files, err := l.Files()
	if err != nil {
		return nil, err
	}

	var levels []Level
	for _, p := range files {
		level, err := l.LoadFile(p)
		if err != nil {
			if l.logger != nil {
				l.logger.Warn("skipping level file", "path", p, "err", err)
			}
			continue
		}
		levels = append(levels, level)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// Files returns the paths of every level file under the loader's root,
// in lexical order.
func (l *Loader) Files() ([]string, error) {
	var files []string
	err := fs.WalkDir(l.fsys, l.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isSupportedExtension(strings.ToLower(path.Ext(p))) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", l.label, err)
	}
	return files, nil
}

// LoadFile loads a single level file. A level without an ID takes its
// file name without extension.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	ext := strings.ToLower(path.Ext(p))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	if parsed.ID == "" {
		parsed.ID = strings.TrimSuffix(path.Base(p), path.Ext(p))
	}
	if parsed.Name == "" {
		parsed.Name = parsed.ID
	}

	return Level{LevelData: parsed, FilePath: p}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s", ErrLevelNotFound, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// IndexOf returns the position of id in levels, or -1.
func IndexOf(levels []Level, id string) int {
	for i, lvl := range levels {
		if lvl.ID == id {
			return i
		}
	}
	return -1
}

func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

func parseByExtension(data []byte, ext string) (core.LevelData, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return core.LevelData{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
