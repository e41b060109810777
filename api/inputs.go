package api

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SourceExt is the extension of VM source files.
const SourceExt = ".vm"

// OutputExt is the extension of the generated assembly.
const OutputExt = ".asm"

var (
	ErrInputNotFound = errors.New("input not found")
	ErrNotVMFile     = errors.New("input is not a .vm file")
	ErrNoInputs      = errors.New("no .vm files in directory")
)

// Unit is one translation unit.
type Unit struct {
	Name string
	Path string

	// Source is read instead of Path when set.
	Source io.Reader
}

func (u Unit) open() (io.ReadCloser, error) {
	if u.Source != nil {
		return io.NopCloser(u.Source), nil
	}

	return os.Open(u.Path)
}

// Inputs is the resolved input of a run.
type Inputs struct {
	Units  []Unit
	Output string
}

// ResolveInputs expands path into translation units. A file yields itself
// and an output beside it with the .asm extension. A directory yields its
// .vm files in name order and an output named after the directory inside
// it.
func ResolveInputs(path string) (Inputs, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Inputs{}, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return Inputs{}, err
	}

	if !info.IsDir() {
		if filepath.Ext(path) != SourceExt {
			return Inputs{}, fmt.Errorf("%w: %s", ErrNotVMFile, path)
		}

		return Inputs{
			Units:  []Unit{{Name: unitName(path), Path: path}},
			Output: strings.TrimSuffix(path, SourceExt) + OutputExt,
		}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return Inputs{}, fmt.Errorf("failed to list %s: %w", path, err)
	}

	var units []Unit
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != SourceExt {
			continue
		}

		units = append(units, Unit{
			Name: unitName(entry.Name()),
			Path: filepath.Join(path, entry.Name()),
		})
	}

	if len(units) == 0 {
		return Inputs{}, fmt.Errorf("%w: %s", ErrNoInputs, path)
	}

	sort.Slice(units, func(i, j int) bool {
		return units[i].Name < units[j].Name
	})

	dir := filepath.Clean(path)
	name := filepath.Base(dir)
	if abs, err := filepath.Abs(dir); err == nil {
		name = filepath.Base(abs)
	}

	return Inputs{
		Units:  units,
		Output: filepath.Join(dir, name+OutputExt),
	}, nil
}

func unitName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), SourceExt)
}
