// seehuhn.de/go/tianzige - field-character practice sheets
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package fontreg keeps track of the fonts available for rendering
// practice sheets.
//
// A [Registry] maps font family names to font files or in-memory font
// data.  Registries are independent of each other; there is no global
// registry.
package fontreg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/exp/maps"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// tracer traces with key 'tianzige.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("tianzige.fonts")
}

// Names of the built-in fonts.
const (
	GoRegular = "Go Regular"
	GoMono    = "Go Mono"
)

// Registry holds the fonts known to an application.
// A Registry is safe for concurrent use.
type Registry struct {
	mu    sync.Mutex
	fonts map[string]*Font
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		fonts: make(map[string]*Font),
	}
}

// NewWithBuiltins returns a registry which contains the Go fonts.
func NewWithBuiltins() *Registry {
	r := New()
	r.RegisterData(GoRegular, goregular.TTF)
	r.RegisterData(GoMono, gomono.TTF)
	return r
}

// Register associates a font name with a font file.
//
// If the file does not exist and the path is a bare file name, the
// system font directories are searched for a file of this name.
// Registering a name which is already known has no effect, so that
// concurrent callers can register the same font safely.
func (r *Registry) Register(name, path string) error {
	if name == "" {
		return &InvalidFontError{Name: name, Reason: "empty font name"}
	}

	r.mu.Lock()
	_, seen := r.fonts[name]
	r.mu.Unlock()
	if seen {
		tracer().Debugf("font %q already registered", name)
		return nil
	}

	resolved, err := Resolve(path)
	if err != nil {
		return &InvalidFontError{Name: name, Reason: err.Error()}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, seen := r.fonts[name]; !seen {
		tracer().Infof("registering font %q from %s", name, resolved)
		r.fonts[name] = &Font{name: name, path: resolved}
	}
	return nil
}

// RegisterData associates a font name with in-memory TrueType or OpenType
// font data.  Registering a name which is already known has no effect.
func (r *Registry) RegisterData(name string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, seen := r.fonts[name]; seen {
		tracer().Debugf("font %q already registered", name)
		return
	}
	tracer().Debugf("registering font %q (%d bytes)", name, len(data))
	r.fonts[name] = &Font{name: name, data: data, loaded: true}
}

// Lookup returns the font registered under the given name.
// If no such font exists, an [*InvalidFontError] is returned.
func (r *Registry) Lookup(name string) (*Font, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.fonts[name]
	if !ok {
		return nil, &InvalidFontError{Name: name, Reason: "font not registered"}
	}
	return f, nil
}

// Names returns the names of all registered fonts, in sorted order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := maps.Keys(r.fonts)
	slices.Sort(names)
	return names
}

// Resolve returns the path of a font file.
//
// If path names an existing file, it is returned unchanged.  Otherwise, if
// path is a bare file name like "NotoSerifTC-Regular.otf", the file is
// searched for in the system font directories.
func Resolve(path string) (string, error) {
	if path == "" {
		return "", errors.New("no font file given")
	}
	_, err := os.Stat(path)
	if err == nil {
		return path, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	if filepath.Base(path) != path {
		return "", fmt.Errorf("font file %q not found", path)
	}
	found, findErr := findfont.Find(path)
	if findErr != nil || found == "" {
		return "", fmt.Errorf("font file %q not found", path)
	}
	tracer().Debugf("%s is a system font at %s", path, found)
	return found, nil
}

// Font is a font known to a registry.
// The font data is read from the file at most once.
type Font struct {
	name string
	path string

	mu     sync.Mutex
	data   []byte
	loaded bool
	err    error
}

// Name returns the name under which the font was registered.
func (f *Font) Name() string {
	return f.name
}

// Path returns the font file, or the empty string for fonts registered
// from memory.
func (f *Font) Path() string {
	return f.path
}

// Data returns the font data.
func (f *Font) Data() ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.loaded {
		f.data, f.err = os.ReadFile(f.path)
		if f.err != nil {
			f.err = &InvalidFontError{Name: f.name, Reason: f.err.Error()}
		}
		f.loaded = true
	}
	return f.data, f.err
}
