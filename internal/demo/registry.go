package demo

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownDemo is returned for names no demo answers to.
var ErrUnknownDemo = errors.New("unknown demo")

var registry = map[string]func(width, height int, opts Options) Demo{
	"sphere": func(w, h int, o Options) Demo { return NewSphere(w, h, o) },
	"light":  func(w, h int, o Options) Demo { return NewLight(w, h, o) },
	"picker": func(w, h int, o Options) Demo { return NewPicker(w, h, o) },
	"gltf":   func(w, h int, o Options) Demo { return NewGLTF(w, h, o) },
}

// New bootstraps the named demo for a width x height view.
func New(name string, width, height int, opts Options) (Demo, error) {
	build, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownDemo, name, strings.Join(Names(), ", "))
	}
	return build(width, height, opts), nil
}

// Names lists the demos in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
