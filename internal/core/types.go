package core

import "sort"

// Size describes the bounds a grid is built with. Levels is ignored by 2D
// kinds.
type Size struct {
	Rows   uint32
	Cols   uint32
	Levels uint32
}

// Factory constructs a grid with its logic already attached.
type Factory func(size Size) Grid

var kinds = map[string]Factory{}

// Register adds a grid factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	kinds[name] = f
}

// Kinds exposes the registry of available grid factories.
func Kinds() map[string]Factory {
	return kinds
}

// KindNames returns the registered names in sorted order.
func KindNames() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
