package catalog

import (
	_ "embed"
)

//go:embed default.yaml
var defaultDocument []byte

// Default returns the registry built from the embedded vanilla catalog.
func Default() *Registry {
	r, err := Parse(defaultDocument)
	if err != nil {
		panic(err)
	}
	return r
}
