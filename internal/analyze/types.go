package analyze

import (
	"go/token"
	"go/types"

	"rowmap-generator/internal/plan"
)

// Package is one loaded package and the structs it declares.
type Package struct {
	Name string
	Path string
	// Dir is the directory of the package's first Go file.
	Dir   string
	Fset  *token.FileSet
	Types *types.Package
	// Structs holds the package's struct types in source order.
	Structs []plan.RawStruct
}

// Lookup returns the struct named name.
func (p *Package) Lookup(name string) (plan.RawStruct, bool) {
	for _, s := range p.Structs {
		if s.Name == name {
			return s, true
		}
	}

	return plan.RawStruct{}, false
}

// Names lists the struct names in source order.
func (p *Package) Names() []string {
	names := make([]string, len(p.Structs))
	for i, s := range p.Structs {
		names[i] = s.Name
	}

	return names
}

// Position resolves pos against the package file set.
func (p *Package) Position(pos token.Pos) token.Position {
	if p.Fset == nil || !pos.IsValid() {
		return token.Position{}
	}

	return p.Fset.Position(pos)
}
