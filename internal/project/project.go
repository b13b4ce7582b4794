// pattern: Functional Core

package project

import (
	"fmt"

	"rustm/internal/vcs"
)

// ManifestName is the marker file whose presence identifies a directory as
// a project. Matching is exact and case-sensitive; contents are never read.
const ManifestName = "Cargo.toml"

// Project is one discovered or newly created project. Records are
// immutable values, rebuilt on every scan.
type Project struct {
	Name   string     // directory base name
	Path   string     // absolute path to the project directory
	Status vcs.Status // version-control state at observation time
}

// Kind selects the cargo project template.
type Kind int

const (
	KindBinary Kind = iota
	KindLibrary
)

// CargoFlag returns the `cargo new` flag for the kind.
func (k Kind) CargoFlag() string {
	if k == KindLibrary {
		return "--lib"
	}
	return "--bin"
}

// String returns the kind name.
func (k Kind) String() string {
	if k == KindLibrary {
		return "library"
	}
	return "binary"
}

// Edition is a Rust edition identifier accepted by `cargo new --edition`.
type Edition string

const (
	Edition2015 Edition = "2015"
	Edition2018 Edition = "2018"
	Edition2021 Edition = "2021"
	Edition2024 Edition = "2024"

	// DefaultEdition is the latest stable edition.
	DefaultEdition = Edition2024
)

// Editions lists the supported editions, oldest first.
func Editions() []Edition {
	return []Edition{Edition2015, Edition2018, Edition2021, Edition2024}
}

// ParseEdition validates an edition string.
func ParseEdition(s string) (Edition, error) {
	for _, e := range Editions() {
		if string(e) == s {
			return e, nil
		}
	}
	return "", fmt.Errorf("unsupported edition %q (supported: 2015, 2018, 2021, 2024)", s)
}
