package reconcile

import (
	"fmt"

	"github.com/bacalhau-project/amiaudit/pkg/models"
)

// Expectation is a single (release, architecture) pair.
type Expectation struct {
	Release string
	Arch    string
}

// Matrix tracks which catalog expectations a region has not satisfied yet.
// Each region gets its own Matrix.
type Matrix struct {
	releases  []string
	remaining map[string][]string
}

// NewMatrix seeds a matrix from a copy of the catalog.
func NewMatrix(catalog models.Catalog) *Matrix {
	m := &Matrix{
		releases:  make([]string, 0, len(catalog)),
		remaining: make(map[string][]string, len(catalog)),
	}
	for _, entry := range catalog.Clone() {
		if _, ok := m.remaining[entry.Release]; !ok {
			m.releases = append(m.releases, entry.Release)
		}
		m.remaining[entry.Release] = append(m.remaining[entry.Release], entry.Architectures...)
	}
	return m
}

// Satisfy marks arch as listed for release. A release that is not in the
// catalog is an error; an arch that is not expected, or already satisfied,
// is ignored.
func (m *Matrix) Satisfy(release, arch string) error {
	arches, ok := m.remaining[release]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedRelease, release)
	}
	for i, a := range arches {
		if a == arch {
			m.remaining[release] = append(arches[:i:i], arches[i+1:]...)
			break
		}
	}
	return nil
}

// Remaining returns the unsatisfied expectations in catalog order.
func (m *Matrix) Remaining() []Expectation {
	var out []Expectation
	for _, release := range m.releases {
		for _, arch := range m.remaining[release] {
			out = append(out, Expectation{Release: release, Arch: arch})
		}
	}
	return out
}

// Satisfied reports whether every expectation has been met.
func (m *Matrix) Satisfied() bool {
	return len(m.Remaining()) == 0
}
