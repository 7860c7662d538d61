package models

// CatalogEntry lists the architectures that must be published for a release.
type CatalogEntry struct {
	Release       string   `json:"release"       yaml:"release"`
	Architectures []string `json:"architectures" yaml:"architectures"`
}

// Catalog is the ordered set of (release, architecture) pairs every region is
// expected to list.
type Catalog []CatalogEntry

// DefaultCatalog returns a fresh copy of the built-in expectations.
func DefaultCatalog() Catalog {
	return Catalog{
		{Release: "16.04", Architectures: []string{ArchAMD64, ArchARM64}},
		{Release: "18.04", Architectures: []string{ArchAMD64, ArchARM64}},
		{Release: "20.04", Architectures: []string{ArchAMD64, ArchARM64}},
	}
}

// Clone returns a deep copy so callers can mutate without affecting the source.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for i, e := range c {
		out[i] = CatalogEntry{
			Release:       e.Release,
			Architectures: append([]string(nil), e.Architectures...),
		}
	}
	return out
}

// Releases returns the release versions in catalog order.
func (c Catalog) Releases() []string {
	out := make([]string, 0, len(c))
	for _, e := range c {
		out = append(out, e.Release)
	}
	return out
}
