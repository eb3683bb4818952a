package pkgmgmt

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile mirrors the original's CatalogFileFormat: a flat YAML document
// listing every module the catalog can resolve.
type catalogFile struct {
	Modules []CatalogEntry `yaml:"modules"`
}

// LoadCatalogFile parses a catalog YAML document from path into the
// CatalogEntry list NewGitCatalog expects.
func LoadCatalogFile(path string) ([]CatalogEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pkgmgmt: reading catalog file %s: %w", path, err)
	}
	var doc catalogFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("pkgmgmt: parsing catalog file %s: %w", path, err)
	}
	for i, m := range doc.Modules {
		if m.Name == "" {
			return nil, fmt.Errorf("pkgmgmt: catalog file %s: entry %d has no name", path, i)
		}
	}
	return doc.Modules, nil
}
