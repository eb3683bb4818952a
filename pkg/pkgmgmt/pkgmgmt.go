// Package pkgmgmt resolves a named dependency to a concrete on-disk module
// via a pluggable Catalog, fetching it when not already cached, and watching
// the cache directory for out-of-band changes.
package pkgmgmt

import (
	"context"
	"fmt"
	"hash/fnv"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ModuleDescriptor uniquely identifies a specific resolved version of a
// named module. UID is derived from Name+Version so that two catalogs
// resolving the same name/version pair produce descriptors that compare
// equal without round-tripping through a shared registry, the same way the
// original's ModuleDescriptor::new hashes its identifying fields with
// fnv (see pldb.go's use of hash/fnv for relation-independent hashing,
// the same pattern this package borrows).
type ModuleDescriptor struct {
	Name    string
	Version string
	UID     uint64
}

// NewModuleDescriptor builds a descriptor, computing UID from name+version.
func NewModuleDescriptor(name, version string) ModuleDescriptor {
	return ModuleDescriptor{Name: name, Version: version, UID: uid(name, version)}
}

func uid(name, version string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(version))
	return h.Sum64()
}

func (d ModuleDescriptor) String() string {
	if d.Version == "" {
		return d.Name
	}
	return fmt.Sprintf("%s@%s", d.Name, d.Version)
}

// GitLocation describes how to fetch a module from a git remote, mirroring
// ModuleGitLocation's deserialized fields.
type GitLocation struct {
	URL      string `yaml:"git_url"`
	Branch   string `yaml:"git_branch,omitempty"`
	Subdir   string `yaml:"git_subdir,omitempty"`
	MainFile string `yaml:"git_main_file,omitempty"`
}

// CatalogEntry is one named dependency's resolution metadata as stored in a
// catalog YAML document.
type CatalogEntry struct {
	Name    string      `yaml:"name"`
	Version string      `yaml:"version,omitempty"`
	Git     GitLocation `yaml:"git,omitempty"`
}

// Fetcher fetches the module described by entry into localDir, returning
// the directory actually containing its sources (accounting for Subdir).
// Production catalogs implement this against a real git client; tests
// supply an in-memory stub.
type Fetcher interface {
	Fetch(ctx context.Context, entry CatalogEntry, localDir string) (string, error)
}

// Catalog resolves module names to fetched, loadable module paths. It
// corresponds to the original's ModuleCatalog trait.
type Catalog interface {
	// Lookup returns the catalog entry for name, if the catalog knows of it.
	Lookup(name string) (CatalogEntry, bool)
	// Resolve fetches (if necessary) and returns the local directory holding
	// name's sources.
	Resolve(ctx context.Context, name string) (ModuleDescriptor, string, error)
}

// GitCatalog is a Catalog backed by a parsed catalog file plus a cache
// directory on disk, mirroring git_catalog.rs's GitCatalog.
type GitCatalog struct {
	mu      sync.RWMutex
	entries map[string]CatalogEntry
	cache   map[string]string // name -> resolved local dir
	cacheDir string
	fetcher Fetcher
}

// NewGitCatalog returns a GitCatalog serving entries out of cacheDir,
// fetching missing modules through fetcher.
func NewGitCatalog(cacheDir string, fetcher Fetcher, entries []CatalogEntry) *GitCatalog {
	m := make(map[string]CatalogEntry, len(entries))
	for _, e := range entries {
		m[e.Name] = e
	}
	return &GitCatalog{entries: m, cache: make(map[string]string), cacheDir: cacheDir, fetcher: fetcher}
}

// Lookup implements Catalog.
func (c *GitCatalog) Lookup(name string) (CatalogEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[name]
	return e, ok
}

// Resolve implements Catalog: fetch name (if not already cached locally)
// and return its descriptor and directory.
func (c *GitCatalog) Resolve(ctx context.Context, name string) (ModuleDescriptor, string, error) {
	entry, ok := c.Lookup(name)
	if !ok {
		return ModuleDescriptor{}, "", fmt.Errorf("pkgmgmt: no catalog entry for module %q", name)
	}

	c.mu.RLock()
	if dir, ok := c.cache[name]; ok {
		c.mu.RUnlock()
		return NewModuleDescriptor(entry.Name, entry.Version), dir, nil
	}
	c.mu.RUnlock()

	localDir, err := c.fetcher.Fetch(ctx, entry, c.cacheDir)
	if err != nil {
		return ModuleDescriptor{}, "", fmt.Errorf("pkgmgmt: fetching %q: %w", name, err)
	}

	c.mu.Lock()
	c.cache[name] = localDir
	c.mu.Unlock()

	return NewModuleDescriptor(entry.Name, entry.Version), localDir, nil
}

// ResolveAll fetches every name concurrently through
// golang.org/x/sync/errgroup, one goroutine per name; the number of
// in-flight fetches is not limited. The first error cancels
// the remaining fetches and is returned; completed descriptors before the
// failure are discarded, matching an all-or-nothing dependency resolution
// pass.
func (c *GitCatalog) ResolveAll(ctx context.Context, names []string) (map[string]ModuleDescriptor, error) {
	g, ctx := errgroup.WithContext(ctx)
	out := make(map[string]ModuleDescriptor, len(names))
	var mu sync.Mutex

	for _, name := range names {
		name := name
		g.Go(func() error {
			desc, _, err := c.Resolve(ctx, name)
			if err != nil {
				return err
			}
			mu.Lock()
			out[name] = desc
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Names returns every module name the catalog knows of, sorted, for
// diagnostics and for "resolve everything" callers.
func (c *GitCatalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.entries))
	for n := range c.entries {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
