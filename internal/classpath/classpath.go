// Package classpath resolves class definitions by internal name from
// directories of YAML class files.
//
// Class "com/acme/Foo" is read from "<root>/com/acme/Foo.yaml"; roots are
// searched in order. Parsed definitions are cached, and every lookup returns
// a fresh copy so callers may mutate what they get.
package classpath

import (
	"errors"
	"fmt"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"

	"graftt/internal/classfile"
)

// DefaultCacheSize is the number of parsed classes kept by default.
const DefaultCacheSize = 256

// ErrClassNotFound is returned when no root contains the requested class.
var ErrClassNotFound = errors.New("class not found")

// Classpath loads classes from a list of root directories.
type Classpath struct {
	roots []string
	cache *lru.Cache[string, *classfile.ClassDefinition]
}

// New creates a Classpath over roots caching up to size classes. A size
// of zero or less uses DefaultCacheSize.
func New(size int, roots ...string) (*Classpath, error) {
	if len(roots) == 0 {
		return nil, errors.New("classpath: no roots given")
	}

	if size <= 0 {
		size = DefaultCacheSize
	}

	cache, err := lru.New[string, *classfile.ClassDefinition](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create class cache: %w", err)
	}

	return &Classpath{roots: roots, cache: cache}, nil
}

// Roots returns the searched directories.
func (c *Classpath) Roots() []string {
	return c.roots
}

// Load returns a copy of the class with the given internal name.
func (c *Classpath) Load(name string) (*classfile.ClassDefinition, error) {
	if cd, ok := c.cache.Get(name); ok {
		return cd.Clone(), nil
	}

	for _, root := range c.roots {
		path := classfile.PathFor(root, name)

		cd, err := classfile.LoadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}

		if err != nil {
			return nil, err
		}

		if cd.Name != name {
			return nil, fmt.Errorf("class file %s declares %s, expected %s", path, cd.Name, name)
		}

		c.cache.Add(name, cd)

		return cd.Clone(), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrClassNotFound, name)
}

// Contains reports whether name can be resolved, loading it if needed.
func (c *Classpath) Contains(name string) bool {
	_, err := c.Load(name)
	return err == nil
}

// Cached returns the number of cached classes.
func (c *Classpath) Cached() int {
	return c.cache.Len()
}
