package region

import (
	"crypto/sha256"

	"github.com/hashicorp/golang-lru/v2"

	"regionsynth/internal/decl"
	"regionsynth/internal/diagnostic"
)

type cacheKey struct {
	path string
	sum  [sha256.Size]byte
}

// extraction is what one header pass produced. It is shared read-only
// between passes.
type extraction struct {
	decls []decl.Declaration
	diags diagnostic.Diagnostics
}

// extractionCache remembers extraction results by header path and content,
// so a long-running process skips headers that did not change.
type extractionCache struct {
	entries *lru.Cache[cacheKey, extraction]
}

func newExtractionCache(size int) (*extractionCache, error) {
	if size <= 0 {
		return &extractionCache{}, nil
	}

	entries, err := lru.New[cacheKey, extraction](size)
	if err != nil {
		return nil, err
	}

	return &extractionCache{entries: entries}, nil
}

func (c *extractionCache) get(key cacheKey) (extraction, bool) {
	if c.entries == nil {
		return extraction{}, false
	}

	return c.entries.Get(key)
}

func (c *extractionCache) add(key cacheKey, x extraction) {
	if c.entries != nil {
		c.entries.Add(key, x)
	}
}

func (c *extractionCache) len() int {
	if c.entries == nil {
		return 0
	}

	return c.entries.Len()
}
