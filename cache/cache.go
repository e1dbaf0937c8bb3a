package cache

import (
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	gocache "github.com/patrickmn/go-cache"
)

// Cache memoizes the JSON payloads of the public list endpoints. Entries are
// grouped by resource family so a write to one content type only evicts that
// type's entries.
type Cache struct {
	store *gocache.Cache
}

func New(ttl, cleanup time.Duration) *Cache {
	return &Cache{store: gocache.New(ttl, cleanup)}
}

// key combines the family with an xxHash of the request URI, so query
// variations get distinct entries while remaining evictable by family.
func key(family, uri string) string {
	return fmt.Sprintf("%s/%016x", family, xxhash.Sum64String(uri))
}

// Remember returns the cached value for family+uri, fetching and storing it
// on a miss. Fetch errors are returned without caching anything.
func (c *Cache) Remember(family, uri string, fetch func() (interface{}, error)) (interface{}, error) {
	k := key(family, uri)
	if data, found := c.store.Get(k); found {
		return data, nil
	}

	data, err := fetch()
	if err != nil {
		return nil, err
	}

	c.store.Set(k, data, gocache.DefaultExpiration)
	return data, nil
}

// Invalidate drops every cached entry belonging to the given families.
func (c *Cache) Invalidate(families ...string) {
	for k := range c.store.Items() {
		for _, family := range families {
			if strings.HasPrefix(k, family+"/") {
				c.store.Delete(k)
			}
		}
	}
}
