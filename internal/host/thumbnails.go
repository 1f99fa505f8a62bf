package host

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultThumbnailCacheSize bounds the number of cached thumbnails.
const DefaultThumbnailCacheSize = 512

type thumbnailCache struct {
	Host
	icons *expirable.LRU[StableID, Icon]
}

// WithThumbnailCache wraps h so thumbnail lookups for identified objects are
// served from an expiring LRU. Lookups for objects without a StableID always
// go to the host.
func WithThumbnailCache(h Host, size int, ttl time.Duration) Host {
	if size <= 0 {
		size = DefaultThumbnailCacheSize
	}
	return &thumbnailCache{
		Host:  h,
		icons: expirable.NewLRU[StableID, Icon](size, nil, ttl),
	}
}

func (c *thumbnailCache) Thumbnail(id StableID, o Object) Icon {
	if id.IsZero() {
		return c.Host.Thumbnail(id, o)
	}
	if icon, ok := c.icons.Get(id); ok {
		return icon
	}
	icon := c.Host.Thumbnail(id, o)
	c.icons.Add(id, icon)
	return icon
}
