package works

import (
	"fmt"
	"sort"

	"entity-hub/internal/domain/site"
)

// Catalog is an ordered, read-only collection of works.
// Queries never mutate it and always return fresh slices.
type Catalog struct {
	items []Work
}

// NewCatalog copies items into a catalog. Slugs must be URL-safe and unique.
func NewCatalog(items []Work) (*Catalog, error) {
	seen := make(map[string]struct{}, len(items))
	for i, w := range items {
		if !site.IsSlug(w.Slug) {
			return nil, fmt.Errorf("work %d (%q): invalid slug %q, try %q", i, w.Title, w.Slug, site.MakeSlug(w.Title))
		}
		if _, dup := seen[w.Slug]; dup {
			return nil, fmt.Errorf("work %d (%q): duplicate slug %q", i, w.Title, w.Slug)
		}
		seen[w.Slug] = struct{}{}
	}

	cp := make([]Work, len(items))
	copy(cp, items)
	return &Catalog{items: cp}, nil
}

// MustCatalog is NewCatalog for static data known to be valid.
func MustCatalog(items []Work) *Catalog {
	c, err := NewCatalog(items)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// All returns every work in catalog order.
func (c *Catalog) All() []Work {
	return c.filter(func(Work) bool { return true })
}

// BySlug returns the work with the given slug. ok is false when no work
// matches; callers decide how to surface that.
func (c *Catalog) BySlug(slug string) (Work, bool) {
	if c == nil {
		return Work{}, false
	}
	for _, w := range c.items {
		if w.Slug == slug {
			return w, true
		}
	}
	return Work{}, false
}

// ByType returns the works of type t in catalog order.
func (c *Catalog) ByType(t WorkType) []Work {
	return c.filter(func(w Work) bool { return w.Type == t })
}

func (c *Catalog) Released() []Work {
	return c.filter(Work.Released)
}

// Latest returns up to limit released works, newest first. Undated works
// sort after dated ones; equal dates keep catalog order.
func (c *Catalog) Latest(limit int) []Work {
	if limit <= 0 {
		return []Work{}
	}
	out := c.Released()
	SortNewestFirst(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// SortNewestFirst orders ws in place by DatePublished descending.
// ISO dates compare correctly as strings.
func SortNewestFirst(ws []Work) {
	sort.SliceStable(ws, func(i, j int) bool {
		a, b := ws[i].DatePublished, ws[j].DatePublished
		if a == "" {
			return false
		}
		if b == "" {
			return true
		}
		return a > b
	})
}

func (c *Catalog) filter(keep func(Work) bool) []Work {
	out := []Work{}
	if c == nil {
		return out
	}
	for _, w := range c.items {
		if keep(w) {
			out = append(out, w)
		}
	}
	return out
}
