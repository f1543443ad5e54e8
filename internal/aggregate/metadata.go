package aggregate

import (
	"context"
	"fmt"
	"strings"

	"mediashelf/internal/cachestore"
	"mediashelf/internal/catalog"
	"mediashelf/internal/logging"
	"mediashelf/internal/services"
	"mediashelf/internal/textutil"
)

// Field accessors per kind, keyed by lowercased field name. Single-value
// fields yield one-element slices so the flattening path is uniform.

var bookFields = map[string]func(*catalog.Book) []string{
	"format":    func(b *catalog.Book) []string { return []string{b.Format} },
	"publisher": func(b *catalog.Book) []string { return []string{b.Publisher} },
	"genres":    func(b *catalog.Book) []string { return b.Genres },
	"authors":   func(b *catalog.Book) []string { return b.Authors },
}

var movieFields = map[string]func(*catalog.Movie) []string{
	"format":  func(m *catalog.Movie) []string { return []string{m.Format} },
	"rating":  func(m *catalog.Movie) []string { return []string{m.Rating} },
	"genres":  func(m *catalog.Movie) []string { return m.Genres },
	"studios": func(m *catalog.Movie) []string { return m.Studios },
}

var gameFields = map[string]func(*catalog.Game) []string{
	"format":   func(g *catalog.Game) []string { return []string{g.Format} },
	"platform": func(g *catalog.Game) []string { return []string{g.Platform} },
	"genres":   func(g *catalog.Game) []string { return g.Genres },
	"studios":  func(g *catalog.Game) []string { return g.Studios },
}

var musicFields = map[string]func(*catalog.Music) []string{
	"format": func(m *catalog.Music) []string { return []string{m.Format} },
	"artist": func(m *catalog.Music) []string { return []string{m.Artist} },
	"genres": func(m *catalog.Music) []string { return m.Genres },
}

// DistinctValues returns the sorted distinct values of a field across every
// entity of a kind. Values are trimmed, empties dropped, and deduplicated
// case-sensitively. Unknown kinds and fields are usage errors.
func (a *Aggregator) DistinctValues(ctx context.Context, kind catalog.Kind, field string) ([]string, error) {
	accessor, err := accessorFor(kind, field)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("metadata:%s:%s", kind, field)
	cached, found, err := cachestore.Value[[]string](a.cache, key)
	if err != nil {
		return nil, err
	}
	if found {
		logging.WithContext(ctx, a.logger).Debug("serving distinct values from cache",
			logging.String(logging.FieldCacheKey, key))
		return cached, nil
	}

	entities, err := a.lister.List(ctx, kind)
	if err != nil {
		return nil, err
	}

	values := make([]string, 0, len(entities))
	for _, entity := range entities {
		values = append(values, accessor(entity)...)
	}
	distinct := textutil.DistinctSorted(values)

	if err := a.cache.Set(key, distinct, a.metadataTTL); err != nil {
		return nil, err
	}
	return distinct, nil
}

func accessorFor(kind catalog.Kind, field string) (func(catalog.Entity) []string, error) {
	lowered := strings.ToLower(strings.TrimSpace(field))
	switch kind {
	case catalog.KindBook:
		if fn, ok := bookFields[lowered]; ok {
			return func(e catalog.Entity) []string {
				if book, ok := e.(*catalog.Book); ok {
					return fn(book)
				}
				return nil
			}, nil
		}
	case catalog.KindMovie:
		if fn, ok := movieFields[lowered]; ok {
			return func(e catalog.Entity) []string {
				if movie, ok := e.(*catalog.Movie); ok {
					return fn(movie)
				}
				return nil
			}, nil
		}
	case catalog.KindGame:
		if fn, ok := gameFields[lowered]; ok {
			return func(e catalog.Entity) []string {
				if game, ok := e.(*catalog.Game); ok {
					return fn(game)
				}
				return nil
			}, nil
		}
	case catalog.KindMusic:
		if fn, ok := musicFields[lowered]; ok {
			return func(e catalog.Entity) []string {
				if music, ok := e.(*catalog.Music); ok {
					return fn(music)
				}
				return nil
			}, nil
		}
	default:
		return nil, services.Wrap(services.ErrUsage, "aggregate", "distinct-values", fmt.Sprintf("unknown kind: %s", kind), nil)
	}
	return nil, services.Wrap(services.ErrUsage, "aggregate", "distinct-values", "unknown field: "+field, nil)
}
