package aggregate

import (
	"context"

	"golang.org/x/sync/errgroup"

	"mediashelf/internal/cachestore"
	"mediashelf/internal/catalog"
	"mediashelf/internal/logging"
	"mediashelf/internal/textutil"
)

// StatsCacheKey is the single cache key for the library statistics bundle.
const StatsCacheKey = "stats"

// KindStats holds the roll-up shared by all media kinds.
type KindStats struct {
	Total        int      `json:"total"`
	Formats      []string `json:"formats,omitempty"`
	TotalFormats int      `json:"total_formats"`
}

// BookStats extends the shared roll-up with book-specific numbers.
type BookStats struct {
	KindStats
	UniqueAuthors int `json:"unique_authors"`
	TotalPages    int `json:"total_pages"`
}

// MovieStats extends the shared roll-up with movie-specific numbers.
type MovieStats struct {
	KindStats
	TotalTVSeries int `json:"total_tv_series"`
}

// MusicStats extends the shared roll-up with music-specific numbers.
type MusicStats struct {
	KindStats
	UniqueArtists int `json:"unique_artists"`
	TotalTracks   int `json:"total_tracks"`
}

// LibraryStats bundles the per-kind statistics. One cache entry covers the
// whole bundle, so any miss recomputes every kind.
type LibraryStats struct {
	Books  BookStats  `json:"books"`
	Movies MovieStats `json:"movies"`
	Games  KindStats  `json:"games"`
	Music  MusicStats `json:"music"`
}

// Stats returns the library statistics bundle, computing and caching it on
// a miss. The four kind lists are fetched concurrently; any fetch failure
// aborts the whole computation and leaves the cache untouched.
func (a *Aggregator) Stats(ctx context.Context) (*LibraryStats, error) {
	cached, found, err := cachestore.Value[*LibraryStats](a.cache, StatsCacheKey)
	if err != nil {
		return nil, err
	}
	if found {
		logging.WithContext(ctx, a.logger).Debug("serving stats from cache",
			logging.String(logging.FieldCacheKey, StatsCacheKey))
		return cached, nil
	}

	var books, movies, games, music []catalog.Entity
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		books, err = a.lister.List(groupCtx, catalog.KindBook)
		return err
	})
	group.Go(func() error {
		var err error
		movies, err = a.lister.List(groupCtx, catalog.KindMovie)
		return err
	})
	group.Go(func() error {
		var err error
		games, err = a.lister.List(groupCtx, catalog.KindGame)
		return err
	})
	group.Go(func() error {
		var err error
		music, err = a.lister.List(groupCtx, catalog.KindMusic)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	stats := &LibraryStats{
		Books:  computeBookStats(books),
		Movies: computeMovieStats(movies),
		Games:  computeKindStats(games),
		Music:  computeMusicStats(music),
	}

	if err := a.cache.Set(StatsCacheKey, stats, a.statsTTL); err != nil {
		return nil, err
	}
	return stats, nil
}

func computeKindStats(entities []catalog.Entity) KindStats {
	formats := make([]string, 0, len(entities))
	for _, entity := range entities {
		formats = append(formats, entityFormat(entity))
	}
	distinct := textutil.DistinctSorted(formats)
	return KindStats{
		Total:        len(entities),
		Formats:      distinct,
		TotalFormats: len(distinct),
	}
}

func computeBookStats(entities []catalog.Entity) BookStats {
	stats := BookStats{KindStats: computeKindStats(entities)}
	var authors []string
	for _, entity := range entities {
		book, ok := entity.(*catalog.Book)
		if !ok {
			continue
		}
		authors = append(authors, book.Authors...)
		if book.Pages != nil {
			stats.TotalPages += *book.Pages
		}
	}
	stats.UniqueAuthors = len(textutil.DistinctSorted(authors))
	return stats
}

func computeMovieStats(entities []catalog.Entity) MovieStats {
	stats := MovieStats{KindStats: computeKindStats(entities)}
	for _, entity := range entities {
		if movie, ok := entity.(*catalog.Movie); ok && movie.IsTVSeries {
			stats.TotalTVSeries++
		}
	}
	return stats
}

func computeMusicStats(entities []catalog.Entity) MusicStats {
	stats := MusicStats{KindStats: computeKindStats(entities)}
	var artists []string
	for _, entity := range entities {
		album, ok := entity.(*catalog.Music)
		if !ok {
			continue
		}
		artists = append(artists, album.Artist)
		if album.Tracks != nil {
			stats.TotalTracks += *album.Tracks
		}
	}
	stats.UniqueArtists = len(textutil.DistinctSorted(artists))
	return stats
}

func entityFormat(entity catalog.Entity) string {
	switch v := entity.(type) {
	case *catalog.Book:
		return v.Format
	case *catalog.Movie:
		return v.Format
	case *catalog.Game:
		return v.Format
	case *catalog.Music:
		return v.Format
	default:
		return ""
	}
}
