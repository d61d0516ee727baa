package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/filmbase/catalog-service/internal/cache"
	"github.com/filmbase/catalog-service/internal/domain"
	"github.com/filmbase/catalog-service/internal/tmdb"
)

// GenreStore is the slice of the repository the catalog needs.
type GenreStore interface {
	UpsertGenres(ctx context.Context, genres []domain.Genre) error
	CountGenres(ctx context.Context) (int, error)
	GenreIDsByTMDBIDs(ctx context.Context, tmdbIDs []int) (map[int]int64, error)
}

// GenreCatalog is the lookup-or-fetch capability handed to the merge
// engine: it resolves provider genre IDs against the local catalog and
// materializes the catalog from the provider when it is still empty.
type GenreCatalog struct {
	store    GenreStore
	cache    ResponseCache
	provider Provider
	ttl      time.Duration
}

func NewGenreCatalog(store GenreStore, respCache ResponseCache, provider Provider, ttl time.Duration) *GenreCatalog {
	return &GenreCatalog{
		store:    store,
		cache:    respCache,
		provider: provider,
		ttl:      ttl,
	}
}

// Resolve maps provider genre IDs to local genre IDs. IDs with no local
// genre are absent from the result; callers skip those links.
func (g *GenreCatalog) Resolve(ctx context.Context, tmdbIDs []int) (map[int]int64, error) {
	if len(tmdbIDs) == 0 {
		return map[int]int64{}, nil
	}

	count, err := g.store.CountGenres(ctx)
	if err != nil {
		return nil, fmt.Errorf("count genres: %w", err)
	}
	if count == 0 {
		if err := g.EnsureCatalog(ctx); err != nil {
			return nil, fmt.Errorf("materialize genre catalog: %w", err)
		}
	}

	return g.store.GenreIDsByTMDBIDs(ctx, tmdbIDs)
}

// EnsureCatalog pulls the provider genre catalog (cache-aside) and
// upserts it locally. A transport failure leaves the local catalog
// untouched and is not an error.
func (g *GenreCatalog) EnsureCatalog(ctx context.Context) error {
	key := cache.GenresKey()

	payload, err := g.cache.Get(ctx, key)
	if err != nil {
		log.Printf("[service] cache get error for %s: %v", key, err)
	}

	if payload == nil {
		var ok bool
		payload, ok = g.provider.Get(ctx, "genre/movie/list", nil)
		if !ok {
			return nil
		}
		if cacheErr := g.cache.Set(ctx, key, payload, g.ttl); cacheErr != nil {
			log.Printf("[service] cache set error for %s: %v", key, cacheErr)
		}
	}

	var list tmdb.GenreList
	if err := json.Unmarshal(payload, &list); err != nil {
		return fmt.Errorf("decode genre catalog: %w", err)
	}

	genres := make([]domain.Genre, 0, len(list.Genres))
	for _, rec := range list.Genres {
		genres = append(genres, domain.Genre{TMDBID: rec.ID, Name: rec.Name})
	}

	return g.store.UpsertGenres(ctx, genres)
}
