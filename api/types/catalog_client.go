package types

import (
	"context"

	"github.com/samber/mo"

	"github.com/killallgit/xianplay-api/internal/services/catalog"
	"github.com/killallgit/xianplay-api/internal/services/relay"
)

// CatalogClient defines the drama catalog operations. None of them fail:
// list endpoints degrade to an empty slice and entity endpoints to None.
type CatalogClient interface {
	GetTrending(ctx context.Context) []catalog.RawDrama
	GetLatest(ctx context.Context) []catalog.RawDrama
	GetPopularSearch(ctx context.Context) []catalog.RawDrama
	GetVIP(ctx context.Context) mo.Option[catalog.VIPFeed]
	Search(ctx context.Context, query string) []catalog.RawDrama
	GetDetail(ctx context.Context, bookID string) mo.Option[catalog.DramaDetail]
	GetAllEpisodes(ctx context.Context, bookID string) []catalog.Episode
	GetRandom(ctx context.Context) []catalog.RawDrama
}

// ImageRelay fetches an allow-listed image on behalf of the caller
type ImageRelay interface {
	Relay(ctx context.Context, rawURL string) (*relay.Response, error)
}

var (
	_ CatalogClient = (*catalog.Client)(nil)
	_ ImageRelay    = (*relay.Gateway)(nil)
)
