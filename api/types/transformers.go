package types

import (
	"github.com/samber/lo"

	"github.com/killallgit/xianplay-api/internal/models"
	"github.com/killallgit/xianplay-api/internal/services/catalog"
)

// FromCatalogEpisode transforms a catalog episode into our simplified Episode type
func FromCatalogEpisode(ep catalog.Episode) Episode {
	return Episode{
		ID:    ep.ChapterID.String(),
		Name:  ep.ChapterName,
		Index: int(ep.ChapterIndex),
		Renditions: lo.Map(ep.Renditions(), func(r catalog.Rendition, _ int) Rendition {
			return Rendition{
				Quality:   int(r.Quality),
				IsDefault: bool(r.IsDefault),
				URL:       r.VideoPath,
			}
		}),
	}
}

// FromCatalogEpisodes transforms a list of catalog episodes, preserving order
func FromCatalogEpisodes(episodes []catalog.Episode) []Episode {
	return lo.Map(episodes, func(ep catalog.Episode, _ int) Episode {
		return FromCatalogEpisode(ep)
	})
}

// FromVIPFeed normalizes every column of the featured shelf
func FromVIPFeed(feed catalog.VIPFeed) []VIPColumn {
	return lo.Map(feed.Columns, func(col catalog.VIPColumn, _ int) VIPColumn {
		return VIPColumn{
			Title:  col.Title,
			Dramas: catalog.NormalizeAll(col.BookList),
		}
	})
}

// ToMyListItem maps the request onto the stored model
func (r AddToMyListRequest) ToMyListItem() models.MyListItem {
	return models.MyListItem{
		DramaID:  r.DramaID,
		Title:    r.Title,
		CoverURL: r.CoverURL,
	}
}

// ToHistoryEntry maps the request onto the stored model
func (r RecordProgressRequest) ToHistoryEntry() models.WatchHistoryEntry {
	return models.WatchHistoryEntry{
		DramaID:  r.DramaID,
		Title:    r.Title,
		CoverURL: r.CoverURL,
		Episode:  r.Episode,
		Progress: r.Progress,
	}
}
