package catalog

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// DefaultQuality is the vertical resolution requested when the caller has no preference
const DefaultQuality = 720

// SelectRendition picks the playback URL for an episode from its primary CDN
// entry: the exact quality match, else the default-flagged rendition, else the
// first one. Renditions without a path are never chosen, so a present result
// is always a non-empty URL.
func SelectRendition(ep Episode, desiredQuality int) mo.Option[string] {
	playable := lo.Filter(ep.Renditions(), func(r Rendition, _ int) bool {
		return r.VideoPath != ""
	})
	if len(playable) == 0 {
		return mo.None[string]()
	}

	if r, ok := lo.Find(playable, func(r Rendition) bool { return int(r.Quality) == desiredQuality }); ok {
		return mo.Some(r.VideoPath)
	}
	if r, ok := lo.Find(playable, func(r Rendition) bool { return bool(r.IsDefault) }); ok {
		return mo.Some(r.VideoPath)
	}
	return mo.Some(playable[0].VideoPath)
}

// Qualities lists the distinct qualities offered by an episode's primary CDN entry
func Qualities(ep Episode) []int {
	return lo.Uniq(lo.FilterMap(ep.Renditions(), func(r Rendition, _ int) (int, bool) {
		return int(r.Quality), r.VideoPath != "" && r.Quality > 0
	}))
}
