package catalog

import (
	"strconv"

	"github.com/samber/lo"
)

// Defaults applied when a record carries none of a field's aliases
const (
	DefaultTitle        = "Untitled"
	DefaultCover        = ""
	DefaultEpisodeCount = "?"
)

// Alias keys consulted in order; the first non-empty value wins.
var (
	TitleAliases = []string{"bookName", "title"}
	CoverAliases = []string{"coverWap", "cover"}
)

// DramaSummary is the display-ready shape of a drama
type DramaSummary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	CoverURL     string `json:"coverUrl"`
	EpisodeCount string `json:"episodeCount"`
	Tag          string `json:"tag"`
	HotCode      string `json:"hotCode,omitempty"`
	Introduction string `json:"introduction,omitempty"`
}

// Field returns the string value stored under a catalog key, or "" when the
// record has no such key.
func (r RawDrama) Field(key string) string {
	switch key {
	case "bookId":
		return r.BookID.String()
	case "bookName":
		return r.BookName.String()
	case "title":
		return r.Title.String()
	case "coverWap":
		return r.CoverWap.String()
	case "cover":
		return r.Cover.String()
	case "introduction":
		return r.Introduction.String()
	default:
		return ""
	}
}

// Normalize maps a raw record to a DramaSummary. It never fails: missing
// fields resolve through their aliases and then to defaults.
func Normalize(r RawDrama) DramaSummary {
	summary := DramaSummary{
		ID:           r.BookID.String(),
		Title:        firstField(r, TitleAliases, DefaultTitle),
		CoverURL:     firstField(r, CoverAliases, DefaultCover),
		EpisodeCount: DefaultEpisodeCount,
		Introduction: r.Introduction.String(),
	}

	if r.ChapterCount > 0 {
		summary.EpisodeCount = strconv.Itoa(int(r.ChapterCount))
	}
	if len(r.Tags) > 0 {
		summary.Tag = r.Tags[0]
	}
	if r.RankVo != nil {
		summary.HotCode = r.RankVo.HotCode.String()
	}

	return summary
}

// NormalizeAll maps every record, preserving order
func NormalizeAll(records []RawDrama) []DramaSummary {
	return lo.Map(records, func(r RawDrama, _ int) DramaSummary {
		return Normalize(r)
	})
}

func firstField(r RawDrama, aliases []string, fallback string) string {
	value, ok := lo.Find(aliases, func(key string) bool {
		return r.Field(key) != ""
	})
	if !ok {
		return fallback
	}
	return r.Field(value)
}
