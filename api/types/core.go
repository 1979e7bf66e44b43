package types

import "github.com/killallgit/xianplay-api/internal/services/catalog"

// Core data types used across API responses

// Episode is one playable chapter of a drama
type Episode struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Index      int         `json:"index"`
	Renditions []Rendition `json:"renditions"`
}

// Rendition is one encoded variant of an episode
type Rendition struct {
	Quality   int    `json:"quality"`
	IsDefault bool   `json:"isDefault"`
	URL       string `json:"url"`
}

// VIPColumn is one titled row of the featured shelf
type VIPColumn struct {
	Title  string                 `json:"title"`
	Dramas []catalog.DramaSummary `json:"dramas"`
}
