package types

import (
	"github.com/killallgit/xianplay-api/internal/database"
	"github.com/killallgit/xianplay-api/internal/services/cache"
	"github.com/killallgit/xianplay-api/internal/services/library"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB            *database.DB
	Catalog       CatalogClient
	Relay         ImageRelay
	Library       library.LibraryService
	ResponseCache cache.Cache // nil disables catalog response caching
}

// LibraryEnabled reports whether the library routes can be served
func (d *Dependencies) LibraryEnabled() bool {
	return d != nil && d.Library != nil
}
