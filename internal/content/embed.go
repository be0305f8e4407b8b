// Package content holds the build-time fixtures for the site: the project
// catalog, the profile text and the stylesheet.
package content

import "embed"

// FS contains catalog.yaml, site.yaml and static/
//
//go:embed catalog.yaml site.yaml static
var FS embed.FS

const (
	CatalogFile = "catalog.yaml"
	SiteFile    = "site.yaml"
	StaticDir   = "static"
)
