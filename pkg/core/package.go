// pkg/core/package.go
package core

// Package is the metadata a source distribution declares in PKG-INFO
type Package struct {
	Name     string // Distribution name
	Version  string // Distribution version
	Summary  string // One-line description
	License  string // License information
	Homepage string // Project homepage
}
