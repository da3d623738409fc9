package docpost

import (
	_ "embed"
)

// Version is the release of docpost, read from the VERSION file.
//
//go:embed VERSION
var Version string
