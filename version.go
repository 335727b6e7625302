package revdata

import _ "embed"

// Version is the release of revdata, read from the VERSION file.
//
//go:embed VERSION
var Version string
