package cmdform

import _ "embed"

// Version is the release version of cmdform.
//
//go:embed VERSION
var Version string
