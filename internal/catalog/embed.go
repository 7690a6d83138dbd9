package catalog

import _ "embed"

//go:embed data/dyes.yaml
var embeddedDyes []byte
