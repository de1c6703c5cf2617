package config

import _ "embed"

//go:embed defaults/eerium.yaml
var defaultYAML []byte
