package api

import _ "embed"

// Spec is the OpenAPI document served at /openapi.yaml.
//
//go:embed openapi.yaml
var Spec []byte
