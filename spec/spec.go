// Package spec embeds the OpenAPI description of the gateway.
// The handler package serves it at /openapi.yaml so mobile developers can
// generate a client against the running binary.
package spec

import _ "embed"

// OpenAPI contains the raw bytes of openapi.yaml, embedded at compile time.
//
//go:embed openapi.yaml
var OpenAPI []byte
