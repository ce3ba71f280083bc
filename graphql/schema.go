package graphql

import (
	_ "embed"
)

//go:embed schema.graphqls
var schemaBase string

// Schema returns the GraphQL schema definition.
func Schema() string {
	return schemaBase
}
