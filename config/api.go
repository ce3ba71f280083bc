package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// Read-only surfaces (catalog listing, GraphQL) stay public
	return []string{"/api/catalog", "/api/catalog/filters", "/graphql", "/playground"}
}
