package registry

// Core keys for GlobalRegistry.
const (
	// Extension registries (cmd, api) stored in GlobalRegistry
	KeyRegistryCmd    = "registry:cmd"
	KeyRegistryAPI    = "registry:api"
	KeyRegistryRoutes = "registry:routes"
)
