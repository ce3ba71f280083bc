package config

import (
	"os"
	"path/filepath"
)

// CSVFiles holds the resolved locations of the three tabular resources.
type CSVFiles struct {
	Products string
	Zones    string
	Status   string
}

// ResolveCSVFiles locates the CSV resources. Env vars win; otherwise the
// first existing candidate under DataDir is used, falling back to the
// default name (which may not exist yet; a missing file is an empty resource).
func ResolveCSVFiles() CSVFiles {
	LoadAppConfig()
	dir := AppConfig.DataDir
	return CSVFiles{
		Products: resolveCSV("PRODUCTS_CSV", dir, "products.csv", "products-sample.csv", "ULTRA-products.csv"),
		Zones:    resolveCSV("ZONES_CSV", dir, "zones.csv", "ULTRA-zones.csv"),
		Status:   resolveCSV("STATUS_CSV", dir, "status.csv", "status-sample.csv", "ULTRA-status.csv"),
	}
}

func resolveCSV(envKey, dir string, candidates ...string) string {
	if p := os.Getenv(envKey); p != "" {
		return p
	}
	for _, name := range candidates {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return filepath.Join(dir, candidates[0])
}
