package config

import "time"

// DefaultAssets are the doublestar patterns copied from assets_dir on export.
var DefaultAssets = []string{
	"**/*.png",
	"**/*.jpg",
	"**/*.jpeg",
	"**/*.svg",
	"**/*.webp",
	"**/*.ico",
	"**/*.pdf",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Persona:   "ravi",
		Port:      3000,
		PreloadMS: 2500,
		AssetsDir: "public",
		GitHub: GitHubConfig{
			Mode:       ProjectsRemote,
			APIBase:    "https://api.github.com",
			Revalidate: time.Hour,
			Timeout:    10 * time.Second,
		},
		Export: ExportConfig{
			OutputDir: "dist",
			Assets:    DefaultAssets,
		},
	}
}
