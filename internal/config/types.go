package config

import "time"

// ProjectsMode selects where the Projects section gets its list.
type ProjectsMode string

const (
	// ProjectsRemote fetches the persona's public repositories.
	ProjectsRemote ProjectsMode = "remote"
	// ProjectsStatic serves the persona's curated list.
	ProjectsStatic ProjectsMode = "static"
)

// Config is the top-level folio configuration, corresponding to .folio.yml.
type Config struct {
	Persona         string        `yaml:"persona" koanf:"persona"`
	PersonaFiles    []string      `yaml:"persona_files" koanf:"persona_files"`
	Port            int           `yaml:"port" koanf:"port"`
	AllowAllOrigins bool          `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	PreloadMS       int           `yaml:"preload_ms" koanf:"preload_ms"`
	AssetsDir       string        `yaml:"assets_dir" koanf:"assets_dir"`
	GitHub          GitHubConfig  `yaml:"github" koanf:"github"`
	Contact         ContactConfig `yaml:"contact" koanf:"contact"`
	Export          ExportConfig  `yaml:"export" koanf:"export"`
}

// GitHubConfig controls the repository list.
type GitHubConfig struct {
	Mode ProjectsMode `yaml:"mode" koanf:"mode"`
	// User overrides the persona's github_user when set.
	User       string        `yaml:"user" koanf:"user"`
	Token      string        `yaml:"token,omitempty" koanf:"token"`
	APIBase    string        `yaml:"api_base" koanf:"api_base"`
	Revalidate time.Duration `yaml:"revalidate" koanf:"revalidate"`
	Timeout    time.Duration `yaml:"timeout" koanf:"timeout"`
}

// ContactConfig controls contact form delivery.
type ContactConfig struct {
	WebhookURL string `yaml:"webhook_url" koanf:"webhook_url"`
}

// ExportConfig controls the static export.
type ExportConfig struct {
	OutputDir string   `yaml:"output_dir" koanf:"output_dir"`
	Assets    []string `yaml:"assets" koanf:"assets"`
}
