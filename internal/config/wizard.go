package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard over the given persona
// slugs, saves the result to path and returns it.
func RunWizard(path string, personas []string) (*Config, error) {
	fmt.Println("Welcome to folio! Let's configure your portfolio.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Persona selection.
	if len(personas) > 0 {
		personaPrompt := promptui.Select{
			Label: "Select the default persona",
			Items: personas,
		}
		_, persona, err := personaPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("persona selection: %w", err)
		}
		cfg.Persona = persona
	}

	// 2. Projects source.
	modePrompt := promptui.Select{
		Label: "Where should the Projects section come from?",
		Items: []string{
			"remote: live public repositories from GitHub",
			"static: the persona's curated list",
		},
	}
	modeIdx, _, err := modePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("projects mode: %w", err)
	}
	cfg.GitHub.Mode = []ProjectsMode{ProjectsRemote, ProjectsStatic}[modeIdx]

	// 3. GitHub user override.
	if cfg.GitHub.Mode == ProjectsRemote {
		userPrompt := promptui.Prompt{
			Label:   "GitHub user (blank to use the persona's)",
			Default: "",
		}
		user, err := userPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("github user: %w", err)
		}
		cfg.GitHub.User = strings.TrimSpace(user)
	}

	// 4. Port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(strings.TrimSpace(portStr))

	// 5. Contact webhook.
	hookPrompt := promptui.Prompt{
		Label:   "Contact form webhook URL (blank disables the form)",
		Default: "",
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return nil
			}
			return checkHTTPURL("webhook URL", strings.TrimSpace(s))
		},
	}
	hook, err := hookPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("webhook url: %w", err)
	}
	cfg.Contact.WebhookURL = strings.TrimSpace(hook)

	// 6. Extra export assets.
	assetsPrompt := promptui.Prompt{
		Label:   "Extra export asset patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	assetsStr, err := assetsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("asset patterns: %w", err)
	}
	if extra := splitAndTrim(assetsStr); len(extra) > 0 {
		cfg.Export.Assets = append(append([]string(nil), DefaultAssets...), extra...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.GitHub.Mode == ProjectsRemote {
		fmt.Println("\nNote: set GITHUB_TOKEN to raise the GitHub API rate limit.")
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// validatePort accepts a TCP port number.
func validatePort(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if n <= 0 || n > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
