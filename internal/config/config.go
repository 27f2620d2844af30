package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to every environment variable, e.g. DEPLOY_CHECKLIST_LABEL
	EnvPrefix = "DEPLOY_CHECKLIST"

	DefaultLabel         = "DeployChecklist"
	DefaultTitleTemplate = "Deploy Checklist: {{tag}}"

	// SupportedHost is the only host checklist URLs are recognised on
	SupportedHost = "github.com"

	tagPlaceholder = "{{tag}}"
)

// Config represents the deploy checklist configuration
type Config struct {
	// Repo is OWNER/REPO or HOST/OWNER/REPO; empty means the current repository
	Repo          string   `mapstructure:"repo"`
	Label         string   `mapstructure:"label"`
	Labels        []string `mapstructure:"labels"` // extra labels added on create
	Assignee      string   `mapstructure:"assignee"`
	TitleTemplate string   `mapstructure:"title_template"`
	Verbose       bool     `mapstructure:"verbose"`
}

// SetDefaults registers every key with v so environment variables are
// picked up by Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("repo", "")
	v.SetDefault("label", DefaultLabel)
	v.SetDefault("labels", []string{})
	v.SetDefault("assignee", "")
	v.SetDefault("title_template", DefaultTitleTemplate)
	v.SetDefault("verbose", false)
}

// LoadDotEnv loads .env from the working directory when present
func LoadDotEnv() {
	_ = godotenv.Load()
}

// Load loads configuration from v (file, environment and bound flags)
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults sets default values for unset fields
func applyDefaults(cfg *Config) {
	if cfg.Label == "" {
		cfg.Label = DefaultLabel
	}
	if cfg.TitleTemplate == "" {
		cfg.TitleTemplate = DefaultTitleTemplate
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Label) == "" {
		return fmt.Errorf("checklist label is required")
	}

	if c.Repo != "" {
		parts := strings.Split(c.Repo, "/")
		if len(parts) < 2 || len(parts) > 3 {
			return fmt.Errorf("invalid repo: %s (must be OWNER/REPO or HOST/OWNER/REPO)", c.Repo)
		}
		for _, p := range parts {
			if p == "" {
				return fmt.Errorf("invalid repo: %s (must be OWNER/REPO or HOST/OWNER/REPO)", c.Repo)
			}
		}
		if len(parts) == 3 {
			if err := CheckHost(parts[0]); err != nil {
				return err
			}
		}
	}

	for _, l := range c.Labels {
		if strings.TrimSpace(l) == "" {
			return fmt.Errorf("labels must not contain empty names")
		}
	}

	return nil
}

// CheckHost rejects hosts other than github.com, since pull request and
// issue links are only parsed for github.com
func CheckHost(host string) error {
	if !strings.EqualFold(host, SupportedHost) {
		return fmt.Errorf("unsupported host: %s (only %s is supported)", host, SupportedHost)
	}
	return nil
}

// IssueTitle renders the title template for tag
func (c *Config) IssueTitle(tag string) string {
	tmpl := c.TitleTemplate
	if tmpl == "" {
		tmpl = DefaultTitleTemplate
	}
	if !strings.Contains(tmpl, tagPlaceholder) {
		return tmpl + " " + tag
	}
	return strings.ReplaceAll(tmpl, tagPlaceholder, tag)
}

// IssueLabels returns the checklist label followed by the extra labels,
// without duplicates
func (c *Config) IssueLabels() []string {
	labels := []string{c.Label}
	seen := map[string]bool{c.Label: true}
	for _, l := range c.Labels {
		if !seen[l] {
			seen[l] = true
			labels = append(labels, l)
		}
	}
	return labels
}
