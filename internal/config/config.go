package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"mindmap/internal/domain"
	pkgconfig "mindmap/pkg/config"
)

// Ways a created note can be opened
const (
	OpenWithObsidian = "obsidian"
	OpenWithEditor   = "editor"
	OpenWithNone     = "none"
)

const DefaultVaultPath = "~/MindMap"

// Environment variables
const (
	EnvConfig = "MINDMAP_CONFIG"
	EnvVault  = "MINDMAP_VAULT"
)

func init() {
	// Validation errors name fields as they are written in the config file
	validation.ErrorTag = "yaml"
}

// Config represents the application configuration.
type Config struct {
	App    ApplicationConfig `yaml:"app"`
	Vault  VaultConfig       `yaml:"vault"`
	Layout LayoutConfig      `yaml:"layout"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	if err := c.Vault.Validate(); err != nil {
		return fmt.Errorf("vault: %w", err)
	}
	if err := c.Layout.Validate(); err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	return nil
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	OpenWith string     `yaml:"open_with"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.OpenWith, validation.Required, validation.In(OpenWithObsidian, OpenWithEditor, OpenWithNone)),
	)
}

// VaultConfig holds the vault location and its catalog database.
type VaultConfig struct {
	Path string `yaml:"path"`
	// IndexPath is the SQLite catalog file; empty uses the XDG data directory
	IndexPath string `yaml:"index_path"`
}

// Validate validates the vault configuration.
func (c *VaultConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// LayoutConfig names the vault folders, relative to the vault root.
type LayoutConfig struct {
	ActiveFolder          string `yaml:"active"`
	TemplatesFolder       string `yaml:"templates"`
	LegacyTemplatesFolder string `yaml:"legacy_templates"`
	DailyFolder           string `yaml:"daily"`
	WeeklyFolder          string `yaml:"weekly"`
	MonthlyFolder         string `yaml:"monthly"`
	QuarterlyFolder       string `yaml:"quarterly"`
	YearlyFolder          string `yaml:"yearly"`
}

// Validate validates the layout configuration.
func (c *LayoutConfig) Validate() error {
	folder := []validation.Rule{validation.Required, validation.By(vaultRelative)}
	return validation.ValidateStruct(c,
		validation.Field(&c.ActiveFolder, folder...),
		validation.Field(&c.TemplatesFolder, folder...),
		validation.Field(&c.LegacyTemplatesFolder, folder...),
		validation.Field(&c.DailyFolder, folder...),
		validation.Field(&c.WeeklyFolder, folder...),
		validation.Field(&c.MonthlyFolder, folder...),
		validation.Field(&c.QuarterlyFolder, folder...),
		validation.Field(&c.YearlyFolder, folder...),
	)
}

// vaultRelative rejects absolute folders and folders that leave the vault
func vaultRelative(value any) error {
	s, _ := value.(string)
	if filepath.IsAbs(s) || strings.HasPrefix(s, "/") {
		return errors.New("must be relative to the vault")
	}
	for _, segment := range strings.Split(domain.NormalizePath(s), "/") {
		if segment == ".." {
			return errors.New("must stay inside the vault")
		}
	}
	if domain.NormalizePath(s) == "" {
		return errors.New("must name a folder")
	}
	return nil
}

// ToDomain converts the layout to its domain form
func (c LayoutConfig) ToDomain() domain.Layout {
	return domain.Layout{
		ActiveFolder:          domain.NormalizePath(c.ActiveFolder),
		TemplatesFolder:       domain.NormalizePath(c.TemplatesFolder),
		LegacyTemplatesFolder: domain.NormalizePath(c.LegacyTemplatesFolder),
		DailyFolder:           domain.NormalizePath(c.DailyFolder),
		WeeklyFolder:          domain.NormalizePath(c.WeeklyFolder),
		MonthlyFolder:         domain.NormalizePath(c.MonthlyFolder),
		QuarterlyFolder:       domain.NormalizePath(c.QuarterlyFolder),
		YearlyFolder:          domain.NormalizePath(c.YearlyFolder),
	}
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	layout := domain.DefaultLayout()
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			OpenWith: OpenWithObsidian,
		},
		Vault: VaultConfig{
			Path: DefaultVaultPath,
		},
		Layout: LayoutConfig{
			ActiveFolder:          layout.ActiveFolder,
			TemplatesFolder:       layout.TemplatesFolder,
			LegacyTemplatesFolder: layout.LegacyTemplatesFolder,
			DailyFolder:           layout.DailyFolder,
			WeeklyFolder:          layout.WeeklyFolder,
			MonthlyFolder:         layout.MonthlyFolder,
			QuarterlyFolder:       layout.QuarterlyFolder,
			YearlyFolder:          layout.YearlyFolder,
		},
	}
}

// DefaultPath returns ~/.config/mindmap/config.yaml, honoring XDG_CONFIG_HOME
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "mindmap", "config.yaml")
}

// Load builds the configuration. The file is explicitPath when set, else
// $MINDMAP_CONFIG, else DefaultPath when it exists; with no file the
// defaults are used. $MINDMAP_VAULT overrides the vault path.
func Load(explicitPath string) (*Config, error) {
	cfg := NewDefaultConfig()

	path := explicitPath
	if path == "" {
		path = os.Getenv(EnvConfig)
	}

	if path != "" {
		if err := pkgconfig.Load(path, cfg); err != nil {
			return nil, err
		}
	} else if _, err := pkgconfig.LoadIfExists(DefaultPath(), cfg); err != nil {
		return nil, err
	}

	if env := os.Getenv(EnvVault); env != "" {
		cfg.Vault.Path = env
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}
