package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultWeeksPerSemester applies when weeksPerSemester is omitted
	DefaultWeeksPerSemester = 18

	// DefaultServerAddr applies when server.addr is omitted
	DefaultServerAddr = ":8080"

	// DatabaseURLEnv overrides curriculum.databaseURL when set
	DatabaseURLEnv = "TIMETABLE_DATABASE_URL"

	termStartLayout = "2006-01-02"
)

// CurriculumSource selects where teachers, groups and specialties are read from
type CurriculumSource string

const (
	SourceFile     CurriculumSource = "file"
	SourcePostgres CurriculumSource = "postgres"
	SourceSheets   CurriculumSource = "sheets"
)

// BlackoutDay is a single day with no teaching, addressed by term week and weekday
type BlackoutDay struct {
	Week int `yaml:"week" json:"week" validate:"min=0"`
	Day  int `yaml:"day" json:"day" validate:"min=0,max=4"`
}

// BlackoutRule is a recurring blackout expressed as an RFC 5545 RRULE, anchored at termStart
type BlackoutRule struct {
	RRule  string `yaml:"rrule" validate:"required"`
	Reason string `yaml:"reason,omitempty"`
}

// CurriculumConfig points at the curriculum store
type CurriculumConfig struct {
	Source        CurriculumSource `yaml:"source" validate:"required,oneof=file postgres sheets"`
	Path          string           `yaml:"path,omitempty" validate:"required_if=Source file"`
	DatabaseURL   string           `yaml:"databaseURL,omitempty" validate:"required_if=Source postgres"`
	SpreadsheetID string           `yaml:"spreadsheetID,omitempty" validate:"required_if=Source sheets"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Addr string `yaml:"addr,omitempty"`
}

// Config represents the application configuration
type Config struct {
	WeeksPerSemester int              `yaml:"weeksPerSemester" validate:"min=1,max=53"`
	TermStart        string           `yaml:"termStart,omitempty" validate:"omitempty,datetime=2006-01-02"`
	BlackoutDays     []BlackoutDay    `yaml:"blackoutDays,omitempty" validate:"dive"`
	BlackoutRules    []BlackoutRule   `yaml:"blackoutRules,omitempty" validate:"dive"`
	Curriculum       CurriculumConfig `yaml:"curriculum"`
	TimetableSheetID string           `yaml:"timetableSheetID,omitempty"`
	Server           ServerConfig     `yaml:"server,omitempty"`

	// dir is the directory of the loaded config file, used to resolve relative paths
	dir string
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from timetable_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads the configuration with an environment suffix
// For example, env="test" will look for "timetable_config.test.yaml"
func LoadWithEnv(env string) (*Config, error) {
	loadDotEnv(env)

	configPath, err := findFile(envFileName("timetable_config", env, "yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.dir = filepath.Dir(path)

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct, blackout days and rrule syntax
func Validate(cfg *Config) error {
	// Run struct validation
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, day := range cfg.BlackoutDays {
		if day.Week >= cfg.WeeksPerSemester {
			return fmt.Errorf("blackoutDays[%d]: week %d is outside a %d-week term", i, day.Week, cfg.WeeksPerSemester)
		}
	}

	if len(cfg.BlackoutRules) > 0 && cfg.TermStart == "" {
		return fmt.Errorf("termStart is required when blackoutRules are set")
	}

	// Validate rrule syntax for each rule
	for i, rule := range cfg.BlackoutRules {
		if _, err := rrule.StrToRRule(rule.RRule); err != nil {
			return fmt.Errorf("invalid rrule in blackoutRules[%d]: %w", i, err)
		}
	}

	return nil
}

// TermStartDate returns the parsed term start, or nil when none is configured
func (c *Config) TermStartDate() (*time.Time, error) {
	if c.TermStart == "" {
		return nil, nil
	}
	start, err := time.Parse(termStartLayout, c.TermStart)
	if err != nil {
		return nil, fmt.Errorf("invalid termStart %q: %w", c.TermStart, err)
	}
	return &start, nil
}

// CurriculumPath resolves curriculum.path relative to the config file
func (c *Config) CurriculumPath() string {
	path := c.Curriculum.Path
	if path == "" || filepath.IsAbs(path) || c.dir == "" {
		return path
	}
	return filepath.Join(c.dir, path)
}

func applyDefaults(cfg *Config) {
	if cfg.WeeksPerSemester == 0 {
		cfg.WeeksPerSemester = DefaultWeeksPerSemester
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultServerAddr
	}
}

func applyEnvOverrides(cfg *Config) {
	if url := os.Getenv(DatabaseURLEnv); url != "" {
		cfg.Curriculum.DatabaseURL = url
	}
}

// loadDotEnv loads .env.<env> and .env into the process environment if present.
// Variables already set are never overwritten.
func loadDotEnv(env string) {
	for _, name := range []string{envFileName(".env", env, ""), ".env"} {
		if _, err := os.Stat(name); err == nil {
			_ = godotenv.Load(name)
		}
	}
}

// envFileName builds base[.env][.ext]
func envFileName(base, env, ext string) string {
	name := base
	if env != "" {
		name += "." + env
	}
	if ext != "" {
		name += "." + ext
	}
	return name
}

// findFile searches for a file in the current directory and then the home directory
func findFile(fileName string) (string, error) {
	// Check current directory
	if _, err := os.Stat(fileName); err == nil {
		return fileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homePath := filepath.Join(homeDir, fileName)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	return "", fmt.Errorf("%s not found in current directory or home directory", fileName)
}
