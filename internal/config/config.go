package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Source is one job board's toggle. KeyringAccount is only meaningful for
// LinkedIn, where it names the keychain entry holding the session cookie.
type Source struct {
	Enabled        bool   `yaml:"enabled" json:"enabled"`
	KeyringAccount string `yaml:"keyring_account,omitempty" json:"keyring_account,omitempty"`
}

type Config struct {
	App struct {
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
	} `yaml:"app" json:"app"`

	Search struct {
		DefaultLocation       string  `yaml:"default_location" json:"default_location"`
		PerSourceLimit        int     `yaml:"per_source_limit" json:"per_source_limit"`
		CourtesyDelaySeconds  int     `yaml:"courtesy_delay_seconds" json:"courtesy_delay_seconds"`
		RequestTimeoutSeconds int     `yaml:"request_timeout_seconds" json:"request_timeout_seconds"`
		Parallel              bool    `yaml:"parallel" json:"parallel"`
		DescriptionMax        int     `yaml:"description_max" json:"description_max"`
		PerHostRPS            float64 `yaml:"per_host_rps" json:"per_host_rps"`
		Burst                 int     `yaml:"burst" json:"burst"`
	} `yaml:"search" json:"search"`

	Sources struct {
		TimesJobs Source `yaml:"timesjobs" json:"timesjobs"`
		LinkedIn  Source `yaml:"linkedin" json:"linkedin"`
		Apna      Source `yaml:"apna" json:"apna"`
		Naukri    Source `yaml:"naukri" json:"naukri"`
	} `yaml:"sources" json:"sources"`

	Output struct {
		CSVDir string `yaml:"csv_dir" json:"csv_dir"`
		DBPath string `yaml:"db_path" json:"db_path"` // empty disables the run archive
	} `yaml:"output" json:"output"`
}

// Default is the built-in configuration: the two boards the tool has
// always searched, sequential fetching with a 2s courtesy delay.
func Default() Config {
	var cfg Config
	cfg.App.Port = 5000
	cfg.App.DataDir = "."
	cfg.Search.DefaultLocation = "India"
	cfg.Search.PerSourceLimit = 8
	cfg.Search.CourtesyDelaySeconds = 2
	cfg.Search.RequestTimeoutSeconds = 15
	cfg.Search.DescriptionMax = 200
	cfg.Search.PerHostRPS = 1
	cfg.Search.Burst = 2
	cfg.Sources.TimesJobs.Enabled = true
	cfg.Sources.LinkedIn.Enabled = true
	cfg.Output.CSVDir = "."
	return cfg
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
