package models

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Config collects every tunable of the reasoning cycle. All heuristic
// thresholds live here rather than as package constants.
type Config struct {
	Seed     int    `mapstructure:"seed"`
	LogLevel string `mapstructure:"log_level"`

	// Similarity
	GuestCountScale float64            `mapstructure:"guest_count_scale"`
	PriceBandRatio  float64            `mapstructure:"price_band_ratio"`
	InitialWeights  map[string]float64 `mapstructure:"initial_weights"`

	// Weight learning
	LearningRate float64 `mapstructure:"learning_rate"`
	MinWeight    float64 `mapstructure:"min_weight"`
	MaxWeight    float64 `mapstructure:"max_weight"`

	// Retrieval
	RetrievalK           int `mapstructure:"retrieval_k"`
	MinCandidatePoolSize int `mapstructure:"min_candidate_pool_size"`

	// Diversity
	MinDiversityDistance float64 `mapstructure:"min_diversity_distance"`
	MaxProposals         int     `mapstructure:"max_proposals"`

	// Revision
	PriceTolerance float64 `mapstructure:"price_tolerance"`

	// Retention
	QualityThreshold float64 `mapstructure:"quality_threshold"`
	NoveltyThreshold float64 `mapstructure:"novelty_threshold"`
	MaxCasesPerEvent int     `mapstructure:"max_cases_per_event"`

	// Persistence
	CaseBasePath    string `mapstructure:"case_base_path"`
	PostgresEnabled bool   `mapstructure:"postgres_enabled"`
	DatabaseURL     string `mapstructure:"database_url"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional, defaults cover every field. A file
		// named explicitly must exist.
		if cfgFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if config.MinWeight > config.MaxWeight {
		return nil, fmt.Errorf("min_weight %.2f must not exceed max_weight %.2f", config.MinWeight, config.MaxWeight)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("seed", 42)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("guest_count_scale", 50.0)
	viper.SetDefault("price_band_ratio", 0.15)
	viper.SetDefault("learning_rate", 0.05)
	viper.SetDefault("min_weight", 0.02)
	viper.SetDefault("max_weight", 0.50)
	viper.SetDefault("retrieval_k", 5)
	viper.SetDefault("min_candidate_pool_size", 3)
	viper.SetDefault("min_diversity_distance", 0.3)
	viper.SetDefault("max_proposals", 3)
	viper.SetDefault("price_tolerance", 0.10)
	viper.SetDefault("quality_threshold", 3.5)
	viper.SetDefault("novelty_threshold", 0.85)
	viper.SetDefault("max_cases_per_event", 50)
	viper.SetDefault("case_base_path", "")
	viper.SetDefault("postgres_enabled", false)
	viper.SetDefault("database_url", "")
}

// DefaultConfig returns the configuration with every default applied,
// without touching the filesystem. Used by tests and the simulate command.
func DefaultConfig() *Config {
	return &Config{
		Seed:                 42,
		LogLevel:             "info",
		GuestCountScale:      50.0,
		PriceBandRatio:       0.15,
		LearningRate:         0.05,
		MinWeight:            0.02,
		MaxWeight:            0.50,
		RetrievalK:           5,
		MinCandidatePoolSize: 3,
		MinDiversityDistance: 0.3,
		MaxProposals:         3,
		PriceTolerance:       0.10,
		QualityThreshold:     3.5,
		NoveltyThreshold:     0.85,
		MaxCasesPerEvent:     50,
	}
}
