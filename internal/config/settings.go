package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. RETIRE_SERVER_ADDR.
const EnvPrefix = "RETIRE"

// Settings holds runtime options for the CLI and the HTTP server.
type Settings struct {
	LogLevel  string         `mapstructure:"log_level"`
	Format    string         `mapstructure:"format"`
	OutputDir string         `mapstructure:"output_dir"`
	Server    ServerSettings `mapstructure:"server"`
	Solver    SolverSettings `mapstructure:"solver"`
}

type ServerSettings struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type SolverSettings struct {
	MaxIterations int     `mapstructure:"max_iterations"`
	Tolerance     float64 `mapstructure:"tolerance"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("format", "console")
	v.SetDefault("output_dir", "")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("solver.max_iterations", 10000)
	v.SetDefault("solver.tolerance", 0.01)
}

// LoadSettings reads defaults, then the optional settings file, then RETIRE_* environment overrides.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	if s.Solver.MaxIterations <= 0 {
		return nil, fmt.Errorf("solver.max_iterations must be positive, got %d", s.Solver.MaxIterations)
	}
	if s.Solver.Tolerance <= 0 {
		return nil, fmt.Errorf("solver.tolerance must be positive, got %v", s.Solver.Tolerance)
	}

	return &s, nil
}
