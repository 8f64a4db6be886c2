package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	ScaleMin        int      `mapstructure:"scale_min" yaml:"scale_min"`
	ScaleMax        int      `mapstructure:"scale_max" yaml:"scale_max"`
	MaxRows         int      `mapstructure:"max_rows" yaml:"max_rows"`
	MaxColumns      int      `mapstructure:"max_columns" yaml:"max_columns"`
	MaxUploadBytes  int      `mapstructure:"max_upload_bytes" yaml:"max_upload_bytes"`
	GroupingColumns []string `mapstructure:"grouping_columns" yaml:"grouping_columns"`
	ReverseColumns  []string `mapstructure:"reverse_columns" yaml:"reverse_columns"`
	LabelMapFile    string   `mapstructure:"label_map_file" yaml:"label_map_file"`
	AutoDetect      bool     `mapstructure:"auto_detect" yaml:"auto_detect"`
	OutputFormat    string   `mapstructure:"output_format" yaml:"output_format"`
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (handled by the commands) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("ANKESTAT")
	v.AutomaticEnv()

	v.SetDefault("scale_min", 1)
	v.SetDefault("scale_max", 5)
	v.SetDefault("max_rows", 100000)
	v.SetDefault("max_columns", 512)
	v.SetDefault("max_upload_bytes", 16<<20)
	v.SetDefault("grouping_columns", []string{})
	v.SetDefault("reverse_columns", []string{})
	v.SetDefault("auto_detect", false)
	v.SetDefault("output_format", "text")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".ankestat"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Missing default config is fine; defaults apply.
		_ = v.ReadInConfig()
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.ankestat/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".ankestat")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// LoadLabelMap reads a YAML file mapping textual Likert answers to numeric
// values, e.g. "Strongly Agree: 5".
func LoadLabelMap(path string) (map[string]int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read label map: %w", err)
	}
	out := map[string]int{}
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("parse label map %s: %w", path, err)
	}
	return out, nil
}
