package flatten

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is looked up at the scanned repository root.
const ConfigFileName = ".gitflat.yaml"

// Arguments holds the resolved options for one flatten run.
type Arguments struct {
	Directory     string   // Repository root (or any path inside it).
	Revision      string   // Revision to flatten; empty means working tree.
	Output        string   // Destination file; empty means stdout.
	Include       []string // Include glob patterns; empty means everything.
	Exclude       []string // Exclude glob patterns; an exclude match wins.
	MaxFileSizeKB int      // Files larger than this are listed but not embedded.
	Verbose       bool     // Enables debug logging.
}

// FileConfig mirrors the .gitflat.yaml schema. Values act as defaults and
// are overridden by command-line flags.
type FileConfig struct {
	Include       []string `yaml:"include"`
	Exclude       []string `yaml:"exclude"`
	Output        string   `yaml:"output"`
	MaxFileSizeKB int      `yaml:"maxFileSize"`
}

// LoadFileConfig reads .gitflat.yaml from dir. A missing file yields a zero
// config and no error; a malformed file is an error.
func LoadFileConfig(dir string, logger *zap.Logger) (FileConfig, error) {
	var cfg FileConfig

	path := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if logger != nil {
		logger.Debug("Loaded config file",
			zap.String("path", path),
			zap.Int("includePatterns", len(cfg.Include)),
			zap.Int("excludePatterns", len(cfg.Exclude)))
	}
	return cfg, nil
}

// ApplyDefaults fills unset argument fields from the file config. Patterns
// given on the command line replace, not extend, the file's patterns.
func (a *Arguments) ApplyDefaults(cfg FileConfig) {
	if len(a.Include) == 0 {
		a.Include = cfg.Include
	}
	if len(a.Exclude) == 0 {
		a.Exclude = cfg.Exclude
	}
	if a.Output == "" {
		a.Output = cfg.Output
	}
	if a.MaxFileSizeKB == 0 {
		a.MaxFileSizeKB = cfg.MaxFileSizeKB
	}
}
