package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/chee/do2org/internal/pandoc"
)

// FileName is the config file looked up inside Dir().
const FileName = "config.yaml"

// EnvPandoc names the environment variable that overrides the pandoc
// binary without touching the config file.
const EnvPandoc = "DO2ORG_PANDOC"

// DefaultJournal is the conventional Day One export filename, used when
// neither an argument nor the config file names one.
const DefaultJournal = "./Journal.json"

// Config holds the optional settings a user can persist instead of passing
// flags on every run.
type Config struct {
	// Pandoc is the pandoc executable to run. Empty means "pandoc" from PATH.
	Pandoc string `yaml:"pandoc"`
	// Journal is the export file converted when no argument is given.
	Journal string `yaml:"journal"`
}

// Load reads the config file from Dir().
// A missing file yields a zero Config; a file that exists but does not
// parse is an error, so misconfiguration never masquerades as defaults.
func Load() (Config, error) {
	return loadFrom(filepath.Join(Dir(), FileName))
}

// loadFrom reads and parses a single config file path.
func loadFrom(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// ResolvePandoc picks the pandoc binary for a run.
// Precedence: flag, then $DO2ORG_PANDOC, then the config file, then the
// bare "pandoc" from PATH.
func (c Config) ResolvePandoc(flag string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv(EnvPandoc); env != "" {
		return env
	}
	if c.Pandoc != "" {
		return c.Pandoc
	}
	return pandoc.DefaultBin
}

// ResolveJournal picks the journal file for a run.
// Precedence: the command-line argument, then the config file, then
// DefaultJournal.
func (c Config) ResolveJournal(arg string) string {
	if arg != "" {
		return arg
	}
	if c.Journal != "" {
		return c.Journal
	}
	return DefaultJournal
}
