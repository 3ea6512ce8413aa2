package config

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"github.com/isseis/go-ip-sec-score/internal/scoring"
)

// LoadOptions selects the optional inputs of Load
type LoadOptions struct {
	// EnvFile is a dotenv file with IPSEC_SCORE_* defaults
	EnvFile string
	// ProfilePath is a TOML profile; when empty IPSEC_SCORE_PROFILE is consulted
	ProfilePath string
}

// Loader reads configuration inputs
type Loader struct {
	readFile func(name string) ([]byte, error)
	validate *validator.Validate
}

// NewLoader creates a Loader reading from the local file system
func NewLoader() *Loader {
	return &Loader{
		readFile: os.ReadFile,
		validate: validator.New(),
	}
}

// Load resolves defaults, the env file, the process environment and the profile, then validates
func (l *Loader) Load(opts LoadOptions) (*Config, error) {
	cfg := Default()

	var dotenv map[string]string
	if opts.EnvFile != "" {
		values, err := ReadEnvFile(opts.EnvFile)
		if err != nil {
			return nil, err
		}
		dotenv = values
	}
	lookup := LayeredLookup(dotenv)
	cfg.ApplyEnv(lookup)

	profilePath := opts.ProfilePath
	if profilePath == "" {
		profilePath, _ = lookup(EnvProfile)
	}
	if profilePath != "" {
		// #nosec G304 - the profile path is chosen by the user running the tool
		content, err := l.readFile(profilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read profile: %w", err)
		}
		profile, err := ParseProfile(content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", profilePath, err)
		}
		cfg.Merge(profile)
	}

	if err := l.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseProfile decodes a TOML profile. Unknown keys are rejected.
func ParseProfile(content []byte) (*Config, error) {
	var profile Config
	dec := toml.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&profile); err != nil {
		return nil, fmt.Errorf("%w: failed to parse profile: %w", ErrInvalidConfig, err)
	}
	return &profile, nil
}

// Merge overrides c with the non-empty settings of other and adds its answers
func (c *Config) Merge(other *Config) {
	if other.Display.Format != "" {
		c.Display.Format = other.Display.Format
	}
	if other.Display.Color != "" {
		c.Display.Color = other.Display.Color
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.LogDir != "" {
		c.LogDir = other.LogDir
	}
	for category, flags := range other.Answers {
		if c.Answers == nil {
			c.Answers = make(Answers)
		}
		if c.Answers[category] == nil {
			c.Answers[category] = make(map[string]bool, len(flags))
		}
		for flag, v := range flags {
			c.Answers[category][flag] = v
		}
	}
}

// Validate checks the settings and that every answer names a known practice
func (l *Loader) Validate(cfg *Config) error {
	if err := l.validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := cfg.Board(); err != nil {
		return err
	}
	return nil
}

// Board builds the initial score board from the answers
func (c *Config) Board() (scoring.Board, error) {
	b := scoring.NewBoard()

	categories := make([]string, 0, len(c.Answers))
	for category := range c.Answers {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	// keys match case-insensitively, so two spellings may name the same practice
	seen := make(map[scoring.Flag]string)
	for _, categoryID := range categories {
		category, err := scoring.ParseCategory(categoryID)
		if err != nil {
			return b, fmt.Errorf("%w: answers.%s: %w", ErrInvalidConfig, categoryID, err)
		}

		flags := c.Answers[categoryID]
		flagIDs := make([]string, 0, len(flags))
		for flagID := range flags {
			flagIDs = append(flagIDs, flagID)
		}
		sort.Strings(flagIDs)

		for _, flagID := range flagIDs {
			f, err := scoring.ParseFlag(category, flagID)
			if err != nil {
				return b, fmt.Errorf("%w: answers.%s.%s: %w", ErrInvalidConfig, categoryID, flagID, err)
			}
			key := "answers." + categoryID + "." + flagID
			if prev, dup := seen[f]; dup {
				return b, fmt.Errorf("%w: %s: practice %s already answered by %s", ErrInvalidConfig, key, f.QualifiedName(), prev)
			}
			seen[f] = key
			b = b.Set(f, flags[flagID])
		}
	}
	return b, nil
}
