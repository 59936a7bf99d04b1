package cmd

import (
	"fmt"
	"strings"

	"github.com/TFMV/treewalk/internal/match"
	"github.com/TFMV/treewalk/internal/walk"
	"github.com/spf13/viper"
)

var envKeyReplacer = strings.NewReplacer("-", "_")

// Config holds the walk settings gathered from flags, environment and
// config file.
type Config struct {
	MinDepth int
	MaxDepth int

	ExcludeName   []string
	IncludeName   []string
	ExcludeFormat []string
	IncludeFormat []string
	ExcludeParent []string
	IncludeParent []string

	Format  string
	Exec    string
	Verbose bool
	Silent  bool
}

func configFromViper(v *viper.Viper) Config {
	return Config{
		MinDepth:      v.GetInt("min-depth"),
		MaxDepth:      v.GetInt("max-depth"),
		ExcludeName:   v.GetStringSlice("exclude-name"),
		IncludeName:   v.GetStringSlice("include-name"),
		ExcludeFormat: v.GetStringSlice("exclude-format"),
		IncludeFormat: v.GetStringSlice("include-format"),
		ExcludeParent: v.GetStringSlice("exclude-parent"),
		IncludeParent: v.GetStringSlice("include-parent"),
		Format:        v.GetString("format"),
		Exec:          v.GetString("exec"),
		Verbose:       v.GetBool("verbose"),
		Silent:        v.GetBool("silent"),
	}
}

// LogLevel maps the verbosity switches to a log level.
func (c Config) LogLevel() walk.LogLevel {
	switch {
	case c.Verbose:
		return walk.LogLevelDebug
	case c.Silent:
		return walk.LogLevelError
	default:
		return walk.LogLevelWarn
	}
}

// predicates builds the predicate list in a fixed order: format rules,
// name rules, then parent rules.
func (c Config) predicates(m *match.Matcher) ([]walk.Predicate, error) {
	var out []walk.Predicate

	for _, kind := range c.ExcludeFormat {
		out = append(out, m.ExcludeFormat(kind))
	}
	for _, kind := range c.IncludeFormat {
		out = append(out, m.IncludeFormat(kind))
	}

	patterns := []struct {
		flag    string
		values  []string
		factory func(string) (walk.Predicate, error)
	}{
		{"exclude-name", c.ExcludeName, m.ExcludeName},
		{"include-name", c.IncludeName, m.IncludeName},
		{"exclude-parent", c.ExcludeParent, m.ExcludeParent},
		{"include-parent", c.IncludeParent, m.IncludeParent},
	}
	for _, group := range patterns {
		for _, pattern := range group.values {
			p, err := group.factory(pattern)
			if err != nil {
				return nil, fmt.Errorf("invalid %s value: %w", group.flag, err)
			}
			out = append(out, p)
		}
	}
	return out, nil
}
