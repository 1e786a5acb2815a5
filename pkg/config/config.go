// Package config holds the viewer configuration and its flag parser.
package config

import (
	"flag"
	"fmt"
)

// Config holds the tunable parameters of the viewer. The detection
// thresholds are configuration, not a hidden contract: files on the
// eligibility boundary may classify differently under different settings.
type Config struct {
	StartDir    string  // Initial directory (empty: last saved, else cwd)
	SampleLines int     // Data lines examined when sniffing for chart data
	MinRatio    float64 // Required parse ratio among sampled lines
	MinPoints   int     // Required minimum number of parsed points
	ShowChart   bool    // Start with the chart pane visible
	NerdFonts   bool    // Use nerd-font icons instead of emoji
	LogFile     string  // Structured log sink (empty: logging disabled)
}

// Default returns a configuration with sensible defaults.
func Default() Config {
	return Config{
		StartDir:    "",
		SampleLines: 40,
		MinRatio:    0.8,
		MinPoints:   3,
		ShowChart:   true,
		NerdFonts:   true,
		LogFile:     "",
	}
}

// Parser handles command-line flag parsing.
type Parser struct {
	config  *Config
	flagSet *flag.FlagSet

	noChart *bool
	emoji   *bool
}

// NewParser creates a new configuration parser.
func NewParser() *Parser {
	config := Default()
	return &Parser{
		config:  &config,
		flagSet: flag.NewFlagSet("sciview", flag.ExitOnError),
	}
}

// RegisterFlags registers all command-line flags.
func (p *Parser) RegisterFlags() {
	p.flagSet.StringVar(&p.config.StartDir, "dir", p.config.StartDir, "Directory to open (default: last used, then current)")
	p.flagSet.IntVar(&p.config.SampleLines, "sample-lines", p.config.SampleLines, "Data lines sampled for chart detection")
	p.flagSet.Float64Var(&p.config.MinRatio, "min-ratio", p.config.MinRatio, "Required parse ratio for chart eligibility (0.0-1.0]")
	p.flagSet.IntVar(&p.config.MinPoints, "min-points", p.config.MinPoints, "Minimum parsed points for chart eligibility")
	p.flagSet.StringVar(&p.config.LogFile, "log-file", p.config.LogFile, "Write structured logs to this file")

	// Boolean flags are phrased as their non-default form.
	p.noChart = p.flagSet.Bool("no-chart", false, "Start with the chart pane hidden")
	p.emoji = p.flagSet.Bool("emoji", false, "Use emoji icons instead of nerd fonts")

	p.flagSet.Usage = func() {
		fmt.Fprintf(p.flagSet.Output(), "Usage: sciview [flags]\n\nBrowse files and chart two-column numeric data in the terminal.\n\n")
		p.flagSet.PrintDefaults()
	}
}

// Parse parses command-line arguments and returns the configuration.
func (p *Parser) Parse(args []string) (*Config, error) {
	p.RegisterFlags()

	if err := p.flagSet.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}
	p.config.ShowChart = !*p.noChart
	p.config.NerdFonts = !*p.emoji

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return p.config, nil
}

// Validate validates the configuration parameters.
func (p *Parser) Validate() error {
	c := p.config

	if c.SampleLines < 1 {
		return fmt.Errorf("sample-lines (%d) must be at least 1", c.SampleLines)
	}
	if c.MinRatio <= 0 || c.MinRatio > 1.0 {
		return fmt.Errorf("min-ratio (%.3f) must be in (0.0, 1.0]", c.MinRatio)
	}
	if c.MinPoints < 1 {
		return fmt.Errorf("min-points (%d) must be at least 1", c.MinPoints)
	}
	return nil
}
