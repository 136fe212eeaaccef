package internal

import (
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/retrolens/internal/loader"
	"github.com/starford/retrolens/internal/models"
)

// Config represents the application configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	Input   InputConfig       `yaml:"input"`
	Palette PaletteConfig     `yaml:"palette"`
	Quotes  QuotesConfig      `yaml:"quotes"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Input.Validate(); err != nil {
		return err
	}
	if err := c.Palette.Validate(); err != nil {
		return err
	}
	return c.Quotes.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// InputConfig names the columns of the board export. Column names are a
// configuration detail of the export tool, not a contract.
type InputConfig struct {
	Columns ColumnsConfig `yaml:"columns"`
}

// ColumnsConfig maps logical fields to export column headers.
type ColumnsConfig struct {
	Team  string `yaml:"team"`
	Topic string `yaml:"topic"`
	Color string `yaml:"color"`
	Text  string `yaml:"text"`
	ID    string `yaml:"id"`
	X     string `yaml:"x"`
	Y     string `yaml:"y"`
}

// Columns converts the configured names into the loader's column set.
func (c ColumnsConfig) Columns() loader.Columns {
	return loader.Columns{
		Team:  c.Team,
		Topic: c.Topic,
		Color: c.Color,
		Text:  c.Text,
		ID:    c.ID,
		X:     c.X,
		Y:     c.Y,
	}
}

// Validate validates the input configuration.
func (c *InputConfig) Validate() error {
	return validation.ValidateStruct(&c.Columns,
		validation.Field(&c.Columns.Color, validation.Required),
		validation.Field(&c.Columns.Text, validation.Required),
	)
}

// ColorBand is one palette entry: a named band with a sentiment class and an
// agreement weight on the 0-100 scale.
type ColorBand struct {
	Name   string `yaml:"name"`
	Class  string `yaml:"class"`
	Weight int    `yaml:"weight"`
}

// PaletteConfig is the board's fixed color-to-sentiment convention. It is
// read-only at runtime; colors missing from it are neutral and unweighted.
// TeamLabel and TopicLabel mark the stickies that name a proximity group.
type PaletteConfig struct {
	Colors     map[string]ColorBand `yaml:"colors"`
	TeamLabel  string               `yaml:"team_label"`
	TopicLabel string               `yaml:"topic_label"`
}

// Validate validates the palette configuration.
func (c *PaletteConfig) Validate() error {
	if len(c.Colors) == 0 {
		return fmt.Errorf("palette: at least one color is required")
	}
	for color, band := range c.Colors {
		if err := validation.ValidateStruct(&band,
			validation.Field(&band.Class, validation.Required,
				validation.In(models.ClassPositive, models.ClassNegative, models.ClassNeutral)),
			validation.Field(&band.Weight, validation.Min(0), validation.Max(100)),
		); err != nil {
			return fmt.Errorf("palette color %s: %w", color, err)
		}
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.TeamLabel, validation.Required),
		validation.Field(&c.TopicLabel, validation.Required),
	)
}

// band looks a color up case-insensitively; the palette holds only a
// handful of entries.
func (c *PaletteConfig) band(color string) (ColorBand, bool) {
	for key, band := range c.Colors {
		if strings.EqualFold(key, color) {
			return band, true
		}
	}
	return ColorBand{}, false
}

// Class returns the sentiment class for a color, neutral when unmapped.
func (c *PaletteConfig) Class(color string) string {
	if band, ok := c.band(color); ok && band.Class != "" {
		return band.Class
	}
	return models.ClassNeutral
}

// Weight returns the agreement weight for a color and whether the color
// belongs to the palette.
func (c *PaletteConfig) Weight(color string) (int, bool) {
	band, ok := c.band(color)
	return band.Weight, ok
}

// Known reports whether a color belongs to the palette.
func (c *PaletteConfig) Known(color string) bool {
	_, ok := c.band(color)
	return ok
}

// IsLabel reports whether a color marks a team or topic label sticky.
func (c *PaletteConfig) IsLabel(color string) bool {
	return strings.EqualFold(color, c.TeamLabel) || strings.EqualFold(color, c.TopicLabel)
}

// QuotesConfig controls quote extraction.
type QuotesConfig struct {
	PerPolarity int `yaml:"per_polarity"`
}

// Validate validates the quotes configuration.
func (c *QuotesConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.PerPolarity, validation.Min(0)),
	)
}

// NewDefaultConfig returns a new Config with the Mural board convention:
// five agreement bands from dark red (0) to dark green (100) plus the two
// label colors used to name proximity groups.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
		},
		Input: InputConfig{
			Columns: ColumnsConfig{
				Team:  "Team",
				Topic: "Topic",
				Color: "BG Color",
				Text:  "Text",
				ID:    "ID",
				X:     "Position X",
				Y:     "Position Y",
			},
		},
		Palette: PaletteConfig{
			Colors: map[string]ColorBand{
				"#459C5B": {Name: "1-DarkGreen", Class: models.ClassPositive, Weight: 100},
				"#AAED92": {Name: "2-LightGreen", Class: models.ClassPositive, Weight: 75},
				"#FCF281": {Name: "3-Yellow", Class: models.ClassNeutral, Weight: 50},
				"#FFC061": {Name: "4-Orange", Class: models.ClassNegative, Weight: 25},
				"#E95E5E": {Name: "5-DarkRed", Class: models.ClassNegative, Weight: 0},
			},
			TeamLabel:  "#86E6D9",
			TopicLabel: "#FFFFFF",
		},
		Quotes: QuotesConfig{
			PerPolarity: 3,
		},
	}
}
