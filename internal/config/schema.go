package config

// Config is the top-level readingctl configuration.
type Config struct {
	Service   ServiceConfig   `mapstructure:"service" yaml:"service"`
	Assistant AssistantConfig `mapstructure:"assistant" yaml:"assistant"`
	Lookup    LookupConfig    `mapstructure:"lookup" yaml:"lookup"`
	Session   SessionConfig   `mapstructure:"session" yaml:"session"`
	Cache     CacheConfig     `mapstructure:"cache" yaml:"cache"`
	UI        UIConfig        `mapstructure:"ui" yaml:"ui"`
}

// CacheConfig locates the local catalog cache.
type CacheConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// ServiceConfig holds the reading-tracker service connection settings.
type ServiceConfig struct {
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
}

// AssistantConfig holds the recommendation assistant settings.
type AssistantConfig struct {
	BaseURL   string `mapstructure:"base_url" yaml:"base_url"`
	Streaming bool   `mapstructure:"streaming" yaml:"streaming"`
}

// LookupConfig holds the book-metadata lookup settings.
type LookupConfig struct {
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
}

// SessionConfig locates the persisted login state.
type SessionConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme string `mapstructure:"theme" yaml:"theme"` // minimal, literary, vintage, night
}

// Theme is a named color palette. Views receive the palette they
// should render with; nothing reads theme state ambiently.
type Theme struct {
	Name      string
	Primary   string
	Secondary string
	Accent    string
	Text      string
	Subtle    string
	Border    string
	Success   string
	Warning   string
	Error     string
	Info      string
}

var themes = map[string]Theme{
	"minimal": {
		Name:      "minimal",
		Primary:   "#2D3748",
		Secondary: "#38B2AC",
		Accent:    "#F6AD55",
		Text:      "#1A202C",
		Subtle:    "#718096",
		Border:    "#E2E8F0",
		Success:   "#68D391",
		Warning:   "#F6E05E",
		Error:     "#FC8181",
		Info:      "#63B3ED",
	},
	"literary": {
		Name:      "literary",
		Primary:   "#4A5568",
		Secondary: "#805AD5",
		Accent:    "#D69E2E",
		Text:      "#1A202C",
		Subtle:    "#718096",
		Border:    "#E2E8F0",
		Success:   "#48BB78",
		Warning:   "#ED8936",
		Error:     "#F56565",
		Info:      "#4299E1",
	},
	"vintage": {
		Name:      "vintage",
		Primary:   "#5F4B32",
		Secondary: "#7D5A50",
		Accent:    "#B7791F",
		Text:      "#2D2214",
		Subtle:    "#5A4D3F",
		Border:    "#E2D6C1",
		Success:   "#68A357",
		Warning:   "#CA8A31",
		Error:     "#C53030",
		Info:      "#4C7A9D",
	},
	"night": {
		Name:      "night",
		Primary:   "#805AD5",
		Secondary: "#63B3ED",
		Accent:    "#F6AD55",
		Text:      "#FFFFFF",
		Subtle:    "#E2E8F0",
		Border:    "#4A5568",
		Success:   "#68D391",
		Warning:   "#F6E05E",
		Error:     "#FC8181",
		Info:      "#63B3ED",
	},
}

// ThemeNames lists the available theme names in a fixed order.
func ThemeNames() []string {
	return []string{"minimal", "literary", "vintage", "night"}
}

// ThemeByName resolves a theme name, falling back to minimal for an
// unknown or empty name.
func ThemeByName(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["minimal"]
}

// Theme resolves the configured palette.
func (c *Config) Theme() Theme {
	return ThemeByName(c.UI.Theme)
}
