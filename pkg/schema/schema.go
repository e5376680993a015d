package schema

// Configuration structure represents schema for the `gridtable.yaml` config file.
type Configuration struct {
	Settings Settings                   `yaml:"settings,omitempty" json:"settings,omitempty" mapstructure:"settings"`
	Logs     Logs                       `yaml:"logs,omitempty" json:"logs,omitempty" mapstructure:"logs"`
	Table    TableSettings              `yaml:"table,omitempty" json:"table,omitempty" mapstructure:"table"`
	Styles   map[string]StyleDefinition `yaml:"styles,omitempty" json:"styles,omitempty" mapstructure:"styles"`
	Markup   map[string]MarkupStyle     `yaml:"markup,omitempty" json:"markup,omitempty" mapstructure:"markup"`

	// Set once the configuration has been loaded from disk/env.
	Initialized bool `yaml:"-" json:"-" mapstructure:"-"`
	// Path of the config file that was loaded, if any.
	ConfigFile string `yaml:"-" json:"-" mapstructure:"-"`
}

type Settings struct {
	Terminal Terminal `yaml:"terminal,omitempty" json:"terminal,omitempty" mapstructure:"terminal"`
	Perf     bool     `yaml:"perf,omitempty" json:"perf,omitempty" mapstructure:"perf"`
}

// Terminal holds terminal capability overrides.
type Terminal struct {
	Color   bool `yaml:"color" json:"color" mapstructure:"color"`
	NoColor bool `yaml:"no_color" json:"no_color" mapstructure:"no_color"`
	// Unicode forces (true) or disables (false) UTF-8 output. Nil means detect from the locale.
	Unicode *bool `yaml:"unicode,omitempty" json:"unicode,omitempty" mapstructure:"unicode"`
}

type Logs struct {
	File  string `yaml:"file" json:"file" mapstructure:"file"`
	Level string `yaml:"level" json:"level" mapstructure:"level"`
}

// TableSettings are the defaults applied to every rendered table.
type TableSettings struct {
	Style       string           `yaml:"style,omitempty" json:"style,omitempty" mapstructure:"style"`
	Horizontal  bool             `yaml:"horizontal,omitempty" json:"horizontal,omitempty" mapstructure:"horizontal"`
	HeaderTitle string           `yaml:"header_title,omitempty" json:"header_title,omitempty" mapstructure:"header_title"`
	FooterTitle string           `yaml:"footer_title,omitempty" json:"footer_title,omitempty" mapstructure:"footer_title"`
	Columns     []ColumnSettings `yaml:"columns,omitempty" json:"columns,omitempty" mapstructure:"columns"`
}

// ColumnSettings configures a single column by index. Zero values mean "not set".
type ColumnSettings struct {
	Index    int    `yaml:"index" json:"index" mapstructure:"index"`
	Width    int    `yaml:"width,omitempty" json:"width,omitempty" mapstructure:"width"`
	MaxWidth int    `yaml:"max_width,omitempty" json:"max_width,omitempty" mapstructure:"max_width"`
	Style    string `yaml:"style,omitempty" json:"style,omitempty" mapstructure:"style"`
}

// StyleDefinition describes a custom table style. Empty fields keep the value of the
// style named by Extends (or `default`).
type StyleDefinition struct {
	Extends              string   `yaml:"extends,omitempty" json:"extends,omitempty" mapstructure:"extends"`
	HorizontalOutside    *string  `yaml:"horizontal_outside,omitempty" json:"horizontal_outside,omitempty" mapstructure:"horizontal_outside"`
	HorizontalInside     *string  `yaml:"horizontal_inside,omitempty" json:"horizontal_inside,omitempty" mapstructure:"horizontal_inside"`
	VerticalOutside      *string  `yaml:"vertical_outside,omitempty" json:"vertical_outside,omitempty" mapstructure:"vertical_outside"`
	VerticalInside       *string  `yaml:"vertical_inside,omitempty" json:"vertical_inside,omitempty" mapstructure:"vertical_inside"`
	Crossings            []string `yaml:"crossings,omitempty" json:"crossings,omitempty" mapstructure:"crossings"`
	PaddingChar          string   `yaml:"padding_char,omitempty" json:"padding_char,omitempty" mapstructure:"padding_char"`
	PadType              string   `yaml:"pad_type,omitempty" json:"pad_type,omitempty" mapstructure:"pad_type"`
	CellHeaderFormat     string   `yaml:"cell_header_format,omitempty" json:"cell_header_format,omitempty" mapstructure:"cell_header_format"`
	CellRowFormat        string   `yaml:"cell_row_format,omitempty" json:"cell_row_format,omitempty" mapstructure:"cell_row_format"`
	CellRowContentFormat string   `yaml:"cell_row_content_format,omitempty" json:"cell_row_content_format,omitempty" mapstructure:"cell_row_content_format"`
	BorderFormat         string   `yaml:"border_format,omitempty" json:"border_format,omitempty" mapstructure:"border_format"`
	HeaderTitleFormat    string   `yaml:"header_title_format,omitempty" json:"header_title_format,omitempty" mapstructure:"header_title_format"`
	FooterTitleFormat    string   `yaml:"footer_title_format,omitempty" json:"footer_title_format,omitempty" mapstructure:"footer_title_format"`
}

// MarkupStyle defines a named inline tag usable in cells, e.g. `<price>9.99</price>`.
type MarkupStyle struct {
	Foreground string   `yaml:"fg,omitempty" json:"fg,omitempty" mapstructure:"fg"`
	Background string   `yaml:"bg,omitempty" json:"bg,omitempty" mapstructure:"bg"`
	Options    []string `yaml:"options,omitempty" json:"options,omitempty" mapstructure:"options"`
}
