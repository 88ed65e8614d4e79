package config

type Render struct {
	Renderer      string `env:"RENDERER" envDefault:"vanilla"`
	Sanitize      bool   `env:"SANITIZE" envDefault:"false"`
	DefaultStyles bool   `env:"DEFAULT_STYLES" envDefault:"true"`
	TemplatesDir  string `env:"TEMPLATES_DIR,expand"`
}
