package settings

import (
	"github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
)

// Options are the viewer's process-level settings, loaded from the
// environment. Unset variables keep the defaults.
type Options struct {
	WindowWidth  int    `config:"HLMV_WINDOW_WIDTH"`
	WindowHeight int    `config:"HLMV_WINDOW_HEIGHT"`
	WindowTitle  string `config:"HLMV_WINDOW_TITLE"`
	LogLevel     string `config:"HLMV_LOG_LEVEL"`
	ConfigPath   string `config:"HLMV_CONFIG_PATH"`
}

// DefaultOptions returns the options used when the environment says nothing.
func DefaultOptions() Options {
	return Options{
		WindowWidth:  1024,
		WindowHeight: 768,
		WindowTitle:  "Half-Life Model Viewer",
		LogLevel:     "info",
		ConfigPath:   "hlmv_settings.json",
	}
}

// LoadOptions fills Options from the environment on top of the defaults.
func LoadOptions() (Options, error) {
	opts := DefaultOptions()
	if err := config.FromEnv().To(&opts); err != nil {
		return opts, eris.Wrap(err, "loading viewer options from environment")
	}
	return opts, nil
}
