// Package settings persists the tools' user-facing configuration: named
// command-line parameter sets for the model compiler and the viewer's
// process options.
package settings

import (
	"os"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

// Parameter is one command-line key/value pair. Order is preserved; the
// compiler front-end passes parameters through positionally.
type Parameter struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// CmdLineConfig is a named, reusable set of command-line parameters for the
// external model compiler, plus the output handling tied to it.
type CmdLineConfig struct {
	Name            string      `json:"name"`
	Parameters      []Parameter `json:"parameters"`
	CopyOutputFiles bool        `json:"copyOutputFiles"`
	Filters         []string    `json:"filters"`
}

// ErrMissingName marks a stored config block without a name; such blocks are
// unusable because the list is keyed by name.
var ErrMissingName = eris.New("command line config has no name")

// Validate reports whether the config can be stored and selected.
func (c *CmdLineConfig) Validate() error {
	if c.Name == "" {
		return ErrMissingName
	}
	return nil
}

// ConfigList holds every saved command-line config plus the name of the
// currently selected one.
type ConfigList struct {
	Configs []*CmdLineConfig `json:"settings"`
	Active  string           `json:"activeConfig,omitempty"`
}

// Find returns the config with the given name.
func (l *ConfigList) Find(name string) (*CmdLineConfig, bool) {
	for _, c := range l.Configs {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Add stores cfg, replacing any existing config with the same name.
func (l *ConfigList) Add(cfg *CmdLineConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	for i, c := range l.Configs {
		if c.Name == cfg.Name {
			l.Configs[i] = cfg
			return nil
		}
	}
	l.Configs = append(l.Configs, cfg)
	return nil
}

// Remove deletes the config with the given name and reports whether one was
// removed. Removing the active config clears the selection.
func (l *ConfigList) Remove(name string) bool {
	for i, c := range l.Configs {
		if c.Name == name {
			l.Configs = append(l.Configs[:i], l.Configs[i+1:]...)
			if l.Active == name {
				l.Active = ""
			}
			return true
		}
	}
	return false
}

// ActiveConfig returns the currently selected config, if any.
func (l *ConfigList) ActiveConfig() (*CmdLineConfig, bool) {
	if l.Active == "" {
		return nil, false
	}
	return l.Find(l.Active)
}

// LoadConfigList reads a config list from disk. A list containing a block
// without a name is rejected as a whole; partial loads would silently drop
// user data on the next save.
func LoadConfigList(path string) (*ConfigList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "reading command line configs %q", path)
	}

	var list ConfigList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, eris.Wrapf(err, "decoding command line configs %q", path)
	}
	for _, c := range list.Configs {
		if err := c.Validate(); err != nil {
			return nil, eris.Wrapf(err, "invalid config block in %q", path)
		}
	}
	return &list, nil
}

// Save writes the config list to disk.
func (l *ConfigList) Save(path string) error {
	data, err := json.MarshalIndent(l, "", "\t")
	if err != nil {
		return eris.Wrap(err, "encoding command line configs")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "writing command line configs %q", path)
	}
	return nil
}
