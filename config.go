package geofmt

import (
	"strings"

	"github.com/spf13/viper"
)

// DebugOption is the configuration key holding the debug-logging setting.
const DebugOption = "DEBUG"

// Config is the process-wide configuration store consulted by the
// surrounding tools. Keys are case-insensitive. Options not set explicitly
// fall back to GEOFMT_-prefixed environment variables, so GEOFMT_DEBUG=ON
// behaves like `--debug ON`.
//
// A Config is populated (via Prescan or Set) before the driver registry is
// built and read thereafter.
type Config struct {
	v *viper.Viper
}

// NewConfig creates an empty configuration store.
func NewConfig() *Config {
	v := viper.New()
	v.SetEnvPrefix("GEOFMT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	return &Config{v: v}
}

// Set stores the value for an option key.
func (c *Config) Set(key, value string) {
	c.v.Set(key, value)
}

// Get returns the value of an option key, or "" if it is not set.
func (c *Config) Get(key string) string {
	return c.v.GetString(key)
}

// IsSet reports whether the option key has a value, either set explicitly
// or through the environment.
func (c *Config) IsSet(key string) bool {
	return c.v.IsSet(key)
}

// Debug returns the value of the debug-logging option.
func (c *Config) Debug() string {
	return c.Get(DebugOption)
}

// Prescan applies the configuration arguments of a command line before full
// argument processing takes place. It recognizes exactly two forms:
// "--config KEY VALUE" sets KEY, and "--debug VALUE" sets DebugOption.
// Every other token is ignored, as is either form truncated at the end of
// the argument list.
//
// Full argument processing needs the driver registry for options like
// --formats, and registry construction may itself consult configuration,
// so callers run Prescan first. That ordering is a contract of program
// startup; Prescan does not enforce it.
func (c *Config) Prescan(args []string) {
	for i := 0; i < len(args); i++ {
		if strings.EqualFold(args[i], "--config") && i+2 < len(args) {
			c.Set(args[i+1], args[i+2])
			i += 2
		} else if strings.EqualFold(args[i], "--debug") && i+1 < len(args) {
			c.Set(DebugOption, args[i+1])
			i++
		}
	}
}
