package main

import (
	"errors"
	"fmt"
	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"io/fs"
	"omibyte.io/slvguard/slvguard"
	"strconv"
)

const defaultConfigPath = "/etc/slvguard.toml"

// Config selects the guard instance the commands operate on.
type Config struct {
	Base     Address `toml:"base"`
	DevMem   string  `toml:"devmem"`
	Window   uint32  `toml:"window"`
	LogLevel string  `toml:"log_level"`
}

// Address is a physical address accepting hex strings in TOML and on the
// command line.
type Address uint64

func (a *Address) UnmarshalText(text []byte) error {
	v, err := strconv.ParseUint(string(text), 0, 64)
	if err != nil {
		return fmt.Errorf("bad address %q: %w", text, err)
	}
	*a = Address(v)
	return nil
}

func (a *Address) String() string   { return fmt.Sprintf("%#x", uint64(*a)) }
func (a *Address) Set(s string) error { return a.UnmarshalText([]byte(s)) }
func (a *Address) Type() string       { return "address" }

func defaultConfig() Config {
	return Config{
		DevMem:   "/dev/mem",
		Window:   slvguard.WindowSize,
		LogLevel: "info",
	}
}

// loadConfig reads path over the defaults. A missing file is only an error
// when the path was given explicitly.
func loadConfig(path string, explicit bool) (Config, error) {
	cfg := defaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		logrus.WithField("keys", undecoded).Warn("ignoring unknown config keys")
	}
	return cfg, nil
}

// applyFlags overrides configuration values with flags set on the command
// line.
func (c *Config) applyFlags(flags *pflag.FlagSet) error {
	if f := flags.Lookup("base"); f != nil && f.Changed {
		if err := c.Base.Set(f.Value.String()); err != nil {
			return err
		}
	}
	if f := flags.Lookup("devmem"); f != nil && f.Changed {
		c.DevMem = f.Value.String()
	}
	if v, err := flags.GetBool("verbose"); err == nil && v {
		c.LogLevel = "debug"
	}
	return nil
}

func (c *Config) validate() error {
	if c.Base == 0 {
		return errors.New("no base address: set base in the config file or pass --base")
	}
	if c.Window < slvguard.WindowSize {
		return fmt.Errorf("window %#x is smaller than the register map (%#x)", c.Window, slvguard.WindowSize)
	}
	return nil
}
