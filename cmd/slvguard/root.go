package main

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"io"
	"omibyte.io/slvguard/mmio"
	"omibyte.io/slvguard/slvguard"
)

var (
	configPath string
	baseFlag   Address
	devmemFlag string
	verbose    bool

	cfg Config

	// openBus maps the register window described by the configuration.
	openBus = func(c Config) (mmio.Bus, io.Closer, error) {
		mem, err := mmio.Open(c.DevMem, uint64(c.Base), c.Window)
		if err != nil {
			return nil, nil, err
		}
		return mem, mem, nil
	}

	rootCmd = &cobra.Command{
		Use:   "slvguard",
		Short: "Inspect and program a slave bus guard",
		Long: `slvguard prints the register map of the slave bus guard and reads and
programs a guard instance through a physical memory device.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			explicit := cmd.Flags().Changed("config")
			if cfg, err = loadConfig(configPath, explicit); err != nil {
				return err
			}
			if err = cfg.applyFlags(cmd.Flags()); err != nil {
				return err
			}

			level, err := logrus.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			logrus.SetLevel(level)
			return nil
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", defaultConfigPath, "configuration file")
	flags.Var(&baseFlag, "base", "physical base address of the guard")
	flags.StringVar(&devmemFlag, "devmem", "/dev/mem", "physical memory device")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log register accesses")

	rootCmd.AddCommand(mapCmd, decodeCmd, readCmd, writeCmd, dumpCmd, irqCmd, latencyCmd)
}

// withGuard opens the configured guard for the duration of fn.
func withGuard(fn func(g *slvguard.Guard) error) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	log := logrus.WithFields(logrus.Fields{
		"base":   fmt.Sprintf("%#x", uint64(cfg.Base)),
		"device": cfg.DevMem,
	})
	log.Debug("mapping register window")

	bus, closer, err := openBus(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	return fn(slvguard.New(&tracingBus{bus: bus, log: log}))
}

// tracingBus logs every register access at debug level.
type tracingBus struct {
	bus mmio.Bus
	log *logrus.Entry
}

func (t *tracingBus) Read32(offset uint32) (uint32, error) {
	v, err := t.bus.Read32(offset)
	t.log.WithFields(logrus.Fields{"offset": fmt.Sprintf("%#x", offset), "value": fmt.Sprintf("0x%08x", v)}).Debug("read")
	return v, err
}

func (t *tracingBus) Write32(offset uint32, value uint32) error {
	t.log.WithFields(logrus.Fields{"offset": fmt.Sprintf("%#x", offset), "value": fmt.Sprintf("0x%08x", value)}).Debug("write")
	return t.bus.Write32(offset, value)
}
