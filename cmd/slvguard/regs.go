package main

import (
	"fmt"
	"github.com/spf13/cobra"
	"io"
	"omibyte.io/slvguard/slvguard"
	"strconv"
	"strings"
	"text/tabwriter"
)

var (
	mapCmd = &cobra.Command{
		Use:   "map",
		Short: "Print the register map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printMap(cmd.OutOrStdout())
			return nil
		},
	}

	decodeCmd = &cobra.Command{
		Use:   "decode REGISTER WORD",
		Short: "Split a register word into its fields",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, ok := slvguard.Lookup(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", slvguard.ErrUnknownRegister, args[0])
			}
			word, err := parseWord(args[1])
			if err != nil {
				return err
			}
			printRegister(cmd.OutOrStdout(), reg, word)
			return nil
		},
	}

	readCmd = &cobra.Command{
		Use:   "read REGISTER",
		Short: "Read and decode a register",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withGuard(func(g *slvguard.Guard) error {
				reg, word, err := g.ReadRegister(args[0])
				if err != nil {
					return err
				}
				printRegister(cmd.OutOrStdout(), reg, word)
				return nil
			})
		},
	}

	writeCmd = &cobra.Command{
		Use:   "write REGISTER (WORD | FIELD=VALUE...)",
		Short: "Write a register word or update individual fields",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, rest := args[0], args[1:]
			if len(rest) == 1 && !strings.Contains(rest[0], "=") {
				word, err := parseWord(rest[0])
				if err != nil {
					return err
				}
				return withGuard(func(g *slvguard.Guard) error {
					return g.WriteRegister(name, word)
				})
			}

			values, err := parseAssignments(rest)
			if err != nil {
				return err
			}
			return withGuard(func(g *slvguard.Guard) error {
				return g.WriteFields(name, values)
			})
		},
	}

	dumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Read and decode every register",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withGuard(func(g *slvguard.Guard) error {
				snap, err := g.Snapshot()
				if err != nil {
					return err
				}
				for _, reg := range slvguard.Registers() {
					if word, ok := snap[reg.Name]; ok {
						printRegister(cmd.OutOrStdout(), reg, word)
					}
				}
				return nil
			})
		},
	}
)

func parseWord(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.ReplaceAll(s, "_", ""), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("bad register word %q: %w", s, err)
	}
	return uint32(v), nil
}

func parseAssignments(args []string) (map[string]uint32, error) {
	values := map[string]uint32{}
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || len(name) == 0 {
			return nil, fmt.Errorf("bad field assignment %q, want FIELD=VALUE", arg)
		}
		v, err := parseWord(value)
		if err != nil {
			return nil, err
		}
		values[name] = v
	}
	return values, nil
}

func printMap(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "OFFSET\tREGISTER\tACCESS\tFIELD\tBITS\tDESCRIPTION")
	for _, reg := range slvguard.Registers() {
		for i, f := range reg.Fields {
			offset, name, access := "", "", ""
			if i == 0 {
				offset, name, access = fmt.Sprintf("%#04x", reg.Offset), reg.Name, string(reg.Access)
			}
			desc := f.Desc
			if len(desc) == 0 {
				desc = reg.Desc
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%v\t%s\n", offset, name, access, f.Name, f.Field32, desc)
		}
	}
	tw.Flush()
}

func printRegister(w io.Writer, reg slvguard.Register, word uint32) {
	fmt.Fprintf(w, "%s (%#x) = 0x%08x\n", reg.Name, reg.Offset, word)
	values := reg.Decode(word)
	for i, f := range reg.Fields {
		fmt.Fprintf(w, "  %-20s %-8v %#x\n", f.Name, f.Field32, values[i])
	}
	if reg.Offset == slvguard.IRQRegOffset {
		fmt.Fprintf(w, "  causes: %s\n", slvguard.DecodeIRQ(word).Causes)
	}
}
