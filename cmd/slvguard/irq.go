package main

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"omibyte.io/slvguard/slvguard"
)

var clearIRQ bool

var irqCmd = &cobra.Command{
	Use:   "irq",
	Short: "Report the latched violation and optionally acknowledge it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withGuard(func(g *slvguard.Guard) error {
			irq, err := g.Interrupt()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), irq)

			if !irq.Pending() || !clearIRQ {
				return nil
			}
			logrus.WithFields(logrus.Fields{
				"causes": irq.Causes.String(),
				"txn_id": irq.TxnID,
			}).Info("clearing interrupt")
			return g.ClearInterrupt(irq)
		})
	},
}

func init() {
	irqCmd.Flags().BoolVar(&clearIRQ, "clear", false, "write the cause bits back to clear them")
}
