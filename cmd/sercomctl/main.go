// Command sercomctl inspects SERCOM SPI routings and board files.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sercomctl",
		Short:         "SAMD51 SERCOM SPI routing tool",
		Long:          "Inspect the SERCOM SPI routing table, derive BAUD values and check board pinouts.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRoutesCmd(), newBaudCmd(), newCheckCmd())
	return root
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		root.PrintErrln("sercomctl:", err)
		os.Exit(1)
	}
}
