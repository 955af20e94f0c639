package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"sercom-go/drivers/sercom/spi"
	"sercom-go/internal/board"
)

func newBaudCmd() *cobra.Command {
	opts := struct {
		clock  uint32
		target uint32
	}{}
	cmd := &cobra.Command{
		Use:   "baud",
		Short: "Derive the BAUD register value for a target SCK rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.clock == 0 {
				return errors.New("--clock must be non-zero")
			}
			b := spi.Baud(opts.target, opts.clock)
			fmt.Fprintf(cmd.OutOrStdout(), "BAUD=%d SCK=%d Hz (target %d Hz, clock %d Hz)\n",
				b, spi.OutputFrequency(b, opts.clock), opts.target, opts.clock)
			return nil
		},
	}
	cmd.Flags().Uint32Var(&opts.clock, "clock", board.DefaultClockHz, "SERCOM core clock in Hz")
	cmd.Flags().Uint32Var(&opts.target, "target", 1_000_000, "target SCK rate in Hz")
	return cmd
}
