package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sercom-go/internal/board"
	"sercom-go/port"
)

func newCheckCmd() *cobra.Command {
	var builtin string
	cmd := &cobra.Command{
		Use:   "check [BOARD.yaml]",
		Short: "Check every SPI bus of a board file against the routing table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				b   *board.Board
				err error
			)
			switch {
			case builtin != "":
				b, err = board.Builtin(builtin)
			case len(args) == 1:
				b, err = board.Load(args[0])
			default:
				return fmt.Errorf("need a board file or --builtin (one of %v)", board.BuiltinNames())
			}
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "board %s, clock %d Hz\n", b.Name, b.ClockHz)
			bad := 0
			for _, r := range b.Check() {
				if r.Err != nil {
					bad++
					fmt.Fprintf(w, "%s\tFAIL\t%v\n", r.Bus, r.Err)
					continue
				}
				fmt.Fprintf(w, "%s\tok\tDIPO=%d DOPO=%d\t%s\tBAUD=%d\t%d Hz\n",
					r.Bus, r.Route.DIPO, r.Route.DOPO, pinList(r), r.Baud, r.SCKHz)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if bad > 0 {
				return fmt.Errorf("%d bus(es) failed", bad)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&builtin, "builtin", "", "check a board shipped with sercomctl")
	return cmd
}

func pinList(r board.Result) string {
	roles := [4]string{"DI", "DO", "SCK", "CS"}
	s := ""
	for i, id := range r.Pins {
		if id == port.NoPin {
			continue
		}
		if s != "" {
			s += " "
		}
		s += roles[i] + "=" + id.String() + "/" + r.Functions[i].String()
	}
	return s
}
