package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sercom-go/drivers/sercom"
	"sercom-go/drivers/sercom/spi"
	"sercom-go/port"
)

func newRoutesCmd() *cobra.Command {
	opts := struct {
		instance int
		hwcs     bool
	}{}
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Print the SPI routing table",
		Long:  "Print every legal (DI, DO, SCK[, CS]) pad tuple with its DIPO/DOPO values. With --instance, list the pins that can serve each pad.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.instance >= sercom.Count {
				return fmt.Errorf("no SERCOM%d", opts.instance)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			header := "CONSTRUCTOR\tDI\tDO\tSCK\tCS\tDIPO\tDOPO"
			if opts.instance >= 0 {
				header += "\tPINS"
			}
			fmt.Fprintln(w, header)
			for _, r := range spi.Routes() {
				if opts.hwcs && !r.HardwareCS() {
					continue
				}
				cs := "-"
				if r.HardwareCS() {
					cs = fmt.Sprint(r.CS)
				}
				line := fmt.Sprintf("%s\t%d\t%d\t%d\t%s\t%d\t%d", constructorName(r), r.DI, r.DO, r.SCK, cs, r.DIPO, r.DOPO)
				if opts.instance >= 0 {
					line += "\t" + routePins(uint8(opts.instance), r)
				}
				fmt.Fprintln(w, line)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVarP(&opts.instance, "instance", "i", -1, "SERCOM instance to list candidate pins for")
	cmd.Flags().BoolVar(&opts.hwcs, "hwcs", false, "only routings with hardware chip-select")
	return cmd
}

func constructorName(r spi.Route) string {
	s := fmt.Sprintf("PadoutDI%dDO%d", r.DI, r.DO)
	if r.HardwareCS() {
		s += "CS"
	}
	return s
}

// routePins lists, per role, the pins that reach the route's pad on instance s.
func routePins(s uint8, r spi.Route) string {
	roles := []struct {
		name string
		pad  uint8
	}{{"DI", r.DI}, {"DO", r.DO}, {"SCK", r.SCK}}
	if r.HardwareCS() {
		roles = append(roles, struct {
			name string
			pad  uint8
		}{"CS", r.CS})
	}
	var parts []string
	for _, role := range roles {
		parts = append(parts, role.name+"="+strings.Join(padPins(s, role.pad), ","))
	}
	return strings.Join(parts, " ")
}

func padPins(s, pad uint8) []string {
	var out []string
	for _, p := range port.Pins() {
		if fn, ok := port.RoleOf(p.ID(), s, pad); ok {
			out = append(out, p.ID().String()+"/"+fn.String())
		}
	}
	if len(out) == 0 {
		out = append(out, "none")
	}
	return out
}
