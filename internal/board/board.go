// Package board reads YAML board descriptions: which SERCOM each named SPI
// bus uses and on which pins, checked against the routing table.
package board

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"sercom-go/drivers/sercom"
	"sercom-go/drivers/sercom/spi"
	"sercom-go/errcode"
	"sercom-go/port"
)

//go:embed boards/*.yaml
var builtin embed.FS

// DefaultClockHz is used when a board omits clock_hz.
const DefaultClockHz = 48_000_000

// Board is one board file.
type Board struct {
	Name    string `yaml:"board"`
	ClockHz uint32 `yaml:"clock_hz"`
	SPI     []SPI  `yaml:"spi"`
}

// SPI is one named bus. CS is empty for software chip-select.
type SPI struct {
	Name        string `yaml:"name"`
	Sercom      uint8  `yaml:"sercom"`
	DI          string `yaml:"di"`
	DO          string `yaml:"do"`
	SCK         string `yaml:"sck"`
	CS          string `yaml:"cs,omitempty"`
	FrequencyHz uint32 `yaml:"frequency_hz"`
	Mode        uint8  `yaml:"mode"`
}

// Load reads and parses a board file.
func Load(path string) (*Board, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

// Parse decodes a board description. Unknown keys are rejected.
func Parse(raw []byte) (*Board, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	var b Board
	if err := dec.Decode(&b); err != nil {
		return nil, errcode.Wrap(errcode.InvalidParams, "board.Parse", err)
	}
	if b.ClockHz == 0 {
		b.ClockHz = DefaultClockHz
	}
	return &b, nil
}

// Builtin returns a board shipped with the module.
func Builtin(name string) (*Board, error) {
	raw, err := builtin.ReadFile("boards/" + name + ".yaml")
	if err != nil {
		return nil, &errcode.E{C: errcode.UnknownBus, Op: "board.Builtin", Msg: "no board " + name}
	}
	return Parse(raw)
}

// BuiltinNames lists the boards shipped with the module.
func BuiltinNames() []string {
	ents, _ := builtin.ReadDir("boards")
	var names []string
	for _, e := range ents {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Result is the outcome of checking one bus.
type Result struct {
	Bus   string
	Route spi.Route
	// Pins and mux functions, in DI, DO, SCK, CS order. CS is port.NoPin
	// without hardware chip-select.
	Pins      [4]port.ID
	Functions [4]port.Function
	Baud      uint8
	SCKHz     uint32
	Err       error
}

func (r Result) OK() bool { return r.Err == nil }

// Check validates every bus. Buses sharing a SERCOM or a pin are reported on
// the later bus.
func (b *Board) Check() []Result {
	out := make([]Result, 0, len(b.SPI))
	usedSercom := map[uint8]string{}
	usedPin := map[port.ID]string{}
	for _, bus := range b.SPI {
		res := b.checkBus(bus)
		if res.Err == nil {
			if owner, ok := usedSercom[bus.Sercom]; ok {
				res.Err = fail(errcode.BusInUse, bus.Name, "SERCOM%d already used by %s", bus.Sercom, owner)
			}
		}
		if res.Err == nil {
			for _, id := range res.Pins {
				if id == port.NoPin {
					continue
				}
				if owner, ok := usedPin[id]; ok {
					res.Err = fail(errcode.PinInUse, bus.Name, "%v already used by %s", id, owner)
					break
				}
			}
		}
		if res.Err == nil {
			usedSercom[bus.Sercom] = bus.Name
			for _, id := range res.Pins {
				if id != port.NoPin {
					usedPin[id] = bus.Name
				}
			}
		}
		out = append(out, res)
	}
	return out
}

// Err folds Check into one error naming every bad bus, or nil.
func (b *Board) Err() error {
	var bad []string
	for _, r := range b.Check() {
		if r.Err != nil {
			bad = append(bad, r.Err.Error())
		}
	}
	if len(bad) == 0 {
		return nil
	}
	return &errcode.E{C: errcode.InvalidPinout, Op: "board.Check", Msg: strings.Join(bad, "; ")}
}

func (b *Board) checkBus(bus SPI) Result {
	res := Result{Bus: bus.Name, Pins: [4]port.ID{port.NoPin, port.NoPin, port.NoPin, port.NoPin}}
	if bus.Sercom >= sercom.Count {
		res.Err = fail(errcode.UnknownBus, bus.Name, "no SERCOM%d", bus.Sercom)
		return res
	}
	cfg := spi.Config{Frequency: bus.FrequencyHz, Mode: spi.Mode(bus.Mode)}
	if cfg.Frequency == 0 {
		cfg.Frequency = spi.DefaultConfig().Frequency
	}
	if err := cfg.Validate(); err != nil {
		res.Err = fail(errcode.InvalidParams, bus.Name, "%v", err)
		return res
	}

	names := [4]string{bus.DI, bus.DO, bus.SCK, bus.CS}
	roles := [4]string{"di", "do", "sck", "cs"}
	pads := [4]uint8{spi.NoPad, spi.NoPad, spi.NoPad, spi.NoPad}
	for i, name := range names {
		if name == "" {
			if i == 3 {
				continue
			}
			res.Err = fail(errcode.InvalidParams, bus.Name, "%s pin missing", roles[i])
			return res
		}
		id, ok := port.Parse(strings.ToUpper(name))
		if !ok {
			res.Err = fail(errcode.UnknownPin, bus.Name, "%s: bad pin %q", roles[i], name)
			return res
		}
		pad, fn, ok := padOf(id, bus.Sercom)
		if !ok {
			res.Err = fail(errcode.InvalidPinout, bus.Name, "%s: %v has no pad on SERCOM%d", roles[i], id, bus.Sercom)
			return res
		}
		res.Pins[i], res.Functions[i], pads[i] = id, fn, pad
	}

	route, ok := spi.LookupRoute(pads[0], pads[1], pads[2], pads[3])
	if !ok {
		res.Err = fail(errcode.InvalidPinout, bus.Name, "pads %s are not a SPI routing", padTuple(pads))
		return res
	}
	res.Route = route
	res.Baud = spi.Baud(cfg.Frequency, b.ClockHz)
	res.SCKHz = spi.OutputFrequency(res.Baud, b.ClockHz)
	return res
}

func padOf(id port.ID, s uint8) (uint8, port.Function, bool) {
	for _, r := range port.Roles(id) {
		if r.Sercom == s {
			return r.Pad, r.Function, true
		}
	}
	return 0, 0, false
}

func padTuple(p [4]uint8) string {
	s := fmt.Sprintf("DI%d DO%d SCK%d", p[0], p[1], p[2])
	if p[3] != spi.NoPad {
		s += fmt.Sprintf(" CS%d", p[3])
	}
	return s
}

func fail(c errcode.Code, bus, format string, args ...any) error {
	return &errcode.E{C: c, Op: bus, Msg: fmt.Sprintf(format, args...)}
}
