package spi

import (
	"sercom-go/drivers/sercom"
	"sercom-go/port"
)

// Pins names the physical pins of a Padout. CS is port.NoPin without
// hardware chip-select.
type Pins struct {
	DI, DO, SCK, CS port.ID
}

// Padout is a legal pad assignment for instance S. It can only be built by
// the PadoutDIxDOy constructors, whose parameter types admit exactly the pad
// positions the hardware supports.
type Padout[S sercom.Instance] struct {
	pins  Pins
	fns   [4]port.Function // DI, DO, SCK, CS
	route uint8
	set   bool
}

// noRoute is what a zero Padout reports.
var noRoute = Route{DI: NoPad, DO: NoPad, SCK: NoPad, CS: NoPad, DIPO: NoPad, DOPO: NoPad}

// DipoDopo returns the CTRLA.DIPO and CTRLA.DOPO values for the assignment,
// or NoPad twice for the zero Padout.
func (p Padout[S]) DipoDopo() (dipo, dopo uint8) {
	r := p.Route()
	return r.DIPO, r.DOPO
}

// HardwareCS reports whether the peripheral drives chip-select.
func (p Padout[S]) HardwareCS() bool { return p.Route().HardwareCS() }

// Route returns the routing table entry. The zero Padout has every field set
// to NoPad.
func (p Padout[S]) Route() Route {
	if !p.set {
		return noRoute
	}
	return routes[p.route]
}

// Pins returns the physical pins.
func (p Padout[S]) Pins() Pins { return p.pins }

// ids lists the pins to hold; CS is NoPin without hardware chip-select.
func (p Padout[S]) ids() []port.ID {
	if !p.set {
		return nil
	}
	return []port.ID{p.pins.DI, p.pins.DO, p.pins.SCK, p.pins.CS}
}

// Valid reports whether p was built from routed pads.
func (p Padout[S]) Valid() bool {
	if !p.set {
		return false
	}
	n := 3
	if routes[p.route].HardwareCS() {
		n = 4
	}
	for _, fn := range p.fns[:n] {
		if fn == 0 {
			return false
		}
	}
	return true
}

type pad interface {
	Pin() port.ID
	Function() port.Function
}

func newPadout[S sercom.Instance](route uint8, di, do, sck, cs pad) Padout[S] {
	p := Padout[S]{
		pins:  Pins{DI: di.Pin(), DO: do.Pin(), SCK: sck.Pin(), CS: port.NoPin},
		fns:   [4]port.Function{di.Function(), do.Function(), sck.Function()},
		route: route,
		set:   true,
	}
	if cs != nil {
		p.pins.CS = cs.Pin()
		p.fns[3] = cs.Function()
	}
	return p
}

// PadoutDI0DO3 routes DI to pad 0, DO to pad 3 and SCK to pad 1 (DIPO 0, DOPO 2).
func PadoutDI0DO3[S sercom.Instance](di sercom.Pad[S, sercom.Pad0], do sercom.Pad[S, sercom.Pad3], sck sercom.Pad[S, sercom.Pad1]) Padout[S] {
	return newPadout[S](routeDI0DO3, di, do, sck, nil)
}

// PadoutDI2DO0 routes DI to pad 2, DO to pad 0 and SCK to pad 1 (DIPO 2, DOPO 0).
func PadoutDI2DO0[S sercom.Instance](di sercom.Pad[S, sercom.Pad2], do sercom.Pad[S, sercom.Pad0], sck sercom.Pad[S, sercom.Pad1]) Padout[S] {
	return newPadout[S](routeDI2DO0, di, do, sck, nil)
}

// PadoutDI2DO3 routes DI to pad 2, DO to pad 3 and SCK to pad 1 (DIPO 2, DOPO 2).
func PadoutDI2DO3[S sercom.Instance](di sercom.Pad[S, sercom.Pad2], do sercom.Pad[S, sercom.Pad3], sck sercom.Pad[S, sercom.Pad1]) Padout[S] {
	return newPadout[S](routeDI2DO3, di, do, sck, nil)
}

// PadoutDI3DO0 routes DI to pad 3, DO to pad 0 and SCK to pad 1 (DIPO 3, DOPO 0).
func PadoutDI3DO0[S sercom.Instance](di sercom.Pad[S, sercom.Pad3], do sercom.Pad[S, sercom.Pad0], sck sercom.Pad[S, sercom.Pad1]) Padout[S] {
	return newPadout[S](routeDI3DO0, di, do, sck, nil)
}

// PadoutDI0DO3CS is PadoutDI0DO3 with hardware chip-select on pad 2.
func PadoutDI0DO3CS[S sercom.Instance](di sercom.Pad[S, sercom.Pad0], do sercom.Pad[S, sercom.Pad3], sck sercom.Pad[S, sercom.Pad1], cs sercom.Pad[S, sercom.Pad2]) Padout[S] {
	return newPadout[S](routeDI0DO3CS, di, do, sck, cs)
}

// PadoutDI3DO0CS is PadoutDI3DO0 with hardware chip-select on pad 2.
func PadoutDI3DO0CS[S sercom.Instance](di sercom.Pad[S, sercom.Pad3], do sercom.Pad[S, sercom.Pad0], sck sercom.Pad[S, sercom.Pad1], cs sercom.Pad[S, sercom.Pad2]) Padout[S] {
	return newPadout[S](routeDI3DO0CS, di, do, sck, cs)
}
