package sercom

import "sercom-go/port"

// PadNum is satisfied by the pad markers Pad0..Pad3.
type PadNum interface {
	Pad0 | Pad1 | Pad2 | Pad3
	Num() uint8
}

type (
	Pad0 struct{}
	Pad1 struct{}
	Pad2 struct{}
	Pad3 struct{}
)

func (Pad0) Num() uint8 { return 0 }
func (Pad1) Num() uint8 { return 1 }
func (Pad2) Num() uint8 { return 2 }
func (Pad3) Num() uint8 { return 3 }

// Pad is a pin routed into pad P of instance S. A Pad can only be made by the
// SercomNPadM constructors below, which accept nothing but pins the silicon
// wires to that pad.
type Pad[S Instance, P PadNum] struct {
	pin port.ID
	fn  port.Function
}

// Pin returns the physical pin behind the pad.
func (p Pad[S, P]) Pin() port.ID { return p.pin }

// Function returns the mux function the pin was switched to.
func (p Pad[S, P]) Function() port.Function { return p.fn }

// Num returns the pad number (0..3).
func (p Pad[S, P]) Num() uint8 {
	var n P
	return n.Num()
}

// Valid reports whether p came from a constructor.
func (p Pad[S, P]) Valid() bool { return p.fn != 0 }

// newPad re-checks the role table: a type embedding a real pin satisfies the
// capability interfaces with whatever methods it adds.
func newPad[S Instance, P PadNum](id port.ID, fn port.Function) Pad[S, P] {
	var (
		s S
		n P
	)
	if want, ok := port.RoleOf(id, s.Num(), n.Num()); !ok || want != fn {
		panic("sercom: " + id.String() + " cannot serve " + Name[S]() + " pad " + string(rune('0'+n.Num())))
	}
	port.Route(id, fn)
	return Pad[S, P]{pin: id, fn: fn}
}

// Pad constructors, one per (instance, pad).

func Sercom0Pad0(pin port.Sercom0Pad0) Pad[Sercom0, Pad0] {
	return newPad[Sercom0, Pad0](pin.ID(), pin.Sercom0Pad0())
}

func Sercom0Pad1(pin port.Sercom0Pad1) Pad[Sercom0, Pad1] {
	return newPad[Sercom0, Pad1](pin.ID(), pin.Sercom0Pad1())
}

func Sercom0Pad2(pin port.Sercom0Pad2) Pad[Sercom0, Pad2] {
	return newPad[Sercom0, Pad2](pin.ID(), pin.Sercom0Pad2())
}

func Sercom0Pad3(pin port.Sercom0Pad3) Pad[Sercom0, Pad3] {
	return newPad[Sercom0, Pad3](pin.ID(), pin.Sercom0Pad3())
}

func Sercom1Pad0(pin port.Sercom1Pad0) Pad[Sercom1, Pad0] {
	return newPad[Sercom1, Pad0](pin.ID(), pin.Sercom1Pad0())
}

func Sercom1Pad1(pin port.Sercom1Pad1) Pad[Sercom1, Pad1] {
	return newPad[Sercom1, Pad1](pin.ID(), pin.Sercom1Pad1())
}

func Sercom1Pad2(pin port.Sercom1Pad2) Pad[Sercom1, Pad2] {
	return newPad[Sercom1, Pad2](pin.ID(), pin.Sercom1Pad2())
}

func Sercom1Pad3(pin port.Sercom1Pad3) Pad[Sercom1, Pad3] {
	return newPad[Sercom1, Pad3](pin.ID(), pin.Sercom1Pad3())
}

func Sercom2Pad0(pin port.Sercom2Pad0) Pad[Sercom2, Pad0] {
	return newPad[Sercom2, Pad0](pin.ID(), pin.Sercom2Pad0())
}

func Sercom2Pad1(pin port.Sercom2Pad1) Pad[Sercom2, Pad1] {
	return newPad[Sercom2, Pad1](pin.ID(), pin.Sercom2Pad1())
}

func Sercom2Pad2(pin port.Sercom2Pad2) Pad[Sercom2, Pad2] {
	return newPad[Sercom2, Pad2](pin.ID(), pin.Sercom2Pad2())
}

func Sercom2Pad3(pin port.Sercom2Pad3) Pad[Sercom2, Pad3] {
	return newPad[Sercom2, Pad3](pin.ID(), pin.Sercom2Pad3())
}

func Sercom3Pad0(pin port.Sercom3Pad0) Pad[Sercom3, Pad0] {
	return newPad[Sercom3, Pad0](pin.ID(), pin.Sercom3Pad0())
}

func Sercom3Pad1(pin port.Sercom3Pad1) Pad[Sercom3, Pad1] {
	return newPad[Sercom3, Pad1](pin.ID(), pin.Sercom3Pad1())
}

func Sercom3Pad2(pin port.Sercom3Pad2) Pad[Sercom3, Pad2] {
	return newPad[Sercom3, Pad2](pin.ID(), pin.Sercom3Pad2())
}

func Sercom3Pad3(pin port.Sercom3Pad3) Pad[Sercom3, Pad3] {
	return newPad[Sercom3, Pad3](pin.ID(), pin.Sercom3Pad3())
}

func Sercom4Pad0(pin port.Sercom4Pad0) Pad[Sercom4, Pad0] {
	return newPad[Sercom4, Pad0](pin.ID(), pin.Sercom4Pad0())
}

func Sercom4Pad1(pin port.Sercom4Pad1) Pad[Sercom4, Pad1] {
	return newPad[Sercom4, Pad1](pin.ID(), pin.Sercom4Pad1())
}

func Sercom4Pad2(pin port.Sercom4Pad2) Pad[Sercom4, Pad2] {
	return newPad[Sercom4, Pad2](pin.ID(), pin.Sercom4Pad2())
}

func Sercom4Pad3(pin port.Sercom4Pad3) Pad[Sercom4, Pad3] {
	return newPad[Sercom4, Pad3](pin.ID(), pin.Sercom4Pad3())
}

func Sercom5Pad0(pin port.Sercom5Pad0) Pad[Sercom5, Pad0] {
	return newPad[Sercom5, Pad0](pin.ID(), pin.Sercom5Pad0())
}

func Sercom5Pad1(pin port.Sercom5Pad1) Pad[Sercom5, Pad1] {
	return newPad[Sercom5, Pad1](pin.ID(), pin.Sercom5Pad1())
}

func Sercom5Pad2(pin port.Sercom5Pad2) Pad[Sercom5, Pad2] {
	return newPad[Sercom5, Pad2](pin.ID(), pin.Sercom5Pad2())
}

func Sercom5Pad3(pin port.Sercom5Pad3) Pad[Sercom5, Pad3] {
	return newPad[Sercom5, Pad3](pin.ID(), pin.Sercom5Pad3())
}

func Sercom6Pad0(pin port.Sercom6Pad0) Pad[Sercom6, Pad0] {
	return newPad[Sercom6, Pad0](pin.ID(), pin.Sercom6Pad0())
}

func Sercom6Pad1(pin port.Sercom6Pad1) Pad[Sercom6, Pad1] {
	return newPad[Sercom6, Pad1](pin.ID(), pin.Sercom6Pad1())
}

func Sercom6Pad2(pin port.Sercom6Pad2) Pad[Sercom6, Pad2] {
	return newPad[Sercom6, Pad2](pin.ID(), pin.Sercom6Pad2())
}

func Sercom6Pad3(pin port.Sercom6Pad3) Pad[Sercom6, Pad3] {
	return newPad[Sercom6, Pad3](pin.ID(), pin.Sercom6Pad3())
}

func Sercom7Pad0(pin port.Sercom7Pad0) Pad[Sercom7, Pad0] {
	return newPad[Sercom7, Pad0](pin.ID(), pin.Sercom7Pad0())
}

func Sercom7Pad1(pin port.Sercom7Pad1) Pad[Sercom7, Pad1] {
	return newPad[Sercom7, Pad1](pin.ID(), pin.Sercom7Pad1())
}

func Sercom7Pad2(pin port.Sercom7Pad2) Pad[Sercom7, Pad2] {
	return newPad[Sercom7, Pad2](pin.ID(), pin.Sercom7Pad2())
}

func Sercom7Pad3(pin port.Sercom7Pad3) Pad[Sercom7, Pad3] {
	return newPad[Sercom7, Pad3](pin.ID(), pin.Sercom7Pad3())
}
