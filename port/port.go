// Package port describes the SAMD51 physical pins that can carry a SERCOM pad.
//
// Every such pin has its own Go type. A pin type has one method per
// (SERCOM instance, pad) role the silicon wires it to, named SercomNPadM and
// returning the peripheral mux function that selects the role. The
// SercomNPadM interfaces are sealed: only pin types declared here, or types
// embedding one, satisfy them. That lets the sercom package reject a wrong
// pin at compile time; it re-checks the role table when a pad is built.
package port

// ID is a physical pin number: group*32 + index.
type ID uint8

// Pin groups.
const (
	PortA ID = 0
	PortB ID = 32
	PortC ID = 64
	PortD ID = 96
)

// NoPin marks an unused role.
const NoPin ID = 0xff

func (id ID) Group() uint8 { return uint8(id) / 32 }
func (id ID) Index() uint8 { return uint8(id) % 32 }

func (id ID) String() string {
	if id == NoPin {
		return "NoPin"
	}
	g := id.Group()
	if g > 3 {
		return "P?"
	}
	n := id.Index()
	return string([]byte{'P', 'A' + g, '0' + n/10, '0' + n%10})
}

// Function is a PMUX peripheral function code.
type Function uint8

const (
	FunctionC Function = 2 // SERCOM
	FunctionD Function = 3 // SERCOM-ALT
)

func (f Function) String() string {
	switch f {
	case FunctionC:
		return "C"
	case FunctionD:
		return "D"
	}
	return "?"
}

// Pin is any pin handle declared by this package.
type Pin interface {
	ID() ID
	sealed()
}

type pin struct{}

func (pin) sealed() {}

// Muxer programs the peripheral function of a pin. The platform installs one.
type Muxer interface {
	SetFunction(id ID, fn Function)
}

type nopMuxer struct{}

func (nopMuxer) SetFunction(ID, Function) {}

var muxer Muxer = nopMuxer{}

// SetMuxer installs the pin-mux backend. A nil m restores the no-op backend.
func SetMuxer(m Muxer) {
	if m == nil {
		m = nopMuxer{}
	}
	muxer = m
}

// Route hands pin id over to peripheral function fn.
func Route(id ID, fn Function) { muxer.SetFunction(id, fn) }
