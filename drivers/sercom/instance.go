// Package sercom holds what every SAMD51 SERCOM mode shares: the instance
// markers, the bus-clock gates, the register-block contracts, pad routing and
// single-owner claiming of a register block.
//
// Instances are zero-size marker types (Sercom0..Sercom7). Drivers are written
// once as generic code over Instance and instantiated per SERCOM.
package sercom

// APB identifies one of the MCLK APB mask registers.
type APB uint8

const (
	APBA APB = iota
	APBB
	APBC
	APBD
)

func (b APB) String() string { return "APB" + string(rune('A'+b)) + "MASK" }

// Gate is the bus-clock enable bit of one instance in MCLK.
type Gate struct {
	Bus APB
	Bit uint8
}

// Mask returns the gate as a register mask.
func (g Gate) Mask() uint32 { return 1 << g.Bit }

// Instance is satisfied by the SERCOM marker types only.
type Instance interface {
	Sercom0 | Sercom1 | Sercom2 | Sercom3 | Sercom4 | Sercom5 | Sercom6 | Sercom7
	Num() uint8
	Gate() Gate
}

type (
	Sercom0 struct{}
	Sercom1 struct{}
	Sercom2 struct{}
	Sercom3 struct{}
	Sercom4 struct{}
	Sercom5 struct{}
	Sercom6 struct{}
	Sercom7 struct{}
)

func (Sercom0) Num() uint8 { return 0 }
func (Sercom1) Num() uint8 { return 1 }
func (Sercom2) Num() uint8 { return 2 }
func (Sercom3) Num() uint8 { return 3 }
func (Sercom4) Num() uint8 { return 4 }
func (Sercom5) Num() uint8 { return 5 }
func (Sercom6) Num() uint8 { return 6 }
func (Sercom7) Num() uint8 { return 7 }

func (Sercom0) Gate() Gate { return Gate{APBA, 12} }
func (Sercom1) Gate() Gate { return Gate{APBA, 13} }
func (Sercom2) Gate() Gate { return Gate{APBB, 9} }
func (Sercom3) Gate() Gate { return Gate{APBB, 10} }
func (Sercom4) Gate() Gate { return Gate{APBD, 0} }
func (Sercom5) Gate() Gate { return Gate{APBD, 1} }
func (Sercom6) Gate() Gate { return Gate{APBD, 2} }
func (Sercom7) Gate() Gate { return Gate{APBD, 3} }

// Count is the number of SERCOM instances on the largest SAMD51 packages.
const Count = 8

// Name returns "SERCOMn" for instance S.
func Name[S Instance]() string {
	var s S
	return "SERCOM" + string(rune('0'+s.Num()))
}
