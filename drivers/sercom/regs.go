package sercom

import "golang.org/x/exp/constraints"

// Register is a field-level view of one hardware register. TinyGo's
// *volatile.Register8/16/32 satisfy it unchanged.
type Register[T constraints.Unsigned] interface {
	Get() T
	Set(T)
}

// SPIM is the SPI-master view of one SERCOM register block.
type SPIM interface {
	CTRLA() Register[uint32]
	CTRLB() Register[uint32]
	BAUD() Register[uint8]
	INTFLAG() Register[uint8]
	STATUS() Register[uint16]
	SYNCBUSY() Register[uint32]
	DATA() Register[uint32]
}

// APBMasks exposes the MCLK bus-clock mask registers. They are shared by
// every peripheral on the chip.
type APBMasks interface {
	APBMASK(bus APB) Register[uint32]
}

// SPIM register layout (SAMD51).
const (
	SPIM_CTRLA_SWRST      = 1 << 0
	SPIM_CTRLA_ENABLE     = 1 << 1
	SPIM_CTRLA_MODE_Pos   = 2
	SPIM_CTRLA_MODE_Msk   = 0x7
	SPIM_CTRLA_MODE_SPIM  = 0x3
	SPIM_CTRLA_DOPO_Pos   = 16
	SPIM_CTRLA_DOPO_Msk   = 0x3
	SPIM_CTRLA_DIPO_Pos   = 20
	SPIM_CTRLA_DIPO_Msk   = 0x3
	SPIM_CTRLA_CPHA       = 1 << 28
	SPIM_CTRLA_CPOL       = 1 << 29
	SPIM_CTRLA_DORD       = 1 << 30
	SPIM_CTRLB_CHSIZE_Pos = 0
	SPIM_CTRLB_CHSIZE_Msk = 0x7
	SPIM_CTRLB_MSSEN      = 1 << 13
	SPIM_CTRLB_RXEN       = 1 << 17
	SPIM_INTFLAG_DRE      = 1 << 0
	SPIM_INTFLAG_TXC      = 1 << 1
	SPIM_INTFLAG_RXC      = 1 << 2
	SPIM_STATUS_BUFOVF    = 1 << 2
	SPIM_SYNCBUSY_SWRST   = 1 << 0
	SPIM_SYNCBUSY_ENABLE  = 1 << 1
	SPIM_SYNCBUSY_CTRLB   = 1 << 2
)

// SetBits ORs mask into r.
func SetBits[T constraints.Unsigned](r Register[T], mask T) { r.Set(r.Get() | mask) }

// ClearBits clears mask in r.
func ClearBits[T constraints.Unsigned](r Register[T], mask T) { r.Set(r.Get() &^ mask) }

// HasBits reports whether any bit of mask is set in r.
func HasBits[T constraints.Unsigned](r Register[T], mask T) bool { return r.Get()&mask != 0 }

// ReplaceBits writes value into the field mask<<pos, leaving other bits alone.
// Same argument order as volatile.Register32.ReplaceBits.
func ReplaceBits[T constraints.Unsigned](r Register[T], value, mask T, pos uint8) {
	r.Set(r.Get()&^(mask<<pos) | (value&mask)<<pos)
}
