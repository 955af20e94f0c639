package spi

import "sercom-go/x/mathx"

// Clock reports the frequency of the generic clock feeding the SERCOM core.
type Clock interface {
	Freq() uint32
}

// ClockHz is a fixed-frequency Clock.
type ClockHz uint32

func (c ClockHz) Freq() uint32 { return uint32(c) }

// Baud returns the BAUD register value for a target SCK rate.
// SCK = clock / (2*(BAUD+1)); the division rounds up so SCK never exceeds
// target. A zero target selects the slowest rate.
func Baud(target, clock uint32) uint8 {
	if target == 0 {
		return 0xff
	}
	div := mathx.CeilDiv(uint64(clock), 2*uint64(target))
	return mathx.FitU8(mathx.SatSub(div, 1))
}

// OutputFrequency is the SCK rate produced by baud at clock.
func OutputFrequency(baud uint8, clock uint32) uint32 {
	return clock / (2 * (uint32(baud) + 1))
}
