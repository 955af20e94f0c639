// Package platform binds the drivers to registers: memory-mapped SERCOM and
// MCLK blocks on an atsamd51 build, the simulator everywhere else.
package platform

import (
	"sercom-go/drivers/sercom"
	"sercom-go/drivers/sercom/spi"
	"sercom-go/port"
)

// CoreClockHz is the generic clock fed to every SERCOM core (GCLK1).
const CoreClockHz = 48_000_000

// Setup installs the pin-mux backend. Call once before building pads.
func Setup() {
	port.SetMuxer(muxer())
	println("[platform] pin mux ready,", Name)
}

// Clock returns the SERCOM core clock for instance n and makes sure it runs.
func Clock(n uint8) spi.Clock {
	enableCoreClock(n)
	return spi.ClockHz(CoreClockHz)
}

// Claim takes SERCOM S with this platform's registers.
func Claim[S sercom.Instance]() (*sercom.Block[S], error) {
	var s S
	return sercom.Claim[S](spim(s.Num()), mclk())
}
