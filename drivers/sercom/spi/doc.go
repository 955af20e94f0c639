// Package spi drives a SAMD51 SERCOM as a full-duplex, polled SPI master.
//
// Bring-up takes a claimed register block and a Padout for the same
// instance:
//
//	block, _ := sercom.Claim[sercom.Sercom1](regs, mclk)
//	padout := spi.PadoutDI3DO0(
//		sercom.Sercom1Pad3(port.PB23{}),
//		sercom.Sercom1Pad0(port.PA00{}),
//		sercom.Sercom1Pad1(port.PA01{}),
//	)
//	bus := spi.New(clk, 4_000_000, spi.Mode0, block, padout)
//
// A pin that cannot serve a pad, or a pad tuple the hardware cannot route,
// does not compile. TryRead and TryWrite never block; Transfer and Tx poll
// them and make *Master usable as a tinygo.org/x/drivers.SPI.
package spi
