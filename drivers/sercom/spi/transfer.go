package spi

import (
	"sercom-go/drivers/sercom"
	"sercom-go/errcode"
)

// TryRead returns the received byte if one is waiting.
//
// A set overrun flag is reported first, as errcode.Overrun, without touching
// DATA. The flag is sticky; see ClearOverrun. With nothing received the
// result is errcode.WouldBlock.
func (m *Master[S]) TryRead() (byte, error) {
	m.live()
	r := m.regs
	if sercom.HasBits(r.STATUS(), sercom.SPIM_STATUS_BUFOVF) {
		return 0, errcode.Overrun
	}
	if sercom.HasBits(r.INTFLAG(), sercom.SPIM_INTFLAG_RXC) {
		return byte(r.DATA().Get()), nil
	}
	return 0, errcode.WouldBlock
}

// TryWrite queues b for transmission if the data register is empty, and
// returns errcode.WouldBlock otherwise. Nothing is written when it blocks.
func (m *Master[S]) TryWrite(b byte) error {
	m.live()
	r := m.regs
	if !sercom.HasBits(r.INTFLAG(), sercom.SPIM_INTFLAG_DRE) {
		return errcode.WouldBlock
	}
	r.DATA().Set(uint32(b))
	return nil
}

// ClearOverrun acknowledges a reported overrun. TryRead and TryWrite never
// clear it themselves.
func (m *Master[S]) ClearOverrun() {
	m.live()
	m.regs.STATUS().Set(sercom.SPIM_STATUS_BUFOVF)
}
