// internal/platform/factories_atsamd51.go
//go:build atsamd51

package platform

import (
	"device/sam"
	"runtime/volatile"

	"sercom-go/drivers/sercom"
	"sercom-go/port"
)

// Name identifies the register backend.
const Name = "atsamd51-mmio"

var spimRegs = [sercom.Count]*sam.SERCOM_SPIM_Type{
	sam.SERCOM0_SPIM, sam.SERCOM1_SPIM, sam.SERCOM2_SPIM, sam.SERCOM3_SPIM,
	sam.SERCOM4_SPIM, sam.SERCOM5_SPIM, sam.SERCOM6_SPIM, sam.SERCOM7_SPIM,
}

// GCLK peripheral channel of each SERCOM core.
var coreChannel = [sercom.Count]uint8{7, 8, 23, 24, 34, 35, 36, 37}

// ---------------------------- SERCOM (MMIO) ----------------------------------

type mmioSPIM struct{ r *sam.SERCOM_SPIM_Type }

func (m mmioSPIM) CTRLA() sercom.Register[uint32]    { return &m.r.CTRLA }
func (m mmioSPIM) CTRLB() sercom.Register[uint32]    { return &m.r.CTRLB }
func (m mmioSPIM) BAUD() sercom.Register[uint8]      { return &m.r.BAUD }
func (m mmioSPIM) INTFLAG() sercom.Register[uint8]   { return &m.r.INTFLAG }
func (m mmioSPIM) STATUS() sercom.Register[uint16]   { return &m.r.STATUS }
func (m mmioSPIM) SYNCBUSY() sercom.Register[uint32] { return &m.r.SYNCBUSY }
func (m mmioSPIM) DATA() sercom.Register[uint32]     { return &m.r.DATA }

// ----------------------------- MCLK (MMIO) -----------------------------------

type mmioMCLK struct{}

func (mmioMCLK) APBMASK(bus sercom.APB) sercom.Register[uint32] {
	switch bus {
	case sercom.APBA:
		return &sam.MCLK.APBAMASK
	case sercom.APBB:
		return &sam.MCLK.APBBMASK
	case sercom.APBC:
		return &sam.MCLK.APBCMASK
	}
	return &sam.MCLK.APBDMASK
}

// ------------------------------ PORT (MMIO) ----------------------------------

type pmux struct{}

// SetFunction writes the pin's PMUX nibble and sets PINCFG.PMUXEN.
func (pmux) SetFunction(id port.ID, fn port.Function) {
	g := &sam.PORT.GROUP[id.Group()]
	i := id.Index()
	var pos uint8
	if i&1 != 0 {
		pos = 4
	}
	g.PMUX[i>>1].ReplaceBits(uint8(fn), 0xf, pos)
	g.PINCFG[i].SetBits(sam.PORT_GROUP_PINCFG_PMUXEN)
}

func spim(n uint8) sercom.SPIM { return mmioSPIM{spimRegs[n]} }
func mclk() sercom.APBMasks    { return mmioMCLK{} }
func muxer() port.Muxer        { return pmux{} }

// enableCoreClock routes GCLK1 to the SERCOM core channel.
func enableCoreClock(n uint8) {
	const gen1, chen = 1, 1 << 6
	ch := &sam.GCLK.PCHCTRL[coreChannel[n]]
	ch.Set(gen1 | chen)
	for !ch.HasBits(chen) {
	}
}

var _ sercom.Register[uint8] = (*volatile.Register8)(nil)
