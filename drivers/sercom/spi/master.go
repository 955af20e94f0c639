package spi

import (
	"sercom-go/drivers/sercom"
	"sercom-go/errcode"
	"sercom-go/port"
)

// Master is a SERCOM running as SPI master. It owns its register block and
// pads until Free.
type Master[S sercom.Instance] struct {
	block  *sercom.Block[S]
	regs   sercom.SPIM
	padout Padout[S]
	limit  uint32 // polls per wait; 0 is unbounded
	freed  bool
}

// New brings up instance S as an SPI master at freq and mode. Waits on the
// hardware are unbounded. The padout's pins are held until Free. It panics
// if padout is the zero value or one of its pins is held by another master.
func New[S sercom.Instance](clk Clock, freq uint32, mode Mode, block *sercom.Block[S], padout Padout[S]) *Master[S] {
	m, err := newMaster(block, padout, 0)
	if err != nil {
		panic("spi: " + err.Error())
	}
	_ = m.init(clk, freq, mode) // unbounded waits cannot time out
	return m
}

// Configure is New with a validated Config. A pin held elsewhere fails with
// errcode.PinInUse. When cfg.SyncLimit is set, a hardware wait that outlasts
// it returns errcode.Timeout. On any error the block and pins stay with the
// caller.
func Configure[S sercom.Instance](clk Clock, cfg Config, block *sercom.Block[S], padout Padout[S]) (*Master[S], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m, err := newMaster(block, padout, cfg.SyncLimit)
	if err != nil {
		return nil, err
	}
	if err := m.init(clk, cfg.Frequency, cfg.Mode); err != nil {
		port.Release(padout.ids()...)
		return nil, err
	}
	return m, nil
}

func newMaster[S sercom.Instance](block *sercom.Block[S], padout Padout[S], limit uint32) (*Master[S], error) {
	if !padout.Valid() {
		panic("spi: invalid padout")
	}
	regs := block.SPIM()
	if err := port.Claim(padout.ids()...); err != nil {
		return nil, err
	}
	return &Master[S]{block: block, regs: regs, padout: padout, limit: limit}, nil
}

func (m *Master[S]) init(clk Clock, freq uint32, mode Mode) error {
	r := m.regs
	m.block.EnableBusClock()

	sercom.SetBits(r.CTRLA(), sercom.SPIM_CTRLA_SWRST)
	if err := m.wait("spi.reset", "swrst", func() bool {
		return !sercom.HasBits(r.SYNCBUSY(), sercom.SPIM_SYNCBUSY_SWRST) &&
			!sercom.HasBits(r.CTRLA(), sercom.SPIM_CTRLA_SWRST)
	}); err != nil {
		return err
	}

	sercom.ReplaceBits(r.CTRLA(), sercom.SPIM_CTRLA_MODE_SPIM, sercom.SPIM_CTRLA_MODE_Msk, sercom.SPIM_CTRLA_MODE_Pos)
	if err := m.waitEnable("spi.mode"); err != nil {
		return err
	}

	// 8-bit characters, receiver on.
	ctrlb := uint32(sercom.SPIM_CTRLB_RXEN)
	if m.padout.HardwareCS() {
		ctrlb |= sercom.SPIM_CTRLB_MSSEN
	}
	r.CTRLB().Set(ctrlb)
	if err := m.wait("spi.ctrlb", "syncbusy.ctrlb", func() bool {
		return !sercom.HasBits(r.SYNCBUSY(), sercom.SPIM_SYNCBUSY_CTRLB)
	}); err != nil {
		return err
	}

	r.BAUD().Set(Baud(freq, clk.Freq()))

	dipo, dopo := m.padout.DipoDopo()
	ctrla := r.CTRLA().Get() &^ (sercom.SPIM_CTRLA_CPOL | sercom.SPIM_CTRLA_CPHA | sercom.SPIM_CTRLA_DORD |
		sercom.SPIM_CTRLA_DIPO_Msk<<sercom.SPIM_CTRLA_DIPO_Pos |
		sercom.SPIM_CTRLA_DOPO_Msk<<sercom.SPIM_CTRLA_DOPO_Pos)
	if mode.Polarity() {
		ctrla |= sercom.SPIM_CTRLA_CPOL
	}
	if mode.Phase() {
		ctrla |= sercom.SPIM_CTRLA_CPHA
	}
	ctrla |= uint32(dipo)<<sercom.SPIM_CTRLA_DIPO_Pos | uint32(dopo)<<sercom.SPIM_CTRLA_DOPO_Pos
	r.CTRLA().Set(ctrla)

	sercom.SetBits(r.CTRLA(), sercom.SPIM_CTRLA_ENABLE)
	return m.waitEnable("spi.enable")
}

// SetBaud changes the SCK rate. The peripheral is disabled while BAUD is
// written and re-enabled afterwards. If a wait times out the Master may be
// left disabled; calling SetBaud again once the hardware settles re-enables
// it, and Free is always safe.
func (m *Master[S]) SetBaud(freq uint32, clk Clock) error {
	m.live()
	r := m.regs
	sercom.ClearBits(r.CTRLA(), sercom.SPIM_CTRLA_ENABLE)
	if err := m.waitEnable("spi.disable"); err != nil {
		return err
	}
	r.BAUD().Set(Baud(freq, clk.Freq()))
	sercom.SetBits(r.CTRLA(), sercom.SPIM_CTRLA_ENABLE)
	return m.waitEnable("spi.enable")
}

// Free gives back the pads and the register block and releases the pins.
// The peripheral is left as it is; the next owner resets it. m must not be
// used afterwards.
func (m *Master[S]) Free() (Padout[S], *sercom.Block[S]) {
	m.live()
	m.freed = true
	p, b := m.padout, m.block
	port.Release(p.ids()...)
	m.padout, m.block, m.regs = Padout[S]{}, nil, nil
	return p, b
}

func (m *Master[S]) live() {
	if m.freed {
		panic("spi: use after Free")
	}
}

func (m *Master[S]) waitEnable(op string) error {
	return m.wait(op, "syncbusy.enable", func() bool {
		return !sercom.HasBits(m.regs.SYNCBUSY(), sercom.SPIM_SYNCBUSY_ENABLE)
	})
}

// wait polls done until it reports true or the sync limit runs out.
func (m *Master[S]) wait(op, what string, done func() bool) error {
	for n := uint32(0); !done(); n++ {
		if m.limit != 0 && n >= m.limit {
			return &errcode.E{C: errcode.Timeout, Op: op, Msg: what}
		}
	}
	return nil
}
