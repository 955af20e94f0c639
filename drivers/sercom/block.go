package sercom

import (
	"sync"

	"sercom-go/errcode"
)

var (
	claimMu sync.Mutex
	claimed uint8

	// MCLK APBxMASK registers are shared with every other peripheral.
	gateMu sync.Mutex
)

// Block is the single owner of one SERCOM register block. Holding a *Block[S]
// is the only way to drive instance S.
type Block[S Instance] struct {
	regs     SPIM
	mclk     APBMasks
	released bool
}

// Claim takes ownership of instance S. A second claim before Release fails
// with errcode.BusInUse.
func Claim[S Instance](regs SPIM, mclk APBMasks) (*Block[S], error) {
	if regs == nil || mclk == nil {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "sercom.Claim", Msg: "nil registers"}
	}
	var s S
	bit := uint8(1) << s.Num()

	claimMu.Lock()
	defer claimMu.Unlock()
	if claimed&bit != 0 {
		return nil, &errcode.E{C: errcode.BusInUse, Op: "sercom.Claim", Msg: Name[S]()}
	}
	claimed |= bit
	return &Block[S]{regs: regs, mclk: mclk}, nil
}

// Release returns the claim. The block must not be used afterwards.
func (b *Block[S]) Release() {
	b.mustLive()
	var s S
	claimMu.Lock()
	claimed &^= uint8(1) << s.Num()
	claimMu.Unlock()
	b.released = true
}

// Released reports whether Release has been called.
func (b *Block[S]) Released() bool { return b.released }

// SPIM returns the SPI-master register view.
func (b *Block[S]) SPIM() SPIM {
	b.mustLive()
	return b.regs
}

// EnableBusClock sets this instance's bit in its MCLK APB mask. Bits owned by
// other peripherals are preserved.
func (b *Block[S]) EnableBusClock() {
	b.mustLive()
	var s S
	g := s.Gate()
	gateMu.Lock()
	SetBits(b.mclk.APBMASK(g.Bus), g.Mask())
	gateMu.Unlock()
}

func (b *Block[S]) mustLive() {
	if b == nil || b.released {
		panic("sercom: use of released block")
	}
}
