package sim

import (
	"sync"

	"sercom-go/drivers/sercom"
	"sercom-go/port"
)

// APB mask reset values (SAMD51 datasheet, MCLK).
const (
	ResetAPBAMASK = 0x000007FF
	ResetAPBBMASK = 0x00018056
	ResetAPBCMASK = 0x00002080
	ResetAPBDMASK = 0x00000000
)

// MCLK models the four APBxMASK registers.
type MCLK struct {
	Mask [4]Reg[uint32]
}

// NewMCLK returns an MCLK at its reset state.
func NewMCLK() *MCLK {
	m := &MCLK{}
	m.Mask[sercom.APBA].V = ResetAPBAMASK
	m.Mask[sercom.APBB].V = ResetAPBBMASK
	m.Mask[sercom.APBC].V = ResetAPBCMASK
	m.Mask[sercom.APBD].V = ResetAPBDMASK
	return m
}

func (m *MCLK) APBMASK(bus sercom.APB) sercom.Register[uint32] { return &m.Mask[bus] }

// Mux records the mux function selected for each pin.
type Mux struct {
	mu  sync.Mutex
	set map[port.ID]port.Function
}

func NewMux() *Mux { return &Mux{set: map[port.ID]port.Function{}} }

func (m *Mux) SetFunction(id port.ID, fn port.Function) {
	m.mu.Lock()
	m.set[id] = fn
	m.mu.Unlock()
}

// Function returns the function last selected for id.
func (m *Mux) Function(id port.ID) (port.Function, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn, ok := m.set[id]
	return fn, ok
}
