// internal/platform/factories_host.go
//go:build !atsamd51

package platform

import (
	"sync"

	"sercom-go/drivers/sercom"
	"sercom-go/internal/sim"
	"sercom-go/port"
)

// Name identifies the register backend.
const Name = "host-sim"

var (
	hostMu    sync.Mutex
	hostSPIMs [sercom.Count]*sim.SPIM
	hostMCLK  = sim.NewMCLK()
	hostMux   = sim.NewMux()
)

// Sim returns the simulated SERCOM n, creating it on first use.
func Sim(n uint8) *sim.SPIM {
	hostMu.Lock()
	defer hostMu.Unlock()
	if hostSPIMs[n] == nil {
		hostSPIMs[n] = sim.NewSPIM()
	}
	return hostSPIMs[n]
}

// SimMCLK returns the simulated bus-clock masks.
func SimMCLK() *sim.MCLK { return hostMCLK }

// SimMux returns the recording pin-mux backend.
func SimMux() *sim.Mux { return hostMux }

func spim(n uint8) sercom.SPIM { return Sim(n) }
func mclk() sercom.APBMasks    { return hostMCLK }
func muxer() port.Muxer        { return hostMux }
func enableCoreClock(uint8)    {}
