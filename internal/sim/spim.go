package sim

import (
	"sercom-go/drivers/sercom"
	"sercom-go/x/conv"
)

// DefaultSyncPolls is how many SYNCBUSY reads a synchronised write stays busy.
const DefaultSyncPolls = 2

// Event kinds recorded by SPIM.
const (
	EvReset     = "swrst"
	EvEnable    = "enable"
	EvDisable   = "disable"
	EvBaud      = "baud"
	EvProtected = "protected" // write to an enable-protected register while enabled
)

// Event is one notable register access.
type Event struct {
	Kind  string
	Value uint32
}

func (e Event) String() string {
	switch e.Kind {
	case EvBaud, EvProtected:
		return string(conv.AppendUint([]byte(e.Kind+"="), uint64(e.Value)))
	}
	return e.Kind
}

// State is a snapshot of the programmer-visible registers.
type State struct {
	CTRLA   uint32
	CTRLB   uint32
	BAUD    uint8
	INTFLAG uint8
	STATUS  uint16
}

const (
	syncSWRST = iota
	syncENABLE
	syncCTRLB
)

// SPIM models one SERCOM in SPI master mode.
//
// A write to DATA starts a shift; the shift completes on the next INTFLAG
// read. A completed byte lands in the receive register and raises RXC, or, if
// the previous byte was never read, is dropped and STATUS.BUFOVF is set.
type SPIM struct {
	// SyncPolls overrides DefaultSyncPolls when non-zero.
	SyncPolls int
	// Peer answers each byte shifted out. Nil loops MOSI back to MISO.
	Peer func(mosi byte) byte

	ctrla   uint32
	ctrlb   uint32
	baud    uint8
	intflag uint8
	status  uint16
	rx      uint8

	shifting bool
	tx       uint8
	busy     [3]int // polls left per SYNCBUSY bit; -1 is stuck
	stalled  uint32
	held     uint32

	writes int
	events []Event
	sent   []byte

	rCTRLA, rCTRLB, rSYNCBUSY, rDATA hookReg[uint32]
	rBAUD, rINTFLAG                  hookReg[uint8]
	rSTATUS                          hookReg[uint16]
}

// NewSPIM returns a SERCOM at its reset state.
func NewSPIM() *SPIM {
	s := &SPIM{}
	s.rCTRLA = hookReg[uint32]{s.getCTRLA, s.setCTRLA}
	s.rCTRLB = hookReg[uint32]{func() uint32 { return s.ctrlb }, s.setCTRLB}
	s.rSYNCBUSY = hookReg[uint32]{s.getSYNCBUSY, func(uint32) { s.writes++ }}
	s.rDATA = hookReg[uint32]{s.getDATA, s.setDATA}
	s.rBAUD = hookReg[uint8]{func() uint8 { return s.baud }, s.setBAUD}
	s.rINTFLAG = hookReg[uint8]{s.getINTFLAG, s.setINTFLAG}
	s.rSTATUS = hookReg[uint16]{func() uint16 { return s.status }, s.setSTATUS}
	return s
}

func (s *SPIM) CTRLA() sercom.Register[uint32]    { return s.rCTRLA }
func (s *SPIM) CTRLB() sercom.Register[uint32]    { return s.rCTRLB }
func (s *SPIM) BAUD() sercom.Register[uint8]      { return s.rBAUD }
func (s *SPIM) INTFLAG() sercom.Register[uint8]   { return s.rINTFLAG }
func (s *SPIM) STATUS() sercom.Register[uint16]   { return s.rSTATUS }
func (s *SPIM) SYNCBUSY() sercom.Register[uint32] { return s.rSYNCBUSY }
func (s *SPIM) DATA() sercom.Register[uint32]     { return s.rDATA }

// ---- inspection and fault injection ----

// Writes counts register writes of any kind.
func (s *SPIM) Writes() int { return s.writes }

// Events returns the recorded events in order.
func (s *SPIM) Events() []Event { return append([]Event(nil), s.events...) }

// ClearEvents drops the event log.
func (s *SPIM) ClearEvents() { s.events = s.events[:0] }

// Sent returns every byte shifted out on MOSI.
func (s *SPIM) Sent() []byte { return append([]byte(nil), s.sent...) }

// State returns a snapshot of the registers without side effects.
func (s *SPIM) State() State {
	return State{CTRLA: s.getCTRLA(), CTRLB: s.ctrlb, BAUD: s.baud, INTFLAG: s.intflag, STATUS: s.status}
}

// Enabled reports CTRLA.ENABLE.
func (s *SPIM) Enabled() bool { return s.ctrla&sercom.SPIM_CTRLA_ENABLE != 0 }

// ForceOverrun sets STATUS.BUFOVF.
func (s *SPIM) ForceOverrun() { s.status |= sercom.SPIM_STATUS_BUFOVF }

// SetIntFlag raises INTFLAG bits directly.
func (s *SPIM) SetIntFlag(mask uint8) { s.intflag |= mask }

// ClearIntFlag drops INTFLAG bits directly.
func (s *SPIM) ClearIntFlag(mask uint8) { s.intflag &^= mask }

// Stall makes the given SYNCBUSY bits stick once their sync starts.
func (s *SPIM) Stall(mask uint32) {
	s.stalled |= mask
	for i := range s.busy {
		if mask&(1<<i) != 0 && s.busy[i] > 0 {
			s.busy[i] = -1
		}
	}
}

// Hold makes the given SYNCBUSY bits read as set from now on, whether or not
// a sync is running. Reset does not clear them.
func (s *SPIM) Hold(mask uint32) { s.held |= mask }

// Unstall lets stuck and held SYNCBUSY bits finish.
func (s *SPIM) Unstall() {
	s.stalled, s.held = 0, 0
	for i := range s.busy {
		if s.busy[i] < 0 {
			s.busy[i] = 0
		}
	}
}

// ---- register behaviour ----

func (s *SPIM) startSync(bit int) {
	if s.stalled&(1<<bit) != 0 {
		s.busy[bit] = -1
		return
	}
	n := s.SyncPolls
	if n == 0 {
		n = DefaultSyncPolls
	}
	s.busy[bit] = n
}

func (s *SPIM) record(kind string, v uint32) { s.events = append(s.events, Event{kind, v}) }

func (s *SPIM) getCTRLA() uint32 {
	if s.busy[syncSWRST] != 0 {
		return s.ctrla | sercom.SPIM_CTRLA_SWRST
	}
	return s.ctrla
}

func (s *SPIM) setCTRLA(v uint32) {
	s.writes++
	if v&sercom.SPIM_CTRLA_SWRST != 0 {
		s.ctrla, s.ctrlb, s.baud, s.intflag, s.status, s.rx = 0, 0, 0, 0, 0, 0
		s.shifting = false
		s.busy = [3]int{}
		s.startSync(syncSWRST)
		s.record(EvReset, 0)
		return
	}
	old := s.ctrla
	const en = sercom.SPIM_CTRLA_ENABLE
	if old&en != 0 && (old^v)&^en != 0 {
		// Enable-protected bits keep their value.
		s.record(EvProtected, v)
		v = old&^en | v&en
	}
	s.ctrla = v
	if (old^v)&en == 0 {
		return
	}
	s.startSync(syncENABLE)
	if v&en != 0 {
		s.intflag |= sercom.SPIM_INTFLAG_DRE
		s.record(EvEnable, 0)
	} else {
		s.intflag = 0
		s.shifting = false
		s.record(EvDisable, 0)
	}
}

func (s *SPIM) setCTRLB(v uint32) {
	s.writes++
	s.ctrlb = v
	s.startSync(syncCTRLB)
}

func (s *SPIM) setBAUD(v uint8) {
	s.writes++
	if s.Enabled() {
		s.record(EvProtected, uint32(v))
		return
	}
	s.baud = v
	s.record(EvBaud, uint32(v))
}

func (s *SPIM) getSYNCBUSY() uint32 {
	bits := s.held
	for i := range s.busy {
		switch {
		case s.busy[i] > 0:
			bits |= 1 << i
			s.busy[i]--
		case s.busy[i] < 0:
			bits |= 1 << i
		}
	}
	return bits
}

func (s *SPIM) getINTFLAG() uint8 {
	if s.shifting {
		s.shifting = false
		miso := s.tx
		if s.Peer != nil {
			miso = s.Peer(s.tx)
		}
		if s.ctrlb&sercom.SPIM_CTRLB_RXEN != 0 {
			if s.intflag&sercom.SPIM_INTFLAG_RXC != 0 {
				s.status |= sercom.SPIM_STATUS_BUFOVF
			} else {
				s.rx = miso
				s.intflag |= sercom.SPIM_INTFLAG_RXC
			}
		}
		s.intflag |= sercom.SPIM_INTFLAG_DRE | sercom.SPIM_INTFLAG_TXC
	}
	return s.intflag
}

func (s *SPIM) setINTFLAG(v uint8) {
	s.writes++
	s.intflag &^= v & sercom.SPIM_INTFLAG_TXC
}

func (s *SPIM) setSTATUS(v uint16) {
	s.writes++
	s.status &^= v & sercom.SPIM_STATUS_BUFOVF
}

func (s *SPIM) getDATA() uint32 {
	s.intflag &^= sercom.SPIM_INTFLAG_RXC
	return uint32(s.rx)
}

func (s *SPIM) setDATA(v uint32) {
	s.writes++
	if !s.Enabled() || s.intflag&sercom.SPIM_INTFLAG_DRE == 0 {
		return
	}
	s.tx = uint8(v)
	s.sent = append(s.sent, s.tx)
	s.shifting = true
	s.intflag &^= sercom.SPIM_INTFLAG_DRE | sercom.SPIM_INTFLAG_TXC
}
