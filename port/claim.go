package port

import (
	"sync"

	"sercom-go/errcode"
)

var (
	claimMu sync.Mutex
	claimed [4]uint32 // one bit per pin, indexed by group
)

// Claim takes ownership of every pin in ids, or of none of them. A pin that
// is already held, or named twice, fails with errcode.PinInUse. NoPin is
// skipped.
func Claim(ids ...ID) error {
	claimMu.Lock()
	defer claimMu.Unlock()
	var want [4]uint32
	for _, id := range ids {
		if id == NoPin {
			continue
		}
		g, bit := id.Group(), uint32(1)<<id.Index()
		if g > 3 {
			return &errcode.E{C: errcode.UnknownPin, Op: "port.Claim", Msg: id.String()}
		}
		if (claimed[g]|want[g])&bit != 0 {
			return &errcode.E{C: errcode.PinInUse, Op: "port.Claim", Msg: id.String()}
		}
		want[g] |= bit
	}
	for g := range claimed {
		claimed[g] |= want[g]
	}
	return nil
}

// Release gives back the pins in ids. Pins not held are ignored.
func Release(ids ...ID) {
	claimMu.Lock()
	defer claimMu.Unlock()
	for _, id := range ids {
		if g := id.Group(); id != NoPin && g <= 3 {
			claimed[g] &^= 1 << id.Index()
		}
	}
}

// Claimed reports whether id is held.
func Claimed(id ID) bool {
	if id == NoPin || id.Group() > 3 {
		return false
	}
	claimMu.Lock()
	defer claimMu.Unlock()
	return claimed[id.Group()]&(1<<id.Index()) != 0
}
