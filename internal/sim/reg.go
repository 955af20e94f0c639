// internal/sim/reg.go

// Package sim is a register-level model of the SAMD51 SERCOM SPI master and
// the MCLK bus-clock masks. It backs host tests and host runs of the tools.
package sim

import "golang.org/x/exp/constraints"

// Reg is a plain memory register.
type Reg[T constraints.Unsigned] struct{ V T }

func (r *Reg[T]) Get() T  { return r.V }
func (r *Reg[T]) Set(v T) { r.V = v }

// hookReg forwards accesses to the owning model so reads and writes can have
// side effects.
type hookReg[T constraints.Unsigned] struct {
	get func() T
	set func(T)
}

func (h hookReg[T]) Get() T  { return h.get() }
func (h hookReg[T]) Set(v T) { h.set(v) }
