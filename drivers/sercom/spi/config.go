package spi

import "sercom-go/errcode"

var (
	// Sentinel errors (TinyGo-safe; no fmt)
	ErrZeroFrequency = &errcode.E{C: errcode.InvalidParams, Op: "spi.Config", Msg: "frequency must be non-zero"}
	ErrBadMode       = &errcode.E{C: errcode.InvalidParams, Op: "spi.Config", Msg: "mode must be 0..3"}
	ErrLength        = &errcode.E{C: errcode.InvalidParams, Op: "spi.Tx", Msg: "w and r lengths differ"}
)

// Config is the input to Configure.
type Config struct {
	Frequency uint32 // SCK target in Hz
	Mode      Mode
	// SyncLimit bounds every busy-wait, in polls. Zero waits forever.
	SyncLimit uint32
}

// DefaultConfig is 1 MHz, Mode0, unbounded waits.
func DefaultConfig() Config {
	return Config{Frequency: 1_000_000, Mode: Mode0}
}

func (c Config) Validate() error {
	if c.Frequency == 0 {
		return ErrZeroFrequency
	}
	if !c.Mode.Valid() {
		return ErrBadMode
	}
	return nil
}
