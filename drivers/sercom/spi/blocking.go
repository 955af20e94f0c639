package spi

import (
	"tinygo.org/x/drivers"

	"sercom-go/drivers/sercom"
	"sercom-go/errcode"
)

var _ drivers.SPI = (*Master[sercom.Sercom1])(nil)

// Transfer writes b and returns the byte clocked in alongside it.
func (m *Master[S]) Transfer(b byte) (byte, error) {
	if err := m.poll("spi.Transfer", func() error { return m.TryWrite(b) }); err != nil {
		return 0, err
	}
	var in byte
	err := m.poll("spi.Transfer", func() (err error) {
		in, err = m.TryRead()
		return err
	})
	return in, err
}

// Tx exchanges w for r one byte at a time. Either slice may be nil; a nil w
// sends zeros. When both are set they must be the same length.
func (m *Master[S]) Tx(w, r []byte) error {
	if w != nil && r != nil && len(w) != len(r) {
		return ErrLength
	}
	n := max(len(w), len(r))
	for i := 0; i < n; i++ {
		var out byte
		if w != nil {
			out = w[i]
		}
		in, err := m.Transfer(out)
		if err != nil {
			return err
		}
		if r != nil {
			r[i] = in
		}
	}
	return nil
}

// poll retries f while it would block, up to the sync limit.
func (m *Master[S]) poll(op string, f func() error) error {
	for n := uint32(0); ; n++ {
		err := f()
		if !errcode.IsWouldBlock(err) {
			return err
		}
		if m.limit != 0 && n+1 >= m.limit {
			return &errcode.E{C: errcode.Timeout, Op: op, Msg: "would block"}
		}
	}
}
