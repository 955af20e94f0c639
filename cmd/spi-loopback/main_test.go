//go:build !atsamd51

package main

import (
	"strings"
	"testing"

	"github.com/sigurn/crc8"

	"sercom-go/drivers/sercom"
	"sercom-go/drivers/sercom/spi"
	"sercom-go/internal/sim"
	"sercom-go/port"
)

func newBus(t *testing.T, regs *sim.SPIM) *spi.Master[sercom.Sercom2] {
	t.Helper()
	b, err := sercom.Claim[sercom.Sercom2](regs, sim.NewMCLK())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(b.Release)
	p := spi.PadoutDI2DO0(
		sercom.Sercom2Pad2(port.PA14{}),
		sercom.Sercom2Pad0(port.PA12{}),
		sercom.Sercom2Pad1(port.PA13{}),
	)
	m := spi.New(spi.ClockHz(48_000_000), 4_000_000, spi.Mode0, b, p)
	t.Cleanup(func() { m.Free() })
	return m
}

func TestLoopbackPasses(t *testing.T) {
	sum, err := loopback(newBus(t, sim.NewSPIM()))
	if err != nil {
		t.Fatal(err)
	}
	var frame [256]byte
	for i := range frame {
		frame[i] = byte(i)
	}
	if want := crc8.Checksum(frame[:], crc8.MakeTable(crc8.CRC8_MAXIM)); sum != want {
		t.Fatalf("crc %#x, want %#x", sum, want)
	}
}

func TestLoopbackDetectsCorruption(t *testing.T) {
	regs := sim.NewSPIM()
	regs.Peer = func(b byte) byte {
		if b == 0x80 {
			return 0x81
		}
		return b
	}
	_, err := loopback(newBus(t, regs))
	if err == nil {
		t.Fatal("corrupted echo passed")
	}
	if want := "loopback: error: byte 128: sent 80 got 81"; err.Error() != want {
		t.Fatalf("err = %q, want %q", err, want)
	}
}

func TestLoopbackChecksTrailer(t *testing.T) {
	regs := sim.NewSPIM()
	n := 0
	regs.Peer = func(b byte) byte {
		n++
		if n == 257 {
			return b ^ 0x01
		}
		return b
	}
	sum, err := loopback(newBus(t, regs))
	if err == nil {
		t.Fatal("corrupted trailer passed")
	}
	if !strings.HasPrefix(err.Error(), "loopback: error: crc trailer ") {
		t.Fatalf("err = %q", err)
	}
	got := regs.Sent()
	if len(got) != 257 {
		t.Fatalf("sent %d bytes", len(got))
	}
	if got[256] != sum {
		t.Fatalf("trailer %#x, want %#x", got[256], sum)
	}
}
