// Command spi-loopback brings up SERCOM1 on the ItsyBitsy M4 SPI pins and
// checks that every byte value comes back. On hardware, jumper MOSI (PA00) to
// MISO (PB23); on a host build the simulator loops them.
package main

import (
	"github.com/sigurn/crc8"
	"tinygo.org/x/drivers"

	"sercom-go/drivers/sercom"
	"sercom-go/drivers/sercom/spi"
	"sercom-go/errcode"
	"sercom-go/internal/platform"
	"sercom-go/port"
	"sercom-go/x/conv"
)

var crcTable = crc8.MakeTable(crc8.CRC8_MAXIM)

// Rates exercised after bring-up, through SetBaud.
var rates = []uint32{1_000_000, 12_000_000}

func main() {
	println("[loopback] boot …", platform.Name)
	platform.Setup()

	block, err := platform.Claim[sercom.Sercom1]()
	if err != nil {
		println("[loopback] FAIL: claim:", err.Error())
		return
	}
	padout := spi.PadoutDI3DO0(
		sercom.Sercom1Pad3(port.PB23{}),
		sercom.Sercom1Pad0(port.PA00{}),
		sercom.Sercom1Pad1(port.PA01{}),
	)
	dipo, dopo := padout.DipoDopo()
	println("[loopback] SERCOM1 DIPO=", dipo, "DOPO=", dopo)

	clk := platform.Clock(1)
	cfg := spi.DefaultConfig()
	cfg.Frequency = 4_000_000
	cfg.SyncLimit = 100_000
	bus, err := spi.Configure(clk, cfg, block, padout)
	if err != nil {
		println("[loopback] FAIL: configure:", err.Error())
		block.Release()
		return
	}

	ok := report(cfg.Frequency, clk, bus)
	for _, hz := range rates {
		if err := bus.SetBaud(hz, clk); err != nil {
			println("[loopback] FAIL: SetBaud", hz, err.Error())
			ok = false
			break
		}
		ok = report(hz, clk, bus) && ok
	}

	_, block = bus.Free()
	block.Release()
	if ok {
		println("[loopback] PASS")
	} else {
		println("[loopback] FAIL")
	}
}

func report(hz uint32, clk spi.Clock, bus drivers.SPI) bool {
	sck := spi.OutputFrequency(spi.Baud(hz, clk.Freq()), clk.Freq())
	sum, err := loopback(bus)
	if err != nil {
		println("[loopback] SCK", sck, "Hz:", err.Error())
		return false
	}
	println("[loopback] SCK", sck, "Hz: 256 bytes and crc8 ok,", sum)
	return true
}

// loopback sends all 256 byte values followed by their CRC-8/MAXIM in one Tx
// and checks the echo: every payload byte must match, and the echoed trailer
// must be the CRC of the echoed payload. It returns that CRC.
func loopback(bus drivers.SPI) (uint8, error) {
	var w, r [257]byte
	for i := 0; i < 256; i++ {
		w[i] = byte(i)
	}
	w[256] = crc8.Checksum(w[:256], crcTable)
	if err := bus.Tx(w[:], r[:]); err != nil {
		return 0, err
	}
	sum := crc8.Checksum(r[:256], crcTable)
	for i := 0; i < 256; i++ {
		if w[i] != r[i] {
			return sum, &errcode.E{C: errcode.Error, Op: "loopback", Msg: mismatch(i, w[i], r[i])}
		}
	}
	if r[256] != sum {
		msg := conv.AppendByte([]byte("crc trailer "), r[256])
		msg = conv.AppendByte(append(msg, ", payload "...), sum)
		return sum, &errcode.E{C: errcode.Error, Op: "loopback", Msg: string(msg)}
	}
	return sum, nil
}

// mismatch reads "byte 128: sent 80 got 81".
func mismatch(i int, sent, got byte) string {
	msg := append([]byte("byte "), conv.AppendUint(nil, uint64(i))...)
	msg = append(msg, ": sent "...)
	msg = conv.AppendByte(msg, sent)
	msg = append(msg, " got "...)
	msg = conv.AppendByte(msg, got)
	return string(msg)
}
