package spi

// Mode is the SPI clock mode: CPOL in bit 1, CPHA in bit 0.
type Mode uint8

const (
	Mode0 Mode = iota // CPOL=0 CPHA=0
	Mode1             // CPOL=0 CPHA=1
	Mode2             // CPOL=1 CPHA=0
	Mode3             // CPOL=1 CPHA=1
)

// Polarity reports whether SCK idles high.
func (m Mode) Polarity() bool { return m&2 != 0 }

// Phase reports whether data is sampled on the trailing edge.
func (m Mode) Phase() bool { return m&1 != 0 }

func (m Mode) Valid() bool { return m <= Mode3 }

func (m Mode) String() string {
	if !m.Valid() {
		return "Mode?"
	}
	return "Mode" + string(rune('0'+m))
}
