package conv

import "testing"

func TestHex(t *testing.T) {
	var buf [8]byte
	cases := []struct {
		n      uint32
		digits int
		want   string
	}{
		{0xA5, 2, "A5"},
		{0x5, 2, "05"},
		{0xDEADBEEF, 8, "DEADBEEF"},
		{0x1234, 2, "34"},
	}
	for _, c := range cases {
		if got := string(Hex(buf[:], c.n, c.digits)); got != c.want {
			t.Errorf("Hex(%#x, %d) = %q, want %q", c.n, c.digits, got, c.want)
		}
	}
	if got := Hex(buf[:1], 0xFF, 2); len(got) != 0 {
		t.Fatalf("short buffer gave %q", got)
	}
}

func TestAppend(t *testing.T) {
	got := AppendUint([]byte("at "), 255)
	got = append(got, ": "...)
	got = AppendByte(got, 0x0C)
	if string(got) != "at 255: 0C" {
		t.Fatalf("got %q", got)
	}
	var buf [20]byte
	if string(Utoa(buf[:], 0)) != "0" || string(Utoa(buf[:], 18446744073709551615)) != "18446744073709551615" {
		t.Fatal("Utoa")
	}
}
