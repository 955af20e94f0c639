package errcode

import (
	"errors"
	"testing"
)

func TestCodesAreStableStrings(t *testing.T) {
	cases := map[string]error{
		"would_block":    WouldBlock,
		"overrun":        Overrun,
		"timeout":        Timeout,
		"invalid_params": InvalidParams,
		"invalid_pinout": InvalidPinout,
		"bus_in_use":     BusInUse,
		"unknown_bus":    UnknownBus,
		"unknown_pin":    UnknownPin,
	}
	for want, e := range cases {
		if e.Error() != want {
			t.Fatalf("code %q mismatch: got %q", want, e.Error())
		}
	}
}

func TestOf(t *testing.T) {
	if Of(nil) != OK {
		t.Fatalf("Of(nil) != OK")
	}
	if Of(Overrun) != Overrun {
		t.Fatalf("Of(Overrun) = %q", Of(Overrun))
	}
	wrapped := Wrap(Timeout, "spi.enable", nil)
	if Of(wrapped) != Timeout {
		t.Fatalf("Of(wrapped) = %q", Of(wrapped))
	}
	if Of(errors.New("boom")) != Error {
		t.Fatalf("plain errors should map to Error")
	}
}

func TestEMatchesCodeWithErrorsIs(t *testing.T) {
	err := error(&E{C: Timeout, Op: "spi.reset", Msg: "syncbusy.swrst"})
	if !errors.Is(err, Timeout) {
		t.Fatalf("errors.Is(E{Timeout}, Timeout) = false")
	}
	if errors.Is(err, Overrun) {
		t.Fatalf("errors.Is(E{Timeout}, Overrun) = true")
	}
	if got, want := err.Error(), "spi.reset: timeout: syncbusy.swrst"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestEFallsBackToWrappedError(t *testing.T) {
	err := Wrap(InvalidParams, "board.Parse", errors.New("yaml: bad"))
	if got, want := err.Error(), "board.Parse: invalid_params: yaml: bad"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestIsWouldBlock(t *testing.T) {
	if !IsWouldBlock(WouldBlock) {
		t.Fatal("WouldBlock not recognised")
	}
	if IsWouldBlock(Overrun) || IsWouldBlock(nil) {
		t.Fatal("false positive")
	}
}
