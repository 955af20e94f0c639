//go:build !atsamd51

package platform

import (
	"errors"
	"testing"

	"sercom-go/drivers/sercom"
	"sercom-go/errcode"
	"sercom-go/port"
)

func TestHostClaimUsesSimulator(t *testing.T) {
	b, err := Claim[sercom.Sercom2]()
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	defer b.Release()
	if b.SPIM() != sercom.SPIM(Sim(2)) {
		t.Fatal("block not backed by Sim(2)")
	}
	if _, err := Claim[sercom.Sercom2](); !errors.Is(err, errcode.BusInUse) {
		t.Fatalf("second claim err = %v", err)
	}
	b.EnableBusClock()
	if SimMCLK().Mask[sercom.APBB].V&(1<<9) == 0 {
		t.Fatal("SERCOM2 gate not set")
	}
}

func TestSetupInstallsMux(t *testing.T) {
	Setup()
	defer port.SetMuxer(nil)
	sercom.Sercom2Pad0(port.PA12{})
	if fn, ok := SimMux().Function(port.PortA + 12); !ok || fn != port.FunctionC {
		t.Fatalf("PA12 mux = %v,%v", fn, ok)
	}
	if Clock(2).Freq() != CoreClockHz {
		t.Fatal("clock")
	}
}
