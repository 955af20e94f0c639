package port

// Sealed pad capability sets, one per (SERCOM instance, pad).

type (
	Sercom0Pad0 interface {
		Pin
		Sercom0Pad0() Function
	}
	Sercom0Pad1 interface {
		Pin
		Sercom0Pad1() Function
	}
	Sercom0Pad2 interface {
		Pin
		Sercom0Pad2() Function
	}
	Sercom0Pad3 interface {
		Pin
		Sercom0Pad3() Function
	}
	Sercom1Pad0 interface {
		Pin
		Sercom1Pad0() Function
	}
	Sercom1Pad1 interface {
		Pin
		Sercom1Pad1() Function
	}
	Sercom1Pad2 interface {
		Pin
		Sercom1Pad2() Function
	}
	Sercom1Pad3 interface {
		Pin
		Sercom1Pad3() Function
	}
	Sercom2Pad0 interface {
		Pin
		Sercom2Pad0() Function
	}
	Sercom2Pad1 interface {
		Pin
		Sercom2Pad1() Function
	}
	Sercom2Pad2 interface {
		Pin
		Sercom2Pad2() Function
	}
	Sercom2Pad3 interface {
		Pin
		Sercom2Pad3() Function
	}
	Sercom3Pad0 interface {
		Pin
		Sercom3Pad0() Function
	}
	Sercom3Pad1 interface {
		Pin
		Sercom3Pad1() Function
	}
	Sercom3Pad2 interface {
		Pin
		Sercom3Pad2() Function
	}
	Sercom3Pad3 interface {
		Pin
		Sercom3Pad3() Function
	}
	Sercom4Pad0 interface {
		Pin
		Sercom4Pad0() Function
	}
	Sercom4Pad1 interface {
		Pin
		Sercom4Pad1() Function
	}
	Sercom4Pad2 interface {
		Pin
		Sercom4Pad2() Function
	}
	Sercom4Pad3 interface {
		Pin
		Sercom4Pad3() Function
	}
	Sercom5Pad0 interface {
		Pin
		Sercom5Pad0() Function
	}
	Sercom5Pad1 interface {
		Pin
		Sercom5Pad1() Function
	}
	Sercom5Pad2 interface {
		Pin
		Sercom5Pad2() Function
	}
	Sercom5Pad3 interface {
		Pin
		Sercom5Pad3() Function
	}
	Sercom6Pad0 interface {
		Pin
		Sercom6Pad0() Function
	}
	Sercom6Pad1 interface {
		Pin
		Sercom6Pad1() Function
	}
	Sercom6Pad2 interface {
		Pin
		Sercom6Pad2() Function
	}
	Sercom6Pad3 interface {
		Pin
		Sercom6Pad3() Function
	}
	Sercom7Pad0 interface {
		Pin
		Sercom7Pad0() Function
	}
	Sercom7Pad1 interface {
		Pin
		Sercom7Pad1() Function
	}
	Sercom7Pad2 interface {
		Pin
		Sercom7Pad2() Function
	}
	Sercom7Pad3 interface {
		Pin
		Sercom7Pad3() Function
	}
)
