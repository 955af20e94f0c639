package port

// SAMD51 pins that carry a SERCOM pad. Each method names a role from the
// I/O multiplexing table and returns the mux function that selects it.

type PA00 struct{ pin }

func (PA00) ID() ID                { return PortA }
func (PA00) Sercom1Pad0() Function { return FunctionD }

type PA01 struct{ pin }

func (PA01) ID() ID                { return PortA + 1 }
func (PA01) Sercom1Pad1() Function { return FunctionD }

type PA04 struct{ pin }

func (PA04) ID() ID                { return PortA + 4 }
func (PA04) Sercom0Pad0() Function { return FunctionD }

type PA05 struct{ pin }

func (PA05) ID() ID                { return PortA + 5 }
func (PA05) Sercom0Pad1() Function { return FunctionD }

type PA06 struct{ pin }

func (PA06) ID() ID                { return PortA + 6 }
func (PA06) Sercom0Pad2() Function { return FunctionD }

type PA07 struct{ pin }

func (PA07) ID() ID                { return PortA + 7 }
func (PA07) Sercom0Pad3() Function { return FunctionD }

type PA08 struct{ pin }

func (PA08) ID() ID                { return PortA + 8 }
func (PA08) Sercom0Pad0() Function { return FunctionC }
func (PA08) Sercom2Pad1() Function { return FunctionD }

type PA09 struct{ pin }

func (PA09) ID() ID                { return PortA + 9 }
func (PA09) Sercom0Pad1() Function { return FunctionC }
func (PA09) Sercom2Pad0() Function { return FunctionD }

type PA10 struct{ pin }

func (PA10) ID() ID                { return PortA + 10 }
func (PA10) Sercom0Pad2() Function { return FunctionC }
func (PA10) Sercom2Pad2() Function { return FunctionD }

type PA11 struct{ pin }

func (PA11) ID() ID                { return PortA + 11 }
func (PA11) Sercom0Pad3() Function { return FunctionC }
func (PA11) Sercom2Pad3() Function { return FunctionD }

type PA12 struct{ pin }

func (PA12) ID() ID                { return PortA + 12 }
func (PA12) Sercom2Pad0() Function { return FunctionC }
func (PA12) Sercom4Pad1() Function { return FunctionD }

type PA13 struct{ pin }

func (PA13) ID() ID                { return PortA + 13 }
func (PA13) Sercom2Pad1() Function { return FunctionC }
func (PA13) Sercom4Pad0() Function { return FunctionD }

type PA14 struct{ pin }

func (PA14) ID() ID                { return PortA + 14 }
func (PA14) Sercom2Pad2() Function { return FunctionC }
func (PA14) Sercom4Pad2() Function { return FunctionD }

type PA15 struct{ pin }

func (PA15) ID() ID                { return PortA + 15 }
func (PA15) Sercom2Pad3() Function { return FunctionC }
func (PA15) Sercom4Pad3() Function { return FunctionD }

type PA16 struct{ pin }

func (PA16) ID() ID                { return PortA + 16 }
func (PA16) Sercom1Pad0() Function { return FunctionC }
func (PA16) Sercom3Pad1() Function { return FunctionD }

type PA17 struct{ pin }

func (PA17) ID() ID                { return PortA + 17 }
func (PA17) Sercom1Pad1() Function { return FunctionC }
func (PA17) Sercom3Pad0() Function { return FunctionD }

type PA18 struct{ pin }

func (PA18) ID() ID                { return PortA + 18 }
func (PA18) Sercom1Pad2() Function { return FunctionC }
func (PA18) Sercom3Pad2() Function { return FunctionD }

type PA19 struct{ pin }

func (PA19) ID() ID                { return PortA + 19 }
func (PA19) Sercom1Pad3() Function { return FunctionC }
func (PA19) Sercom3Pad3() Function { return FunctionD }

type PA20 struct{ pin }

func (PA20) ID() ID                { return PortA + 20 }
func (PA20) Sercom5Pad2() Function { return FunctionC }
func (PA20) Sercom3Pad2() Function { return FunctionD }

type PA21 struct{ pin }

func (PA21) ID() ID                { return PortA + 21 }
func (PA21) Sercom5Pad3() Function { return FunctionC }
func (PA21) Sercom3Pad3() Function { return FunctionD }

type PA22 struct{ pin }

func (PA22) ID() ID                { return PortA + 22 }
func (PA22) Sercom3Pad0() Function { return FunctionC }
func (PA22) Sercom5Pad1() Function { return FunctionD }

type PA23 struct{ pin }

func (PA23) ID() ID                { return PortA + 23 }
func (PA23) Sercom3Pad1() Function { return FunctionC }
func (PA23) Sercom5Pad0() Function { return FunctionD }

type PA24 struct{ pin }

func (PA24) ID() ID                { return PortA + 24 }
func (PA24) Sercom3Pad2() Function { return FunctionC }
func (PA24) Sercom5Pad2() Function { return FunctionD }

type PA25 struct{ pin }

func (PA25) ID() ID                { return PortA + 25 }
func (PA25) Sercom3Pad3() Function { return FunctionC }
func (PA25) Sercom5Pad3() Function { return FunctionD }

type PA30 struct{ pin }

func (PA30) ID() ID                { return PortA + 30 }
func (PA30) Sercom7Pad2() Function { return FunctionC }
func (PA30) Sercom1Pad2() Function { return FunctionD }

type PA31 struct{ pin }

func (PA31) ID() ID                { return PortA + 31 }
func (PA31) Sercom7Pad3() Function { return FunctionC }
func (PA31) Sercom1Pad3() Function { return FunctionD }

type PB02 struct{ pin }

func (PB02) ID() ID                { return PortB + 2 }
func (PB02) Sercom5Pad0() Function { return FunctionD }

type PB03 struct{ pin }

func (PB03) ID() ID                { return PortB + 3 }
func (PB03) Sercom5Pad1() Function { return FunctionD }

type PB08 struct{ pin }

func (PB08) ID() ID                { return PortB + 8 }
func (PB08) Sercom4Pad0() Function { return FunctionD }

type PB09 struct{ pin }

func (PB09) ID() ID                { return PortB + 9 }
func (PB09) Sercom4Pad1() Function { return FunctionD }

type PB10 struct{ pin }

func (PB10) ID() ID                { return PortB + 10 }
func (PB10) Sercom4Pad2() Function { return FunctionD }

type PB11 struct{ pin }

func (PB11) ID() ID                { return PortB + 11 }
func (PB11) Sercom4Pad3() Function { return FunctionD }

type PB12 struct{ pin }

func (PB12) ID() ID                { return PortB + 12 }
func (PB12) Sercom4Pad0() Function { return FunctionC }

type PB13 struct{ pin }

func (PB13) ID() ID                { return PortB + 13 }
func (PB13) Sercom4Pad1() Function { return FunctionC }

type PB14 struct{ pin }

func (PB14) ID() ID                { return PortB + 14 }
func (PB14) Sercom4Pad2() Function { return FunctionC }

type PB15 struct{ pin }

func (PB15) ID() ID                { return PortB + 15 }
func (PB15) Sercom4Pad3() Function { return FunctionC }

type PB16 struct{ pin }

func (PB16) ID() ID                { return PortB + 16 }
func (PB16) Sercom5Pad0() Function { return FunctionC }

type PB17 struct{ pin }

func (PB17) ID() ID                { return PortB + 17 }
func (PB17) Sercom5Pad1() Function { return FunctionC }

type PB18 struct{ pin }

func (PB18) ID() ID                { return PortB + 18 }
func (PB18) Sercom5Pad2() Function { return FunctionC }

type PB19 struct{ pin }

func (PB19) ID() ID                { return PortB + 19 }
func (PB19) Sercom5Pad3() Function { return FunctionC }

type PB20 struct{ pin }

func (PB20) ID() ID                { return PortB + 20 }
func (PB20) Sercom3Pad0() Function { return FunctionC }
func (PB20) Sercom7Pad1() Function { return FunctionD }

type PB21 struct{ pin }

func (PB21) ID() ID                { return PortB + 21 }
func (PB21) Sercom3Pad1() Function { return FunctionC }
func (PB21) Sercom7Pad0() Function { return FunctionD }

type PB22 struct{ pin }

func (PB22) ID() ID                { return PortB + 22 }
func (PB22) Sercom1Pad2() Function { return FunctionC }
func (PB22) Sercom5Pad2() Function { return FunctionD }

type PB23 struct{ pin }

func (PB23) ID() ID                { return PortB + 23 }
func (PB23) Sercom1Pad3() Function { return FunctionC }
func (PB23) Sercom5Pad3() Function { return FunctionD }

type PB24 struct{ pin }

func (PB24) ID() ID                { return PortB + 24 }
func (PB24) Sercom0Pad0() Function { return FunctionC }
func (PB24) Sercom2Pad1() Function { return FunctionD }

type PB25 struct{ pin }

func (PB25) ID() ID                { return PortB + 25 }
func (PB25) Sercom0Pad1() Function { return FunctionC }
func (PB25) Sercom2Pad0() Function { return FunctionD }

type PB30 struct{ pin }

func (PB30) ID() ID                { return PortB + 30 }
func (PB30) Sercom7Pad0() Function { return FunctionC }
func (PB30) Sercom5Pad1() Function { return FunctionD }

type PB31 struct{ pin }

func (PB31) ID() ID                { return PortB + 31 }
func (PB31) Sercom7Pad1() Function { return FunctionC }
func (PB31) Sercom5Pad0() Function { return FunctionD }

type PC04 struct{ pin }

func (PC04) ID() ID                { return PortC + 4 }
func (PC04) Sercom6Pad0() Function { return FunctionC }

type PC05 struct{ pin }

func (PC05) ID() ID                { return PortC + 5 }
func (PC05) Sercom6Pad1() Function { return FunctionC }

type PC06 struct{ pin }

func (PC06) ID() ID                { return PortC + 6 }
func (PC06) Sercom6Pad2() Function { return FunctionC }

type PC07 struct{ pin }

func (PC07) ID() ID                { return PortC + 7 }
func (PC07) Sercom6Pad3() Function { return FunctionC }

type PC12 struct{ pin }

func (PC12) ID() ID                { return PortC + 12 }
func (PC12) Sercom7Pad0() Function { return FunctionC }
func (PC12) Sercom6Pad1() Function { return FunctionD }

type PC13 struct{ pin }

func (PC13) ID() ID                { return PortC + 13 }
func (PC13) Sercom7Pad1() Function { return FunctionC }
func (PC13) Sercom6Pad0() Function { return FunctionD }

type PC14 struct{ pin }

func (PC14) ID() ID                { return PortC + 14 }
func (PC14) Sercom7Pad2() Function { return FunctionC }
func (PC14) Sercom6Pad2() Function { return FunctionD }

type PC15 struct{ pin }

func (PC15) ID() ID                { return PortC + 15 }
func (PC15) Sercom7Pad3() Function { return FunctionC }
func (PC15) Sercom6Pad3() Function { return FunctionD }
