package port

// Role is one (instance, pad) assignment a pin supports.
type Role struct {
	Sercom   uint8
	Pad      uint8
	Function Function
}

var roles = map[ID][]Role{
	PortA:      {{1, 0, FunctionD}},
	PortA + 1:  {{1, 1, FunctionD}},
	PortA + 4:  {{0, 0, FunctionD}},
	PortA + 5:  {{0, 1, FunctionD}},
	PortA + 6:  {{0, 2, FunctionD}},
	PortA + 7:  {{0, 3, FunctionD}},
	PortA + 8:  {{0, 0, FunctionC}, {2, 1, FunctionD}},
	PortA + 9:  {{0, 1, FunctionC}, {2, 0, FunctionD}},
	PortA + 10: {{0, 2, FunctionC}, {2, 2, FunctionD}},
	PortA + 11: {{0, 3, FunctionC}, {2, 3, FunctionD}},
	PortA + 12: {{2, 0, FunctionC}, {4, 1, FunctionD}},
	PortA + 13: {{2, 1, FunctionC}, {4, 0, FunctionD}},
	PortA + 14: {{2, 2, FunctionC}, {4, 2, FunctionD}},
	PortA + 15: {{2, 3, FunctionC}, {4, 3, FunctionD}},
	PortA + 16: {{1, 0, FunctionC}, {3, 1, FunctionD}},
	PortA + 17: {{1, 1, FunctionC}, {3, 0, FunctionD}},
	PortA + 18: {{1, 2, FunctionC}, {3, 2, FunctionD}},
	PortA + 19: {{1, 3, FunctionC}, {3, 3, FunctionD}},
	PortA + 20: {{5, 2, FunctionC}, {3, 2, FunctionD}},
	PortA + 21: {{5, 3, FunctionC}, {3, 3, FunctionD}},
	PortA + 22: {{3, 0, FunctionC}, {5, 1, FunctionD}},
	PortA + 23: {{3, 1, FunctionC}, {5, 0, FunctionD}},
	PortA + 24: {{3, 2, FunctionC}, {5, 2, FunctionD}},
	PortA + 25: {{3, 3, FunctionC}, {5, 3, FunctionD}},
	PortA + 30: {{7, 2, FunctionC}, {1, 2, FunctionD}},
	PortA + 31: {{7, 3, FunctionC}, {1, 3, FunctionD}},
	PortB + 2:  {{5, 0, FunctionD}},
	PortB + 3:  {{5, 1, FunctionD}},
	PortB + 8:  {{4, 0, FunctionD}},
	PortB + 9:  {{4, 1, FunctionD}},
	PortB + 10: {{4, 2, FunctionD}},
	PortB + 11: {{4, 3, FunctionD}},
	PortB + 12: {{4, 0, FunctionC}},
	PortB + 13: {{4, 1, FunctionC}},
	PortB + 14: {{4, 2, FunctionC}},
	PortB + 15: {{4, 3, FunctionC}},
	PortB + 16: {{5, 0, FunctionC}},
	PortB + 17: {{5, 1, FunctionC}},
	PortB + 18: {{5, 2, FunctionC}},
	PortB + 19: {{5, 3, FunctionC}},
	PortB + 20: {{3, 0, FunctionC}, {7, 1, FunctionD}},
	PortB + 21: {{3, 1, FunctionC}, {7, 0, FunctionD}},
	PortB + 22: {{1, 2, FunctionC}, {5, 2, FunctionD}},
	PortB + 23: {{1, 3, FunctionC}, {5, 3, FunctionD}},
	PortB + 24: {{0, 0, FunctionC}, {2, 1, FunctionD}},
	PortB + 25: {{0, 1, FunctionC}, {2, 0, FunctionD}},
	PortB + 30: {{7, 0, FunctionC}, {5, 1, FunctionD}},
	PortB + 31: {{7, 1, FunctionC}, {5, 0, FunctionD}},
	PortC + 4:  {{6, 0, FunctionC}},
	PortC + 5:  {{6, 1, FunctionC}},
	PortC + 6:  {{6, 2, FunctionC}},
	PortC + 7:  {{6, 3, FunctionC}},
	PortC + 12: {{7, 0, FunctionC}, {6, 1, FunctionD}},
	PortC + 13: {{7, 1, FunctionC}, {6, 0, FunctionD}},
	PortC + 14: {{7, 2, FunctionC}, {6, 2, FunctionD}},
	PortC + 15: {{7, 3, FunctionC}, {6, 3, FunctionD}},
}

// Roles lists the SERCOM roles wired to id.
func Roles(id ID) []Role { return roles[id] }

// RoleOf returns the mux function placing id on pad of sercom.
func RoleOf(id ID, sercom, pad uint8) (Function, bool) {
	for _, r := range roles[id] {
		if r.Sercom == sercom && r.Pad == pad {
			return r.Function, true
		}
	}
	return 0, false
}

// Parse maps a pin name such as "PA08" to its ID.
func Parse(name string) (ID, bool) {
	if len(name) != 4 || name[0] != 'P' {
		return NoPin, false
	}
	g := name[1] - 'A'
	if g > 3 || name[2] < '0' || name[2] > '9' || name[3] < '0' || name[3] > '9' {
		return NoPin, false
	}
	n := (name[2]-'0')*10 + name[3] - '0'
	if n > 31 {
		return NoPin, false
	}
	return ID(g)*32 + ID(n), true
}

// Pins returns a handle for every pin in the role table.
func Pins() []Pin {
	return []Pin{
		PA00{}, PA01{}, PA04{}, PA05{}, PA06{}, PA07{}, PA08{}, PA09{},
		PA10{}, PA11{}, PA12{}, PA13{}, PA14{}, PA15{}, PA16{}, PA17{},
		PA18{}, PA19{}, PA20{}, PA21{}, PA22{}, PA23{}, PA24{}, PA25{},
		PA30{}, PA31{}, PB02{}, PB03{}, PB08{}, PB09{}, PB10{}, PB11{},
		PB12{}, PB13{}, PB14{}, PB15{}, PB16{}, PB17{}, PB18{}, PB19{},
		PB20{}, PB21{}, PB22{}, PB23{}, PB24{}, PB25{}, PB30{}, PB31{},
		PC04{}, PC05{}, PC06{}, PC07{}, PC12{}, PC13{}, PC14{}, PC15{},
	}
}
