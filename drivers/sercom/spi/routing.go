package spi

// NoPad marks a route without a hardware chip-select pad.
const NoPad = 0xff

// Route is one legal pad assignment and the CTRLA field values that realise
// it.
type Route struct {
	DI, DO, SCK, CS uint8
	DIPO, DOPO      uint8
}

// HardwareCS reports whether the route drives SS from the peripheral.
func (r Route) HardwareCS() bool { return r.CS != NoPad }

// The SERCOM SPI master supports exactly these routings. SCK is always pad 1
// and the hardware chip-select is always pad 2.
var routes = [...]Route{
	{DI: 0, DO: 3, SCK: 1, CS: NoPad, DIPO: 0, DOPO: 2},
	{DI: 2, DO: 0, SCK: 1, CS: NoPad, DIPO: 2, DOPO: 0},
	{DI: 2, DO: 3, SCK: 1, CS: NoPad, DIPO: 2, DOPO: 2},
	{DI: 3, DO: 0, SCK: 1, CS: NoPad, DIPO: 3, DOPO: 0},
	{DI: 0, DO: 3, SCK: 1, CS: 2, DIPO: 0, DOPO: 2},
	{DI: 3, DO: 0, SCK: 1, CS: 2, DIPO: 3, DOPO: 0},
}

// index into routes, one per Padout constructor
const (
	routeDI0DO3 = iota
	routeDI2DO0
	routeDI2DO3
	routeDI3DO0
	routeDI0DO3CS
	routeDI3DO0CS
)

// Routes returns the routing table.
func Routes() []Route { return append([]Route(nil), routes[:]...) }

// LookupRoute finds the route for a pad tuple. cs is NoPad for software
// chip-select. Only tooling needs this; drivers get their route from the
// Padout constructor.
func LookupRoute(di, do, sck, cs uint8) (Route, bool) {
	for _, r := range routes {
		if r.DI == di && r.DO == do && r.SCK == sck && r.CS == cs {
			return r, true
		}
	}
	return Route{}, false
}
