package port

import (
	"reflect"
	"testing"
)

// Every SercomNPadM method on a pin type must agree with the role table, and
// the role table must not list a role the type lacks.
func TestPinTypesMatchRoleTable(t *testing.T) {
	for _, p := range Pins() {
		id := p.ID()
		v := reflect.ValueOf(p)
		want := map[[2]uint8]Function{}
		for _, r := range Roles(id) {
			want[[2]uint8{r.Sercom, r.Pad}] = r.Function
		}
		if len(want) == 0 {
			t.Fatalf("%v has no roles", id)
		}
		got := 0
		for i := 0; i < v.NumMethod(); i++ {
			name := v.Type().Method(i).Name
			var s, pad uint8
			if !parseRole(name, &s, &pad) {
				continue
			}
			got++
			fn := v.Method(i).Call(nil)[0].Interface().(Function)
			w, ok := want[[2]uint8{s, pad}]
			if !ok {
				t.Errorf("%v: method %s not in role table", id, name)
				continue
			}
			if fn != w {
				t.Errorf("%v: %s returns %v, table says %v", id, name, fn, w)
			}
		}
		if got != len(want) {
			t.Errorf("%v: %d role methods, table lists %d", id, got, len(want))
		}
	}
}

// parseRole splits a "SercomNPadM" method name.
func parseRole(name string, s, pad *uint8) bool {
	if len(name) != len("Sercom0Pad0") || name[:6] != "Sercom" || name[7:10] != "Pad" {
		return false
	}
	*s = name[6] - '0'
	*pad = name[10] - '0'
	return *s < 8 && *pad < 4
}

func TestOnePadPerInstance(t *testing.T) {
	for id, rs := range roles {
		seen := map[uint8]bool{}
		for _, r := range rs {
			if seen[r.Sercom] {
				t.Errorf("%v maps to two pads of SERCOM%d", id, r.Sercom)
			}
			seen[r.Sercom] = true
		}
	}
}

func TestParseAndString(t *testing.T) {
	cases := []struct {
		name string
		id   ID
	}{
		{"PA00", PortA},
		{"PA08", PortA + 8},
		{"PB23", PortB + 23},
		{"PC15", PortC + 15},
		{"PD31", PortD + 31},
	}
	for _, c := range cases {
		id, ok := Parse(c.name)
		if !ok || id != c.id {
			t.Fatalf("Parse(%q) = %v,%v want %v", c.name, id, ok, c.id)
		}
		if id.String() != c.name {
			t.Fatalf("String() = %q want %q", id.String(), c.name)
		}
	}
	for _, bad := range []string{"", "PA8", "PE01", "PA32", "XA01", "PA0x"} {
		if _, ok := Parse(bad); ok {
			t.Errorf("Parse(%q) accepted", bad)
		}
	}
	if NoPin.String() != "NoPin" {
		t.Errorf("NoPin.String() = %q", NoPin.String())
	}
}

func TestRoleOf(t *testing.T) {
	if fn, ok := RoleOf(PortB+23, 1, 3); !ok || fn != FunctionC {
		t.Fatalf("PB23 SERCOM1/PAD3 = %v,%v", fn, ok)
	}
	if fn, ok := RoleOf(PortA, 1, 0); !ok || fn != FunctionD {
		t.Fatalf("PA00 SERCOM1/PAD0 = %v,%v", fn, ok)
	}
	if _, ok := RoleOf(PortA, 1, 1); ok {
		t.Fatal("PA00 is not SERCOM1/PAD1")
	}
}

type recordingMuxer struct{ got map[ID]Function }

func (m *recordingMuxer) SetFunction(id ID, fn Function) { m.got[id] = fn }

func TestRouteUsesInstalledMuxer(t *testing.T) {
	m := &recordingMuxer{got: map[ID]Function{}}
	SetMuxer(m)
	defer SetMuxer(nil)

	Route(PortA+8, FunctionC)
	if m.got[PortA+8] != FunctionC {
		t.Fatalf("muxer saw %v", m.got)
	}
}
