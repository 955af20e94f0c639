package spi

import (
	"os"
	"path"
	"path/filepath"
	"testing"

	"golang.org/x/tools/go/packages"
)

const legalityHeader = `package snippet

import (
	"sercom-go/drivers/sercom"
	"sercom-go/drivers/sercom/spi"
	"sercom-go/port"
)

var (
	_ sercom.Pad[sercom.Sercom0, sercom.Pad0]
	_ spi.Mode
	_ port.ID
)

`

// Each snippet is type-checked as its own package inside the module.
var legalitySnippets = []struct {
	name  string
	body  string
	legal bool
}{
	{"itsybitsy", `var _ = spi.PadoutDI3DO0(sercom.Sercom1Pad3(port.PB23{}), sercom.Sercom1Pad0(port.PA00{}), sercom.Sercom1Pad1(port.PA01{}))`, true},
	{"hwcs", `var _ = spi.PadoutDI0DO3CS(sercom.Sercom1Pad0(port.PA16{}), sercom.Sercom1Pad3(port.PA19{}), sercom.Sercom1Pad1(port.PA17{}), sercom.Sercom1Pad2(port.PA18{}))`, true},
	{"alt function", `var _ = spi.PadoutDI2DO3(sercom.Sercom3Pad2(port.PA18{}), sercom.Sercom3Pad3(port.PA19{}), sercom.Sercom3Pad1(port.PA16{}))`, true},

	{"pin lacks pad", `var _ = sercom.Sercom1Pad3(port.PA00{})`, false},
	{"pin on other instance", `var _ = sercom.Sercom2Pad0(port.PA16{})`, false},
	{"DI on pad 2 with DO on pad 3 swapped", `var _ = spi.PadoutDI0DO3(sercom.Sercom1Pad2(port.PA18{}), sercom.Sercom1Pad3(port.PA19{}), sercom.Sercom1Pad1(port.PA17{}))`, false},
	{"SCK off pad 1", `var _ = spi.PadoutDI3DO0(sercom.Sercom1Pad3(port.PB23{}), sercom.Sercom1Pad0(port.PA00{}), sercom.Sercom1Pad2(port.PA18{}))`, false},
	{"mixed instances", `var _ = spi.PadoutDI3DO0(sercom.Sercom1Pad3(port.PB23{}), sercom.Sercom0Pad0(port.PA08{}), sercom.Sercom1Pad1(port.PA01{}))`, false},
	{"hwcs on wrong DI", `var _ = spi.PadoutDI2DO0CS(sercom.Sercom1Pad2(port.PA18{}), sercom.Sercom1Pad0(port.PA16{}), sercom.Sercom1Pad1(port.PA17{}), sercom.Sercom1Pad2(port.PB22{}))`, false},
	{"foreign pin type", `type fake struct{}

func (fake) ID() port.ID                { return 0 }
func (fake) Sercom1Pad3() port.Function { return port.FunctionC }

var _ = sercom.Sercom1Pad3(fake{})`, false},
}

func TestPinTupleLegalityAtCompileTime(t *testing.T) {
	if testing.Short() {
		t.Skip("type-checks snippets with the go command")
	}
	root, err := os.MkdirTemp(".", "legality")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(root) })
	root, err = filepath.Abs(root)
	if err != nil {
		t.Fatal(err)
	}

	dirs := make([]string, len(legalitySnippets))
	for i, s := range legalitySnippets {
		dirs[i] = filepath.Join(root, snippetDir(i))
		if err := os.Mkdir(dirs[i], 0o755); err != nil {
			t.Fatal(err)
		}
		src := legalityHeader + s.body + "\n"
		if err := os.WriteFile(filepath.Join(dirs[i], "snippet.go"), []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
			packages.NeedTypes | packages.NeedTypesInfo,
		Dir: root,
	}
	pkgs, err := packages.Load(cfg, dirs...)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	byName := map[string]*packages.Package{}
	for _, p := range pkgs {
		byName[path.Base(p.PkgPath)] = p
	}

	for i, s := range legalitySnippets {
		p := byName[snippetDir(i)]
		if p == nil {
			t.Errorf("%s: package not loaded", s.name)
			continue
		}
		var typeErrs int
		for _, e := range p.Errors {
			if e.Kind == packages.TypeError {
				typeErrs++
			}
		}
		switch {
		case s.legal && len(p.Errors) > 0:
			t.Errorf("%s: want clean type-check, got %v", s.name, p.Errors)
		case !s.legal && typeErrs == 0:
			t.Errorf("%s: compiled, want a type error", s.name)
		}
	}
}

func snippetDir(i int) string { return "s" + string(rune('a'+i)) }
