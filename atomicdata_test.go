package potentials

import "testing"

func TestAtomicNumber(t *testing.T) {
	cases := []struct {
		symbol string
		number int
	}{
		{"H", 1},
		{"Ni", 28},
		{"Cu", 29},
		{"Pd", 46},
		{"Pt", 78},
		{"Cm", 96},
	}
	for _, c := range cases {
		n, err := AtomicNumber(c.symbol)
		if err != nil {
			t.Fatal(err)
		}
		if n != c.number {
			t.Errorf("AtomicNumber(%s) = %d, want %d", c.symbol, n, c.number)
		}
		s, err := AtomicSymbol(c.number)
		if err != nil {
			t.Fatal(err)
		}
		if s != c.symbol {
			t.Errorf("AtomicSymbol(%d) = %s, want %s", c.number, s, c.symbol)
		}
	}
	if _, err := AtomicNumber("Xx"); err == nil {
		t.Error("expected an error for an unknown symbol")
	}
	if _, err := AtomicSymbol(0); err == nil {
		t.Error("expected an error for atomic number 0")
	}
}

func TestAtomicMass(t *testing.T) {
	m, err := AtomicMass("Cu")
	if err != nil {
		t.Fatal(err)
	}
	if m != 63.546 {
		t.Errorf("AtomicMass(Cu) = %v, want 63.546", m)
	}
	if _, err := AtomicMass("Xx"); err == nil {
		t.Error("expected an error for an unknown symbol")
	}
}
