package fdtd

import (
	"errors"
	"testing"
)

func TestParseMode(t *testing.T) {
	for _, name := range ModeNames() {
		m, err := ParseMode(name)
		if err != nil {
			t.Fatalf("parse %q failed: %v", name, err)
		}
		if m.Name != name {
			t.Errorf("expected name %q, got %q", name, m.Name)
		}
		if len(m.E) == 0 || len(m.H) == 0 {
			t.Errorf("%s: expected non-empty component sets", name)
		}
	}
}

func TestParseModeUnknown(t *testing.T) {
	_, err := ParseMode("4d")
	if !errors.Is(err, ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
}

func TestModeComponentCounts(t *testing.T) {
	tests := []struct {
		name string
		e, h int
	}{
		{"3d", 3, 3},
		{"tex", 2, 1},
		{"tez", 2, 1},
		{"tmx", 1, 2},
		{"tmz", 1, 2},
		{"temx", 1, 1},
		{"temz", 1, 1},
	}
	for _, tt := range tests {
		m, err := ParseMode(tt.name)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tt.name, err)
		}
		if len(m.E) != tt.e || len(m.H) != tt.h {
			t.Errorf("%s: expected %dE %dH, got %dE %dH", tt.name, tt.e, tt.h, len(m.E), len(m.H))
		}
	}
}

func TestModeActiveOrder(t *testing.T) {
	active := TEz.Active()
	want := []Component{Ex, Ey, Hz}
	if len(active) != len(want) {
		t.Fatalf("expected %d active components, got %d", len(want), len(active))
	}
	for i := range want {
		if active[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], active[i])
		}
	}

	if !TEz.active(Hz) {
		t.Error("expected hz active in tez")
	}
	if TEz.active(Ez) {
		t.Error("expected ez inactive in tez")
	}
}

func TestComponentNames(t *testing.T) {
	for c := Ex; c <= Hz; c++ {
		got, err := ParseComponent(c.String())
		if err != nil {
			t.Fatalf("parse %q failed: %v", c.String(), err)
		}
		if got != c {
			t.Errorf("round trip %s: got %s", c, got)
		}
	}

	if _, err := ParseComponent("bx"); err == nil {
		t.Error("expected error for unknown component")
	}

	if !Ez.Electric() || Hx.Electric() {
		t.Error("electric test misclassifies components")
	}
}

func TestTimeStepAdvance(t *testing.T) {
	var ts TimeStep
	dt := 0.25

	ts.advance(dt)
	if ts.N != 0.5 {
		t.Errorf("expected half step 0.5, got %f", ts.N)
	}
	if ts.T != 0.125 {
		t.Errorf("expected time 0.125, got %f", ts.T)
	}

	ts.advance(dt)
	if ts.N != 1.0 || ts.T != 0.25 {
		t.Errorf("expected full step (1.0, 0.25), got (%f, %f)", ts.N, ts.T)
	}
}
