package balloon

import (
	"math"
	"testing"

	"github.com/f3rmion/balloons/internal/geom"
)

func TestForce(t *testing.T) {
	f := Force(geom.V(10, 0), geom.V(0, 0), 100, 2)
	if math.Abs(f.X-1) > 1e-12 || f.Y != 0 {
		t.Errorf("Expected (1,0), got %v", f)
	}

	if z := Force(geom.V(3, 3), geom.V(3, 3), 100, 2.35); z != (geom.Vector2{}) {
		t.Errorf("Expected zero force for coincident points, got %v", z)
	}

	// negative coefficient pulls toward the source
	f = Force(geom.V(10, 0), geom.V(0, 0), -100, 2)
	if f.X >= 0 {
		t.Errorf("Expected attraction for negative coefficient, got %v", f)
	}
}

func TestForceOnWallChargeRepels(t *testing.T) {
	// a negatively charged balloon pushes the wall's negative charges away
	f := ForceOnWallCharge(geom.V(689, 108.66666666666667), geom.V(621, 102), -10)
	if f.X <= 0 {
		t.Errorf("Expected push to the right, got %v", f)
	}
	if m := f.Magnitude(); math.Abs(m-7.6536) > 1e-3 {
		t.Errorf("Expected magnitude about 7.6536, got %v", m)
	}
}

func TestCenters(t *testing.T) {
	b := New("Yellow Balloon", 440, 100, true)
	if got := b.Center(); got != geom.V(507, 211) {
		t.Errorf("Expected center (507,211), got %v", got)
	}

	b.SetCharge(-10)
	if got := b.ChargeCenter(); got != geom.V(507, 201) {
		t.Errorf("Expected charge center (507,201), got %v", got)
	}

	b.SetCenter(geom.V(621, 112))
	if !b.RightAtWall() {
		t.Error("Expected balloon right at wall")
	}
	if b.TouchingWall(false) {
		t.Error("Expected no wall contact with the wall hidden")
	}
	if !b.TouchingWall(true) {
		t.Error("Expected wall contact with the wall visible")
	}
}

func TestSetChargeClamps(t *testing.T) {
	b := New("Yellow Balloon", 0, 0, true)
	b.SetCharge(5)
	if b.Charge() != 0 {
		t.Errorf("Expected charge clamped to 0, got %d", b.Charge())
	}
	b.SetCharge(-100)
	if b.Charge() != -57 {
		t.Errorf("Expected charge clamped to -57, got %d", b.Charge())
	}
	b.AddCharge(-1)
	if b.Charge() != -57 {
		t.Errorf("Expected charge to stay at -57, got %d", b.Charge())
	}
}

func TestAttractiveState(t *testing.T) {
	tests := []struct {
		name                       string
		touching, charged, dragged bool
		want                       AttractiveState
	}{
		{"free", false, true, false, On},
		{"sticking", true, true, false, Sticking},
		{"touching uncharged", true, false, false, Touching},
		{"touching while dragged", true, true, true, Touching},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StateFor(tt.touching, tt.charged, tt.dragged); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestOnSweater(t *testing.T) {
	sweater := geom.RectBounds(0, -50, 330, 420)
	b := New("Yellow Balloon", 440, 100, true)
	if b.OnSweater(sweater) {
		t.Error("Expected balloon away from sweater")
	}
	b.SetCenter(geom.V(300, 200))
	if !b.OnSweater(sweater) {
		t.Error("Expected balloon on sweater")
	}
}

func TestAdjacentAndReset(t *testing.T) {
	yellow := New("Yellow Balloon", 440, 100, true)
	green := New("Green Balloon", 380, 130, false)

	green.SetPosition(yellow.Position())
	if Adjacent(yellow, green) {
		t.Error("Expected hidden balloon never to be adjacent")
	}
	green.SetVisible(true)
	if !Adjacent(yellow, green) {
		t.Error("Expected overlapping balloons to be adjacent")
	}

	green.SetCharge(-3)
	green.Dragged = true
	green.Reset()
	green.Reset()
	if green.Visible() || green.Charge() != 0 || green.Dragged || green.Position() != geom.V(380, 130) {
		t.Errorf("Expected initial state after reset, got %+v", green)
	}
}
