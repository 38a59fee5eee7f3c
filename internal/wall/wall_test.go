package wall

import (
	"math"
	"testing"

	"github.com/f3rmion/balloons/internal/balloon"
	"github.com/f3rmion/balloons/internal/geom"
)

func newTestWall() *Wall {
	return New(688, 80, 600)
}

func TestGridLayout(t *testing.T) {
	w := newTestWall()
	if len(w.MinusCharges) != NumColumns*NumRows {
		t.Fatalf("Expected %d charges, got %d", NumColumns*NumRows, len(w.MinusCharges))
	}
	if w.dx != 29 {
		t.Errorf("Expected dx 29, got %v", w.dx)
	}

	// even column starts half a row down, odd column starts at 1
	if got := w.PlusCharges[0].Position(); got != geom.V(697, 600.0/18/2) {
		t.Errorf("Expected first plus charge at (697,%v), got %v", 600.0/18/2, got)
	}
	if got := w.PlusCharges[NumRows].Position(); got != geom.V(726, 1) {
		t.Errorf("Expected first odd-column plus charge at (726,1), got %v", got)
	}
	if got := w.MinusCharges[0].DefaultPosition(); got != w.PlusCharges[0].Position().MinusXY(8, 8) {
		t.Errorf("Expected minus charge offset by the radius, got %v", got)
	}
	if w.NetCharge() != 0 {
		t.Errorf("Expected zero net charge, got %d", w.NetCharge())
	}
}

func TestUpdateChargePositions(t *testing.T) {
	w := newTestWall()
	yellow := balloon.New("Yellow Balloon", 0, 0, true)
	green := balloon.New("Green Balloon", 0, 0, false)

	yellow.SetCenter(geom.V(621, 112))
	w.UpdateChargePositions(yellow, green)
	if w.MaxDisplacement() != 0 {
		t.Errorf("Expected no displacement from an uncharged balloon, got %v", w.MaxDisplacement())
	}

	yellow.SetCharge(-10)
	w.UpdateChargePositions(yellow, green)

	closest := w.ClosestCharge(yellow.ChargeCenter())
	if closest != w.MinusCharges[3] {
		t.Fatalf("Expected closest charge index 3, got id %d", closest.ID)
	}
	if d := closest.Displacement(); math.Abs(d-7.6536) > 1e-3 {
		t.Errorf("Expected displacement about 7.6536, got %v", d)
	}
	if closest.Position().X <= closest.DefaultPosition().X {
		t.Error("Expected charge pushed away from the balloon")
	}

	// hidden balloons contribute nothing even when charged
	green.SetCharge(-57)
	w.UpdateChargePositions(yellow, green)
	if d := closest.Displacement(); math.Abs(d-7.6536) > 1e-3 {
		t.Errorf("Expected hidden balloon to be ignored, got displacement %v", d)
	}

	green.SetVisible(true)
	green.SetCharge(-10)
	green.SetCenter(geom.V(621, 112))
	w.UpdateChargePositions(yellow, green)
	if d := closest.Displacement(); math.Abs(d-2*7.6536) > 2e-3 {
		t.Errorf("Expected summed displacement about 15.307, got %v", d)
	}
}

func TestClosestChargeUsesRestPosition(t *testing.T) {
	w := newTestWall()
	target := w.MinusCharges[20]
	target.SetPosition(geom.V(0, 0))

	if got := w.ClosestCharge(target.DefaultPosition()); got != target {
		t.Errorf("Expected charge id %d, got id %d", target.ID, got.ID)
	}
}

func TestForceIndicatesInducedCharge(t *testing.T) {
	tests := []struct {
		f    geom.Vector2
		want bool
	}{
		{geom.V(0, 0), false},
		{geom.V(2, 0), false},
		{geom.V(2, 0.1), true},
		{geom.V(0, -3), true},
	}
	for _, tt := range tests {
		if got := ForceIndicatesInducedCharge(tt.f); got != tt.want {
			t.Errorf("ForceIndicatesInducedCharge(%v): expected %v, got %v", tt.f, tt.want, got)
		}
	}
}

func TestSetVisibleRestartsReleaseTimers(t *testing.T) {
	w := newTestWall()
	stuck := balloon.New("Yellow Balloon", 0, 0, true)
	stuck.SetCenter(geom.V(621, 200))
	stuck.SetCharge(-5)
	stuck.TimeSinceRelease = 3

	neutral := balloon.New("Green Balloon", 0, 0, true)
	neutral.SetCenter(geom.V(621, 200))
	neutral.TimeSinceRelease = 3

	w.SetVisible(false, stuck, neutral)
	if w.Visible() {
		t.Error("Expected wall hidden")
	}
	if stuck.TimeSinceRelease != 0 {
		t.Errorf("Expected charged balloon timer reset, got %v", stuck.TimeSinceRelease)
	}
	if neutral.TimeSinceRelease != 3 {
		t.Errorf("Expected neutral balloon timer untouched, got %v", neutral.TimeSinceRelease)
	}
}

func TestReset(t *testing.T) {
	w := newTestWall()
	yellow := balloon.New("Yellow Balloon", 0, 0, true)
	yellow.SetCenter(geom.V(621, 112))
	yellow.SetCharge(-30)
	w.UpdateChargePositions(yellow)
	w.SetVisible(false)

	w.Reset()
	w.Reset()
	if !w.Visible() {
		t.Error("Expected wall visible after reset")
	}
	if w.MaxDisplacement() != 0 {
		t.Errorf("Expected all charges at rest, got max displacement %v", w.MaxDisplacement())
	}
}
