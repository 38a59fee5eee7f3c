package model

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/f3rmion/balloons/internal/a11y"
	"github.com/f3rmion/balloons/internal/describe"
	"github.com/f3rmion/balloons/internal/geom"
	"github.com/f3rmion/balloons/internal/sweater"
)

func TestNew(t *testing.T) {
	m := New()

	yellow, err := m.BalloonState(Yellow)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if yellow.Center != geom.V(507, 211) || !yellow.Visible {
		t.Errorf("Expected visible yellow balloon centered at (507, 211), got %+v", yellow)
	}
	green, _ := m.BalloonState(Green)
	if green.Visible {
		t.Error("Expected green balloon hidden")
	}
	if !m.Wall.Visible() || m.ShowCharges() != describe.ShowAll {
		t.Error("Expected visible wall and all charges shown")
	}
	if m.Dirty() || m.syncs != 1 {
		t.Errorf("Expected one sync after construction, got %d (dirty %v)", m.syncs, m.Dirty())
	}
}

func TestWithLabels(t *testing.T) {
	m := New(WithLabels("Sunny", "Leafy"))
	b, _ := m.Balloon(Green)
	if b.Label != "Leafy" {
		t.Errorf("Expected label %q, got %q", "Leafy", b.Label)
	}
}

func TestUnknownBalloon(t *testing.T) {
	m := New()
	if err := m.MoveBalloon(BalloonID(7), geom.V(0, 0)); !errors.Is(err, ErrUnknownBalloon) {
		t.Errorf("Expected ErrUnknownBalloon, got %v", err)
	}
	if _, err := ParseBalloonID("red"); !errors.Is(err, ErrUnknownBalloon) {
		t.Errorf("Expected ErrUnknownBalloon, got %v", err)
	}
	if id, err := ParseBalloonID("green"); err != nil || id != Green {
		t.Errorf("Expected green, got %v (%v)", id, err)
	}
}

func TestMoveBalloonClamps(t *testing.T) {
	m := New()
	m.MoveBalloon(Yellow, geom.V(900, 0))
	b, _ := m.Balloon(Yellow)
	if got := b.Center(); got != geom.V(621, 111) {
		t.Errorf("Expected center clamped to wall (621, 111), got %v", got)
	}

	m.SetWallVisible(false)
	m.MoveBalloon(Yellow, geom.V(900, 900))
	if got := b.Center(); got != geom.V(701, 393) {
		t.Errorf("Expected center clamped to (701, 393), got %v", got)
	}

	m.SetWallVisible(true)
	if got := b.Center(); got.X != 621 {
		t.Errorf("Expected balloon pulled back to the wall, got %v", got)
	}
}

func TestSyncOncePerDirtyPeriod(t *testing.T) {
	m := New()
	before := m.syncs

	m.MoveBalloon(Yellow, geom.V(600, 200))
	m.SetBalloonCharge(Yellow, -20)
	m.SetBalloonVisible(Green, true)
	if !m.Dirty() {
		t.Fatal("Expected model dirty after input changes")
	}

	m.BalloonsAdjacent()
	m.WallState()
	m.BalloonState(Yellow)
	if got := m.syncs - before; got != 1 {
		t.Errorf("Expected exactly one recompute, got %d", got)
	}
	if m.Sync() {
		t.Error("Expected no recompute without input changes")
	}
}

func TestWallDescriptionEndToEnd(t *testing.T) {
	m := New()
	d := describe.New(a11y.Default())
	const rest = "At right edge of Play Area. Has zero net charge, many pairs of negative and positive charges."

	wallDesc := func() string {
		sc := m.Scene()
		return d.WallDescription(sc.Yellow, sc.Green, m.BalloonsAdjacent(), sc.WallVisible, m.ShowCharges())
	}

	if got := wallDesc(); got != rest {
		t.Errorf("Expected %q, got %q", rest, got)
	}

	m.MoveBalloon(Yellow, geom.V(621, 111))
	if got := wallDesc(); got != rest {
		t.Errorf("Neutral balloon at wall: expected %q, got %q", rest, got)
	}

	m.SetBalloonCharge(Yellow, -10)
	m.MoveBalloon(Yellow, geom.V(621, 112))
	want := rest + " Negative charges in upper wall move away from Yellow Balloon a little bit. Positive charges do not move."
	if got := wallDesc(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	m.SetBalloonCharge(Green, -10)
	m.SetBalloonVisible(Green, true)
	m.MoveBalloon(Green, geom.V(621, 112))
	want = rest + " Negative charges in upper wall move away from balloons a lot. Positive charges do not move."
	if got := wallDesc(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	m.SetShowCharges(describe.ShowNone)
	if got, want := wallDesc(), "At right edge of Play Area."; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	m.SetShowCharges(describe.ShowDiff)
	if got, want := wallDesc(), "At right edge of Play Area. Has zero net charge, showing no charges."; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestInducedDisplacement(t *testing.T) {
	m := New()
	m.MoveBalloon(Yellow, geom.V(621, 112))
	m.SetBalloonCharge(Yellow, -10)

	st, _ := m.BalloonState(Yellow)
	if !st.InducingCharge {
		t.Fatal("Expected yellow balloon to induce charge")
	}
	if math.Abs(st.InducedDisplacement-7.6536) > 1e-3 {
		t.Errorf("Expected displacement near 7.6536, got %v", st.InducedDisplacement)
	}

	m.SetBalloonCharge(Yellow, -1)
	st, _ = m.BalloonState(Yellow)
	if st.InducingCharge {
		t.Errorf("Expected no induced charge from a single charge, displacement %v", st.InducedDisplacement)
	}
}

func TestClosestWallChargeFollowsChargeCenter(t *testing.T) {
	m := New()
	m.SetBalloonCharge(Yellow, -30)
	m.MoveBalloon(Yellow, geom.V(621, 172))

	b, _ := m.Balloon(Yellow)
	st, _ := m.BalloonState(Yellow)
	want := m.Wall.ClosestCharge(b.ChargeCenter())
	if b.ClosestWallCharge != want {
		t.Fatalf("Expected closest charge %d, got %d", want.ID, b.ClosestWallCharge.ID)
	}
	if want.ID != 4 {
		t.Errorf("Expected charge 4 nearest the raised charge center, got %d", want.ID)
	}
	if math.Abs(st.InducedDisplacement-24.3926) > 1e-3 {
		t.Errorf("Expected displacement near 24.3926, got %v", st.InducedDisplacement)
	}
	if st.ClosestWallCharge != want.Position() {
		t.Errorf("Expected closest charge position %v, got %v", want.Position(), st.ClosestWallCharge)
	}

	d := describe.New(a11y.Default())
	sc := m.Scene()
	got := d.WallDescription(sc.Yellow, sc.Green, m.BalloonsAdjacent(), sc.WallVisible, m.ShowCharges())
	clause := "Negative charges in upper wall move away from Yellow Balloon quite a lot."
	if !strings.Contains(got, clause) {
		t.Errorf("Expected %q in %q", clause, got)
	}
}

func TestSetShowChargesRejectsUnknownMode(t *testing.T) {
	m := New()
	if err := m.SetShowCharges("loud"); !errors.Is(err, describe.ErrUnknownShowCharges) {
		t.Errorf("Expected ErrUnknownShowCharges, got %v", err)
	}
	if got := m.ShowCharges(); got != describe.ShowAll {
		t.Errorf("Expected mode unchanged, got %v", got)
	}
	if err := m.SetShowCharges(describe.ShowNone); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestStepPicksUpOneChargePerFrame(t *testing.T) {
	m := New()
	m.MoveBalloon(Yellow, geom.V(150, 250))
	m.Grab(Yellow)

	res := m.Step(1.0 / 60)
	if len(res.Pickups) != 1 || res.Pickups[0].Balloon != Yellow || !res.Pickups[0].First {
		t.Fatalf("Expected first pickup by yellow, got %+v", res.Pickups)
	}
	res = m.Step(1.0 / 60)
	if len(res.Pickups) != 1 || res.Pickups[0].First {
		t.Fatalf("Expected a second, non-first pickup, got %+v", res.Pickups)
	}

	b, _ := m.Balloon(Yellow)
	if b.Charge() != -2 || m.SweaterState().Charge != 2 {
		t.Errorf("Expected balloon -2 and sweater 2, got %d and %d", b.Charge(), m.SweaterState().Charge)
	}
}

func TestStepReleasedBalloonAgesTimer(t *testing.T) {
	m := New()
	m.Step(0.5)
	m.Step(0.25)
	b, _ := m.Balloon(Yellow)
	if b.TimeSinceRelease != 0.75 {
		t.Errorf("Expected 0.75s since release, got %v", b.TimeSinceRelease)
	}
	if res := m.Step(1); len(res.Pickups) != 0 {
		t.Errorf("Expected no pickups for a released balloon, got %+v", res.Pickups)
	}
}

func TestSweepExhaustsSweater(t *testing.T) {
	m := New()
	m.Grab(Yellow)

	exhausted := 0
	for x := 67.0; x <= 621; x += 5 {
		for y := 111.0; y <= 393; y += 5 {
			m.MoveBalloon(Yellow, geom.V(x, y))
			if m.Step(0).SweaterExhausted {
				exhausted++
			}
		}
	}

	if !m.SweaterState().Exhausted {
		t.Fatalf("Expected sweater exhausted, charge %d", m.SweaterState().Charge)
	}
	if exhausted != 1 {
		t.Errorf("Expected exhaustion reported once, got %d", exhausted)
	}
	b, _ := m.Balloon(Yellow)
	if b.Charge() != -sweater.MaxCharge {
		t.Errorf("Expected balloon charge %d, got %d", -sweater.MaxCharge, b.Charge())
	}
	if _, ok, _ := m.MoreChargesDirection(Yellow); ok {
		t.Error("Expected no direction once the sweater is empty")
	}
}

func TestMoreChargesDirection(t *testing.T) {
	m := New()
	dir, ok, err := m.MoreChargesDirection(Yellow)
	if err != nil || !ok {
		t.Fatalf("Expected a direction, got ok=%v err=%v", ok, err)
	}
	if dir != describe.Left {
		t.Errorf("Expected left, got %d", dir)
	}
}

func TestRemovingWallResetsStuckBalloonTimer(t *testing.T) {
	m := New()
	m.MoveBalloon(Yellow, geom.V(621, 200))
	m.SetBalloonCharge(Yellow, -10)
	m.Step(2)

	m.SetWallVisible(false)
	b, _ := m.Balloon(Yellow)
	if b.TimeSinceRelease != 0 {
		t.Errorf("Expected release timer reset, got %v", b.TimeSinceRelease)
	}
	if b.InducingCharge {
		t.Error("Expected no induced charge without the wall")
	}
	if m.WallState().MaxDisplacement == 0 {
		t.Error("Expected wall charges still displaced while hidden")
	}
}

func TestResetIsIdempotent(t *testing.T) {
	m := New()
	m.MoveBalloon(Yellow, geom.V(150, 250))
	m.Grab(Yellow)
	m.Step(0)
	m.SetBalloonVisible(Green, true)
	m.SetWallVisible(false)
	m.SetShowCharges(describe.ShowDiff)

	m.Reset()
	first := m.Scene()
	m.Reset()
	second := m.Scene()
	if first != second {
		t.Errorf("Expected identical state after repeated reset:\n%+v\n%+v", first, second)
	}

	fresh := New().Scene()
	if first != fresh {
		t.Errorf("Expected reset state to match a new model:\n%+v\n%+v", first, fresh)
	}
	if m.WallState().MaxDisplacement != 0 {
		t.Error("Expected wall charges at rest after reset")
	}
}

func TestResetBalloonsKeepsVisibility(t *testing.T) {
	m := New()
	m.SetBalloonVisible(Green, true)
	m.SetBalloonCharge(Green, -5)
	m.MoveBalloon(Green, geom.V(300, 300))

	m.ResetBalloons()
	green, _ := m.BalloonState(Green)
	if !green.Visible {
		t.Error("Expected green balloon still in the play area")
	}
	if green.Charge != 0 || green.Center == geom.V(300, 300) {
		t.Errorf("Expected green balloon reset, got %+v", green)
	}

	m.Reset()
	if green, _ = m.BalloonState(Green); green.Visible {
		t.Error("Expected full reset to remove the green balloon")
	}
}
