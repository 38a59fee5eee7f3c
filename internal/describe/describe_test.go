package describe

import (
	"errors"
	"strings"
	"testing"

	"github.com/f3rmion/balloons/internal/a11y"
	"github.com/f3rmion/balloons/internal/geom"
)

const wallAtRest = "At right edge of Play Area. Has zero net charge, many pairs of negative and positive charges."

func newDescriber() *Describer {
	return New(a11y.Default())
}

func yellowAtWall() BalloonState {
	return BalloonState{
		Label:               "Yellow Balloon",
		Center:              geom.V(621, 112),
		Charge:              -10,
		Visible:             true,
		InducingCharge:      true,
		InducedDisplacement: 7.65,
	}
}

func TestParseShowCharges(t *testing.T) {
	for _, s := range []string{"all", "diff", "none"} {
		m, err := ParseShowCharges(s)
		if err != nil {
			t.Fatalf("Unexpected error for %q: %v", s, err)
		}
		if m.String() != s {
			t.Errorf("Expected %q, got %q", s, m)
		}
	}
	if _, err := ParseShowCharges("some"); !errors.Is(err, ErrUnknownShowCharges) {
		t.Errorf("Expected ErrUnknownShowCharges, got %v", err)
	}
}

func TestLocation(t *testing.T) {
	d := newDescriber()
	tests := []struct {
		name        string
		p           geom.Vector2
		wallVisible bool
		want        string
	}{
		{"center landmark", geom.V(507, 249), true, "center of Play Area"},
		{"upper center landmark", geom.V(507, 150), true, "upper-center of Play Area"},
		{"sweater column", geom.V(150, 300), true, "left side of sweater"},
		{"sweater shoulder", geom.V(100, 120), true, "left shoulder of sweater"},
		{"at wall", geom.V(621, 112), true, "upper wall"},
		{"right edge becomes wall", geom.V(701, 400), true, "lower wall"},
		{"right edge without wall", geom.V(701, 400), false, "lower-right edge of Play Area"},
		{"wall line without wall", geom.V(621, 249), false, "right side of Play Area"},
		{"near sweater", geom.V(393, 200), true, "sweater"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Location(tt.p, tt.wallVisible); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRelativeCharge(t *testing.T) {
	d := newDescriber()
	tests := []struct {
		n    int
		want string
	}{
		{0, "no"}, {1, "a few"}, {-14, "a few"}, {15, "several"}, {-39, "several"},
		{40, "many"}, {57, "many"},
	}
	for _, tt := range tests {
		got, err := d.RelativeCharge(tt.n)
		if err != nil {
			t.Fatalf("Unexpected error for %d: %v", tt.n, err)
		}
		if got != tt.want {
			t.Errorf("RelativeCharge(%d): expected %q, got %q", tt.n, tt.want, got)
		}
	}
	if _, err := d.RelativeCharge(58); err == nil {
		t.Error("Expected error for charge beyond every bucket")
	}
}

func TestDirectionBetween(t *testing.T) {
	origin := geom.V(0, 0)
	tests := []struct {
		to   geom.Vector2
		want Direction
	}{
		{geom.V(0, -10), Up},
		{geom.V(10, -10), UpRight},
		{geom.V(10, 0), Right},
		{geom.V(10, 10), DownRight},
		{geom.V(0, 10), Down},
		{geom.V(-10, 10), DownLeft},
		{geom.V(-10, 0), Left},
		{geom.V(-10, -10), UpLeft},
		{geom.V(1, -10), Up},
	}
	for _, tt := range tests {
		if got := DirectionBetween(origin, tt.to); got != tt.want {
			t.Errorf("DirectionBetween(%v): expected %d, got %d", tt.to, tt.want, got)
		}
	}
}

func TestWallDescription(t *testing.T) {
	d := newDescriber()
	hidden := BalloonState{Label: "Green Balloon", Center: geom.V(447, 241)}

	t.Run("at rest", func(t *testing.T) {
		yellow := BalloonState{Label: "Yellow Balloon", Center: geom.V(507, 211), Visible: true}
		if got := d.WallDescription(yellow, hidden, false, true, ShowAll); got != wallAtRest {
			t.Errorf("Expected %q, got %q", wallAtRest, got)
		}
	})

	t.Run("neutral balloon at wall", func(t *testing.T) {
		yellow := BalloonState{Label: "Yellow Balloon", Center: geom.V(621, 111), Visible: true}
		if got := d.WallDescription(yellow, hidden, false, true, ShowAll); got != wallAtRest {
			t.Errorf("Expected %q, got %q", wallAtRest, got)
		}
	})

	t.Run("yellow inducing", func(t *testing.T) {
		want := wallAtRest + " Negative charges in upper wall move away from Yellow Balloon a little bit. Positive charges do not move."
		if got := d.WallDescription(yellowAtWall(), hidden, false, true, ShowAll); got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	})

	t.Run("adjacent balloons", func(t *testing.T) {
		yellow := yellowAtWall()
		yellow.InducedDisplacement = 15.3
		green := yellow
		green.Label = "Green Balloon"
		want := wallAtRest + " Negative charges in upper wall move away from balloons a lot. Positive charges do not move."
		if got := d.WallDescription(yellow, green, true, true, ShowAll); got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	})

	t.Run("separate balloons", func(t *testing.T) {
		yellow := yellowAtWall()
		green := yellowAtWall()
		green.Label = "Green Balloon"
		green.Center = geom.V(621, 400)
		green.InducedDisplacement = 25
		want := wallAtRest + " Negative charges in upper wall move away from Yellow Balloon a little bit." +
			" Negative charges in lower wall move away from Green Balloon quite a lot. Positive charges do not move."
		if got := d.WallDescription(yellow, green, false, true, ShowAll); got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	})

	t.Run("no charges shown", func(t *testing.T) {
		want := "At right edge of Play Area."
		if got := d.WallDescription(yellowAtWall(), hidden, false, true, ShowNone); got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	})

	t.Run("charge differences shown", func(t *testing.T) {
		want := "At right edge of Play Area. Has zero net charge, showing no charges."
		if got := d.WallDescription(yellowAtWall(), hidden, false, true, ShowDiff); got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	})
}

func TestInducedChargeAmount(t *testing.T) {
	d := newDescriber()
	tests := []struct {
		displacement float64
		want         string
	}{
		{0, "a little bit"}, {9.9, "a little bit"}, {10, "a lot"}, {19, "a lot"}, {20, "quite a lot"}, {80, "quite a lot"},
	}
	for _, tt := range tests {
		if got := d.InducedChargeAmount(tt.displacement); got != tt.want {
			t.Errorf("InducedChargeAmount(%v): expected %q, got %q", tt.displacement, tt.want, got)
		}
	}
}

func TestInducedChargeIfBigEnough(t *testing.T) {
	d := newDescriber()
	b := yellowAtWall()
	if got := d.InducedChargeIfBigEnough(b, false); got != "" {
		t.Errorf("Expected nothing with the wall removed, got %q", got)
	}
	b.InducingCharge = false
	if got := d.InducedChargeIfBigEnough(b, true); got != "" {
		t.Errorf("Expected nothing without induced charge, got %q", got)
	}
	want := "Negative charges in upper wall move away from Yellow Balloon."
	if got := d.InducedChargeDescription(yellowAtWall(), true, false); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestInducedChargeLevelWithDisplacedCharge(t *testing.T) {
	d := newDescriber()
	b := yellowAtWall()
	b.Center = geom.V(621, 172)

	want := "Negative charges in wall move away from Yellow Balloon."
	if got := d.InducedChargeDescription(b, true, false); got != want {
		t.Errorf("Without a closest charge: expected %q, got %q", want, got)
	}

	b.ClosestWallCharge = geom.V(697, 147.6)
	want = "Negative charges in upper wall move away from Yellow Balloon."
	if got := d.InducedChargeDescription(b, true, false); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if got := InducedChargePosition(b); got != geom.V(621, 147.6) {
		t.Errorf("Expected (621, 147.6), got %v", got)
	}
}

func TestSweaterDescription(t *testing.T) {
	d := newDescriber()
	tests := []struct {
		charge int
		mode   ShowCharges
		want   string
	}{
		{0, ShowAll, "At left edge of Play Area. Has zero net charge, no more positive charges than negative charges."},
		{30, ShowAll, "At left edge of Play Area. Has positive net charge, several more positive charges than negative charges."},
		{57, ShowAll, "At left edge of Play Area. Has positive net charge, no more negative charges, only positive charges."},
		{30, ShowNone, "At left edge of Play Area."},
		{0, ShowDiff, "At left edge of Play Area. Has zero net charge, showing no charges."},
		{30, ShowDiff, "At left edge of Play Area. Has positive net charge, showing several positive charges."},
		{57, ShowDiff, "At left edge of Play Area. Has positive net charge, showing all positive charges."},
	}
	for _, tt := range tests {
		if got := d.SweaterDescription(tt.charge, tt.mode); got != tt.want {
			t.Errorf("SweaterDescription(%d, %s): expected %q, got %q", tt.charge, tt.mode, tt.want, got)
		}
	}
}

func TestSweaterAlerts(t *testing.T) {
	d := newDescriber()
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"relative all", d.SweaterRelativeChargeWithLabel(20, ShowAll), "Sweater has several more positive charges than negative charges."},
		{"relative all empty", d.SweaterRelativeChargeWithLabel(57, ShowAll), "Sweater has no more negative charges, only positive charges."},
		{"relative diff", d.SweaterRelativeChargeWithLabel(20, ShowDiff), "Sweater has positive net charge, showing several positive charges."},
		{"relative none", d.SweaterRelativeChargeWithLabel(20, ShowNone), ""},
		{"no more all", d.SweaterNoMoreChargesAlert(57, ShowAll), "Sweater has no more negative charges, only positive charges."},
		{"no more diff", d.SweaterNoMoreChargesAlert(57, ShowDiff), "Sweater has positive net charge, showing all positive charges."},
		{"net neutral", d.SweaterNetCharge(0), "Sweater has neutral net charge."},
		{"net positive", d.SweaterNetCharge(3), "Sweater has positive net charge."},
		{"more further", d.SweaterMoreCharges(Down, ShowAll), "More pairs of charges further down."},
		{"more diagonal", d.SweaterMoreCharges(UpLeft, ShowDiff), "More hidden pairs of charges up and to the left."},
		{"more hidden", d.SweaterMoreCharges(Up, ShowNone), ""},
		{"summary neutral", d.SweaterSummary(ShowAll, 0), "Sweater has zero net charge, many pairs of negative and positive charges."},
		{"summary charged", d.SweaterSummary(ShowAll, 5), "Sweater has positive net charge, a few more positive charges than negative charges."},
		{"summary diff", d.SweaterSummary(ShowDiff, 0), "Sweater has zero net charge, showing no charges."},
		{"summary none", d.SweaterSummary(ShowNone, 5), "Sweater has positive net charge."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, tt.got)
			}
		})
	}
}

func TestBalloonCharge(t *testing.T) {
	d := newDescriber()
	tests := []struct {
		charge int
		mode   ShowCharges
		want   string
	}{
		{0, ShowAll, "Has zero net charge, a few pairs of negative and positive charges."},
		{-20, ShowAll, "Has negative net charge, several more negative charges than positive charges."},
		{-20, ShowDiff, "Has negative net charge, showing several negative charges."},
		{0, ShowDiff, "Has zero net charge, showing no charges."},
		{-5, ShowNone, "Has negative net charge."},
	}
	for _, tt := range tests {
		if got := d.BalloonCharge(tt.charge, tt.mode); got != tt.want {
			t.Errorf("BalloonCharge(%d, %s): expected %q, got %q", tt.charge, tt.mode, tt.want, got)
		}
	}
}

func TestAttractiveStatePhrase(t *testing.T) {
	d := newDescriber()
	tests := []struct {
		name string
		b    BalloonState
		want string
	}{
		{"open space", BalloonState{Center: geom.V(507, 249)}, "At"},
		{"near sweater", BalloonState{Center: geom.V(393, 249)}, "Near"},
		{"very close to wall", BalloonState{Center: geom.V(610, 249)}, "Very close to"},
		{"over sweater", BalloonState{Center: geom.V(250, 249)}, "On"},
		{"sticking", BalloonState{Center: geom.V(150, 249), Charge: -3, OnSweater: true}, "Sticking to"},
		{"dragged", BalloonState{Center: geom.V(150, 249), Charge: -3, OnSweater: true, Dragged: true}, "Touching"},
		{"neutral on wall", BalloonState{Center: geom.V(621, 249), TouchingWall: true}, "Touching"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.AttractiveStatePhrase(tt.b, true); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestBalloonDescription(t *testing.T) {
	d := newDescriber()

	start := BalloonState{Label: "Yellow Balloon", Center: geom.V(507, 211), Visible: true}
	want := "At center of Play Area. Has zero net charge, a few pairs of negative and positive charges."
	if got := d.BalloonDescription(start, true, ShowAll); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	sticking := BalloonState{Label: "Yellow Balloon", Center: geom.V(150, 249), Charge: -5, Visible: true, OnSweater: true}
	want = "Sticking to left arm of sweater. Has negative net charge, a few more negative charges than positive charges."
	if got := d.BalloonDescription(sticking, true, ShowAll); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	atWall := yellowAtWall()
	atWall.TouchingWall = true
	want = "Sticking to upper wall. Has negative net charge, a few more negative charges than positive charges." +
		" Negative charges in upper wall move away from Yellow Balloon a little bit."
	if got := d.BalloonDescription(atWall, true, ShowAll); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	want = "Sticking to upper wall. Has negative net charge, showing a few negative charges."
	if got := d.BalloonDescription(atWall, true, ShowDiff); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestPickupAlert(t *testing.T) {
	d := newDescriber()
	b := BalloonState{Label: "Yellow Balloon", Charge: -1, Visible: true}
	tests := []struct {
		name          string
		sweaterCharge int
		first         bool
		mode          ShowCharges
		want          string
	}{
		{"first", 1, true, ShowAll, "Yellow Balloon picks up negative charges from sweater."},
		{"more", 2, false, ShowAll, "Yellow Balloon picks up more negative charges."},
		{"diff", 2, false, ShowDiff, "Yellow Balloon picks up more negative charges. Same increase of positive charges on sweater."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.PickupAlert(b, tt.sweaterCharge, tt.first, tt.mode); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}

	b.Charge = -57
	got := d.PickupAlert(b, 57, false, ShowAll)
	want := "Sweater has no more negative charges, only positive charges. Yellow Balloon has many more negative charges than positive charges."
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestBalloonChargeAlert(t *testing.T) {
	d := newDescriber()
	b := BalloonState{Label: "Green Balloon"}
	if got, want := d.BalloonChargeAlert(b, ShowAll), "Green Balloon has zero net charge, a few pairs of negative and positive charges."; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	b.Charge = -45
	if got, want := d.BalloonChargeAlert(b, ShowAll), "Green Balloon has many more negative charges than positive charges."; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if got, want := d.BalloonChargeAlert(b, ShowDiff), "Green Balloon has negative net charge, showing many negative charges."; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if got := d.BalloonChargeAlert(b, ShowNone); got != "" {
		t.Errorf("Expected no alert with charges hidden, got %q", got)
	}
}

func TestSceneObjects(t *testing.T) {
	d := newDescriber()
	tests := []struct {
		green, wall bool
		want        string
	}{
		{true, true, "Currently, room has a yellow balloon, a green balloon, a sweater, and a removable wall."},
		{false, true, "Currently, room has a yellow balloon, a sweater, and a removable wall."},
		{true, false, "Currently, room has a yellow balloon, a green balloon, and a sweater."},
		{false, false, "Currently, room has a yellow balloon and a sweater."},
	}
	for _, tt := range tests {
		if got := d.SceneObjects(tt.green, tt.wall); got != tt.want {
			t.Errorf("SceneObjects(%v, %v): expected %q, got %q", tt.green, tt.wall, tt.want, got)
		}
	}
}

func TestSceneLocationSummary(t *testing.T) {
	d := newDescriber()
	yellow := BalloonState{Label: "Yellow Balloon", Center: geom.V(507, 211), Visible: true}
	green := BalloonState{Label: "Green Balloon", Center: geom.V(447, 241)}

	want := "Yellow Balloon, at center of Play Area."
	if got := d.SceneLocationSummary(yellow, green, true); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	atWall := yellowAtWall()
	atWall.TouchingWall = true
	green.Visible = true
	want = "Yellow Balloon, sticking to upper wall. Negative charges in upper wall move away from Yellow Balloon a little bit." +
		" Green Balloon, at left side of Play Area. Positive charges do not move."
	if got := d.SceneLocationSummary(atWall, green, true); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestSceneSummary(t *testing.T) {
	d := newDescriber()
	sc := Scene{
		Yellow:      BalloonState{Label: "Yellow Balloon", Center: geom.V(507, 211), Visible: true},
		Green:       BalloonState{Label: "Green Balloon", Center: geom.V(447, 241)},
		WallVisible: true,
		Mode:        ShowAll,
	}
	got := d.SceneSummary(sc)
	if len(got) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(got))
	}
	want := "Sweater has zero net charge, many pairs of negative and positive charges." +
		" Yellow Balloon has zero net charge, a few pairs of negative and positive charges." +
		" Wall has zero net charge, many pairs of negative and positive charges."
	if got[2] != want {
		t.Errorf("Expected %q, got %q", want, got[2])
	}
	if strings.Contains(got[2], "Green") {
		t.Error("Expected hidden green balloon to be left out")
	}
}

func TestAlerts(t *testing.T) {
	d := newDescriber()
	tests := []struct {
		got, want string
	}{
		{d.WallVisibilityAlert(false), "Wall removed from Play Area."},
		{d.WallVisibilityAlert(true), "Wall added to Play Area."},
		{d.ShowChargesAlert(ShowNone), "All charges hidden."},
		{d.ShowChargesAlert(ShowDiff), "Only unpaired charges shown."},
		{d.ShowChargesAlert(ShowAll), "No charges hidden."},
		{d.BalloonVisibilityAlert("Green Balloon", true), "Green Balloon added to Play Area."},
		{d.BalloonVisibilityAlert("Green Balloon", false), "Green Balloon removed from Play Area."},
		{d.ResetAlert(false), "Balloon and sweater reset."},
		{d.ResetAlert(true), "Balloons and sweater reset."},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, tt.got)
		}
	}
}

func TestFaultInjectionDoesNotPanic(t *testing.T) {
	d := New(a11y.FaultInjection(a11y.Default(), a11y.FaultPayload))
	if got := d.WallDescription(yellowAtWall(), BalloonState{}, false, true, ShowAll); !strings.Contains(got, a11y.FaultPayload) {
		t.Errorf("Expected payload in description, got %q", got)
	}
}

func TestDescribeTargets(t *testing.T) {
	d := newDescriber()
	sc := Scene{
		Yellow:      BalloonState{Label: "Yellow Balloon", Center: geom.V(507, 211), Visible: true},
		Green:       BalloonState{Label: "Green Balloon", Center: geom.V(447, 241)},
		WallVisible: true,
		Mode:        ShowAll,
	}
	for _, target := range Targets {
		got, err := d.Describe(target, sc)
		if err != nil {
			t.Errorf("Unexpected error for %q: %v", target, err)
		}
		if target != "green" && got == "" {
			t.Errorf("Expected a description for %q", target)
		}
	}
	if got, _ := d.Describe("wall", sc); got != wallAtRest {
		t.Errorf("Expected %q, got %q", wallAtRest, got)
	}
	if _, err := d.Describe("ceiling", sc); !errors.Is(err, ErrUnknownTarget) {
		t.Errorf("Expected ErrUnknownTarget, got %v", err)
	}
}
