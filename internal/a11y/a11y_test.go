package a11y

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFill(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		values  Values
		want    string
	}{
		{"simple", "Has {{netCharge}} net charge", Values{"netCharge": "zero"}, "Has zero net charge"},
		{"repeated", "{{a}} and {{a}}", Values{"a": "x"}, "x and x"},
		{"missing", "{{a}} {{b}}", Values{"a": "x"}, "x "},
		{"nil values", "start {{a}} end", nil, "start  end"},
		{"no placeholders", "plain.", Values{"a": "x"}, "plain."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fill(tt.pattern, tt.values); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCompose(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"At left edge of Play Area. .", "At left edge of Play Area."},
		{"Has zero net charge,  .", "Has zero net charge."},
		{". Positive charges do not move.", "Positive charges do not move."},
		{"  a  b  ", "a b"},
		{"one..", "one."},
	}
	for _, tt := range tests {
		if got := Compose(tt.in); got != tt.want {
			t.Errorf("Compose(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestEmptyFragmentShortensSentence(t *testing.T) {
	s := English()
	got := FillCompose(s.WallChargeWithInducedPattern, Values{
		"netCharge":    s.WallNoNetCharge,
		"shownCharges": s.ManyChargePairs,
	})
	if strings.Contains(got, "  ") || strings.HasSuffix(got, " ") || strings.Contains(got, " .") {
		t.Errorf("Expected tidy sentence, got %q", got)
	}
	if got != "Has zero net charge, many pairs of negative and positive charges." {
		t.Errorf("Unexpected sentence %q", got)
	}
}

func TestFragmentToSentence(t *testing.T) {
	s := English()
	if got := s.FragmentToSentence("At right edge of Play Area"); got != "At right edge of Play Area." {
		t.Errorf("Expected trailing period, got %q", got)
	}
}

func TestFaultInjection(t *testing.T) {
	p := FaultInjection(Default(), "<x>")
	s := p.Strings()
	if s.WallLocation != "At right edge of Play Area<x>" {
		t.Errorf("Expected payload appended, got %q", s.WallLocation)
	}
	if !strings.HasSuffix(s.YellowBalloonLabel, "<x>") {
		t.Errorf("Expected payload on labels, got %q", s.YellowBalloonLabel)
	}

	// the base table is never mutated
	if Default().Strings().WallLocation != "At right edge of Play Area" {
		t.Error("Expected default table unchanged")
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strings.yaml")
	data := "wall_location: By the wall\nyellow_balloon_label: Sunny\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write strings file: %v", err)
	}

	p, err := LoadOverrides(path, Default())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	s := p.Strings()
	if s.WallLocation != "By the wall" || s.YellowBalloonLabel != "Sunny" {
		t.Errorf("Expected overrides applied, got %q / %q", s.WallLocation, s.YellowBalloonLabel)
	}
	if s.GreenBalloonLabel != "Green Balloon" {
		t.Errorf("Expected untouched keys to keep defaults, got %q", s.GreenBalloonLabel)
	}
}

func TestLoadOverridesRejectsBadPattern(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strings.yaml")
	data := "wall_location: By the wall\nwall_description_pattern: \"{{location}} {{ end\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write strings file: %v", err)
	}

	_, err := LoadOverrides(path, Default())
	if !errors.Is(err, ErrBadPattern) {
		t.Fatalf("Expected ErrBadPattern, got %v", err)
	}
	if !strings.Contains(err.Error(), "wall_description_pattern") {
		t.Errorf("Expected the bad key named, got %v", err)
	}
	if strings.Contains(err.Error(), "wall_location:") {
		t.Errorf("Expected valid keys not reported, got %v", err)
	}
}

func TestDefaultStringsValidate(t *testing.T) {
	if err := English().Validate(); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestNew(t *testing.T) {
	p, err := New(ModeFault, "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.HasSuffix(p.Strings().Wall, FaultPayload) {
		t.Error("Expected fault payload in xss mode")
	}

	if _, err := New("loud", ""); err == nil {
		t.Error("Expected error for unknown mode")
	}
	if _, err := New(ModeNormal, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing strings file")
	}
	if _, err := ParseMode("xss"); err != nil {
		t.Errorf("Unexpected error parsing xss: %v", err)
	}
}
