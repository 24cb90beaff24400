package tokens

import "testing"

func TestEstimate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "one char rounds up", text: "a", want: 1},
		{name: "exact multiple", text: "abcd", want: 1},
		{name: "five chars", text: "abcde", want: 2},
		{name: "multibyte counted as runes", text: "héllo", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Estimate(tt.text); got != tt.want {
				t.Errorf("Estimate(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestLimitsClassify(t *testing.T) {
	l := Limits{WarnThreshold: 0.8, MaxLimit: 100}

	tests := []struct {
		name  string
		total int
		want  Level
	}{
		{name: "zero usage", total: 0, want: LevelOK},
		{name: "well under budget", total: 10, want: LevelOK},
		{name: "half of max", total: 50, want: LevelOK},
		{name: "at warn threshold stays ok", total: 80, want: LevelOK},
		{name: "just over warn threshold", total: 81, want: LevelWarning},
		{name: "at max", total: 100, want: LevelWarning},
		{name: "over max", total: 101, want: LevelExceeded},
		{name: "double max", total: 200, want: LevelExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.Classify(tt.total); got != tt.want {
				t.Errorf("Classify(%d) = %q, want %q", tt.total, got, tt.want)
			}
		})
	}
}

func TestEstimateMonotonic(t *testing.T) {
	// appending text never lowers the estimate
	text := ""
	prev := 0
	for i := 0; i < 20; i++ {
		text += "word "
		got := Estimate(text)
		if got < prev {
			t.Fatalf("Estimate(%d chars) = %d, below previous %d", len(text), got, prev)
		}
		prev = got
	}
}

func TestLimitsPercent(t *testing.T) {
	l := Limits{WarnThreshold: 0.8, MaxLimit: 200}

	tests := []struct {
		total int
		want  int
	}{
		{total: 0, want: 0},
		{total: 1, want: 1},
		{total: 100, want: 50},
		{total: 200, want: 100},
		{total: 400, want: 200},
	}
	for _, tt := range tests {
		if got := l.Percent(tt.total); got != tt.want {
			t.Errorf("Percent(%d) = %d, want %d", tt.total, got, tt.want)
		}
	}

	if got := (Limits{}).Percent(100); got != 0 {
		t.Errorf("Percent with zero max = %d, want 0", got)
	}
}

func TestDefaultLimits(t *testing.T) {
	l := DefaultLimits()
	if l.MaxLimit != 2_000_000 {
		t.Errorf("MaxLimit = %d, want 2000000", l.MaxLimit)
	}
	if l.Classify(1_600_000) != LevelOK {
		t.Error("expected ok at exactly 80% of the default budget")
	}
	if l.Classify(1_600_001) != LevelWarning {
		t.Error("expected warning just above 80% of the default budget")
	}
	if l.Classify(2_100_000) != LevelExceeded {
		t.Error("expected exceeded above default budget")
	}
}
