package service

import "testing"

func TestMasteryPercentage(t *testing.T) {
	tests := []struct {
		name string
		xp   int
		want float64
	}{
		{name: "zero xp", xp: 0, want: 0},
		{name: "partial", xp: 45, want: 45},
		{name: "full level equivalent", xp: 100, want: 100},
		{name: "not capped above 100", xp: 130, want: 130},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MasteryPercentage(tt.xp); got != tt.want {
				t.Errorf("MasteryPercentage(%d) = %v, want %v", tt.xp, got, tt.want)
			}
		})
	}
}

func TestMasteryLevel(t *testing.T) {
	tests := []struct {
		name       string
		percentage float64
		wantLevel  string
		wantColor  string
	}{
		{name: "zero", percentage: 0, wantLevel: MasteryBeginner, wantColor: "danger"},
		{name: "just under intermediate", percentage: 59.9, wantLevel: MasteryBeginner, wantColor: "danger"},
		{name: "intermediate boundary is inclusive", percentage: 60, wantLevel: MasteryIntermediate, wantColor: "warning"},
		{name: "mid intermediate", percentage: 84.9, wantLevel: MasteryIntermediate, wantColor: "warning"},
		{name: "proficient boundary is inclusive", percentage: 85, wantLevel: MasteryProficient, wantColor: "success"},
		{name: "above 100", percentage: 130, wantLevel: MasteryProficient, wantColor: "success"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, color := MasteryLevel(tt.percentage)
			if level != tt.wantLevel || color != tt.wantColor {
				t.Errorf("MasteryLevel(%v) = (%q, %q), want (%q, %q)",
					tt.percentage, level, color, tt.wantLevel, tt.wantColor)
			}
		})
	}
}

func TestResourceLink(t *testing.T) {
	t.Run("mapped topic", func(t *testing.T) {
		if got := ResourceLink("Loops"); got != "https://docs.python.org/3/tutorial/controlflow.html" {
			t.Errorf("ResourceLink(Loops) = %q", got)
		}
	})

	t.Run("unmapped topic falls back to placeholder", func(t *testing.T) {
		if got := ResourceLink("Quantum Computing"); got != "#" {
			t.Errorf("ResourceLink(unmapped) = %q, want %q", got, "#")
		}
	})
}
