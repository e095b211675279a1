package service

import "testing"

func TestApplyXP(t *testing.T) {
	svc := NewLevelingService()

	tests := []struct {
		name      string
		xp        int
		level     int
		gained    int
		wantXP    int
		wantLevel int
	}{
		{name: "no gain", xp: 40, level: 2, gained: 0, wantXP: 40, wantLevel: 2},
		{name: "gain below threshold", xp: 40, level: 0, gained: 30, wantXP: 70, wantLevel: 0},
		{name: "exact threshold rolls over to zero", xp: 50, level: 1, gained: 50, wantXP: 0, wantLevel: 2},
		{name: "single level up with remainder", xp: 95, level: 0, gained: 10, wantXP: 5, wantLevel: 1},
		{name: "multiple levels in one gain", xp: 90, level: 3, gained: 250, wantXP: 40, wantLevel: 6},
		{name: "fresh user perfect ten-question quiz", xp: 0, level: 0, gained: 100, wantXP: 0, wantLevel: 1},
		{name: "one xp short of threshold", xp: 0, level: 0, gained: 99, wantXP: 99, wantLevel: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotXP, gotLevel := svc.ApplyXP(tt.xp, tt.level, tt.gained)
			if gotXP != tt.wantXP || gotLevel != tt.wantLevel {
				t.Errorf("ApplyXP(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.xp, tt.level, tt.gained, gotXP, gotLevel, tt.wantXP, tt.wantLevel)
			}
		})
	}
}

func TestApplyXPMatchesDivmod(t *testing.T) {
	svc := NewLevelingService()

	for gained := 0; gained <= 500; gained += XPPerCorrectAnswer {
		for xp := 0; xp < XPToLevelUp; xp += 7 {
			gotXP, gotLevel := svc.ApplyXP(xp, 0, gained)
			total := xp + gained
			if wantXP, wantLevel := total%XPToLevelUp, total/XPToLevelUp; gotXP != wantXP || gotLevel != wantLevel {
				t.Fatalf("ApplyXP(%d, 0, %d) = (%d, %d), want (%d, %d)",
					xp, gained, gotXP, gotLevel, wantXP, wantLevel)
			}
			if gotXP < 0 || gotXP >= XPToLevelUp {
				t.Fatalf("ApplyXP(%d, 0, %d) returned xp %d outside [0, %d)", xp, gained, gotXP, XPToLevelUp)
			}
		}
	}
}
