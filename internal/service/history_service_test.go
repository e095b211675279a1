package service

import (
	"testing"
	"time"

	"github.com/pypath/pypath/internal/model"
)

func TestFormatDuration(t *testing.T) {
	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		t := base.Add(d)
		return &t
	}

	tests := []struct {
		name  string
		start *time.Time
		end   *time.Time
		want  string
	}{
		{name: "seconds only", start: &base, end: at(45 * time.Second), want: "45s"},
		{name: "minutes and seconds", start: &base, end: at(65 * time.Second), want: "1m 5s"},
		{name: "exact minute keeps zero seconds", start: &base, end: at(2 * time.Minute), want: "2m 0s"},
		{name: "hours minutes seconds", start: &base, end: at(2*time.Hour + 15*time.Minute + 30*time.Second), want: "2h 15m 30s"},
		{name: "zero duration", start: &base, end: &base, want: "0s"},
		{name: "missing end", start: &base, end: nil, want: "N/A"},
		{name: "missing start", start: nil, end: &base, want: "N/A"},
		{name: "both missing", start: nil, end: nil, want: "N/A"},
		{name: "end before start", start: at(time.Minute), end: &base, want: "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.start, tt.end); got != tt.want {
				t.Errorf("FormatDuration() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildHistorySequenceNumbers(t *testing.T) {
	end := func(day int) *time.Time {
		t := time.Date(2026, 3, day, 12, 0, 0, 0, time.UTC)
		return &t
	}
	attempt := func(id, userID, setID uint, timeEnd *time.Time) model.Result {
		return model.Result{
			ID:            id,
			UserID:        userID,
			QuestionSetID: setID,
			QuestionSet:   model.QuestionSet{Name: "Python Basics"},
			TimeEnd:       timeEnd,
		}
	}

	// Display order is completion time descending; sequence numbers must
	// still count upward in completion order per (user, set) pair.
	results := []model.Result{
		attempt(3, 1, 10, end(20)),
		attempt(2, 1, 10, end(15)),
		attempt(5, 1, 11, end(12)),
		attempt(1, 1, 10, end(10)),
		attempt(4, 2, 10, end(11)),
	}

	rows := BuildHistory(results)
	if len(rows) != 5 {
		t.Fatalf("len(rows) = %d, want 5", len(rows))
	}

	wantByID := map[uint]int{3: 3, 2: 2, 5: 1, 1: 1, 4: 1}
	for _, row := range rows {
		if want := wantByID[row.ID]; row.AttemptNumber != want {
			t.Errorf("attempt %d: AttemptNumber = %d, want %d", row.ID, row.AttemptNumber, want)
		}
	}

	// Input order preserved.
	for i, wantID := range []uint{3, 2, 5, 1, 4} {
		if rows[i].ID != wantID {
			t.Errorf("rows[%d].ID = %d, want %d", i, rows[i].ID, wantID)
		}
	}
}

func TestBuildHistoryUnfinishedAttempts(t *testing.T) {
	done := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	started := time.Date(2026, 3, 11, 8, 0, 0, 0, time.UTC)

	results := []model.Result{
		{ID: 2, UserID: 1, QuestionSetID: 10, TimeStart: &started},
		{ID: 1, UserID: 1, QuestionSetID: 10, TimeStart: &done, TimeEnd: &done},
	}

	rows := BuildHistory(results)

	// Unfinished attempts sequence after finished ones.
	if rows[1].AttemptNumber != 1 {
		t.Errorf("finished attempt: AttemptNumber = %d, want 1", rows[1].AttemptNumber)
	}
	if rows[0].AttemptNumber != 2 {
		t.Errorf("unfinished attempt: AttemptNumber = %d, want 2", rows[0].AttemptNumber)
	}

	if rows[0].Duration != "N/A" {
		t.Errorf("unfinished attempt: Duration = %q, want N/A", rows[0].Duration)
	}
	if rows[0].EndTime != "N/A" {
		t.Errorf("unfinished attempt: EndTime = %q, want N/A", rows[0].EndTime)
	}
	if rows[0].Date != "2026-03-11" {
		t.Errorf("unfinished attempt: Date = %q, want start date fallback", rows[0].Date)
	}
	if rows[1].Duration != "0s" {
		t.Errorf("finished attempt: Duration = %q, want 0s", rows[1].Duration)
	}
	if rows[1].StartTime != "09:30:00" || rows[1].EndTime != "09:30:00" {
		t.Errorf("finished attempt: times = (%q, %q), want 09:30:00", rows[1].StartTime, rows[1].EndTime)
	}
}

func TestBuildHistoryTiesBrokenByID(t *testing.T) {
	sameEnd := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	results := []model.Result{
		{ID: 7, UserID: 1, QuestionSetID: 10, TimeEnd: &sameEnd},
		{ID: 4, UserID: 1, QuestionSetID: 10, TimeEnd: &sameEnd},
	}

	rows := BuildHistory(results)
	wantByID := map[uint]int{4: 1, 7: 2}
	for _, row := range rows {
		if want := wantByID[row.ID]; row.AttemptNumber != want {
			t.Errorf("attempt %d: AttemptNumber = %d, want %d", row.ID, row.AttemptNumber, want)
		}
	}
}
