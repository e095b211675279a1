package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/pypath/pypath/internal/dto"
	"github.com/pypath/pypath/internal/model"
	"github.com/pypath/pypath/internal/repository"
	"github.com/rs/zerolog/log"
)

// HistoryService produces display-ready attempt history, for a single user
// or across all students for the admin view.
type HistoryService interface {
	GetUserHistory(userID uint) ([]dto.AttemptHistoryDTO, error)
	GetAllResults(search string) ([]dto.AttemptHistoryDTO, error)
}

type historyService struct {
	resultRepo repository.ResultRepository
}

func NewHistoryService(resultRepo repository.ResultRepository) HistoryService {
	return &historyService{resultRepo: resultRepo}
}

func (s *historyService) GetUserHistory(userID uint) ([]dto.AttemptHistoryDTO, error) {
	results, err := s.resultRepo.FindAllByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to fetch user attempt history")
		return nil, fmt.Errorf("error fetching history: %w", err)
	}
	return BuildHistory(results), nil
}

func (s *historyService) GetAllResults(search string) ([]dto.AttemptHistoryDTO, error) {
	results, err := s.resultRepo.FindAllStudents(search)
	if err != nil {
		log.Error().Err(err).Str("search", search).Msg("Failed to fetch student results")
		return nil, fmt.Errorf("error fetching results: %w", err)
	}
	return BuildHistory(results), nil
}

// BuildHistory annotates attempt rows with formatted times, durations and
// per-(user, set) sequence numbers. The input order (completion time
// descending) is preserved; sequence numbers count attempts in ascending
// completion order, so they are independent of the display order.
func BuildHistory(results []model.Result) []dto.AttemptHistoryDTO {
	sequence := sequenceNumbers(results)

	rows := make([]dto.AttemptHistoryDTO, 0, len(results))
	for _, r := range results {
		rows = append(rows, dto.AttemptHistoryDTO{
			ID:             r.ID,
			Username:       r.User.Username,
			SetName:        r.QuestionSet.Name,
			Score:          r.Score,
			TotalQuestions: r.TotalQuestions,
			Date:           formatDate(&r),
			StartTime:      formatTimeOfDay(r.TimeStart),
			EndTime:        formatTimeOfDay(r.TimeEnd),
			Duration:       FormatDuration(r.TimeStart, r.TimeEnd),
			AttemptNumber:  sequence[r.ID],
		})
	}
	return rows
}

// sequenceNumbers assigns each attempt its 1-based rank among all attempts by
// the same (user, question set) pair, ordered by completion time ascending.
// Unfinished attempts sort after finished ones, tie-broken by ID.
func sequenceNumbers(results []model.Result) map[uint]int {
	type pairKey struct {
		userID uint
		setID  uint
	}
	groups := make(map[pairKey][]model.Result)
	for _, r := range results {
		key := pairKey{userID: r.UserID, setID: r.QuestionSetID}
		groups[key] = append(groups[key], r)
	}

	sequence := make(map[uint]int, len(results))
	for _, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			ti, tj := group[i].TimeEnd, group[j].TimeEnd
			switch {
			case ti == nil && tj == nil:
				return group[i].ID < group[j].ID
			case ti == nil:
				return false
			case tj == nil:
				return true
			case ti.Equal(*tj):
				return group[i].ID < group[j].ID
			default:
				return ti.Before(*tj)
			}
		})
		for i, r := range group {
			sequence[r.ID] = i + 1
		}
	}
	return sequence
}

// FormatDuration renders the attempt duration as "2h 15m 30s", "1m 5s" or
// "45s" depending on magnitude. Missing start or end yields "N/A".
func FormatDuration(start, end *time.Time) string {
	if start == nil || end == nil {
		return "N/A"
	}
	total := int(end.Sub(*start).Seconds())
	if total < 0 {
		return "N/A"
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

func formatTimeOfDay(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return t.Format("15:04:05")
}

func formatDate(r *model.Result) string {
	switch {
	case r.TimeEnd != nil:
		return r.TimeEnd.Format("2006-01-02")
	case r.TimeStart != nil:
		return r.TimeStart.Format("2006-01-02")
	default:
		return r.CreatedAt.Format("2006-01-02")
	}
}
