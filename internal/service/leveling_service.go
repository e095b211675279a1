package service

// XPPerCorrectAnswer is awarded for every correctly answered question.
const XPPerCorrectAnswer = 10

// XPToLevelUp is the fixed threshold at which accumulated XP rolls over into
// the next level. A user's stored XP is always in [0, XPToLevelUp).
const XPToLevelUp = 100

type LevelingService interface {
	ApplyXP(xp, level, gained int) (newXP, newLevel int)
}

type levelingService struct{}

func NewLevelingService() LevelingService {
	return &levelingService{}
}

// ApplyXP adds gained XP to the current (xp, level) pair and rolls every full
// XPToLevelUp chunk into a level. Equivalent to divmod over the combined
// total; for any non-negative input the returned XP is in [0, XPToLevelUp).
func (s *levelingService) ApplyXP(xp, level, gained int) (int, int) {
	newXP := xp + gained
	newLevel := level
	for newXP >= XPToLevelUp {
		newLevel++
		newXP -= XPToLevelUp
	}
	return newXP, newLevel
}
