package gamification

import (
	"time"
)

const (
	// XPPerLevelBase scales the level-up threshold: level N needs N*100 XP.
	XPPerLevelBase = 100

	// StreakBonusXP is granted when a login streak extends by one day.
	StreakBonusXP = 10
)

// Threshold returns the XP needed to leave the given level.
func Threshold(level int) int {
	return level * XPPerLevelBase
}

// ApplyXP adds an XP amount and consumes level-up thresholds until the
// remainder falls below the current one. The threshold is recomputed each
// iteration, so every level needs more points than the last.
func ApplyXP(level, xp, amount int) (newLevel, newXP int, leveledUp bool) {
	xp += amount
	for xp >= Threshold(level) {
		xp -= Threshold(level)
		level++
		leveledUp = true
	}
	return level, xp, leveledUp
}

// DayDelta returns the number of UTC calendar days between two instants,
// ignoring time of day.
func DayDelta(last, now time.Time) int {
	lastDay := last.UTC().Truncate(24 * time.Hour)
	today := now.UTC().Truncate(24 * time.Hour)
	return int(today.Sub(lastDay) / (24 * time.Hour))
}

// AdvanceStreak applies a calendar-day delta to a login streak. It returns
// the new streak and whether the extension earns the streak XP bonus. A
// delta of zero leaves the streak untouched; a gap larger than one day
// breaks it back to one.
func AdvanceStreak(streak, delta int) (int, bool) {
	switch {
	case delta == 1:
		return streak + 1, true
	case delta > 1:
		return 1, false
	default:
		return streak, false
	}
}
