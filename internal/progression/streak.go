package progression

import (
	"time"

	"saiyan/training-app/internal/domain"
)

const (
	streakBonusPerDay = 10
	maxStreakBonus    = 200
)

// StreakResult is the outcome of applying a new completion to the streak.
type StreakResult struct {
	Days      int  // new streak length
	Bonus     int  // power awarded for the streak, zero unless Continued
	Continued bool // the previous workout was today or yesterday
}

// UpdateStreak applies a completion at completedAt to a streak of currentDays.
//
// The previous workout is the log with the latest CompletedAt; on a tie the one
// inserted last wins. A previous workout on the same or the preceding calendar
// day (in loc) continues the streak and earns min(days*10, 200). Anything else,
// including no previous workout or one completed after completedAt, starts a
// new streak of one day with no bonus.
func UpdateStreak(prior []domain.WorkoutLog, completedAt time.Time, currentDays int, loc *time.Location) StreakResult {
	last, ok := mostRecent(prior)
	if !ok {
		return StreakResult{Days: 1}
	}
	if last.CompletedAt.After(completedAt) {
		return StreakResult{Days: 1}
	}

	switch calendarDaysBetween(last.CompletedAt, completedAt, loc) {
	case 0, 1:
		days := currentDays + 1
		return StreakResult{
			Days:      days,
			Bonus:     StreakBonus(days),
			Continued: true,
		}
	default:
		return StreakResult{Days: 1}
	}
}

// StreakBonus is the power bonus for a continued streak of days.
func StreakBonus(days int) int {
	if days <= 0 {
		return 0
	}
	return min(days*streakBonusPerDay, maxStreakBonus)
}

func mostRecent(logs []domain.WorkoutLog) (domain.WorkoutLog, bool) {
	if len(logs) == 0 {
		return domain.WorkoutLog{}, false
	}
	last := logs[0]
	for _, l := range logs[1:] {
		if !l.CompletedAt.Before(last.CompletedAt) {
			last = l
		}
	}
	return last, true
}

// calendarDaysBetween counts calendar days from a to b in loc, ignoring clock time.
func calendarDaysBetween(a, b time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.Local
	}
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}
