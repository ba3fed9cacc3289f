// Package insight implements the deterministic analysis core: historical
// performance aggregation, daily compliance calculation, and rule-based
// feedback synthesis. It depends only on domain value types so it can be
// exercised without a database.
package insight

import (
	"github.com/google/uuid"

	"github.com/daymentor/mentor-backend/internal/domain"
)

// AnalyzeHistory computes a HistoricalSnapshot from a user's routines, daily
// logs, and every routine entry ever recorded.
//
// Routines are processed in the order given (their creation order), and that
// order is preserved in the snapshot stats. Best/worst routine ties resolve
// to the first-encountered routine. Routines with zero recorded entries are
// excluded from stats entirely. Mood/energy/stress averages cover only logs
// where the field was filled in; a field with no observations stays nil.
func AnalyzeHistory(routines []domain.Routine, logs []domain.DailyLog, entries []domain.RoutineEntry) domain.HistoricalSnapshot {
	snapshot := domain.HistoricalSnapshot{DaysLogged: len(logs)}
	if len(logs) == 0 {
		return snapshot
	}

	byRoutine := make(map[uuid.UUID][]domain.RoutineEntry, len(routines))
	for _, e := range entries {
		byRoutine[e.RoutineID] = append(byRoutine[e.RoutineID], e)
	}

	for _, r := range routines {
		attempts := byRoutine[r.ID]
		if len(attempts) == 0 {
			continue
		}
		completed := 0
		for _, e := range attempts {
			if e.Status == domain.EntryStatusCompleted {
				completed++
			}
		}
		stats := domain.RoutineStats{
			RoutineName:    r.Name,
			CompletionRate: float64(completed) / float64(len(attempts)) * 100,
			Completed:      completed,
			TotalAttempts:  len(attempts),
		}
		snapshot.Stats = append(snapshot.Stats, stats)

		if snapshot.BestRoutine == nil || stats.CompletionRate > snapshot.StatsFor(*snapshot.BestRoutine).CompletionRate {
			name := stats.RoutineName
			snapshot.BestRoutine = &name
		}
		if snapshot.WorstRoutine == nil || stats.CompletionRate < snapshot.StatsFor(*snapshot.WorstRoutine).CompletionRate {
			name := stats.RoutineName
			snapshot.WorstRoutine = &name
		}
	}

	snapshot.AverageMood = meanOf(logs, func(l domain.DailyLog) *int { return l.Mood })
	snapshot.AverageEnergy = meanOf(logs, func(l domain.DailyLog) *int { return l.EnergyLevel })
	snapshot.AverageStress = meanOf(logs, func(l domain.DailyLog) *int { return l.StressLevel })

	return snapshot
}

// meanOf averages an optional per-log field over the logs where it is set.
func meanOf(logs []domain.DailyLog, field func(domain.DailyLog) *int) *float64 {
	sum, n := 0, 0
	for _, l := range logs {
		if v := field(l); v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := float64(sum) / float64(n)
	return &avg
}
