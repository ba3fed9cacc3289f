package domain

// RoutineStats aggregates a single routine's completion history.
type RoutineStats struct {
	RoutineName    string
	CompletionRate float64 // 0-100
	Completed      int
	TotalAttempts  int
}

// HistoricalSnapshot aggregates a user's entire logged history. It is always
// recomputed from persisted rows, never cached. Stats preserve routine
// encounter order; best/worst ties resolve to the first-encountered routine.
type HistoricalSnapshot struct {
	Stats         []RoutineStats
	AverageMood   *float64
	AverageEnergy *float64
	AverageStress *float64
	DaysLogged    int
	BestRoutine   *string
	WorstRoutine  *string
}

// StatsFor returns the stats for a routine by name, or nil if the routine
// has no recorded attempts.
func (s *HistoricalSnapshot) StatsFor(name string) *RoutineStats {
	for i := range s.Stats {
		if s.Stats[i].RoutineName == name {
			return &s.Stats[i]
		}
	}
	return nil
}

// MeanCompletionRate returns the arithmetic mean of all per-routine
// completion rates, and false when no routine has stats.
func (s *HistoricalSnapshot) MeanCompletionRate() (float64, bool) {
	if len(s.Stats) == 0 {
		return 0, false
	}
	var sum float64
	for _, st := range s.Stats {
		sum += st.CompletionRate
	}
	return sum / float64(len(s.Stats)), true
}
