package insight

import "github.com/daymentor/mentor-backend/internal/domain"

// ComplianceRate returns the percentage of today's entries marked completed.
// An empty entry list yields 0.
func ComplianceRate(entries []domain.EntryWithRoutine) float64 {
	if len(entries) == 0 {
		return 0
	}
	completed := 0
	for _, e := range entries {
		if e.Entry.Status == domain.EntryStatusCompleted {
			completed++
		}
	}
	return float64(completed) / float64(len(entries)) * 100
}

// TopPerformer returns the name of the highest-priority completed routine,
// or nil when nothing was completed. Priority ties resolve to the
// first-encountered entry.
func TopPerformer(entries []domain.EntryWithRoutine) *string {
	var best *domain.EntryWithRoutine
	for i := range entries {
		if entries[i].Entry.Status != domain.EntryStatusCompleted {
			continue
		}
		if best == nil || entries[i].Routine.Priority > best.Routine.Priority {
			best = &entries[i]
		}
	}
	if best == nil {
		return nil
	}
	name := best.Routine.Name
	return &name
}

// BiggestMiss returns the name of the highest-priority skipped or not-done
// routine, or nil when nothing was missed. Same tie-break as TopPerformer.
func BiggestMiss(entries []domain.EntryWithRoutine) *string {
	var worst *domain.EntryWithRoutine
	for i := range entries {
		if !entries[i].Entry.Status.IsMissed() {
			continue
		}
		if worst == nil || entries[i].Routine.Priority > worst.Routine.Priority {
			worst = &entries[i]
		}
	}
	if worst == nil {
		return nil
	}
	name := worst.Routine.Name
	return &name
}
