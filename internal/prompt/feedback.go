package prompt

import (
	"fmt"
	"strings"
	"time"

	"github.com/daymentor/mentor-backend/internal/domain"
)

// FeedbackPromptInput is the plain-data view of everything the feedback
// prompt embeds. Handed to the builder by the orchestrator so this package
// never sees persistence types.
type FeedbackPromptInput struct {
	UserName        string
	MentorStyle     domain.MentorStyle
	MentorIntensity int
	LogDate         time.Time
	Mood            *int
	Energy          *int
	Stress          *int
	Notes           string
	Highlights      string
	Challenges      string
	Entries         []domain.EntryWithRoutine
	History         domain.HistoricalSnapshot
}

// BuildFeedback renders the user-role prompt for mentor feedback generation.
// Missing optional fields render as explicit "Not logged"/"N/A" placeholders
// so the prompt has a stable, parseable shape regardless of data completeness.
func BuildFeedback(in FeedbackPromptInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a personal mentor analyzing a user's daily routine performance.\n\n")
	fmt.Fprintf(&b, "USER INFORMATION:\n")
	fmt.Fprintf(&b, "- Name: %s\n", in.UserName)
	fmt.Fprintf(&b, "- Mentor Style: %s (intensity %d/10)\n\n", in.MentorStyle, in.MentorIntensity)

	fmt.Fprintf(&b, "TODAY'S LOG:\n")
	fmt.Fprintf(&b, "- Date: %s\n", in.LogDate.Format("2006-01-02"))
	fmt.Fprintf(&b, "- Mood: %s/10\n", scaleOrNotLogged(in.Mood))
	fmt.Fprintf(&b, "- Energy Level: %s/10\n", scaleOrNotLogged(in.Energy))
	fmt.Fprintf(&b, "- Stress Level: %s/10\n", scaleOrNotLogged(in.Stress))
	fmt.Fprintf(&b, "- Notes: %s\n", textOr(in.Notes, "No notes"))
	fmt.Fprintf(&b, "- Highlights: %s\n", textOr(in.Highlights, "None"))
	fmt.Fprintf(&b, "- Challenges: %s\n\n", textOr(in.Challenges, "None"))

	fmt.Fprintf(&b, "TODAY'S ROUTINE PERFORMANCE:\n%s\n", routinePerformanceBlock(in.Entries, in.History))
	fmt.Fprintf(&b, "HISTORICAL PERFORMANCE:\n%s\n", historicalBlock(in.History))

	b.WriteString(`TASK:
Generate personalized mentor feedback based on:
1. TODAY'S PERFORMANCE compared to their historical average
2. MOOD/STRESS/ENERGY trends
3. SPECIFIC ROUTINE successes and failures
4. HISTORICAL PATTERNS (what's working, what's not)

Include:
- An opening assessment of today's performance
- Specific feedback about completed/missed routines
- Observations about mood/stress/energy impact
- Historical context ("You usually do better with X", "This routine is consistently your weakness")
- 2-3 actionable suggestions for improvement
- Encouragement (even if performance was poor, find something positive)

Keep response concise but meaningful. Stay in character for the configured mentor style.
`)

	return b.String()
}

func routinePerformanceBlock(entries []domain.EntryWithRoutine, history domain.HistoricalSnapshot) string {
	if len(entries) == 0 {
		return "No routines logged\n"
	}

	var b strings.Builder
	for _, e := range entries {
		historicalRate := "N/A"
		if stats := history.StatsFor(e.Routine.Name); stats != nil {
			historicalRate = fmt.Sprintf("%.0f%%", stats.CompletionRate)
		}
		fmt.Fprintf(&b, "Routine: %s\n", e.Routine.Name)
		fmt.Fprintf(&b, "Status: %s\n", e.Entry.Status)
		fmt.Fprintf(&b, "Completion: %d%%\n", e.Entry.CompletionPercentage)
		fmt.Fprintf(&b, "Target Duration: %d min | Actual: %s min\n", e.Routine.TargetDuration, minutesOr(e.Entry.ActualDuration, "N/A"))
		fmt.Fprintf(&b, "Difficulty Felt: %s/10\n", scaleOr(e.Entry.DifficultyFelt, "N/A"))
		fmt.Fprintf(&b, "Notes: %s\n", textOr(e.Entry.Notes, "No notes"))
		fmt.Fprintf(&b, "Historical Completion Rate: %s\n\n", historicalRate)
	}
	return b.String()
}

func historicalBlock(h domain.HistoricalSnapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- Total Days Logged: %d\n", h.DaysLogged)
	fmt.Fprintf(&b, "- Average Mood: %s/10\n", averageOr(h.AverageMood))
	fmt.Fprintf(&b, "- Average Energy: %s/10\n", averageOr(h.AverageEnergy))
	fmt.Fprintf(&b, "- Average Stress: %s/10\n", averageOr(h.AverageStress))
	fmt.Fprintf(&b, "- Best Performing Routine: %s\n", namedRate(h, h.BestRoutine))
	fmt.Fprintf(&b, "- Worst Performing Routine: %s\n", namedRate(h, h.WorstRoutine))

	if mean, ok := h.MeanCompletionRate(); ok {
		fmt.Fprintf(&b, "- Overall Compliance Rate: %.0f%%\n", mean)
	} else {
		fmt.Fprintf(&b, "- Overall Compliance Rate: N/A\n")
	}

	b.WriteString("\nRoutine Completion Rates:\n")
	if len(h.Stats) == 0 {
		b.WriteString("No historical data\n")
		return b.String()
	}
	for _, s := range h.Stats {
		fmt.Fprintf(&b, "- %s: %.0f%% (%d/%d completed)\n", s.RoutineName, s.CompletionRate, s.Completed, s.TotalAttempts)
	}
	return b.String()
}

func namedRate(h domain.HistoricalSnapshot, name *string) string {
	if name == nil {
		return "N/A"
	}
	if stats := h.StatsFor(*name); stats != nil {
		return fmt.Sprintf("%s (%.0f%% completion)", *name, stats.CompletionRate)
	}
	return *name
}

func scaleOrNotLogged(v *int) string { return scaleOr(v, "Not logged") }

func scaleOr(v *int, placeholder string) string {
	if v == nil {
		return placeholder
	}
	return fmt.Sprintf("%d", *v)
}

func minutesOr(v *int, placeholder string) string {
	if v == nil {
		return placeholder
	}
	return fmt.Sprintf("%d", *v)
}

func averageOr(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", *v)
}

func textOr(s, placeholder string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}
