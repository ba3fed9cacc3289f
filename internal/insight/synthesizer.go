package insight

import (
	"fmt"
	"strings"

	"github.com/daymentor/mentor-backend/internal/domain"
)

// FeedbackInput carries everything the rule-based synthesizer needs. Mood,
// energy, and stress default to 5 when the user did not log them.
type FeedbackInput struct {
	UserName       string
	ComplianceRate float64
	Mood           *int
	Energy         *int
	Stress         *int
	TopPerformer   *string
	BiggestMiss    *string
	History        domain.HistoricalSnapshot
}

const defaultScale = 5

func orDefault(v *int) int {
	if v == nil {
		return defaultScale
	}
	return *v
}

// ComposeFeedback assembles the mentor feedback message from independently
// triggered sentence fragments joined by single spaces. The fragment order is
// fixed, so identical inputs always produce the identical message.
func ComposeFeedback(in FeedbackInput) string {
	mood := orDefault(in.Mood)
	energy := orDefault(in.Energy)
	stress := orDefault(in.Stress)

	var parts []string

	switch {
	case in.ComplianceRate >= 80:
		parts = append(parts, fmt.Sprintf("Great work, %s! You achieved %.0f%% compliance today.", in.UserName, in.ComplianceRate))
	case in.ComplianceRate >= 50:
		parts = append(parts, fmt.Sprintf("You're at %.0f%% compliance, %s. There's room to improve.", in.ComplianceRate, in.UserName))
	default:
		parts = append(parts, fmt.Sprintf("You're at %.0f%% compliance. Let's figure out what got in the way.", in.ComplianceRate))
	}

	if mood <= 3 {
		parts = append(parts, "I notice your mood is low today. This might be affecting your routines.")
	}
	if stress >= 8 {
		parts = append(parts, "Your stress is high. Remember, perfect execution when stressed is still an achievement.")
	}
	if energy <= 3 {
		parts = append(parts, "Your energy is low. Rest is also important. Don't burn out.")
	}

	best := in.History.BestRoutine
	if best != nil && !sameName(best, in.TopPerformer) {
		parts = append(parts, fmt.Sprintf("Historically, '%s' is your strongest routine, keep up that momentum!", *best))
	}

	worst := in.History.WorstRoutine
	if worst != nil && !sameName(worst, in.BiggestMiss) {
		parts = append(parts, fmt.Sprintf("'%s' has been a struggle historically. Consider breaking it into smaller chunks or scheduling it at peak energy times.", *worst))
	}

	if mean, ok := in.History.MeanCompletionRate(); ok {
		trend := "consistent"
		if in.ComplianceRate > mean {
			trend = "improving"
		} else if in.ComplianceRate < mean {
			trend = "dipping"
		}
		parts = append(parts, fmt.Sprintf("Your average compliance is %.0f%%, and today you're %s.", mean, trend))
	}

	if in.TopPerformer != nil && in.ComplianceRate >= 50 {
		parts = append(parts, fmt.Sprintf("Good: You crushed '%s' today.", *in.TopPerformer))
	}

	if in.BiggestMiss != nil && in.ComplianceRate < 80 {
		parts = append(parts, fmt.Sprintf("You missed '%s' today. What got in the way?", *in.BiggestMiss))
	}

	return strings.Join(parts, " ")
}

// BuildSuggestions returns actionable suggestions in fixed rule order. The
// list is never empty: when no rule fires, two generic reinforcement
// suggestions are returned.
func BuildSuggestions(in FeedbackInput) []string {
	energy := orDefault(in.Energy)
	stress := orDefault(in.Stress)

	var suggestions []string

	if in.ComplianceRate < 50 {
		suggestions = append(suggestions,
			"Consider breaking routines into smaller, more manageable chunks.",
			"Try scheduling your highest-priority routines when you have the most energy.")
	}

	if energy <= 3 {
		suggestions = append(suggestions,
			"You might be overcommitted. Consider temporarily reducing routine difficulty.",
			"Prioritize sleep and nutrition: these fuel everything else.")
	}

	if stress >= 8 {
		suggestions = append(suggestions,
			"Consider adding a stress-relief routine like meditation or a walk.",
			"You might benefit from talking about what's causing the stress.")
	}

	if worst := in.History.WorstRoutine; worst != nil {
		if stats := in.History.StatsFor(*worst); stats != nil && stats.CompletionRate < 50 {
			suggestions = append(suggestions, fmt.Sprintf(
				"'%s' has low completion (%.0f%%). Maybe it's too ambitious; adjust expectations or timing.",
				*worst, stats.CompletionRate))
		}
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions,
			"Keep up the good work! Consider adding one new routine to your arsenal.",
			"Reflect on what made today successful and replicate it tomorrow.")
	}

	return suggestions
}

func sameName(a, b *string) bool {
	return a != nil && b != nil && *a == *b
}
