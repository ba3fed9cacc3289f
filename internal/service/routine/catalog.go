package routine

import (
	"regexp"
	"strings"

	"github.com/daymentor/mentor-backend/internal/domain"
)

// catalogRule maps goal keywords to a canned routine draft. Rules are
// evaluated in order so the resulting set is deterministic for a given input.
type catalogRule struct {
	pattern *regexp.Regexp
	draft   domain.RoutineDraft
}

var catalog = []catalogRule{
	{
		pattern: regexp.MustCompile(`(?i)\b(run|running|jog|cardio|fitness|exercise|workout|gym)\b`),
		draft: domain.RoutineDraft{
			Name:           "Morning Exercise",
			Description:    "A short workout to build consistency and energy.",
			Category:       "health",
			Frequency:      "daily",
			TargetDuration: 30,
			Priority:       8,
			Difficulty:     6,
			ScheduledTime:  ptr("07:00"),
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)\b(read|reading|book|books|study|learn|learning|course)\b`),
		draft: domain.RoutineDraft{
			Name:           "Focused Reading",
			Description:    "Dedicated reading time to make steady progress on learning goals.",
			Category:       "personal",
			Frequency:      "daily",
			TargetDuration: 30,
			Priority:       6,
			Difficulty:     4,
			ScheduledTime:  ptr("20:00"),
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)\b(meditat\w*|mindful\w*|calm|anxiety|stress|breath\w*)\b`),
		draft: domain.RoutineDraft{
			Name:           "Meditation",
			Description:    "A brief mindfulness session to lower stress.",
			Category:       "health",
			Frequency:      "daily",
			TargetDuration: 10,
			Priority:       7,
			Difficulty:     3,
			ScheduledTime:  ptr("08:00"),
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)\b(sleep|bedtime|rest|insomnia|tired)\b`),
		draft: domain.RoutineDraft{
			Name:           "Wind-Down Routine",
			Description:    "Screens off and lights down to protect sleep quality.",
			Category:       "health",
			Frequency:      "daily",
			TargetDuration: 20,
			Priority:       7,
			Difficulty:     5,
			ScheduledTime:  ptr("22:00"),
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)\b(write|writing|journal\w*|blog)\b`),
		draft: domain.RoutineDraft{
			Name:           "Journaling",
			Description:    "Write a few lines about the day to keep perspective.",
			Category:       "personal",
			Frequency:      "daily",
			TargetDuration: 15,
			Priority:       5,
			Difficulty:     3,
			ScheduledTime:  ptr("21:30"),
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)\b(work|career|project|deep work|focus|productiv\w*)\b`),
		draft: domain.RoutineDraft{
			Name:           "Deep Work Block",
			Description:    "An uninterrupted block for the most important task of the day.",
			Category:       "work",
			Frequency:      "daily",
			TargetDuration: 60,
			Priority:       9,
			Difficulty:     7,
			ScheduledTime:  ptr("09:00"),
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)\b(friend\w*|family|social\w*|call|connect\w*)\b`),
		draft: domain.RoutineDraft{
			Name:           "Reach Out",
			Description:    "Check in with a friend or family member.",
			Category:       "social",
			Frequency:      "3x per week",
			TargetDuration: 15,
			Priority:       5,
			Difficulty:     3,
			ScheduledTime:  ptr("18:00"),
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)\b(cook\w*|meal\w*|diet|eat\w*|nutrition)\b`),
		draft: domain.RoutineDraft{
			Name:           "Meal Prep",
			Description:    "Prepare a simple healthy meal instead of ordering in.",
			Category:       "health",
			Frequency:      "daily",
			TargetDuration: 40,
			Priority:       6,
			Difficulty:     5,
			ScheduledTime:  ptr("18:30"),
		},
	},
}

// genericDrafts is the floor for generation: even with no recognizable
// keywords the user gets a starter set.
var genericDrafts = []domain.RoutineDraft{
	{
		Name:           "Morning Planning",
		Description:    "Five minutes to pick the day's priorities.",
		Category:       "personal",
		Frequency:      "daily",
		TargetDuration: 5,
		Priority:       7,
		Difficulty:     2,
		ScheduledTime:  ptr("08:30"),
	},
	{
		Name:           "Daily Walk",
		Description:    "A walk outside to reset between tasks.",
		Category:       "health",
		Frequency:      "daily",
		TargetDuration: 20,
		Priority:       6,
		Difficulty:     3,
		ScheduledTime:  ptr("13:00"),
	},
	{
		Name:           "Evening Review",
		Description:    "Look back at the day and note one thing to improve.",
		Category:       "personal",
		Frequency:      "daily",
		TargetDuration: 10,
		Priority:       5,
		Difficulty:     2,
		ScheduledTime:  ptr("21:00"),
	},
}

// heuristicDrafts builds routine drafts from goal keywords. It always returns
// at least one draft.
func heuristicDrafts(input GenerateInput) []domain.RoutineDraft {
	text := strings.Join([]string{input.Goals, input.Challenges, input.DesiredRoutines}, " ")

	var drafts []domain.RoutineDraft
	for _, rule := range catalog {
		if rule.pattern.MatchString(text) {
			drafts = append(drafts, rule.draft)
		}
		if len(drafts) == maxGenerated {
			break
		}
	}

	for _, g := range genericDrafts {
		if len(drafts) >= 4 {
			break
		}
		drafts = append(drafts, g)
	}
	return drafts
}

func ptr(s string) *string { return &s }
