package prompt

import (
	"fmt"
	"strings"

	"github.com/daymentor/mentor-backend/internal/domain"
)

// RoutineGenerationInput describes what the user wants out of an AI-designed
// routine set.
type RoutineGenerationInput struct {
	UserName         string
	Goals            string
	Challenges       string
	UnavailableTimes string
	DesiredRoutines  string
}

// BuildRoutineGeneration renders the structural request asking the generator
// to return strictly valid JSON with a top-level "routines" array of 4-7
// routine objects.
func BuildRoutineGeneration(in RoutineGenerationInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "User Information:\n- Name: %s\n\n", in.UserName)
	fmt.Fprintf(&b, "User Inputs:\n")
	fmt.Fprintf(&b, "- Goals: %s\n", textOr(in.Goals, "None provided"))
	fmt.Fprintf(&b, "- Challenges: %s\n", textOr(in.Challenges, "None provided"))
	fmt.Fprintf(&b, "- Unavailable Times: %s\n", textOr(in.UnavailableTimes, "None provided"))
	fmt.Fprintf(&b, "- Desired Routines: %s\n\n", textOr(in.DesiredRoutines, "None provided"))

	b.WriteString(`Task:
Design a set of 4-7 daily routines tailored to the user's goals and constraints. Respect unavailable times when scheduling. Prefer names that are short and conventional. Keep durations realistic and sustainable.

Output Requirements:
- Return a single JSON object with a top-level key "routines".
- The value of "routines" must be an array of 4-7 routine objects.
- Each routine must be an object with fields:
    - name: string (short, conventional name)
    - description: string (one sentence)
    - category: one of ["health", "work", "personal", "social"]
    - frequency: string (e.g., "daily", "3x per week", "weekly")
    - target_duration: integer minutes (5 to 120)
    - priority: integer 1-10 (higher means more important)
    - difficulty: integer 1-10
    - scheduled_time: string in 24-hour HH:MM format (preferred time of day)

Constraints:
- Avoid duplicates by name.
- Keep JSON strictly valid; do not include comments or extra text.
- If desired routines are specified, try to include them where appropriate.
- Choose scheduled times that do not fall inside the listed unavailable time ranges.
- Frequency should be flexible - not all routines need to be daily.
`)

	return b.String()
}

// BuildRoutineSummary renders the request for a short prose summary (5-7
// sentences) explaining why the proposed routine set fits the user.
func BuildRoutineSummary(in RoutineGenerationInput, routines []domain.RoutineDraft) string {
	var lines []string
	for _, r := range routines {
		timePart := ""
		if r.ScheduledTime != nil {
			timePart = fmt.Sprintf(" at %s", *r.ScheduledTime)
		}
		lines = append(lines, fmt.Sprintf("- %s (%s, %d min, %s, priority %d%s): %s",
			r.Name, r.Category, r.TargetDuration, r.Frequency, r.Priority, timePart, r.Description))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "User Information:\n")
	fmt.Fprintf(&b, "- Name: %s\n", in.UserName)
	fmt.Fprintf(&b, "- Goals: %s\n", textOr(in.Goals, "None provided"))
	fmt.Fprintf(&b, "- Challenges: %s\n", textOr(in.Challenges, "None provided"))
	fmt.Fprintf(&b, "- Unavailable Times: %s\n", textOr(in.UnavailableTimes, "None provided"))
	fmt.Fprintf(&b, "- Desired Routines: %s\n\n", textOr(in.DesiredRoutines, "None provided"))
	fmt.Fprintf(&b, "Proposed Routines:\n%s\n\n", strings.Join(lines, "\n"))

	b.WriteString(`Task:
Write a short summary (5-7 sentences) that:
- Reflects the user's situation and constraints.
- Explains why these routines were chosen and how they support the goals.
- Maintains a balanced, encouraging tone.
- Is direct and scannable; no lists, just a cohesive paragraph.
`)

	return b.String()
}
