package routine

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/daymentor/mentor-backend/internal/domain"
)

const maxGenerated = 7

// generatedRoutine mirrors the JSON contract the model is asked to follow.
// start_time is kept for older responses that use a time window instead of a
// single scheduled_time.
type generatedRoutine struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Category       string  `json:"category"`
	Frequency      string  `json:"frequency"`
	TargetDuration int     `json:"target_duration"`
	Priority       int     `json:"priority"`
	Difficulty     int     `json:"difficulty"`
	ScheduledTime  *string `json:"scheduled_time"`
	StartTime      *string `json:"start_time"`
	EndTime        *string `json:"end_time"`
}

type generatedPayload struct {
	Routines []generatedRoutine `json:"routines"`
}

// parseDrafts decodes model output into normalized routine drafts.
// Code fences and surrounding prose are tolerated; field values are clamped
// into valid ranges and duplicate names (case-insensitive) are dropped.
func parseDrafts(raw string) ([]domain.RoutineDraft, error) {
	text := extractJSON(raw)
	if text == "" {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var payload generatedPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("decode routines: %w", err)
	}
	if len(payload.Routines) == 0 {
		return nil, fmt.Errorf("response contains no routines")
	}

	seen := make(map[string]struct{}, len(payload.Routines))
	drafts := make([]domain.RoutineDraft, 0, len(payload.Routines))
	for _, g := range payload.Routines {
		name := strings.TrimSpace(g.Name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		drafts = append(drafts, normalizeDraft(g, name))
		if len(drafts) == maxGenerated {
			break
		}
	}
	if len(drafts) == 0 {
		return nil, fmt.Errorf("response contains no usable routines")
	}
	return drafts, nil
}

func normalizeDraft(g generatedRoutine, name string) domain.RoutineDraft {
	scheduled := g.ScheduledTime
	if scheduled == nil {
		scheduled = g.StartTime
	}
	if scheduled != nil && !validClock(*scheduled) {
		scheduled = nil
	}

	return domain.RoutineDraft{
		Name:           name,
		Description:    strings.TrimSpace(g.Description),
		Category:       orString(strings.ToLower(strings.TrimSpace(g.Category)), defaultCategory),
		Frequency:      orString(strings.TrimSpace(g.Frequency), defaultFrequency),
		TargetDuration: clampDefault(g.TargetDuration, 5, 120, defaultDuration),
		Priority:       clampDefault(g.Priority, 1, 10, defaultPriority),
		Difficulty:     clampDefault(g.Difficulty, 1, 10, defaultPriority),
		ScheduledTime:  scheduled,
	}
}

// extractJSON strips markdown code fences and any prose around the outermost
// JSON object.
func extractJSON(raw string) string {
	s := strings.TrimSpace(raw)
	if i := strings.Index(s, "```"); i >= 0 {
		s = s[i+3:]
		s = strings.TrimPrefix(s, "json")
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
	}
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampDefault treats an unset (zero) value as def before clamping.
func clampDefault(v, lo, hi, def int) int {
	if v == 0 {
		v = def
	}
	return clamp(v, lo, hi)
}
