package styles

import (
	"fmt"
	"time"

	"github.com/bnema/dockyard/internal/application/usecase"
)

// OutcomeBadge renders a mutation outcome.
func (t *Theme) OutcomeBadge(outcome usecase.Outcome) string {
	switch outcome {
	case usecase.OutcomeApplied:
		return t.Badge.Render(string(outcome))
	case usecase.OutcomeNotFound, usecase.OutcomeRejected:
		return t.BadgeMuted.Foreground(t.Error).Render(string(outcome))
	default:
		return t.BadgeMuted.Render(string(outcome))
	}
}

// RenderOutcome formats a mutation result as a single line.
func (t *Theme) RenderOutcome(op string, out *usecase.MutationOutput) string {
	line := fmt.Sprintf("%s %s", t.OutcomeBadge(out.Outcome), t.Normal.Render(op))
	if out.NewStackID != "" {
		line += t.Subtle.Render(" new stack " + string(out.NewStackID))
	}
	if out.Reason != "" {
		line += t.Subtle.Render(": " + out.Reason)
	}
	return line
}

// RelativeTime formats a timestamp relative to now.
func RelativeTime(tm time.Time) string {
	d := time.Since(tm)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return tm.Format("Jan 2, 2006")
	}
}
