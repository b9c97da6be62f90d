package service

import (
	"math"
	"sort"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// NavigateDirection indicates the direction for focus navigation.
type NavigateDirection string

const (
	NavLeft  NavigateDirection = "left"
	NavRight NavigateDirection = "right"
	NavUp    NavigateDirection = "up"
	NavDown  NavigateDirection = "down"
)

// ParseNavigateDirection converts a string into a NavigateDirection.
func ParseNavigateDirection(s string) (NavigateDirection, bool) {
	switch d := NavigateDirection(s); d {
	case NavLeft, NavRight, NavUp, NavDown:
		return d, true
	default:
		return "", false
	}
}

// noOverlapPenalty pushes candidates on another row or column behind any
// candidate that shares a span with the active stack.
const noOverlapPenalty = 10_000_000

type navCandidate struct {
	stackID entity.NodeID
	score   float64
}

// NeighborStack finds the nearest stack in the given direction from the
// active one.
//
// Candidates are stacks whose center lies in the direction. Stacks that share
// a row (left/right) or column (up/down) with the active stack win; within
// that, the lowest primary_distance*1000 + perpendicular_distance wins.
func NeighborStack(rects []entity.StackRect, activeID entity.NodeID, dir NavigateDirection) (entity.NodeID, bool) {
	var active *entity.StackRect
	for i := range rects {
		if rects[i].StackID == activeID {
			active = &rects[i]
			break
		}
	}
	if active == nil {
		return "", false
	}

	acx, acy := active.Rect.Center()
	var candidates []navCandidate
	for _, r := range rects {
		if r.StackID == activeID {
			continue
		}
		cx, cy := r.Rect.Center()
		inDirection, primary, perp, overlap := evalDirection(active.Rect, r.Rect, cx-acx, cy-acy, dir)
		if !inDirection {
			continue
		}
		score := primary*1000 + perp
		if !overlap {
			score += noOverlapPenalty
		}
		candidates = append(candidates, navCandidate{stackID: r.StackID, score: score})
	}
	if len(candidates) == 0 {
		return "", false
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score < candidates[j].score
	})
	return candidates[0].stackID, true
}

func evalDirection(
	active, rect entity.Rect,
	dx, dy float64,
	dir NavigateDirection,
) (inDirection bool, primary, perp float64, overlap bool) {
	switch dir {
	case NavLeft:
		return dx < 0, math.Abs(dx), math.Abs(dy), active.OverlapsVertically(rect)
	case NavRight:
		return dx > 0, math.Abs(dx), math.Abs(dy), active.OverlapsVertically(rect)
	case NavUp:
		return dy < 0, math.Abs(dy), math.Abs(dx), active.OverlapsHorizontally(rect)
	case NavDown:
		return dy > 0, math.Abs(dy), math.Abs(dx), active.OverlapsHorizontally(rect)
	default:
		return false, 0, 0, false
	}
}
