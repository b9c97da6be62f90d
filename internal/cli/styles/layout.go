package styles

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/service"
)

// RenderTree renders the layout as an indented tree of boxes, stacks and
// panes. The active pane of each stack is marked with a star.
func (t *Theme) RenderTree(layout *entity.DockLayout) string {
	if layout == nil || layout.Root == nil {
		return t.Subtle.Render("(empty layout)")
	}
	return t.treeNode(layout.Root).String()
}

func (t *Theme) treeNode(node entity.DockNode) *tree.Tree {
	var tr *tree.Tree
	switch n := node.(type) {
	case *entity.Box:
		tr = tree.Root(t.Title.Render("box "+string(n.ID)) +
			t.Subtle.Render(fmt.Sprintf(" %s %.3g", n.Direction, n.Weight)))
		for _, child := range n.Children {
			tr.Child(t.treeNode(child))
		}
	case *entity.Stack:
		tr = tree.Root(t.Highlight.Render("stack "+string(n.ID)) +
			t.Subtle.Render(fmt.Sprintf(" %.3g", n.Weight)))
		for _, p := range n.Children {
			label := t.Normal.Render(p.Title) + t.Subtle.Render(" ("+string(p.ID)+")")
			if p.ID == n.ActiveID {
				label = t.ActiveTab.UnsetUnderline().Render("* "+p.Title) + t.Subtle.Render(" ("+string(p.ID)+")")
			}
			tr.Child(label)
		}
	default:
		panic(entity.NewStructuralViolation(node, "unknown dock node variant"))
	}
	return tr.
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(t.Subtle)
}

// LayoutView describes one frame of the arranged layout.
type LayoutView struct {
	Layout        *entity.DockLayout
	Width, Height int
	ActiveStackID entity.NodeID
	// Target is the hover target of a drag in progress.
	Target *entity.DropTarget
	// Body returns the text shown for the active pane. Nil shows the title.
	Body func(pane *entity.DockPane) string
}

// RenderLayout draws every stack in its arranged rectangle. The result has
// exactly Height lines of Width cells.
func (t *Theme) RenderLayout(v LayoutView) string {
	if v.Width <= 0 || v.Height <= 0 {
		return ""
	}
	rects := service.ArrangeStacks(v.Layout, v.Width, v.Height)
	if len(rects) == 0 {
		return lipgloss.Place(v.Width, v.Height, lipgloss.Center, lipgloss.Center, t.Subtle.Render("(empty layout)"))
	}

	blocks := make(map[entity.NodeID][]string, len(rects))
	for _, r := range rects {
		stack := v.Layout.FindStack(r.StackID)
		var target *entity.DropTarget
		if v.Target != nil && v.Target.StackID == r.StackID {
			target = v.Target
		}
		block := t.renderStack(stack, int(r.Rect.W), int(r.Rect.H), r.StackID == v.ActiveStackID, target, v.Body)
		blocks[r.StackID] = strings.Split(block, "\n")
	}

	var out strings.Builder
	for y := 0; y < v.Height; y++ {
		row := rowRects(rects, y)
		for _, r := range row {
			lines := blocks[r.StackID]
			i := y - int(r.Rect.Y)
			if i >= 0 && i < len(lines) {
				out.WriteString(lines[i])
			} else {
				out.WriteString(strings.Repeat(" ", int(r.Rect.W)))
			}
		}
		if y < v.Height-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

// rowRects returns the rectangles crossing screen row y, left to right.
func rowRects(rects []entity.StackRect, y int) []entity.StackRect {
	var row []entity.StackRect
	for _, r := range rects {
		if float64(y) >= r.Rect.Y && float64(y) < r.Rect.Bottom() {
			row = append(row, r)
		}
	}
	sort.Slice(row, func(a, b int) bool { return row[a].Rect.X < row[b].Rect.X })
	return row
}

func (t *Theme) renderStack(
	stack *entity.Stack,
	w, h int,
	active bool,
	target *entity.DropTarget,
	body func(*entity.DockPane) string,
) string {
	if stack == nil || w < 2 || h < 2 {
		return blank(w, h)
	}
	innerW, innerH := w-2, h-2
	clip := lipgloss.NewStyle().MaxWidth(innerW)

	style := t.Stack
	switch {
	case target != nil:
		style = t.DropStack
	case active:
		style = t.ActiveStack
	}

	lines := make([]string, 0, innerH)
	if innerH > 0 {
		lines = append(lines, clip.Render(t.tabBar(stack)))
	}

	switch {
	case target != nil:
		lines = append(lines, clip.Render(t.DropLabel.Render(dropLabel(target.Zone))))
	case stack.ActivePane() != nil:
		pane := stack.ActivePane()
		text := pane.Title
		if body != nil {
			text = body(pane)
		}
		for _, l := range strings.Split(text, "\n") {
			lines = append(lines, clip.Render(t.Normal.Render(l)))
		}
	default:
		lines = append(lines, clip.Render(t.Subtle.Render("(empty)")))
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}

	return style.
		Width(innerW).
		Height(innerH).
		Render(strings.Join(lines, "\n"))
}

func (t *Theme) tabBar(stack *entity.Stack) string {
	tabs := make([]string, 0, len(stack.Children))
	for _, p := range stack.Children {
		if p.ID == stack.ActiveID {
			tabs = append(tabs, t.ActiveTab.Render(p.Title))
		} else {
			tabs = append(tabs, t.InactiveTab.Render(p.Title))
		}
	}
	return strings.Join(tabs, t.Subtle.Render(" │ "))
}

// TabAt returns the pane whose tab covers column x of the tab bar, counted
// from the first cell inside the stack border.
func (t *Theme) TabAt(stack *entity.Stack, x int) (entity.NodeID, bool) {
	if stack == nil || x < 0 {
		return "", false
	}
	sep := lipgloss.Width(t.Subtle.Render(" │ "))
	pos := 0
	for _, p := range stack.Children {
		style := t.InactiveTab
		if p.ID == stack.ActiveID {
			style = t.ActiveTab
		}
		w := lipgloss.Width(style.Render(p.Title))
		if x < pos+w {
			return p.ID, true
		}
		pos += w + sep
		if x < pos {
			return "", false
		}
	}
	return "", false
}

func dropLabel(zone entity.DropZone) string {
	switch zone {
	case entity.ZoneLeft:
		return "◀ split left"
	case entity.ZoneRight:
		return "split right ▶"
	case entity.ZoneTop:
		return "▲ split up"
	case entity.ZoneBottom:
		return "▼ split down"
	default:
		return "● add as tab"
	}
}

func blank(w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	line := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
