// Package simulate replays drag-and-drop scenarios described in TOML against
// in-memory float areas.
package simulate

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/bnema/dockarea/internal/domain/entity"
)

// Step actions.
const (
	ActionEnter  = "enter"
	ActionOver   = "over"
	ActionLeave  = "leave"
	ActionDrop   = "drop"
	ActionSettle = "settle"
	ActionUpdate = "update"
	ActionRaise  = "raise"
	ActionResize = "resize"
	ActionRemove = "remove"
)

// Scenario is a widget tree plus the events replayed against it.
type Scenario struct {
	Name    string        `toml:"name"`
	Widgets []WidgetSpec  `toml:"widget"`
	Steps   []Step        `toml:"step"`
	Expect  []Expectation `toml:"expect"`
}

// WidgetSpec declares one widget of the tree.
type WidgetSpec struct {
	ID     string `toml:"id"`
	Parent string `toml:"parent"`
	Bounds []int  `toml:"bounds"`

	// Area makes the widget a float area with its own layout.
	Area bool `toml:"area"`
	// Overlay names a surface shared by every area declaring the same name.
	// When it is the id of an area declared earlier, the area borrows that
	// area's overlay. Areas without one own their overlay.
	Overlay string `toml:"overlay"`
	// Dialog marks the widget as a dialog wrapper.
	Dialog bool `toml:"dialog"`

	// Place adds the widget to its parent area's layout at this rect.
	Place []int `toml:"place"`
	// Backdrop puts the placed widget in the backdrop region.
	Backdrop bool `toml:"backdrop"`
}

// Step is one host event or layout pass.
type Step struct {
	Action string `toml:"action"`
	// Target receives drag events, which bubble to its ancestors. For update,
	// raise and remove it is the area the message goes to.
	Target string `toml:"target"`
	// Widget is the dragged widget for drag events, or the subject of a message.
	Widget  string `toml:"widget"`
	X       int    `toml:"x"`
	Y       int    `toml:"y"`
	Related string `toml:"related"`
	// Image is the drag image as [offset_x, offset_y] or [offset_x, offset_y, height].
	Image []int `toml:"image"`
	// Rect is the geometry for update and resize.
	Rect []int `toml:"rect"`
}

// Expectation checks a widget's final geometry in an area's layout.
type Expectation struct {
	Area   string `toml:"area"`
	Widget string `toml:"widget"`
	Rect   []int  `toml:"rect"`
	// Absent expects the widget not to be placed in the area.
	Absent bool `toml:"absent"`
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if sc.Name == "" {
		sc.Name = path
	}
	return sc, nil
}

// Parse decodes and validates a scenario. Unknown keys are rejected.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	md, err := toml.Decode(string(data), &sc)
	if err != nil {
		return nil, fmt.Errorf("failed to decode scenario: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown scenario keys: %s", strings.Join(keys, ", "))
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (sc *Scenario) validate() error {
	var problems []string
	ids := make(map[string]WidgetSpec, len(sc.Widgets))

	for i, w := range sc.Widgets {
		switch {
		case w.ID == "":
			problems = append(problems, fmt.Sprintf("widget[%d].id is required", i))
			continue
		case ids[w.ID].ID != "":
			problems = append(problems, fmt.Sprintf("widget[%d].id %q is duplicated", i, w.ID))
		}
		ids[w.ID] = w

		if _, err := rectFrom(w.Bounds); err != nil {
			problems = append(problems, fmt.Sprintf("widget %q bounds: %v", w.ID, err))
		}
		if w.Place != nil {
			if _, err := rectFrom(w.Place); err != nil {
				problems = append(problems, fmt.Sprintf("widget %q place: %v", w.ID, err))
			}
		}
		if w.Overlay != "" && !w.Area {
			problems = append(problems, fmt.Sprintf("widget %q has an overlay but is not an area", w.ID))
		}
	}

	declared := make(map[string]int, len(sc.Widgets))
	for i, w := range sc.Widgets {
		if _, seen := declared[w.ID]; !seen {
			declared[w.ID] = i
		}
	}
	for i, w := range sc.Widgets {
		j, names := declared[w.Overlay]
		if w.Overlay == "" || !names {
			continue
		}
		if !ids[w.Overlay].Area || j >= i {
			problems = append(problems, fmt.Sprintf("widget %q overlay %q must be an area declared before it", w.ID, w.Overlay))
		}
	}

	for _, w := range sc.Widgets {
		if w.Parent == "" {
			if w.Place != nil {
				problems = append(problems, fmt.Sprintf("widget %q is placed but has no parent area", w.ID))
			}
			continue
		}
		parent, ok := ids[w.Parent]
		if !ok {
			problems = append(problems, fmt.Sprintf("widget %q parent %q is not declared", w.ID, w.Parent))
			continue
		}
		if w.Place != nil && !parent.Area {
			problems = append(problems, fmt.Sprintf("widget %q is placed but parent %q is not an area", w.ID, w.Parent))
		}
	}
	if cycle := findCycle(sc.Widgets); cycle != "" {
		problems = append(problems, fmt.Sprintf("widget %q is its own ancestor", cycle))
	}

	known := func(id string) bool { _, ok := ids[id]; return id == "" || ok }
	for i, st := range sc.Steps {
		at := fmt.Sprintf("step[%d] (%s)", i, st.Action)
		switch st.Action {
		case ActionEnter, ActionOver, ActionLeave, ActionDrop:
			if st.Target == "" {
				problems = append(problems, at+": target is required")
			}
			if len(st.Image) != 0 && len(st.Image) != 2 && len(st.Image) != 3 {
				problems = append(problems, at+": image must have 2 or 3 values")
			}
		case ActionUpdate, ActionResize:
			if _, err := rectFrom(st.Rect); err != nil {
				problems = append(problems, fmt.Sprintf("%s: rect: %v", at, err))
			}
			fallthrough
		case ActionRaise, ActionRemove:
			if st.Widget == "" && st.Action != ActionResize {
				problems = append(problems, at+": widget is required")
			}
			if st.Target == "" {
				problems = append(problems, at+": target is required")
			}
		case ActionSettle:
		default:
			problems = append(problems, fmt.Sprintf("step[%d]: unknown action %q", i, st.Action))
			continue
		}
		for _, ref := range []string{st.Target, st.Widget, st.Related} {
			if !known(ref) {
				problems = append(problems, fmt.Sprintf("%s: widget %q is not declared", at, ref))
			}
		}
		if st.Action == ActionUpdate || st.Action == ActionRaise || st.Action == ActionRemove {
			if st.Target != "" && known(st.Target) && !ids[st.Target].Area {
				problems = append(problems, fmt.Sprintf("%s: target %q is not an area", at, st.Target))
			}
		}
	}

	for i, e := range sc.Expect {
		if !ids[e.Area].Area {
			problems = append(problems, fmt.Sprintf("expect[%d]: %q is not an area", i, e.Area))
		}
		if !known(e.Widget) || e.Widget == "" {
			problems = append(problems, fmt.Sprintf("expect[%d]: widget %q is not declared", i, e.Widget))
		}
		if !e.Absent {
			if _, err := rectFrom(e.Rect); err != nil {
				problems = append(problems, fmt.Sprintf("expect[%d] rect: %v", i, err))
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid scenario:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

// findCycle returns the id of a widget found on a parent cycle, or "".
func findCycle(widgets []WidgetSpec) string {
	parents := make(map[string]string, len(widgets))
	for _, w := range widgets {
		parents[w.ID] = w.Parent
	}
	for _, w := range widgets {
		seen := map[string]bool{w.ID: true}
		for p := parents[w.ID]; p != ""; p = parents[p] {
			if seen[p] {
				return w.ID
			}
			seen[p] = true
		}
	}
	return ""
}

func rectFrom(v []int) (entity.Rect, error) {
	if len(v) != 4 {
		return entity.Rect{}, fmt.Errorf("want [x, y, width, height], got %d values", len(v))
	}
	if v[2] < 0 || v[3] < 0 {
		return entity.Rect{}, fmt.Errorf("negative size %dx%d", v[2], v[3])
	}
	return entity.Rect{X: v[0], Y: v[1], W: v[2], H: v[3]}, nil
}
