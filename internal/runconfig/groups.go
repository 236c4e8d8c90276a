package runconfig

import (
	"errors"
	"fmt"
)

// ErrUnknownGroup is returned when a configuration is placed in a group
// that the table does not declare.
var ErrUnknownGroup = errors.New("unknown group")

// OrderStep is the gap between consecutive order values in a group, leaving
// room to slot entries in by hand later.
const OrderStep = 5

// GroupTable maps group labels to display priorities and tracks the next
// order value handed out in each group.
type GroupTable struct {
	runGroup  string
	testGroup string
	priority  map[string]int
	hidden    map[string]bool
	next      map[string]int
}

// NewGroupTable builds a table where run has priority 1, test has priority 2,
// hidden groups follow from 3, and folders continue after the hidden ones.
func NewGroupTable(run, test string, hidden, folders []string) *GroupTable {
	t := &GroupTable{
		runGroup:  run,
		testGroup: test,
		priority:  map[string]int{run: 1, test: 2},
		hidden:    make(map[string]bool, len(hidden)),
		next:      make(map[string]int),
	}

	p := 3
	for _, label := range hidden {
		t.priority[label] = p
		t.hidden[label] = true
		p++
	}

	for _, label := range folders {
		t.priority[label] = p
		p++
	}

	return t
}

// RunGroup returns the label of the built-in run group.
func (t *GroupTable) RunGroup() string { return t.runGroup }

// TestGroup returns the label of the built-in test group.
func (t *GroupTable) TestGroup() string { return t.testGroup }

// Priority returns the priority of label and whether it is declared.
func (t *GroupTable) Priority(label string) (int, bool) {
	p, ok := t.priority[label]
	return p, ok
}

// IsHidden reports whether label is one of the hidden groups.
func (t *GroupTable) IsHidden(label string) bool {
	return t.hidden[label]
}

// Place assigns c to group: it sets the presentation, hands out the next
// order value of the group (1, 6, 11, ...) and records the priority.
func (t *GroupTable) Place(c *Configuration, group string) error {
	priority, ok := t.Priority(group)
	if !ok {
		return fmt.Errorf("%w %q for configuration %q", ErrUnknownGroup, group, c.Name)
	}

	order, ok := t.next[group]
	if !ok {
		order = 1
	}

	t.next[group] = order + OrderStep

	c.Priority = priority
	c.Presentation = Presentation{
		Hidden: t.IsHidden(group),
		Group:  group,
		Order:  order,
	}

	return nil
}
