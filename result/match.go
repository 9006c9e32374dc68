// Package result defines the Match record produced by a successful match
// attempt: group 0 is the whole match, and groups 1..N hold the captures
// of each parenthesised capturing group.
package result

// Capture is a single recorded (start, length) slice of the input, together
// with the substring it denotes.
type Capture struct {
	Start  int
	Length int
	Value  string
}

// Group is the ordered list of captures a single group number recorded
// during one match attempt. A group nested inside a quantifier may have
// captured more than once; Captures preserves that order.
type Group struct {
	Captures []Capture
}

// Match is the record of one successful match: a sequence of Groups indexed
// by group number. Group 0's first (and only) capture is the whole match.
type Match struct {
	groups []Group
}

// NewMatch builds a Match from already-populated groups. Group 0 must be
// non-empty; it represents the whole match.
func NewMatch(groups []Group) *Match {
	return &Match{groups: groups}
}

// NumGroups returns the number of groups in the match record, including
// group 0.
func (m *Match) NumGroups() int {
	return len(m.groups)
}

// Group returns the Group recorded for group number i, or an empty Group if
// i is out of range.
func (m *Match) Group(i int) *Group {
	if i < 0 || i >= len(m.groups) {
		return &Group{}
	}
	return &m.groups[i]
}

// GroupValue returns the value of group i's first capture, or "" if the
// group never captured or i is out of range.
func (m *Match) GroupValue(i int) string {
	g := m.Group(i)
	if len(g.Captures) == 0 {
		return ""
	}
	return g.Captures[0].Value
}

// Start returns group 0's start offset, or 0 if there is no whole-match
// capture (should not happen for a Match produced by a successful attempt).
func (m *Match) Start() int {
	g := m.Group(0)
	if len(g.Captures) == 0 {
		return 0
	}
	return g.Captures[0].Start
}

// Length returns group 0's capture length — the number of bytes the whole
// match consumed.
func (m *Match) Length() int {
	g := m.Group(0)
	if len(g.Captures) == 0 {
		return 0
	}
	return g.Captures[0].Length
}

// End returns Start()+Length(), the byte offset one past the whole match.
func (m *Match) End() int {
	return m.Start() + m.Length()
}

// Value returns group 0's captured substring — the whole match.
func (m *Match) Value() string {
	return m.GroupValue(0)
}
