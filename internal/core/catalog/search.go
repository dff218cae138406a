package catalog

import "strings"

// Search returns the indices of entries whose key contains query,
// case-insensitively, in entry order. An empty query matches nothing.
func Search(entries []Entry, query string) []int {
	if query == "" {
		return nil
	}

	q := strings.ToLower(query)
	var matches []int
	for i, e := range entries {
		if strings.Contains(strings.ToLower(e.Key), q) {
			matches = append(matches, i)
		}
	}
	return matches
}

// Selection is a cursor into a search match list. The zero value is "no
// selection". Movement deliberately does not wrap: moving up from the first
// match or down from the last resolves to no selection, and moving from no
// selection re-enters the list at the far end.
type Selection struct {
	idx int
	ok  bool
}

// NoSelection returns an empty selection.
func NoSelection() Selection {
	return Selection{}
}

// SelectFirst returns a selection on the first of n matches, or no
// selection when n is zero.
func SelectFirst(n int) Selection {
	if n <= 0 {
		return Selection{}
	}
	return Selection{idx: 0, ok: true}
}

// Index returns the selected match position, if any.
func (s Selection) Index() (int, bool) {
	return s.idx, s.ok
}

// Up moves the selection toward the first of n matches. With no matches the
// selection is unchanged.
func (s Selection) Up(n int) Selection {
	if n <= 0 {
		return s
	}
	switch {
	case !s.ok:
		return Selection{idx: n - 1, ok: true}
	case s.idx > 0:
		return Selection{idx: s.idx - 1, ok: true}
	default:
		return Selection{}
	}
}

// Down moves the selection toward the last of n matches. With no matches
// the selection is unchanged.
func (s Selection) Down(n int) Selection {
	if n <= 0 {
		return s
	}
	switch {
	case !s.ok:
		return Selection{idx: 0, ok: true}
	case s.idx < n-1:
		return Selection{idx: s.idx + 1, ok: true}
	default:
		return Selection{}
	}
}
