package scene

// Progress is the current scene position plus a record of every position
// that has been shown. Visited flags only ever go from false to true.
type Progress struct {
	current int
	visited []bool
}

// NewProgress creates progress over n positions starting at start. start is
// clamped into [0, n).
func NewProgress(n, start int) *Progress {
	if n < 1 {
		n = 1
	}
	p := &Progress{visited: make([]bool, n)}
	p.current = clampIndex(start, n)
	return p
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func (p *Progress) Current() int { return p.current }

func (p *Progress) Len() int { return len(p.visited) }

func (p *Progress) Visited(i int) bool {
	if i < 0 || i >= len(p.visited) {
		return false
	}
	return p.visited[i]
}

// VisitedAll returns a copy of the visited flags.
func (p *Progress) VisitedAll() []bool {
	return append([]bool(nil), p.visited...)
}

// SetCurrent moves to i if it is a valid position.
func (p *Progress) SetCurrent(i int) bool {
	if i < 0 || i >= len(p.visited) {
		return false
	}
	p.current = i
	return true
}

// SetVisited records a restored visited flag. A true flag is never cleared.
func (p *Progress) SetVisited(i int, v bool) bool {
	if i < 0 || i >= len(p.visited) {
		return false
	}
	if v {
		p.visited[i] = true
	}
	return true
}

// MarkVisited flags the current position as shown.
func (p *Progress) MarkVisited() {
	p.visited[p.current] = true
}

// AdvanceToNext moves one position forward if there is one. This is how new
// content first becomes reachable.
func (p *Progress) AdvanceToNext() bool {
	if p.current+1 >= len(p.visited) {
		return false
	}
	p.current++
	return true
}

// AdvanceIfVisited moves one position forward only if that position has
// already been shown.
func (p *Progress) AdvanceIfVisited() bool {
	next := p.current + 1
	if next >= len(p.visited) || !p.visited[next] {
		return false
	}
	p.current = next
	return true
}

// Retreat moves one position back if there is one.
func (p *Progress) Retreat() bool {
	if p.current-1 < 0 {
		return false
	}
	p.current--
	return true
}
