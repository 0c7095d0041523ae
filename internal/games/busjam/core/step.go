package core

// StepDir picks the movement axis for a pointer delta: the larger component
// wins and ties go vertical.
func StepDir(delta Cell) Dir {
	ax, ay := delta.X, delta.Y
	if ax < 0 {
		ax = -ax
	}
	if ay < 0 {
		ay = -ay
	}
	if ax > ay {
		if delta.X > 0 {
			return DirRight
		}
		return DirLeft
	}
	if delta.Y > 0 {
		return DirUp
	}
	return DirDown
}

// TryStep attempts a single one-cell step of the controlled end toward the
// pointer target. On rejection the bus is unchanged.
func (b *Bus) TryStep() bool {
	if b.disabled || b.mode == Idle {
		return false
	}

	endIdx, neighborIdx := 0, 1
	if b.mode == DraggingTail {
		endIdx, neighborIdx = len(b.cells)-1, len(b.cells)-2
	}

	from := b.cells[endIdx]
	delta := b.target.Sub(from)
	if delta.IsZero() {
		return false
	}

	dir := StepDir(delta)
	// The end may not fold back onto its own neighbor.
	if len(b.cells) > 1 && dir.Delta() == b.cells[neighborIdx].Sub(from) {
		return false
	}

	next := b.grid.ClampCell(from.Add(dir.Delta()))
	if !b.canEnter(next) {
		return false
	}

	b.commit(next, dir)
	return true
}

func (b *Bus) canEnter(c Cell) bool {
	if b.Contains(c) {
		return false
	}
	if b.grid.IsCellBlocked(c) || b.grid.IsCellOccupiedByBus(c, b) {
		return false
	}
	if b.overlap != nil {
		probe := b.grid.CellToWorld(c)
		probe[1] += collisionProbeLift
		if b.overlap.CheckSphere(probe, b.checkRadius) {
			return false
		}
	}
	return true
}

func (b *Bus) commit(next Cell, dir Dir) {
	n := len(b.cells)
	if b.mode == DraggingTail {
		for i := 0; i < n-1; i++ {
			b.cells[i] = b.cells[i+1]
		}
		b.cells[n-1] = next
	} else {
		for i := n - 1; i > 0; i-- {
			b.cells[i] = b.cells[i-1]
		}
		b.cells[0] = next
	}

	fallback := dir
	if n > 1 {
		fallback = b.segments[0].Heading
	}
	for i, h := range Headings(b.cells, fallback) {
		b.segments[i].Heading = h
	}
}
