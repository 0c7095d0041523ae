package core

// CompletionCounter counts buses that filled up and left the board.
type CompletionCounter struct {
	total    int
	full     int
	achieved bool
}

// NewCompletionCounter creates a counter expecting total buses.
func NewCompletionCounter(total int) *CompletionCounter {
	return &CompletionCounter{total: total}
}

// IncreaseTotalFullBus records one completed bus. It returns true exactly
// once, on the call that completes the last bus.
func (c *CompletionCounter) IncreaseTotalFullBus() bool {
	c.full++
	if c.achieved || c.full < c.total {
		return false
	}
	c.achieved = true
	return true
}

// Full returns the number of completed buses.
func (c *CompletionCounter) Full() int {
	return c.full
}

// Total returns the number of buses in the level.
func (c *CompletionCounter) Total() int {
	return c.total
}

// Achieved returns true once every bus has completed.
func (c *CompletionCounter) Achieved() bool {
	return c.achieved
}
