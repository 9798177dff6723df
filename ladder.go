package rotladder

// Ladder walks a single cursor through a Chain. Each node fully animates
// before the cursor moves to its neighbor in the sweep direction; at either
// end of the chain the cursor stays and the direction flips, so consecutive
// sweeps go back and forth forever.
type Ladder struct {
	chain  *Chain
	cursor int
	dir    int
}

// NewLadder returns a ladder over a new chain of n nodes, with the cursor on
// node 0 sweeping toward the tail.
func NewLadder(n int) *Ladder {
	return &Ladder{chain: NewChain(n), dir: 1}
}

// Chain returns the underlying chain.
func (l *Ladder) Chain() *Chain { return l.chain }

// Current returns the node under the cursor.
func (l *Ladder) Current() *Node { return l.chain.Node(l.cursor) }

// Dir returns the sweep direction, +1 toward the tail or -1 toward the head.
func (l *Ladder) Dir() int { return l.dir }

// Draw renders every node of the chain.
func (l *Ladder) Draw(fn DrawFunc) {
	l.chain.Draw(fn)
}

// Update advances the current node by one tick. When that node completes, the
// cursor moves to its neighbor; at a chain end the cursor stays and the
// direction flips.
func (l *Ladder) Update() Transition {
	if !l.Current().Update() {
		return TransitionAnimating
	}
	next, ok := l.chain.Next(l.cursor, l.dir)
	if !ok {
		l.dir = -l.dir
		return TransitionReversed
	}
	l.cursor = next
	return TransitionNodeCompleted
}

// StartUpdating starts the current node if it is idle and reports whether it
// did.
func (l *Ladder) StartUpdating() bool {
	return l.Current().StartUpdating()
}
