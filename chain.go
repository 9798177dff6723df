package rotladder

// DefaultNodes is the chain length used when none is configured.
const DefaultNodes = 5

// DrawFunc paints one node's glyph at the given scale.
type DrawFunc func(index int, scale float64)

// Node is one position in a Chain. Its neighbors are the nodes at index-1 and
// index+1 of the owning chain.
type Node struct {
	chain *Chain
	index int
	state State
}

// Index returns the node's position in the chain.
func (n *Node) Index() int { return n.index }

// State returns the node's scale state. The returned pointer MUST NOT be
// mutated by callers.
func (n *Node) State() *State { return &n.state }

// Draw draws this node and then every node before it, walking toward index 0.
// Entering from the last node renders the whole chain.
func (n *Node) Draw(fn DrawFunc) {
	n.chain.DrawFrom(n.index, fn)
}

// Update advances the node's state by one tick and reports completion.
func (n *Node) Update() bool {
	return n.state.Update()
}

// StartUpdating starts the node's animation if it is idle.
func (n *Node) StartUpdating() bool {
	return n.state.StartUpdating()
}

// Chain is the fixed-length sequence of nodes. It owns every node; neighbor
// relations are index lookups. A chain is never resized.
type Chain struct {
	nodes []Node
}

// NewChain builds a chain of n nodes, all at rest with scale 0. n < 1 is
// treated as 1.
func NewChain(n int) *Chain {
	if n < 1 {
		n = 1
	}
	c := &Chain{nodes: make([]Node, n)}
	for i := range c.nodes {
		c.nodes[i] = Node{chain: c, index: i}
	}
	return c
}

// Len returns the number of nodes.
func (c *Chain) Len() int { return len(c.nodes) }

// Node returns the node at index i. It panics if i is out of range.
func (c *Chain) Node(i int) *Node { return &c.nodes[i] }

// Next returns the neighbor of node i in direction dir: i+1 for dir == 1,
// i-1 otherwise. At a chain end it returns (i, false) and the caller stays
// on the boundary node.
func (c *Chain) Next(i, dir int) (int, bool) {
	j := i - 1
	if dir == 1 {
		j = i + 1
	}
	if j < 0 || j >= len(c.nodes) {
		return i, false
	}
	return j, true
}

// DrawFrom draws node i and every node before it, in descending index order.
func (c *Chain) DrawFrom(i int, fn DrawFunc) {
	if fn == nil {
		return
	}
	for ; i >= 0; i-- {
		fn(i, c.nodes[i].state.scale)
	}
}

// Draw draws every node, entering from the tail.
func (c *Chain) Draw(fn DrawFunc) {
	c.DrawFrom(len(c.nodes)-1, fn)
}

// Scales returns every node's current scale in index order.
func (c *Chain) Scales() []float64 {
	out := make([]float64, len(c.nodes))
	for i := range c.nodes {
		out[i] = c.nodes[i].state.scale
	}
	return out
}
