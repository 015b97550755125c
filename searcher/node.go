package searcher

import (
	"math"

	"boop/game"
)

// noParent marks the root's parent handle.
const noParent = int32(-1)

// node is one entry in the search arena. Parent and children are arena
// handles rather than pointers, so the tree carries no reference cycles
// and is freed as a whole when the search returns.
type node struct {
	parent   int32
	move     game.Move // move that led here; zero value for the root
	prior    float64
	visits   int
	valueSum float64 // from the perspective of the player to move here
	children []int32
	expanded bool
	terminal bool
	state    game.State // nil until first descent (lazy clone)
}

// q is the node's mean value, 0 while unvisited.
func (n *node) q() float64 {
	if n.visits == 0 {
		return 0
	}
	return n.valueSum / float64(n.visits)
}

// tree is a per-search arena. Handle 0 is always the root.
type tree struct {
	nodes []node
}

func newTree(rootState game.State) *tree {
	t := &tree{nodes: make([]node, 0, 512)}
	t.nodes = append(t.nodes, node{parent: noParent, state: rootState})
	return t
}

func (t *tree) at(h int32) *node {
	return &t.nodes[h]
}

func (t *tree) root() *node {
	return &t.nodes[0]
}

// add appends a child of parent reached by move and returns its handle.
func (t *tree) add(parent int32, move game.Move, prior float64) int32 {
	h := int32(len(t.nodes))
	t.nodes = append(t.nodes, node{parent: parent, move: move, prior: prior})
	t.nodes[parent].children = append(t.nodes[parent].children, h)
	return h
}

// selectChild picks the child maximizing the PUCT score
//
//	-q(child) + c * prior(child) * sqrt(visits(parent)) / (1 + visits(child))
//
// The stored value is from the child mover's perspective, so it is negated
// to score from the parent's. Ties keep the earliest child, which follows
// LegalMoves order.
func (t *tree) selectChild(h int32, c float64) int32 {
	parent := t.at(h)
	sqrtVisits := math.Sqrt(float64(parent.visits))

	best := parent.children[0]
	bestScore := math.Inf(-1)
	for _, ch := range parent.children {
		child := t.at(ch)
		score := -child.q() + c*child.prior*sqrtVisits/(1+float64(child.visits))
		if score > bestScore {
			bestScore = score
			best = ch
		}
	}
	return best
}

// materialize returns the node's state, cloning the parent's state and
// applying the node's move on first descent. States are created at most
// once per node and owned by it alone.
func (t *tree) materialize(h int32) game.State {
	n := t.at(h)
	if n.state != nil {
		return n.state
	}
	parentState := t.at(n.parent).state
	if parentState == nil {
		panic("materializing node before its parent")
	}
	n.state = parentState.Play(n.move)
	return n.state
}

// backup walks from a leaf to the root, crediting the value to each node
// and flipping its sign at every ply.
func (t *tree) backup(h int32, value float64) {
	for h != noParent {
		n := t.at(h)
		n.visits++
		n.valueSum += value
		value = -value
		h = n.parent
	}
}
