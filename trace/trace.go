// Package trace records the search tree as an arena of nodes addressed by
// stable integer handles. Each node stores its state, the action that produced
// it, the cumulative cost and the handle of its parent, so a path is rebuilt
// by walking parents back to the root and reversing.
//
// Nodes are append-only and never mutated; a handle stays valid for the
// lifetime of the arena. Handles avoid pointer cycles and keep frontier
// entries small.
package trace

import "fmt"

// Handle addresses a node inside an Arena.
type Handle int

// NoParent is the parent handle of the root node.
const NoParent Handle = -1

// Node is one search-tree node.
type Node[S comparable, A any] struct {
	State  S
	Action A       // zero value for the root
	Parent Handle  // NoParent for the root
	Depth  int     // number of actions from the root
	Cost   float64 // cumulative cost from the root
}

// Arena owns every node generated during one search.
type Arena[S comparable, A any] struct {
	nodes []Node[S, A]
}

// NewArena returns an empty arena with room for capacity nodes.
func NewArena[S comparable, A any](capacity int) *Arena[S, A] {
	return &Arena[S, A]{nodes: make([]Node[S, A], 0, capacity)}
}

// Root adds the start node and returns its handle.
func (a *Arena[S, A]) Root(state S) Handle {
	a.nodes = append(a.nodes, Node[S, A]{State: state, Parent: NoParent})

	return Handle(len(a.nodes) - 1)
}

// Add appends a child of parent reached by action, with cumulative cost.
// It panics if parent is not a handle of this arena.
func (a *Arena[S, A]) Add(parent Handle, state S, action A, cost float64) Handle {
	p := a.Node(parent)
	a.nodes = append(a.nodes, Node[S, A]{
		State:  state,
		Action: action,
		Parent: parent,
		Depth:  p.Depth + 1,
		Cost:   cost,
	})

	return Handle(len(a.nodes) - 1)
}

// Node returns the node at h. It panics on an unknown handle.
func (a *Arena[S, A]) Node(h Handle) Node[S, A] {
	if h < 0 || int(h) >= len(a.nodes) {
		panic(fmt.Sprintf("trace: handle %d out of range [0,%d)", h, len(a.nodes)))
	}

	return a.nodes[h]
}

// Len returns the number of nodes recorded.
func (a *Arena[S, A]) Len() int { return len(a.nodes) }

// Path returns the actions from the root to h in order.
// The result is never nil; it is empty for the root.
func (a *Arena[S, A]) Path(h Handle) []A {
	n := a.Node(h)
	path := make([]A, n.Depth)
	for i := n.Depth - 1; i >= 0; i-- {
		path[i] = n.Action
		n = a.nodes[n.Parent]
	}

	return path
}

// States returns the states from the root to h inclusive.
func (a *Arena[S, A]) States(h Handle) []S {
	n := a.Node(h)
	states := make([]S, n.Depth+1)
	for i := n.Depth; ; i-- {
		states[i] = n.State
		if n.Parent == NoParent {
			break
		}
		n = a.nodes[n.Parent]
	}

	return states
}

// Extend returns Path(h) with action appended, without touching the arena.
func (a *Arena[S, A]) Extend(h Handle, action A) []A {
	n := a.Node(h)
	path := make([]A, n.Depth+1)
	path[n.Depth] = action
	for i := n.Depth - 1; i >= 0; i-- {
		path[i] = n.Action
		n = a.nodes[n.Parent]
	}

	return path
}
