package intersect

import (
	"fmt"
	"io"
	"strings"
)

type statusNode struct {
	parent, left, right *statusNode
	height              int

	seg int // index into the segment list
}

// Prev returns the node directly below n in the sweep status, or nil.
func (n *statusNode) Prev() *statusNode {
	// go left
	if n.left != nil {
		n = n.left
		for n.right != nil {
			n = n.right // find the right-most of current subtree
		}
		return n
	}

	for n.parent != nil && n.parent.left == n {
		n = n.parent // find first parent for which we're right
	}
	return n.parent // can be nil
}

// Next returns the node directly above n in the sweep status, or nil.
func (n *statusNode) Next() *statusNode {
	// go right
	if n.right != nil {
		n = n.right
		for n.left != nil {
			n = n.left // find the left-most of current subtree
		}
		return n
	}

	for n.parent != nil && n.parent.right == n {
		n = n.parent // find first parent for which we're left
	}
	return n.parent // can be nil
}

func (n *statusNode) balance() int {
	r := 0
	if n.left != nil {
		r -= n.left.height
	}
	if n.right != nil {
		r += n.right.height
	}
	return r
}

func (n *statusNode) updateHeight() {
	n.height = 0
	if n.left != nil {
		n.height = n.left.height
	}
	if n.right != nil && n.height < n.right.height {
		n.height = n.right.height
	}
	n.height++
}

func (n *statusNode) swapChild(a, b *statusNode) {
	if n.right == a {
		n.right = b
	} else {
		n.left = b
	}
	if b != nil {
		b.parent = n
	}
}

func (a *statusNode) rotateLeft() *statusNode {
	b := a.right
	if a.parent != nil {
		a.parent.swapChild(a, b)
	} else {
		b.parent = nil
	}
	a.parent = b
	if a.right = b.left; a.right != nil {
		a.right.parent = a
	}
	b.left = a
	return b
}

func (a *statusNode) rotateRight() *statusNode {
	b := a.left
	if a.parent != nil {
		a.parent.swapChild(a, b)
	} else {
		b.parent = nil
	}
	a.parent = b
	if a.left = b.right; a.left != nil {
		a.left.parent = a
	}
	b.right = a
	return b
}

func (n *statusNode) Print(w io.Writer, indent int) {
	if n.right != nil {
		n.right.Print(w, indent+1)
	} else if n.left != nil {
		fmt.Fprintf(w, "%vnil\n", strings.Repeat("  ", indent+1))
	}
	fmt.Fprintf(w, "%v%d\n", strings.Repeat("  ", indent), n.seg)
	if n.left != nil {
		n.left.Print(w, indent+1)
	} else if n.right != nil {
		fmt.Fprintf(w, "%vnil\n", strings.Repeat("  ", indent+1))
	}
}

// sweepStatus holds the segments that currently cross the sweep line, ordered from bottom to top. It is an AVL tree of segment indices, the ordering is supplied by order and is only evaluated when searching for the position of a new segment. Every active segment's node is kept in nodes so that removal and neighbor lookups never need to search the tree.
type sweepStatus struct {
	root  *statusNode
	order yOrder

	nodes []*statusNode // node for each segment index, nil when not in the status
	arena []statusNode  // each segment is inserted at most once
}

func newSweepStatus(order yOrder) *sweepStatus {
	return &sweepStatus{
		order: order,
		nodes: make([]*statusNode, len(order)),
		arena: make([]statusNode, 0, len(order)),
	}
}

func (s *sweepStatus) newNode(seg int) *statusNode {
	s.arena = append(s.arena, statusNode{height: 1, seg: seg})
	n := &s.arena[len(s.arena)-1]
	s.nodes[seg] = n
	return n
}

func (s *sweepStatus) rebalance(n *statusNode) {
	for {
		oheight := n.height
		if balance := n.balance(); balance == 2 {
			// Tree is excessively right-heavy, rotate it to the left.
			if n.right != nil && n.right.balance() < 0 {
				// Right tree is left-heavy, which would cause the next rotation to result in
				// overall left-heaviness. Rotate the right tree to the right to counteract this.
				n.right = n.right.rotateRight()
				n.right.right.updateHeight()
			}
			n = n.rotateLeft()
			n.left.updateHeight()
		} else if balance == -2 {
			// Tree is excessively left-heavy, rotate it to the right
			if n.left != nil && n.left.balance() > 0 {
				// The left tree is right-heavy, which would cause the next rotation to result in
				// overall right-heaviness. Rotate the left tree to the left to compensate.
				n.left = n.left.rotateLeft()
				n.left.left.updateHeight()
			}
			n = n.rotateRight()
			n.right.updateHeight()
		} else if balance < -2 || 2 < balance {
			panic("Tree too far out of shape!")
		}

		n.updateHeight()
		if n.parent == nil {
			s.root = n
			return
		}
		if oheight == n.height {
			return
		}
		n = n.parent
	}
}

func (s *sweepStatus) String() string {
	if s.root == nil {
		return "nil"
	}

	sb := strings.Builder{}
	s.root.Print(&sb, 0)
	str := sb.String()
	if 0 < len(str) {
		str = str[:len(str)-1]
	}
	return str
}

// First returns the bottom-most node. May return nil.
func (s *sweepStatus) First() *statusNode {
	if s.root == nil {
		return nil
	}
	n := s.root
	for n.left != nil {
		n = n.left
	}
	return n
}

// Node returns the node of segment seg, or nil if it is not in the status.
func (s *sweepStatus) Node(seg int) *statusNode {
	return s.nodes[seg]
}

// Neighbors returns the nodes that would be directly below and above segment seg if it were inserted. Either may be nil.
func (s *sweepStatus) Neighbors(seg int) (*statusNode, *statusNode) {
	var lower, upper *statusNode
	n := s.root
	for n != nil {
		if s.order.Less(n.seg, seg) {
			lower = n
			n = n.right
		} else {
			upper = n
			n = n.left
		}
	}
	return lower, upper
}

// Insert adds segment seg between the nodes returned by Neighbors.
func (s *sweepStatus) Insert(seg int) *statusNode {
	n := s.newNode(seg)
	if s.root == nil {
		s.root = n
		return n
	}

	parent := s.root
	for {
		if s.order.Less(parent.seg, seg) {
			// higher
			if parent.right == nil {
				parent.right = n
				break
			}
			parent = parent.right
		} else {
			// lower or equal
			if parent.left == nil {
				parent.left = n
				break
			}
			parent = parent.left
		}
	}
	n.parent = parent
	s.rebalance(parent)
	return n
}

// Remove removes node n from the status. Segments are swapped between nodes while descending to a leaf, node handles are updated accordingly.
func (s *sweepStatus) Remove(n *statusNode) {
	for {
		if n.left == nil && n.right == nil {
			if o := n.parent; o != nil {
				o.swapChild(n, nil)
				s.rebalance(o)
			} else {
				s.root = nil
			}
			s.nodes[n.seg] = nil
			n.parent = nil
			return
		}

		var o *statusNode
		if n.right != nil {
			o = n.right
			for o.left != nil {
				o = o.left
			}
		} else {
			o = n.left
			for o.right != nil {
				o = o.right
			}
		}
		n.seg, o.seg = o.seg, n.seg
		s.nodes[n.seg], s.nodes[o.seg] = n, o
		n = o
	}
}
