package bst

import (
	"strings"

	"github.com/samber/lo"
)

// Tree is a persistent binary search tree of strings. Its only implementations
// are Empty and *Node.
type Tree interface {
	Size() int                  // number of values in the tree
	Contains(value string) bool // is value present?
	Insert(value string) Tree   // copy of the tree with value inserted
	String() string             // parenthesized in-order rendering
	render(sb *strings.Builder) // seals the set of variants
}

// Immutable returns an empty tree. The zero value of Empty is legal as well:
//
//     tree := bst.Empty{}.Insert("m")
//
func Immutable() Tree {
	return Empty{}
}

// FromValues returns a tree with all of values inserted in the order given.
func FromValues(values ...string) Tree {
	return lo.Reduce(values, func(tree Tree, v string, _ int) Tree {
		return tree.Insert(v)
	}, Immutable())
}

// --- Empty -----------------------------------------------------------------

// Empty is the tree without any values.
type Empty struct{}

func (Empty) Size() int { return 0 }

func (Empty) Contains(string) bool { return false }

// Insert returns a single node tree.
func (Empty) Insert(value string) Tree {
	return newNode(Empty{}, value, Empty{})
}

func (Empty) String() string { return "()" }

// Empty subtrees are not rendered.
func (Empty) render(*strings.Builder) {}

// --- Node ------------------------------------------------------------------

// Node is a non-empty tree. Nodes are never modified after construction.
type Node struct {
	left  Tree
	value string
	right Tree
}

func newNode(left Tree, value string, right Tree) *Node {
	assertThat(left != nil && right != nil, "node %q must not have nil children", value)
	return &Node{left: left, value: value, right: right}
}

// Left returns the subtree of values less than n.Value().
func (n *Node) Left() Tree { return n.left }

// Value returns the value stored at n.
func (n *Node) Value() string { return n.value }

// Right returns the subtree of values greater than n.Value().
func (n *Node) Right() Tree { return n.right }

// Size counts the values of n and its subtrees.
func (n *Node) Size() int {
	return n.left.Size() + 1 + n.right.Size()
}

// Contains searches value in lexicographic order.
func (n *Node) Contains(value string) bool {
	switch {
	case value == n.value:
		return true
	case value < n.value:
		return n.left.Contains(value)
	}
	return n.right.Contains(value)
}

// Insert returns a tree with value inserted, copying the nodes on the path from n
// down to the new leaf. If value is already present, n itself is returned and
// nothing is copied.
func (n *Node) Insert(value string) Tree {
	switch {
	case value == n.value:
		tracer().Debugf("insert: %q already present", value)
		return n
	case value < n.value:
		tracer().Debugf("insert: %q < %q, descending left", value, n.value)
		l := n.left.Insert(value)
		if l == n.left {
			return n
		}
		return newNode(l, n.value, n.right)
	}
	tracer().Debugf("insert: %q > %q, descending right", value, n.value)
	r := n.right.Insert(value)
	if r == n.right {
		return n
	}
	return newNode(n.left, n.value, r)
}

func (n *Node) String() string {
	var sb strings.Builder
	n.render(&sb)
	return sb.String()
}

func (n *Node) render(sb *strings.Builder) {
	sb.WriteByte('(')
	n.left.render(sb)
	sb.WriteString(n.value)
	n.right.render(sb)
	sb.WriteByte(')')
}

var _ Tree = Empty{}
var _ Tree = &Node{}
