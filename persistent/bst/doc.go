/*
Package bst implements a persistent (immutable) unbalanced binary search tree of strings.

A tree is either Empty or a *Node holding a left subtree, a value and a right subtree.
No other variants exist. Inserting into a tree never modifies it; a new tree is returned
instead, which shares all untouched subtrees with the original:

	t1 := bst.Immutable().Insert("m").Insert("b")
	t2 := t1.Insert("t")    // t1 is unchanged
	fmt.Println(t1, t2)     // ((b)m) ((b)m(t))

Clients may pattern-match on the variants with a type switch:

	switch n := tree.(type) {
	case bst.Empty:
	case *bst.Node:
		fmt.Println(n.Value())
	}

There is no re-balancing; the height of a tree depends on the order of insertions.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bst

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'exercises.bst'.
func tracer() tracing.Trace {
	return tracing.Select("exercises.bst")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("bst: "+msg, msgargs...)
		panic(msg)
	}
}
