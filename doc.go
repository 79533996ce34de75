/*
Package exercises is a collection of small, independent exercises in functional-style Go.

The root package holds the glue: predicate search (FirstThenApply, FirstThenLowerCase),
a fluent sentence builder (Say) and a generator of successive powers (Powers).

Sub-packages:

	maybe               option type
	quaternion          immutable quaternion arithmetic
	persistent/bst      persistent binary search tree of strings
	persistent/stack    persistent bounded stack
	shape               closed sum type of shapes
	lines               counting the non-comment lines of a text file

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package exercises
