/*
Package persistent is the home of the immutable persistent data structures of this module:
an unbalanced binary search tree of strings (package bst) and a bounded LIFO stack
(package stack).

Immutable data structures in many cases offer benefits over mutable data structures in terms
of concurrent access and functional reasoning. *Persistent* immutable data-structures offer
structural sharing: an “update” copies only the parts of the structure it touches and
shares everything else with the original. Old incarnations stay valid forever.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
