// Package tree
// Author: momentics <momentics@gmail.com>
//
// Binary tree whose nodes are drawn from a fixed pool.NodePool.
//
// Only child links are stored. The root is not reserved: the caller obtains
// it with RetainNode and then grows the tree with AppendChild. A side that is
// already occupied is never overwritten, and new children are always fresh
// slots, so a node can have at most one parent and no cycles can form.
//
// RemoveChild has a deliberate dual behaviour. On a leaf it releases the leaf
// itself. On an internal node it releases both child subtrees and keeps the
// node. Subtree release runs on an explicit worklist sized to the pool at
// construction, so deep trees neither recurse nor allocate.
package tree
