// Package frontier provides the three queue disciplines a search strategy
// draws pending nodes from.
//
//   - Stack:         last-in-first-out, drives depth-first search.
//   - Queue:         first-in-first-out, drives breadth-first search.
//   - PriorityQueue: min-priority order keyed by a comparable key, drives
//     uniform-cost and best-first search.
//
// PriorityQueue supports push-or-decrease through Update: offering a key that
// is already queued with a lower priority lowers it in place instead of adding
// a duplicate entry. Equal priorities are broken by the order in which keys
// were first inserted (earlier wins), so pops are fully deterministic. An
// updated entry keeps its original insertion sequence.
//
// Complexity:
//
//   - Stack, Queue: O(1) amortised Push and Pop.
//   - PriorityQueue: O(log n) Update and Pop, O(1) Contains and Priority.
//
// None of the types are safe for concurrent use; a search owns its frontier.
package frontier
