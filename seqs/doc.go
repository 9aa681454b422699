/*
Package seqs provides lazy, composable views over Go 1.23+ iterators (iter.Seq).

A pipeline is built by wrapping one sequence inside another. Building it never
pulls an element; values are produced only when a terminal operation (or a
range loop) drives the outermost stage:

  - Views: [Filter], [Map], [Take], [Skip], [TakeWhile], [DropWhile], [TakeLast],
    [DropLast], [Reverse], [Zip], [ZipN], [ZipWith], [Enumerate], [Flatten], [FlatMap],
    [Split], [Unique], [Window], [Sliding], [Chunk], [PartialSum], [ExclusiveScan],
    [CartesianProduct].
  - Sorted inputs: [SetUnion], [SetIntersection], [SetDifference],
    [SetSymmetricDifference], [Merge], [MergeN].
  - Sources: [Of], [Range], [Repeat], [LinearDistribute], and the unbounded
    [Iota], [Generate], [Iterate], [Cycle].
  - Terminals: [Reduce], [Fold], [Count], [CountValue], [Find], [InnerProduct],
    [Equal], [Sum], and slices.Collect for materialization.

Views that need to remember past elements ([Window], [TakeLast], [DropLast])
keep them in a bounded ring buffer from package queues; [Reverse] buffers the
whole input.

# Boundedness

Unbounded sources return [Infinite] rather than iter.Seq. An Infinite cannot be
handed to a terminal directly; it must first be bounded:

	evens := seqs.Iterate(0, func(v int) int { return v + 2 })
	slices.Collect(evens.Take(5))                      // [0 2 4 6 8]
	slices.Collect(seqs.Take(evens.Unbounded(), 5))    // same, explicit opt-out

# Restartability

Views over stateless sources may be traversed any number of times and yield the
same values each time. A [Generator] owns mutable state: every pull advances it,
so a second traversal continues where the first one stopped. Generators must not
be traversed from more than one place at a time.
*/
package seqs
