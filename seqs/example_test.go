package seqs_test

import (
	"fmt"
	"slices"

	"rangeplay/seqs"
)

func ExampleMap() {
	input := slices.Values([]int{1, 2, 3})

	// Apply a transformation
	result := seqs.Map(input, func(v int) int {
		return v * 10
	})

	for v := range result {
		fmt.Println(v)
	}

	// Output:
	// 10
	// 20
	// 30
}

func ExampleWindow() {
	input := slices.Values([]int{1, 2, 3, 4, 5})

	// Create sliding windows of size 3 with step 1
	windows := seqs.Window(input, 3, 1)

	for w := range windows {
		fmt.Println(w)
	}

	// Output:
	// [1 2 3]
	// [2 3 4]
	// [3 4 5]
}

func ExampleReduce() {
	evens := seqs.Filter(seqs.Range(1, 11, 1), func(v int) bool { return v%2 == 0 })

	total := seqs.Reduce(evens, 0, func(acc, v int) int { return acc + v })
	fmt.Println(total)

	// Output:
	// 30
}

func ExampleInfinite() {
	squares := seqs.MapInfinite(seqs.Iota(1), func(v int) int { return v * v })

	// An Infinite sequence must be bounded before it can be consumed
	fmt.Println(slices.Collect(squares.Take(5)))
	fmt.Println(slices.Collect(squares.TakeWhile(func(v int) bool { return v < 50 })))

	// Output:
	// [1 4 9 16 25]
	// [1 4 9 16 25 36 49]
}

func ExampleGenerator() {
	fib := seqs.NewGenerator([2]int{0, 1}, func(s [2]int) (int, [2]int) {
		return s[0], [2]int{s[1], s[0] + s[1]}
	})

	fmt.Println(seqs.Format(fib.Seq().Take(8), " "))
	// The generator resumes where it left off
	fmt.Println(seqs.Format(fib.Seq().Take(3), " "))

	// Output:
	// 0 1 1 2 3 5 8 13
	// 21 34 55
}

func ExampleSetUnion() {
	a := seqs.Of(1, 2, 2, 4)
	b := seqs.Of(2, 3, 4, 4)

	fmt.Println(slices.Collect(seqs.SetUnion(a, b)))
	fmt.Println(slices.Collect(seqs.SetIntersection(a, b)))
	fmt.Println(slices.Collect(seqs.SetDifference(a, b)))
	fmt.Println(slices.Collect(seqs.SetSymmetricDifference(a, b)))

	// Output:
	// [1 2 2 3 4 4]
	// [2 4]
	// [1 2]
	// [1 2 3 4]
}

func ExampleSplit() {
	for word := range seqs.Split(seqs.Runes("snake_case_name"), '_') {
		fmt.Println(string(word))
	}

	// Output:
	// snake
	// case
	// name
}
