package classicsort_test

import (
	"fmt"

	"github.com/lanrat/classicsort"
)

func ExampleBubble() {
	data := []int{5, 3, 4, 1, 2}
	stats, err := classicsort.Bubble(data, func(a, b int) bool { return a < b }, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(data)
	for _, p := range stats.Passes {
		fmt.Println(p)
	}
	// Output:
	// [1 2 3 4 5]
	// pass 1: 4 comparisons, 4 swaps
	// pass 2: 3 comparisons, 2 swaps
	// pass 3: 2 comparisons, 2 swaps
	// pass 4: 1 comparisons, 0 swaps
}

func ExampleQuickRange() {
	data := []float64{2.5, 9, -1, 4}
	if _, err := classicsort.QuickRange(data, 0, len(data)-1, func(a, b float64) bool { return a < b }, nil); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(data)
	// Output: [-1 2.5 4 9]
}

func ExampleOrdered() {
	words := []string{"shuttle", "bubble", "quick"}
	stats, _ := classicsort.Ordered(classicsort.ShuttleSort, words, nil)
	fmt.Println(words)
	fmt.Println(stats)
	// Output:
	// [bubble quick shuttle]
	// shuttle: 2 passes, 3 comparisons, 2 swaps
}
