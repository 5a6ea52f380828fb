package sort_test

import (
	"fmt"

	"github.com/exascience/bitonic/sort"
)

func Example() {
	nums := []float64{3.1, 8.2, 3.4, 2.22, 4.44}
	sort.BitonicSort(nums)
	fmt.Println(nums)

	nums = []float64{3.1, 8.2, 3.4, 2.22, 4.44}
	sort.ParallelBitonicSort(nums, 2)
	fmt.Println(nums)

	nums = []float64{3.1, 8.2, 3.4, 2.22, 4.44}
	sort.ParallelSort(nums, 8)
	fmt.Println(nums)

	// Output:
	// [2.22 3.1 3.4 4.44 8.2]
	// [2.22 3.1 3.4 4.44 8.2]
	// [2.22 3.1 3.4 4.44 8.2]
}

func ExampleParallelSort() {
	people := []string{"Michael", "Bob", "Jenny", "John"}
	sort.ParallelSort(people, 4)
	fmt.Println(people)

	// Output:
	// [Bob Jenny John Michael]
}
