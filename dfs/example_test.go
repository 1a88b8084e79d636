package dfs_test

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/mazepath/dfs"
)

// ExampleReach demonstrates a pre-order walk on a diamond-shaped graph.
// Graph structure:
//
//	  A
//	 / \
//	B   C
//	 \ /
//	  D
//	 / \
//	E   F
//
// Starting at "A", expected pre-order: A B D E F C
func ExampleReach() {
	succ := map[string][]string{
		"A": {"B", "C"},
		"B": {"D"},
		"C": {"D"},
		"D": {"E", "F"},
	}

	res, err := dfs.Reach([]string{"A"}, func(v string) ([]string, error) {
		return succ[v], nil
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(strings.Join(res.Order, " "))
	// Output: A B D E F C
}

// ExampleReach_backwards walks a predecessor table from two goals that share
// part of their history, collecting everything on any route to either goal.
func ExampleReach_backwards() {
	preds := map[string][]string{
		"goal-north": {"bend"},
		"goal-south": {"bend", "ramp"},
		"bend":       {"start"},
		"ramp":       {"start"},
	}

	res, _ := dfs.Reach([]string{"goal-north", "goal-south"}, func(v string) ([]string, error) {
		return preds[v], nil
	})

	seen := append([]string(nil), res.Order...)
	sort.Strings(seen)
	fmt.Println(res.Len(), seen)
	// Output: 5 [bend goal-north goal-south ramp start]
}
