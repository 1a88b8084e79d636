// Package dfs implements an iterative depth-first reachability walk over an
// implicit graph given by a successor function.
//
// What:
//
//   - Reach(seeds, next, opts...): visits every vertex reachable from any
//     seed, each exactly once, in pre-order. Supports:
//   - Pre-order hook with error abort
//   - Cancellation via context.Context
//   - Depth limiting
//   - A cap on visited vertices
//
// Why:
//   - Walk a predecessor DAG backwards from several goals at once
//     (package solver uses it to collect every state on an optimal route)
//   - Explicit stack: no recursion, so long chains cannot overflow
//
// Key Types:
//
//   - Option[V]: functional options for Reach
//   - Options[V]: holds Ctx, OnVisit, MaxDepth, MaxVisits
//   - Result[V]: Order, Depth, Parent and Visited
//
// Complexity:
//
//   - Time:   O(V + E) over the reached subgraph, plus hook overhead.
//   - Memory: O(V + E) for the stack and result maps.
//
// Errors:
//
//   - ErrNilNext:    next is nil.
//   - ErrVisitLimit: MaxVisits exceeded.
//   - ctx.Err():     context cancelled or timed out.
//   - errors from OnVisit or next, wrapped with the offending vertex.
//
// On error the partial Result is returned alongside the error.
//
// Example:
//
//	preds := map[string][]string{"c": {"a", "b"}, "b": {"a"}}
//	res, err := dfs.Reach([]string{"c"}, func(v string) ([]string, error) {
//	    return preds[v], nil
//	})
//	// res.Order == [c a b]
package dfs
