package usecase

import (
	"slices"

	"smart-task-analyzer/internal/model"
)

// dfsFrame is one node on the explicit traversal stack together with the
// index of the next dependency to follow.
type dfsFrame struct {
	id   string
	next int
}

// detectCycle walks the dependency edges depth-first, roots in batch order and
// dependencies in list order, and returns the first cycle it meets. The path
// starts at the node that was reached twice. Dependencies outside the batch
// are skipped. Returns nil when the batch is acyclic.
func detectCycle(tasks []model.Task, graph model.TaskGraph) []string {
	visited := make(map[string]bool, len(tasks))
	onStack := make(map[string]bool, len(tasks))
	parent := make(map[string]string, len(tasks))

	for _, root := range tasks {
		if visited[root.ID] {
			continue
		}

		visited[root.ID] = true
		onStack[root.ID] = true
		stack := []dfsFrame{{id: root.ID}}

		for len(stack) > 0 {
			top := len(stack) - 1
			node := stack[top].id
			deps := graph[node].Dependencies

			if stack[top].next >= len(deps) {
				onStack[node] = false
				stack = stack[:top]
				continue
			}

			dep := deps[stack[top].next]
			stack[top].next++

			if _, ok := graph[dep]; !ok {
				continue
			}
			if !visited[dep] {
				parent[dep] = node
				visited[dep] = true
				onStack[dep] = true
				stack = append(stack, dfsFrame{id: dep})
				continue
			}
			if onStack[dep] {
				return cyclePath(dep, node, parent)
			}
		}
	}

	return nil
}

// cyclePath follows parent pointers from `from` back to `repeated` and returns
// the nodes in traversal order.
func cyclePath(repeated, from string, parent map[string]string) []string {
	path := []string{from}
	for cur := from; cur != repeated; {
		p, ok := parent[cur]
		if !ok {
			break
		}
		cur = p
		path = append(path, cur)
	}
	slices.Reverse(path)
	return path
}
