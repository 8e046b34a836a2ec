package maze

// Solve returns the shortest cell path from the entrance cell to the exit cell
// A perfect maze has exactly one, so this is also the only simple path
func (m *Maze) Solve() []Point {
	return m.Path(m.EntranceCell(), m.ExitCell())
}

// Path runs BFS between two cells, nil when either is off-grid or unreachable
func (m *Maze) Path(start, end Point) []Point {
	if !m.Contains(start) || !m.Contains(end) {
		return nil
	}

	queue := []Point{start}
	cameFrom := make(map[Point]Point)
	visited := make(map[Point]bool)
	visited[start] = true

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == end {
			path := []Point{curr}
			for curr != start {
				curr = cameFrom[curr]
				path = append(path, curr)
			}
			// Reverse into start..end order
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, next := range m.Neighbors(curr) {
			if !visited[next] {
				visited[next] = true
				cameFrom[next] = curr
				queue = append(queue, next)
			}
		}
	}

	return nil
}

// Reachable counts cells connected to start
func (m *Maze) Reachable(start Point) int {
	if !m.Contains(start) {
		return 0
	}
	visited := map[Point]bool{start: true}
	stack := []Point{start}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range m.Neighbors(curr) {
			if !visited[next] {
				visited[next] = true
				stack = append(stack, next)
			}
		}
	}
	return len(visited)
}
