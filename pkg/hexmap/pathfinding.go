// pkg/hexmap/pathfinding.go
package hexmap

import (
	"container/heap"
	"errors"
	"fmt"
)

var (
	ErrNoWaypoints  = errors.New("hexmap: route needs at least one waypoint")
	ErrEmptyLeg     = errors.New("hexmap: empty leg")
	ErrDisjointLegs = errors.New("hexmap: leg does not start where the previous one ends")
)

// Path is an ordered run of adjacent coordinates: first element is the origin,
// last is the destination. A single-element path means origin == destination.
type Path []Hex

func (p Path) Start() Hex { return p[0] }
func (p Path) Goal() Hex  { return p[len(p)-1] }

// Steps is the number of moves along the path.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Contains reports whether h appears anywhere on the path.
func (p Path) Contains(h Hex) bool {
	for _, x := range p {
		if x == h {
			return true
		}
	}
	return false
}

// CostFunc returns the cost of entering h. ok == false marks h impassable.
type CostFunc func(h Hex) (cost int, ok bool)

// UniformCost makes every cell cost 1.
func UniformCost(Hex) (int, bool) { return 1, true }

// LegError reports the first leg of a multi-waypoint route that has no path.
type LegError struct {
	Index    int
	From, To Hex
}

func (e *LegError) Error() string {
	return fmt.Sprintf("hexmap: no path for leg %d %v -> %v", e.Index, e.From, e.To)
}

// FindPath находит кратчайший путь от start до goal (A*).
//
// Only populated cells are expanded. Entering a cell costs cost(cell); costs
// below 1 count as 1 so the hex distance heuristic stays admissible. Among
// equal-priority frontier nodes the one pushed first is expanded first, which
// makes the result reproducible for a fixed map and cost function.
// start == goal yields the single-element path [start].
func (hm *HexMap) FindPath(start, goal Hex, cost CostFunc) (Path, bool) {
	if !hm.Contains(start) || !hm.Contains(goal) {
		return nil, false
	}
	if start == goal {
		return Path{start}, true
	}
	if cost == nil {
		cost = UniformCost
	}

	pq := &PriorityQueue{}
	heap.Init(pq)
	seq := 0
	heap.Push(pq, &Node{Hex: start, Priority: start.Distance(goal), Seq: seq})
	costSoFar := map[Hex]int{start: 0}

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*Node)
		if current.Hex == goal {
			return reconstructPath(current), true
		}
		// Устаревшая запись: гекс уже достигнут дешевле.
		if current.Cost > costSoFar[current.Hex] {
			continue
		}
		for _, neighbor := range hm.Neighbors(current.Hex) {
			step, ok := cost(neighbor)
			if !ok {
				continue
			}
			if step < 1 {
				step = 1
			}
			newCost := current.Cost + step
			if old, seen := costSoFar[neighbor]; seen && newCost >= old {
				continue
			}
			costSoFar[neighbor] = newCost
			seq++
			heap.Push(pq, &Node{
				Hex:      neighbor,
				Cost:     newCost,
				Priority: newCost + neighbor.Distance(goal),
				Seq:      seq,
				Parent:   current,
			})
		}
	}
	return nil, false // Нет пути
}

// FindLegs resolves each consecutive waypoint pair independently. legs[i] is
// nil when leg i has no path; failed lists those indexes in order. A failed leg
// does not stop the remaining legs from being computed.
func (hm *HexMap) FindLegs(waypoints []Hex, cost CostFunc) (legs []Path, failed []int) {
	if len(waypoints) < 2 {
		return nil, nil
	}
	legs = make([]Path, len(waypoints)-1)
	for i := 0; i < len(waypoints)-1; i++ {
		leg, ok := hm.FindPath(waypoints[i], waypoints[i+1], cost)
		if !ok {
			failed = append(failed, i)
			continue
		}
		legs[i] = leg
	}
	return legs, failed
}

// FindRoute computes and stitches the legs through waypoints. The first failed
// leg is reported as a *LegError; deciding what to do about it is up to the caller.
func (hm *HexMap) FindRoute(waypoints []Hex, cost CostFunc) (Path, error) {
	switch len(waypoints) {
	case 0:
		return nil, ErrNoWaypoints
	case 1:
		p, ok := hm.FindPath(waypoints[0], waypoints[0], cost)
		if !ok {
			return nil, &LegError{Index: 0, From: waypoints[0], To: waypoints[0]}
		}
		return p, nil
	}
	legs, failed := hm.FindLegs(waypoints, cost)
	if len(failed) > 0 {
		i := failed[0]
		return nil, &LegError{Index: i, From: waypoints[i], To: waypoints[i+1]}
	}
	return Stitch(legs...)
}

// Stitch concatenates legs end to end, dropping the duplicated junction
// coordinate. Each leg must start where the previous one ended.
func Stitch(legs ...Path) (Path, error) {
	var full Path
	for i, leg := range legs {
		if len(leg) == 0 {
			return nil, fmt.Errorf("leg %d: %w", i, ErrEmptyLeg)
		}
		if len(full) == 0 {
			full = append(full, leg...)
			continue
		}
		if full.Goal() != leg.Start() {
			return nil, fmt.Errorf("leg %d starts at %v, previous ends at %v: %w", i, leg.Start(), full.Goal(), ErrDisjointLegs)
		}
		full = append(full, leg[1:]...)
	}
	return full, nil
}

// PriorityQueue для A*
type PriorityQueue []*Node

type Node struct {
	Hex      Hex
	Cost     int
	Priority int
	Seq      int
	Parent   *Node
}

func (pq PriorityQueue) Len() int { return len(pq) }
func (pq PriorityQueue) Less(i, j int) bool {
	if pq[i].Priority != pq[j].Priority {
		return pq[i].Priority < pq[j].Priority
	}
	return pq[i].Seq < pq[j].Seq
}
func (pq PriorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *PriorityQueue) Push(x any) {
	*pq = append(*pq, x.(*Node))
}
func (pq *PriorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[0 : n-1]
	return item
}

func reconstructPath(node *Node) Path {
	n := 0
	for cur := node; cur != nil; cur = cur.Parent {
		n++
	}
	path := make(Path, n)
	for cur := node; cur != nil; cur = cur.Parent {
		n--
		path[n] = cur.Hex
	}
	return path
}
