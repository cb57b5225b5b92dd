package progress

const DefaultCycleLength = 8

type Node struct {
	ID        int  `json:"id"`
	Completed bool `json:"completed"`
	Current   bool `json:"current"`
}

type Cycle struct {
	Number int    `json:"number"`
	Nodes  []Node `json:"nodes"`
}

// Path lays the completed count out as cycles of cycleLength nodes: every
// finished cycle plus the one in progress. Node ids are 1-based and global.
func Path(highest, cycleLength int) []Cycle {
	if cycleLength <= 0 {
		cycleLength = DefaultCycleLength
	}
	if highest < 0 {
		highest = 0
	}

	completedCycles := highest / cycleLength
	cycles := make([]Cycle, 0, completedCycles+1)
	for c := 0; c <= completedCycles; c++ {
		nodes := make([]Node, cycleLength)
		for i := 1; i <= cycleLength; i++ {
			id := c*cycleLength + i
			nodes[i-1] = Node{
				ID:        id,
				Completed: id <= highest,
				Current:   id == highest+1,
			}
		}
		cycles = append(cycles, Cycle{Number: c + 1, Nodes: nodes})
	}
	return cycles
}
