package graph

func New() *Graph {
	return &Graph{
		graph:      make(map[string][]string),
		starting:   make(map[string]bool),
		terminal:   make(map[string]bool),
		validNodes: make(map[string]bool),
	}
}

type Graph struct {
	graph      map[string][]string
	nodeOrder  []string
	starting   map[string]bool
	terminal   map[string]bool
	validNodes map[string]bool
}

// AddNode declares a node without edges. A node declared this way is both a
// starting and terminal candidate until transitions say otherwise.
func (g *Graph) AddNode(node string) {
	if _, ok := g.validNodes[node]; !ok {
		g.nodeOrder = append(g.nodeOrder, node)
	}

	if _, ok := g.starting[node]; !ok {
		g.starting[node] = true
	}

	if _, ok := g.graph[node]; !ok {
		g.terminal[node] = true
	}

	g.validNodes[node] = true
}

func (g *Graph) AddTransition(from string, to string) {
	if _, ok := g.validNodes[from]; !ok {
		g.nodeOrder = append(g.nodeOrder, from)
	}

	if _, ok := g.validNodes[to]; !ok {
		g.nodeOrder = append(g.nodeOrder, to)
	}

	// Nodes that are reached via another node are never considered starting nodes
	g.starting[to] = false

	// Only mark the origin node ("from") as a starting node if it's never been marked as false
	if _, ok := g.starting[from]; !ok {
		g.starting[from] = true
	}

	// If the destination has no edges of its own then mark it as terminal
	if _, ok := g.graph[to]; !ok {
		g.terminal[to] = true
	}

	// When declaring a node with edges ensure that any previous marking as terminal is overridden
	if _, ok := g.terminal[from]; ok {
		g.terminal[from] = false
	}

	g.graph[from] = append(g.graph[from], to)

	g.validNodes[from] = true
	g.validNodes[to] = true
}

func (g *Graph) IsTerminal(node string) bool {
	return g.terminal[node]
}

func (g *Graph) Transitions(node string) []string {
	return g.graph[node]
}

func (g *Graph) IsValid(node string) bool {
	return g.validNodes[node]
}

func (g *Graph) Nodes() []string {
	nodes := make([]string, len(g.nodeOrder))
	copy(nodes, g.nodeOrder)
	return nodes
}

type Transition struct {
	From string
	To   string
}

type Info struct {
	StartingNodes []string
	TerminalNodes []string
	Transitions   []Transition
}

func (g *Graph) Info() Info {
	var i Info
	for _, node := range g.nodeOrder {
		// Add transitions
		if transitions, ok := g.graph[node]; ok {
			for _, to := range transitions {
				i.Transitions = append(i.Transitions, Transition{
					From: node,
					To:   to,
				})
			}
		}

		// Add starting nodes
		if valid, ok := g.starting[node]; ok {
			if valid {
				i.StartingNodes = append(i.StartingNodes, node)
			}
		}

		// Add terminal nodes
		if valid, ok := g.terminal[node]; ok {
			if valid {
				i.TerminalNodes = append(i.TerminalNodes, node)
			}
		}
	}

	return i
}
