package internal

// ReconstructPath rebuilds the path ending at current from the cameFrom map.
// The walk stops at the first node without a recorded parent.
func ReconstructPath[KeyType comparable, NodeType any](
	cameFrom map[KeyType]NodeType,
	current NodeType,
	key func(NodeType) KeyType,
) []NodeType {
	path := []NodeType{current}
	for {
		previousNode, exists := cameFrom[key(current)]
		if !exists {
			break
		}
		path = append(path, previousNode)
		current = previousNode
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
