package gridworld

import (
	"fmt"
	"math/rand"

	searchclient "github.com/JulyThe9/SearchClient"
)

// Config controls Generate.
type Config struct {
	Rows  int
	Cols  int
	Boxes int
	// Kinds is the number of distinct box letters, cycled over the boxes.
	Kinds int

	// Walls are grown by random walks: Clusters walks of Steps cells each,
	// dropping a wall with probability Density per step.
	Clusters int
	Steps    int
	Density  float64

	// Scramble is the number of reverse moves applied to the solved layout.
	Scramble int
}

// DefaultConfig returns a small level that every strategy solves quickly.
func DefaultConfig() Config {
	return Config{
		Rows:     8,
		Cols:     10,
		Boxes:    2,
		Kinds:    2,
		Clusters: 3,
		Steps:    12,
		Density:  0.3,
		Scramble: 40,
	}
}

func (c Config) validate() error {
	switch {
	case c.Rows < 3 || c.Cols < 3:
		return fmt.Errorf("%w: grid %dx%d is too small", ErrInvalidConfig, c.Rows, c.Cols)
	case c.Boxes < 0 || c.Kinds < 1 || c.Kinds > 26:
		return fmt.Errorf("%w: %d boxes of %d kinds", ErrInvalidConfig, c.Boxes, c.Kinds)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("%w: density %v", ErrInvalidConfig, c.Density)
	case c.Scramble < 0 || c.Clusters < 0 || c.Steps < 0:
		return fmt.Errorf("%w: negative counts", ErrInvalidConfig)
	}
	return nil
}

type point = [2]int

// Generate builds an enclosed level and a start state that is solvable by
// construction: boxes start on their goals and the agent then walks and
// pulls them backwards, so replaying the walk forwards solves the puzzle.
func Generate(rng *rand.Rand, cfg Config) (*Level, *State, error) {
	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}

	level := NewLevel(cfg.Rows, cfg.Cols)
	level.Enclose()
	growWalls(rng, level, cfg)

	free := make([]point, 0, cfg.Rows*cfg.Cols)
	for i := 0; i < cfg.Rows; i++ {
		for j := 0; j < cfg.Cols; j++ {
			if !level.Wall(i, j) {
				free = append(free, point{i, j})
			}
		}
	}
	if len(free) < cfg.Boxes+1 {
		return nil, nil, fmt.Errorf("%w: %d free cells for %d boxes", ErrInvalidConfig, len(free), cfg.Boxes)
	}
	rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })

	boxes := make([]searchclient.Cell, 0, cfg.Boxes)
	for i := 0; i < cfg.Boxes; i++ {
		p := free[i]
		kind := byte('a' + i%cfg.Kinds)
		if err := level.SetGoal(p[0], p[1], kind); err != nil {
			return nil, nil, err
		}
		boxes = append(boxes, searchclient.Cell{Row: p[0], Col: p[1], Kind: kind - 'a' + 'A'})
	}
	agent := free[cfg.Boxes]
	solved, err := level.Start(agent[0], agent[1], boxes)
	if err != nil {
		return nil, nil, err
	}

	start := scramble(rng, level, solved, cfg.Scramble)
	return level, start, nil
}

// growWalls drops walls along random walks, as in a clustered maze.
func growWalls(rng *rand.Rand, level *Level, cfg Config) {
	for c := 0; c < cfg.Clusters; c++ {
		p := point{1 + rng.Intn(cfg.Rows-2), 1 + rng.Intn(cfg.Cols-2)}
		for s := 0; s < cfg.Steps; s++ {
			if rng.Float64() < cfg.Density {
				level.SetWall(p[0], p[1])
			}
			dr, dc := directions[rng.Intn(len(directions))].delta()
			np := point{p[0] + dr, p[1] + dc}
			if np[0] > 0 && np[0] < cfg.Rows-1 && np[1] > 0 && np[1] < cfg.Cols-1 {
				p = np
			}
		}
	}
}

// scramble applies random reverse moves. A reverse move steps the agent onto
// a free cell and, with even odds, pulls the box behind it along.
func scramble(rng *rand.Rand, level *Level, solved *State, moves int) *State {
	row, col := solved.Agent()
	boxes := cloneLayout(solved.boxes)
	for m := 0; m < moves; m++ {
		dr, dc := directions[rng.Intn(len(directions))].delta()
		nr, nc := row+dr, col+dc
		if level.Wall(nr, nc) || boxes[nr][nc] != 0 {
			continue
		}
		br, bc := row-dr, col-dc
		if !level.Wall(br, bc) && boxes[br][bc] != 0 && rng.Intn(2) == 0 {
			boxes[row][col] = boxes[br][bc]
			boxes[br][bc] = 0
		}
		row, col = nr, nc
	}
	return newState(level, row, col, boxes, 0, nil, Action{})
}
