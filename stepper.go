package searchclient

// StepSnapshot exposes the per-iteration state of a search run.
type StepSnapshot[S State] struct {
	Current   S
	Inserted  []S
	Frontier  int
	Explored  int
	Done      bool
	Found     bool
	Path      []S
	StepIndex int
	Status    string
}

// Stepper drives a strategy one expansion at a time.
// It applies the same duplicate checks as Search but no limits.
type Stepper[S State] struct {
	strategy *Strategy[S]
	problem  Problem[S]
	cameFrom map[string]S

	stepCount int
	done      bool
	found     bool
	path      []S
}

// NewStepper seeds strategy with start.
func NewStepper[S State](strategy *Strategy[S], problem Problem[S], start S) *Stepper[S] {
	s := &Stepper[S]{
		strategy: strategy,
		problem:  problem,
		cameFrom: make(map[string]S),
	}
	strategy.Insert(start)
	return s
}

// Strategy returns the strategy being driven.
func (s *Stepper[S]) Strategy() *Strategy[S] { return s.strategy }

// Done reports whether the run has finished.
func (s *Stepper[S]) Done() bool { return s.done }

// Step expands one state and returns a snapshot.
// Once the run is finished every call returns the final snapshot again.
func (s *Stepper[S]) Step() (StepSnapshot[S], error) {
	if s.done {
		return s.snapshot(StepSnapshot[S]{Done: true, Found: s.found, Path: s.path}), nil
	}
	if s.strategy.FrontierEmpty() {
		s.done = true
		return s.snapshot(StepSnapshot[S]{Done: true}), nil
	}

	current, err := s.strategy.NextLeaf()
	if err != nil {
		return StepSnapshot[S]{}, err
	}
	s.stepCount++

	if s.problem.IsGoal(current) {
		s.done = true
		s.found = true
		s.path = reconstructPath(s.cameFrom, current)
		return s.snapshot(StepSnapshot[S]{
			Current: current,
			Done:    true,
			Found:   true,
			Path:    s.path,
		}), nil
	}

	inserted := expand(s.strategy, s.problem, current, s.cameFrom)
	return s.snapshot(StepSnapshot[S]{
		Current:  current,
		Inserted: inserted,
	}), nil
}

func (s *Stepper[S]) snapshot(snap StepSnapshot[S]) StepSnapshot[S] {
	snap.Frontier = s.strategy.FrontierSize()
	snap.Explored = s.strategy.ExploredCount()
	snap.StepIndex = s.stepCount
	snap.Status = s.strategy.Status()
	return snap
}
