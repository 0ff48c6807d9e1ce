package searchclient

type testState struct {
	key   string
	g     int
	boxes Layout
}

func (s *testState) Key() string   { return s.key }
func (s *testState) G() int        { return s.g }
func (s *testState) Boxes() Layout { return s.boxes }

func newTestState(key string, g int) *testState {
	return &testState{key: key, g: g}
}

// grid returns a rows x cols layout with the given cells set.
func grid(rows, cols int, cells ...Cell) Layout {
	layout := make(Layout, rows)
	for i := range layout {
		layout[i] = make([]byte, cols)
	}
	for _, c := range cells {
		layout[c.Row][c.Col] = c.Kind
	}
	return layout
}
