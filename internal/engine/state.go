package engine

// TableState is the projection of a table's roll log: per-actor tallies of
// honest versus seeked rolls and the entropy spent getting there.
type TableState struct {
	Actors map[string]*ActorStats `json:"actors"`
}

// ActorStats accumulates one actor's rolling history.
type ActorStats struct {
	Name      string `json:"name"`
	Rolls     int    `json:"rolls"`
	Honest    int    `json:"honest"`
	Seeked    int    `json:"seeked"`
	Exhausted int    `json:"exhausted"`
	Attempts  int    `json:"attempts"` // evaluations consumed, including retries
	Checks    int    `json:"checks"`
	Saves     int    `json:"saves"`
	Attacks   int    `json:"attacks"`
	LastTotal int    `json:"last_total"`
}

// NewTableState creates an empty clean slate.
func NewTableState() *TableState {
	return &TableState{
		Actors: make(map[string]*ActorStats),
	}
}

// actor fetches or lazily creates the stats row for a name.
func (s *TableState) actor(name string) *ActorStats {
	if a, ok := s.Actors[name]; ok {
		return a
	}
	a := &ActorStats{Name: name}
	s.Actors[name] = a
	return a
}

// TotalRolls sums every actor's roll count.
func (s *TableState) TotalRolls() int {
	total := 0
	for _, a := range s.Actors {
		total += a.Rolls
	}
	return total
}
