package papertrade

// Holding is the read-only view of a single position.
type Holding struct {
	Ticker         string
	Shares         Quantity
	AverageCost    Money
	TotalCostBasis Money
}

// Snapshot is an immutable view of the portfolio at the time it was taken.
// Holdings are sorted by ticker. External collaborators consume snapshots;
// none of them can mutate the portfolio through one.
type Snapshot struct {
	Balance  Money
	Holdings []Holding
}

// Holding returns the snapshot view of a single ticker.
func (s *Snapshot) Holding(ticker string) (Holding, bool) {
	t := Ticker(ticker)
	for _, h := range s.Holdings {
		if h.Ticker == t {
			return h, true
		}
	}
	return Holding{}, false
}
