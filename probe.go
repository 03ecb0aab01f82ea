package wordbloom

// Querier is satisfied by Filter and FrozenFilter.
type Querier interface {
	Contains(item string) bool
}

// ProbeStats tracks how a filter answered queries whose true membership is known.
type ProbeStats struct {
	Queries        uint64  // Total queries
	DefiniteNos    uint64  // Filter said "definitely not"
	MaybeYes       uint64  // Filter said "maybe"
	ConfirmedFPs   uint64  // "maybe" answers for items not in the set
	ObservedFPRate float64 // ConfirmedFPs / (queries for absent items)

	absent uint64
}

// Update records one query. filterResult is what the filter answered,
// actualResult whether the item is really in the set.
func (ps *ProbeStats) Update(filterResult, actualResult bool) {
	ps.Queries++
	if !actualResult {
		ps.absent++
	}
	if !filterResult {
		ps.DefiniteNos++
	} else {
		ps.MaybeYes++
		if !actualResult {
			ps.ConfirmedFPs++
		}
	}
	if ps.absent > 0 {
		ps.ObservedFPRate = float64(ps.ConfirmedFPs) / float64(ps.absent)
	}
}

// Effectiveness returns the percentage of queries answered "definitely not".
func (ps *ProbeStats) Effectiveness() float64 {
	if ps.Queries == 0 {
		return 0
	}
	return float64(ps.DefiniteNos) / float64(ps.Queries) * 100
}

// Probe queries q with every candidate and compares against known, the
// ground truth for membership.
func Probe(q Querier, candidates []string, known func(string) bool) ProbeStats {
	var ps ProbeStats
	for _, c := range candidates {
		ps.Update(q.Contains(c), known(c))
	}
	return ps
}
