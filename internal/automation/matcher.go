package automation

import (
	"journal-ripples/pkg/lexicon"
)

// ClusterMatcher picks a cluster for a ripple from lexicon keyword hints.
type ClusterMatcher struct {
	lex *lexicon.Compiled
}

func NewClusterMatcher(lex *lexicon.Compiled) *ClusterMatcher {
	return &ClusterMatcher{lex: lex}
}

// Match tries each text in turn and returns the cluster with the most hits in
// the first text that has any. Ties go to the cluster that sorts first.
func (m *ClusterMatcher) Match(texts ...string) (ClusterMatch, bool) {
	for _, text := range texts {
		if text == "" {
			continue
		}
		hits := m.lex.ClusterHits(text)
		if len(hits) == 0 {
			continue
		}

		var best ClusterMatch
		for _, cluster := range m.lex.Clusters() {
			if n := hits[cluster]; n > best.Hits {
				best = ClusterMatch{ClusterID: cluster, Hits: n}
			}
		}
		return best, true
	}
	return ClusterMatch{}, false
}
