package poker

import (
	"sort"

	"pokerroom-server/pkg/deck"
)

type sortByRank []*deck.Card

func (s sortByRank) Len() int {
	return len(s)
}

func (s sortByRank) Less(i, j int) bool {
	return s[i].Rank < s[j].Rank
}

func (s sortByRank) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// sortHighToLow returns a copy of cards ordered by rank, highest first
// Cards of equal rank keep their input order
func sortHighToLow(cards []*deck.Card) []*deck.Card {
	sorted := make([]*deck.Card, len(cards))
	copy(sorted, cards)
	sort.Stable(sort.Reverse(sortByRank(sorted)))

	return sorted
}
