package poker

import (
	"fmt"

	"pokerroom-server/pkg/deck"
)

// Compare returns 1 if a beats b, -1 if b beats a, and 0 on a tie
// Results of the same hand must carry the same number of cards and kickers.
func Compare(a, b *Result) int {
	if a.Hand != b.Hand {
		if a.Hand > b.Hand {
			return 1
		}

		return -1
	}

	if len(a.Cards) != len(b.Cards) || len(a.Kickers) != len(b.Kickers) {
		panic(fmt.Sprintf("cannot compare %s results of different shapes", a.Hand))
	}

	if cmp := compareRanks(a.Cards, b.Cards); cmp != 0 {
		return cmp
	}

	return compareRanks(a.Kickers, b.Kickers)
}

// compareRanks compares two equal-length card lists position by position
func compareRanks(a, b []*deck.Card) int {
	for i := range a {
		if a[i].Rank > b[i].Rank {
			return 1
		} else if a[i].Rank < b[i].Rank {
			return -1
		}
	}

	return 0
}
