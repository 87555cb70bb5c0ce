package poker

import "pokerroom-server/pkg/deck"

// findStraight returns the highest five-card run in cards, which must be sorted high to low
// A wheel (5-4-3-2-A) is returned with the ace last.
func findStraight(cards []*deck.Card) (deck.Hand, bool) {
	distinct := make([]*deck.Card, 0, len(cards))
	for _, card := range cards {
		if len(distinct) == 0 || distinct[len(distinct)-1].Rank != card.Rank {
			distinct = append(distinct, card)
		}
	}

	for i := 0; i+handSize <= len(distinct); i++ {
		if distinct[i].Rank-distinct[i+handSize-1].Rank == handSize-1 {
			return deck.Hand(distinct[i : i+handSize]).Clone(), true
		}
	}

	// the ace plays low
	if len(distinct) >= handSize && distinct[0].Rank == deck.Ace {
		ace := distinct[0]
		tail := distinct[len(distinct)-(handSize-1):]
		if tail[0].Rank-ace.AceLowRank() == handSize-1 && tail[len(tail)-1].Rank-ace.AceLowRank() == 1 {
			straight := deck.Hand(tail).Clone()
			straight.AddCard(ace)
			return straight, true
		}
	}

	return nil, false
}
