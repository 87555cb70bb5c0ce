package poker

import "pokerroom-server/pkg/deck"

const handSize = 5

// Result is the best five-card hand that can be made from a set of cards
type Result struct {
	Hand Hand `json:"hand"`

	// Cards define the hand and are compared in order, i.e., the trips then the pair of a full house
	Cards deck.Hand `json:"cards"`

	// Kickers break ties between hands with equal Cards
	Kickers deck.Hand `json:"kickers,omitempty"`
}

// String returns the name of the hand
func (r *Result) String() string {
	if r.Hand == StraightFlush && len(r.Cards) > 0 && r.Cards[0].Rank == deck.Ace {
		return "Royal flush"
	}

	return r.Hand.String()
}

// Evaluate returns the best hand that can be made from cards
// False is returned if there are fewer than five cards.
func Evaluate(cards []*deck.Card) (*Result, bool) {
	if len(cards) < handSize {
		return nil, false
	}

	a := newAnalysis(cards)
	checks := []func() (*Result, bool){
		a.straightFlush,
		a.fourOfAKind,
		a.fullHouse,
		a.flush,
		a.straight,
		a.threeOfAKind,
		a.twoPair,
		a.pair,
	}

	for _, check := range checks {
		if result, ok := check(); ok {
			return result, true
		}
	}

	return a.highCard(), true
}

type analysis struct {
	cards  []*deck.Card
	ranks  []int
	byRank map[int][]*deck.Card
	bySuit map[deck.Suit][]*deck.Card
}

func newAnalysis(cards []*deck.Card) *analysis {
	sorted := sortHighToLow(cards)
	a := &analysis{
		cards:  sorted,
		ranks:  make([]int, 0, len(sorted)),
		byRank: make(map[int][]*deck.Card),
		bySuit: make(map[deck.Suit][]*deck.Card),
	}

	for _, card := range sorted {
		if _, ok := a.byRank[card.Rank]; !ok {
			a.ranks = append(a.ranks, card.Rank)
		}

		a.byRank[card.Rank] = append(a.byRank[card.Rank], card)
		a.bySuit[card.Suit] = append(a.bySuit[card.Suit], card)
	}

	return a
}

// ranksWith returns the ranks holding at least n cards, highest first
func (a *analysis) ranksWith(n int) []int {
	ranks := make([]int, 0, len(a.ranks))
	for _, rank := range a.ranks {
		if len(a.byRank[rank]) >= n {
			ranks = append(ranks, rank)
		}
	}

	return ranks
}

// highest returns up to n of the highest cards whose rank is not excluded
func (a *analysis) highest(n int, exclude ...int) deck.Hand {
	hand := make(deck.Hand, 0, n)
	for _, card := range a.cards {
		if len(hand) == n {
			break
		}

		if containsRank(exclude, card.Rank) {
			continue
		}

		hand.AddCard(card)
	}

	return hand
}

func (a *analysis) straightFlush() (*Result, bool) {
	var best deck.Hand
	for _, suit := range deck.Suits {
		cards := a.bySuit[suit]
		if len(cards) < handSize {
			continue
		}

		if straight, ok := findStraight(cards); ok {
			if best == nil || compareRanks(straight, best) > 0 {
				best = straight
			}
		}
	}

	if best == nil {
		return nil, false
	}

	return &Result{Hand: StraightFlush, Cards: best}, true
}

func (a *analysis) fourOfAKind() (*Result, bool) {
	quads := a.ranksWith(4)
	if len(quads) == 0 {
		return nil, false
	}

	return &Result{
		Hand:    FourOfAKind,
		Cards:   deck.Hand{a.byRank[quads[0]][0]},
		Kickers: a.highest(1, quads[0]),
	}, true
}

func (a *analysis) fullHouse() (*Result, bool) {
	trips := a.ranksWith(3)
	if len(trips) == 0 {
		return nil, false
	}

	// a second set of trips can fill the pair
	for _, pair := range a.ranksWith(2) {
		if pair == trips[0] {
			continue
		}

		return &Result{
			Hand:  FullHouse,
			Cards: deck.Hand{a.byRank[trips[0]][0], a.byRank[pair][0]},
		}, true
	}

	return nil, false
}

func (a *analysis) flush() (*Result, bool) {
	var best deck.Hand
	for _, suit := range deck.Suits {
		cards := a.bySuit[suit]
		if len(cards) < handSize {
			continue
		}

		top := deck.Hand(cards[:handSize]).Clone()
		if best == nil || compareRanks(top, best) > 0 {
			best = top
		}
	}

	if best == nil {
		return nil, false
	}

	return &Result{Hand: Flush, Cards: best}, true
}

func (a *analysis) straight() (*Result, bool) {
	straight, ok := findStraight(a.cards)
	if !ok {
		return nil, false
	}

	return &Result{Hand: Straight, Cards: straight}, true
}

func (a *analysis) threeOfAKind() (*Result, bool) {
	trips := a.ranksWith(3)
	if len(trips) == 0 {
		return nil, false
	}

	return &Result{
		Hand:    ThreeOfAKind,
		Cards:   deck.Hand{a.byRank[trips[0]][0]},
		Kickers: a.highest(2, trips[0]),
	}, true
}

func (a *analysis) twoPair() (*Result, bool) {
	pairs := a.ranksWith(2)
	if len(pairs) < 2 {
		return nil, false
	}

	high, low := pairs[0], pairs[1]
	return &Result{
		Hand:    TwoPair,
		Cards:   deck.Hand{a.byRank[high][0], a.byRank[low][0]},
		Kickers: a.highest(1, high, low),
	}, true
}

func (a *analysis) pair() (*Result, bool) {
	pairs := a.ranksWith(2)
	if len(pairs) == 0 {
		return nil, false
	}

	return &Result{
		Hand:    OnePair,
		Cards:   deck.Hand{a.byRank[pairs[0]][0]},
		Kickers: a.highest(3, pairs[0]),
	}, true
}

func (a *analysis) highCard() *Result {
	return &Result{
		Hand:  HighCard,
		Cards: a.highest(handSize),
	}
}

func containsRank(ranks []int, rank int) bool {
	for _, r := range ranks {
		if r == rank {
			return true
		}
	}

	return false
}
