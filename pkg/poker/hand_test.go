package poker

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_String(t *testing.T) {
	assert.Equal(t, "Pair", OnePair.String())
	assert.Equal(t, "Straight flush", StraightFlush.String())
	assert.PanicsWithValue(t, "unknown hand: -1", func() {
		_ = Hand(-1).String()
	})
}

func TestHand_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(FullHouse)
	assert.NoError(t, err)
	assert.Equal(t, `"Full house"`, string(b))
}
