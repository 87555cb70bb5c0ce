package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	token, err := Generate(8)
	assert.NoError(t, err)
	assert.Equal(t, 8, len(token))

	token2, err := Generate(8)
	assert.NoError(t, err)
	assert.NotEqual(t, token, token2)

	long, err := Generate(48)
	assert.NoError(t, err)
	assert.Regexp(t, `^[A-Za-z0-9_-]{48}$`, long)
}
