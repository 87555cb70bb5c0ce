package rng

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCrypto_Intn(t *testing.T) {
	a := assert.New(t)

	c := Crypto{}
	found := make(map[int]bool)
	// it's possible this could fail, but not likely
	for i := 0; i < 1000; i++ {
		found[c.Intn(5)] = true
	}

	a.True(found[0])
	a.True(found[1])
	a.True(found[2])
	a.True(found[3])
	a.True(found[4])
	a.False(found[5])
}

func TestSeeded_Intn(t *testing.T) {
	s1 := NewSeeded(42)
	s2 := NewSeeded(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, s1.Intn(52), s2.Intn(52))
	}
}

func TestDefault(t *testing.T) {
	assert.IsType(t, Crypto{}, Default(0))
	assert.IsType(t, &Seeded{}, Default(7))
}
