package util

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

var adjectives = []string{
	"Fast", "Slow", "Quick", "Lucky", "Bluffing", "Folding", "Gracious", "Happy", "Funny", "Steady",
	"Red", "Blue", "Green", "Orange", "Purple", "Fuzzy", "Smiling", "Tall", "Grand", "Ultimate", "Prime",
	"Alpha", "Growling", "Sly", "Calm", "Flying", "Jumping", "Running", "Charging", "Bold",
}

var animals = []string{
	"Dog", "Cat", "Mouse", "Alligator", "Shark", "Hippo", "Giraffe", "Lion", "Tiger",
	"Bear", "Otter", "Dolphin", "Porcupine", "Hedgehog", "Lizard", "Chipmunk",
	"Eagle", "Okapi", "Wolf", "Fox", "Armadillo", "Rhino", "Panda", "Owl",
}

var random = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec
var randomMu sync.Mutex

// GetRandomName returns a random name by combining an adjective with an animal
func GetRandomName() string {
	randomMu.Lock()
	defer randomMu.Unlock()

	adjectivesIndex := random.Intn(len(adjectives))
	animalsIndex := random.Intn(len(animals))

	return fmt.Sprintf("%s%s", adjectives[adjectivesIndex], animals[animalsIndex])
}
