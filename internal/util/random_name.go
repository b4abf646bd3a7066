package util

import (
	"fmt"

	"holdem-server/internal/rng"
)

var adjectives = []string{
	"Fast", "Slow", "Quick", "Sly", "Stoic", "Lucky", "Grumpy", "Gracious", "Patient", "Happy", "Nervous",
	"Red", "Blue", "Green", "Silent", "Purple", "Fuzzy", "Smiling", "Tall", "Grand", "Bluffing", "Prime",
}

var animals = []string{
	"Dog", "Cat", "Mouse", "Alligator", "Shark", "Hippo", "Giraffe", "Lion", "Tiger",
	"Bear", "Otter", "Dolphin", "Porcupine", "Hedgehog", "Snake", "Owl", "Wolf", "Fox", "Panda",
}

// RandomName returns a random name by combining an adjective with an animal
func RandomName(g rng.Generator) string {
	adjective := adjectives[g.Intn(len(adjectives))]
	animal := animals[g.Intn(len(animals))]

	return fmt.Sprintf("%s %s", adjective, animal)
}
