package domain

// A named reference location. Seeded city locations serve as map
// defaults and cache warm-up targets.
type Location struct {
	Name   string
	Coords Coordinates
}
