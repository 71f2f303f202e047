package levels

import "fmt"

// Lifetime is the closed interval of level numbers in which an entity exists.
type Lifetime struct {
	Min int
	Max int
}

// Contains reports whether the entity is alive at level.
func (l Lifetime) Contains(level int) bool {
	return l.Min <= level && level <= l.Max
}

// String returns the "min-max" label drawn next to entities.
func (l Lifetime) String() string {
	if l.Min == l.Max {
		return fmt.Sprintf("%d", l.Min)
	}
	return fmt.Sprintf("%d-%d", l.Min, l.Max)
}
