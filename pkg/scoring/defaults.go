package scoring

import (
	"fmt"
	"strings"
)

// DefaultSystems returns every available scoring system, the default first.
func DefaultSystems() []System {
	return []System{
		&MatchingScorer{},
		&NaiveScorer{},
	}
}

// ByName returns the scoring system with the given name.
func ByName(name string) (System, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range DefaultSystems() {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("unknown scoring system %q (want naive or matching)", name)
}
