package utils

import (
	"math/rand/v2"
	"strings"

	"go.uber.org/zap"
)

// FilterTrivials drops cards whose key is blank or reads the same as the
// translation.
func FilterTrivials(cards []Card, a *Analyzer, log *zap.Logger) []Card {
	kept := cards[:0:0]
	for _, c := range cards {
		key := a.NormalizeTerm(c.Key)
		if key == "" || key == a.NormalizeTerm(c.Value) {
			log.Debug("filtering out trivial card", zap.String("key", c.Key), zap.String("value", c.Value))
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// ShuffleCards orders the deck by priority: cards with a note first, then
// cards without one, then cards whose note starts with "-". Each group is
// shuffled on its own.
func ShuffleCards(cards []Card, rng *rand.Rand) []Card {
	var noted, plain, last []Card
	for _, c := range cards {
		switch {
		case strings.HasPrefix(c.Comment, "-"):
			last = append(last, c)
		case c.Comment != "":
			noted = append(noted, c)
		default:
			plain = append(plain, c)
		}
	}

	out := make([]Card, 0, len(cards))
	for _, group := range [][]Card{noted, plain, last} {
		rng.Shuffle(len(group), func(i, j int) {
			group[i], group[j] = group[j], group[i]
		})
		out = append(out, group...)
	}
	return out
}
