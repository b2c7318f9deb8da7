package tetris

import "math/rand/v2"

// Randomizer picks the kind of the next piece.
type Randomizer interface {
	Next() Kind
}

type uniform struct {
	rng *rand.Rand
}

// NewUniform returns a Randomizer choosing every kind with equal
// probability. The same seed always yields the same sequence.
func NewUniform(seed uint64) Randomizer {
	return &uniform{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (u *uniform) Next() Kind {
	return Kinds[u.rng.IntN(len(Kinds))]
}

// Bag deals every kind once in shuffled order before reshuffling, so no
// kind is ever more than twelve pieces away.
type Bag struct {
	rng  *rand.Rand
	next []Kind
}

// NewBag creates a seeded Bag.
func NewBag(seed uint64) *Bag {
	return &Bag{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (b *Bag) Next() Kind {
	if len(b.next) == 0 {
		b.next = append(b.next[:0], Kinds[:]...)
		b.rng.Shuffle(len(b.next), func(i, j int) {
			b.next[i], b.next[j] = b.next[j], b.next[i]
		})
	}
	k := b.next[0]
	b.next = b.next[1:]
	return k
}
