package mino

import (
	"errors"
	"math/rand"
)

// Randomizer chooses the kind of each spawned piece.
type Randomizer interface {
	// Take returns the next kind and advances.
	Take() Kind
	// Next returns the kind Take will return, without advancing.
	Next() Kind
}

var errNoKinds = errors.New("randomizer needs at least one kind")

// Uniform picks every kind independently with equal probability.
type Uniform struct {
	Original []Kind

	r    *rand.Rand
	next Kind
}

func NewUniform(seed int64, kinds []Kind) (*Uniform, error) {
	if len(kinds) == 0 {
		return nil, errNoKinds
	}

	u := &Uniform{Original: kinds, r: rand.New(rand.NewSource(seed))}
	u.next = u.pick()

	return u, nil
}

func (u *Uniform) pick() Kind {
	return u.Original[u.r.Intn(len(u.Original))]
}

func (u *Uniform) Take() Kind {
	k := u.next
	u.next = u.pick()

	return k
}

func (u *Uniform) Next() Kind {
	return u.next
}

// Bag deals every kind once, in shuffled order, before reshuffling.
type Bag struct {
	Kinds    []Kind
	Original []Kind

	r *rand.Rand
	i int
}

func NewBag(seed int64, kinds []Kind) (*Bag, error) {
	if len(kinds) == 0 {
		return nil, errNoKinds
	}

	b := &Bag{Original: kinds, r: rand.New(rand.NewSource(seed))}
	b.shuffle()

	return b, nil
}

func (b *Bag) Take() Kind {
	k := b.Kinds[b.i]
	if b.i == len(b.Kinds)-1 {
		b.shuffle()

		b.i = 0
	} else {
		b.i++
	}

	return k
}

func (b *Bag) Next() Kind {
	return b.Kinds[b.i]
}

func (b *Bag) shuffle() {
	if b.Kinds == nil {
		b.Kinds = make([]Kind, len(b.Original))
	}
	copy(b.Kinds, b.Original)

	b.r.Shuffle(len(b.Kinds), func(i, j int) { b.Kinds[i], b.Kinds[j] = b.Kinds[j], b.Kinds[i] })
}

// Sequence repeats a fixed list of kinds.
type Sequence struct {
	Kinds []Kind

	i int
}

func NewSequence(kinds ...Kind) *Sequence {
	if len(kinds) == 0 {
		kinds = Kinds
	}

	return &Sequence{Kinds: kinds}
}

func (s *Sequence) Take() Kind {
	k := s.Kinds[s.i]
	s.i = (s.i + 1) % len(s.Kinds)

	return k
}

func (s *Sequence) Next() Kind {
	return s.Kinds[s.i]
}
