// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mart

import (
	"code.hybscloud.com/kont"
)

// MissingKey is the defect raised when a good's key has no registered
// producer.
type MissingKey struct{}

func (MissingKey) String() string { return "no producer registered for key" }

// DistribDefect is the defect thrown by a Distributor: either the good's key
// was missing, or the registered Specifier failed.
type DistribDefect[D any] struct {
	e kont.Either[MissingKey, SpecDefect[D]]
}

// MissingKeyDefect creates the DistribDefect for an unregistered key.
func MissingKeyDefect[D any]() DistribDefect[D] {
	return DistribDefect[D]{e: kont.Left[MissingKey, SpecDefect[D]](MissingKey{})}
}

// SpecificationDefect creates the DistribDefect wrapping a failed
// specification.
func SpecificationDefect[D any](s SpecDefect[D]) DistribDefect[D] {
	return DistribDefect[D]{e: kont.Right[MissingKey, SpecDefect[D]](s)}
}

// IsMissingKey reports whether the good's key had no registered producer.
func (d DistribDefect[D]) IsMissingKey() bool {
	return d.e.IsLeft()
}

// Specification returns the failed specification, if that is what failed.
func (d DistribDefect[D]) Specification() (SpecDefect[D], bool) {
	return d.e.GetRight()
}

func (d DistribDefect[D]) String() string {
	if s, ok := d.e.GetRight(); ok {
		return s.String()
	}
	return MissingKey{}.String()
}

// Distributor is a Producer that routes each good to one of many registered
// producers by the good's key.
//
// Every registered producer is normalized through a Specifier at insertion,
// so producers of arbitrary specific goods and flaw domains share the single
// map. Routing is pure lookup by key equality; there is no iteration-order
// guarantee and no removal.
//
// Insert mutates the map and must be externally synchronized against
// concurrent Produce calls.
type Distributor[K comparable, G Keyed[K], I, D any] struct {
	producers map[K]Producer[G, I, SpecDefect[D]]
	name      string
}

// NewDistributor creates a new, empty Distributor.
func NewDistributor[K comparable, G Keyed[K], I, D any](name string) *Distributor[K, G, I, D] {
	return &Distributor[K, G, I, D]{
		producers: make(map[K]Producer[G, I, SpecDefect[D]]),
		name:      name,
	}
}

func (d *Distributor[K, G, I, D]) String() string {
	return d.name
}

// Produce routes good to the producer registered for good.Key().
//
// If no producer is registered for the key, Produce fails with a MissingKey
// defect returning good untouched. Otherwise it delegates and widens any
// resulting Recall into the Distributor's flaw domain.
func (d *Distributor[K, G, I, D]) Produce(good G) *Recall[G, I, DistribDefect[D]] {
	producer, ok := d.producers[good.Key()]
	if !ok {
		return NewRecall(d, Defect[I, DistribDefect[D]](MissingKeyDefect[D]()), good)
	}
	if recall := producer.Produce(good); recall != nil {
		return BlameRecall(recall, Same[G], Same[I], SpecificationDefect[D])
	}
	return nil
}

// Insert registers producer under key, wrapping it in a Specifier built from
// the given conversion and widening funcs. It returns the producer
// previously registered for key, or nil, enabling hot-swapping a route.
//
// Insert is a package-level function because Go methods cannot introduce the
// type parameters of the inserted producer.
func Insert[K comparable, G Keyed[K], P, I, D, PI, PD any](
	d *Distributor[K, G, I, D],
	key K,
	producer Producer[P, PI, PD],
	specify func(G) (P, bool),
	generalize func(P) G,
	insufficiency func(PI) I,
	defect func(PD) D,
) Producer[G, I, SpecDefect[D]] {
	previous := d.producers[key]
	d.producers[key] = NewSpecifier(producer, specify, generalize, insufficiency, defect)
	return previous
}
