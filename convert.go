// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mart

import (
	"fmt"

	"code.hybscloud.com/kont"
)

// Unspecifiable is the defect raised when a generic good cannot be
// converted into the specific good of the wrapped producer.
type Unspecifiable struct{}

func (Unspecifiable) String() string { return "good could not be specified" }

// SpecDefect is the defect thrown when a Specifier fails to specify and
// produce a good: either the good itself was unspecifiable, or the wrapped
// producer rejected the specified good with a defect of type D.
type SpecDefect[D any] struct {
	e kont.Either[Unspecifiable, D]
}

// UnspecifiableDefect creates the SpecDefect for a good that could not be
// specified.
func UnspecifiableDefect[D any]() SpecDefect[D] {
	return SpecDefect[D]{e: kont.Left[Unspecifiable, D](Unspecifiable{})}
}

// ImproducibleDefect creates the SpecDefect for a specified good the wrapped
// producer rejected with d.
func ImproducibleDefect[D any](d D) SpecDefect[D] {
	return SpecDefect[D]{e: kont.Right[Unspecifiable, D](d)}
}

// IsUnspecifiable reports whether the good itself could not be specified.
func (s SpecDefect[D]) IsUnspecifiable() bool {
	return s.e.IsLeft()
}

// Improducible returns the wrapped producer's defect, if that is what
// failed.
func (s SpecDefect[D]) Improducible() (D, bool) {
	return s.e.GetRight()
}

func (s SpecDefect[D]) String() string {
	if d, ok := s.e.GetRight(); ok {
		return fmt.Sprintf("%v", d)
	}
	return Unspecifiable{}.String()
}

// Specifier presents a producer of a specific good P as a producer of a
// generic good G in the flaw domain (I, SpecDefect[D]).
//
// specify converts G to P and may reject; generalize is its infallible
// reverse, used to return a specified good inside a widened Recall. The two
// widening funcs convert the wrapped producer's fault slots independently.
type Specifier[G, P, I, D, PI, PD any] struct {
	producer      Producer[P, PI, PD]
	specify       func(G) (P, bool)
	generalize    func(P) G
	insufficiency func(PI) I
	defect        func(PD) D
}

// NewSpecifier creates a Specifier for producer.
func NewSpecifier[G, P, I, D, PI, PD any](
	producer Producer[P, PI, PD],
	specify func(G) (P, bool),
	generalize func(P) G,
	insufficiency func(PI) I,
	defect func(PD) D,
) *Specifier[G, P, I, D, PI, PD] {
	return &Specifier[G, P, I, D, PI, PD]{
		producer:      producer,
		specify:       specify,
		generalize:    generalize,
		insufficiency: insufficiency,
		defect:        defect,
	}
}

func (s *Specifier[G, P, I, D, PI, PD]) String() string {
	return "Specifier for " + s.producer.String()
}

// Produce specifies good and delegates to the wrapped producer.
//
// The caller's good is never silently dropped: if specification fails the
// original good is returned untouched in an Unspecifiable Recall; if the
// wrapped producer rejects the specified good, the Recall is widened and
// the good generalized back to G.
func (s *Specifier[G, P, I, D, PI, PD]) Produce(good G) *Recall[G, I, SpecDefect[D]] {
	specific, ok := s.specify(good)
	if !ok {
		return NewRecall(s, Defect[I, SpecDefect[D]](UnspecifiableDefect[D]()), good)
	}
	if recall := s.producer.Produce(specific); recall != nil {
		return BlameRecall(recall, s.generalize, s.insufficiency, func(pd PD) SpecDefect[D] {
			return ImproducibleDefect(s.defect(pd))
		})
	}
	return nil
}

// Adapter presents a consumer of a specific good C as a consumer of a
// generic good G in the flaw domain (I, D).
//
// adapt infallibly converts C to G; the two widening funcs convert the
// wrapped consumer's fault slots independently.
type Adapter[G, C, I, D, CI, CD any] struct {
	consumer      Consumer[C, CI, CD]
	adapt         func(C) G
	insufficiency func(CI) I
	defect        func(CD) D
}

// NewAdapter creates an Adapter for consumer.
func NewAdapter[G, C, I, D, CI, CD any](
	consumer Consumer[C, CI, CD],
	adapt func(C) G,
	insufficiency func(CI) I,
	defect func(CD) D,
) *Adapter[G, C, I, D, CI, CD] {
	return &Adapter[G, C, I, D, CI, CD]{
		consumer:      consumer,
		adapt:         adapt,
		insufficiency: insufficiency,
		defect:        defect,
	}
}

func (a *Adapter[G, C, I, D, CI, CD]) String() string {
	return "Adapter for " + a.consumer.String()
}

// Consume delegates to the wrapped consumer, adapting its good and widening
// its failure.
func (a *Adapter[G, C, I, D, CI, CD]) Consume() (G, *Failure[I, D]) {
	good, failure := a.consumer.Consume()
	if failure != nil {
		var zero G
		return zero, BlameFailure(failure, a.insufficiency, a.defect)
	}
	return a.adapt(good), nil
}
