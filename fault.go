// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mart

import (
	"fmt"

	"code.hybscloud.com/kont"
)

// Fault classifies a failed exchange as either an insufficiency or a defect.
// An insufficiency of type I is transient: the exchange may succeed on retry
// without any other change. A defect of type D is permanent for the agent
// instance that raised it.
//
// The classification is carried by kont.Either: Left is insufficiency,
// Right is defect. Widening a Fault into a broader flaw domain converts the
// carried value but can never move it between sides.
type Fault[I, D any] struct {
	e kont.Either[I, D]
}

// Insufficiency creates a transient Fault carrying i.
func Insufficiency[I, D any](i I) Fault[I, D] {
	return Fault[I, D]{e: kont.Left[I, D](i)}
}

// Defect creates a permanent Fault carrying d.
func Defect[I, D any](d D) Fault[I, D] {
	return Fault[I, D]{e: kont.Right[I, D](d)}
}

// IsDefect reports whether f is classified as a defect.
func (f Fault[I, D]) IsDefect() bool {
	return f.e.IsRight()
}

// Insufficiency returns the carried insufficiency, if f is one.
func (f Fault[I, D]) Insufficiency() (I, bool) {
	return f.e.GetLeft()
}

// Defect returns the carried defect, if f is one.
func (f Fault[I, D]) Defect() (D, bool) {
	return f.e.GetRight()
}

func (f Fault[I, D]) String() string {
	if d, ok := f.e.GetRight(); ok {
		return fmt.Sprintf("defect: %v", d)
	}
	i, _ := f.e.GetLeft()
	return fmt.Sprintf("insufficiency: %v", i)
}

// Failure is the fault thrown by a Consumer. It carries no good.
type Failure[I, D any] struct {
	// Agent is the display identity of the agent that raised the fault.
	Agent string
	Fault Fault[I, D]
}

// NewFailure creates a Failure raised by agent.
func NewFailure[I, D any](agent fmt.Stringer, fault Fault[I, D]) *Failure[I, D] {
	return &Failure[I, D]{Agent: agent.String(), Fault: fault}
}

// IsDefect reports whether the carried fault is a defect.
func (f *Failure[I, D]) IsDefect() bool {
	return f.Fault.IsDefect()
}

func (f *Failure[I, D]) Error() string {
	return fmt.Sprintf("%s: %s", f.Agent, f.Fault)
}

// Recall is the fault thrown by a Producer. It carries the rejected good,
// so a failed production never destroys the good: the caller recovers it
// from Good.
type Recall[G, I, D any] struct {
	// Agent is the display identity of the agent that raised the fault.
	Agent string
	Fault Fault[I, D]
	// Good is the rejected good.
	Good G
}

// NewRecall creates a Recall raised by agent, returning good to the caller.
func NewRecall[G, I, D any](agent fmt.Stringer, fault Fault[I, D], good G) *Recall[G, I, D] {
	return &Recall[G, I, D]{Agent: agent.String(), Fault: fault, Good: good}
}

// IsDefect reports whether the carried fault is a defect.
func (r *Recall[G, I, D]) IsDefect() bool {
	return r.Fault.IsDefect()
}

func (r *Recall[G, I, D]) Error() string {
	return fmt.Sprintf("%s: %s", r.Agent, r.Fault)
}

// BlameFault widens fault into the flaw domain (WI, WD). Each slot converts
// independently; the insufficiency/defect classification is preserved.
func BlameFault[I, D, WI, WD any](fault Fault[I, D], insufficiency func(I) WI, defect func(D) WD) Fault[WI, WD] {
	if d, ok := fault.Defect(); ok {
		return Defect[WI, WD](defect(d))
	}
	i, _ := fault.Insufficiency()
	return Insufficiency[WI, WD](insufficiency(i))
}

// BlameFailure widens failure into the flaw domain (WI, WD), keeping the
// identity of the agent that raised it.
func BlameFailure[I, D, WI, WD any](failure *Failure[I, D], insufficiency func(I) WI, defect func(D) WD) *Failure[WI, WD] {
	return &Failure[WI, WD]{
		Agent: failure.Agent,
		Fault: BlameFault(failure.Fault, insufficiency, defect),
	}
}

// BlameRecall widens recall into the flaw domain (WI, WD) and converts the
// rejected good with generalize, keeping the identity of the agent that
// raised it.
func BlameRecall[G, WG, I, D, WI, WD any](recall *Recall[G, I, D], generalize func(G) WG, insufficiency func(I) WI, defect func(D) WD) *Recall[WG, WI, WD] {
	return &Recall[WG, WI, WD]{
		Agent: recall.Agent,
		Fault: BlameFault(recall.Fault, insufficiency, defect),
		Good:  generalize(recall.Good),
	}
}

// Same is the identity widening for a flaw slot whose type does not change.
func Same[T any](v T) T {
	return v
}

// EmptyStock is the insufficiency raised when an agent has no good to hand
// out.
type EmptyStock struct{}

func (EmptyStock) String() string { return "stock is empty" }

// AsEmptyStock widens any insufficiency into EmptyStock.
func AsEmptyStock[I any](I) EmptyStock {
	return EmptyStock{}
}

// FullStock is the insufficiency raised when an agent has no room for
// another good.
type FullStock struct{}

func (FullStock) String() string { return "stock is full" }

// Flawless marks a fault slot that can never be filled. No Flawless value is
// ever constructed.
type Flawless struct{}

func (Flawless) String() string { return "flawless" }

// Never widens out of a Flawless slot.
func Never[T any](Flawless) T {
	panic("mart: fault raised from a flawless domain")
}

// WithdrawnSupply is the defect raised when the producing side of an
// exchange is gone for good.
type WithdrawnSupply struct{}

func (WithdrawnSupply) String() string { return "supply has been withdrawn" }

// WithdrawnDemand is the defect raised when the consuming side of an
// exchange is gone for good.
type WithdrawnDemand struct{}

func (WithdrawnDemand) String() string { return "demand has been withdrawn" }
