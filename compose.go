// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mart

import (
	"fmt"

	"code.hybscloud.com/kont"
)

type pollState uint8

const (
	pollPending pollState = iota
	pollComposed
	pollMisstepped
)

// Poll is the outcome of one composition attempt over a buffered prefix of
// elements: a complete composite, not enough elements yet, or an invalid
// prefix.
type Poll[G, M any] struct {
	composite G
	misstep   M
	state     pollState
}

// Composed creates the Poll for a complete composite recognized in the
// buffered prefix.
func Composed[G, M any](composite G) Poll[G, M] {
	return Poll[G, M]{composite: composite, state: pollComposed}
}

// Pending creates the Poll for a buffer that does not yet hold a complete
// composite.
func Pending[G, M any]() Poll[G, M] {
	return Poll[G, M]{state: pollPending}
}

// Misstepped creates the Poll for a buffered prefix that can never form a
// valid composite.
func Misstepped[G, M any](misstep M) Poll[G, M] {
	return Poll[G, M]{misstep: misstep, state: pollMisstepped}
}

// Composite returns the recognized composite, if there is one.
func (p Poll[G, M]) Composite() (G, bool) {
	return p.composite, p.state == pollComposed
}

// Misstep returns the diagnosed misstep, if there is one.
func (p Poll[G, M]) Misstep() (M, bool) {
	return p.misstep, p.state == pollMisstepped
}

// IsPending reports whether the buffer does not yet hold a complete
// composite.
func (p Poll[G, M]) IsPending() bool {
	return p.state == pollPending
}

// Composite attempts to recognize a complete good G in the prefix of
// elements.
//
// Contract: on Composed it must drain exactly the recognized prefix from
// elements; on Misstepped it must drain exactly the invalid prefix it
// diagnosed, so the same invalid elements are never reconsidered; on
// Pending it must leave elements unchanged.
type Composite[E, G, M any] func(elements *[]E) Poll[G, M]

// ComposeDefect is the defect thrown by a Composer: either the inner
// consumer raised a defect of type D, or composition diagnosed a misstep of
// type M.
type ComposeDefect[D, M any] struct {
	e kont.Either[D, M]
}

// ConsumptionDefect creates the ComposeDefect wrapping the inner consumer's
// defect d.
func ConsumptionDefect[D, M any](d D) ComposeDefect[D, M] {
	return ComposeDefect[D, M]{e: kont.Left[D, M](d)}
}

// CompositionMisstep creates the ComposeDefect wrapping the misstep m.
func CompositionMisstep[D, M any](m M) ComposeDefect[D, M] {
	return ComposeDefect[D, M]{e: kont.Right[D, M](m)}
}

// Consumption returns the inner consumer's defect, if that is what failed.
func (c ComposeDefect[D, M]) Consumption() (D, bool) {
	return c.e.GetLeft()
}

// Misstep returns the composition misstep, if that is what failed.
func (c ComposeDefect[D, M]) Misstep() (M, bool) {
	return c.e.GetRight()
}

func (c ComposeDefect[D, M]) String() string {
	if m, ok := c.e.GetRight(); ok {
		return fmt.Sprintf("%v", m)
	}
	d, _ := c.e.GetLeft()
	return fmt.Sprintf("%v", d)
}

// Composer is a Consumer that assembles goods of type G from a stream of
// elements consumed from an inner consumer.
//
// Elements accumulate in a buffer owned exclusively by the Composer and
// persisting across calls, so a source that reports transient emptiness
// mid-composite loses nothing: the next call resumes from the retained
// prefix. The buffer makes a Composer not safely reentrant; at most one
// caller may be mid-Consume on an instance at a time.
type Composer[E, G, M, I, D any] struct {
	elements []E
	consumer Consumer[E, I, D]
	compose  Composite[E, G, M]
}

// NewComposer creates a Composer assembling composites from the elements of
// consumer.
func NewComposer[E, G, M, I, D any](consumer Consumer[E, I, D], compose Composite[E, G, M]) *Composer[E, G, M, I, D] {
	return &Composer[E, G, M, I, D]{
		consumer: consumer,
		compose:  compose,
	}
}

func (c *Composer[E, G, M, I, D]) String() string {
	return "Composer of " + c.consumer.String()
}

// Consume pulls elements from the inner consumer until it fails, then
// attempts one composition over the buffered prefix.
//
// A misstep always takes priority over the inner consumer's terminal
// failure. A complete composite is returned as success, discarding the
// terminal failure; a permanent one recurs from the source on the next
// call. Otherwise the terminal failure is widened into the Composer's flaw
// domain with its classification preserved, so an intermittently empty
// source yields an insufficiency the caller may retry while a dead source
// yields a defect.
func (c *Composer[E, G, M, I, D]) Consume() (G, *Failure[I, ComposeDefect[D, M]]) {
	var terminal *Failure[I, D]
	for {
		element, failure := c.consumer.Consume()
		if failure != nil {
			terminal = failure
			break
		}
		c.elements = append(c.elements, element)
	}

	var zero G
	poll := c.compose(&c.elements)
	if misstep, ok := poll.Misstep(); ok {
		return zero, NewFailure(c, Defect[I, ComposeDefect[D, M]](CompositionMisstep[D, M](misstep)))
	}
	if composite, ok := poll.Composite(); ok {
		return composite, nil
	}
	return zero, BlameFailure(terminal, Same[I], ConsumptionDefect[D, M])
}
