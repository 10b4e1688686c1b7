// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mart

import (
	"code.hybscloud.com/iox"
)

// ProduceFunc adapts a non-blocking store function into a Producer.
//
// An error for which iox.IsWouldBlock holds is classified as a FullStock
// insufficiency; any other error is a defect, carried as the error itself.
// The rejected good is returned in either case.
type ProduceFunc[G any] struct {
	fn   func(G) error
	name string
}

// NewProduceFunc creates a ProduceFunc named name around fn.
func NewProduceFunc[G any](name string, fn func(G) error) ProduceFunc[G] {
	return ProduceFunc[G]{fn: fn, name: name}
}

func (p ProduceFunc[G]) String() string { return p.name }

// Produce invokes the store function once, classifying its error at the
// would-block boundary.
func (p ProduceFunc[G]) Produce(good G) *Recall[G, FullStock, error] {
	if err := p.fn(good); err != nil {
		if iox.IsWouldBlock(err) {
			return NewRecall(p, Insufficiency[FullStock, error](FullStock{}), good)
		}
		return NewRecall(p, Defect[FullStock, error](err), good)
	}
	return nil
}

// ConsumeFunc adapts a non-blocking fetch function into a Consumer.
//
// An error for which iox.IsWouldBlock holds is classified as an EmptyStock
// insufficiency; any other error is a defect, carried as the error itself.
type ConsumeFunc[G any] struct {
	fn   func() (G, error)
	name string
}

// NewConsumeFunc creates a ConsumeFunc named name around fn.
func NewConsumeFunc[G any](name string, fn func() (G, error)) ConsumeFunc[G] {
	return ConsumeFunc[G]{fn: fn, name: name}
}

func (c ConsumeFunc[G]) String() string { return c.name }

// Consume invokes the fetch function once, classifying its error at the
// would-block boundary.
func (c ConsumeFunc[G]) Consume() (G, *Failure[EmptyStock, error]) {
	good, err := c.fn()
	if err != nil {
		var zero G
		if iox.IsWouldBlock(err) {
			return zero, NewFailure(c, Insufficiency[EmptyStock, error](EmptyStock{}))
		}
		return zero, NewFailure(c, Defect[EmptyStock, error](err))
	}
	return good, nil
}
