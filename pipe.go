// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mart

import (
	"fmt"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/lfq"
)

// pipeShared holds the transport shared by both ends of a pipe.
// The queue is a single-producer single-consumer bounded ring; the flags
// signal that one side is gone for good.
type pipeShared[G any] struct {
	q         lfq.SPSC[G]
	sealed    atomix.Uint32
	withdrawn atomix.Uint32
}

// PipeProducer is the producing end of a pipe.
//
// Produce is non-blocking: a full ring yields a FullStock insufficiency,
// and a withdrawn consumer yields a WithdrawnDemand defect, always
// returning the good untouched. At most one goroutine may produce on a
// given pipe.
type PipeProducer[G any] struct {
	shared *pipeShared[G]
	name   string
	serial Serial
}

// PipeConsumer is the consuming end of a pipe.
//
// Consume is non-blocking: an empty ring yields an EmptyStock
// insufficiency, or a WithdrawnSupply defect once the producer has sealed
// and the residual goods are drained. At most one goroutine may consume on
// a given pipe.
type PipeConsumer[G any] struct {
	shared *pipeShared[G]
	name   string
	serial Serial
}

// pipePair holds both ends and the shared transport in a single allocation.
// The SPSC queue is embedded as a value; only its ring buffer is a separate
// heap object.
type pipePair[G any] struct {
	producer PipeProducer[G]
	consumer PipeConsumer[G]
	shared   pipeShared[G]
}

// NewPipe creates a connected producer/consumer pair over a bounded
// lock-free SPSC queue of the given capacity.
//
// An empty name is replaced by "pipe-N" with N the next agent serial. Both
// ends share the name and serial.
func NewPipe[G any](name string, capacity int) (*PipeProducer[G], *PipeConsumer[G]) {
	s := nextSerial()
	if name == "" {
		name = fmt.Sprintf("pipe-%d", s)
	}

	pair := &pipePair[G]{}
	pair.shared.q.Init(capacity)
	pair.producer = PipeProducer[G]{shared: &pair.shared, name: name, serial: s}
	pair.consumer = PipeConsumer[G]{shared: &pair.shared, name: name, serial: s}
	return &pair.producer, &pair.consumer
}

func (p *PipeProducer[G]) String() string { return p.name }

// Serial returns the serial assigned to this pipe.
func (p *PipeProducer[G]) Serial() Serial { return p.serial }

// Produce attempts to enqueue good without blocking.
func (p *PipeProducer[G]) Produce(good G) *Recall[G, FullStock, WithdrawnDemand] {
	if p.shared.withdrawn.Load() != 0 {
		return NewRecall(p, Defect[FullStock, WithdrawnDemand](WithdrawnDemand{}), good)
	}
	if err := p.shared.q.Enqueue(&good); err != nil {
		// lfq reports a full ring as iox.ErrWouldBlock; a bounded SPSC
		// queue has no other failure mode.
		return NewRecall(p, Insufficiency[FullStock, WithdrawnDemand](FullStock{}), good)
	}
	return nil
}

// Seal marks the producing side as withdrawn. The consumer drains any
// residual goods, then observes WithdrawnSupply.
func (p *PipeProducer[G]) Seal() {
	p.shared.sealed.Store(1)
}

func (c *PipeConsumer[G]) String() string { return c.name }

// Serial returns the serial assigned to this pipe.
func (c *PipeConsumer[G]) Serial() Serial { return c.serial }

// Consume attempts to dequeue a good without blocking.
func (c *PipeConsumer[G]) Consume() (G, *Failure[EmptyStock, WithdrawnSupply]) {
	good, err := c.shared.q.Dequeue()
	if err == nil {
		return good, nil
	}
	var zero G
	if c.shared.sealed.Load() != 0 {
		return zero, NewFailure(c, Defect[EmptyStock, WithdrawnSupply](WithdrawnSupply{}))
	}
	return zero, NewFailure(c, Insufficiency[EmptyStock, WithdrawnSupply](EmptyStock{}))
}

// Withdraw marks the consuming side as withdrawn. The producer observes
// WithdrawnDemand on its next Produce.
func (c *PipeConsumer[G]) Withdraw() {
	c.shared.withdrawn.Store(1)
}
