// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mart

// Collector is a Consumer that drains many registered consumers in
// registration order: a priority-ordered fallback chain where transient
// emptiness is tolerated across sources but a defect anywhere
// short-circuits immediately.
//
// Every registered consumer is normalized through an Adapter at push time,
// with its insufficiency widened into EmptyStock so the chain has a single
// transient vocabulary. There is no removal.
//
// Push mutates the scan order and must be externally synchronized against
// concurrent Consume calls.
type Collector[G, D any] struct {
	consumers []Consumer[G, EmptyStock, D]
	name      string
}

// NewCollector creates a new, empty Collector.
func NewCollector[G, D any](name string) *Collector[G, D] {
	return &Collector[G, D]{name: name}
}

func (c *Collector[G, D]) String() string {
	return "Collector for " + c.name
}

// Consume scans the registered consumers in registration order.
//
// The first consumer to succeed ends the scan with its good; later
// consumers are not invoked. The first consumer to fail with a defect ends
// the scan with that failure. A consumer failing with an insufficiency is
// remembered and the scan continues; if the scan exhausts the list, the
// last remembered insufficiency is returned, or the Collector's own
// EmptyStock insufficiency if the list is empty.
func (c *Collector[G, D]) Consume() (G, *Failure[EmptyStock, D]) {
	var zero G
	failure := NewFailure(c, Insufficiency[EmptyStock, D](EmptyStock{}))
	for _, consumer := range c.consumers {
		good, f := consumer.Consume()
		if f == nil {
			return good, nil
		}
		failure = f
		if f.IsDefect() {
			break
		}
	}
	return zero, failure
}

// PushUniform appends a consumer already expressed in the Collector's good
// and flaw domain to the end of the scan order. It takes effect on the next
// Consume call.
func (c *Collector[G, D]) PushUniform(consumer Consumer[G, EmptyStock, D]) {
	c.consumers = append(c.consumers, consumer)
}

// Push appends consumer to the end of the scan order, wrapping it in an
// Adapter built from the given conversion and widening funcs. It takes
// effect on the next Consume call.
//
// Push is a package-level function because Go methods cannot introduce the
// type parameters of the pushed consumer.
func Push[G, C, D, CI, CD any](
	col *Collector[G, D],
	consumer Consumer[C, CI, CD],
	adapt func(C) G,
	insufficiency func(CI) EmptyStock,
	defect func(CD) D,
) {
	col.consumers = append(col.consumers, NewAdapter(consumer, adapt, insufficiency, defect))
}
