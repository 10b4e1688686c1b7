// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mart provides combinators over a non-blocking exchange of typed
// goods between a [Producer] and a [Consumer].
//
// Every operation attempts the exchange exactly once and returns
// immediately. A failed exchange carries a [Fault] classified as either a
// transient insufficiency (retry may succeed, e.g. [EmptyStock],
// [FullStock]) or a permanent defect (retry will not help, e.g.
// [WithdrawnSupply]). A failed production always returns the rejected good
// inside its [Recall]; a failed consumption throws a [Failure] alone.
//
// # Architecture
//
//   - Flaw model: [Fault], [Failure], [Recall] over an (insufficiency,
//     defect) type pair; widening via [BlameFault], [BlameFailure],
//     [BlameRecall] converts each slot independently and never changes the
//     classification.
//   - Conversion: [Specifier] and [Adapter] present concretely typed agents
//     as agents over a more generic good and flaw domain, so heterogeneous
//     sub-agents can share one collection.
//   - Fan-out: [Distributor] routes each good by its key ([Keyed]) to one of
//     many registered producers; a missing key is a defect returning the
//     good untouched.
//   - Fan-in: [Collector] scans registered consumers in order, tolerating
//     transient emptiness across sources and short-circuiting on the first
//     defect.
//   - Assembly: [Composer] buffers elements from an inner consumer across
//     calls and recognizes complete composites from the buffered prefix via
//     a [Composite] func, as a resumable zero-lookahead streaming parser.
//   - Transport: [NewPipe] creates a bounded producer/consumer pair over a
//     lock-free SPSC queue from [code.hybscloud.com/lfq]; [ProduceFunc] and
//     [ConsumeFunc] bridge non-blocking functions classified at the
//     [code.hybscloud.com/iox.ErrWouldBlock] boundary.
//   - Waiting: retry on insufficiency belongs to the caller; [Deliver],
//     [Draw], and [Convey] package the busy-poll loop with adaptive backoff
//     (iox.Backoff), without spawning goroutines or creating channels.
//
// # Example
//
//	producer, consumer := mart.NewPipe[int]("doc", 4)
//	if recall := producer.Produce(42); recall != nil {
//		// recall.Good == 42; retry later if !recall.IsDefect()
//	}
//	n, failure := consumer.Consume()
//	if failure != nil && !failure.IsDefect() {
//		// stock momentarily empty; retry
//	}
//	_ = n
package mart
