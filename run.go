// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mart

import (
	"code.hybscloud.com/iox"
)

// Deliver produces good on producer, waiting past transient insufficiency
// with adaptive backoff (iox.Backoff). It returns nil once the good is
// accepted, or the Recall of the first defect. Does not spawn goroutines or
// create channels.
func Deliver[G, I, D any](producer Producer[G, I, D], good G) *Recall[G, I, D] {
	var bo iox.Backoff
	for {
		recall := producer.Produce(good)
		if recall == nil || recall.IsDefect() {
			return recall
		}
		good = recall.Good
		bo.Wait()
	}
}

// Draw consumes one good from consumer, waiting past transient
// insufficiency with adaptive backoff (iox.Backoff). It returns the good,
// or the Failure of the first defect. Does not spawn goroutines or create
// channels.
func Draw[G, I, D any](consumer Consumer[G, I, D]) (G, *Failure[I, D]) {
	var bo iox.Backoff
	for {
		good, failure := consumer.Consume()
		if failure == nil || failure.IsDefect() {
			return good, failure
		}
		bo.Wait()
	}
}

// Convey transfers up to n goods from consumer to producer, interleaving
// both sides on the calling goroutine and backing off (iox.Backoff) when
// neither side can make progress. A good drawn from the consumer is held
// across producer insufficiency and never lost.
//
// It returns the number of goods conveyed and, if the transfer stopped
// early, the defect that stopped it: the consumer's *Failure or the
// producer's *Recall.
func Convey[G, CI, CD, PI, PD any](consumer Consumer[G, CI, CD], producer Producer[G, PI, PD], n int) (int, error) {
	var bo iox.Backoff
	var pending G
	holding := false
	conveyed := 0
	for conveyed < n {
		progress := false
		if !holding {
			good, failure := consumer.Consume()
			if failure != nil {
				if failure.IsDefect() {
					return conveyed, failure
				}
			} else {
				pending = good
				holding = true
				progress = true
			}
		}
		if holding {
			if recall := producer.Produce(pending); recall != nil {
				if recall.IsDefect() {
					return conveyed, recall
				}
				pending = recall.Good
			} else {
				holding = false
				conveyed++
				progress = true
			}
		}
		if !progress {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
	return conveyed, nil
}
