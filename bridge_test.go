// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mart_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/mart"
)

func TestConsumeFuncClassifiesWouldBlock(t *testing.T) {
	errBroken := errors.New("broken")
	script := []error{iox.ErrWouldBlock, nil, errBroken}
	calls := 0
	consumer := mart.NewConsumeFunc("fetcher", func() (int, error) {
		err := script[calls]
		calls++
		if err != nil {
			return 0, err
		}
		return 7, nil
	})

	_, failure := consumer.Consume()
	if failure == nil || failure.IsDefect() {
		t.Fatalf("would-block must be an insufficiency, got %v", failure)
	}

	good, failure := consumer.Consume()
	if failure != nil || good != 7 {
		t.Fatalf("consume got (%d, %v), want (7, nil)", good, failure)
	}

	_, failure = consumer.Consume()
	if failure == nil || !failure.IsDefect() {
		t.Fatalf("expected defect, got %v", failure)
	}
	if d, _ := failure.Fault.Defect(); !errors.Is(d, errBroken) {
		t.Fatalf("defect got %v, want %v", d, errBroken)
	}
	if failure.Agent != "fetcher" {
		t.Fatalf("agent got %q, want %q", failure.Agent, "fetcher")
	}
}

func TestProduceFuncClassifiesWouldBlock(t *testing.T) {
	errBroken := errors.New("broken")
	script := []error{iox.ErrWouldBlock, nil, errBroken}
	calls := 0
	var stored []int
	producer := mart.NewProduceFunc("storer", func(good int) error {
		err := script[calls]
		calls++
		if err == nil {
			stored = append(stored, good)
		}
		return err
	})

	recall := producer.Produce(1)
	if recall == nil || recall.IsDefect() {
		t.Fatalf("would-block must be an insufficiency, got %v", recall)
	}
	if recall.Good != 1 {
		t.Fatalf("good got %d, want 1", recall.Good)
	}

	if recall = producer.Produce(recall.Good); recall != nil {
		t.Fatalf("retry recalled: %v", recall)
	}

	recall = producer.Produce(2)
	if recall == nil || !recall.IsDefect() {
		t.Fatalf("expected defect, got %v", recall)
	}
	if d, _ := recall.Fault.Defect(); !errors.Is(d, errBroken) {
		t.Fatalf("defect got %v, want %v", d, errBroken)
	}
	if recall.Good != 2 {
		t.Fatalf("good got %d, want 2", recall.Good)
	}
	if len(stored) != 1 || stored[0] != 1 {
		t.Fatalf("stored got %v, want [1]", stored)
	}
}
