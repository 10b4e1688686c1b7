// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mart_test

import (
	"code.hybscloud.com/mart"
)

type mockDefect struct{}

func (mockDefect) String() string { return "mock defect" }

type mockMisstep struct{}

func (mockMisstep) String() string { return "mock misstep" }

// outcome scripts a single Consume result of a mockConsumer.
type outcome struct {
	fault mart.Fault[mart.EmptyStock, mockDefect]
	good  byte
	fails bool
}

func yields(good byte) outcome {
	return outcome{good: good}
}

func shortage() outcome {
	return outcome{fails: true, fault: mart.Insufficiency[mart.EmptyStock, mockDefect](mart.EmptyStock{})}
}

func breakage() outcome {
	return outcome{fails: true, fault: mart.Defect[mart.EmptyStock, mockDefect](mockDefect{})}
}

// mockConsumer replays its script in order, then reports EmptyStock
// forever. calls counts every Consume invocation.
type mockConsumer struct {
	name   string
	script []outcome
	calls  int
}

func (m *mockConsumer) String() string { return m.name }

func (m *mockConsumer) Consume() (byte, *mart.Failure[mart.EmptyStock, mockDefect]) {
	m.calls++
	if m.calls > len(m.script) {
		return 0, mart.NewFailure(m, mart.Insufficiency[mart.EmptyStock, mockDefect](mart.EmptyStock{}))
	}
	o := m.script[m.calls-1]
	if o.fails {
		return 0, mart.NewFailure(m, o.fault)
	}
	return o.good, nil
}

// mockProducer records accepted goods. Scripted rejections are replayed
// first, each returning the offered good inside a Recall.
type mockProducer struct {
	name     string
	accepted []byte
	rejects  []mart.Fault[mart.FullStock, mockDefect]
}

func (m *mockProducer) String() string { return m.name }

func (m *mockProducer) Produce(good byte) *mart.Recall[byte, mart.FullStock, mockDefect] {
	if len(m.rejects) > 0 {
		fault := m.rejects[0]
		m.rejects = m.rejects[1:]
		return mart.NewRecall(m, fault, good)
	}
	m.accepted = append(m.accepted, good)
	return nil
}

// named is a minimal display identity for constructing faults in tests.
type named string

func (n named) String() string { return string(n) }
