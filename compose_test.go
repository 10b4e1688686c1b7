// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mart_test

import (
	"testing"

	"code.hybscloud.com/mart"
)

// triple is the composite recognized from the exact element sequence
// 0, 1, 2.
type triple struct{}

// composeTriple recognizes the prefix [0, 1, 2]. A mismatch at index i
// drains the i+1 diagnosed elements and missteps; a short buffer is
// pending.
func composeTriple(elements *[]byte) mart.Poll[triple, mockMisstep] {
	buf := *elements
	for i := 0; i < 3; i++ {
		if i >= len(buf) {
			return mart.Pending[triple, mockMisstep]()
		}
		if buf[i] != byte(i) {
			*elements = buf[i+1:]
			return mart.Misstepped[triple, mockMisstep](mockMisstep{})
		}
	}
	*elements = buf[3:]
	return mart.Composed[triple, mockMisstep](triple{})
}

func newTripleComposer(consumer *mockConsumer) *mart.Composer[byte, triple, mockMisstep, mart.EmptyStock, mockDefect] {
	return mart.NewComposer(mart.Consumer[byte, mart.EmptyStock, mockDefect](consumer), composeTriple)
}

func wantComposite(t *testing.T, c *mart.Composer[byte, triple, mockMisstep, mart.EmptyStock, mockDefect]) {
	t.Helper()
	if _, failure := c.Consume(); failure != nil {
		t.Fatalf("expected composite, got %v", failure)
	}
}

func wantInsufficiency(t *testing.T, c *mart.Composer[byte, triple, mockMisstep, mart.EmptyStock, mockDefect]) {
	t.Helper()
	_, failure := c.Consume()
	if failure == nil {
		t.Fatal("expected insufficiency, got a composite")
	}
	if failure.IsDefect() {
		t.Fatalf("expected insufficiency, got %v", failure)
	}
}

func TestComposerAssemblesComposite(t *testing.T) {
	consumer := &mockConsumer{name: "mock", script: []outcome{yields(0), yields(1), yields(2)}}
	composer := newTripleComposer(consumer)

	wantComposite(t, composer)
	wantInsufficiency(t, composer)
}

func TestComposerLeadingInsufficiency(t *testing.T) {
	consumer := &mockConsumer{name: "mock", script: []outcome{shortage(), yields(0), yields(1), yields(2)}}
	composer := newTripleComposer(consumer)

	wantInsufficiency(t, composer)
	wantComposite(t, composer)
	wantInsufficiency(t, composer)
}

// TestComposerRetainsPartialBuffer proves the buffered prefix survives a
// transient source across calls: the first call buffers [0, 1] and reports
// the source's insufficiency, the second completes the composite.
func TestComposerRetainsPartialBuffer(t *testing.T) {
	consumer := &mockConsumer{name: "mock", script: []outcome{yields(0), yields(1), shortage(), yields(2)}}
	composer := newTripleComposer(consumer)

	wantInsufficiency(t, composer)
	wantComposite(t, composer)
	wantInsufficiency(t, composer)
}

func TestComposerSurfacesConsumeDefect(t *testing.T) {
	consumer := &mockConsumer{name: "mock", script: []outcome{breakage(), yields(0), yields(1), yields(2)}}
	composer := newTripleComposer(consumer)

	_, failure := composer.Consume()
	if failure == nil || !failure.IsDefect() {
		t.Fatalf("expected defect, got %v", failure)
	}
	defect, _ := failure.Fault.Defect()
	if inner, ok := defect.Consumption(); !ok || inner != (mockDefect{}) {
		t.Fatalf("expected the inner consumer's defect, got %v", defect)
	}
	if failure.Agent != "mock" {
		t.Fatalf("agent got %q, want %q", failure.Agent, "mock")
	}

	wantComposite(t, composer)
	wantInsufficiency(t, composer)
}

func TestComposerDefectThenComposite(t *testing.T) {
	consumer := &mockConsumer{name: "mock", script: []outcome{yields(0), yields(1), breakage(), yields(2)}}
	composer := newTripleComposer(consumer)

	_, failure := composer.Consume()
	if failure == nil || !failure.IsDefect() {
		t.Fatalf("expected defect, got %v", failure)
	}

	// The composite completes on the next call despite the earlier defect;
	// the buffered [0, 1] prefix was retained.
	wantComposite(t, composer)
	wantInsufficiency(t, composer)
}

// TestComposerMisstepPriority proves a composition misstep outranks the
// source's simultaneous insufficiency and is raised by the composer itself.
func TestComposerMisstepPriority(t *testing.T) {
	consumer := &mockConsumer{name: "mock", script: []outcome{yields(9), yields(0), yields(1), yields(2)}}
	composer := newTripleComposer(consumer)

	_, failure := composer.Consume()
	if failure == nil || !failure.IsDefect() {
		t.Fatalf("expected misstep defect, got %v", failure)
	}
	defect, _ := failure.Fault.Defect()
	if _, ok := defect.Misstep(); !ok {
		t.Fatalf("expected misstep, got %v", defect)
	}
	if failure.Agent != "Composer of mock" {
		t.Fatalf("agent got %q, want %q", failure.Agent, "Composer of mock")
	}

	// The invalid prefix was drained; the retained [0, 1, 2] completes.
	wantComposite(t, composer)
	wantInsufficiency(t, composer)
}

func TestComposerMisstepAfterPartial(t *testing.T) {
	consumer := &mockConsumer{name: "mock", script: []outcome{yields(0), yields(1), yields(9), yields(0), yields(1), yields(2)}}
	composer := newTripleComposer(consumer)

	_, failure := composer.Consume()
	if failure == nil || !failure.IsDefect() {
		t.Fatalf("expected misstep defect, got %v", failure)
	}
	defect, _ := failure.Fault.Defect()
	if _, ok := defect.Misstep(); !ok {
		t.Fatalf("expected misstep, got %v", defect)
	}

	wantComposite(t, composer)
	wantInsufficiency(t, composer)
}

func TestComposerMultipleComposites(t *testing.T) {
	consumer := &mockConsumer{name: "mock", script: []outcome{yields(0), yields(1), yields(2), yields(0), yields(1), yields(2)}}
	composer := newTripleComposer(consumer)

	wantComposite(t, composer)
	wantComposite(t, composer)
	wantInsufficiency(t, composer)
}
