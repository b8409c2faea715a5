package cli

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/socketgraph/internal/demo"
	"github.com/matzehuels/socketgraph/pkg/geom"
	"github.com/matzehuels/socketgraph/pkg/graph"
	"github.com/matzehuels/socketgraph/pkg/theme"
)

func newTestExplore(t *testing.T) exploreModel {
	t.Helper()
	g, err := demo.Build(theme.Default(), graph.Stacked)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	snap := func(context.Context, *demo.Graph) (string, error) { return "snap.svg", nil }
	return newExploreModel(context.Background(), g, snap)
}

func press(m exploreModel, keys ...tea.KeyMsg) (exploreModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(exploreModel)
	}
	return m, cmd
}

var (
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func runeKey(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }

func TestSocketAnchors(t *testing.T) {
	m := newTestExplore(t)

	// source 2 outputs, blur 2+1, sharpen 1+1, mix 3+1, output 1
	if len(m.anchors) != 12 {
		t.Fatalf("anchors = %d, want 12", len(m.anchors))
	}
	for _, a := range m.anchors {
		got, ok := m.g.FindSocket(anchorPoint(m.g, a))
		if !ok || got != a {
			t.Errorf("anchor %v hits %v (%v)", a, got, ok)
		}
	}
	if !m.onHit || m.hit != (graph.Hit{Node: 0, Side: graph.Output, Socket: 0}) {
		t.Errorf("initial hit = %v (%v)", m.hit, m.onHit)
	}
}

func TestExploreMove(t *testing.T) {
	m := newTestExplore(t)
	start := m.pointer

	tests := []struct {
		key  tea.KeyMsg
		want geom.Point
	}{
		{tea.KeyMsg{Type: tea.KeyRight}, geom.Pt(stepSmall, 0)},
		{tea.KeyMsg{Type: tea.KeyDown}, geom.Pt(stepSmall, stepSmall)},
		{tea.KeyMsg{Type: tea.KeyShiftLeft}, geom.Pt(stepSmall-stepLarge, stepSmall)},
		{tea.KeyMsg{Type: tea.KeyShiftUp}, geom.Pt(stepSmall-stepLarge, stepSmall-stepLarge)},
	}
	for _, tt := range tests {
		m, _ = press(m, tt.key)
		if got := m.pointer.Sub(start); got != tt.want {
			t.Errorf("after %s offset = %v, want %v", tt.key, got, tt.want)
		}
	}
	// moved left off the source node
	if m.onHit {
		t.Errorf("hit = %v, want none", m.hit)
	}
}

func TestExploreCycle(t *testing.T) {
	m := newTestExplore(t)

	m, _ = press(m, keyTab, keyTab)
	want := graph.Hit{Node: 1, Side: graph.Input, Socket: 0}
	if m.hit != want {
		t.Errorf("after two tabs hit = %v, want %v", m.hit, want)
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	last := m.anchors[len(m.anchors)-1]
	if m.hit != last {
		t.Errorf("wrapped hit = %v, want %v", m.hit, last)
	}
}

func TestExploreConnect(t *testing.T) {
	m := newTestExplore(t)
	before := len(m.g.Connections())

	// pick source.mask, drop on blur.image
	m, _ = press(m, keyTab, keySpace)
	if m.source == nil || *m.source != (graph.Hit{Node: 0, Side: graph.Output, Socket: 1}) {
		t.Fatalf("source = %v", m.source)
	}
	m, _ = press(m, keyTab, keySpace)

	if m.source != nil {
		t.Error("pending connection not cleared")
	}
	if m.added != 1 || len(m.g.Connections()) != before+1 {
		t.Fatalf("added = %d, connections = %d", m.added, len(m.g.Connections()))
	}
	last := m.g.Connections()[before]
	if last.String() != "0:1 -> 1:0" {
		t.Errorf("connection = %s", last)
	}
	if !strings.Contains(m.status, "source.mask") || !strings.Contains(m.status, "blur.image") {
		t.Errorf("status = %q", m.status)
	}
}

func TestExplorePickRules(t *testing.T) {
	m := newTestExplore(t)
	before := len(m.g.Connections())

	// input without a pending source
	m, _ = press(m, keyTab, keyTab, keySpace)
	if m.source != nil || m.added != 0 {
		t.Errorf("input pick started a connection: %v", m.source)
	}

	// esc cancels
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyShiftTab}, keySpace, keyEsc)
	if m.source != nil || m.status != "connection canceled" {
		t.Errorf("esc: source = %v status = %q", m.source, m.status)
	}

	// picking empty space cancels
	m, _ = press(m, keySpace, tea.KeyMsg{Type: tea.KeyShiftDown}, tea.KeyMsg{Type: tea.KeyShiftDown}, tea.KeyMsg{Type: tea.KeyShiftDown}, tea.KeyMsg{Type: tea.KeyShiftDown}, keySpace)
	if m.source != nil {
		t.Errorf("source = %v after picking empty space", m.source)
	}

	if len(m.g.Connections()) != before {
		t.Errorf("connections changed: %d -> %d", before, len(m.g.Connections()))
	}
}

func TestExploreSnapshotAndQuit(t *testing.T) {
	m := newTestExplore(t)

	m, _ = press(m, runeKey('w'))
	if m.status != "wrote snap.svg" {
		t.Errorf("status = %q", m.status)
	}

	if _, cmd := press(m, runeKey('q')); cmd == nil {
		t.Error("q returned no command")
	} else if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestExploreView(t *testing.T) {
	m := newTestExplore(t)
	view := m.View()
	for _, want := range []string{"Explore", "node 0 output socket 0 (source.image)", "blur.image"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
