package registry

import (
	"testing"

	"github.com/vovakirdan/musclebrain/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(int64, core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Press(int64, core.Action) {}
func (g *stubGame) SetPaused(bool) {}
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndLookup(t *testing.T) {
	Register(Info{ID: "zz-b", Slug: "zz-bravo", Order: 902}, func() Game { return &stubGame{id: "zz-b"} })
	Register(Info{ID: "zz-a", Slug: "zz-alpha", Order: 901}, func() Game { return &stubGame{id: "zz-a"} })

	info, ok := Lookup("zz-alpha")
	if !ok || info.ID != "zz-a" {
		t.Fatalf("Lookup by slug = (%+v, %v)", info, ok)
	}
	if !Exists("zz-b") {
		t.Error("Exists by id should be true")
	}

	g, err := Create("zz-bravo")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz-b" {
		t.Errorf("Create returned %q", g.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create of unknown game should fail")
	}

	list := List()
	var ia, ib = -1, -1
	for i, in := range list {
		switch in.ID {
		case "zz-a":
			ia = i
		case "zz-b":
			ib = i
		}
	}
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List should order by Order, got positions a=%d b=%d", ia, ib)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(Info{ID: "zz-dup"}, func() Game { return &stubGame{id: "zz-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(Info{ID: "zz-dup"}, func() Game { return &stubGame{id: "zz-dup"} })
}

func TestInfoBetter(t *testing.T) {
	higher := Info{}
	lower := Info{LowerIsBetter: true}

	if !higher.Better(10, 5) || higher.Better(5, 5) {
		t.Error("higher-is-better comparison wrong")
	}
	if !lower.Better(180, 250) || lower.Better(250, 250) {
		t.Error("lower-is-better comparison wrong")
	}
}

func TestInfoDefaults(t *testing.T) {
	var in Info
	if in.FormatScore(12) != "12" {
		t.Errorf("FormatScore default = %q", in.FormatScore(12))
	}
	if in.RateCompletion(core.Completion{}) != RatingAverage {
		t.Error("RateCompletion default should be average")
	}
}
