package registry

import (
	"testing"
	"time"

	"github.com/vovakirdan/binary-arcade/internal/config"
	"github.com/vovakirdan/binary-arcade/internal/core"
)

type stubGame struct {
	core.Lifecycle
	id string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) BestKey() string                      { return "" }
func (g *stubGame) Reset(core.RuntimeConfig)             { g.Idle() }
func (g *stubGame) Start()                               { g.Begin() }
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{State: g.State()} }
func (g *stubGame) Render(core.Canvas)                   {}
func (g *stubGame) State() core.GameState                { return core.GameState{Status: g.Status()} }
func (g *stubGame) Stats() []core.Stat                   { return nil }
func (g *stubGame) Interval() time.Duration              { return time.Second }
func (g *stubGame) Bounds() (float64, float64)           { return 10, 10 }

func TestRegisterCreateList(t *testing.T) {
	Register("zz-stub", func(config.Set) Game { return &stubGame{id: "zz-stub"} })
	Register("aa-stub", func(config.Set) Game { return &stubGame{id: "aa-stub"} })

	if !Exists("zz-stub") || Exists("nope") {
		t.Error("Exists mismatch")
	}

	g, err := Create("aa-stub", config.DefaultSet())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "aa-stub" {
		t.Errorf("created %q", g.ID())
	}
	if _, err := Create("nope", config.DefaultSet()); err == nil {
		t.Error("unknown id should fail")
	}

	list := List()
	var ids []string
	for _, info := range list {
		ids = append(ids, info.ID)
	}
	if len(ids) < 2 || ids[0] != "aa-stub" || ids[len(ids)-1] != "zz-stub" {
		t.Errorf("List not sorted: %v", ids)
	}
	if list[0].Title != "Stub aa-stub" {
		t.Errorf("title = %q", list[0].Title)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func(config.Set) Game { return &stubGame{id: "dup-stub"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup-stub", func(config.Set) Game { return &stubGame{id: "dup-stub"} })
}
