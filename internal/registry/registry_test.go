package registry

import (
	"testing"

	"github.com/arcadeforge/meteorstorm/internal/core"
)

type stubGame struct {
	id    string
	title string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Game { return &stubGame{id: "stub-a", title: "Stub A"} })

	if !Exists("stub-a") {
		t.Error("registered game not found by Exists")
	}
	if Exists("no-such-game") {
		t.Error("Exists reported an unregistered game")
	}

	game, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if game.ID() != "stub-a" {
		t.Errorf("created game ID = %q, expected stub-a", game.ID())
	}

	if _, err := Create("no-such-game"); err == nil {
		t.Error("Create for unknown ID should fail")
	}
}

func TestListIsSorted(t *testing.T) {
	Register("stub-z", func() Game { return &stubGame{id: "stub-z", title: "Stub Z"} })
	Register("stub-b", func() Game { return &stubGame{id: "stub-b", title: "Stub B"} })

	infos := List()
	for i := 1; i < len(infos); i++ {
		if infos[i-1].ID > infos[i].ID {
			t.Fatalf("List not sorted: %q before %q", infos[i-1].ID, infos[i].ID)
		}
	}

	found := false
	for _, info := range infos {
		if info.ID == "stub-b" && info.Title == "Stub B" {
			found = true
		}
	}
	if !found {
		t.Error("List missing a registered game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup", title: "Dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup", title: "Dup"} })
}
