package motion

import (
	"os"
	"reflect"
	"strings"
	"testing"
)

func newDemoSession(t *testing.T) *Session {
	t.Helper()
	data, err := os.ReadFile("testdata/article.yaml")
	if err != nil {
		t.Fatal(err)
	}
	a, err := LoadArticle(data)
	if err != nil {
		t.Fatal(err)
	}
	return NewSession(newTestRegistry(t, a, WithViewportWidth(1000)))
}

func loadTestScript(t *testing.T) *Script {
	t.Helper()
	data, err := os.ReadFile("testdata/script.yaml")
	if err != nil {
		t.Fatal(err)
	}
	s, err := LoadScript(data)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSessionPlaysTransitions(t *testing.T) {
	s := newDemoSession(t)
	r := s.Registry()

	s.Load()
	if got := s.Actions(); !reflect.DeepEqual(got, []SessionAction{{ItemID: "clip", Type: ActionPlay}}) {
		t.Errorf("actions = %v", got)
	}
	s.Trigger("button", TriggerClick)
	g := s.Group("hero")
	if g == nil {
		t.Fatal("no hero group")
	}
	if got := g.Properties(); !reflect.DeepEqual(got, []string{"transform", "width"}) {
		t.Fatalf("hero properties = %v, want [transform width]", got)
	}

	s.Advance(0.2)
	if _, ok := mustStage(t, r, "clip", "autoplay").(ActiveStage); !ok {
		t.Error("zero duration clip transition did not finish")
	}
	if _, ok := mustStage(t, r, "hero", "open-hero").(TransitioningStage); !ok {
		t.Error("hero finished early")
	}

	s.Advance(0.3)
	st, ok := mustStage(t, r, "hero", "open-hero").(ActiveStage)
	if !ok || st.StateID != "hero-open" {
		t.Errorf("hero stage = %#v, want active hero-open", st)
	}
	if !g.Done {
		t.Error("hero group not done")
	}
	styles := s.Controller("hero").State(s.Keys("hero")).Styles
	if styles["width"] != 320 || styles["angle"] != 15 {
		t.Errorf("hero styles = %v", styles)
	}
	if got := s.Renders("button"); got != 1 {
		t.Errorf("button renders = %d, want 1", got)
	}
}

func TestSessionRunScript(t *testing.T) {
	s := newDemoSession(t)
	script := loadTestScript(t)
	if n := s.Run(script); n != len(script.Steps)-1 {
		t.Errorf("applied %d of %d steps, want the unknown one skipped", n, len(script.Steps))
	}

	r := s.Registry()
	want := map[string]string{
		"open-hero":  "hero-closed",
		"hover-card": "card-hover",
		"dots":       "dots-on",
		"autoplay":   "clip-on",
	}
	for id, state := range want {
		if cur, _ := r.CurrentState(id); cur != state {
			t.Errorf("%s current = %q, want %q", id, cur, state)
		}
	}
	if got := r.StuckTransitions(0); len(got) != 0 {
		t.Errorf("transitions left running: %+v", got)
	}
	for _, id := range []string{"hero", "card", "dot-a", "clip"} {
		if p := s.Controller(id).Pending(); len(p) != 0 {
			t.Errorf("%s pending = %v", id, p)
		}
	}
	if got := s.Renders("button"); got != 2 {
		t.Errorf("button renders = %d, want 2", got)
	}
	if got := s.Controller("card").State(s.Keys("card")).Styles; got["fill"] != "#ff6600" {
		t.Errorf("card styles = %v", got)
	}
}

func TestSessionStepUnknown(t *testing.T) {
	s := newDemoSession(t)
	if s.Step(Step{Action: StepClick, Item: "ghost"}) {
		t.Error("click on unknown item applied")
	}
	if s.Step(Step{Action: "wiggle"}) {
		t.Error("unknown action applied")
	}
	if !s.Step(Step{Action: StepScroll, Position: 10}) {
		t.Error("scroll not applied")
	}
}

func TestLoadScriptErrors(t *testing.T) {
	tests := map[string]string{
		"empty":   "steps: []\n",
		"invalid": "steps: [\n",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadScript([]byte(src))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.HasPrefix(err.Error(), "parse script:") {
				t.Errorf("err = %v", err)
			}
		})
	}
}

func TestItemStyleKeys(t *testing.T) {
	it := &Item{State: map[string]StateParams{
		"a": {"width": {}, "angle": {}},
		"b": {"angle": {}, "fill": {}},
	}}
	if got := itemStyleKeys(it); !reflect.DeepEqual(got, []string{"angle", "fill", "width"}) {
		t.Errorf("keys = %v", got)
	}
}
