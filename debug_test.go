package motion

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// ---- Authoring checks ------------------------------------------------------

func TestCheckInteractions_WarnsOnDeadTriggers(t *testing.T) {
	a := clickArticle()
	a.Interactions[0].Triggers = append(a.Interactions[0].Triggers,
		Trigger{ItemID: "ghost", Type: TriggerClick, From: "A", To: "B"},
		Trigger{Position: 0.3, From: "Q", To: "B"},
		Trigger{Position: 0.6, From: "A", To: "Z"},
	)
	var buf bytes.Buffer
	if _, err := NewRegistry(a, WithLogger(bufferLogger(&buf)), WithViewportWidth(1000)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"trigger on unknown item", "item=ghost",
		"trigger from unknown state", "state=Q",
		"trigger to unknown state", "state=Z",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestCheckInteractions_CleanArticleIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	if _, err := NewRegistry(clickArticle(), WithLogger(bufferLogger(&buf))); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("unexpected warnings:\n%s", buf.String())
	}
}

// ---- Stuck transitions -----------------------------------------------------

func TestStuckTransitions_LogsWarning(t *testing.T) {
	var buf bytes.Buffer
	now := time.Unix(0, 0)
	r, err := NewRegistry(clickArticle(),
		WithLogger(bufferLogger(&buf)),
		WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatal(err)
	}
	r.NotifyItemTrigger("x", TriggerClick)
	now = now.Add(time.Minute)

	stuck := r.StuckTransitions(10 * time.Second)
	if len(stuck) != 2 {
		t.Fatalf("stuck = %+v, want x and y", stuck)
	}
	if stuck[0].Stage.From != "A" || stuck[0].Stage.To != "B" {
		t.Errorf("stage = %+v", stuck[0].Stage)
	}
	if n := strings.Count(buf.String(), "transition stuck"); n != 2 {
		t.Errorf("logged %d warnings, want 2:\n%s", n, buf.String())
	}
}

func TestStuckTransitions_SettleRecovers(t *testing.T) {
	now := time.Unix(0, 0)
	r := newTestRegistry(t, clickArticle(), WithClock(func() time.Time { return now }))
	ctrls := map[string]*ItemController{
		"x": NewItemController("x", r, nil),
		"y": NewItemController("y", r, nil),
	}
	r.NotifyItemTrigger("x", TriggerClick)
	now = now.Add(time.Minute)

	for _, st := range r.StuckTransitions(time.Second) {
		ctrls[st.ItemID].Settle()
	}
	if got := r.StuckTransitions(0); len(got) != 0 {
		t.Errorf("still stuck after settling: %+v", got)
	}
}

// ---- Trace logging ---------------------------------------------------------

func TestRegistryDebugTrace(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRegistry(t, clickArticle(), WithLogger(bufferLogger(&buf)))
	r.NotifyItemTrigger("x", TriggerClick)
	r.NotifyTransitionEnd("x")
	out := buf.String()
	for _, want := range []string{"interaction transition", "interaction=i", "to=B", "transition end", "item=x"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}
