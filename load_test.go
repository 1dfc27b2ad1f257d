package motion

import (
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

func readTestdata(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestLoadArticle(t *testing.T) {
	a, err := LoadArticle(readTestdata(t, "article.yaml"))
	if err != nil {
		t.Fatalf("LoadArticle: %v", err)
	}
	if a.ID != "demo" || len(a.Sections) != 2 || len(a.Interactions) != 4 {
		t.Fatalf("article = %q with %d sections, %d interactions", a.ID, len(a.Sections), len(a.Interactions))
	}
	hero := a.Sections[0].Items[0]
	p := hero.State["hero-open"]["width"]
	if p.In == nil || p.In.Duration != 300 || p.In.Timing != "ease-out" {
		t.Errorf("hero width in = %+v", p.In)
	}
	if hero.Area != (Rect{X: 40, Y: 40, Width: 200, Height: 120}) {
		t.Errorf("hero area = %+v", hero.Area)
	}
	if hero.State["hero-open"]["angle"].Out != nil {
		t.Error("angle should have no out timing")
	}
	cluster := a.Sections[1].Items[0]
	if cluster.Type != ItemGroup || len(cluster.Items) != 2 {
		t.Errorf("cluster = %s with %d children", cluster.Type, len(cluster.Items))
	}
	load := a.Interactions[3].Triggers[0]
	if !load.IsLoadTrigger() || load.IsItemTrigger() {
		t.Errorf("autoplay trigger = %+v, want load trigger", load)
	}
	scroll := a.Interactions[2].Triggers[0]
	if scroll.Position != 0.5 || !scroll.IsReverse {
		t.Errorf("dots trigger = %+v", scroll)
	}
}

func TestLoadArticleInvalid(t *testing.T) {
	_, err := LoadArticle([]byte("sections: [unclosed"))
	if err == nil || !strings.HasPrefix(err.Error(), "load article:") {
		t.Fatalf("err = %v, want wrapped load error", err)
	}
}

func TestLoadKeyframes(t *testing.T) {
	kfs, err := LoadKeyframes(readTestdata(t, "keyframes.yaml"))
	if err != nil {
		t.Fatalf("LoadKeyframes: %v", err)
	}
	if len(kfs) != 7 {
		t.Fatalf("len = %d, want 7", len(kfs))
	}
	if kfs[0].ID != "kf-hero-dim-0" || kfs[0].Type() != GroupDimensions {
		t.Errorf("first = %+v", kfs[0])
	}
	if v, ok := kfs[1].Value.(DimensionsValue); !ok || v.Width != 400 || v.Height != 160 {
		t.Errorf("second value = %#v", kfs[1].Value)
	}
	fill, ok := kfs[2].Value.(FillValue)
	if !ok || len(fill) != 1 || fill[0].Type != FillSolid || fill[0].Value != "rgba(0, 0, 0, 1)" {
		t.Errorf("fill value = %#v", kfs[2].Value)
	}
	// keyframes without an id get a random one
	if _, err := uuid.Parse(kfs[2].ID); err != nil {
		t.Errorf("generated id %q is not a uuid: %v", kfs[2].ID, err)
	}
	if kfs[2].ID == kfs[3].ID {
		t.Error("generated ids collide")
	}
	if c, ok := kfs[6].Value.(TextColorValue); !ok || c.Color != "#336699" {
		t.Errorf("text color = %#v", kfs[6].Value)
	}
}

func TestLoadKeyframesErrors(t *testing.T) {
	tests := []struct {
		name, doc, want string
	}{
		{"unknown group", "- {id: a, type: wobble, position: 0, value: {x: 1}}", "unknown property group"},
		{"missing value", "- {id: a, type: opacity, position: 0}", "missing opacity value"},
		{"bad value", "- {id: a, type: opacity, position: 0, value: [1, 2]}", `keyframe "a"`},
	}
	for _, tt := range tests {
		_, err := LoadKeyframes([]byte(tt.doc))
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: err = %v, want containing %q", tt.name, err, tt.want)
		}
	}
}

func TestKeyframeYAMLRoundTrip(t *testing.T) {
	in := Keyframe{
		ID: "k", ItemID: "i", LayoutID: "l", Position: 12,
		Value: FXParamsValue{"speed": 2},
	}
	data, err := yaml.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "type: fx-params") {
		t.Errorf("encoded keyframe lacks its type tag:\n%s", data)
	}
	var out Keyframe
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out.ID != "k" || out.Position != 12 || out.Value.(FXParamsValue)["speed"] != 2 {
		t.Errorf("decoded = %+v", out)
	}
}

func TestKeyframesRepository(t *testing.T) {
	kfs, err := LoadKeyframes(readTestdata(t, "keyframes.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	repo := NewKeyframes(kfs)
	if got := len(repo.ItemKeyframes("hero")); got != 5 {
		t.Errorf("hero keyframes = %d, want 5", got)
	}
	if repo.Animator("button", "desktop") != nil {
		t.Error("button has no keyframes, want nil animator")
	}
	if repo.Animator("card", "mobile") != nil {
		t.Error("card has no mobile keyframes, want nil animator")
	}
	a := repo.Animator("hero", "desktop")
	if a == nil {
		t.Fatal("hero desktop animator is nil")
	}
	if a.Len(GroupDimensions) != 2 || a.Len(GroupFill) != 2 || a.Len(GroupRotation) != 0 {
		t.Errorf("hero desktop tracks = dims %d fill %d rotation %d",
			a.Len(GroupDimensions), a.Len(GroupFill), a.Len(GroupRotation))
	}
	mobile := repo.Animator("hero", "mobile")
	if got := mobile.Rotation(RotationValue{}, 0).Angle; got != 45 {
		t.Errorf("hero mobile angle = %v, want 45", got)
	}
}
