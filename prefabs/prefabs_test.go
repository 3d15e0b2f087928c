package prefabs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func withDir(t *testing.T, dir string) {
	t.Helper()
	old := Dir
	Dir = dir
	t.Cleanup(func() { Dir = old })
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadTuningEmbedded(t *testing.T) {
	withDir(t, t.TempDir())
	tuning, err := LoadTuning(TuningFile)
	if err != nil {
		t.Fatal(err)
	}
	def := DefaultTuning()
	if tuning.ScrollSpeed != def.ScrollSpeed || tuning.Obstacles.MaxWait != def.Obstacles.MaxWait {
		t.Fatalf("embedded runner.yaml drifted from defaults: %+v", tuning)
	}
	if tuning.SpawnOnStart == nil || !*tuning.SpawnOnStart {
		t.Fatal("expected spawn_on_start true")
	}
}

func TestLoadTuningOverlay(t *testing.T) {
	dir := t.TempDir()
	withDir(t, dir)
	writeFile(t, filepath.Join(dir, "fast.yaml"), "scroll_speed: 900\nobstacles:\n  max_wait: 2\n")

	tuning, err := LoadTuning("fast.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if tuning.ScrollSpeed != 900 || tuning.Obstacles.MaxWait != 2 {
		t.Fatalf("overlay not applied: %+v", tuning)
	}
	// Untouched fields keep their defaults.
	if tuning.Obstacles.MinWait != 1.5 || tuning.Coins.Prefab != "coin.yaml" || tuning.Player.Gravity != 0.6 {
		t.Fatalf("defaults lost: %+v", tuning)
	}
}

func TestLoadTuningErrors(t *testing.T) {
	dir := t.TempDir()
	withDir(t, dir)
	writeFile(t, filepath.Join(dir, "broken.yaml"), "scroll_speed: [1, 2\n")

	cases := []struct {
		name string
		file string
	}{
		{"missing", "nope.yaml"},
		{"malformed", "broken.yaml"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tuning, err := LoadTuning(c.file)
			if err == nil {
				t.Fatal("expected error")
			}
			if tuning.ScrollSpeed != DefaultTuning().ScrollSpeed {
				t.Fatalf("expected defaults on error, got %+v", tuning)
			}
		})
	}
}

func TestRatioFor(t *testing.T) {
	a := DefaultTuning().Aspect
	cases := []struct {
		name   string
		aspect AspectSpec
		height int
		want   float64
	}{
		{"wide_device", a, 2436, 2.16},
		{"wide_device_2", a, 1792, 2.16},
		{"regular_device", a, 1080, 16.0 / 9.0},
		{"unknown_height", a, 0, 16.0 / 9.0},
		{"no_default", AspectSpec{}, 1080, 16.0 / 9.0},
		{"wide_unset", AspectSpec{Default: 1.5, WideHeights: []int{2436}}, 2436, 1.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.aspect.RatioFor(c.height); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestLoadObstacleSet(t *testing.T) {
	withDir(t, t.TempDir())
	set, err := LoadObstacleSet("obstacles.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if len(set.Templates) != 5 {
		t.Fatalf("expected 5 templates, got %d", len(set.Templates))
	}
	if set.Scale != 0.85 || set.Lifetime != 10 {
		t.Fatalf("unexpected set header %+v", set)
	}
	for _, tmpl := range set.Templates {
		if tmpl.Kind != "block" && tmpl.Kind != "obstacle" {
			t.Fatalf("unexpected template kind %q", tmpl.Kind)
		}
	}
}

func TestLoadObstacleSetEmpty(t *testing.T) {
	dir := t.TempDir()
	withDir(t, dir)
	writeFile(t, filepath.Join(dir, "empty.yaml"), "lifetime: 3\ntemplates: []\n")
	writeFile(t, filepath.Join(dir, "unscaled.yaml"), "templates:\n  - {name: a, kind: block, image: a.png, width: 1, height: 1}\n")

	if _, err := LoadObstacleSet("empty.yaml"); !errors.Is(err, ErrNoObstacleTemplates) {
		t.Fatalf("expected ErrNoObstacleTemplates, got %v", err)
	}
	set, err := LoadObstacleSet("unscaled.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if set.Scale != 1 {
		t.Fatalf("expected default scale 1, got %v", set.Scale)
	}
}

func TestCleanPaths(t *testing.T) {
	cases := []struct {
		in, prefab, script string
	}{
		{"", "", ""},
		{"coin.yaml", "coin.yaml", "scripts/coin.yaml"},
		{"prefabs/coin.yaml", "coin.yaml", "scripts/coin.yaml"},
		{"ramp.tengo", "ramp.tengo", "scripts/ramp.tengo"},
		{"scripts/ramp.tengo", "scripts/ramp.tengo", "scripts/ramp.tengo"},
		{"prefabs/scripts/ramp.tengo", "scripts/ramp.tengo", "scripts/ramp.tengo"},
	}
	for _, c := range cases {
		if got := cleanPrefabPath(c.in); got != c.prefab {
			t.Errorf("cleanPrefabPath(%q) = %q, want %q", c.in, got, c.prefab)
		}
		if got := cleanScriptPath(c.in); got != c.script {
			t.Errorf("cleanScriptPath(%q) = %q, want %q", c.in, got, c.script)
		}
	}
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	withDir(t, dir)

	embedded, err := Load("coin.yaml")
	if err != nil {
		t.Fatal(err)
	}

	writeFile(t, filepath.Join(dir, "coin.yaml"), "name: edited\n")
	edited, err := Load("coin.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if string(edited) == string(embedded) || !strings.Contains(string(edited), "edited") {
		t.Fatalf("expected disk copy, got %q", edited)
	}
	again, err := Load("prefabs/coin.yaml")
	if err != nil || string(again) != string(edited) {
		t.Fatalf("expected prefixed name to hit the disk copy, got %q err=%v", again, err)
	}
}

func TestLoadScript(t *testing.T) {
	dir := t.TempDir()
	withDir(t, dir)

	src, err := LoadScript("ramp.tengo")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(src), "next") {
		t.Fatalf("embedded ramp script should assign next, got %q", src)
	}

	writeFile(t, filepath.Join(dir, "scripts", "ramp.tengo"), "next := floor\n")
	src, err = LoadScript("scripts/ramp.tengo")
	if err != nil {
		t.Fatal(err)
	}
	if string(src) != "next := floor\n" {
		t.Fatalf("expected disk script, got %q", src)
	}

	if _, err := LoadScript("missing.tengo"); err == nil {
		t.Fatal("expected error for missing script")
	}
}

func TestDecodeComponentSpec(t *testing.T) {
	spec, err := LoadEntityBuildSpec("coin.yaml")
	if err != nil {
		t.Fatal(err)
	}
	anim, err := DecodeComponentSpec[AnimationComponentSpec](spec.Components["animation"])
	if err != nil {
		t.Fatal(err)
	}
	if len(anim.Frames) != 6 || !anim.Loop || anim.TimePerFrame != 0.083 {
		t.Fatalf("unexpected coin animation %+v", anim)
	}

	empty, err := DecodeComponentSpec[LifetimeComponentSpec](nil)
	if err != nil || empty.Seconds != 0 {
		t.Fatalf("expected zero value for nil raw, got %+v err=%v", empty, err)
	}
}

func TestWatcherRelative(t *testing.T) {
	root := filepath.Join("some", "prefabs")
	w := &Watcher{roots: []string{root}}
	cases := []struct {
		in, want string
	}{
		{filepath.Join(root, "runner.yaml"), "runner.yaml"},
		{filepath.Join(root, "scripts", "ramp.tengo"), "scripts/ramp.tengo"},
		{filepath.Join("elsewhere", "coin.yaml"), "coin.yaml"},
	}
	for _, c := range cases {
		if got := w.relative(c.in); got != c.want {
			t.Errorf("relative(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestWatcherPendingDedupes(t *testing.T) {
	w := &Watcher{Events: make(chan string, 8)}
	for _, name := range []string{"runner.yaml", "coin.yaml", "runner.yaml"} {
		w.Events <- name
	}
	got := w.Pending()
	if len(got) != 2 || got[0] != "runner.yaml" || got[1] != "coin.yaml" {
		t.Fatalf("unexpected pending %v", got)
	}
	if w.Pending() != nil {
		t.Fatal("expected nothing pending after drain")
	}

	var nilWatcher *Watcher
	if nilWatcher.Pending() != nil {
		t.Fatal("nil watcher should report nothing")
	}
}

func TestWatcherReportsEdits(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "scripts"), 0o755); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(dir, filepath.Join(dir, "scripts"))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")
	writeFile(t, filepath.Join(dir, "runner.yaml"), "scroll_speed: 1\n")

	select {
	case name := <-w.Events:
		if name != "runner.yaml" {
			t.Fatalf("expected runner.yaml, got %q", name)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for watcher event")
	}

	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close should be a no-op, got %v", err)
	}
}
