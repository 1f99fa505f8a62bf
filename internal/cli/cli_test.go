package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs the root command against the state file at statePath with
// an empty home directory.
func execute(t *testing.T, statePath string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append(args, "--state-file", statePath))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func listJSON(t *testing.T, statePath string, args ...string) []entryView {
	t.Helper()
	out, err := execute(t, statePath, append(args, "--json")...)
	if err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	var views []entryView
	if err := json.Unmarshal([]byte(out), &views); err != nil {
		t.Fatalf("decoding %v output: %v\n%s", args, err, out)
	}
	return views
}

func viewNames(views []entryView) []string {
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = v.Name
	}
	return out
}

func seedDemo(t *testing.T) string {
	t.Helper()
	statePath := filepath.Join(t.TempDir(), "state", "state.yaml")
	out, err := execute(t, statePath, "demo", "--save")
	if err != nil {
		t.Fatalf("demo: %v", err)
	}
	if !strings.Contains(out, "Saved state to "+statePath) {
		t.Fatalf("demo output missing save line:\n%s", out)
	}
	return statePath
}

func TestDemo_HistoryAfterSession(t *testing.T) {
	statePath := seedDemo(t)

	views := listJSON(t, statePath, "history", "list")
	want := []string{"Main/Camera", "Level2/Boss", "Main/Player", "PersistentObjects/AudioManager", "Red"}
	if got := viewNames(views); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("history = %v, want %v", got, want)
	}
	if !views[1].Favorite {
		t.Errorf("expected %s to be a favorite", views[1].Name)
	}
	if views[4].State != "asset" {
		t.Errorf("asset state = %q, want asset", views[4].State)
	}
	if views[0].State != "unloaded" {
		t.Errorf("node state offline = %q, want unloaded", views[0].State)
	}

	info, err := os.Stat(statePath)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("state file mode = %o, want 600", perm)
	}
}

func TestFavorites_AddAndRemove(t *testing.T) {
	statePath := seedDemo(t)

	out, err := execute(t, statePath, "favorites", "add", "0")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Added Main/Camera") {
		t.Errorf("unexpected output: %s", out)
	}

	views := listJSON(t, statePath, "favorites", "list")
	if got := viewNames(views); len(got) != 2 || got[0] != "Main/Camera" {
		t.Fatalf("favorites = %v", got)
	}

	if _, err := execute(t, statePath, "favorites", "remove", "0"); err != nil {
		t.Fatal(err)
	}
	views = listJSON(t, statePath, "favorites", "list")
	if got := viewNames(views); len(got) != 1 || got[0] != "Level2/Boss" {
		t.Fatalf("favorites after remove = %v", got)
	}

	// The history entry shares the flag with the favorites list.
	history := listJSON(t, statePath, "history", "list")
	if history[0].Favorite {
		t.Error("removed favorite still flagged in history")
	}
}

func TestHistory_RemoveAndIndexErrors(t *testing.T) {
	statePath := seedDemo(t)

	if _, err := execute(t, statePath, "history", "remove", "9"); err == nil {
		t.Error("expected out-of-range error")
	}
	if _, err := execute(t, statePath, "history", "remove", "x"); err == nil {
		t.Error("expected parse error")
	}

	if _, err := execute(t, statePath, "history", "remove", "4"); err != nil {
		t.Fatal(err)
	}
	if got := listJSON(t, statePath, "history", "list"); len(got) != 4 {
		t.Fatalf("history has %d entries, want 4", len(got))
	}
}

func TestMostVisited_CountsRepeatedSelections(t *testing.T) {
	statePath := seedDemo(t)

	views := listJSON(t, statePath, "most-visited", "list")
	if len(views) == 0 {
		t.Fatal("empty ranking")
	}
	if views[0].Name != "Main/Player" || views[0].Count != 2 {
		t.Errorf("top entry = %s x%d, want Main/Player x2", views[0].Name, views[0].Count)
	}
}

func TestComponents_List(t *testing.T) {
	statePath := seedDemo(t)

	views := listJSON(t, statePath, "components", "list")
	want := []string{"Transform", "PlayerController", "Camera"}
	if got := viewNames(views); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("components = %v, want %v", got, want)
	}
}

func TestState_Validate(t *testing.T) {
	statePath := seedDemo(t)

	out, err := execute(t, statePath, "state", "validate")
	if err != nil {
		t.Fatalf("validate: %v\n%s", err, out)
	}
	if !strings.Contains(out, "[ OK ] format 1.0.0") {
		t.Errorf("unexpected output:\n%s", out)
	}

	broken := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(broken, []byte("format: 1.0.0\nentries: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	out, err = execute(t, statePath, "state", "validate", broken)
	if err == nil {
		t.Fatalf("expected validation failure:\n%s", out)
	}
	if !strings.Contains(out, "[FAIL]") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestState_ShowPath(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "custom.yaml")
	out, err := execute(t, statePath, "state", "show-path")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != statePath {
		t.Errorf("show-path = %q, want %q", out, statePath)
	}
}

func TestList_MissingStateIsEmpty(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "none.yaml")
	if got := listJSON(t, statePath, "history", "list"); len(got) != 0 {
		t.Errorf("expected no entries, got %v", got)
	}
}
