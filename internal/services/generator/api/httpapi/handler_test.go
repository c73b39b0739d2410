package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "github.com/ctjot/seedgen/internal/platform/errors"
	"github.com/ctjot/seedgen/internal/services/generator/domain/preset"
)

type fakePresetService struct {
	presets map[string]preset.Stored
}

func newFakePresetService() *fakePresetService {
	return &fakePresetService{presets: map[string]preset.Stored{}}
}

func (f *fakePresetService) ListPresets(ctx context.Context) ([]preset.Stored, error) {
	out := make([]preset.Stored, 0, len(f.presets))
	for _, p := range f.presets {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePresetService) GetPreset(ctx context.Context, id string) (preset.Stored, error) {
	p, ok := f.presets[id]
	if !ok {
		return preset.Stored{}, apperrors.New(apperrors.CodeNotFound, "preset not found")
	}
	return p, nil
}

func (f *fakePresetService) CreatePreset(ctx context.Context, p preset.Preset) (preset.Stored, error) {
	id := p.ID()
	if _, ok := f.presets[id]; ok {
		return preset.Stored{}, apperrors.New(apperrors.CodeAlreadyExists, "preset exists")
	}
	stored := preset.Stored{ID: id, Preset: p}
	f.presets[id] = stored
	return stored, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	New(newFakePresetService()).Routes(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, wantStatus int) map[string]any {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		t.Fatalf("get %s: status %d, want %d", url, resp.StatusCode, wantStatus)
	}
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode %s: %v", url, err)
	}
	return out
}

func postJSON(t *testing.T, url, body string, wantStatus int) map[string]any {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("post %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		t.Fatalf("post %s: status %d, want %d", url, resp.StatusCode, wantStatus)
	}
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode %s: %v", url, err)
	}
	return out
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("get healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
}

func TestEnumsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	out := getJSON(t, srv.URL+"/api/enums", http.StatusOK)

	enums, ok := out["enums"].(map[string]any)
	if !ok {
		t.Fatalf("missing enums table: %v", out)
	}
	gameflags, ok := enums["gameflags"].(map[string]any)
	if !ok || gameflags["disable_glitches"] != "GameFlags.FIX_GLITCH" {
		t.Fatalf("unexpected gameflags table: %v", enums["gameflags"])
	}
	inverse, ok := out["inverse_enums"].(map[string]any)
	if !ok {
		t.Fatalf("missing inverse table: %v", out)
	}
	invFlags := inverse["gameflags"].(map[string]any)
	if invFlags["GameFlags.FIX_GLITCH"] != "disable_glitches" {
		t.Fatalf("unexpected inverse gameflags: %v", invFlags)
	}
}

func TestForcedFlagsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	out := getJSON(t, srv.URL+"/api/forced-flags", http.StatusOK)

	flags := out["flags"].(map[string]any)
	chrono := flags["GameFlags.CHRONOSANITY"].(map[string]any)
	off := chrono["forced_off"].([]any)
	if len(off) != 1 || off[0] != "GameFlags.BOSS_SCALE" {
		t.Fatalf("unexpected chronosanity effects: %v", chrono)
	}
	modes := out["modes"].(map[string]any)
	if _, ok := modes["GameMode.LOST_WORLDS"]; !ok {
		t.Fatalf("missing lost worlds mode entry: %v", modes)
	}
}

func TestObjectiveAliasesEndpoint(t *testing.T) {
	srv := newTestServer(t)
	out := getJSON(t, srv.URL+"/api/objective-aliases", http.StatusOK)
	aliases := out["aliases"].(map[string]any)
	if aliases["random gated quest"] != "quest_gated" {
		t.Fatalf("unexpected aliases: %v", aliases)
	}
}

func TestValidateObjectives(t *testing.T) {
	srv := newTestServer(t)

	out := postJSON(t, srv.URL+"/api/objectives/validate",
		`{"entries": ["quest_free", "collect_5_rocks"]}`, http.StatusOK)
	if out["valid"] != true {
		t.Fatalf("expected valid, got %v", out)
	}
	canonical := out["canonical"].([]any)
	if len(canonical) != 2 || canonical[0] != "quest_free" {
		t.Fatalf("unexpected canonical entries: %v", canonical)
	}

	out = postJSON(t, srv.URL+"/api/objectives/validate",
		`{"entries": ["quest_free", "boss_nonexistent", "-1:quest_free"]}`, http.StatusOK)
	if out["valid"] != false {
		t.Fatalf("expected invalid, got %v", out)
	}
	errs := out["errors"].([]any)
	if len(errs) != 2 {
		t.Fatalf("expected 2 entry errors, got %v", errs)
	}
	first := errs[0].(map[string]any)
	if first["index"] != float64(1) {
		t.Fatalf("unexpected first error index: %v", first)
	}
	body := first["error"].(map[string]any)
	if body["code"] != string(apperrors.CodeObjectiveUnresolved) {
		t.Fatalf("unexpected error code: %v", body)
	}
	if !strings.Contains(body["message"].(string), "Could not resolve boss nonexistent") {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	if body["focus"] != "bucket" {
		t.Fatalf("unexpected focus: %v", body["focus"])
	}
}

func TestValidateSettings(t *testing.T) {
	srv := newTestServer(t)

	// Defaults are always valid.
	out := postJSON(t, srv.URL+"/api/settings/validate", `{}`, http.StatusOK)
	if out["valid"] != true {
		t.Fatalf("defaults should validate: %v", out)
	}

	// Chronosanity forces boss scaling off.
	out = postJSON(t, srv.URL+"/api/settings/validate",
		`{"gameflags": ["GameFlags.CHRONOSANITY", "GameFlags.BOSS_SCALE"]}`, http.StatusOK)
	if out["valid"] != true {
		t.Fatalf("expected valid after settling: %v", out)
	}
	forcedOff := out["forced_off"].([]any)
	if len(forcedOff) != 1 || forcedOff[0] != "GameFlags.BOSS_SCALE" {
		t.Fatalf("unexpected forced_off: %v", forcedOff)
	}

	// Logic budget failure surfaces with the extra-options focus.
	out = postJSON(t, srv.URL+"/api/settings/validate",
		`{"gameflags": [
			"GameFlags.ROCKSANITY",
			"GameFlags.REMOVE_BLACK_OMEN_SPOT",
			"GameFlags.RESTORE_JOHNNY_RACE",
			"GameFlags.RESTORE_TOOLS"
		]}`, http.StatusOK)
	if out["valid"] != false {
		t.Fatalf("expected budget failure: %v", out)
	}
	errs := out["errors"].([]any)
	body := errs[0].(map[string]any)
	if body["code"] != string(apperrors.CodeLogicBudgetExceeded) {
		t.Fatalf("unexpected code: %v", body)
	}
	if body["focus"] != "extra-options" {
		t.Fatalf("unexpected focus: %v", body)
	}

	// Char-rando with an empty identity row fails with char-rando focus.
	out = postJSON(t, srv.URL+"/api/settings/validate",
		`{"gameflags": ["GameFlags.CHAR_RANDO"],
		  "char_settings": {"choices": [[], [1], [2], [3], [4], [5], [6]]}}`, http.StatusOK)
	if out["valid"] != false {
		t.Fatalf("expected char matrix failure: %v", out)
	}
	body = out["errors"].([]any)[0].(map[string]any)
	if body["code"] != string(apperrors.CodeCharAssignIdentityUnassigned) {
		t.Fatalf("unexpected code: %v", body)
	}
	if body["focus"] != "char-rando" {
		t.Fatalf("unexpected focus: %v", body)
	}

	// Bucket-list hints run through the objective grammar.
	out = postJSON(t, srv.URL+"/api/settings/validate",
		`{"gameflags": ["GameFlags.BUCKET_LIST"],
		  "bucket_settings": {"hints": ["quest_free", "boss_nonexistent"]}}`, http.StatusOK)
	if out["valid"] != false {
		t.Fatalf("expected objective failure: %v", out)
	}
	body = out["errors"].([]any)[0].(map[string]any)
	if body["code"] != string(apperrors.CodeObjectiveUnresolved) {
		t.Fatalf("unexpected code: %v", body)
	}
	if body["focus"] != "bucket" {
		t.Fatalf("unexpected focus: %v", body)
	}

	// The same hints pass untested when bucket list is off.
	out = postJSON(t, srv.URL+"/api/settings/validate",
		`{"bucket_settings": {"hints": ["boss_nonexistent"]}}`, http.StatusOK)
	if out["valid"] != true {
		t.Fatalf("hints should be ignored without bucket list: %v", out)
	}
}

func TestEncodeSettings(t *testing.T) {
	srv := newTestServer(t)

	out := postJSON(t, srv.URL+"/api/settings/encode",
		`{"settings": {"game_mode": "GameMode.ICE_AGE"}, "strict": false}`, http.StatusOK)
	encoded := out["settings"].(map[string]any)
	if encoded["game_mode"] != "GameMode.ICE_AGE" {
		t.Fatalf("unexpected encoded mode: %v", encoded)
	}
	if _, ok := encoded["gameflags"]; ok {
		t.Fatalf("default flags should be elided: %v", encoded)
	}

	out = postJSON(t, srv.URL+"/api/settings/encode",
		`{"settings": {}, "strict": true}`, http.StatusOK)
	encoded = out["settings"].(map[string]any)
	if _, ok := encoded["gameflags"]; !ok {
		t.Fatalf("strict encoding should include flags: %v", encoded)
	}
	if _, ok := encoded["bucket_settings"]; !ok {
		t.Fatalf("strict encoding should include bucket settings: %v", encoded)
	}
}

func TestPresetLifecycle(t *testing.T) {
	srv := newTestServer(t)

	doc := `{
		"metadata": {"name": "Weekly Race", "desc": "tuesday seed"},
		"settings": {"game_mode": "GameMode.LOST_WORLDS"}
	}`
	out := postJSON(t, srv.URL+"/api/presets", doc, http.StatusCreated)
	created := out["preset"].(map[string]any)
	if created["id"] != "weekly_race" {
		t.Fatalf("unexpected id: %v", created)
	}

	out = getJSON(t, srv.URL+"/api/presets/weekly_race", http.StatusOK)
	got := out["preset"].(map[string]any)
	if got["name"] != "Weekly Race" {
		t.Fatalf("unexpected preset: %v", got)
	}

	out = getJSON(t, srv.URL+"/api/presets", http.StatusOK)
	presets := out["presets"].([]any)
	if len(presets) != 1 {
		t.Fatalf("expected 1 preset, got %v", presets)
	}

	// Duplicates conflict.
	out = postJSON(t, srv.URL+"/api/presets", doc, http.StatusConflict)
	errBody := out["error"].(map[string]any)
	if errBody["code"] != string(apperrors.CodeAlreadyExists) {
		t.Fatalf("unexpected error: %v", errBody)
	}

	// Missing settings key is a 400.
	out = postJSON(t, srv.URL+"/api/presets",
		`{"metadata": {"name": "X"}}`, http.StatusBadRequest)
	errBody = out["error"].(map[string]any)
	if errBody["code"] != string(apperrors.CodePresetMissingSettings) {
		t.Fatalf("unexpected error: %v", errBody)
	}

	// Unknown preset is a 404.
	getJSON(t, srv.URL+"/api/presets/nope", http.StatusNotFound)
}

func TestSeedEndpoint(t *testing.T) {
	srv := newTestServer(t)
	out := getJSON(t, srv.URL+"/api/seed", http.StatusOK)
	if out["seed"] == "" || out["seed"] == nil {
		t.Fatalf("expected seed name, got %v", out)
	}
	shareID, _ := out["share_id"].(string)
	if len(shareID) != 26 {
		t.Fatalf("expected 26-char share id, got %q", shareID)
	}
}
