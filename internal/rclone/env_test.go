package rclone

import (
	"strings"
	"testing"
)

func TestMergeLayersPrecedence(t *testing.T) {
	merged := mergeLayers(
		map[string]string{"A": "base", "B": "base"},
		map[string]string{"B": "override", "C": "override"},
		map[string]string{"C": "forced"},
	)

	want := map[string]string{"A": "base", "B": "override", "C": "forced"}
	for k, v := range want {
		if merged[k] != v {
			t.Errorf("merged[%s] = %q, want %q", k, merged[k], v)
		}
	}
	if len(merged) != len(want) {
		t.Errorf("merged has %d keys, want %d", len(merged), len(want))
	}
}

func TestDaemonEnvForcesJSONLog(t *testing.T) {
	// A caller override may tune anything except JSON logging, which the
	// supervisor needs to parse the feed.
	overrides := map[string]string{
		"RCLONE_USE_JSON_LOG": "false",
		"RCLONE_LOG_LEVEL":    "DEBUG",
	}
	merged := mergeLayers(baseDaemonEnv("/tmp/rclone.conf"), overrides, forcedDaemonEnv())

	if merged["RCLONE_USE_JSON_LOG"] != "true" {
		t.Errorf("RCLONE_USE_JSON_LOG = %q, want forced true", merged["RCLONE_USE_JSON_LOG"])
	}
	if merged["RCLONE_LOG_LEVEL"] != "DEBUG" {
		t.Errorf("RCLONE_LOG_LEVEL = %q, want caller override DEBUG", merged["RCLONE_LOG_LEVEL"])
	}
	if merged["RCLONE_CONFIG"] != "/tmp/rclone.conf" {
		t.Errorf("RCLONE_CONFIG = %q", merged["RCLONE_CONFIG"])
	}
}

func TestBaseDaemonEnvCoversControlVariables(t *testing.T) {
	base := baseDaemonEnv("")
	for _, key := range []string{
		"RCLONE_CONFIG",
		"RCLONE_AUTO_CONFIRM",
		"RCLONE_PASSWORD",
		"RCLONE_RC_SERVER_READ_TIMEOUT",
		"RCLONE_RC_SERVER_WRITE_TIMEOUT",
		"RCLONE_RC_WEB_GUI",
		"RCLONE_RC_NO_AUTH",
		"RCLONE_LOG_FORMAT",
		"RCLONE_LOG_LEVEL",
		"RCLONE_USE_JSON_LOG",
	} {
		if _, ok := base[key]; !ok {
			t.Errorf("baseDaemonEnv missing %s", key)
		}
	}
}

func TestBaseDaemonEnvIsHeadless(t *testing.T) {
	base := baseDaemonEnv("")

	// Auto-confirm must be on: with it off, rclone can block on a
	// console confirmation the supervisor would never answer.
	if base["RCLONE_AUTO_CONFIRM"] != "true" {
		t.Errorf("RCLONE_AUTO_CONFIRM = %q, want true", base["RCLONE_AUTO_CONFIRM"])
	}
	if base["RCLONE_RC_NO_AUTH"] != "true" {
		t.Errorf("RCLONE_RC_NO_AUTH = %q, want true", base["RCLONE_RC_NO_AUTH"])
	}
	if base["RCLONE_USE_JSON_LOG"] != "true" {
		t.Errorf("RCLONE_USE_JSON_LOG = %q, want true", base["RCLONE_USE_JSON_LOG"])
	}
}

func TestRenderEnvOverridesInherited(t *testing.T) {
	t.Setenv("RCMATE_ENV_TEST", "inherited")

	env := renderEnv(map[string]string{"RCMATE_ENV_TEST": "layered"})

	var matches []string
	for _, kv := range env {
		if strings.HasPrefix(kv, "RCMATE_ENV_TEST=") {
			matches = append(matches, kv)
		}
	}
	if len(matches) != 1 {
		t.Fatalf("RCMATE_ENV_TEST appears %d times, want exactly once", len(matches))
	}
	if matches[0] != "RCMATE_ENV_TEST=layered" {
		t.Errorf("entry = %q, want layered value", matches[0])
	}
}

func TestRenderEnvKeepsInherited(t *testing.T) {
	t.Setenv("RCMATE_ENV_KEEP", "kept")

	env := renderEnv(map[string]string{"OTHER": "x"})

	found := false
	for _, kv := range env {
		if kv == "RCMATE_ENV_KEEP=kept" {
			found = true
		}
	}
	if !found {
		t.Error("inherited variable was dropped")
	}
}
