package rclone

import (
	"os"
	"sort"
	"strings"
)

// baseDaemonEnv is the baseline environment for the control daemon: no
// interactive prompts, no auth confirmation, machine-parseable JSON logging,
// and effectively-infinite rc server timeouts so the daemon never
// self-terminates on idle.
func baseDaemonEnv(configFile string) map[string]string {
	return map[string]string{
		"RCLONE_CONFIG":                  configFile,
		"RCLONE_AUTO_CONFIRM":            "true",
		"RCLONE_PASSWORD":                "",
		"RCLONE_RC_SERVER_READ_TIMEOUT":  "8760h",
		"RCLONE_RC_SERVER_WRITE_TIMEOUT": "8760h",
		"RCLONE_RC_WEB_GUI":              "false",
		"RCLONE_RC_NO_AUTH":              "true",
		"RCLONE_LOG_FORMAT":              "",
		"RCLONE_LOG_LEVEL":               "NOTICE",
		"RCLONE_USE_JSON_LOG":            "true",
	}
}

// forcedDaemonEnv is applied after caller overrides. JSON logging must stay
// on or the supervisor cannot parse the log feed.
func forcedDaemonEnv() map[string]string {
	return map[string]string{
		"RCLONE_USE_JSON_LOG": "true",
	}
}

// mergeLayers merges environment layers left to right; later layers win.
func mergeLayers(layers ...map[string]string) map[string]string {
	merged := make(map[string]string)
	for _, layer := range layers {
		for k, v := range layer {
			merged[k] = v
		}
	}
	return merged
}

// renderEnv builds the process environment for exec.Cmd: the current
// process environment with the merged variables layered on top. Overridden
// keys are removed from the inherited set so each key appears exactly once;
// the layered keys are appended in sorted order for determinism.
func renderEnv(vars map[string]string) []string {
	env := make([]string, 0, len(os.Environ())+len(vars))
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if _, overridden := vars[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		env = append(env, k+"="+vars[k])
	}
	return env
}
