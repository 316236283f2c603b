package version

import "sync"

// Info describes the running dcf build.
type Info struct {
	Version   string
	BuildTime string
	GoVersion string
}

// build holds the current build information, set at startup by the main package.
var (
	buildMu sync.RWMutex
	build   = Info{Version: "dev", BuildTime: "unknown", GoVersion: "unknown"}
)

// SetInfo records the build information injected through ldflags.
func SetInfo(info Info) {
	buildMu.Lock()
	defer buildMu.Unlock()
	build = info
}

// Get returns the current build information.
func Get() Info {
	buildMu.RLock()
	defer buildMu.RUnlock()
	return build
}

// IsRelease reports whether the running binary carries a parseable release version.
func IsRelease() bool {
	v := Get().Version
	if v == "" || v == "dev" || v == "unknown" {
		return false
	}
	_, err := ParseSemVer(v)
	return err == nil
}
