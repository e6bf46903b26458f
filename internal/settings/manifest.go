package settings

import (
	"os"

	gv "github.com/hashicorp/go-version"

	"github.com/Tinerou/7tv-emotes-obsidian-plugin-sub000/internal/encoding/jsonx"
	"github.com/Tinerou/7tv-emotes-obsidian-plugin-sub000/pkg/log"
)

// Manifest mirrors the plugin manifest shipped next to the settings file. Only
// the version fields matter to the engine.
type Manifest struct {
	Version       string `json:"version"`
	MinAppVersion string `json:"min_app_version"`
}

// LoadManifest reads manifest.json at path. Any failure yields a zero
// manifest; the manifest is advisory.
func LoadManifest(path string) Manifest {
	var m Manifest
	b, err := os.ReadFile(path)
	if err != nil {
		return m
	}
	if err := jsonx.Unmarshal(b, &m); err != nil {
		return Manifest{}
	}
	return m
}

// CheckHostVersionWarn logs a warning when the host application version is
// older than the manifest's minimum. It never exits.
func CheckHostVersionWarn(m Manifest, hostVersion string) {
	if m.MinAppVersion == "" || hostVersion == "" {
		return
	}
	minV, err1 := gv.NewVersion(m.MinAppVersion)
	curV, err2 := gv.NewVersion(hostVersion)
	if err1 != nil || err2 != nil {
		return
	}
	if curV.LessThan(minV) {
		log.Warn("host version", curV.String(), "is older than the supported minimum", minV.String())
	}
}
