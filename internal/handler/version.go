package handler

import (
	"net/http"
	"runtime"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Version        string `json:"version"`
	CatalogVersion string `json:"catalog_version,omitempty"`
	GoVersion      string `json:"go_version"`
	BuildTime      string `json:"build_time,omitempty"`
	GitCommit      string `json:"git_commit,omitempty"`
}

// Build-time variables (injected via ldflags)
var (
	BuildTime = "unknown"
	GitCommit = "unset"
)

// HandleVersion returns the running build and catalog versions
func HandleVersion(version, catalogVersion string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionInfo{
			Version:        version,
			CatalogVersion: catalogVersion,
			GoVersion:      runtime.Version(),
			BuildTime:      BuildTime,
			GitCommit:      GitCommit,
		})
	}
}
