package version

import (
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Name of the library, as reported in the User-Agent header
	Name = "go-llm-sdk"
)

var (
	GitTag    string
	GitBranch string
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Version returns the tag or branch set at link time, or the VCS revision
func Version() string {
	if GitTag != "" {
		return GitTag
	}
	if GitBranch != "" {
		return GitBranch
	}
	if revision := buildSetting("vcs.revision"); revision != "" {
		if len(revision) > 12 {
			revision = revision[:12]
		}
		return revision
	}
	return "dev"
}

// UserAgent returns the value sent in the User-Agent header of requests
func UserAgent() string {
	return fmt.Sprintf("%s/%s (%s; %s/%s)", Name, Version(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// JSON returns build metadata for the named executable
func JSON(execName string) []byte {
	metadata := map[string]string{
		"name":     execName,
		"version":  Version(),
		"compiler": runtime.Version(),
		"platform": runtime.GOOS + "/" + runtime.GOARCH,
	}
	if GitTag != "" {
		metadata["tag"] = GitTag
	}
	if GitBranch != "" {
		metadata["branch"] = GitBranch
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Path != "" {
		metadata["source"] = info.Main.Path
	}
	if hash := buildSetting("vcs.revision"); hash != "" {
		metadata["hash"] = hash
	}
	if t := buildSetting("vcs.time"); t != "" {
		metadata["build_time"] = t
	}
	if buildSetting("vcs.modified") == "true" {
		metadata["modified"] = "true"
	}

	data, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		panic(err)
	}
	return data
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func buildSetting(key string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}
