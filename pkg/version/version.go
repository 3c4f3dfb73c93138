// Package version reports the build's version string, resolved at startup
// from -ldflags or the Go toolchain's VCS stamps.
package version

import "runtime/debug"

// AppName prefixes version strings in logs and user agents.
const AppName = "specular"

// commit may be injected at build time for container builds where .git is
// not in the build context:
//
//	-ldflags "-X github.com/specularhq/specular/pkg/version.commit=<sha>"
var commit string

// GitCommit is the short commit hash, or "dev" outside a stamped build.
var GitCommit = resolve()

// Full returns "specular/<commit>" for user-agent strings and log banners.
func Full() string {
	return AppName + "/" + GitCommit
}

// resolve prefers the injected commit, then the toolchain's VCS stamps. A
// build from a locally modified tree gets a -dirty suffix.
func resolve() string {
	if commit != "" {
		return short(commit)
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return "dev"
	}
	if dirty {
		return short(rev) + "-dirty"
	}
	return short(rev)
}

func short(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}
