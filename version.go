package weave

// release is the version of the lease chain binaries.
const release = "v0.1.0-dev"

// GitCommit is set at build time with
// -ldflags "-X <module>.GitCommit=$(git rev-parse --short HEAD)".
var GitCommit = ""

// Version is release followed by the commit, when known.
func Version() string {
	if GitCommit == "" {
		return release
	}
	return release + " " + GitCommit
}
