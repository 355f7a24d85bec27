// internal/version/version.go
package version

// Version is the toolkit release stamped into --version output and
// versioned JSON documents.
const Version = "0.3.1"
