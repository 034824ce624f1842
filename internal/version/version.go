package version

// Version is the semantic version of helio. It can be overridden at build
// time with -ldflags.
var Version = "0.1.0"
