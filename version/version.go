package version

// BuildVersion is the tool version, overridden by the linker for release builds
var BuildVersion = "v0.1.0-dev"
