package internal

// Version is the signbridge release version, overridable at build time via
// -ldflags "-X github.com/silentspeaker/signbridge/internal.Version=...".
var Version = "0.1.0"
