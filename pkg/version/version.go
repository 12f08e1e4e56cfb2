package version

// Version is the current cobolt release.
const Version = "0.1.0"
