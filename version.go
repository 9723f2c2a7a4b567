package visitor

// Version is the current version of the visitor module.
const Version = "v0.1.0"
