// Package daogen holds build metadata for the daogen tool.
package daogen

// Version is the daogen release version.
const Version = "0.1.0"
