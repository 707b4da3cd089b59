// Package types defines the value types shared by every woah package:
// Identifier and SemVer with their canonical renderings, component
// declarations and the map transform that turns them into a component
// mapping, and the FS interface output is written through.
package types
