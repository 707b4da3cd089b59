// Package registry holds the state an addon accumulates before a build.
//
// Content is the content registry: package metadata plus four append-only
// collections (items, item textures, blocks, block textures). Each
// collection has its own lock. Registration takes the write lock only for
// the append; the build pipeline reads cloned snapshots and never holds a
// lock while rendering or writing files.
//
// Registry is a smaller name-keyed registry used for pluggable parts such as
// generator factories.
package registry
