// Package simhome locates the simulator installation root that holds the
// installed packages. Resolvers are plain values passed to the registry
// builder, so lookups never depend on hidden process state.
package simhome
