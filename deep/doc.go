// Package deep reads and writes values nested inside containers through a
// delimited key path such as "x.1" or "a/b/c".
//
// Segments address:
//
//   - string-keyed maps     by key ("x");
//   - slices and arrays     by decimal index ("1");
//   - structs (by pointer)  by exported field name or `json` tag name.
//
// Getter returns nil for any path that does not resolve. Setter walks to the
// parent of the last segment without creating intermediate containers; the
// last segment is written when the parent can hold it (map keys are added,
// slice indexes must exist, struct fields must be addressable).
//
// Both factories split the path once; the returned closures are reused for
// every element of a collection.
package deep
