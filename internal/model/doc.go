// Package model defines the two shapes a database configuration takes.
//
// The file schema (File* types) mirrors what authors write: most fields may be
// a scalar, an array of environment names, or an array of environment-scoped
// entries. The runtime schema (DatabaseConfiguration and its entity types)
// is what the generator consumes: every scoped field is an explicit list of
// environment-tagged values and grants and network ACLs are fully expanded.
//
// The Scoped type is the only place that branches on the authored shape.
// Everything downstream works with []ScopedValue, []EnvironmentTag and
// []ExclusionTag.
package model
