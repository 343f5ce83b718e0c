// Package builder turns authored config files into normalized
// DatabaseConfiguration values.
//
// Each file is routed by its name suffix to one entity builder; files with
// no recognized suffix are whole-config files and run every section builder
// over the sections they contain. The Compiler walks every repository,
// builds one configuration per file, records provenance, and validates the
// combined result.
//
// Password resolution failures abort the run immediately. Business-rule
// violations are collected across all files and returned together as a
// single *dbconfig.ValidationError.
package builder
