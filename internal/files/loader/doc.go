// Package loader decodes config files.
//
// Each file is read once: comments are stripped and the JSON is decoded into
// the caller's file-schema value. Any failure is reported as a
// dbconfig.ConfigParseError naming the offending file.
package loader
