// Package scanner discovers JSON config files in a repository checkout.
//
// The scanner is responsible for:
//   - Recursively discovering *.json files, skipping hidden files and directories
//   - Classifying each file by its name suffix
//   - Reading content and computing raw and normalized checksums
//
// Files are returned in lexical path order so compilation output is stable.
package scanner
