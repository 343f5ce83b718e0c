// Package checksum provides config file hashing with normalization support.
//
//   - Raw checksum: Hash of the exact file content (detects all changes)
//   - Normalized checksum: Hash after removing comments and re-encoding the
//     JSON canonically, so reformatting or reordering keys keeps the hash
//
// The normalized checksum is written next to each configuration snapshot so
// the target database can tell whether a file's content changed between runs.
//
// # Example Usage
//
//	calculator := checksum.New()
//	raw := calculator.CalculateRaw(fileContent)
//	normalized := calculator.CalculateNormalized(fileContent)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
