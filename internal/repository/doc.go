// Package repository determines the identity of source-control checkouts.
//
// Two resolvers implement dbconfig.RepositoryResolver:
//   - GitCLIResolver runs the git executable in the checkout directory and
//     parses its output
//   - GoGitResolver reads the repository with go-git and needs no executable
//
// Discover probes the immediate subdirectories of a working directory and
// returns the identities of those that are repositories. Directories that
// are not repositories are skipped.
package repository
