// Package generator writes the deployment script tree and the master
// deployment script for a compiled set of configurations.
//
// Generated files are grouped in category directories below the script
// root. The master script sources them with one @path line each, ordered by
// category so objects are created before the statements that use them:
//
//	remove → configs → refreshmview → tablespaces → profiles → users →
//	roles → directories → networkAcls → privileges → databaseLinks
//
// Within a category files are listed in lexical order.
package generator
