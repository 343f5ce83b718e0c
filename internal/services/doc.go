// Package services orchestrates a generation run: repository discovery,
// configuration compilation and script generation.
package services
