// Package files provides file-related functionality organized into sub-packages.
//
//   - filesystem: Filesystem abstraction interfaces and an afero-backed implementation
//   - scanner: Config file discovery, classification and checksums
//   - loader: Comment-tolerant JSON decoding of config files
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/dbconfig/internal/files/filesystem"
//	    "github.com/vvka-141/dbconfig/internal/files/scanner"
//	    "github.com/vvka-141/dbconfig/internal/files/loader"
//	)
//
//	fileScanner := scanner.NewScannerWithFS(checksum.New(), filesystem.NewOSFileSystem())
//	files, err := fileScanner.ScanRepository("./repos/app")
//
//	var user model.FileUser
//	err = loader.New().Decode(files[0], &user)
package files
