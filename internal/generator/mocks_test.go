package generator

import (
	"fmt"
	"strconv"

	"github.com/vvka-141/dbconfig/internal/files/filesystem"
)

// vanishingFS reports every path as missing.
type vanishingFS struct {
	*filesystem.AferoFileSystem
}

func (vanishingFS) Exists(string) (bool, error) { return false, nil }

func pad(n int) string { return fmt.Sprintf("%03d", n) }

func itoa(n int) string { return strconv.Itoa(n) }
