package compression

import (
	"path/filepath"

	"github.com/Riviera71/ephemeris-compute-de430/pkg/compression/gzip"
	"github.com/Riviera71/ephemeris-compute-de430/pkg/logger"
)

// Packer reconciles the on-disk compression state of a single file.
// Both operations replace the input file with its converted form,
// the way the gzip command-line tools do.
type Packer interface {
	// Compress turns path into path+ext.
	Compress(path string) error
	// Decompress turns path+ext back into path.
	Decompress(path string) error
}

type Tools struct {
	Gzip   string
	Gunzip string
}

// NewFromExt picks a packer from the file extension of path,
// or nil when the extension names no known compression format.
func NewFromExt(path string, tools Tools, log *logger.Logger) Packer {
	switch filepath.Ext(path) {
	case gzip.Ext:
		return gzip.New(tools.Gzip, tools.Gunzip, log)
	default:
		return nil
	}
}
