package gzip

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/Riviera71/ephemeris-compute-de430/pkg/logger"
)

const Ext = ".gz"

// Packer shells out to the external gzip/gunzip tools, which swap
// the file on disk for its (de)compressed counterpart in place.
type Packer struct {
	gzip   string
	gunzip string
	log    *logger.Logger
}

func New(gzip string, gunzip string, log *logger.Logger) Packer {
	if gzip == "" {
		gzip = "gzip"
	}
	if gunzip == "" {
		gunzip = "gunzip"
	}
	return Packer{gzip: gzip, gunzip: gunzip, log: log}
}

// Compress turns path into path.gz.
func (p Packer) Compress(path string) error {
	if strings.HasSuffix(path, Ext) {
		return fmt.Errorf("%v is compressed already", path)
	}
	return p.run(p.gzip, path)
}

// Decompress turns path.gz into path. The argument is the .gz file.
func (p Packer) Decompress(path string) error {
	if !strings.HasSuffix(path, Ext) {
		return fmt.Errorf("%v has no %v suffix", path, Ext)
	}
	return p.run(p.gunzip, path)
}

func (p Packer) run(tool string, path string) error {
	out, err := exec.Command(tool, path).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%v %v: %w (%s)", tool, path, err, strings.TrimSpace(string(out)))
	}
	p.log.Debug().Msgf("%v %v", tool, path)
	return nil
}
