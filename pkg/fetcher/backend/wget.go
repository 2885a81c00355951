package backend

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/Riviera71/ephemeris-compute-de430/pkg/logger"
)

// WgetDownloader shells out to the external wget tool. The remote
// archives are plain HTTP(S) file trees, so wget's own retry and
// timestamp handling covers everything a fetch needs.
type WgetDownloader struct {
	bin string
	log *logger.Logger
}

func NewWgetDownloader(bin string, log *logger.Logger) WgetDownloader {
	if bin == "" {
		bin = "wget"
	}
	return WgetDownloader{bin: bin, log: log}
}

func (d WgetDownloader) Request(url string, dest string) error {
	out, err := exec.Command(d.bin, url, "-O", dest).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%v <%v>: %w (%s)", d.bin, url, err, lastLine(out))
	}
	d.log.Debug().Msgf("%v <%v> -O <%v>", d.bin, url, dest)
	return nil
}

func lastLine(out []byte) string {
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	return lines[len(lines)-1]
}
