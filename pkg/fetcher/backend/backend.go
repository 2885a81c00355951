package backend

import (
	"github.com/Riviera71/ephemeris-compute-de430/pkg/config"
	"github.com/Riviera71/ephemeris-compute-de430/pkg/logger"
)

// Client fetches a single URL into the file at dest.
type Client interface {
	Request(url string, dest string) error
}

func New(conf config.Downloader, log *logger.Logger) Client {
	switch conf.Type {
	case "grab":
		return NewGrabDownloader(log)
	default:
		return NewWgetDownloader(conf.Wget, log)
	}
}
