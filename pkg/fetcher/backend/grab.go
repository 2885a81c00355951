package backend

import (
	"github.com/cavaliercoder/grab"

	"github.com/Riviera71/ephemeris-compute-de430/pkg/logger"
)

// GrabDownloader is an in-process HTTP downloader for hosts
// where no wget binary is available.
type GrabDownloader struct {
	client *grab.Client
	log    *logger.Logger
}

func NewGrabDownloader(log *logger.Logger) GrabDownloader {
	return GrabDownloader{
		client: grab.NewClient(),
		log:    log,
	}
}

func (d GrabDownloader) Request(url string, dest string) error {
	req, err := grab.NewRequest(dest, url)
	if err != nil {
		return err
	}
	resp := d.client.Do(req)
	if err := resp.Err(); err != nil {
		return err
	}
	d.log.Debug().Msgf("downloaded [%v] %s", resp.HTTPResponse.Status, resp.Filename)
	return nil
}
