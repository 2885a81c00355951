package fetcher

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Riviera71/ephemeris-compute-de430/pkg/compression"
	"github.com/Riviera71/ephemeris-compute-de430/pkg/compression/gzip"
	"github.com/Riviera71/ephemeris-compute-de430/pkg/config"
	"github.com/Riviera71/ephemeris-compute-de430/pkg/fetcher/backend"
	"github.com/Riviera71/ephemeris-compute-de430/pkg/logger"
	xos "github.com/Riviera71/ephemeris-compute-de430/pkg/os"
)

// FileSpec describes one remote file to retrieve.
type FileSpec struct {
	URL         string
	Destination string
	// ForceRefresh re-downloads the file even when a local copy exists.
	ForceRefresh bool
}

var ErrDownloadFailed = errors.New("download failed")

var (
	downloads = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "datafetch", Name: "files_downloaded_total",
		Help: "Number of files downloaded from remote archives.",
	})
	skips = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "datafetch", Name: "files_skipped_total",
		Help: "Number of files already on disk and left untouched.",
	})
	fails = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "datafetch", Name: "files_failed_total",
		Help: "Number of files which could not be retrieved.",
	})
)

type Fetcher struct {
	backend backend.Client
	// newPacker picks a compression handler from a file name
	newPacker func(path string) compression.Packer
	log       *logger.Logger
}

func New(conf config.Datafetch, log *logger.Logger) *Fetcher {
	tools := compression.Tools{Gzip: conf.Compression.Gzip, Gunzip: conf.Compression.Gunzip}
	return &Fetcher{
		backend:   backend.New(conf.Downloader, log),
		newPacker: func(path string) compression.Packer { return compression.NewFromExt(path, tools, log) },
		log:       log,
	}
}

// Fetch ensures a non-empty copy of s.URL exists at s.Destination.
// It reports false when a local copy was already present and the
// call was a no-op.
//
// The download is attempted twice: once assuming the archive serves
// the file with the compression its URL suffix advertises, once
// assuming the opposite, since the CDS and JPL archives flip gzip
// compression on and off over time. When neither the URL nor the
// destination is gzipped both passes compute the same pair and the
// second is a plain repeat of the first.
func (f *Fetcher) Fetch(s FileSpec) (bool, error) {
	log := f.log.Extend(f.log.With().Str("f", filepath.Base(s.Destination)))
	log.Info().Msgf("fetching <%v>", s.Destination)

	if xos.Exists(s.Destination) {
		if !s.ForceRefresh {
			log.Info().Msg("file already exists, not downloading a fresh copy")
			skips.Inc()
			return false, nil
		}
		log.Info().Msg("file already exists, downloading a fresh copy")
		if err := xos.Remove(s.Destination); err != nil {
			return false, err
		}
	}

	srcGzipped := strings.HasSuffix(s.URL, gzip.Ext)
	dstGzipped := strings.HasSuffix(s.Destination, gzip.Ext)

	for _, gzipped := range []bool{srcGzipped, !srcGzipped} {
		url := s.URL
		if gzipped && !srcGzipped {
			url += gzip.Ext
		} else if srcGzipped && !gzipped {
			url = strings.TrimSuffix(url, gzip.Ext)
		}

		download := s.Destination
		if gzipped && !dstGzipped {
			download += gzip.Ext
		} else if dstGzipped && !gzipped {
			download = strings.TrimSuffix(download, gzip.Ext)
		}

		if err := xos.CheckCreateDir(filepath.Dir(download)); err != nil {
			return false, err
		}

		log.Info().Msgf("downloading <%v> to <%v>", url, download)
		if err := f.backend.Request(url, download); err != nil {
			log.Warn().Err(err).Msg("download failed, attempting alternative URL")
			continue
		}
		if !xos.NonEmpty(download) {
			log.Warn().Msg("empty download, attempting alternative URL")
			continue
		}

		// reconcile the compression state with the destination
		if gzipped != dstGzipped {
			if err := f.repack(download, gzipped, log); err != nil {
				fails.Inc()
				return false, fmt.Errorf("%w: %v", ErrDownloadFailed, err)
			}
		}
		if !xos.Exists(s.Destination) {
			fails.Inc()
			return false, fmt.Errorf("%w: couldn't create <%v>, are gzip/gunzip installed?",
				ErrDownloadFailed, s.Destination)
		}
		downloads.Inc()
		return true, nil
	}

	fails.Inc()
	return false, fmt.Errorf("%w: <%v>", ErrDownloadFailed, s.URL)
}

// repack converts the freshly downloaded file in place. When the
// download was gzipped it is inflated, otherwise it is deflated,
// so that the destination path appears on disk either way.
func (f *Fetcher) repack(download string, gzipped bool, log *logger.Logger) error {
	if gzipped {
		pack := f.newPacker(download)
		if pack == nil {
			return fmt.Errorf("no way to decompress <%v>", download)
		}
		log.Info().Msgf("decompressing <%v>", download)
		return pack.Decompress(download)
	}
	pack := f.newPacker(download + gzip.Ext)
	if pack == nil {
		return fmt.Errorf("no way to compress <%v>", download)
	}
	log.Info().Msgf("compressing <%v>", download)
	return pack.Compress(download)
}
