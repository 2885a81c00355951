package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gofrs/uuid"
	"github.com/spf13/pflag"

	"github.com/Riviera71/ephemeris-compute-de430/pkg/catalog"
	"github.com/Riviera71/ephemeris-compute-de430/pkg/config"
	"github.com/Riviera71/ephemeris-compute-de430/pkg/fetcher"
	"github.com/Riviera71/ephemeris-compute-de430/pkg/logger"
	"github.com/Riviera71/ephemeris-compute-de430/pkg/monitoring"
	xos "github.com/Riviera71/ephemeris-compute-de430/pkg/os"
)

var Version = ""

func main() {
	conf := config.NewConfig()
	if err := conf.ParseFlags(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		pflag.Usage()
		os.Exit(2)
	}

	log := logger.NewConsole(conf.Datafetch.Debug, "dat", false)
	if rid, err := uuid.NewV4(); err == nil {
		log = log.Extend(log.With().Str("run", rid.String()[:8]))
	}
	log.Info().Msgf("automatically download all the required data files, version: %v", Version)
	log.Debug().Msgf("configuration: %+v", conf.Datafetch)

	if err := run(conf.Datafetch, log); err != nil {
		log.Fatal().Err(err).Msg("data fetch failed")
	}
	log.Info().Msg("all required files are in place")
}

func run(conf config.Datafetch, log *logger.Logger) error {
	// serialize runs sharing the data directory
	lock, err := xos.NewFileLock(conf.LockFile)
	if err != nil {
		log.Error().Err(err).Msg("couldn't make file lock")
	} else {
		if err := lock.Lock(); err != nil {
			log.Error().Err(err).Msg("file lock fail")
		}
		defer func() {
			if err := lock.Unlock(); err != nil {
				log.Error().Err(err).Msg("file unlock fail")
			}
		}()
	}

	if conf.Monitoring.Port > 0 {
		mon := monitoring.New(conf.Monitoring, "dat", log)
		go mon.Run()
		defer func() { _ = mon.Shutdown(context.Background()) }()
	}

	if err := xos.CheckCreateDir(conf.DataDir); err != nil {
		return err
	}

	f := fetcher.New(conf, log)
	for _, spec := range catalog.Required(conf.DataDir, conf.Refresh) {
		if _, err := f.Fetch(spec); err != nil {
			return err
		}
	}
	return nil
}
