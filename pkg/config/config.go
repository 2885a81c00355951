package config

import (
	"errors"

	"github.com/Riviera71/ephemeris-compute-de430/pkg/monitoring"
	"github.com/spf13/pflag"
)

type Config struct {
	Datafetch Datafetch
}

type Datafetch struct {
	Debug    bool
	DataDir  string
	LockFile string
	// Refresh forces a re-download of files which are
	// normally kept once they are on disk.
	Refresh     bool
	Downloader  Downloader
	Compression Compression
	Monitoring  monitoring.Config
}

type Downloader struct {
	// Type selects the download backend: wget (default) or grab.
	Type string
	Wget string
}

type Compression struct {
	Gzip   string
	Gunzip string
}

// allows custom config path
var configPath string

func NewConfig() *Config {
	conf := Config{
		Datafetch: Datafetch{
			DataDir: "data",
			Downloader: Downloader{
				Type: "wget",
				Wget: "wget",
			},
			Compression: Compression{
				Gzip:   "gzip",
				Gunzip: "gunzip",
			},
		},
	}
	// the config file is optional, defaults above apply without one
	_ = LoadConfig(&conf, configPath)
	return &conf
}

func (c *Config) ParseFlags() error {
	c.Datafetch.WithFlags(pflag.CommandLine)
	pflag.StringVarP(&configPath, "conf", "c", "", "set custom configuration file path")
	pflag.Parse()
	return c.Datafetch.ValidateFlags(pflag.CommandLine)
}

func (d *Datafetch) WithFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&d.Refresh, "refresh", d.Refresh, "download a fresh copy of all files")
	fs.Bool("no-refresh", false, "do not re-download existing files")
	fs.BoolVar(&d.Debug, "debug", d.Debug, "debug logging")
	fs.StringVar(&d.DataDir, "dir", d.DataDir, "destination directory for downloaded files")
	fs.IntVar(&d.Monitoring.Port, "monitoring.port", d.Monitoring.Port, "monitoring server port (0 to disable)")
}

// ValidateFlags rejects contradictory refresh switches and folds
// --no-refresh into the Refresh field.
func (d *Datafetch) ValidateFlags(fs *pflag.FlagSet) error {
	if fs.Changed("refresh") && fs.Changed("no-refresh") {
		return errors.New("--refresh and --no-refresh are mutually exclusive")
	}
	if fs.Changed("no-refresh") {
		d.Refresh = false
	}
	return nil
}
