package config

import (
	"testing"

	"github.com/spf13/pflag"
)

func parse(t *testing.T, d *Datafetch, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	d.WithFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	return fs
}

func TestRefreshFlag(t *testing.T) {
	var d Datafetch
	fs := parse(t, &d, "--refresh")
	if err := d.ValidateFlags(fs); err != nil {
		t.Fatal(err)
	}
	if !d.Refresh {
		t.Error("--refresh should set Refresh")
	}
}

func TestNoRefreshFlagOverridesConfig(t *testing.T) {
	d := Datafetch{Refresh: true}
	fs := parse(t, &d, "--no-refresh")
	if err := d.ValidateFlags(fs); err != nil {
		t.Fatal(err)
	}
	if d.Refresh {
		t.Error("--no-refresh should clear Refresh")
	}
}

func TestRefreshFlagsAreExclusive(t *testing.T) {
	var d Datafetch
	fs := parse(t, &d, "--refresh", "--no-refresh")
	if err := d.ValidateFlags(fs); err == nil {
		t.Error("--refresh with --no-refresh should be rejected")
	}
}

func TestDefaults(t *testing.T) {
	conf := NewConfig()
	if conf.Datafetch.DataDir == "" {
		t.Error("no default data dir")
	}
	if conf.Datafetch.Downloader.Type != "wget" {
		t.Errorf("default backend = %v, want wget", conf.Datafetch.Downloader.Type)
	}
	if conf.Datafetch.Refresh {
		t.Error("refresh should default to off")
	}
}
