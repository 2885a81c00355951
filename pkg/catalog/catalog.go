// Package catalog holds the static table of data files the
// ephemeris computation consumes.
package catalog

import (
	"fmt"
	"path/filepath"

	"github.com/Riviera71/ephemeris-compute-de430/pkg/fetcher"
)

const de430 = "https://ssd.jpl.nasa.gov/ftp/eph/planets/ascii/de430"

// Required lists every file to fetch, in download order. Orbital
// element catalogs change daily and are always refreshed; the DE430
// ephemeris is immutable and re-downloaded only on request.
func Required(dataDir string, refresh bool) []fetcher.FileSpec {
	files := []fetcher.FileSpec{
		{
			// Lowell asteroid orbit database
			URL:          "https://ftp.lowell.edu/pub/elgb/astorb.dat.gz",
			Destination:  filepath.Join(dataDir, "astorb.dat"),
			ForceRefresh: true,
		},
		{
			// MPC comet orbit catalog
			URL:          "https://www.minorplanetcenter.net/iau/MPCORB/AllCometEls.txt",
			Destination:  filepath.Join(dataDir, "Soft00Cmt.txt"),
			ForceRefresh: true,
		},
		{
			URL:          de430 + "/header.430_572",
			Destination:  filepath.Join(dataDir, "header.430"),
			ForceRefresh: refresh,
		},
	}

	// the DE430 ephemeris comes in one chunk per century
	for year := 1550; year <= 2550; year += 100 {
		name := fmt.Sprintf("ascp%04d.430", year)
		files = append(files, fetcher.FileSpec{
			URL:          de430 + "/" + name,
			Destination:  filepath.Join(dataDir, name),
			ForceRefresh: refresh,
		})
	}
	return files
}
