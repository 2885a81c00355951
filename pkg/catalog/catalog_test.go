package catalog

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestRequired(t *testing.T) {
	files := Required("data", false)

	// 3 named files plus the 11 DE430 century chunks
	if len(files) != 14 {
		t.Fatalf("len = %v, want 14", len(files))
	}

	if !strings.HasSuffix(files[0].URL, "astorb.dat.gz") || !files[0].ForceRefresh {
		t.Errorf("astorb entry wrong: %+v", files[0])
	}
	if files[0].Destination != filepath.Join("data", "astorb.dat") {
		t.Errorf("astorb destination = %v", files[0].Destination)
	}
	if !strings.HasSuffix(files[1].URL, "AllCometEls.txt") || !files[1].ForceRefresh {
		t.Errorf("comet entry wrong: %+v", files[1])
	}
	if files[1].Destination != filepath.Join("data", "Soft00Cmt.txt") {
		t.Errorf("comet destination = %v", files[1].Destination)
	}

	// the ephemeris itself is kept unless a refresh is asked for
	for _, f := range files[2:] {
		if f.ForceRefresh {
			t.Errorf("%v should not be force-refreshed by default", f.Destination)
		}
	}

	if files[3].Destination != filepath.Join("data", "ascp1550.430") {
		t.Errorf("first chunk = %v", files[3].Destination)
	}
	if last := files[len(files)-1]; last.Destination != filepath.Join("data", "ascp2550.430") {
		t.Errorf("last chunk = %v", last.Destination)
	}
}

func TestRequiredRefresh(t *testing.T) {
	for _, f := range Required("data", true) {
		if !f.ForceRefresh {
			t.Errorf("%v should be force-refreshed with refresh on", f.Destination)
		}
	}
}
