package timestamp

import (
	"os"
	"sort"
)

// Candidate zoneinfo locations, mirroring the lookup order of the
// standard library's time package.
var zoneDirs = []string{
	"/usr/share/zoneinfo",
	"/usr/share/lib/zoneinfo",
	"/usr/lib/locale/TZ",
}

// fallbackZones is served when no zoneinfo database is available: UTC
// plus a representative major city per region.
var fallbackZones = []string{
	"UTC",
	"America/New_York",
	"Europe/London",
	"Europe/Paris",
	"Asia/Shanghai",
	"Asia/Tokyo",
}

// Zones enumerates the IANA timezone identifiers available on the host,
// sorted. Without a system zoneinfo database it falls back to a fixed
// short list.
func Zones() []string {
	for _, dir := range zoneDirs {
		zones := readZoneDir(dir, "", nil)
		if len(zones) > 0 {
			sort.Strings(zones)
			return zones
		}
	}

	return append([]string(nil), fallbackZones...)
}

// readZoneDir collects zone names under dir/prefix. Entries that do not
// start with an uppercase letter (posix/, right/, zone.tab, ...) are
// not zone identifiers and are skipped.
func readZoneDir(dir, prefix string, zones []string) []string {
	path := dir
	if prefix != "" {
		path = dir + "/" + prefix
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return zones
	}

	for _, entry := range entries {
		name := entry.Name()
		if name[0] < 'A' || name[0] > 'Z' {
			continue
		}

		full := name
		if prefix != "" {
			full = prefix + "/" + name
		}

		if entry.IsDir() {
			zones = readZoneDir(dir, full, zones)
		} else {
			zones = append(zones, full)
		}
	}

	return zones
}
