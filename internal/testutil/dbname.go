package testutil

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"
)

// maxDatabaseNameLength is MongoDB's limit on database names, in bytes.
const maxDatabaseNameLength = 63

// invalidDatabaseChars are rejected by MongoDB in database names on some platform.
const invalidDatabaseChars = `/\. "$*<>:|?`

var databaseSeq atomic.Uint64

// DatabaseName turns a test name into a MongoDB database name that is unique within the
// test process. Characters MongoDB rejects become underscores and long names are cut
// so the unique suffix always fits.
func DatabaseName(testName string) string {
	suffix := fmt.Sprintf("_%d_%d", os.Getpid()%100000, databaseSeq.Add(1))

	var b strings.Builder
	for _, r := range testName {
		if r < 0x20 || r > 0x7e || strings.ContainsRune(invalidDatabaseChars, r) {
			b.WriteByte('_')
			continue
		}
		b.WriteRune(r)
	}

	name := b.String()
	if room := maxDatabaseNameLength - len(suffix); len(name) > room {
		name = name[:room]
	}
	return name + suffix
}
