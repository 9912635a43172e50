package utils

import (
	"fmt"
	"strings"
	"time"
)

// ExportFilename builds the attachment name for a generated export, e.g.
// nutritional_export_2025-08-31-14-02-59.csv. Colons and the literal "T" of
// the UTC timestamp are replaced with hyphens so the name survives every filesystem.
func ExportFilename(prefix, extension string, now time.Time) string {
	stamp := now.UTC().Format("2006-01-02T15:04:05")
	stamp = strings.NewReplacer(":", "-", "T", "-").Replace(stamp)
	return fmt.Sprintf("%s_%s.%s", prefix, stamp, extension)
}
