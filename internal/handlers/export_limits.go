package handlers

import (
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

const (
	defaultExportsBasePath      = "./exports"
	defaultExportRetentionCount = 20
)

func resolveExportsBasePath() string {
	value := strings.TrimSpace(os.Getenv("TRAVEL_EXPORTS_PATH"))
	if value == "" {
		return defaultExportsBasePath
	}
	return value
}

func resolveExportRetentionCount() int {
	raw := strings.TrimSpace(os.Getenv("TRAVEL_EXPORT_RETENTION"))
	if raw == "" {
		return defaultExportRetentionCount
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return defaultExportRetentionCount
	}

	return value
}

// pruneOldExports removes the oldest export artifacts beyond the retention
// count. Export filenames embed their creation timestamp, so lexicographic
// order is chronological.
func pruneOldExports(dir string, keep int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var exports []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, "itineraries_") && strings.HasSuffix(name, ".pdf") {
			exports = append(exports, name)
		}
	}

	if len(exports) <= keep {
		return
	}

	sort.Strings(exports)
	for _, name := range exports[:len(exports)-keep] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			log.Printf("Error pruning old export %s: %v", name, err)
		}
	}
}
