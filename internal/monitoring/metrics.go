package monitoring

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/Pooji-A/travelitineraryproject/internal/database"
)

const defaultExportsPath = "./exports"

// Service holds runtime context for monitoring and reporting.
type Service struct {
	startedAt time.Time
}

type Snapshot struct {
	TimestampUTC          string  `json:"timestamp_utc"`
	UptimeSeconds         int64   `json:"uptime_seconds"`
	HTTPActiveRequests    int64   `json:"http_active_requests"`
	HTTPTotalRequests     uint64  `json:"http_total_requests"`
	DBOpenConnections     int     `json:"db_open_connections"`
	DBInUseConnections    int     `json:"db_in_use_connections"`
	DBWaitCount           int64   `json:"db_wait_count"`
	Goroutines            int     `json:"goroutines"`
	GoMemoryAllocBytes    uint64  `json:"go_memory_alloc_bytes"`
	GoMemorySysBytes      uint64  `json:"go_memory_sys_bytes"`
	GoHeapInUseBytes      uint64  `json:"go_heap_in_use_bytes"`
	GoGCCount             uint32  `json:"go_gc_count"`
	UsersTotal            int64   `json:"users_total"`
	ItinerariesTotal      int64   `json:"itineraries_total"`
	SessionsActive        int64   `json:"sessions_active"`
	DBSizeBytes           int64   `json:"db_size_bytes"`
	ExportsTotal          uint64  `json:"exports_total"`
	ExportsFailed         uint64  `json:"exports_failed"`
	ExportBytesTotal      int64   `json:"export_bytes_total"`
	ExportAvgDurationMS   float64 `json:"export_avg_duration_ms"`
	ExportsDirSizeBytes   int64   `json:"exports_dir_size_bytes"`
	ExportsDirFilesCount  int64   `json:"exports_dir_files_count"`
	ExportsFSTotalBytes   uint64  `json:"exports_fs_total_bytes"`
	ExportsFSFreeBytes    uint64  `json:"exports_fs_free_bytes"`
}

func NewService(startedAt time.Time) *Service {
	return &Service{startedAt: startedAt}
}

func (s *Service) StatusText() string {
	dbState := "ok"
	if err := database.DB.Ping(); err != nil {
		dbState = "error: " + err.Error()
	}

	uptime := time.Since(s.startedAt).Round(time.Second)
	activeHTTP, totalHTTP := getHTTPStats()
	generic := database.DB.Stats()

	return strings.Join([]string{
		"Travel Planner Server Status",
		fmt.Sprintf("Uptime: %s", uptime),
		fmt.Sprintf("DB: %s", dbState),
		fmt.Sprintf("HTTP active requests: %d", activeHTTP),
		fmt.Sprintf("HTTP total requests: %d", totalHTTP),
		fmt.Sprintf("DB open connections: %d", generic.OpenConnections),
		fmt.Sprintf("Go goroutines: %d", runtime.NumGoroutine()),
	}, "\n")
}

func (s *Service) StorageText() string {
	var dbSizeBytes int64
	_ = database.DB.QueryRow(`SELECT COALESCE(pg_database_size(current_database()), 0)`).Scan(&dbSizeBytes)

	exportsDir := getExportsDir()
	exportsBytes := dirSize(exportsDir)
	exportsFiles := dirFileCount(exportsDir)
	exportsTotal, exportsFree := fsUsage(exportsDir)
	exportStats := getExportStats()

	return strings.Join([]string{
		"Travel Planner Storage",
		fmt.Sprintf("PostgreSQL DB size: %s", formatBytes(dbSizeBytes)),
		fmt.Sprintf("Exports folder size (%s): %s", exportsDir, formatBytes(exportsBytes)),
		fmt.Sprintf("Exports files count: %d", exportsFiles),
		fmt.Sprintf("Exports generated: %d (failed: %d)", exportStats.RequestsTotal, exportStats.FailedTotal),
		fmt.Sprintf("Exports bytes written: %s", formatBytes(exportStats.BytesTotal)),
		fmt.Sprintf("Exports disk free: %s", formatBytes(int64(exportsFree))),
		fmt.Sprintf("Exports disk total: %s", formatBytes(int64(exportsTotal))),
	}, "\n")
}

func (s *Service) ConnectionsText() string {
	stats := database.DB.Stats()
	activeHTTP, totalHTTP := getHTTPStats()

	return strings.Join([]string{
		"Travel Planner Connections",
		fmt.Sprintf("DB MaxOpenConnections: %d", stats.MaxOpenConnections),
		fmt.Sprintf("DB OpenConnections: %d", stats.OpenConnections),
		fmt.Sprintf("DB InUse: %d", stats.InUse),
		fmt.Sprintf("DB Idle: %d", stats.Idle),
		fmt.Sprintf("DB WaitCount: %d", stats.WaitCount),
		fmt.Sprintf("HTTP active requests: %d", activeHTTP),
		fmt.Sprintf("HTTP total requests: %d", totalHTTP),
	}, "\n")
}

func (s *Service) RuntimeText() string {
	var memory runtime.MemStats
	runtime.ReadMemStats(&memory)

	return strings.Join([]string{
		"Travel Planner Runtime",
		fmt.Sprintf("Go version: %s", runtime.Version()),
		fmt.Sprintf("CPU cores: %d", runtime.NumCPU()),
		fmt.Sprintf("Goroutines: %d", runtime.NumGoroutine()),
		fmt.Sprintf("Memory alloc: %s", formatBytes(int64(memory.Alloc))),
		fmt.Sprintf("Memory sys: %s", formatBytes(int64(memory.Sys))),
		fmt.Sprintf("Heap in use: %s", formatBytes(int64(memory.HeapInuse))),
		fmt.Sprintf("GC cycles: %d", memory.NumGC),
	}, "\n")
}

func (s *Service) UsersText() string {
	var usersTotal int64
	_ = database.DB.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&usersTotal)

	var usersNew24h int64
	_ = database.DB.QueryRow(`SELECT COUNT(*) FROM users WHERE created_at >= NOW() - INTERVAL '24 hours'`).Scan(&usersNew24h)

	var itinerariesTotal int64
	_ = database.DB.QueryRow(`SELECT COUNT(*) FROM itineraries`).Scan(&itinerariesTotal)

	var sessionsActive int64
	_ = database.DB.QueryRow(`SELECT COUNT(*) FROM sessions WHERE expires_at >= NOW()`).Scan(&sessionsActive)

	return strings.Join([]string{
		"Travel Planner Users",
		fmt.Sprintf("Users total: %d", usersTotal),
		fmt.Sprintf("Users created in 24h: %d", usersNew24h),
		fmt.Sprintf("Itineraries total: %d", itinerariesTotal),
		fmt.Sprintf("Active sessions: %d", sessionsActive),
	}, "\n")
}

func (s *Service) Snapshot() Snapshot {
	stats := database.DB.Stats()
	activeHTTP, totalHTTP := getHTTPStats()
	exportsDir := getExportsDir()
	exportsTotal, exportsFree := fsUsage(exportsDir)
	exportStats := getExportStats()

	var memory runtime.MemStats
	runtime.ReadMemStats(&memory)

	snap := Snapshot{
		TimestampUTC:         time.Now().UTC().Format(time.RFC3339),
		UptimeSeconds:        int64(time.Since(s.startedAt).Seconds()),
		HTTPActiveRequests:   activeHTTP,
		HTTPTotalRequests:    totalHTTP,
		DBOpenConnections:    stats.OpenConnections,
		DBInUseConnections:   stats.InUse,
		DBWaitCount:          int64(stats.WaitCount),
		Goroutines:           runtime.NumGoroutine(),
		GoMemoryAllocBytes:   memory.Alloc,
		GoMemorySysBytes:     memory.Sys,
		GoHeapInUseBytes:     memory.HeapInuse,
		GoGCCount:            memory.NumGC,
		ExportsTotal:         exportStats.RequestsTotal,
		ExportsFailed:        exportStats.FailedTotal,
		ExportBytesTotal:     exportStats.BytesTotal,
		ExportAvgDurationMS:  exportStats.AvgDurationMS,
		ExportsDirSizeBytes:  dirSize(exportsDir),
		ExportsDirFilesCount: dirFileCount(exportsDir),
		ExportsFSTotalBytes:  exportsTotal,
		ExportsFSFreeBytes:   exportsFree,
	}

	_ = database.DB.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&snap.UsersTotal)
	_ = database.DB.QueryRow(`SELECT COUNT(*) FROM itineraries`).Scan(&snap.ItinerariesTotal)
	_ = database.DB.QueryRow(`SELECT COUNT(*) FROM sessions WHERE expires_at >= NOW()`).Scan(&snap.SessionsActive)
	_ = database.DB.QueryRow(`SELECT COALESCE(pg_database_size(current_database()), 0)`).Scan(&snap.DBSizeBytes)

	return snap
}

func (s *Service) HelpText() string {
	return strings.Join([]string{
		"Travel Planner monitor commands:",
		"/status - server status",
		"/storage - storage and export metrics",
		"/connections - DB and HTTP connections",
		"/users - users and itinerary stats",
		"/all - full report",
		"/help - this help",
	}, "\n")
}

func (s *Service) AllText() string {
	return strings.Join([]string{
		s.StatusText(),
		"",
		s.StorageText(),
		"",
		s.ConnectionsText(),
		"",
		s.RuntimeText(),
		"",
		s.UsersText(),
	}, "\n")
}

func getExportsDir() string {
	value := os.Getenv("TRAVEL_EXPORTS_PATH")
	if value == "" {
		return defaultExportsPath
	}
	return value
}

func dirSize(path string) int64 {
	var total int64
	_ = filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		info, infoErr := d.Info()
		if infoErr != nil {
			return nil
		}
		total += info.Size()
		return nil
	})
	return total
}

func dirFileCount(path string) int64 {
	var total int64
	_ = filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		total++
		return nil
	})
	return total
}

func formatBytes(value int64) string {
	units := []string{"B", "KB", "MB", "GB", "TB"}
	size := float64(value)
	unit := 0

	for size >= 1024 && unit < len(units)-1 {
		size /= 1024
		unit++
	}

	if unit == 0 {
		return fmt.Sprintf("%d %s", value, units[unit])
	}
	return fmt.Sprintf("%.2f %s", size, units[unit])
}
