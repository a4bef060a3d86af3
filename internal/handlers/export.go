package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Pooji-A/travelitineraryproject/internal/database"
	"github.com/Pooji-A/travelitineraryproject/internal/export"
	"github.com/Pooji-A/travelitineraryproject/internal/monitoring"
	"github.com/Pooji-A/travelitineraryproject/internal/store"
	"github.com/gin-gonic/gin"
)

// ExportItineraries renders the authenticated user's itineraries into a PDF,
// persists it under the exports directory, and returns it as an attachment.
// A user with no itineraries gets a notice instead of an artifact.
func ExportItineraries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	startedAt := time.Now()

	itineraries, err := store.ListItinerariesByOwner(database.DB, userID)
	if err != nil {
		log.Printf("Error retrieving itineraries for export: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving itineraries"})
		return
	}

	doc, err := export.BuildDocument(itineraries, startedAt)
	if err != nil {
		if errors.Is(err, export.ErrNothingToExport) {
			c.JSON(http.StatusOK, gin.H{"message": "No itineraries to download."})
			return
		}
		log.Printf("Error building export for user_id=%d: %v", userID, err)
		monitoring.RecordExport(0, time.Since(startedAt), false)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating export"})
		return
	}

	exportsDir := resolveExportsBasePath()
	if err := os.MkdirAll(exportsDir, 0o755); err != nil {
		log.Printf("Error creating exports directory %s: %v", exportsDir, err)
		monitoring.RecordExport(0, time.Since(startedAt), false)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving export"})
		return
	}

	outputPath := filepath.Join(exportsDir, doc.Filename)
	if err := os.WriteFile(outputPath, doc.Bytes, 0o644); err != nil {
		log.Printf("Error writing export %s: %v", outputPath, err)
		monitoring.RecordExport(0, time.Since(startedAt), false)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving export"})
		return
	}

	pruneOldExports(exportsDir, resolveExportRetentionCount())
	monitoring.RecordExport(int64(len(doc.Bytes)), time.Since(startedAt), true)

	c.Header("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	c.Header("X-Export-Pages", strconv.Itoa(doc.Pages))
	c.Header("X-Export-Blocks", strconv.Itoa(doc.Blocks))
	c.Data(http.StatusOK, "application/pdf", doc.Bytes)
}
