package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// API carries the dependencies every handler needs. Nothing in here is
// request-scoped; gorm.DB is safe for concurrent use.
type API struct {
	db      *gorm.DB
	cfg     *Config
	uploads UploadConfig
}

func NewAPI(db *gorm.DB, cfg *Config) *API {
	return &API{
		db:      db,
		cfg:     cfg,
		uploads: UploadConfig{Root: cfg.UploadsRoot},
	}
}

func jsonError(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"success": false, "error": msg})
}

// pathID parses the numeric :id path param; ok is false for anything that
// is not a positive integer.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
