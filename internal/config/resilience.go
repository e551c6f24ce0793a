package config

import (
	"time"

	"bgg_sheet_sync/internal/retry"
)

// ResilienceConfig groups the retry presets for spreadsheet I/O. Browser
// navigation is deliberately absent: a lookup runs against one freshly loaded
// page and is never retried.
type ResilienceConfig struct {
	SheetRead  retry.Config
	SheetWrite retry.Config
}

var DefaultResilienceConfig = ResilienceConfig{
	SheetRead: retry.Config{
		MaxRetries: 3,
		BaseDelay:  2 * time.Second,
		MaxDelay:   30 * time.Second,
		Timeout:    15 * time.Second,
	},
	SheetWrite: retry.Config{
		MaxRetries: 2,
		BaseDelay:  1 * time.Second,
		MaxDelay:   15 * time.Second,
		Timeout:    15 * time.Second,
	},
}
