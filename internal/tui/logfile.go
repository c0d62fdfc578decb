package tui

import (
	"os"
	"path/filepath"
	"strings"
)

// GetLogFilePath returns the path to the log file.
// DETOUR_LOG_FILE wins over the configured path; an empty result disables file logging.
func GetLogFilePath(configured string) string {
	path := configured
	if customPath := os.Getenv("DETOUR_LOG_FILE"); customPath != "" {
		path = customPath
	}
	return expandHome(path)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}
