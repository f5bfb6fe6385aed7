package config

import (
	"github.com/ziadkadry99/learnsite/internal/catalog"
	"github.com/ziadkadry99/learnsite/internal/content"
	"github.com/ziadkadry99/learnsite/internal/ui"
)

// DefaultPath is the configuration file read by every command.
const DefaultPath = ".learnsite.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ContentDir:    ".",
		Addr:          ":8080",
		SiteName:      "learnsite",
		DefaultCourse: "html",
		CoursesGlob:   content.CoursesGlob,
		TutorialsPath: content.DefaultTutorialsPath,
		ListCap:       catalog.DefaultCap,
		Store: StoreConfig{
			Driver: StoreSQLite,
			Path:   ".learnsite/state.db",
			Prefix: "learnsite:",
		},
		Highlighter:        HighlighterAuto,
		HighlightStyle:     "github",
		ScrollOffset:       ui.DefaultScrollOffset,
		ScrollTopThreshold: ui.DefaultScrollTopThreshold,
		LogMode:            "dev",
		OutputDir:          "public",
		MaxConcurrency:     5,
	}
}
