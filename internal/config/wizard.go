package config

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/learnsite/internal/content"
)

// detectContentDir returns the first candidate directory that holds course
// documents, or "." when none does.
func detectContentDir(candidates ...string) string {
	for _, dir := range candidates {
		if _, err := os.Stat(filepath.Join(dir, path.Dir(content.CoursesGlob))); err == nil {
			return dir
		}
	}
	return "."
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to configPath.
func RunWizard(configPath string) (*Config, error) {
	fmt.Println("Welcome to learnsite! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Content location.
	contentPrompt := promptui.Prompt{
		Label:   "Content directory (holding courses/ and data/)",
		Default: detectContentDir(".", "content", "site"),
	}
	contentDir, err := contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}
	cfg.ContentDir = strings.TrimSpace(contentDir)

	// 2. Default course.
	coursePrompt := promptui.Prompt{
		Label:   "Default course",
		Default: cfg.DefaultCourse,
	}
	course, err := coursePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("default course: %w", err)
	}
	cfg.DefaultCourse = strings.TrimSpace(course)

	// 3. State storage.
	storePrompt := promptui.Select{
		Label: "Where should progress and theme be stored",
		Items: []string{
			"sqlite   - a local database file",
			"memory   - lost on restart",
			"redis    - shared redis server",
			"disabled - nothing is remembered",
		},
	}
	storeIdx, _, err := storePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("store selection: %w", err)
	}
	drivers := []StoreDriver{StoreSQLite, StoreMemory, StoreRedis, StoreDisabled}
	cfg.Store.Driver = drivers[storeIdx]

	if cfg.Store.Driver == StoreRedis {
		redisPrompt := promptui.Prompt{
			Label:   "Redis address",
			Default: "localhost:6379",
		}
		addr, err := redisPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("redis address: %w", err)
		}
		cfg.Store.RedisAddr = strings.TrimSpace(addr)
	}

	// 4. Static build output.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for static builds",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = strings.TrimSpace(outputDir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, nil
}
