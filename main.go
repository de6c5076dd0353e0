package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/soocke/boxlabeler-go/app"
	"github.com/soocke/boxlabeler-go/config"
	"github.com/soocke/boxlabeler-go/debug"
	"github.com/soocke/boxlabeler-go/ui/presenter"
	"github.com/soocke/boxlabeler-go/ui/view"
)

func main() {
	cfgPath, pathErr := config.DefaultPath()
	cfg, cfgErr := config.Load(cfgPath)
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if pathErr != nil {
		logger.Warn("config path unavailable, using defaults", "error", pathErr)
	}
	if cfgErr != nil {
		logger.Warn("config load failed, using defaults", "path", cfgPath, "error", cfgErr)
	}

	folder, err := resolveFolder(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		logger.Error("startup", "error", err)
		os.Exit(1)
	}

	if cfg.Debug {
		debug.StartMemLogger(10*time.Second, logger)
		debug.StartGoroutineLogger(30*time.Second, logger)
	}

	application := app.NewApp(cfg, cfgPath, logger, folder)
	application.Start()
}

// resolveFolder returns the image folder from the single optional argument,
// or asks for one.
func resolveFolder(args []string) (string, error) {
	if len(args) > 0 {
		folder := args[0]
		if st, err := os.Stat(folder); err != nil || !st.IsDir() {
			return "", fmt.Errorf("%s is not a valid directory", folder)
		}
		return folder, nil
	}
	folder := view.ChooseFolder(presenter.FolderPickerTitle)
	if folder == "" {
		return "", errors.New("no folder selected")
	}
	return folder, nil
}
