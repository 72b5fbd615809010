package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch reloads the configuration whenever the .env file under path is
// written or replaced, and hands the fresh value to onChange. It blocks
// until ctx is done.
//
// The directory is watched rather than the file so that editors which save
// by rename are still picked up.
func Watch(ctx context.Context, path string, logger *zap.Logger, onChange func(*Config)) error {
	envPath := EnvPath(path)
	dir := filepath.Dir(envPath)
	name := filepath.Base(envPath)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := LoadConfig(path)
			if err != nil {
				logger.Warn("Config reload failed", zap.String("file", event.Name), zap.Error(err))
				continue
			}
			logger.Info("Config reloaded", zap.String("file", event.Name))
			onChange(cfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Config watcher error", zap.Error(err))
		}
	}
}
