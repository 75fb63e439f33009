package config

import (
	"context"

	"github.com/fsnotify/fsnotify"
)

// Watch re-loads the config file on every write and hands the result to
// onChange. It blocks until ctx is done; callers run it in a goroutine and
// must serialize onChange into their own event loop.
func Watch(ctx context.Context, onChange func(*Config)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(ConfigPath()); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e, ok := <-w.Events:
			if !ok {
				return nil
			}
			if e.Op&fsnotify.Write == fsnotify.Write {
				if cfg, err := LoadConfig(); err == nil {
					onChange(cfg)
				}
			}
		case _, ok := <-w.Errors:
			if !ok {
				return nil
			}
		}
	}
}
