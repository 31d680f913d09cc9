//go:build !tinygo

package config

import (
	"context"

	"github.com/fsnotify/fsnotify"
)

type logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Watch re-reads path whenever it changes and hands each successful load to
// apply, so layer-name edits reach the display without a restart. It blocks
// until ctx is done.
func Watch(ctx context.Context, path string, log logger, apply func(Config)) error {
	if path == "" {
		<-ctx.Done()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, lerr := Load(path)
			if lerr != nil {
				if log != nil {
					log.Errorf("config", "reload failed: %v", lerr)
				}
				continue
			}
			if log != nil {
				log.Infof("config", "reloaded %s", path)
			}
			apply(cfg)
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if log != nil {
				log.Errorf("config", "watch error: %v", werr)
			}
		}
	}
}
