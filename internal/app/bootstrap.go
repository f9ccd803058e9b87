// internal/app/bootstrap.go
package app

import (
	"context"
	"fmt"
	"log"

	"go-hex-defense/internal/config"
	"go-hex-defense/internal/defs"
)

// LoadScenario reads the scenario and its definitions. An empty configPath
// means the built-in scenario; defsPath, when set, overrides the definitions
// file named by the scenario. With no definitions file the built-in library
// is used. The returned path is the definitions file actually read, if any.
func LoadScenario(configPath, defsPath string) (*config.Config, *defs.Library, string, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return nil, nil, "", err
		}
	}
	if defsPath == "" {
		defsPath = cfg.Definitions
	}
	if defsPath == "" {
		return cfg, defs.DefaultLibrary(), "", nil
	}
	lib, err := defs.LoadLibrary(defsPath)
	if err != nil {
		return nil, nil, "", fmt.Errorf("app: %w", err)
	}
	return cfg, lib, defsPath, nil
}

// WatchDefinitions reloads the definitions file whenever it changes, until
// ctx is done. A file that fails to load or validate is logged and the
// current definitions stay in effect.
func (g *Game) WatchDefinitions(ctx context.Context, path string) error {
	w, err := config.NewWatcher(path)
	if err != nil {
		return fmt.Errorf("app: watch %s: %w", path, err)
	}
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case file, ok := <-w.Events:
				if !ok {
					return
				}
				lib, err := defs.LoadLibrary(file)
				if err != nil {
					log.Printf("Error: reload definitions: %v", err)
					continue
				}
				if err := g.ApplyDefinitions(lib); err != nil {
					log.Printf("Error: apply definitions: %v", err)
					continue
				}
				log.Printf("Definitions reloaded from %s", file)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("Error: definitions watcher: %v", err)
			}
		}
	}()
	return nil
}
