//go:build !emotetabpoll

package monitor

import (
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchSettingsFile watches the directory holding the settings file and pokes
// refreshCh whenever the file changes. Watching the directory instead of the
// file survives the rename-into-place writes the settings saver performs.
// Events are debounced so an editor's write+rename burst fires once.
func WatchSettingsFile(path string, refreshCh chan<- struct{}) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		log.Println("[watch] disabled:", err)
		return
	}
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	if err := w.Add(dir); err != nil {
		log.Println("[watch] add", dir, ":", err)
		_ = w.Close()
		return
	}
	go func() {
		defer w.Close()
		const debounce = 75 * time.Millisecond
		var pending bool
		var lastFire time.Time
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) == base {
					pending = true
				}
				if pending && time.Since(lastFire) >= debounce {
					select {
					case refreshCh <- struct{}{}:
						lastFire = time.Now()
						pending = false
					default:
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("[watch] error: %v", err)
			}
		}
	}()
}
