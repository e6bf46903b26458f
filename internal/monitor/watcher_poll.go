//go:build emotetabpoll

package monitor

import (
	"os"
	"time"
)

// WatchSettingsFile (polling build) checks the settings file mtime once a
// second. Useful on filesystems where inotify is unavailable.
func WatchSettingsFile(path string, refreshCh chan<- struct{}) {
	go func() {
		var last time.Time
		if fi, err := os.Stat(path); err == nil {
			last = fi.ModTime()
		}
		for {
			time.Sleep(time.Second)
			fi, err := os.Stat(path)
			if err != nil {
				continue
			}
			if fi.ModTime().After(last) {
				last = fi.ModTime()
				select {
				case refreshCh <- struct{}{}:
				default:
				}
			}
		}
	}()
}
