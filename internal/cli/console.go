package cli

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/Tinerou/7tv-emotes-obsidian-plugin-sub000/internal/emotes"
	"github.com/Tinerou/7tv-emotes-obsidian-plugin-sub000/internal/monitor"
	"github.com/Tinerou/7tv-emotes-obsidian-plugin-sub000/internal/settings"
)

// RunConsoleCommand wires the console demo host: load settings, kick off the
// initial mapping refresh, watch the settings file, and hand control to the
// REPL.
func RunConsoleCommand(args []string) {
	fs := flag.NewFlagSet("console", flag.ContinueOnError)
	fs.SetOutput(os.Stdout)
	settingsPath := fs.String("settings", settings.DefaultPath(), "Path to the settings file")
	appVersion := fs.String("app-version", "", "Host application version for the manifest compatibility check")
	noWatch := fs.Bool("no-watch", false, "Disable settings file watching")
	if err := fs.Parse(args); err != nil {
		os.Exit(2)
	}

	log.Println("Starting emotetab console (type :name for suggestions; auto-refresh on settings changes)")

	cfg, err := settings.Load(*settingsPath)
	if err != nil {
		log.Printf("[warn] load settings: %v\n", err)
	}
	settings.WarnAccountID(cfg.AccountID)
	manifest := settings.LoadManifest(filepath.Join(filepath.Dir(*settingsPath), "manifest.json"))
	settings.CheckHostVersionWarn(manifest, *appVersion)

	store := emotes.NewStore()
	resolver := emotes.NewResolver()
	resolver.Service = cfg.Service
	resolver.Provider = cfg.Provider

	// refresh reloads settings (the account id may have changed), runs the
	// two-step lookup, and swaps in the result when it carries anything
	// beyond the fallback. A failed or empty refresh leaves the store alone.
	refresh := func() {
		cur, err := settings.Load(*settingsPath)
		if err != nil {
			log.Printf("[warn] reload settings: %v\n", err)
			return
		}
		settings.WarnAccountID(cur.AccountID)
		resolver.Service = cur.Service
		resolver.Provider = cur.Provider
		if cur.AccountID == "" {
			return
		}
		m := resolver.Resolve(context.Background(), cur.AccountID)
		if m.Len() > 1 {
			store.Swap(m)
		}
	}

	replCh := make(chan struct{}, 1)
	if cfg.AccountID != "" {
		go func() {
			refresh()
			select {
			case replCh <- struct{}{}:
			default:
			}
		}()
	}

	if !*noWatch {
		watchCh := make(chan struct{}, 1)
		monitor.WatchSettingsFile(*settingsPath, watchCh)
		go func() {
			for range watchCh {
				refresh()
				select {
				case replCh <- struct{}{}:
				default:
				}
			}
		}()
	}

	historyPath := filepath.Join(filepath.Dir(*settingsPath), ".emotetab_history")
	RunREPL(store, cfg.CDNBase, historyPath, replCh)
}
