package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Tinerou/7tv-emotes-obsidian-plugin-sub000/internal/emotes"
	"github.com/Tinerou/7tv-emotes-obsidian-plugin-sub000/internal/settings"
)

// fallbackCmd prints the literal fallback fragment. It deliberately never
// consults the mapping store, so it works with no account configured and no
// network.
func fallbackCmd(args []string) {
	fs := flag.NewFlagSet("fallback", flag.ContinueOnError)
	fs.SetOutput(os.Stdout)
	settingsPath := fs.String("settings", settings.DefaultPath(), "Path to the settings file")
	if err := fs.Parse(args); err != nil {
		os.Exit(2)
	}
	cfg, _ := settings.Load(*settingsPath)
	fmt.Println(emotes.FallbackFragment(cfg.CDNBase))
}

// setAccountCmd updates the account id in the settings file. A running
// console picks the change up through the settings watcher and refreshes.
func setAccountCmd(args []string) {
	fs := flag.NewFlagSet("set-account", flag.ContinueOnError)
	fs.SetOutput(os.Stdout)
	settingsPath := fs.String("settings", settings.DefaultPath(), "Path to the settings file")
	if err := fs.Parse(args); err != nil {
		os.Exit(2)
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: emotetab set-account <account-id>")
		os.Exit(2)
	}
	id := fs.Arg(0)
	settings.WarnAccountID(id)

	cfg, err := settings.Load(*settingsPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load settings:", err)
	}
	cfg.AccountID = id
	if err := settings.Save(*settingsPath, cfg); err != nil {
		fmt.Fprintln(os.Stderr, "save settings:", err)
		os.Exit(1)
	}
	fmt.Println("account id saved to", *settingsPath)
}

// fetchCmd resolves an emote name through the configured account and
// downloads its image into the local cache, printing the file path.
func fetchCmd(args []string) {
	fs := flag.NewFlagSet("fetch", flag.ContinueOnError)
	fs.SetOutput(os.Stdout)
	settingsPath := fs.String("settings", settings.DefaultPath(), "Path to the settings file")
	if err := fs.Parse(args); err != nil {
		os.Exit(2)
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: emotetab fetch <name>")
		os.Exit(2)
	}
	name := fs.Arg(0)

	cfg, err := settings.Load(*settingsPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load settings:", err)
	}
	settings.WarnAccountID(cfg.AccountID)

	resolver := emotes.NewResolver()
	resolver.Service = cfg.Service
	resolver.Provider = cfg.Provider
	m := resolver.Resolve(context.Background(), cfg.AccountID)

	id, ok := m.Get(name)
	if !ok {
		fmt.Fprintln(os.Stderr, "unknown emote:", name)
		os.Exit(1)
	}
	cacheDir := filepath.Join(filepath.Dir(*settingsPath), "cache")
	path, err := emotes.FetchEmoteAsset(context.Background(), cfg.CDNBase, id, cacheDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "fetch:", err)
		os.Exit(1)
	}
	fmt.Println(path)
}
