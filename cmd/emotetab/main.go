package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Tinerou/7tv-emotes-obsidian-plugin-sub000/internal/cli"
)

const version = "0.1.0"

func printHelp() {
	fmt.Print(`Emotetab is an inline autocomplete engine for :name emote codes.

Usage: emotetab [global options] <subcommand> [args]

Available commands:
  help        Show this help output, or the help for a specified subcommand
  version     Show the current Emotetab version
  console     Try emote completion at an interactive prompt
  fallback    Print the literal fallback emote fragment
  set-account Save the account id used for emote lookups
  fetch       Download an emote image into the local cache
`)
}

func main() {
	flag.Usage = printHelp
	flagHelp := flag.Bool("help", false, "Show help")
	flag.Parse()

	args := flag.Args()

	if *flagHelp || len(args) == 0 || args[0] == "help" {
		printHelp()
		os.Exit(0)
	}

	switch args[0] {
	case "version":
		fmt.Println("Emotetab", version)
		os.Exit(0)
	case "console":
		cli.RunConsoleCommand(args[1:])
		os.Exit(0)
	case "fallback":
		fallbackCmd(args[1:])
		os.Exit(0)
	case "set-account":
		setAccountCmd(args[1:])
		os.Exit(0)
	case "fetch":
		fetchCmd(args[1:])
		os.Exit(0)
	}

	fmt.Fprintln(os.Stderr, "Unknown command: ", args[0])
	printHelp()
	os.Exit(1)
}
