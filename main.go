package main

import (
	"fmt"
	"os"
	"strings"

	"cosmicdevspace/service"

	"github.com/joho/godotenv"
)

const cliVersion = "1.0.0"

var exit = os.Exit

func main() {
	RealMain()
}

// RealMain runs the CLI; split out from main so tests can drive it.
func RealMain() {
	// Environment overrides come from .env when present.
	godotenv.Load()

	if len(os.Args) < 2 {
		printHelp()
		exit(1)
		return
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("cosmicdevspace version %s\n", cliVersion)
	case "serve":
		service.RunAppServer(os.Args[2:])
	case "static":
		if len(os.Args) < 3 {
			fmt.Println("Error: static directory path is required for static command")
			exit(1)
			return
		}
		service.RunStaticServer(os.Args[2], ":8081")
	case "data":
		service.HandleCommand(os.Args[2:])
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		exit(1)
	}
}

func printHelp() {
	helpText := `Usage: cosmicdevspace <command> [options]
Commands:
  help                           Display this help message.
  version                        Show version information.
  serve                          Run the Cosmic DevSpace API server.
  static <static_directory>      Run a static file server for the frontend assets.
  data <subcommand>              Manage the database (init, clean, backup, restore).
`
	fmt.Println(helpText)
}
