package main

import (
	"os"

	"github.com/spsquad/sps-api/app/cmd/schema"
)

func listCommands() {
	println("Commands")
	println("\tschema\t\t\t- Manages the database schema")
	println("\thelp\t\t\t- Print the commands available")
}

func main() {
	if len(os.Args) < 2 {
		listCommands()
		return
	}
	switch os.Args[1] {
	case "schema":
		schema.Run(os.Args[2:])
	case "help":
		fallthrough
	default:
		listCommands()
	}
}
