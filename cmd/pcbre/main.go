// Command pcbre derives passive footprints and manages project documents.
package main

import (
	"log"

	"pcb-reveng/cmd/pcbre/cmd"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	cmd.Execute()
}
