// Command tuning writes the default combat tuning file, the starting point
// for balance edits that the game hot-reloads with -tuning.
package main

import (
	"flag"
	"log"

	"github.com/milk9111/brawler/config"
)

func main() {
	out := flag.String("o", "combat.yaml", "output path")
	flag.Parse()

	if err := config.WriteDefault(*out); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", *out)
}
