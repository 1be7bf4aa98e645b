package main

import (
	"log"

	"github.com/wohure/seeder/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
