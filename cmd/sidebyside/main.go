package main

import (
	"log"

	"github.com/AlexJMohr/svelte-vs-vue/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
