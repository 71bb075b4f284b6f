// Package main demonstrates basic usage of the console library.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/nao1215/console"
)

func main() {
	// Create a console with default settings: the builtins help, history,
	// and quit, plus echo for everything else.
	c, err := console.New(">>> ")
	if err != nil {
		log.Fatal(err)
	}
	defer c.Close()

	fmt.Println("Basic Console Example")
	fmt.Println("Type 'quit' or press Ctrl+D to exit")
	fmt.Println("Use Tab for completion and ↑/↓ for history")
	fmt.Println()

	if err := c.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Goodbye!")
}
