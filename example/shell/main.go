// Package main provides a shell-like file explorer example built on the
// console library's command table.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/nao1215/console"
)

func main() {
	fmt.Println("Shell-like File Explorer Example")
	fmt.Println("================================")
	fmt.Println("Commands:")
	fmt.Println("  ls [path]    - List directory contents")
	fmt.Println("  cd [path]    - Change directory")
	fmt.Println("  pwd          - Show current directory")
	fmt.Println("  quit         - Exit")
	fmt.Println()
	fmt.Println("Use Tab to complete command names (double-Tab lists them)")
	fmt.Println("Use ↑/↓ arrow keys to recall previous commands")
	fmt.Println()

	c, err := console.New("shell> ",
		console.WithCommands(
			console.Command{Name: "ls", Description: "list directory contents", Run: runLs},
			console.Command{Name: "cd", Description: "change directory", Run: runCd},
			console.Command{Name: "pwd", Description: "print working directory", Run: runPwd},
		),
		console.WithMaxHistory(1000),
	)
	if err != nil {
		log.Fatalf("failed to create console: %v", err)
	}
	defer c.Close()

	if err := c.Run(context.Background()); err != nil {
		log.Fatalf("console error: %v", err)
	}
	fmt.Println("Goodbye!")
}

// arg returns everything after the command name, trimmed.
func arg(line string) string {
	if i := strings.IndexByte(line, ' '); i >= 0 {
		return strings.TrimSpace(line[i+1:])
	}
	return ""
}

func runLs(w io.Writer, line string) error {
	path := arg(line)
	if path == "" {
		path = "."
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			name += "/"
		}
		fmt.Fprintf(w, "  %s\r\n", name)
	}
	return nil
}

func runCd(w io.Writer, line string) error {
	path := arg(line)
	if path == "" {
		return fmt.Errorf("cd requires a directory argument")
	}
	if err := os.Chdir(path); err != nil {
		return err
	}
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "unknown"
	}
	fmt.Fprintf(w, "Changed to: %s\r\n", cwd)
	return nil
}

func runPwd(w io.Writer, line string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\r\n", cwd)
	return nil
}
