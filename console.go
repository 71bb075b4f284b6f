// Package console provides an interactive line-input engine for
// character-at-a-time terminals, with history recall and trie-based
// prefix auto-completion.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-colorable"
)

// DefaultAlphabet is the character set commands may be built from when no
// alphabet is configured.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789-_"

// Command is one entry of the console's command table. The table is plain
// configuration: the console registers each name in the completion trie and
// invokes Run when a submitted line starts with the name.
type Command struct {
	Name        string                               // the word registered for completion and dispatch
	Description string                               // shown by the help builtin
	Run         func(w io.Writer, line string) error // invoked with the full submitted line
}

// Config holds the configuration for a console.
type Config struct {
	Prefix      string       // Prompt prefix (e.g., "$ ")
	Alphabet    string       // Characters allowed in command names (empty for DefaultAlphabet)
	Commands    []Command    // Command table (builtins help/history/quit are always present)
	ColorScheme *ColorScheme // Color scheme (nil for default)
	MaxHistory  int          // Maximum history entries kept in memory (default: 1000)
	Output      io.Writer    // Output writer (nil for stdout)
}

// Option represents a configuration option for the console
type Option func(*Config)

// WithCommands sets the command table.
func WithCommands(commands ...Command) Option {
	return func(c *Config) {
		c.Commands = append(c.Commands, commands...)
	}
}

// WithAlphabet sets the characters command names may be built from. Words
// inserted into the completion trie must be drawn from this set.
func WithAlphabet(alphabet string) Option {
	return func(c *Config) {
		c.Alphabet = alphabet
	}
}

// WithColorScheme sets the color scheme
func WithColorScheme(scheme *ColorScheme) Option {
	return func(c *Config) {
		c.ColorScheme = scheme
	}
}

// WithMaxHistory sets the in-memory history limit.
func WithMaxHistory(maxEntries int) Option {
	return func(c *Config) {
		c.MaxHistory = maxEntries
	}
}

// WithOutput redirects terminal output, primarily for tests.
func WithOutput(w io.Writer) Option {
	return func(c *Config) {
		c.Output = w
	}
}

// Console assembles the line editor, history navigator, and completion trie
// around a command table and runs the read-dispatch loop.
type Console struct {
	config   Config
	output   io.Writer
	terminal terminalInterface
	trie     *Trie
	history  *History
	editor   *editor
}

// builtins are always present in the command table and the completion trie.
var builtins = []Command{
	{Name: "help", Description: "list available commands"},
	{Name: "history", Description: "show previously entered lines"},
	{Name: "quit", Description: "exit the console"},
}

// New creates a console reading from the controlling terminal.
//
// Example:
//
//	c, err := console.New("$ ",
//		console.WithCommands(
//			console.Command{Name: "status", Description: "show status"},
//		),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer c.Close()
//
//	if err := c.Run(context.Background()); err != nil {
//		log.Fatal(err)
//	}
func New(prefix string, options ...Option) (*Console, error) {
	config := Config{Prefix: prefix}
	for _, option := range options {
		option(&config)
	}

	terminal, err := newRealTerminal()
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}
	return newFromConfig(config, terminal)
}

func newFromConfig(config Config, terminal terminalInterface) (*Console, error) {
	if config.Alphabet == "" {
		config.Alphabet = DefaultAlphabet
	}
	if config.ColorScheme == nil {
		config.ColorScheme = ThemeDefault
	}
	if config.MaxHistory <= 0 {
		config.MaxHistory = defaultMaxHistory
	}

	// Setup output writer with color support
	var output io.Writer = os.Stdout
	if runtime.GOOS == "windows" {
		// Use colorable for Windows ANSI color support
		output = colorable.NewColorableStdout()
	}
	if config.Output != nil {
		output = config.Output
	}

	trie, err := NewTrie(config.Alphabet)
	if err != nil {
		return nil, fmt.Errorf("failed to build completion trie: %w", err)
	}
	for _, cmd := range append(append([]Command{}, builtins...), config.Commands...) {
		if err := trie.Insert(cmd.Name); err != nil {
			return nil, fmt.Errorf("failed to register command: %w", err)
		}
	}

	history := NewHistory(config.MaxHistory)

	c := &Console{
		config:   config,
		output:   output,
		terminal: terminal,
		trie:     trie,
		history:  history,
	}
	c.editor = &editor{
		keys:    terminal,
		buffer:  NewLineBuffer(output),
		history: history,
		trie:    trie,
		out:     output,
		scheme:  config.ColorScheme,
		prefix:  config.Prefix,
		width: func() int {
			w, _, _ := terminal.Size()
			return w
		},
	}
	return c, nil
}

// ReadLine shows the prompt and reads one edited line from the terminal.
// It enters raw mode for the duration of the read and restores the
// original terminal settings before returning. The submitted line is not
// recorded in history; callers that want recall must call AddHistory (the
// Run loop does this itself).
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	if err := c.terminal.SetRaw(); err != nil {
		return "", fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer func() {
		if err := c.terminal.Restore(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to exit raw mode: %v\n", err)
		}
	}()

	writePrefix(c.output, c.config.ColorScheme, c.config.Prefix)
	return c.editor.ReadLine(ctx)
}

// Run starts the read-dispatch loop: show the prompt, read a line, record
// it, and dispatch it to the command table. The loop ends cleanly on the
// quit builtin, Ctrl+D, or Ctrl+C; any other error is returned.
func (c *Console) Run(ctx context.Context) error {
	for {
		line, err := c.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, ErrEOF) || errors.Is(err, ErrInterrupted) {
				return nil
			}
			return err
		}

		c.history.Record(line)

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" {
			return nil
		}
		c.dispatch(line)
	}
}

// dispatch routes a submitted line to the matching command, or echoes it
// back when nothing matches.
func (c *Console) dispatch(line string) {
	name := line
	if i := strings.IndexByte(line, ' '); i >= 0 {
		name = line[:i]
	}

	switch name {
	case "history":
		for _, entry := range c.history.Entries() {
			fmt.Fprintf(c.output, "%s\r\n", entry)
		}
		return
	case "help":
		c.printHelp()
		return
	}

	for _, cmd := range c.config.Commands {
		if cmd.Name != name {
			continue
		}
		if cmd.Run != nil {
			if err := cmd.Run(c.output, line); err != nil {
				fmt.Fprintf(c.output, "%s: %v\r\n", name, err)
			}
		}
		return
	}

	fmt.Fprintf(c.output, "You typed: %s\r\n", line)
}

// printHelp lists every registered command in completion order.
func (c *Console) printHelp() {
	descriptions := make(map[string]string, len(builtins)+len(c.config.Commands))
	for _, cmd := range builtins {
		descriptions[cmd.Name] = cmd.Description
	}
	for _, cmd := range c.config.Commands {
		descriptions[cmd.Name] = cmd.Description
	}
	for _, name := range c.trie.Words() {
		fmt.Fprintf(c.output, "  %-14s %s\r\n", name, descriptions[name])
	}
}

// AddHistory records a line for later recall with the up and down arrows.
// Empty lines and consecutive duplicates are ignored.
func (c *Console) AddHistory(line string) {
	c.history.Record(line)
}

// GetHistory returns a copy of the recorded history, oldest first.
func (c *Console) GetHistory() []string {
	return c.history.Entries()
}

// Complete exposes the completion trie's search: it returns the number of
// candidate paths, the longest unambiguous extension of prefix, and, when
// listAll is set, the matching words in alphabet order. A count of 1 means
// the extension is a complete command and the final answer.
func (c *Console) Complete(prefix string, listAll bool) (int, string, []string, error) {
	return c.trie.Find(prefix, listAll)
}

// Close releases the terminal. It is safe to call multiple times.
func (c *Console) Close() error {
	if c.terminal != nil {
		return c.terminal.Close()
	}
	return nil
}
