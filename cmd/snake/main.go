// snake is a single-cell snake game played in the terminal.
//
// Usage:
//
//	snake            - Play one session; the score is printed on exit
//	snake controls   - Show key bindings
//
// Set SNAKE_LOG to a file path to write a session log.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Steer a snake around the terminal and collect apples",
	Long: `Snake moves continuously across the whole terminal. Steer it onto the
red @ apples to score; the game ends when the snake runs into the edge
of the screen or you quit.

Controls:
  Arrows/WASD     - Change direction
  Esc/Q/Ctrl+C    - Quit

Examples:
  snake
  SNAKE_LOG=/tmp/snake.log snake
  snake controls`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.AddCommand(controlsCmd)
}
