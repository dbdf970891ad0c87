// Command gamehall-cli plays chess or tic-tac-toe against the computer
// in the terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chzyer/readline"

	"github.com/lmeyer/gamehall/internal/ai"
)

func main() {
	var (
		game       = flag.String("game", "chess", "game to play: chess or tictactoe")
		difficulty = flag.String("difficulty", "medium", "computer strength: easy, medium or hard")
	)
	flag.Parse()

	diff, err := ai.ParseDifficulty(*difficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gamehall-cli: %v\n", err)
		os.Exit(1)
	}

	rl, err := readline.New("> ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "gamehall-cli: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	switch *game {
	case "chess":
		err = playChess(rl, diff)
	case "tictactoe":
		err = playTTT(rl, diff)
	default:
		err = fmt.Errorf("unknown game %q", *game)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "gamehall-cli: %v\n", err)
		os.Exit(1)
	}
}
