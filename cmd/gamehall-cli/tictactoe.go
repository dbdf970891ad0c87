package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/lmeyer/gamehall/internal/ai"
	"github.com/lmeyer/gamehall/internal/tictactoe"
)

// playTTT runs a human-vs-computer tic-tac-toe game. The human plays X
// and moves first; cells are addressed as "row col" with 0 0 top left.
func playTTT(rl *readline.Instance, diff ai.Difficulty) error {
	g := tictactoe.NewGame(diff, nil)

	fmt.Printf("Playing tic-tac-toe on %s. Enter a cell like '1 2'; 'quit' gives up.\n", diff)
	printGrid(g)

	rl.SetPrompt("cell> ")
	for !g.IsOver() {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			fmt.Println("gave up")
			return nil
		}
		if err != nil {
			return err
		}

		input := strings.TrimSpace(strings.ToLower(line))
		if input == "" {
			continue
		}
		if input == "quit" {
			fmt.Println("gave up")
			return nil
		}

		var cell tictactoe.Cell
		if _, err := fmt.Sscanf(input, "%d %d", &cell.Row, &cell.Col); err != nil {
			notice.Println("enter a cell as two numbers, e.g. '1 2'")
			continue
		}
		if err := g.PlayHuman(cell); err != nil {
			notice.Printf("%v\n", err)
			continue
		}
		printGrid(g)
	}

	switch {
	case g.Winner() == tictactoe.X:
		fmt.Println("you win")
	case g.Winner() == tictactoe.O:
		fmt.Println("computer wins")
	default:
		fmt.Println("draw")
	}
	return nil
}

func printGrid(g *tictactoe.Game) {
	board := g.Board()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			mark := board[r][c]
			switch mark {
			case tictactoe.X:
				whitePiece.Print("X")
			case tictactoe.O:
				blackPiece.Print("O")
			default:
				boardFrame.Print(".")
			}
			if c < 2 {
				boardFrame.Print("|")
			}
		}
		fmt.Println()
	}
}
