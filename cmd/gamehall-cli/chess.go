package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/lmeyer/gamehall/internal/ai"
	"github.com/lmeyer/gamehall/internal/chess"
	"github.com/lmeyer/gamehall/internal/engine"
)

var (
	whitePiece = color.New(color.FgHiWhite, color.Bold)
	blackPiece = color.New(color.FgHiCyan, color.Bold)
	boardFrame = color.New(color.FgHiBlack)
	notice     = color.New(color.FgYellow)
)

// playChess runs a human-vs-computer chess game. The human plays White.
func playChess(rl *readline.Instance, diff ai.Difficulty) error {
	g := engine.NewGame()
	eng := ai.NewEngine()

	fmt.Printf("Playing chess on %s. Enter moves like e2e4; 'moves' lists legal moves, 'quit' resigns.\n", diff)
	printBoard(g.Board())

	rl.SetPrompt("move> ")
	for !g.IsOver() {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			fmt.Println("resigned")
			return nil
		}
		if err != nil {
			return err
		}

		switch input := strings.TrimSpace(strings.ToLower(line)); input {
		case "":
			continue
		case "quit", "resign":
			fmt.Println("resigned")
			return nil
		case "board":
			printBoard(g.Board())
			continue
		case "moves":
			listMoves(g)
			continue
		default:
			if err := humanMove(g, input); err != nil {
				notice.Printf("%v\n", err)
				continue
			}
		}

		if g.IsOver() {
			break
		}
		reply, err := eng.ChooseMove(g.Board(), g.Turn(), diff)
		if err != nil {
			return err
		}
		if err := g.MakeMove(reply); err != nil {
			return err
		}
		fmt.Printf("computer plays %s\n", reply)
		printBoard(g.Board())
		if g.InCheck() && !g.IsOver() {
			notice.Println("check!")
		}
	}

	printBoard(g.Board())
	fmt.Println(g.Outcome())
	return nil
}

func humanMove(g *engine.Game, input string) error {
	move, err := chess.ParseMove(input)
	if err != nil {
		return err
	}
	return g.MakeMove(move)
}

func listMoves(g *engine.Game) {
	moves := g.LegalMoves()
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	fmt.Println(strings.Join(parts, " "))
}

// printBoard renders the board from White's side, files a-h left to
// right and rank 8 at the top.
func printBoard(b *chess.Board) {
	for y := 0; y < chess.BoardSize; y++ {
		boardFrame.Printf("%d ", chess.BoardSize-y)
		for x := 0; x < chess.BoardSize; x++ {
			p := b.At(chess.Square{X: x, Y: y})
			switch {
			case p.IsNone():
				boardFrame.Print(". ")
			case p.Color == chess.White:
				whitePiece.Printf("%c ", p.Kind.Letter())
			default:
				blackPiece.Printf("%c ", p.Kind.Letter())
			}
		}
		fmt.Println()
	}
	boardFrame.Println("  a b c d e f g h")
}
