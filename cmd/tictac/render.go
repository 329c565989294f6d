package main

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/IlikeChooros/go-tictac/pkg/game"
)

var output = termenv.DefaultOutput()

func styleMark(m game.Mark) string {
	switch m {
	case game.MarkX:
		return output.String("x").Foreground(termenv.ANSIRed).Bold().String()
	case game.MarkO:
		return output.String("o").Foreground(termenv.ANSIBlue).Bold().String()
	}
	return output.String(".").Faint().String()
}

func styleWin(s string) string {
	return output.String(s).Foreground(termenv.ANSIGreen).Bold().String()
}

func styleLoss(s string) string {
	return output.String(s).Foreground(termenv.ANSIRed).Bold().String()
}

func styleDraw(s string) string {
	return output.String(s).Foreground(termenv.ANSIYellow).Bold().String()
}

func render(pos game.Position) {
	switch p := pos.(type) {
	case *game.Classic:
		renderClassic(p)
	case *game.Ultimate:
		renderUltimate(p)
	}
	fmt.Printf("%s to move\n", styleMark(pos.Turn()))
}

func renderClassic(p *game.Classic) {
	board := p.Board()
	builder := strings.Builder{}

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			builder.WriteByte(' ')
			builder.WriteString(styleMark(board.At(row*3 + col)))
			builder.WriteByte(' ')
			if col < 2 {
				builder.WriteByte('|')
			}
		}
		builder.WriteByte('\n')
		if row < 2 {
			builder.WriteString("-----------\n")
		}
	}

	fmt.Print(builder.String())
}

func renderUltimate(p *game.Ultimate) {
	builder := strings.Builder{}
	meta := p.Meta()

	for bigRow := 0; bigRow < 3; bigRow++ {
		for cellRow := 0; cellRow < 3; cellRow++ {
			for bigCol := 0; bigCol < 3; bigCol++ {
				boardIdx := bigRow*3 + bigCol
				board := p.Board(boardIdx)

				for cellCol := 0; cellCol < 3; cellCol++ {
					builder.WriteString(styleMark(board.At(cellRow*3 + cellCol)))
					if cellCol < 2 {
						builder.WriteByte(' ')
					}
				}
				if bigCol < 2 {
					builder.WriteString(" | ")
				}
			}
			builder.WriteByte('\n')
		}
		if bigRow < 2 {
			builder.WriteString("------+-------+------\n")
		}
	}

	// Decided sub-boards and the forced-board constraint
	statuses := make([]string, 0, 9)
	for i, s := range meta {
		if s != game.BoardOpen {
			statuses = append(statuses, fmt.Sprintf("%d:%s", i, s))
		}
	}
	if len(statuses) > 0 {
		builder.WriteString("decided: " + strings.Join(statuses, " ") + "\n")
	}
	if f := p.Forced(); f != game.ForcedAny {
		builder.WriteString(fmt.Sprintf("forced board: %d\n", f))
	}

	fmt.Print(builder.String())
}
