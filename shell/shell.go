// Package shell is an interactive readline-driven front end for playing
// against the engine.
package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/matadorhq/matador/ai/player"
	"github.com/matadorhq/matador/automatic"
	"github.com/matadorhq/matador/board"
	"github.com/matadorhq/matador/config"
	"github.com/matadorhq/matador/game"
	"github.com/matadorhq/matador/move"
	"github.com/matadorhq/matador/movegen"
	"github.com/matadorhq/matador/tile"
)

const (
	humanPlayer = 0
	aiPlayer    = 1
)

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	curGame  *game.Game
	aiplayer *player.AIPlayer
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mmatador>\033[0m ",
		HistoryFile:     "/tmp/readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{
		l:        l,
		cfg:      cfg,
		aiplayer: player.New(cfg, player.Medium),
	}
}

func (sc *ShellController) showMessage(msg string) {
	io.WriteString(sc.l.Stderr(), msg+"\n")
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "new [difficulty] - start a game; difficulty is easy, medium or hard\n")
	io.WriteString(w, "play <tile> <side> - place a tile, e.g. play 3-5 left\n")
	io.WriteString(w, "draw - draw from the boneyard (only when blocked)\n")
	io.WriteString(w, "pass - give up the turn (only when blocked and the pile is empty)\n")
	io.WriteString(w, "hint - show your legal moves with their equities\n")
	io.WriteString(w, "level <difficulty> - change the AI difficulty\n")
	io.WriteString(w, "auto <n> [workers] - run n bot-vs-bot games\n")
	io.WriteString(w, "show - print the board and your hand\n")
	io.WriteString(w, "exit - exit the shell\n")
}

func (sc *ShellController) newGame(line string) error {
	fields := strings.Fields(line)
	if len(fields) > 1 {
		d, err := player.ParseDifficulty(fields[1])
		if err != nil {
			return err
		}
		sc.aiplayer.SetDifficulty(d)
	}
	g, err := game.NewGame([game.NumPlayers]string{"you", "matador"})
	if err != nil {
		return err
	}
	sc.curGame = g
	sc.showMessage(fmt.Sprintf("new game %s vs %s AI", g.ID(),
		sc.aiplayer.Difficulty()))
	sc.showGame()
	return nil
}

func (sc *ShellController) requireGame() error {
	if sc.curGame == nil || sc.curGame.Playing() != game.StatePlaying {
		return fmt.Errorf("no game in progress; try `new`")
	}
	return nil
}

func (sc *ShellController) showGame() {
	g := sc.curGame
	if g == nil {
		sc.showMessage("no game; try `new`")
		return
	}
	sc.showMessage(g.Board().String())
	sc.showMessage(fmt.Sprintf("your hand: %v  (boneyard: %d)",
		g.HandOf(humanPlayer), g.BoneyardRemaining()))
	if g.Playing() != game.StatePlaying {
		sc.showResult()
	}
}

func (sc *ShellController) showResult() {
	g := sc.curGame
	switch {
	case g.Winner() == humanPlayer:
		sc.showMessage("you win!")
	case g.Winner() == aiPlayer:
		sc.showMessage("matador wins.")
	default:
		sc.showMessage("locked game, drawn on equal pips.")
	}
}

func parseSide(s string) (board.Side, error) {
	switch strings.ToLower(s) {
	case "left", "l":
		return board.LeftSide, nil
	case "right", "r":
		return board.RightSide, nil
	}
	return board.LeftSide, fmt.Errorf("side must be left or right, got %q", s)
}

func (sc *ShellController) humanPlay(line string) error {
	if err := sc.requireGame(); err != nil {
		return err
	}
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return fmt.Errorf("usage: play <tile> <side>")
	}
	t, err := tile.Parse(fields[1])
	if err != nil {
		return err
	}
	side, err := parseSide(fields[2])
	if err != nil {
		return err
	}
	m := move.NewPlace(t, side)
	if err := sc.curGame.PlayMove(humanPlayer, m); err != nil {
		return err
	}
	sc.showGame()
	return sc.aiTurn()
}

func (sc *ShellController) humanDraw() error {
	if err := sc.requireGame(); err != nil {
		return err
	}
	t, err := sc.curGame.Draw(humanPlayer)
	if err != nil {
		return err
	}
	sc.showMessage(fmt.Sprintf("drew %v", t))
	return nil
}

func (sc *ShellController) humanPass() error {
	if err := sc.requireGame(); err != nil {
		return err
	}
	if err := sc.curGame.Pass(humanPlayer); err != nil {
		return err
	}
	sc.showMessage("passed")
	return sc.aiTurn()
}

// aiTurn lets the AI move (drawing as needed) until it is the human's turn
// again or the game ends. The selection is tagged with the game ID it was
// issued for; a reset mid-think discards the stale result.
func (sc *ShellController) aiTurn() error {
	g := sc.curGame
	for g.Playing() == game.StatePlaying && g.PlayerOnTurn() == aiPlayer {
		gid := g.ID()
		m, err := sc.aiplayer.SelectMove(context.Background(), g.Board(),
			g.HandOf(aiPlayer), g.BoneyardRemaining())
		if err != nil {
			return err
		}
		if g != sc.curGame || gid != sc.curGame.ID() {
			log.Debug().Str("gid", gid).Msg("stale-selection-discarded")
			return nil
		}
		if m != nil {
			if err := g.PlayMove(aiPlayer, m); err != nil {
				return err
			}
			sc.showMessage(fmt.Sprintf("matador plays %s", m.ShortDescription()))
			continue
		}
		if g.BoneyardRemaining() > 0 {
			if _, err := g.Draw(aiPlayer); err != nil {
				return err
			}
			sc.showMessage("matador draws")
			continue
		}
		if err := g.Pass(aiPlayer); err != nil {
			return err
		}
		sc.showMessage("matador passes")
	}
	sc.showGame()
	return nil
}

func (sc *ShellController) hint() error {
	if err := sc.requireGame(); err != nil {
		return err
	}
	g := sc.curGame
	plays := movegen.GenAll(g.Board(), g.HandOf(humanPlayer))
	if len(plays) == 0 {
		sc.showMessage("no legal moves; draw or pass")
		return nil
	}
	sc.aiplayer.Calculator().AssignEquities(plays, g.Board(), g.HandOf(humanPlayer))
	for i, m := range plays {
		sc.showMessage(fmt.Sprintf("%2d: %-14s %.3f", i+1,
			m.ShortDescription(), m.Equity()))
	}
	return nil
}

func (sc *ShellController) setLevel(line string) error {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return fmt.Errorf("usage: level <easy|medium|hard>")
	}
	d, err := player.ParseDifficulty(fields[1])
	if err != nil {
		return err
	}
	sc.aiplayer.SetDifficulty(d)
	sc.showMessage("difficulty set to " + d.String())
	return nil
}

func (sc *ShellController) autoSeries(line string) error {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return fmt.Errorf("usage: auto <n> [workers]")
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return err
	}
	workers := 1
	if len(fields) > 2 {
		if workers, err = strconv.Atoi(fields[2]); err != nil {
			return err
		}
	}
	summary, err := automatic.CompVsComp(context.Background(), sc.cfg,
		sc.aiplayer.Difficulty(), sc.aiplayer.Difficulty(), n, workers)
	if err != nil {
		return err
	}
	sc.showMessage(summary.String())
	return nil
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)

		switch {
		case line == "exit" || line == "quit":
			sig <- syscall.SIGINT
			return
		case line == "help" || line == "":
			usage(sc.l.Stderr())
		case line == "show":
			sc.showGame()
		case line == "draw":
			if err := sc.humanDraw(); err != nil {
				sc.showError(err)
			}
		case line == "pass":
			if err := sc.humanPass(); err != nil {
				sc.showError(err)
			}
		case line == "hint":
			if err := sc.hint(); err != nil {
				sc.showError(err)
			}
		case strings.HasPrefix(line, "new"):
			if err := sc.newGame(line); err != nil {
				sc.showError(err)
			}
		case strings.HasPrefix(line, "play"):
			if err := sc.humanPlay(line); err != nil {
				sc.showError(err)
			}
		case strings.HasPrefix(line, "level"):
			if err := sc.setLevel(line); err != nil {
				sc.showError(err)
			}
		case strings.HasPrefix(line, "auto"):
			if err := sc.autoSeries(line); err != nil {
				sc.showError(err)
			}
		default:
			sc.showMessage("unknown command; try `help`")
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}
