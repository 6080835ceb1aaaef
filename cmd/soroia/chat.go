package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"soroia/internal/app"
	"soroia/internal/chat"
	"soroia/internal/model"
)

const (
	promptUser      = "> "
	prefixAssistant = "SoroIA: "
	prefixDebug     = "[debug] "

	commandQuit   = "/salir"
	commandReset  = "/reset"
	commandDetail = "/detalle"
)

// ChatCmd runs an interactive conversation on stdin and stdout.
type ChatCmd struct {
	Debug   bool `short:"d" long:"debug"   description:"show intent, query and context turns"`
	History bool `long:"history" description:"include recent turns in the model context"`
}

func (c *ChatCmd) Execute(_ []string) error {
	ctx, stop, cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer stop()

	if c.Debug {
		cfg.Assistant.DebugMode = true
	}
	if c.History {
		cfg.Assistant.HistoryEnabled = true
	}

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return repl(ctx, a.Chat, os.Stdin, os.Stdout)
}

// repl reads one utterance per line until EOF, /salir or ctx is done.
// "/detalle <ruta>" opens the record of an artifact shown earlier and
// "/reset" starts over.
func repl(ctx context.Context, uc chat.UseCase, in io.Reader, out io.Writer) error {
	s := uc.CreateSession(ctx)
	for _, t := range s.Turns {
		printTurn(out, t)
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, promptUser)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == commandQuit:
			return nil
		case line == commandReset:
			s = uc.ResetSession(ctx, s.ID)
			printTurn(out, s.Turns[0])
			continue
		case strings.HasPrefix(line, commandDetail):
			showDetail(ctx, uc, out, s.ID, strings.TrimSpace(strings.TrimPrefix(line, commandDetail)))
			continue
		}

		res, err := uc.SendMessage(ctx, chat.SendMessageInput{SessionID: s.ID, Message: line})
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		for _, t := range res.NewTurns {
			if t.Role != model.RoleUser {
				printTurn(out, t)
			}
		}
	}
}

func showDetail(ctx context.Context, uc chat.UseCase, out io.Writer, sessionID, path string) {
	d, err := uc.OpenDetail(ctx, chat.OpenDetailInput{SessionID: sessionID, Path: path})
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Inventario %s\n", d.Detail.Inventory)
	for _, f := range d.Record.Fields {
		fmt.Fprintf(out, "  %s: %s\n", f.Label, f.Value)
	}
	uc.CloseDetail(ctx, sessionID)
}

func printTurn(out io.Writer, t model.Turn) {
	prefix := prefixAssistant
	if t.Role == model.RoleSystem {
		prefix = prefixDebug
	}
	fmt.Fprintf(out, "%s%s\n", prefix, t.Content)
	for _, a := range t.Artifacts {
		fmt.Fprintf(out, "  · %s (%s)\n", a.Label, a.Path)
	}
}
