package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/pairgen/internal/application/handlers"
	"github.com/ersonp/pairgen/internal/domain/services"
	"github.com/ersonp/pairgen/internal/infrastructure/parsers"
)

type sessionState struct {
	handler *handlers.SessionHandler
	out     io.Writer
	st      styles
}

func newSessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "session [file]",
		Short: "Interactive pairing session",
		Long:  "Starts an interactive session: upload rosters, generate pairs repeatedly and reset.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, func(deps *Deps) error {
				s := newSessionState(deps.SessionHandler, cmd.OutOrStdout())
				if len(args) == 1 {
					s.upload(cmd.Context(), args[0])
				}
				return s.runInputLoop(cmd.Context(), cmd.InOrStdin())
			})
		},
	}
}

func newSessionState(handler *handlers.SessionHandler, out io.Writer) *sessionState {
	return &sessionState{
		handler: handler,
		out:     out,
		st:      newStyles(out),
	}
}

func (s *sessionState) runInputLoop(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(s.out, "Pairgen interactive mode.")
	fmt.Fprintln(s.out, "Commands: 'upload <file>', 'generate', 'show', 'reset', 'help', 'quit'")
	fmt.Fprintln(s.out)

	scanner := bufio.NewScanner(in)
	for {
		if ctx.Err() != nil {
			return nil
		}

		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if exit := s.handleCommand(ctx, line); exit {
			return nil
		}
	}

	return scanner.Err()
}

// handleCommand runs one input line. It returns true when the loop should exit.
func (s *sessionState) handleCommand(ctx context.Context, line string) bool {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "upload", "load":
		if arg == "" {
			fmt.Fprintln(s.out, "Usage: upload <file>")
			return false
		}
		s.upload(ctx, arg)
	case "generate", "gen", "shuffle":
		s.generate()
	case "show", "view":
		s.show()
	case "reset", "clear":
		s.handler.Reset()
		fmt.Fprintln(s.out, "Session cleared.")
	case "help", "?":
		s.showHelp()
	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "Goodbye!")
		return true
	default:
		fmt.Fprintf(s.out, "Unknown command %q. Type 'help' for commands.\n", cmd)
	}
	return false
}

func (s *sessionState) upload(ctx context.Context, path string) {
	result, err := s.handler.Upload(ctx, path)
	if err != nil {
		var parseErr *parsers.ParseError
		switch {
		case errors.As(err, &parseErr):
			fmt.Fprintln(s.out, s.st.warn.Render(parseErrorHint))
		case errors.Is(err, parsers.ErrUnsupportedFormat):
			fmt.Fprintln(s.out, s.st.warn.Render("Unsupported file type; use CSV, spreadsheet or JSON."))
		default:
			fmt.Fprintln(s.out, s.st.warn.Render(fmt.Sprintf("Error: %v", err)))
		}
		return
	}

	fmt.Fprintf(s.out, "Loaded %d entities", len(result.Entities))
	if len(result.Skipped) > 0 {
		fmt.Fprintf(s.out, " (%d rows skipped)", len(result.Skipped))
	}
	fmt.Fprintln(s.out, ".")
}

func (s *sessionState) generate() {
	result, err := s.handler.Generate()
	if errors.Is(err, services.ErrNoRoster) {
		fmt.Fprintln(s.out, "No roster loaded. Use 'upload <file>' first.")
		return
	}
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	_ = renderText(s.out, result)
}

func (s *sessionState) show() {
	view := s.handler.View()

	fmt.Fprintf(s.out, "State: %s\n", view.State)
	if view.State == services.StateEmpty {
		return
	}

	renderRoster(s.out, view.Roster, nil)
	if view.Result != nil {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, s.st.muted.Render(fmt.Sprintf("Run %s at %s", view.RunID, view.GeneratedAt.Format("15:04:05"))))
		_ = renderText(s.out, view.Result)
	}
}

func (s *sessionState) showHelp() {
	fmt.Fprintln(s.out, "Commands:")
	fmt.Fprintln(s.out, "  upload <file> - Load a roster, replacing the current one")
	fmt.Fprintln(s.out, "  generate      - Generate a new set of pairs")
	fmt.Fprintln(s.out, "  show          - Show the roster, counts and latest pairs")
	fmt.Fprintln(s.out, "  reset         - Clear the roster and pairs")
	fmt.Fprintln(s.out, "  quit          - Exit interactive mode")
	fmt.Fprintln(s.out, "  help          - Show this help")
}
