package bot

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/heartmarshall/surveybot/internal/domain"
)

// ConsoleGateway is a Gateway over a terminal. Options are printed as a
// numbered list; typing a number or the label picks an option.
type ConsoleGateway struct {
	out io.Writer

	mu      sync.Mutex
	options map[int64][]string
}

// NewConsoleGateway creates a ConsoleGateway writing to out.
func NewConsoleGateway(out io.Writer) *ConsoleGateway {
	return &ConsoleGateway{
		out:     out,
		options: make(map[int64][]string),
	}
}

func (g *ConsoleGateway) DeliverQuestion(_ context.Context, userID int64, text string, options []string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.options[userID] = options

	if _, err := fmt.Fprintln(g.out, text); err != nil {
		return err
	}
	for i, opt := range options {
		if _, err := fmt.Fprintf(g.out, "  %d) %s\n", i+1, opt); err != nil {
			return err
		}
	}
	return nil
}

func (g *ConsoleGateway) DeliverText(_ context.Context, _ int64, text string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, err := fmt.Fprintln(g.out, text)
	return err
}

// Parse converts one input line into an action. Commands start with a
// slash; anything else answers the current question.
func (g *ConsoleGateway) Parse(userID int64, username, line string) domain.Action {
	action := domain.Action{UserID: userID, Username: username}
	line = strings.TrimSpace(line)

	if strings.HasPrefix(line, "/") {
		cmd, arg, _ := strings.Cut(line[1:], " ")
		arg = strings.TrimSpace(arg)
		switch strings.ToLower(cmd) {
		case "start":
			action.Kind, action.Payload = domain.ActionStart, arg
			return action
		case "cancel":
			action.Kind = domain.ActionCancel
			return action
		case "surveys":
			action.Kind = domain.ActionSurveys
			return action
		case "stats":
			action.Kind, action.Payload = domain.ActionStats, arg
			return action
		}
	}

	g.mu.Lock()
	options := g.options[userID]
	g.mu.Unlock()

	if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(options) {
		action.Kind, action.Payload = domain.ActionChoose, options[n-1]
		return action
	}
	for _, opt := range options {
		if strings.EqualFold(opt, line) {
			action.Kind, action.Payload = domain.ActionChoose, opt
			return action
		}
	}

	action.Kind, action.Payload = domain.ActionText, line
	return action
}

type actionHandler interface {
	OnUserAction(ctx context.Context, action domain.Action) error
}

// Run reads lines from in and dispatches them until EOF, /quit or context
// cancellation. Action errors are already reported to the user and do not
// stop the loop.
func (g *ConsoleGateway) Run(ctx context.Context, in io.Reader, userID int64, username string, h actionHandler) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "/quit" {
			return nil
		}
		_ = h.OnUserAction(ctx, g.Parse(userID, username, line))
	}
	return scanner.Err()
}
