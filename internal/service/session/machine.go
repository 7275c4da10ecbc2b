package session

import (
	"context"
	"errors"

	"github.com/looplab/fsm"
)

// State is the position of a session in the question flow.
type State string

const (
	StateIdle             State = "idle"
	StateAwaitingChoice   State = "awaiting_choice"
	StateAwaitingFreeText State = "awaiting_free_text"
	StateCompleted        State = "completed"
)

func (s State) String() string { return string(s) }

// Machine events.
const (
	eventAskChoice = "ask_choice"
	eventAskText   = "ask_text"
	eventFreeText  = "free_text"
	eventFinish    = "finish"
)

func newMachine(onEnter func(ctx context.Context, from, to string)) *fsm.FSM {
	asking := []string{StateIdle.String(), StateAwaitingChoice.String(), StateAwaitingFreeText.String()}
	return fsm.NewFSM(
		StateIdle.String(),
		fsm.Events{
			{Name: eventAskChoice, Src: asking, Dst: StateAwaitingChoice.String()},
			{Name: eventAskText, Src: asking, Dst: StateAwaitingFreeText.String()},
			{Name: eventFreeText, Src: []string{StateAwaitingChoice.String()}, Dst: StateAwaitingFreeText.String()},
			{Name: eventFinish, Src: asking[1:], Dst: StateCompleted.String()},
		},
		fsm.Callbacks{
			"enter_state": func(ctx context.Context, e *fsm.Event) {
				onEnter(ctx, e.Src, e.Dst)
			},
		},
	)
}

// fire triggers event. Moving to the state the machine is already in is not
// an error: consecutive choice questions stay in awaiting_choice.
func fire(ctx context.Context, m *fsm.FSM, event string) error {
	err := m.Event(ctx, event)
	var same fsm.NoTransitionError
	if errors.As(err, &same) {
		return nil
	}
	return err
}
