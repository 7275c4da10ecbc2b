// Package bot connects a messaging gateway to the survey session machine.
package bot

import "context"

// Gateway delivers messages to users of a messaging platform.
type Gateway interface {
	// DeliverQuestion shows text with one button per option. Options may be
	// empty, in which case a typed reply is expected.
	DeliverQuestion(ctx context.Context, userID int64, text string, options []string) error
	DeliverText(ctx context.Context, userID int64, text string) error
}
