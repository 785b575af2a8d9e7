package notify

import (
	"context"
	"errors"
)

// Multi fans one message out to several destinations. Every
// destination is attempted even when an earlier one fails.
type Multi []Notifier

func (m Multi) Send(ctx context.Context, msg Message) error {
	var errlist []error
	for _, n := range m {
		err := n.Send(ctx, msg)
		if err != nil {
			errlist = append(errlist, err)
		}
	}
	return errors.Join(errlist...)
}
