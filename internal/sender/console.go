package sender

import (
	"context"
	"fmt"
	"io"
)

// ConsoleChannel prints messages instead of sending them, for checking
// wording against a real export before a live batch.
type ConsoleChannel struct {
	Out io.Writer
}

func NewConsoleChannel(out io.Writer) *ConsoleChannel {
	return &ConsoleChannel{Out: out}
}

func (c *ConsoleChannel) Name() string { return "console" }

func (c *ConsoleChannel) Send(_ context.Context, destination, text string) error {
	_, err := fmt.Fprintf(c.Out, "--- %s ---\n%s\n\n", destination, text)
	return err
}
