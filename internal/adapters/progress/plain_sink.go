package progress

import (
	"context"
	"fmt"
	"io"

	"github.com/phoswap/phodeploy/internal/usecase"
)

// PlainSink writes progress as plain lines, for non-interactive runs and CI logs
type PlainSink struct {
	out io.Writer
}

// NewPlainSink creates a new plain progress sink
func NewPlainSink(out io.Writer) *PlainSink {
	return &PlainSink{out: out}
}

func (p *PlainSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Message == "" {
		return
	}
	fmt.Fprintf(p.out, "[%s] %s\n", event.Stage, event.Message)
}

func (p *PlainSink) Info(message string) {
	fmt.Fprintln(p.out, message)
}

func (p *PlainSink) Error(message string) {
	fmt.Fprintln(p.out, "error: "+message)
}

var _ usecase.ProgressSink = (*PlainSink)(nil)
