package progress

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/phoswap/phodeploy/internal/usecase"
	"github.com/stretchr/testify/assert"
)

func TestPlainSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewPlainSink(&buf)
	ctx := context.Background()

	sink.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageResolving, Message: "Loading registry"})
	sink.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageCompleted})
	sink.Info("Recorded farm")
	sink.Error("boom")

	assert.Equal(t, "[Resolving] Loading registry\nRecorded farm\nerror: boom\n", buf.String())
}

func TestSpinnerProgressReporter_PlainEvents(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	var buf bytes.Buffer
	r := newSpinnerProgressReporter(&buf)
	ctx := context.Background()

	r.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageResolving, Message: "Loading registry"})
	r.Info("hello")
	r.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageCompleted})

	out := buf.String()
	assert.Contains(t, out, "● Loading registry\n")
	assert.Contains(t, out, "hello\n")
	assert.False(t, r.spinner.Active())
}
