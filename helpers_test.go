package canvaslab

import (
	"bytes"
	"log/slog"
	"slices"
	"testing"

	"github.com/gogpu/canvaslab/surface"
)

// bindRecorder binds a fresh recorder under an identifier unique to the
// test and returns both.
func bindRecorder(t *testing.T) (*surface.Recorder, string) {
	t.Helper()
	id := "rec/" + t.Name()
	rec := surface.NewRecorder(200, 200)
	surface.Bind(id, rec)
	t.Cleanup(func() { surface.Unbind(id) })
	return rec, id
}

// captureLog routes canvaslab logging into a buffer for the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(orig) })
	return &buf
}

func assertOps(t *testing.T, rec *surface.Recorder, want ...surface.Op) {
	t.Helper()
	if got := rec.Ops(); !slices.Equal(got, want) {
		t.Errorf("Ops() = %v, want %v", got, want)
	}
}

// lastCommand returns the last recorded command with the given op.
func lastCommand(t *testing.T, rec *surface.Recorder, op surface.Op) surface.Command {
	t.Helper()
	cmds := rec.Commands()
	for i := len(cmds) - 1; i >= 0; i-- {
		if cmds[i].Op == op {
			return cmds[i]
		}
	}
	t.Fatalf("no %v command recorded", op)
	return surface.Command{}
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
