package canvaswire

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/gogpu/canvaswire/wire"
)

func TestPathOpsDoNotFlushState(t *testing.T) {
	c := New(1)

	// A pending state change must not leak into path construction.
	c.SetLineWidth(5)
	c.BeginPath()
	c.MoveTo(0, 0)
	c.LineTo(10, 10)

	got := ops(decodeStream(t, c))
	want := []wire.Op{wire.OpBeginPath, wire.OpMoveTo, wire.OpLineTo}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stream mismatch (-want +got):\n%s", diff)
	}
}

func TestPathEncoding(t *testing.T) {
	c := New(1)

	c.BeginPath()
	c.MoveTo(1, 2)
	c.LineTo(3, 4)
	c.QuadraticCurveTo(5, 6, 7, 8)
	c.BezierCurveTo(1, 2, 3, 4, 5, 6)
	c.Arc(10, 10, 5, 0, 3.14, true)
	c.ArcTo(0, 0, 10, 0, 4)
	c.Ellipse(5, 5, 3, 2, 0.5, 0, 6.28, false)
	c.Rect(0, 0, 20, 20)
	c.RoundRect(0, 0, 20, 20, 2, 4)
	c.ClosePath()

	got := decodeStream(t, c)
	want := []wire.Instr{
		{Op: wire.OpBeginPath},
		{Op: wire.OpMoveTo, Floats: []float64{1, 2}},
		{Op: wire.OpLineTo, Floats: []float64{3, 4}},
		{Op: wire.OpQuadraticCurveTo, Floats: []float64{5, 6, 7, 8}},
		{Op: wire.OpBezierCurveTo, Floats: []float64{1, 2, 3, 4, 5, 6}},
		{Op: wire.OpArc, Floats: []float64{10, 10, 5, 0, 3.14, 1}},
		{Op: wire.OpArcTo, Floats: []float64{0, 0, 10, 0, 4}},
		{Op: wire.OpEllipse, Floats: []float64{5, 5, 3, 2, 0.5, 0, 6.28, 0}},
		{Op: wire.OpRect, Floats: []float64{0, 0, 20, 20}},
		{Op: wire.OpRoundRect, Floats: []float64{0, 0, 20, 20, 2, 4}},
		{Op: wire.OpClosePath},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("stream mismatch (-want +got):\n%s", diff)
	}
}

func TestRectDrawEncoding(t *testing.T) {
	c := New(1)

	c.FillRect(1, 2, 3, 4)
	c.StrokeRect(5, 6, 7, 8)
	c.ClearRect(0, 0, 100, 100)

	got := decodeStream(t, c)
	want := []wire.Instr{
		{Op: wire.OpFillRect, Floats: []float64{1, 2, 3, 4}},
		{Op: wire.OpStrokeRect, Floats: []float64{5, 6, 7, 8}},
		{Op: wire.OpClearRect, Floats: []float64{0, 0, 100, 100}},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("stream mismatch (-want +got):\n%s", diff)
	}
}

func TestTextDrawEncoding(t *testing.T) {
	c := New(1)

	c.FillText("hello", 10, 20)
	c.StrokeTextMaxWidth("wide", 0, 0, 50)

	got := decodeStream(t, c)
	want := []wire.Instr{
		{Op: wire.OpFillText, Str: "hello", Floats: []float64{10, 20}},
		{Op: wire.OpStrokeText, Str: "wide", Floats: []float64{0, 0, 50}},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("stream mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawImageEncoding(t *testing.T) {
	c := New(1)

	c.DrawImage(7, 10, 20)
	c.DrawImageScaled(7, 10, 20, 30, 40)
	c.DrawImageSub(7, 0, 0, 8, 8, 10, 20, 30, 40)

	got := decodeStream(t, c)
	want := []wire.Instr{
		{Op: wire.OpDrawImage, Handle: 7, Floats: []float64{10, 20}},
		{Op: wire.OpDrawImage, Handle: 7, Floats: []float64{10, 20, 30, 40}},
		{Op: wire.OpDrawImage, Handle: 7, Floats: []float64{0, 0, 8, 8, 10, 20, 30, 40}},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("stream mismatch (-want +got):\n%s", diff)
	}
}

func TestClipFlushesState(t *testing.T) {
	c := New(1)

	c.SetGlobalAlpha(0.25)
	c.Rect(0, 0, 10, 10)
	c.Clip()

	got := ops(decodeStream(t, c))
	want := []wire.Op{wire.OpRect, wire.OpSetGlobalAlpha, wire.OpClip}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stream mismatch (-want +got):\n%s", diff)
	}
}
