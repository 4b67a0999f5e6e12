package canvaswire

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/gogpu/canvaswire/host"
	"github.com/gogpu/canvaswire/wire"
)

// decodeStream decodes the context's buffer into instructions.
func decodeStream(t *testing.T, c *Context) []wire.Instr {
	t.Helper()
	instrs, err := wire.Decode(c.Buffer().Bytes())
	if err != nil {
		t.Fatalf("decode stream: %v", err)
	}
	return instrs
}

// ops reduces a decoded stream to its opcode sequence.
func ops(instrs []wire.Instr) []wire.Op {
	out := make([]wire.Op, len(instrs))
	for i, in := range instrs {
		out[i] = in.Op
	}
	return out
}

func TestNewContextDefaults(t *testing.T) {
	c := New(7)

	if c.ID() != 7 {
		t.Errorf("ID() = %d, want 7", c.ID())
	}
	if c.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", c.Depth())
	}
	if got := c.GlobalAlpha(); got != 1 {
		t.Errorf("GlobalAlpha() = %v, want 1", got)
	}
	if got := c.LineWidth(); got != 1 {
		t.Errorf("LineWidth() = %v, want 1", got)
	}
	if got := c.MiterLimit(); got != 10 {
		t.Errorf("MiterLimit() = %v, want 10", got)
	}
	if got := c.FillStyle(); got != (Paint{Kind: PaintColor, Color: "#000000"}) {
		t.Errorf("FillStyle() = %+v, want default black color", got)
	}
	if got := c.GetTransform(); !got.IsIdentity() {
		t.Errorf("GetTransform() = %+v, want identity", got)
	}
	if got := c.Font(); got != "10px sans-serif" {
		t.Errorf("Font() = %q, want default font", got)
	}
	if c.Buffer().Len() != 0 {
		t.Errorf("new context emitted %d bytes, want 0", c.Buffer().Len())
	}
}

func TestDrawAtDefaultsEmitsNoState(t *testing.T) {
	c := New(1)
	c.Fill()

	got := ops(decodeStream(t, c))
	want := []wire.Op{wire.OpFill}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stream mismatch (-want +got):\n%s", diff)
	}
}

func TestIdempotentDiffing(t *testing.T) {
	// Repeated writes of the same value produce no repeated state-change
	// instructions.
	c := New(1)

	c.SetFillColor("#fff")
	c.Fill()
	c.SetFillColor("#fff")
	c.Fill()

	got := ops(decodeStream(t, c))
	want := []wire.Op{wire.OpSetFillColor, wire.OpFill, wire.OpFill}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stream mismatch (-want +got):\n%s", diff)
	}
}

func TestNoTwoConsecutiveIdenticalStateChanges(t *testing.T) {
	c := New(1)

	c.SetLineWidth(3)
	c.Stroke()
	c.SetLineWidth(5)
	c.SetLineWidth(3) // back to the emitted value before any draw
	c.Stroke()
	c.Stroke()

	instrs := decodeStream(t, c)
	for i := 1; i < len(instrs); i++ {
		prev, cur := instrs[i-1], instrs[i]
		if cur.Op == prev.Op && cur.Op.IsStateChange() &&
			cmp.Equal(prev, cur, cmpopts.EquateEmpty()) {
			t.Errorf("instruction %d repeats identical state change %s", i, cur)
		}
	}
	// The width never actually diverged from 3 at draw time after the
	// first stroke, so only one SetLineWidth may appear.
	count := 0
	for _, in := range instrs {
		if in.Op == wire.OpSetLineWidth {
			count++
		}
	}
	if count != 1 {
		t.Errorf("SetLineWidth emitted %d times, want 1", count)
	}
}

func TestHardSaveRestoreScenario(t *testing.T) {
	// Hard restore resynchronizes the last-emitted cache by re-emitting
	// the pre-save fill color right after the Restore instruction.
	c := New(1)

	c.SetFillColor("#fff")
	c.Fill()
	c.SetFillColor("#fff")
	c.Fill()
	c.Save()
	c.SetFillColor("#000")
	c.Fill()
	c.Restore()
	c.Fill()

	got := decodeStream(t, c)
	want := []wire.Instr{
		{Op: wire.OpSetFillColor, Str: "#fff"},
		{Op: wire.OpFill},
		{Op: wire.OpFill},
		{Op: wire.OpSave},
		{Op: wire.OpSetFillColor, Str: "#000"},
		{Op: wire.OpFill},
		{Op: wire.OpRestore},
		{Op: wire.OpSetFillColor, Str: "#fff"},
		{Op: wire.OpFill},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("stream mismatch (-want +got):\n%s", diff)
	}
}

func TestSoftRestoreKeepsShadows(t *testing.T) {
	c := New(1)

	c.SetLineWidth(2)
	c.Stroke() // emits SetLineWidth(2), Stroke

	c.SaveLocal()
	c.SetLineWidth(9)
	c.Stroke() // emits SetLineWidth(9), Stroke
	c.Restore()

	// The host still has width 9: an identical mutation must not
	// produce a new instruction.
	c.SetLineWidth(9)
	c.Stroke()

	got := ops(decodeStream(t, c))
	want := []wire.Op{
		wire.OpSetLineWidth, wire.OpStroke,
		wire.OpSetLineWidth, wire.OpStroke,
		wire.OpStroke,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stream mismatch (-want +got):\n%s", diff)
	}

	// And returning to the pre-excursion width must re-emit, since the
	// host never rolled back.
	c.SetLineWidth(2)
	c.Stroke()
	instrs := decodeStream(t, c)
	last := instrs[len(instrs)-2]
	if last.Op != wire.OpSetLineWidth || last.Floats[0] != 2 {
		t.Errorf("expected re-emitted SetLineWidth(2), got %s", last)
	}
}

func TestSoftSaveEmitsNoStackOps(t *testing.T) {
	c := New(1)
	c.SaveLocal()
	c.Restore()

	if got := c.Buffer().Len(); got != 0 {
		t.Errorf("soft save/restore emitted %d bytes, want 0", got)
	}
}

func TestRestoreAtRootIsNoOp(t *testing.T) {
	c := New(1)
	c.Restore()
	c.Restore()

	if c.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", c.Depth())
	}
	if c.Buffer().Len() != 0 {
		t.Errorf("restore at depth 0 emitted %d bytes, want 0", c.Buffer().Len())
	}
}

func TestSaveRestoreIsolatesState(t *testing.T) {
	c := New(1)

	c.SetFillColor("#abc")
	c.SetLineWidth(4)
	c.Save()

	c.SetFillColor("#def")
	c.SetLineWidth(8)
	if got := c.LineWidth(); got != 8 {
		t.Errorf("LineWidth() = %v, want 8", got)
	}

	c.Restore()
	if got := c.FillStyle().Color; got != "#abc" {
		t.Errorf("after restore, fill color = %q, want #abc", got)
	}
	if got := c.LineWidth(); got != 4 {
		t.Errorf("after restore, LineWidth() = %v, want 4", got)
	}
}

func TestSaveDepthLimit(t *testing.T) {
	c := New(1)

	// 254 consecutive saves reach the last usable depth.
	for i := 0; i < maxDepth; i++ {
		c.Save()
	}
	if c.Depth() != maxDepth {
		t.Fatalf("Depth() = %d, want %d", c.Depth(), maxDepth)
	}

	defer func() {
		if recover() == nil {
			t.Error("saving past depth 254 did not panic")
		}
	}()
	c.Save() // the 255th save is fatal
}

func TestCanonicalFlushOrder(t *testing.T) {
	// Mutate attributes in reverse of the canonical order; the flush
	// must still emit them in canonical order.
	c := New(1)

	c.SetFont("12px serif")
	c.SetShadowBlur(3)
	c.SetLineWidth(2)
	c.SetGlobalAlpha(0.5)
	c.SetFillColor("#123")
	c.SetTransform(2, 0, 0, 2, 0, 0)
	c.Fill()

	got := ops(decodeStream(t, c))
	want := []wire.Op{
		wire.OpSetTransform,
		wire.OpSetFillColor,
		wire.OpSetGlobalAlpha,
		wire.OpSetLineWidth,
		wire.OpSetShadowBlur,
		wire.OpSetFont,
		wire.OpFill,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stream mismatch (-want +got):\n%s", diff)
	}
}

func TestGlobalAlphaClampAndNaN(t *testing.T) {
	c := New(1)

	c.SetGlobalAlpha(1.5)
	if got := c.GlobalAlpha(); got != 1.0 {
		t.Errorf("after SetGlobalAlpha(1.5): %v, want 1.0", got)
	}

	c.SetGlobalAlpha(-0.2)
	if got := c.GlobalAlpha(); got != 0.0 {
		t.Errorf("after SetGlobalAlpha(-0.2): %v, want 0.0", got)
	}

	c.SetGlobalAlpha(0.7)
	c.SetGlobalAlpha(math.NaN())
	if got := c.GlobalAlpha(); got != 0.7 {
		t.Errorf("after SetGlobalAlpha(NaN): %v, want prior 0.7", got)
	}
}

func TestNaNRejectedByNumericSetters(t *testing.T) {
	c := New(1)
	nan := math.NaN()

	c.SetLineWidth(nan)
	c.SetMiterLimit(nan)
	c.SetLineDashOffset(nan)
	c.SetShadowBlur(nan)
	c.SetShadowOffsetX(nan)
	c.SetShadowOffsetY(nan)
	c.SetTransform(nan, 0, 0, 1, 0, 0)

	if got := c.LineWidth(); got != 1 {
		t.Errorf("LineWidth() = %v, want unchanged 1", got)
	}
	if got := c.MiterLimit(); got != 10 {
		t.Errorf("MiterLimit() = %v, want unchanged 10", got)
	}
	if got := c.GetTransform(); !got.IsIdentity() {
		t.Errorf("GetTransform() = %+v, want unchanged identity", got)
	}
}

func TestImageSmoothingQualityGating(t *testing.T) {
	c := New(1)

	// Quality change while smoothing is disabled must not flush.
	c.SetImageSmoothingEnabled(false)
	c.SetImageSmoothingQuality("high")
	c.Fill()

	for _, in := range decodeStream(t, c) {
		if in.Op == wire.OpSetImageSmoothingQuality {
			t.Fatalf("quality flushed while smoothing disabled: %s", in)
		}
	}

	// Re-enabling surfaces the pending quality on the next draw.
	c.SetImageSmoothingEnabled(true)
	c.Fill()

	var sawQuality bool
	for _, in := range decodeStream(t, c) {
		if in.Op == wire.OpSetImageSmoothingQuality && in.Str == "high" {
			sawQuality = true
		}
	}
	if !sawQuality {
		t.Error("quality not flushed after smoothing re-enabled")
	}
}

func TestTakePreservesShadows(t *testing.T) {
	c := New(1)

	c.SetFillColor("#fff")
	c.Fill()

	stream := c.Take()
	if len(stream) == 0 {
		t.Fatal("Take returned empty stream")
	}
	if c.Buffer().Len() != 0 {
		t.Errorf("buffer not reset after Take: %d bytes", c.Buffer().Len())
	}

	// The host already has #fff; a new identical write must stay
	// suppressed across the handoff.
	c.SetFillColor("#fff")
	c.Fill()

	got := ops(decodeStream(t, c))
	want := []wire.Op{wire.OpFill}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stream after Take mismatch (-want +got):\n%s", diff)
	}
}

func TestUnboundContextID(t *testing.T) {
	c := New(host.UnboundContext)
	if c.ID() != -1 {
		t.Errorf("ID() = %d, want -1", c.ID())
	}
}

func TestHardSaveCopiesStateForward(t *testing.T) {
	c := New(1)

	c.SetShadowColor("#333")
	c.Save()
	// Unmutated attributes read the copied-forward values.
	if got := c.ShadowColor(); got != "#333" {
		t.Errorf("ShadowColor() after save = %q, want #333", got)
	}
	if got := c.GlobalAlpha(); got != 1 {
		t.Errorf("GlobalAlpha() after save = %v, want 1", got)
	}
}
