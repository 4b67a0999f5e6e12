package canvaswire

import (
	"testing"

	"github.com/gogpu/canvaswire/wire"
)

func TestEmptyStringRevertsToDefault(t *testing.T) {
	c := New(1)

	c.SetCompositeOperation("multiply")
	c.SetFilter("blur(5px)")
	c.SetLineCap("round")
	c.SetLineJoin("bevel")
	c.SetShadowColor("#f00")
	c.SetFont("16px monospace")
	c.SetTextAlign("center")
	c.SetTextBaseline("middle")
	c.SetDirection("rtl")
	c.SetFillColor("#abc")
	c.SetStrokeColor("#def")

	c.SetCompositeOperation("")
	c.SetFilter("")
	c.SetLineCap("")
	c.SetLineJoin("")
	c.SetShadowColor("")
	c.SetFont("")
	c.SetTextAlign("")
	c.SetTextBaseline("")
	c.SetDirection("")
	c.SetFillColor("")
	c.SetStrokeColor("")

	tests := []struct {
		name, got, want string
	}{
		{"composite", c.CompositeOperation(), "source-over"},
		{"filter", c.Filter(), "none"},
		{"lineCap", c.LineCap(), "butt"},
		{"lineJoin", c.LineJoin(), "miter"},
		{"shadowColor", c.ShadowColor(), "rgba(0, 0, 0, 0)"},
		{"font", c.Font(), "10px sans-serif"},
		{"textAlign", c.TextAlign(), "start"},
		{"textBaseline", c.TextBaseline(), "alphabetic"},
		{"direction", c.Direction(), "inherit"},
		{"fillColor", c.FillStyle().Color, "#000000"},
		{"strokeColor", c.StrokeStyle().Color, "#000000"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestStringsForwardedWithoutValidation(t *testing.T) {
	// Syntax validation is the host's job; nonsense strings pass through.
	c := New(1)
	c.SetFillColor("not a color at all")
	c.Fill()

	instrs := decodeStream(t, c)
	if instrs[0].Op != wire.OpSetFillColor || instrs[0].Str != "not a color at all" {
		t.Errorf("instruction = %s, want the raw string forwarded", instrs[0])
	}
}

func TestResetTransform(t *testing.T) {
	c := New(1)

	c.SetTransform(2, 0, 0, 2, 5, 5)
	c.ResetTransform()

	if got := c.GetTransform(); !got.IsIdentity() {
		t.Errorf("GetTransform() = %+v, want identity", got)
	}

	// Never diverged from the host's identity default, so nothing flushes.
	c.Fill()
	for _, in := range decodeStream(t, c) {
		if in.Op == wire.OpSetTransform {
			t.Errorf("transform flushed after reset to identity: %s", in)
		}
	}
}

func TestTransformFlushEncoding(t *testing.T) {
	c := New(1)

	c.SetTransform(1, 2, 3, 4, 5, 6)
	c.Fill()

	instrs := decodeStream(t, c)
	if instrs[0].Op != wire.OpSetTransform {
		t.Fatalf("first op = %s, want SetTransform", instrs[0])
	}
	want := []float64{1, 2, 3, 4, 5, 6}
	for i, v := range want {
		if instrs[0].Floats[i] != v {
			t.Errorf("coefficient %d = %v, want %v", i, instrs[0].Floats[i], v)
		}
	}
}

func TestImageSmoothingEncodedAsFlag(t *testing.T) {
	c := New(1)

	c.SetImageSmoothingEnabled(false)
	c.Fill()

	instrs := decodeStream(t, c)
	if instrs[0].Op != wire.OpSetImageSmoothing || instrs[0].Floats[0] != 0 {
		t.Errorf("instruction = %s, want SetImageSmoothing(0)", instrs[0])
	}
}

func TestLineDashOffsetFlush(t *testing.T) {
	c := New(1)

	c.SetLineDashOffset(2.5)
	c.Stroke()

	instrs := decodeStream(t, c)
	if instrs[0].Op != wire.OpSetLineDashOffset || instrs[0].Floats[0] != 2.5 {
		t.Errorf("instruction = %s, want SetLineDashOffset(2.5)", instrs[0])
	}
}

func TestShadowStateFlush(t *testing.T) {
	c := New(1)

	c.SetShadowBlur(4)
	c.SetShadowColor("#00000080")
	c.SetShadowOffsetX(2)
	c.SetShadowOffsetY(-2)
	c.Fill()

	got := ops(decodeStream(t, c))
	want := []wire.Op{
		wire.OpSetShadowBlur,
		wire.OpSetShadowColor,
		wire.OpSetShadowOffsetX,
		wire.OpSetShadowOffsetY,
		wire.OpFill,
	}
	if len(got) != len(want) {
		t.Fatalf("ops = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("op %d = %s, want %s", i, got[i], want[i])
		}
	}
}
