package argsbar

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/muurk/argsbar/internal/logging"
)

func testParam(opts ...ParameterOption) InputParameter {
	base := []ParameterOption{
		WithDescription("test desc"),
		WithRequired(true),
	}
	return NewInputParameter("test", append(base, opts...)...)
}

func TestNewInputValue(t *testing.T) {
	param := testParam()
	input := NewInputValue(param)

	if input.Buffer() != "" {
		t.Errorf("Buffer() = %q, want empty", input.Buffer())
	}
	if input.HasBeenTouched() {
		t.Error("new input should be untouched")
	}
	if input.Param().Name() != param.Name() {
		t.Errorf("Param().Name() = %q, want %q", input.Param().Name(), param.Name())
	}
}

func TestInputParameterAccessors(t *testing.T) {
	p := NewInputParameter("port",
		WithDescription("Port to listen on"),
		WithDefault("8080"),
		WithRequired(true),
		WithEncoding(EncodingInteger),
	)

	if p.Name() != "port" || p.Desc() != "Port to listen on" || p.Default() != "8080" {
		t.Errorf("unexpected parameter text fields: %+v", p)
	}
	if !p.Required() {
		t.Error("Required() = false, want true")
	}
	if p.Encoding() != EncodingInteger {
		t.Errorf("Encoding() = %v, want integer", p.Encoding())
	}
}

func TestInputValueCopiesParameter(t *testing.T) {
	param := testParam(WithDefault("one"))
	a := NewInputValue(param)
	b := NewInputValue(param)

	a.PushChar('x')
	if b.Buffer() != "" {
		t.Error("inputs built from the same parameter must not share state")
	}
	if a.Param().Default() != "one" || b.Param().Default() != "one" {
		t.Error("both inputs should keep the parameter default")
	}
}

func TestPushCharMarksTouched(t *testing.T) {
	tests := []struct {
		name string
		enc  Encoding
		ch   rune
		want string
	}{
		{"Accepted", EncodingString, 'a', "a"},
		{"Rejected", EncodingInteger, 'a', ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := NewInputValue(testParam(WithEncoding(tt.enc)))
			input.PushChar(tt.ch)

			if !input.HasBeenTouched() {
				t.Error("PushChar should mark input touched")
			}
			if input.Buffer() != tt.want {
				t.Errorf("Buffer() = %q, want %q", input.Buffer(), tt.want)
			}
		})
	}
}

func TestPopChar(t *testing.T) {
	input := NewInputValue(testParam())
	for _, ch := range "hé✓" {
		input.PushChar(ch)
	}

	want := []rune{'✓', 'é', 'h'}
	for _, w := range want {
		got, ok := input.PopChar()
		if !ok || got != w {
			t.Fatalf("PopChar() = %q, %v, want %q, true", got, ok, w)
		}
	}

	if _, ok := input.PopChar(); ok {
		t.Error("PopChar() on empty buffer should report false")
	}
	if input.Buffer() != "" {
		t.Errorf("Buffer() = %q, want empty", input.Buffer())
	}
}

func TestPopCharMarksTouchedWhenEmpty(t *testing.T) {
	input := NewInputValue(testParam())
	input.PopChar()

	if !input.HasBeenTouched() {
		t.Error("PopChar on empty buffer should still mark input touched")
	}
}

func TestPopCharKeepsValidPrefix(t *testing.T) {
	input := NewInputValue(testParam(WithEncoding(EncodingBoolean)))
	for _, ch := range "true" {
		input.PushChar(ch)
	}

	input.PopChar()
	input.PopChar()
	if input.Buffer() != "tr" {
		t.Fatalf("Buffer() = %q, want tr", input.Buffer())
	}

	input.PushChar('u')
	input.PushChar('e')
	if input.Buffer() != "true" {
		t.Errorf("Buffer() = %q, want true", input.Buffer())
	}
}

func TestTouchIsIdempotent(t *testing.T) {
	input := NewInputValue(testParam())
	input.Touch()
	input.Touch()

	if !input.HasBeenTouched() {
		t.Error("Touch should mark input touched")
	}
	if input.Buffer() != "" {
		t.Error("Touch must not edit the buffer")
	}
}

func TestReset(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*InputValue)
	}{
		{"Untouched", func(*InputValue) {}},
		{"Touched only", func(v *InputValue) { v.Touch() }},
		{"With text", func(v *InputValue) { v.PushChar('a'); v.PushChar('b') }},
		{"After pop", func(v *InputValue) { v.PushChar('a'); v.PopChar() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			param := testParam(WithDefault("fallback"))
			input := NewInputValue(param)
			tt.setup(input)

			input.Reset()

			if input.Buffer() != "" {
				t.Errorf("Buffer() after Reset = %q, want empty", input.Buffer())
			}
			if input.HasBeenTouched() {
				t.Error("Reset should clear touched")
			}
			if input.Param() != param {
				t.Error("Reset must keep the parameter binding")
			}
		})
	}
}

func TestValueFallsBackToDefault(t *testing.T) {
	input := NewInputValue(testParam(WithEncoding(EncodingInteger), WithDefault("not-a-number")))

	if input.Value() != "not-a-number" {
		t.Errorf("Value() = %q, want default", input.Value())
	}
	if input.Buffer() != "" {
		t.Error("default must not be copied into the buffer")
	}

	input.PushChar('4')
	if input.Value() != "4" {
		t.Errorf("Value() = %q, want 4", input.Value())
	}
}

func TestBooleanFieldScenario(t *testing.T) {
	input := NewInputValue(testParam(WithEncoding(EncodingBoolean)))
	for _, ch := range "false" {
		input.PushChar(ch)
	}
	if input.Buffer() != "false" {
		t.Fatalf("Buffer() = %q, want false", input.Buffer())
	}

	for _, ch := range "xe t" {
		input.PushChar(ch)
		if input.Buffer() != "false" {
			t.Fatalf("push %q after terminal changed buffer to %q", ch, input.Buffer())
		}
	}
}

func TestNumericFieldScenario(t *testing.T) {
	input := NewInputValue(testParam(WithEncoding(EncodingNumeric)))

	input.PushChar('1')
	input.PushChar('.')
	input.PushChar('5')
	if input.Buffer() != "1.5" {
		t.Fatalf("Buffer() = %q, want 1.5", input.Buffer())
	}

	input.PushChar('.')
	if input.Buffer() != "1.5" {
		t.Errorf("Buffer() = %q after second point, want 1.5", input.Buffer())
	}
}

func TestPushCharLogsRejection(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logging.SetLogger(zap.New(core))
	t.Cleanup(func() { logging.SetLogger(zap.NewNop()) })

	input := NewInputValue(testParam(WithEncoding(EncodingInteger)))
	input.PushChar('4')
	input.PushChar('x')

	if input.Buffer() != "4" {
		t.Errorf("Buffer() = %q, want %q", input.Buffer(), "4")
	}
	entries := logs.FilterMessage("Character rejected").All()
	if len(entries) != 1 {
		t.Fatalf("got %d rejection log entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["buffer"] != "4" || fields["char"] != "x" || fields["encoding"] != "integer" {
		t.Errorf("rejection fields = %v", fields)
	}
	if fields["reason"] != "`x` is not a digit" {
		t.Errorf("reason = %v, want %q", fields["reason"], "`x` is not a digit")
	}
}
