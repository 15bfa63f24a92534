package argsbar

import (
	"fmt"
	"reflect"
	"testing"
)

func namedParams(names ...string) []InputParameter {
	params := make([]InputParameter, len(names))
	for i, name := range names {
		params[i] = testParam()
		params[i].name = name
	}
	return params
}

func paramsOfSize(n int) []InputParameter {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("p%d", i)
	}
	return namedParams(names...)
}

func TestWorkingWithArgsBar(t *testing.T) {
	bar := NewBar(namedParams("foo", "bar"))

	if bar.inputs[0].param.name != "foo" || bar.inputs[0].buffer != "" {
		t.Fatalf("unexpected first input: %+v", bar.inputs[0])
	}
	if bar.inputs[1].param.name != "bar" || bar.inputs[1].buffer != "" {
		t.Fatalf("unexpected second input: %+v", bar.inputs[1])
	}
	if !bar.Current().IsNone() {
		t.Fatalf("initial focus = %v, want none", bar.Current())
	}

	bar.ToggleNext()
	expectFocus(t, bar, FocusedAt(0))

	if input := bar.ActiveInput(); input != nil {
		input.PushChar('B')
	}
	if bar.inputs[0].buffer != "B" {
		t.Fatalf("inputs[0].buffer = %q, want B", bar.inputs[0].buffer)
	}

	steps := []struct {
		toggle func()
		want   Focus
	}{
		{bar.ToggleNext, FocusedAt(1)},
		{bar.ToggleNext, Unfocused()},
		{bar.ToggleNext, FocusedAt(0)},
		{bar.TogglePrev, Unfocused()},
		{bar.TogglePrev, FocusedAt(1)},
		{bar.TogglePrev, FocusedAt(0)},
		{bar.TogglePrev, Unfocused()},
	}
	for i, step := range steps {
		step.toggle()
		if bar.Current() != step.want {
			t.Fatalf("step %d: focus = %v, want %v", i, bar.Current(), step.want)
		}
	}
}

func expectFocus(t *testing.T, bar *Bar, want Focus) {
	t.Helper()
	if bar.Current() != want {
		t.Fatalf("focus = %v, want %v", bar.Current(), want)
	}
}

func TestEmptyBarTogglesAreNoOps(t *testing.T) {
	bar := NewBar(nil)

	bar.ToggleNext()
	bar.TogglePrev()

	if !bar.Current().IsNone() {
		t.Errorf("focus = %v, want none", bar.Current())
	}
	if bar.ActiveInput() != nil {
		t.Error("ActiveInput() should be nil for an empty bar")
	}
}

func TestToggleNextCycleCompleteness(t *testing.T) {
	for n := 1; n <= 5; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			bar := NewBar(paramsOfSize(n))

			var visited []Focus
			for i := 0; i < n+1; i++ {
				bar.ToggleNext()
				visited = append(visited, bar.Current())
			}

			for i := 0; i < n; i++ {
				if visited[i] != FocusedAt(i) {
					t.Errorf("step %d = %v, want %d", i, visited[i], i)
				}
			}
			if !visited[n].IsNone() {
				t.Errorf("after %d toggles focus = %v, want none", n+1, visited[n])
			}
		})
	}
}

func TestTogglePrevCycleCompleteness(t *testing.T) {
	for n := 1; n <= 5; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			bar := NewBar(paramsOfSize(n))

			for i := n - 1; i >= 0; i-- {
				bar.TogglePrev()
				expectFocus(t, bar, FocusedAt(i))
			}
			bar.TogglePrev()
			expectFocus(t, bar, Unfocused())
		})
	}
}

func TestTogglesAreInverses(t *testing.T) {
	const n = 4
	states := []Focus{Unfocused()}
	for i := 0; i < n; i++ {
		states = append(states, FocusedAt(i))
	}

	for _, start := range states {
		t.Run(start.String(), func(t *testing.T) {
			bar := NewBar(paramsOfSize(n))

			bar.current = start
			bar.ToggleNext()
			bar.TogglePrev()
			expectFocus(t, bar, start)

			bar.TogglePrev()
			bar.ToggleNext()
			expectFocus(t, bar, start)
		})
	}
}

func TestActiveInputFollowsFocus(t *testing.T) {
	bar := NewBar(namedParams("a", "b", "c"))

	if bar.ActiveInput() != nil {
		t.Fatal("ActiveInput() should be nil while unfocused")
	}

	for i := 0; i < 3; i++ {
		bar.ToggleNext()
		active := bar.ActiveInput()
		if active != bar.Input(i) {
			t.Fatalf("ActiveInput() is not input %d", i)
		}
		if !bar.IsFocused(i) {
			t.Errorf("IsFocused(%d) = false", i)
		}
	}
}

func TestInputAccessors(t *testing.T) {
	bar := NewBar(namedParams("a", "b"))

	if bar.Len() != 2 {
		t.Errorf("Len() = %d, want 2", bar.Len())
	}
	if bar.Input(-1) != nil || bar.Input(2) != nil {
		t.Error("Input() out of range should be nil")
	}

	inputs := bar.Inputs()
	inputs[0] = nil
	if bar.Input(0) == nil {
		t.Error("Inputs() must return a copy of the slice")
	}
}

func TestFocus(t *testing.T) {
	if idx, ok := Unfocused().Index(); ok || idx != 0 {
		t.Errorf("Unfocused().Index() = %d, %v", idx, ok)
	}
	if idx, ok := FocusedAt(3).Index(); !ok || idx != 3 {
		t.Errorf("FocusedAt(3).Index() = %d, %v", idx, ok)
	}
	if (Focus{}) != Unfocused() {
		t.Error("zero Focus should equal Unfocused()")
	}
	if FocusedAt(0).IsNone() {
		t.Error("FocusedAt(0) is a real focus, not none")
	}
	if Unfocused().String() != "none" || FocusedAt(2).String() != "2" {
		t.Error("unexpected Focus.String() output")
	}
}

func TestBarReset(t *testing.T) {
	bar := NewBar(namedParams("a", "b"))
	bar.ToggleNext()
	bar.ActiveInput().PushChar('x')
	bar.ToggleNext()
	bar.ActiveInput().Touch()

	bar.Reset()

	if !bar.Current().IsNone() {
		t.Errorf("focus after Reset = %v, want none", bar.Current())
	}
	for i, in := range bar.Inputs() {
		if in.Buffer() != "" || in.HasBeenTouched() {
			t.Errorf("input %d not reset: buffer=%q touched=%v", i, in.Buffer(), in.HasBeenTouched())
		}
	}
}

func TestValuesAndMissingRequired(t *testing.T) {
	bar := NewBar([]InputParameter{
		NewInputParameter("host", WithRequired(true), WithDefault("localhost")),
		NewInputParameter("port", WithRequired(true), WithEncoding(EncodingInteger)),
		NewInputParameter("debug", WithEncoding(EncodingBoolean)),
		NewInputParameter("token", WithRequired(true)),
	})

	if got := bar.MissingRequired(); !reflect.DeepEqual(got, []string{"port", "token"}) {
		t.Errorf("MissingRequired() = %v, want [port token]", got)
	}

	bar.ToggleNext()
	bar.ToggleNext()
	for _, ch := range "80a80" {
		bar.ActiveInput().PushChar(ch)
	}

	want := map[string]string{
		"host":  "localhost",
		"port":  "8080",
		"debug": "",
		"token": "",
	}
	if got := bar.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}
	if got := bar.MissingRequired(); !reflect.DeepEqual(got, []string{"token"}) {
		t.Errorf("MissingRequired() = %v, want [token]", got)
	}
}

func TestFieldsKeepOrderAndDuplicates(t *testing.T) {
	bar := NewBar(namedParams("a", "b", "a"))
	bar.ToggleNext()
	bar.ActiveInput().PushChar('x')

	want := []Field{{"a", "x"}, {"b", ""}, {"a", ""}}
	if got := bar.Fields(); !reflect.DeepEqual(got, want) {
		t.Errorf("Fields() = %v, want %v", got, want)
	}
	if got := bar.Values(); !reflect.DeepEqual(got, map[string]string{"a": "", "b": ""}) {
		t.Errorf("Values() = %v, want later duplicate to win", got)
	}
}

func TestFieldsEmptyBar(t *testing.T) {
	if got := NewBar(nil).Fields(); len(got) != 0 {
		t.Errorf("Fields() = %v, want empty", got)
	}
}
