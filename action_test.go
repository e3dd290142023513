package keyframe

import "testing"

func TestActionBuilderRequiresTarget(t *testing.T) {
	if _, err := NewAction().End(1).Build(); err == nil {
		t.Error("Build() without target succeeded, want error")
	}
}

func TestActionBuilderDefaults(t *testing.T) {
	a, err := NewAction().Target(NewVar(0)).End(5).Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if a.Interpolator() != nil {
		t.Error("Interpolator() != nil, want nil (defer to config default)")
	}
	if !a.runs() {
		t.Error("runs() = false with no predicate, want true")
	}
	if a.Executions() != 0 {
		t.Errorf("Executions() = %d, want 0", a.Executions())
	}
	if a.End() != 5 {
		t.Errorf("End() = %v, want 5", a.End())
	}
}

func TestActionFireIsolatesPanic(t *testing.T) {
	a, err := NewAction().
		Target(NewVar(0)).
		OnFinish(func(FinishEvent) { panic("boom") }).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if got := a.fire(FinishEvent{}); got != "boom" {
		t.Errorf("fire() recovered %v, want \"boom\"", got)
	}

	quiet, _ := NewAction().Target(NewVar(0)).Build()
	if got := quiet.fire(FinishEvent{}); got != nil {
		t.Errorf("fire() with no handler recovered %v, want nil", got)
	}
}
