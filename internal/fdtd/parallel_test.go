package fdtd

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestRunAllRunsEveryTask(t *testing.T) {
	var ran int64
	tasks := make([]func() error, 8)
	for i := range tasks {
		tasks[i] = func() error {
			atomic.AddInt64(&ran, 1)
			return nil
		}
	}

	if err := runAll(tasks); err != nil {
		t.Fatalf("run all failed: %v", err)
	}
	if ran != 8 {
		t.Errorf("expected 8 tasks run, got %d", ran)
	}
}

func TestRunAllReturnsFirstErrorInTaskOrder(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")

	var ran int64
	tasks := []func() error{
		func() error { atomic.AddInt64(&ran, 1); return nil },
		func() error { atomic.AddInt64(&ran, 1); return errA },
		func() error { atomic.AddInt64(&ran, 1); return errB },
	}

	err := runAll(tasks)
	if !errors.Is(err, errA) {
		t.Errorf("expected first error a, got %v", err)
	}
	if ran != 3 {
		t.Errorf("expected all tasks to run despite failure, got %d", ran)
	}
}

func TestRunAllSingleTask(t *testing.T) {
	want := errors.New("only")
	err := runAll([]func() error{func() error { return want }})
	if !errors.Is(err, want) {
		t.Errorf("expected single task error, got %v", err)
	}
}

func TestRunAllEmpty(t *testing.T) {
	if err := runAll(nil); err != nil {
		t.Errorf("expected nil for no tasks, got %v", err)
	}
}
