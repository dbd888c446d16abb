package bc64

import "testing"

func TestSchedulerFiresInDeadlineOrder(t *testing.T) {
	s := NewScheduler()
	var order []string

	s.Schedule(CBRaster, 100, func() { order = append(order, "raster") })
	s.Schedule(CBFrame, 50, func() { order = append(order, "frame") })
	s.Schedule(CBTimer1A, 200, func() { order = append(order, "timer1a") })

	s.Advance(150)

	if want := []string{"frame", "raster"}; !equalStrings(order, want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	if s.Armed(CBTimer1A) == false {
		t.Fatal("timer1a deadline is in the future and should still be armed")
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.Schedule(CBRaster, 10, func() { fired = true })
	s.Cancel(CBRaster)
	s.Advance(20)
	if fired {
		t.Fatal("cancelled callback should not fire")
	}
}

func TestSchedulerRescheduleFromWithinCallback(t *testing.T) {
	s := NewScheduler()
	count := 0
	var tick func()
	tick = func() {
		count++
		if count < 3 {
			s.Schedule(CBRaster, s.Clock()+63, tick)
		}
	}
	s.Schedule(CBRaster, 0, tick)

	s.Advance(63)
	if count != 1 {
		t.Fatalf("expected one firing after 63 cycles, got count=%d", count)
	}

	s.Advance(63)
	if count != 2 {
		t.Fatalf("expected second firing after another 63 cycles, got count=%d", count)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
