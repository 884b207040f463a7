package pipeline

import (
	"sync"
	"testing"
)

func TestRecorderConcurrent(t *testing.T) {
	var rec Recorder
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Emit(&rec, Event{File: "f", Stage: StageParse, Status: StatusDone})
		}()
	}
	wg.Wait()
	if n := len(rec.Events()); n != 8 {
		t.Fatalf("recorded %d events, want 8", n)
	}
}

func TestChannelSink(t *testing.T) {
	ch := make(chan Event, 1)
	ChannelSink{Ch: ch}.OnEvent(Event{File: "a", Status: StatusCached})
	ev := <-ch
	if ev.File != "a" || !ev.Finished() {
		t.Fatalf("unexpected event %+v", ev)
	}
	ChannelSink{}.OnEvent(Event{}) // nil channel is a no-op
	Emit(nil, Event{})
}

func TestFinished(t *testing.T) {
	for status, want := range map[Status]bool{
		StatusQueued: false, StatusWorking: false,
		StatusDone: true, StatusCached: true, StatusError: true,
	} {
		if got := (Event{Status: status}).Finished(); got != want {
			t.Errorf("%s: Finished = %v", status, got)
		}
	}
}
