package game

import "testing"

func TestSubscribeDeliversCurrentSnapshot(t *testing.T) {
	e := newTestEngine(t, threeWords, 3)
	e.UpdateUserGuess("nope")
	e.CheckUserGuess()

	var got []State
	e.Subscribe(func(s State) { got = append(got, s) })

	if len(got) != 1 {
		t.Fatalf("late subscriber got %d snapshots, want 1", len(got))
	}
	if got[0] != e.State() {
		t.Errorf("late subscriber got %+v, want %+v", got[0], e.State())
	}
	if !got[0].WrongGuess {
		t.Error("cached snapshot lost WrongGuess")
	}
}

func TestSubscribePublishesTransitions(t *testing.T) {
	e := newTestEngine(t, threeWords, 3)

	var got []State
	unsubscribe := e.Subscribe(func(s State) { got = append(got, s) })

	e.UpdateUserGuess("typing") // not published
	e.CheckUserGuess()          // wrong
	e.SkipWord()
	e.UpdateUserGuess(e.Answer())
	e.CheckUserGuess() // correct

	if len(got) != 4 {
		t.Fatalf("got %d snapshots, want 4", len(got))
	}
	if !got[1].WrongGuess {
		t.Error("wrong submit not published")
	}
	if got[2].CurrentWordCount != 2 {
		t.Errorf("skip snapshot word count = %d, want 2", got[2].CurrentWordCount)
	}
	if got[3].Score != 20 || got[3].CurrentWordCount != 3 {
		t.Errorf("correct snapshot = %+v", got[3])
	}

	unsubscribe()
	e.ResetGame()
	if len(got) != 4 {
		t.Errorf("unsubscribed observer still called")
	}
}

func TestUnsubscribeDuringDelivery(t *testing.T) {
	e := newTestEngine(t, threeWords, 3)

	calls := 0
	var unsubscribe func()
	unsubscribe = e.Subscribe(func(State) {
		calls++
		if calls == 2 && unsubscribe != nil {
			unsubscribe()
		}
	})
	other := 0
	e.Subscribe(func(State) { other++ })

	e.SkipWord()
	e.SkipWord()

	if calls != 2 {
		t.Errorf("self-unsubscribing observer called %d times, want 2", calls)
	}
	if other != 3 {
		t.Errorf("second observer called %d times, want 3", other)
	}
}

func TestPhase(t *testing.T) {
	if (State{}).Phase() != PhaseActive {
		t.Error("zero state should be active")
	}
	if (State{IsGameOver: true}).Phase() != PhaseOver {
		t.Error("game over state should be over")
	}
}

func TestIntentDuringDeliveryKeepsOrder(t *testing.T) {
	e := newTestEngine(t, threeWords, 3)

	skipped := false
	e.Subscribe(func(s State) {
		if s.CurrentWordCount == 2 && !skipped {
			skipped = true
			if err := e.SkipWord(); err != nil {
				t.Errorf("SkipWord inside observer failed: %v", err)
			}
		}
	})

	var counts []int
	e.Subscribe(func(s State) { counts = append(counts, s.CurrentWordCount) })

	if err := e.SkipWord(); err != nil {
		t.Fatalf("SkipWord failed: %v", err)
	}

	if e.State().CurrentWordCount != 3 {
		t.Fatalf("engine word count = %d, want 3", e.State().CurrentWordCount)
	}
	want := []int{1, 2, 3}
	if len(counts) != len(want) {
		t.Fatalf("second observer saw counts %v, want %v", counts, want)
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("second observer saw counts %v, want %v", counts, want)
			break
		}
	}
}
