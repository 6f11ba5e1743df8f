package motion

import (
	"fmt"
	"testing"
)

func TestDebugLogScheduleLargeTree(t *testing.T) {
	root := NewGroup("big")
	for i := 0; i < debugMaxNodes+1; i++ {
		root.AddChild(NewNode(fmt.Sprintf("n%d", i), 0.1, EaseLinear, FadeUp(1, 0)))
	}
	r, err := NewReveal("big", root, RevealConfig{})
	if err != nil {
		t.Fatal(err)
	}
	// Only checks that logging a large block does not panic.
	debugLogSchedule(r)
	debugLogTrigger(TriggerEvent{Block: "big", Type: TriggerLeave, Ratio: 0.2, Time: 1})
}

func TestTriggerEventTypeString(t *testing.T) {
	if TriggerEnter.String() != "enter" || TriggerLeave.String() != "leave" {
		t.Error("unexpected event names")
	}
}
