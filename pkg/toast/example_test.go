package toast_test

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/toastkit/pkg/toast"
)

func ExampleManager() {
	manager, err := toast.New(
		toast.WithMaxVisible(2),
		toast.WithDefaultDuration(0), // sticky unless overridden
		toast.WithDismissDelay(0),
		toast.WithNewestOnTop(false),
	)
	if err != nil {
		panic(err)
	}
	defer manager.Close()

	manager.Subscribe(func(e toast.Event) {
		fmt.Printf("%s: %s\n", e.Type, e.Notification.Message)
	})

	a := manager.Info("first")
	manager.Success("second")
	manager.Warning("third") // over capacity, queued

	manager.Dismiss(a.ID, true) // frees a slot, admits "third"

	// Output:
	// shown: first
	// shown: second
	// dismissed: first
	// shown: third
}

func ExampleManager_actions() {
	manager, err := toast.New(toast.WithDefaultDuration(0))
	if err != nil {
		panic(err)
	}
	defer manager.Close()

	n := manager.Error("Upload failed",
		toast.WithTitle("Storage"),
		toast.WithActions(
			toast.Action{Label: "Retry", Style: "primary", OnClick: func() { /* renderer dispatches */ }},
			toast.Action{Label: "Cancel", Style: "secondary", OnClick: func() {}},
		),
	)

	for _, action := range n.Actions {
		fmt.Println(action.Label)
	}

	// Output:
	// Retry
	// Cancel
}

func ExampleWithDuration() {
	manager, err := toast.New(toast.WithDismissDelay(0))
	if err != nil {
		panic(err)
	}
	defer manager.Close()

	n := manager.Info("short-lived", toast.WithDuration(10*time.Millisecond))

	time.Sleep(200 * time.Millisecond)
	if _, ok := manager.Get(n.ID); !ok {
		fmt.Println("auto-dismissed")
	}

	// Output:
	// auto-dismissed
}
