// Package deck is a full-page slide deck for [Ebitengine].
//
// A deck is a vertical stack of viewport-sized slides. Wheel, keyboard,
// touch swipes and a column of indicator hitboxes move between slides with
// an eased transition: the slide container travels one viewport height per
// index, project images and background shapes move by per-layer parallax
// distances, the progress marker and page ticker follow, and the text of a
// slide rises into place when it is entered going forward.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens a resizable window:
//
//	d, err := deck.NewDeck(deck.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := deck.Run(d); err != nil {
//		log.Fatal(err)
//	}
//
// [Deck] implements [ebiten.Game], so it can also be embedded in a game of
// your own by forwarding Update, Draw and Layout.
//
// # Transitions
//
// Raw input is classified into an [Intent] by a [Normalizer] (keys and wheel)
// or a [SwipeDetector] (touch). The [Controller] owns the slide index and the
// transition lock: while a transition runs, further intents are dropped, not
// queued. Each transition is a single [Timeline] from the [AnimationEngine];
// the lock releases when it completes. A watchdog releases a lock held longer
// than Config.LockTimeout.
//
// Viewport changes pass through a [ResizeAdapter] debounce and then
// reposition the current slide without changing the index.
//
// # Configuration
//
// A [Config] holds the slides, timings, swipe thresholds, key bindings and
// parallax tables. [LoadConfig] reads TOML over [DefaultConfig] and rejects
// unknown fields:
//
//	duration = 0.8
//
//	[keys]
//	next = ["J", "ArrowDown", "PageDown", "Space"]
//
//	[[slides]]
//	name = "intro"
//	title = "Hello."
//	color = "#1d1b26"
//
// # Scripts
//
// [LoadScript] parses a JSON list of input steps (wheel, key, swipe, click,
// hover, resize, wait) and slide assertions (expect) that [Deck.SetScript]
// plays back frame by frame, for automated runs without a person at the
// keyboard.
//
// # Observers
//
// [WithEventSink] receives a [TransitionEvent] when a transition starts,
// completes, is forced by the watchdog, or re-settles after a resize. The
// deck/ecs module bridges these events into a Donburi world.
//
// [Ebitengine]: https://ebitengine.org
package deck
