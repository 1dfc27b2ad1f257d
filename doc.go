// Package motion is the animation and interaction engine behind scroll
// driven articles.
//
// An article is a tree of positioned items plus a set of interactions. The
// package covers two independent concerns:
//
//   - [Animator] interpolates an item's properties (size, position, angle,
//     opacity, colors, fill stacks, shader parameters) across the scroll
//     position from sparse keyframes.
//   - [Registry] and [ItemController] run the interactions: two-state
//     machines advanced by page load, scroll position and pointer triggers,
//     which move items between style overrides with CSS transitions.
//
// # Animation
//
// Build an [Animator] from an item's keyframes on one layout, then query it
// with the static value as fallback:
//
//	kf := motion.NewKeyframes(keyframes)
//	anim := kf.Animator("hero", "desktop")
//	if anim != nil {
//		dims := anim.Dimensions(motion.DimensionsValue{Width: 200, Height: 120}, scroll)
//	}
//
// Between two keyframes scalars interpolate linearly, colors mix in OkLch
// (via [go-colorful]) and fill stacks interpolate layer by layer. Outside the
// keyframe range the nearest keyframe wins; there is no extrapolation.
//
// # Interactions
//
// One [Registry] is built per article and shared by every item:
//
//	reg, err := motion.NewRegistry(article, motion.WithViewportWidth(1440))
//	if err != nil {
//		return err // errors.Is(err, motion.ErrNoActiveState)
//	}
//	ctrl := motion.NewItemController("hero", reg, rerender)
//
//	reg.NotifyLoad()
//	reg.NotifyScroll(scrollY)
//	ctrl.SendTrigger(motion.TriggerClick)
//
//	st := ctrl.State([]string{"width", "angle"})
//	// st.Styles["width"], st.Transition == "width 300ms ease-out 0ms, transform ..."
//
// Each item carries one stage per interaction: an [ActiveStage] once settled
// or a [TransitioningStage] while its CSS transition runs. The renderer
// reports each finished CSS property with [ItemController.HandleTransitionEnd];
// the stage settles once every pending property has reported.
//
// Hosts without a CSS engine can play transitions with
// [ItemController.Play], which runs one [gween] tween per CSS property and
// reports the ends itself. [Session] wires controllers and playback for every
// item and replays YAML scripts, which is how the tests and the preview
// drive the engine.
//
// The package is single threaded: call it from one goroutine, and coalesce
// scroll events to one [Registry.NotifyScroll] per frame.
//
// # Precedence
//
// A rendered property takes the interaction override first, then the
// animated value, then the item's static value. [Compose] implements that
// rule.
//
// # Logging
//
// motion is silent by default. [SetLogger] installs a [log/slog] logger;
// debug records trace accepted triggers and transition ends, warnings report
// stuck transitions and skipped script steps.
//
// [go-colorful]: https://github.com/lucasb-eyer/go-colorful
// [gween]: https://github.com/tanema/gween
package motion
