// Package rotladder animates a vertical chain of rotating ladder rungs for
// [Ebitengine].
//
// Each node of the chain draws two line segments that rotate from a single
// horizontal bar into two vertical rails as the node's scale goes from 0 to 1.
// A tap starts an animation that sweeps through the chain one node at a time;
// at either end the sweep direction flips, so the chain animates back and
// forth forever.
//
// # Quick start
//
//	r := rotladder.NewRenderer(rotladder.Options{Nodes: 5})
//	if err := rotladder.Run(r, rotladder.RunConfig{
//		Title: "Rot Ladder", Width: 480, Height: 640,
//	}); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, embed a [Renderer] in your own ebiten.Game: call
// [Renderer.HandleTap] on input, [Renderer.Update] with the frame time, and
// [Renderer.Render] with a [DrawFunc] such as one wrapping [DrawNode].
//
// # State machine
//
// A [State] rests at scale 0 or 1. [State.StartUpdating] moves it toward the
// opposite end; [State.Update] advances it one tick and reports when it
// arrives. A [Ladder] holds the cursor node and the sweep direction and
// reports each step as a [Transition]. The [Animator] is a frame-clock timer
// that ticks every 50ms by default.
//
// The [Renderer]'s [SweepMode] decides when the animator stops: [SweepChain]
// keeps going node to node until the chain end, [SweepNode] stops after each
// node.
//
// # Scripts
//
// [LoadScript] reads a JSON list of tap/wait/snapshot steps. [Replay] runs it
// without a window; [RunConfig.Script] runs it inside one.
//
// [Ebitengine]: https://ebitengine.org
package rotladder
