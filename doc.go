// Package toast implements transient, auto-expiring notification overlays
// for frame-driven terminal applications.
//
// A Factory holds shared display configuration (font face, colors, layout
// limits) and is assembled once through a single-use Builder. Each call to
// Create measures and lays out one Toast against the current viewport
// width; its geometry is frozen at creation. The caller keeps created
// toasts in its own queue and calls Render once per frame with the frame
// context until Render reports the toast expired.
//
// Usage pattern:
//
//	factory, err := toast.NewBuilder().
//	    Font(font.NewCellFace()).
//	    Viewport(term).
//	    Build()
//
//	queue = append(queue, factory.Create("saved", toast.LengthShort))
//
//	// each frame
//	if len(queue) > 0 && !queue[0].Render(ctx, buf) {
//	    queue = queue[1:]
//	}
//
// Toasts fade out linearly over the factory's fading duration and stop
// drawing text once nearly transparent. There is no cancellation surface;
// early dismissal is dropping the instance.
package toast
