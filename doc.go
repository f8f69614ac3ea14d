// Package stage draws actors onto canvas-style 2D surfaces.
//
// An [Actor] is anything with a named property bag ([Properties]) and a Draw
// method. The [Stage] walks its actors in order, applies each one's position,
// rotation and scale, and isolates its drawing state with Save/Restore.
//
// # Labels
//
// [Label] renders one string at its local origin. It fills in three defaults
// (text "", textAlign "start", font "12px Helvetica, Arial") and keeps
// whatever the caller overrides:
//
//	title := stage.NewLabel(stage.LabelConfig{
//		Text:      "Hello",
//		Font:      "bold 24px Helvetica, Arial",
//		TextAlign: "center",
//		Actor:     stage.ActorConfig{X: 320, Y: 40, FillStyle: "#e0e0ff"},
//	})
//
// Draw sets font, fill style and alignment on the surface, in that order, and
// fills the text at (0, 0). Values are not validated; the surface decides.
//
// # Surfaces
//
// [ImageSurface] renders into an [ebiten.Image] with Ebitengine's text/v2
// and the Go fonts. It follows canvas rules: fonts and colors that do not
// parse are ignored. [Recorder] records calls without drawing, for tests.
//
// # Running
//
//	s := stage.NewStage()
//	s.Add(title)
//	stage.Run(s, stage.RunConfig{Title: "Demo", Width: 640, Height: 480})
//
// Numeric properties can be animated with [Stage.Animate], backed by
// [gween].
//
// [ebiten.Image]: https://pkg.go.dev/github.com/hajimehoshi/ebiten/v2#Image
// [gween]: https://github.com/tanema/gween
package stage
