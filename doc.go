// Package canopy is a retained-mode menu toolkit for [Ebitengine].
//
// Canopy provides the pieces a gamepad- and keyboard-driven game menu needs:
// an anchor-based layout tree, buttons and selection lists with explicit
// state machines, a grid layout, and a focus manager that moves focus by
// direction or pointer.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := canopy.NewScene(canopy.DefaultConfig())
//	play := scene.NewButton("play", "Play", font)
//	play.Rect = canopy.RectFromOffsets(canopy.Vec2{X: 20, Y: 20}, canopy.Vec2{X: 120, Y: 40})
//	scene.Add(play)
//	canopy.Run(scene, canopy.RunConfig{Title: "Menu"})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly, returning [Scene.Layout] from
// Layout.
//
// # Layout
//
// Every element is a [Node] with an [AnchorRect]: anchors are fractions of
// the parent's box and offsets are UI units added on top. Boxes are
// recomputed from the root down on every update and are stored as an
// [AABB] with y pointing up. A [Viewport] maps UI units to window pixels.
//
// A [GridLayout] positions its cells from fixed or stretching row and
// column sizes. The root of a menu is a [Canvas], which also keeps the set
// of nodes that were reachable and enabled during the last pass.
//
// # Focus
//
// [Button] and [List] embed [Selectable]. Registered with a [FocusManager],
// they receive input while focused. Each frame the manager drops elements
// that left the canvas, focuses whatever the pointer moved onto, and then
// either lets the focused element consume the input or searches for the
// best candidate in the pressed direction.
//
// # Styling and configuration
//
// [LoadConfig] and [LoadStyle] read YAML. Colors are written as quoted hex
// strings, e.g. "#ff922b".
//
// Buttons and lists can draw sprites instead of filled rectangles. Build a
// [SpriteSheet] with [NewGridSpriteSheet] or load TexturePacker JSON with
// [LoadSpriteSheet], then look up indices by frame name:
//
//	sheet, err := canopy.LoadSpriteSheet(atlasJSON, atlasImage)
//	b.Sprites = sheet
//	b.SpriteIndices[canopy.ButtonFocused] = sheet.Index("button_focused.png")
//
// # Automation
//
// [Scene.InjectNavigate], [Scene.InjectValidate] and [Scene.InjectClick]
// queue synthetic input. [LoadTestScript] drives them from a JSON script and
// can check focus and capture screenshots along the way.
//
// Widget events can be forwarded to a [Donburi] world through the adapter in
// canopy/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package canopy
