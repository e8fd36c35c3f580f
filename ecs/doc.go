// Package ecs connects loaded assets to a [Donburi] world.
//
// [NewDonburiSink] forwards sprite-button activations from an
// assets.ScreenPainter into the world as typed events. Subscribe to
// [ButtonEventType] in your systems to receive them:
//
//	painter.Sink = ecs.NewDonburiSink(world)
//	ecs.ButtonEventType.Subscribe(world, onButton)
//
// [SpawnSprites] creates one entity per registered sprite carrying a
// [SpriteComponent].
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
