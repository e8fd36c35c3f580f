package ecs

import (
	"github.com/phanxgames/assets"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ButtonEventType is the Donburi event type for sprite-button activations.
var ButtonEventType = events.NewEventType[assets.ButtonEvent]()

// SpriteData is the component attached by SpawnSprites. The registry that
// loaded Sprite must outlive the entity.
type SpriteData struct {
	Name   string
	Sprite *assets.Sprite
}

// SpriteComponent identifies entities spawned from registry sprites.
var SpriteComponent = donburi.NewComponentType[SpriteData]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink returns an EventSink that publishes to ButtonEventType.
// Events are queued until ButtonEventType.ProcessEvents runs.
func NewDonburiSink(world donburi.World) assets.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitButton(event assets.ButtonEvent) {
	ButtonEventType.Publish(s.world, event)
}

// SpawnSprites creates an entity for each named sprite, or for every sprite
// in reg when no names are given. It stops at the first name that is not a
// sprite and returns the entities created so far with the error.
func SpawnSprites(world donburi.World, reg *assets.Registry, names ...string) ([]donburi.Entity, error) {
	if len(names) == 0 {
		for _, name := range reg.Names() {
			if k, _ := reg.Kind(name); k == assets.KindSprite {
				names = append(names, name)
			}
		}
	}
	out := make([]donburi.Entity, 0, len(names))
	for _, name := range names {
		spr, err := assets.Get[*assets.Sprite](reg, name)
		if err != nil {
			return out, err
		}
		e := world.Create(SpriteComponent)
		SpriteComponent.SetValue(world.Entry(e), SpriteData{Name: name, Sprite: spr})
		out = append(out, e)
	}
	return out, nil
}
