package gosiewalk

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// KeySink receives discrete key events from an input source.
type KeySink interface {
	Press(key ebiten.Key)
	Release(key ebiten.Key)
}

// KeyState is the read side of the key set, used by the update loop.
type KeyState interface {
	IsActive(key ebiten.Key) bool
}

// KeySet is the set of keys currently held down.
type KeySet struct {
	active map[ebiten.Key]struct{}
}

func NewKeySet() *KeySet {
	return &KeySet{active: make(map[ebiten.Key]struct{})}
}

func (k *KeySet) Press(key ebiten.Key) {
	k.active[key] = struct{}{}
}

func (k *KeySet) Release(key ebiten.Key) {
	delete(k.active, key)
}

func (k *KeySet) IsActive(key ebiten.Key) bool {
	_, ok := k.active[key]
	return ok
}

func (k *KeySet) Len() int {
	return len(k.active)
}

type Action int

const (
	MoveForward Action = iota
	MoveBack
	MoveLeft
	MoveRight
)

var actionNames = map[Action]string{
	MoveForward: "forward",
	MoveBack:    "back",
	MoveLeft:    "left",
	MoveRight:   "right",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ParseAction maps a name such as "forward" to its Action.
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// Bindings maps each movement action to the keys that trigger it.
type Bindings map[Action][]ebiten.Key

func DefaultBindings() Bindings {
	return Bindings{
		MoveForward: {ebiten.KeyW, ebiten.KeyArrowUp},
		MoveBack:    {ebiten.KeyS, ebiten.KeyArrowDown},
		MoveLeft:    {ebiten.KeyA, ebiten.KeyArrowLeft},
		MoveRight:   {ebiten.KeyD, ebiten.KeyArrowRight},
	}
}

// Active reports whether any key bound to the action is held.
func (b Bindings) Active(keys KeyState, a Action) bool {
	for _, key := range b[a] {
		if keys.IsActive(key) {
			return true
		}
	}
	return false
}
