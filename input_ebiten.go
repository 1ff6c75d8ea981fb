package gosiewalk

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenKeyFeed turns ebiten's per-tick key transitions into KeySink events.
// Poll must be called from Game.Update, before the frame reads the key set.
type EbitenKeyFeed struct {
	pressed  []ebiten.Key
	released []ebiten.Key
}

func (f *EbitenKeyFeed) Poll(sink KeySink) {
	f.pressed = inpututil.AppendJustPressedKeys(f.pressed[:0])
	f.released = inpututil.AppendJustReleasedKeys(f.released[:0])

	for _, key := range f.pressed {
		sink.Press(key)
	}
	for _, key := range f.released {
		sink.Release(key)
	}
}
