package render

import (
	"sort"

	"github.com/milk9111/mozaorun/ecs/component"
)

// AnimationLibrary stores animations by key, usually the prefab they were
// read from.
type AnimationLibrary struct {
	clips map[string]component.Animation
}

// NewAnimationLibrary creates an empty library.
func NewAnimationLibrary() *AnimationLibrary {
	return &AnimationLibrary{clips: make(map[string]component.Animation)}
}

// Register adds an animation to the library.
func (l *AnimationLibrary) Register(key string, anim component.Animation) {
	if l == nil || key == "" || len(anim.Frames) == 0 {
		return
	}
	anim.Frames = append([]string(nil), anim.Frames...)
	l.clips[key] = anim
}

// Get returns a copy of an animation by key.
func (l *AnimationLibrary) Get(key string) (component.Animation, bool) {
	if l == nil || key == "" {
		return component.Animation{}, false
	}
	clip, ok := l.clips[key]
	if ok {
		clip.Frames = append([]string(nil), clip.Frames...)
	}
	return clip, ok
}

// Keys returns registered keys in sorted order.
func (l *AnimationLibrary) Keys() []string {
	if l == nil {
		return nil
	}
	keys := make([]string, 0, len(l.clips))
	for k := range l.clips {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
