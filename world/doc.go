// Package world composes a terrain with the lifts that run over it.
//
// A World is the static input of a planning run: one immutable Terrain and an
// ordered list of Lifts. Construction validates every lift endpoint against
// the terrain and builds spatial indexes over lift endpoints so that the
// nearest lifts to a position can be found without scanning the whole list.
//
// A World holds no mutable state after New returns and may be shared.
package world
