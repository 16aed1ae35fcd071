// Package mixed exercises descriptor generation across packages.
package mixed

import (
	"time"

	"github.com/google/uuid"
)

type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

type Level uint8

type Label string

type Handler interface {
	Handle()
}

type Event struct {
	At      time.Time
	Level   Level
	Label   Label
	Tags    Pair[string, uuid.UUID]
	History Pair[int, []*time.Time]
	Broken  Pair[Handler, int]
}
