package observer

type EventType int

const (
	SnapshotEvent EventType = 1
	BackfillEvent EventType = 2
)

type Event struct {
	E EventType
}

type Observer interface {
	OnNotify(Event)
}

type Notifier interface {
	Register(Observer)
	Notify(Event)
}
