package types

import "strconv"

type EventKind uint8

const (
	EventKindCreate       EventKind = iota // create
	EventKindDelete                        // delete
	EventKindMove                          // move
	EventKindAccess                        // access
	EventKindModify                        // modify
	EventKindAttrib                        // attrib
	EventKindCloseWrite                    // close_write
	EventKindCloseNowrite                  // close_nowrite
	EventKindOpen                          // open
	EventKindDeleteSelf                    // delete_self
	EventKindMoveSelf                      // move_self
)

var eventKinds = [...]struct {
	name string
	mask Flag
}{
	EventKindCreate:       {"create", FlagCreate},
	EventKindDelete:       {"delete", FlagDelete},
	EventKindMove:         {"move", FlagMovedFrom | FlagMovedTo},
	EventKindAccess:       {"access", FlagAccess},
	EventKindModify:       {"modify", FlagModify},
	EventKindAttrib:       {"attrib", FlagAttrib},
	EventKindCloseWrite:   {"close_write", FlagCloseWrite},
	EventKindCloseNowrite: {"close_nowrite", FlagCloseNowrite},
	EventKindOpen:         {"open", FlagOpen},
	EventKindDeleteSelf:   {"delete_self", FlagDeleteSelf},
	EventKindMoveSelf:     {"move_self", FlagMoveSelf},
}

// EventKinds returns the whole vocabulary in declaration order.
func EventKinds() []EventKind {
	ret := make([]EventKind, len(eventKinds))
	for i := range eventKinds {
		ret[i] = EventKind(i)
	}
	return ret
}

// ParseEventKind is the only way to get an EventKind from a name.
func ParseEventKind(name string) (kind EventKind, err error) {
	for i := range eventKinds {
		if eventKinds[i].name == name {
			kind = EventKind(i)
			return
		}
	}

	err = &ErrUnknownEventKind{Name: name}
	return
}

func (k EventKind) valid() bool {
	return int(k) < len(eventKinds)
}

func (k EventKind) String() string {
	if !k.valid() {
		return "EventKind(" + strconv.Itoa(int(k)) + ")"
	}
	return eventKinds[k].name
}

// Mask returns the raw bits a watch source must report
// for this kind to be delivered.
func (k EventKind) Mask() Flag {
	if !k.valid() {
		return 0
	}
	return eventKinds[k].mask
}

// KindOf maps the flags of a record that is not part of a move
// to its kind, ignoring IN_ISDIR.
// Records carrying anything but exactly one kind's bits have no kind.
func KindOf(flags Flag) (kind EventKind, ok bool) {
	op := flags &^ FlagIsDir
	if op == 0 {
		return
	}

	for i := range eventKinds {
		if EventKind(i) == EventKindMove {
			continue
		}
		if eventKinds[i].mask == op {
			kind = EventKind(i)
			ok = true
			return
		}
	}

	return
}
