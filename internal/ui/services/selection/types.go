package selection

import "fmt"

// State holds one inclusion flag per event, indexed by store position
type State struct {
	Flags []bool
}

// IndexError reports an index or range outside the event store
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("event index %d out of range [0, %d)", e.Index, e.Len)
}
