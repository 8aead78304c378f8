package holder

import "fmt"

// Ownership decides whether a list frees its elements on destruction.
type Ownership uint8

const (
	Owning Ownership = iota
	Borrowing
)

func (o Ownership) String() string {
	switch o {
	case Owning:
		return "owning"
	case Borrowing:
		return "borrowing"
	default:
		return fmt.Sprintf("Ownership(%d)", uint8(o))
	}
}
