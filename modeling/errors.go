package modeling

import "fmt"

// Kind identifies the class of a construction-time modeling error.
type Kind int

// The kinds of construction-time errors the kernel can raise. Runtime
// errors from user code inside lambda/delta/ta do not exist in this
// taxonomy: the kernel itself never originates them.
const (
	// KindDuplicatePort marks adding a port whose name already exists in
	// the same direction of the same component.
	KindDuplicatePort Kind = iota
	// KindUnknownPort marks referencing a port by name that does not
	// exist in the given direction.
	KindUnknownPort
	// KindUnknownComponent marks referencing a child by a name that is
	// not in the coupled model.
	KindUnknownComponent
	// KindDuplicateComponent marks adding a child whose name collides
	// with an existing child.
	KindDuplicateComponent
	// KindDuplicateCoupling marks adding the same (source, destination)
	// coupling twice.
	KindDuplicateCoupling
	// KindTypeMismatch marks a coupling, or a propagation, whose
	// endpoints disagree on element type.
	KindTypeMismatch
	// KindInvalidParameter marks a fixture constructed with an
	// out-of-range parameter (e.g. DEVStone width/depth < 1).
	KindInvalidParameter
)

func (k Kind) String() string {
	switch k {
	case KindDuplicatePort:
		return "duplicate port"
	case KindUnknownPort:
		return "unknown port"
	case KindUnknownComponent:
		return "unknown component"
	case KindDuplicateComponent:
		return "duplicate component"
	case KindDuplicateCoupling:
		return "duplicate coupling"
	case KindTypeMismatch:
		return "type mismatch"
	case KindInvalidParameter:
		return "invalid parameter"
	default:
		return "unknown error kind"
	}
}

// Error is a construction-time modeling error naming the offending
// entity. Add* methods return it as an ordinary error; callers building
// a fixed topology that treat any construction error as fatal can wrap
// the call in a panic-on-error helper, while callers that want to
// recover can use errors.As to inspect the Kind.
type Error struct {
	Kind   Kind
	Entity string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Entity)
}

func newError(kind Kind, entity string) *Error {
	return &Error{Kind: kind, Entity: entity}
}

// InvalidParameterError reports that entity is out of range for the
// fixture being built (e.g. a DEVStone width or depth below 1). It is
// exported so fixture packages outside modeling can raise it directly
// instead of inventing their own ad-hoc construction error.
func InvalidParameterError(entity string) error {
	return newError(KindInvalidParameter, entity)
}
