package Trees

import "github.com/pkg/errors"

// Error kinds returned by Tree implementations. Operations wrap them with the
// operation name, so compare with errors.Is.
var (
	// ErrInvalidPosition is returned for a nil position, a position of another
	// implementation or tree, or a position whose node was deleted.
	ErrInvalidPosition = errors.New("invalid position")
	ErrRootExists      = errors.New("root exists")
	ErrChildExists     = errors.New("child exists")
	// ErrTwoChildren is returned when deleting a node that has both children.
	ErrTwoChildren = errors.New("position has two children")
	ErrNotLeaf     = errors.New("position is not a leaf")
	// ErrTypeMismatch is returned by Attach when a donor isn't the receiver's concrete type.
	ErrTypeMismatch = errors.New("tree type mismatch")
	// ErrSameTree is returned by Attach when a donor is the receiver, or both donors are one tree.
	ErrSameTree  = errors.New("donor is not a distinct tree")
	ErrEmptyTree = errors.New("tree is empty")
)
