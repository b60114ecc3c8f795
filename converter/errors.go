package converter

import (
	"errors"
	"fmt"

	"github.com/foomo/notion-jarkup/notion"
)

// Kind classifies a conversion failure.
type Kind string

const (
	// KindTransport covers failures to list children: network, auth, API status.
	KindTransport Kind = "transport"
	// KindParse covers content the converter cannot interpret.
	KindParse Kind = "parse"
)

var (
	ErrMaxDepthExceeded = errors.New("maximum nesting depth exceeded")
	ErrUnknownRichText  = errors.New("unknown rich text type")
)

// Error aborts a whole conversion. BlockID is the block whose children were
// being converted when the failure happened.
type Error struct {
	Kind    Kind
	BlockID string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error converting block %s: %v", e.Kind, e.BlockID, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// wrapError tags err with its kind unless an inner call already did so.
func wrapError(blockID string, err error) error {
	var convErr *Error
	if errors.As(err, &convErr) {
		return err
	}
	return &Error{Kind: kindOf(err), BlockID: blockID, Err: err}
}

func kindOf(err error) Kind {
	var decodeErr *notion.DecodeError
	switch {
	case errors.As(err, &decodeErr),
		errors.Is(err, ErrMaxDepthExceeded),
		errors.Is(err, ErrUnknownRichText):
		return KindParse
	}
	return KindTransport
}

// IsKind reports whether err is a conversion error of the given kind.
func IsKind(err error, kind Kind) bool {
	var convErr *Error
	return errors.As(err, &convErr) && convErr.Kind == kind
}
