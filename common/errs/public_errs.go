package errs

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/errors/withstack"
)

// PublicError is an error that, when caught by error handler, should return a user-friendly error response to the user.
// The optional code lets clients branch on the failure without parsing the message.
type PublicError struct {
	err     error
	message string
	code    string
}

func (p PublicError) Error() string {
	return p.err.Error()
}

func (p PublicError) Message() string {
	return p.message
}

func (p PublicError) Code() string {
	return p.code
}

func (p PublicError) Unwrap() error {
	return p.err
}

func NewPublicError(message string) error {
	return withstack.WithStackDepth(&PublicError{err: errors.New(message), message: message}, 1)
}

// WithPublicMessage marks err as safe to show to the user, prefixed with prefix if given.
func WithPublicMessage(err error, prefix string) error {
	if err == nil {
		return nil
	}
	return withstack.WithStackDepth(&PublicError{err: err, message: publicMessage(err, prefix)}, 1)
}

// WithPublicMessageCode is WithPublicMessage with a machine-readable code attached.
func WithPublicMessageCode(err error, prefix string, code string) error {
	if err == nil {
		return nil
	}
	return withstack.WithStackDepth(&PublicError{err: err, message: publicMessage(err, prefix), code: code}, 1)
}

// WithFixedPublicMessage marks err as public but shows only message, keeping err's text internal.
func WithFixedPublicMessage(err error, message string, code string) error {
	if err == nil {
		return nil
	}
	return withstack.WithStackDepth(&PublicError{err: err, message: message, code: code}, 1)
}

func publicMessage(err error, prefix string) string {
	if prefix == "" {
		return err.Error()
	}
	return fmt.Sprintf("%s: %s", prefix, err.Error())
}
