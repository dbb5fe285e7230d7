package weave

import (
	"reflect"
	"regexp"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
)

// Marshaller serializes a value to protobuf.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent values can be stored and loaded. Unmarshal usually needs a
// pointer receiver, so Marshaller is kept separate.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Msg is a request for a state change, such as creating a deposit.
// Authentication data lives in the Tx that carries it.
type Msg interface {
	Persistent

	// Path selects the handler. It is made of segments matching
	// [a-zA-Z0-9_-]+ joined by "/".
	Path() string

	// Validate checks the message alone, without reading the store.
	Validate() error
}

// Tx is a transaction as submitted by a client. The application tx type
// adds whatever its decorators need, for example signatures.
type Tx interface {
	Persistent
	GetMsg() (Msg, error)
}

// TxDecoder parses raw transaction bytes.
type TxDecoder func(raw []byte) (Tx, error)

// GetPath returns the message path of tx, or "(missing)".
func GetPath(tx Tx) string {
	if msg, err := tx.GetMsg(); err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

var pathRe = regexp.MustCompile(`^[a-zA-Z0-9_\-]+(/[a-zA-Z0-9_\-]+)*$`)

func IsValidPath(path string) bool {
	return pathRe.MatchString(path)
}

// LoadMsg copies the message of tx into dest and validates it. dest must
// point to a variable of the message type or of a pointer to it.
func LoadMsg(tx Tx, dest interface{}) error {
	msg, err := tx.GetMsg()
	switch {
	case err != nil:
		return errors.Wrap(err, "cannot get transaction message")
	case msg == nil:
		return errors.Wrap(errors.ErrMsg, "no message")
	}

	target := reflect.ValueOf(dest)
	if target.Kind() != reflect.Ptr || target.IsNil() {
		return errors.Wrap(errors.ErrHuman, "destination must be a non nil pointer")
	}
	target = target.Elem()
	src := reflect.ValueOf(msg)
	if !src.Type().AssignableTo(target.Type()) && src.Kind() == reflect.Ptr {
		src = src.Elem()
	}
	if !src.Type().AssignableTo(target.Type()) {
		return errors.Wrapf(errors.ErrType, "want %T message, got %T", dest, msg)
	}
	target.Set(src)

	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}
	return nil
}
