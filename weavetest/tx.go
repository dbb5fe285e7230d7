package weavetest

import "github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"

// Tx is a weave.Tx holding a single message. Err, when set, is returned
// instead of the message. Tx cannot be serialized.
type Tx struct {
	Msg weave.Msg
	Err error
}

var _ weave.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (weave.Msg, error) {
	if tx.Err != nil {
		return nil, tx.Err
	}
	return tx.Msg, nil
}

func (tx *Tx) Marshal() ([]byte, error) { panic("weavetest.Tx cannot be serialized") }
func (tx *Tx) Unmarshal([]byte) error   { panic("weavetest.Tx cannot be serialized") }

// Msg is a weave.Msg routed by RoutePath. Serialized is returned by
// Marshal and set by Unmarshal. Err, when set, is returned by Validate,
// Marshal and Unmarshal.
type Msg struct {
	RoutePath  string
	Serialized []byte
	Err        error
}

var _ weave.Msg = (*Msg)(nil)

func (m *Msg) Path() string    { return m.RoutePath }
func (m *Msg) Validate() error { return m.Err }

func (m *Msg) Marshal() ([]byte, error) {
	return m.Serialized, m.Err
}

func (m *Msg) Unmarshal(raw []byte) error {
	m.Serialized = raw
	return m.Err
}
