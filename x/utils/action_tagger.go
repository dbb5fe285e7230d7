package utils

import (
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	// ActionKey tags every delivered transaction with its message path.
	ActionKey = "action"
	// LeaseKey tags transactions that act on a lease deposit with the
	// lease identifier.
	LeaseKey = "lease"
)

// LeaseMsg is implemented by messages that refer to a single lease.
type LeaseMsg interface {
	GetLeaseID() string
}

// ActionTagger adds search tags to successful deliveries. Clients can
// subscribe to "action='deposit/release'" or "lease='L-1'" to follow
// deposits. CheckTx is not tagged.
type ActionTagger struct{}

var _ weave.Decorator = ActionTagger{}

func NewActionTagger() ActionTagger { return ActionTagger{} }

func (ActionTagger) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Checker) (*weave.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

func (ActionTagger) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Deliverer) (*weave.DeliverResult, error) {
	// A transaction without a message is refused before it reaches
	// any handler.
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	res, err := next.Deliver(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res.Tags = append(res.Tags, tag(ActionKey, msg.Path()))
	if lm, ok := msg.(LeaseMsg); ok && lm.GetLeaseID() != "" {
		res.Tags = append(res.Tags, tag(LeaseKey, lm.GetLeaseID()))
	}
	return res, nil
}

func tag(key, value string) common.KVPair {
	return common.KVPair{Key: []byte(key), Value: []byte(value)}
}
