package transfer

import (
	"time"

	"github.com/google/uuid"

	"github.com/x-xyz/staking/base/ctx"
	"github.com/x-xyz/staking/domain"
)

type Kind string

const (
	KindReward Kind = "reward"
	KindRefund Kind = "refund"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
)

// Instruction is an outbound token transfer waiting in the outbox.
// Id doubles as the idempotency key toward the ledger.
type Instruction struct {
	Id        string       `json:"id" bson:"id"`
	Kind      Kind         `json:"kind" bson:"kind"`
	Contract  domain.Name  `json:"contract" bson:"contract"`
	From      domain.Name  `json:"from" bson:"from"`
	To        domain.Name  `json:"to" bson:"to"`
	Quantity  domain.Asset `json:"quantity" bson:"quantity"`
	Memo      string       `json:"memo" bson:"memo"`
	Status    Status       `json:"status" bson:"status"`
	Attempts  int          `json:"attempts" bson:"attempts"`
	LastError string       `json:"lastError,omitempty" bson:"lastError,omitempty"`
	CreatedAt time.Time    `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt" bson:"updatedAt"`
}

// NewInstruction builds a pending instruction moving quantity of the token issued by contract
func NewInstruction(kind Kind, contract, from, to domain.Name, quantity domain.Asset, memo string, now time.Time) *Instruction {
	return &Instruction{
		Id:        uuid.NewString(),
		Kind:      kind,
		Contract:  contract,
		From:      from,
		To:        to,
		Quantity:  quantity,
		Memo:      memo,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type FindAllOptions struct {
	SortBy  *string         `bson:"-"`
	SortDir *domain.SortDir `bson:"-"`
	Offset  *int32          `bson:"-"`
	Limit   *int32          `bson:"-"`
	To      *domain.Name    `bson:"-"`
	Status  *Status         `bson:"-"`
	Kind    *Kind           `bson:"-"`
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithSort(sortby string, sortdir domain.SortDir) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.SortBy = &sortby
		options.SortDir = &sortdir
		return nil
	}
}

func WithPagination(offset int32, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithTo(to domain.Name) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.To = &to
		return nil
	}
}

func WithStatus(status Status) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		switch status {
		case StatusPending, StatusSent, StatusFailed:
		default:
			return domain.Errorf(domain.ErrValidation, "unknown status %q", status)
		}
		options.Status = &status
		return nil
	}
}

func WithKind(kind Kind) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Kind = &kind
		return nil
	}
}

type Repo interface {
	Insert(c ctx.Ctx, ins *Instruction) error
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]Instruction, error)
	MarkSent(c ctx.Ctx, id string, now time.Time) error
	// MarkAttemptFailed counts a failed attempt, failed moves the instruction out of pending
	MarkAttemptFailed(c ctx.Ctx, id string, reason string, failed bool, now time.Time) error
	// RemoveSentBefore deletes sent instructions last updated before t
	RemoveSentBefore(c ctx.Ctx, t time.Time) (int64, error)
	EnsureIndexes(c ctx.Ctx) error
}

// Ledger performs token transfers
type Ledger interface {
	Transfer(c ctx.Ctx, ins *Instruction) error
}

type UseCase interface {
	// Enqueue stores ins as pending, inside the caller's transaction if any
	Enqueue(c ctx.Ctx, ins *Instruction) error
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]Instruction, error)
	// DispatchPending sends up to limit pending instructions, oldest first
	DispatchPending(c ctx.Ctx, limit int) (sent int, failed int, err error)
	// PruneSent drops sent instructions older than retention, failed ones stay for inspection
	PruneSent(c ctx.Ctx, retention time.Duration) (int64, error)
}
