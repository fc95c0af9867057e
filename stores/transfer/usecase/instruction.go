package usecase

import (
	"errors"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/viney-shih/goroutines"

	"github.com/x-xyz/staking/base/ctx"
	"github.com/x-xyz/staking/base/log"
	"github.com/x-xyz/staking/base/metrics"
	"github.com/x-xyz/staking/domain"
	"github.com/x-xyz/staking/domain/transfer"
)

const (
	defaultMaxAttempts = 10
	defaultConcurrency = 8
)

type instructionUseCaseImpl struct {
	repo        transfer.Repo
	ledger      transfer.Ledger
	clock       clock.Clock
	maxAttempts int
	concurrency int
	met         metrics.Service
}

type InstructionUseCaseCfg struct {
	Repo transfer.Repo
	// Ledger is only needed by DispatchPending
	Ledger      transfer.Ledger
	Clock       clock.Clock
	MaxAttempts int
	Concurrency int
	Metrics     metrics.Service
}

func NewInstructionUseCase(cfg *InstructionUseCaseCfg) transfer.UseCase {
	im := &instructionUseCaseImpl{
		repo:        cfg.Repo,
		ledger:      cfg.Ledger,
		clock:       cfg.Clock,
		maxAttempts: cfg.MaxAttempts,
		concurrency: cfg.Concurrency,
		met:         cfg.Metrics,
	}
	if im.clock == nil {
		im.clock = clock.New()
	}
	if im.maxAttempts <= 0 {
		im.maxAttempts = defaultMaxAttempts
	}
	if im.concurrency <= 0 {
		im.concurrency = defaultConcurrency
	}
	if im.met == nil {
		im.met = metrics.NewLog("transfer")
	}
	return im
}

func (im *instructionUseCaseImpl) Enqueue(c ctx.Ctx, ins *transfer.Instruction) error {
	if ins.Quantity.Amount <= 0 || !ins.Quantity.IsValid() {
		return domain.Errorf(domain.ErrValidation, "%s transfer of %s must be positive", ins.Kind, ins.Quantity)
	}
	if ins.Status != transfer.StatusPending {
		return domain.Errorf(domain.ErrValidation, "only pending instructions can be enqueued, got %s", ins.Status)
	}
	if err := im.repo.Insert(c, ins); err != nil {
		c.WithField("err", err).Error("repo.Insert failed")
		return err
	}
	im.met.BumpSum("enqueue.count", 1, "kind", string(ins.Kind))
	return nil
}

func (im *instructionUseCaseImpl) FindAll(c ctx.Ctx, opts ...transfer.FindAllOptionsFunc) ([]transfer.Instruction, error) {
	res, err := im.repo.FindAll(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("repo.FindAll failed")
		return nil, err
	}
	return res, nil
}

type outcome struct {
	ins *transfer.Instruction
	err error
}

// DispatchPending sends pending instructions in parallel. Delivery is at least once:
// an instruction sent but not marked is sent again on the next run under the same id.
func (im *instructionUseCaseImpl) DispatchPending(c ctx.Ctx, limit int) (int, int, error) {
	defer im.met.BumpTime("dispatch.time").End()

	if im.ledger == nil {
		return 0, 0, errors.New("ledger not configured")
	}
	pending, err := im.repo.FindAll(c,
		transfer.WithStatus(transfer.StatusPending),
		transfer.WithSort("createdAt", domain.SortDirAsc),
		transfer.WithPagination(0, int32(limit)),
	)
	if err != nil {
		c.WithField("err", err).Error("repo.FindAll failed")
		return 0, 0, err
	}
	if len(pending) == 0 {
		return 0, 0, nil
	}

	b := goroutines.NewBatch(im.concurrency, goroutines.WithBatchSize(len(pending)))
	defer b.Close()
	for i := range pending {
		ins := &pending[i]
		b.Queue(func() (interface{}, error) {
			return outcome{ins: ins, err: im.ledger.Transfer(c, ins)}, nil
		})
	}
	b.QueueComplete()

	sent, failed := 0, 0
	for ret := range b.Results() {
		o := ret.Value().(outcome)
		now := im.clock.Now().UTC()
		logger := c.WithFields(log.Fields{"id": o.ins.Id, "kind": o.ins.Kind, "to": o.ins.To})

		if o.err == nil {
			if err := im.repo.MarkSent(c, o.ins.Id, now); err != nil && !errors.Is(err, domain.ErrNotFound) {
				logger.WithField("err", err).Error("repo.MarkSent failed")
			}
			sent++
			continue
		}

		failed++
		giveUp := o.ins.Attempts+1 >= im.maxAttempts
		if err := im.repo.MarkAttemptFailed(c, o.ins.Id, o.err.Error(), giveUp, now); err != nil && !errors.Is(err, domain.ErrNotFound) {
			logger.WithField("err", err).Error("repo.MarkAttemptFailed failed")
		}
		if giveUp {
			im.met.BumpSum("dispatch.giveup", 1, "kind", string(o.ins.Kind))
			logger.WithField("err", o.err).Error("transfer given up")
		} else {
			logger.WithField("err", o.err).Warn("transfer attempt failed")
		}
	}

	im.met.BumpSum("dispatch.sent", float64(sent))
	im.met.BumpSum("dispatch.err", float64(failed))
	return sent, failed, nil
}

func (im *instructionUseCaseImpl) PruneSent(c ctx.Ctx, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, domain.Errorf(domain.ErrValidation, "retention must be positive, got %s", retention)
	}
	n, err := im.repo.RemoveSentBefore(c, im.clock.Now().Add(-retention))
	if err != nil {
		c.WithField("err", err).Error("repo.RemoveSentBefore failed")
		return 0, err
	}
	im.met.BumpSum("prune.removed", float64(n))
	return n, nil
}
