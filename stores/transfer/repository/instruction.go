package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	bCtx "github.com/x-xyz/staking/base/ctx"
	"github.com/x-xyz/staking/domain"
	"github.com/x-xyz/staking/domain/transfer"
	"github.com/x-xyz/staking/service/query"
)

type instructionRepoImpl struct {
	q query.Mongo
}

func NewInstructionRepo(q query.Mongo) transfer.Repo {
	return &instructionRepoImpl{q: q}
}

func (r *instructionRepoImpl) Insert(ctx bCtx.Ctx, ins *transfer.Instruction) error {
	if err := r.q.Insert(ctx, domain.TableTransferInstructions, ins); err == query.ErrDuplicateKey {
		return domain.Errorf(domain.ErrConflict, "transfer instruction %s already exists", ins.Id)
	} else if err != nil {
		ctx.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *instructionRepoImpl) FindAll(ctx bCtx.Ctx, optFns ...transfer.FindAllOptionsFunc) ([]transfer.Instruction, error) {
	opts, err := transfer.GetFindAllOptions(optFns...)
	if err != nil {
		ctx.WithField("err", err).Error("transfer.GetFindAllOptions failed")
		return nil, err
	}

	var (
		offset int    = 0
		limit  int    = 0
		sort   string = "createdAt"
		query  bson.M = bson.M{}
	)
	if opts.Offset != nil {
		offset = int(*opts.Offset)
	}
	if opts.Limit != nil {
		limit = int(*opts.Limit)
	}
	if opts.SortBy != nil && opts.SortDir != nil {
		sort = *opts.SortBy
		if *opts.SortDir == domain.SortDirDesc {
			sort = "-" + sort
		}
	}
	if opts.To != nil {
		query["to"] = *opts.To
	}
	if opts.Status != nil {
		query["status"] = *opts.Status
	}
	if opts.Kind != nil {
		query["kind"] = *opts.Kind
	}

	res := []transfer.Instruction{}
	if err := r.q.SearchNSorts(ctx, domain.TableTransferInstructions, offset, limit, []string{sort, "id"}, query, &res); err != nil {
		ctx.WithField("err", err).Error("q.SearchNSorts failed")
		return nil, err
	}
	return res, nil
}

// MarkSent only moves pending instructions, a concurrent dispatcher may have won already
func (r *instructionRepoImpl) MarkSent(ctx bCtx.Ctx, id string, now time.Time) error {
	selector := bson.M{"id": id, "status": transfer.StatusPending}
	update := bson.M{
		"$set": bson.M{"status": transfer.StatusSent, "updatedAt": now, "lastError": ""},
		"$inc": bson.M{"attempts": 1},
	}
	if err := r.q.CustomPatch(ctx, domain.TableTransferInstructions, selector, update, false); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.CustomPatch failed")
		return err
	}
	return nil
}

func (r *instructionRepoImpl) MarkAttemptFailed(ctx bCtx.Ctx, id string, reason string, failed bool, now time.Time) error {
	set := bson.M{"lastError": reason, "updatedAt": now}
	if failed {
		set["status"] = transfer.StatusFailed
	}
	selector := bson.M{"id": id, "status": transfer.StatusPending}
	update := bson.M{"$set": set, "$inc": bson.M{"attempts": 1}}
	if err := r.q.CustomPatch(ctx, domain.TableTransferInstructions, selector, update, false); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.CustomPatch failed")
		return err
	}
	return nil
}

func (r *instructionRepoImpl) RemoveSentBefore(ctx bCtx.Ctx, t time.Time) (int64, error) {
	selector := bson.M{"status": transfer.StatusSent, "updatedAt": bson.M{"$lt": t}}
	n, err := r.q.RemoveAll(ctx, domain.TableTransferInstructions, selector)
	if err != nil {
		ctx.WithField("err", err).Error("q.RemoveAll failed")
		return 0, err
	}
	return n, nil
}

func (r *instructionRepoImpl) EnsureIndexes(ctx bCtx.Ctx) error {
	return r.q.EnsureIndexes(ctx, domain.TableTransferInstructions, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "updatedAt", Value: 1}}},
		{Keys: bson.D{{Key: "to", Value: 1}, {Key: "createdAt", Value: 1}}},
	})
}
