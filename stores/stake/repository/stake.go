package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	bCtx "github.com/x-xyz/staking/base/ctx"
	"github.com/x-xyz/staking/domain"
	"github.com/x-xyz/staking/domain/staking"
	"github.com/x-xyz/staking/service/query"
)

const fieldCode = "stakedAmount.symbol.code"

type stakeRepoImpl struct {
	q query.Mongo
}

func NewStakeRepo(q query.Mongo) staking.StakeRepo {
	return &stakeRepoImpl{q: q}
}

func selector(account domain.Name, code string) bson.M {
	return bson.M{"account": account, fieldCode: code}
}

func (r *stakeRepoImpl) FindOne(ctx bCtx.Ctx, account domain.Name, code string) (*staking.StakeEntry, error) {
	entry := &staking.StakeEntry{}
	if err := r.q.FindOne(ctx, domain.TableStakes, selector(account, code), entry); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return entry, nil
}

func (r *stakeRepoImpl) FindAll(ctx bCtx.Ctx, optFns ...staking.StakeFindAllOptionsFunc) ([]staking.StakeEntry, error) {
	opts, err := staking.GetStakeFindAllOptions(optFns...)
	if err != nil {
		ctx.WithField("err", err).Error("staking.GetStakeFindAllOptions failed")
		return nil, err
	}

	var (
		offset int    = 0
		limit  int    = 0
		query  bson.M = bson.M{}
	)
	if opts.Offset != nil {
		offset = int(*opts.Offset)
	}
	if opts.Limit != nil {
		limit = int(*opts.Limit)
	}
	if opts.Account != nil {
		query["account"] = *opts.Account
	}
	if opts.Code != nil {
		query[fieldCode] = *opts.Code
	}

	entries := []staking.StakeEntry{}
	if err := r.q.SearchNSorts(ctx, domain.TableStakes, offset, limit, []string{"account", fieldCode}, query, &entries); err != nil {
		ctx.WithField("err", err).Error("q.SearchNSorts failed")
		return nil, err
	}
	return entries, nil
}

func (r *stakeRepoImpl) Create(ctx bCtx.Ctx, entry *staking.StakeEntry) error {
	if err := r.q.Insert(ctx, domain.TableStakes, entry); err == query.ErrDuplicateKey {
		return domain.Errorf(domain.ErrConflict, "%s already stakes %s", entry.Account, entry.Code())
	} else if err != nil {
		ctx.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *stakeRepoImpl) Update(ctx bCtx.Ctx, entry *staking.StakeEntry) error {
	update := bson.M{
		"stakedAmount": entry.StakedAmount,
		"lastClaim":    entry.LastClaim,
		"updatedAt":    entry.UpdatedAt,
	}
	if _, err := r.q.Patch(ctx, domain.TableStakes, selector(entry.Account, entry.Code()), update); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.Patch failed")
		return err
	}
	return nil
}

func (r *stakeRepoImpl) Remove(ctx bCtx.Ctx, account domain.Name, code string) error {
	if err := r.q.Remove(ctx, domain.TableStakes, selector(account, code)); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.Remove failed")
		return err
	}
	return nil
}

func (r *stakeRepoImpl) EnsureIndexes(ctx bCtx.Ctx) error {
	return r.q.EnsureIndexes(ctx, domain.TableStakes, []mongo.IndexModel{
		{Keys: bson.D{{Key: "account", Value: 1}, {Key: fieldCode, Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: fieldCode, Value: 1}}},
	})
}
