package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	bCtx "github.com/x-xyz/staking/base/ctx"
	"github.com/x-xyz/staking/domain"
	"github.com/x-xyz/staking/domain/staking"
	"github.com/x-xyz/staking/service/query"
)

const (
	fieldStakeCode     = "stakeToken.symbol.code"
	fieldRewardCode    = "rewardToken.symbol.code"
	fieldStakeContract = "stakeToken.contract"
)

type configRepoImpl struct {
	q query.Mongo
}

func NewConfigRepo(q query.Mongo) staking.ConfigRepo {
	return &configRepoImpl{q: q}
}

func (r *configRepoImpl) FindOne(ctx bCtx.Ctx, code string) (*staking.TokenConfig, error) {
	cfg := &staking.TokenConfig{}
	if err := r.q.FindOne(ctx, domain.TableTokenConfigs, bson.M{fieldStakeCode: code}, cfg); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return cfg, nil
}

func (r *configRepoImpl) FindAll(ctx bCtx.Ctx, optFns ...staking.ConfigFindAllOptionsFunc) ([]staking.TokenConfig, error) {
	opts, err := staking.GetConfigFindAllOptions(optFns...)
	if err != nil {
		ctx.WithField("err", err).Error("staking.GetConfigFindAllOptions failed")
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
	if opts.RewardCode != nil {
		query[fieldRewardCode] = *opts.RewardCode
	}
	if opts.StakeContract != nil {
		query[fieldStakeContract] = *opts.StakeContract
	}
	if opts.IsPaused != nil {
		query["isPaused"] = *opts.IsPaused
	}

	configs := []staking.TokenConfig{}
	if err := r.q.SearchNSorts(ctx, domain.TableTokenConfigs, offset, limit, []string{fieldStakeCode}, query, &configs); err != nil {
		ctx.WithField("err", err).Error("q.SearchNSorts failed")
		return nil, err
	}
	return configs, nil
}

func (r *configRepoImpl) Upsert(ctx bCtx.Ctx, cfg *staking.TokenConfig) error {
	if err := r.q.Upsert(ctx, domain.TableTokenConfigs, bson.M{fieldStakeCode: cfg.Code()}, cfg); err != nil {
		ctx.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (r *configRepoImpl) SetPaused(ctx bCtx.Ctx, code *string, paused bool, now time.Time) (int64, error) {
	selector := bson.M{}
	if code != nil {
		selector[fieldStakeCode] = *code
	}
	update := bson.M{"isPaused": paused, "updatedAt": now}
	n, err := r.q.Patch(ctx, domain.TableTokenConfigs, selector, update, query.WithPatchMany(code == nil))
	if err == query.ErrNotFound {
		if code != nil {
			return 0, domain.ErrNotFound
		}
		return 0, nil
	} else if err != nil {
		ctx.WithField("err", err).Error("q.Patch failed")
		return 0, err
	}
	return n, nil
}

func (r *configRepoImpl) EnsureIndexes(ctx bCtx.Ctx) error {
	return r.q.EnsureIndexes(ctx, domain.TableTokenConfigs, []mongo.IndexModel{
		{Keys: bson.D{{Key: fieldStakeCode, Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: fieldRewardCode, Value: 1}}},
	})
}
