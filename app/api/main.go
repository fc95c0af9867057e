package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/staking/base/config"
	"github.com/x-xyz/staking/base/ctx"
	"github.com/x-xyz/staking/base/log"
	"github.com/x-xyz/staking/base/metrics"
	bValidator "github.com/x-xyz/staking/base/validator"
	"github.com/x-xyz/staking/domain"
	mmiddleware "github.com/x-xyz/staking/middleware"
	"github.com/x-xyz/staking/service/cache"
	"github.com/x-xyz/staking/service/cache/provider/compound"
	"github.com/x-xyz/staking/service/cache/provider/primitive"
	redisCache "github.com/x-xyz/staking/service/cache/provider/redis"
	"github.com/x-xyz/staking/service/identity"
	"github.com/x-xyz/staking/service/mutex"
	auth_delivery "github.com/x-xyz/staking/stores/auth/delivery/http"
	auth_middleware "github.com/x-xyz/staking/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/x-xyz/staking/stores/auth/usecase"
	hc_delivery "github.com/x-xyz/staking/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/staking/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/staking/stores/healthcheck/usecase"
	registry_delivery "github.com/x-xyz/staking/stores/registry/delivery/http"
	registry_repository "github.com/x-xyz/staking/stores/registry/repository"
	registry_usecase "github.com/x-xyz/staking/stores/registry/usecase"
	stake_delivery "github.com/x-xyz/staking/stores/stake/delivery/http"
	stake_repository "github.com/x-xyz/staking/stores/stake/repository"
	stake_usecase "github.com/x-xyz/staking/stores/stake/usecase"
	transfer_delivery "github.com/x-xyz/staking/stores/transfer/delivery/http"
	transfer_repository "github.com/x-xyz/staking/stores/transfer/repository"
	transfer_usecase "github.com/x-xyz/staking/stores/transfer/usecase"

	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/x-xyz/staking/app/api/docs"
)

func init() {
	if err := config.Load(pflag.CommandLine, os.Args[1:]); err != nil {
		panic(err)
	}
}

//	@title			Staking API
//	@version		1.0
//	@description	Tiered staking and reward engine.

// main
//
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description				retrive token from #/auth/post_auth_refresh or the signer tool and apply with `bearer {token}`
func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(bValidator.New())

	context := ctx.Background()

	q := config.MustMongo(context)
	redis := config.MustRedis(context)

	// local layer first, redis shared by every replica
	localCache := primitive.NewPrimitive("api", viper.GetInt("cache.localSizeMB"))
	sharedCache := compound.NewCompound(localCache, redisCache.NewRedis(redis))

	identityClient := identity.NewClient(&identity.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    config.DurationOr("identity.timeout", 5*time.Second),
		Endpoint:   viper.GetString("identity.endpoint"),
		Cache:      sharedCache,
		Ttl:        config.DurationOr("identity.ttl", time.Hour),
	})

	locker := mutex.New(mutex.Config{
		Redis:   redis,
		Ttl:     config.DurationOr("mutex.ttl", 10*time.Second),
		Wait:    config.DurationOr("mutex.wait", 5*time.Second),
		Metrics: metrics.New("mutex"),
	})

	// init repos
	configRepo := registry_repository.NewConfigRepo(q)
	stakeRepo := stake_repository.NewStakeRepo(q)
	instructionRepo := transfer_repository.NewInstructionRepo(q)
	for _, ensure := range []func(ctx.Ctx) error{configRepo.EnsureIndexes, stakeRepo.EnsureIndexes, instructionRepo.EnsureIndexes} {
		if err := ensure(context); err != nil {
			context.WithField("err", err).Panic("EnsureIndexes failed")
		}
	}

	clk := clock.New()
	contract := config.ContractProvider()

	// init usecases
	transferUC := transfer_usecase.NewInstructionUseCase(&transfer_usecase.InstructionUseCaseCfg{
		Repo:    instructionRepo,
		Clock:   clk,
		Metrics: metrics.New("transfer"),
	})
	registryUC := registry_usecase.NewRegistryUseCase(&registry_usecase.RegistryUseCaseCfg{
		ConfigRepo: configRepo,
		Transactor: q,
		Locker:     locker,
		Metrics:    metrics.New("registry"),
	})
	stakeUC := stake_usecase.NewStakeUseCase(&stake_usecase.StakeUseCaseCfg{
		ConfigRepo: configRepo,
		StakeRepo:  stakeRepo,
		TransferUC: transferUC,
		Identity:   identityClient,
		Transactor: q,
		Locker:     locker,
		Metrics:    metrics.New("stake"),
	})
	hc := hc_usecase.New(hc_repo.New(q, redis))
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"))

	var admins []domain.Name
	for _, a := range viper.GetStringSlice("auth.admins") {
		admins = append(admins, domain.Name(a))
	}
	authMiddleware := auth_middleware.New(auth, admins)
	httpCache := mmiddleware.NewHttpCache(cache.ServiceConfig{
		Ttl:   config.DurationOr("cache.httpTtl", 10*time.Second),
		Cache: redisCache.NewRedis(redis),
	})
	cached := mmiddleware.CacheHttp(httpCache, metrics.New("http"))

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth, authMiddleware.Auth(), config.DurationOr("auth.ttl", 24*time.Hour))
	registry_delivery.New(e, registryUC, contract, clk, authMiddleware, cached)
	stake_delivery.New(e, stakeUC, contract, clk, authMiddleware)
	transfer_delivery.New(e, transferUC)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
