package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/staking/base/config"
	"github.com/x-xyz/staking/base/ctx"
	"github.com/x-xyz/staking/base/goroutine"
	"github.com/x-xyz/staking/base/log"
	"github.com/x-xyz/staking/base/metrics"
	"github.com/x-xyz/staking/domain/transfer"
	"github.com/x-xyz/staking/service/ledger"
	transfer_repository "github.com/x-xyz/staking/stores/transfer/repository"
	transfer_usecase "github.com/x-xyz/staking/stores/transfer/usecase"
)

func init() {
	if err := config.Load(pflag.CommandLine, os.Args[1:]); err != nil {
		panic(err)
	}
}

// dispatchOnce sends one batch, a panic is logged and the next tick tries again
func dispatchOnce(c ctx.Ctx, uc transfer.UseCase, batch int, met metrics.Service) {
	done := goroutine.RecoverableGo(c, "dispatch", func() {
		sent, failed, err := uc.DispatchPending(c, batch)
		if err != nil {
			c.WithField("err", err).Error("transfers.DispatchPending failed")
			return
		}
		if sent+failed > 0 {
			c.WithFields(log.Fields{"sent": sent, "failed": failed}).Info("dispatched")
		}
	}, goroutine.WithRecover(func(*goroutine.PanicEvent) {
		met.BumpSum("dispatch.panic", 1)
	}))
	<-done
}

func main() {
	context := ctx.Background()

	q := config.MustMongo(context)

	instructionRepo := transfer_repository.NewInstructionRepo(q)
	if err := instructionRepo.EnsureIndexes(context); err != nil {
		context.WithField("err", err).Panic("EnsureIndexes failed")
	}

	ledgerClient := ledger.NewClient(&ledger.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    config.DurationOr("ledger.timeout", 10*time.Second),
		Endpoint:   viper.GetString("ledger.endpoint"),
		Apikey:     viper.GetString("ledger.apikey"),
	})

	met := metrics.New("transfer")
	transferUC := transfer_usecase.NewInstructionUseCase(&transfer_usecase.InstructionUseCaseCfg{
		Repo:        instructionRepo,
		Ledger:      ledgerClient,
		Clock:       clock.New(),
		MaxAttempts: viper.GetInt("dispatcher.maxAttempts"),
		Concurrency: viper.GetInt("dispatcher.concurrency"),
		Metrics:     met,
	})

	batch := viper.GetInt("dispatcher.batch")
	if batch <= 0 {
		batch = 100
	}
	interval := config.DurationOr("dispatcher.interval", 5*time.Second)
	retention := config.DurationOr("dispatcher.retention", 30*24*time.Hour)
	pruneEvery := config.DurationOr("dispatcher.pruneInterval", time.Hour)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	context.WithFields(log.Fields{"interval": interval, "batch": batch}).Info("starting dispatcher")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	pruneTicker := time.NewTicker(pruneEvery)
	defer pruneTicker.Stop()
FOR:
	for {
		select {
		case sig := <-quit:
			log.Log().WithField("signal", sig).Info("received signal")
			break FOR
		case <-ticker.C:
			dispatchOnce(context, transferUC, batch, met)
		case <-pruneTicker.C:
			if n, err := transferUC.PruneSent(context, retention); err != nil {
				context.WithField("err", err).Error("transfers.PruneSent failed")
			} else if n > 0 {
				context.WithField("removed", n).Info("pruned sent transfers")
			}
		}
	}
	log.Log().Info("dispatcher stopped")
}
