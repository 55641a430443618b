package main

import (
	"context"

	"github.com/gabapcia/paysim/internal/config"
	"github.com/gabapcia/paysim/internal/handlers/cli"
	"github.com/gabapcia/paysim/internal/infra/notify/webhook"
	"github.com/gabapcia/paysim/internal/infra/storage/redis"
	"github.com/gabapcia/paysim/internal/ledger"
	"github.com/gabapcia/paysim/internal/payproc"
	"github.com/gabapcia/paysim/internal/pkg/logger"
	"github.com/gabapcia/paysim/internal/pkg/telemetry"
	internalhttp "github.com/gabapcia/paysim/internal/pkg/transport/http"
	"github.com/gabapcia/paysim/internal/wallet"
	"github.com/gabapcia/paysim/internal/webhookrelay"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.OtelServiceName != "" {
		shutdown, err := telemetry.Init(ctx, cfg.OtelServiceName)
		if err != nil {
			panic(err)
		}
		defer shutdown(ctx)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Sync()

	var sink webhookrelay.Sink = webhook.NewLogSink()
	if cfg.WebhookURL != "" {
		sink = webhook.NewSink(cfg.WebhookURL, internalhttp.NewClient())
	}

	relayOpts := []webhookrelay.Option{
		webhookrelay.WithRetryAttempts(cfg.WebhookMaxAttempts),
		webhookrelay.WithRetryDelay(cfg.WebhookRetryDelay),
	}
	if cfg.RedisAddr != "" {
		deadLetters, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Fatal(ctx, "failed to connect to redis", "error", err.Error())
		}
		defer deadLetters.Close()

		relayOpts = append(relayOpts, webhookrelay.WithDeadLetterStorage(deadLetters))
	}
	relay := webhookrelay.New(sink, relayOpts...)

	l := ledger.New(ledger.WithFeeRate(cfg.FeeRate))
	w := wallet.New(l,
		wallet.WithMasterKey(cfg.MasterPublicKey),
		wallet.WithAddressPrefix(cfg.AddressPrefix),
	)
	pp := payproc.New(l, w, webhook.NewNotifier(relay),
		payproc.WithSweepInterval(cfg.SweepInterval),
	)

	if err := cli.Run(ctx, pp, relay); err != nil {
		logger.Fatal(ctx, "paysim exited with error", "error", err.Error())
	}
}
