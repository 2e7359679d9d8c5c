package main

import (
	"context"
	"encoding/json"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/fitstake/weight-wager-platform/internal/shared/config"
	"github.com/fitstake/weight-wager-platform/internal/shared/kafka"
	"github.com/fitstake/weight-wager-platform/internal/shared/logger"
	"github.com/fitstake/weight-wager-platform/internal/shared/metrics"
	"github.com/fitstake/weight-wager-platform/internal/wager-service/wallet"
	ev "github.com/fitstake/weight-wager-platform/pkg/contracts/events"
)

// wager-payout-worker consome os eventos terminais de aposta e aciona a
// carteira: crédito do prêmio quando WON, estorno do stake quando CANCELLED.
// LOST não movimenta dinheiro (o stake já foi debitado na criação).
func main() {
	cfg := config.Load()
	log, err := logger.New("wager-payout-worker", cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Kafka consumer: eventos wager_settled
	reader := kafka.NewReader(cfg.KafkaBrokers, cfg.TopicWagerSettled, "wager-payout")
	defer reader.Close()

	// Kafka producer: wager_payout e, opcionalmente, DLQ
	payoutWriter := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicWagerPayout)
	defer payoutWriter.Close()

	var dlqWriter *kafkago.Writer
	if cfg.TopicWagerSettledDLQ != "" {
		dlqWriter = kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicWagerSettledDLQ)
		defer dlqWriter.Close()
	}

	wcli := wallet.New(cfg.WalletURL)

	// Servidor de métricas Prometheus e healthcheck
	metricsSrv := metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		return nil // worker sem dependência própria de storage
	})
	log.Info("metrics/health", zap.String("addr", metricsSrv.Addr))

	log.Info("wager-payout-worker started",
		zap.String("consume", cfg.TopicWagerSettled),
		zap.String("publish", cfg.TopicWagerPayout),
	)

	ctx := context.Background()

	// Loop principal: consome desfechos, aciona a carteira e publica o resultado
	for {
		_, value, err := kafka.ReadNext(ctx, reader)
		if err != nil {
			log.Warn("kafka read", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}
		var settled ev.WagerSettled
		if jerr := json.Unmarshal(value, &settled); jerr != nil {
			log.Error("unmarshal wager_settled", zap.Error(jerr))
			continue
		}

		if err := processOne(ctx, log, wcli, payoutWriter, dlqWriter, &settled); err != nil {
			log.Error("process payout", zap.String("wagerId", settled.WagerID), zap.Error(err))
			// Backoff simples para evitar flood em caso de erro
			time.Sleep(500 * time.Millisecond)
		}
	}
}

// processOne executa o desfecho financeiro de uma aposta terminal:
// 1. WON: credita o prêmio líquido na carteira
// 2. CANCELLED: estorna a reserva do stake
// 3. Publica evento wager_payout com a operação executada
func processOne(
	ctx context.Context,
	log *zap.Logger,
	wcli *wallet.Client,
	payoutWriter *kafkago.Writer,
	dlqWriter *kafkago.Writer,
	settled *ev.WagerSettled,
) error {
	var (
		op     string
		amount int64
		wkErr  error
	)

	switch settled.Status {
	case "WON":
		op = "PAYOUT"
		amount = settled.ActualPayoutCents
		wkErr = callWallet(ctx, func() error {
			return wcli.Deposit(ctx, settled.UserID, amount, "wager-win:"+settled.WagerID)
		})
	case "CANCELLED":
		op = "REFUND"
		amount = settled.StakeCents
		wkErr = callWallet(ctx, func() error {
			return wcli.Refund(ctx, settled.UserID, settled.WagerID)
		})
	default: // LOST: nada a movimentar
		op = "NONE"
	}

	if wkErr != nil {
		if dlqWriter != nil {
			_ = kafka.WriteJSON(ctx, dlqWriter, settled.WagerID, mustJSON(settled))
		}
		return wkErr
	}

	evp := ev.WagerPayout{
		WagerID:     settled.WagerID,
		UserID:      settled.UserID,
		Operation:   op,
		AmountCents: amount,
		Ts:          time.Now(),
	}
	return kafka.WriteJSON(ctx, payoutWriter, settled.WagerID, mustJSON(evp))
}

// callWallet tenta a chamada até 3 vezes antes de desistir
func callWallet(ctx context.Context, fn func() error) error {
	err := fn()
	for i := 0; err != nil && i < 3; i++ {
		time.Sleep(time.Duration(300*(i+1)) * time.Millisecond)
		err = fn()
	}
	return err
}

func mustJSON(v any) []byte {
	b, _ := json.Marshal(v)
	return b
}
