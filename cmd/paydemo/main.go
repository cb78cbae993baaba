// Command paydemo walks the payment flows against the in-memory
// reference adapters and logs every step. It exists to show the
// intended call sequences; no real gateway is contacted.
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/shopspring/decimal"

	"merchantcore/config"
	"merchantcore/flows"
	"merchantcore/internal/gatewaytest"
	"merchantcore/inputs"
	"merchantcore/pkg/idempotency"
	"merchantcore/pkg/logger"
	"merchantcore/pkg/pointers"
	"merchantcore/types"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}
	logger.Setup(logger.Options{Level: cfg.LogLevel, Console: cfg.LogConsole})

	if err := run(cfg); err != nil {
		log.Fatalf("Demo error: %s", err)
	}
}

func run(cfg config.Config) error {
	ctx := idempotency.WithKey(context.Background(), idempotency.NewKey())
	g := gatewaytest.NewCardGateway()

	card, err := types.NewCreditCard(inputs.CreditCard{
		Number:      "4532 0151 1283 0366",
		ExpiryMonth: 12,
		ExpiryYear:  2030,
		CVV:         "123",
		HolderName:  "john doe",
	})
	if err != nil {
		return err
	}

	payment, err := types.NewSplitPayment(card, inputs.Payment{
		Currency:       cfg.DemoCurrency,
		TotalAmount:    decimal.RequireFromString("100.00"),
		BaseAmount:     decimal.RequireFromString("100.00"),
		IdempotenceKey: idempotency.FromContext(ctx),
	}, nil)
	if err != nil {
		return err
	}

	// One-step charge.
	tx, err := g.Charge(ctx, payment, types.TotalPayment(), flows.ChargeOptions{})
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "charged", "transaction", tx.ID, "status", tx.Status, "amount", tx.Amount.String())

	// Replaying the same key returns the original transaction.
	replayed, err := g.Charge(ctx, payment, types.TotalPayment(), flows.ChargeOptions{})
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "replayed", "transaction", replayed.ID, "same", tx.Equal(replayed))

	// Two-step flow under its own key.
	deferredKey := idempotency.NewKey()
	deferredCtx := idempotency.WithKey(ctx, deferredKey)
	deferred, err := types.NewSplitPayment(card, inputs.Payment{
		Currency:       cfg.DemoCurrency,
		TotalAmount:    decimal.RequireFromString("80.00"),
		BaseAmount:     decimal.RequireFromString("80.00"),
		IdempotenceKey: deferredKey,
	}, nil)
	if err != nil {
		return err
	}

	auth, err := g.Authorize(deferredCtx, deferred, types.TotalPayment(), flows.ChargeOptions{})
	if err != nil {
		return err
	}
	slog.InfoContext(deferredCtx, "authorized", "transaction", auth.ID, "amount", auth.Amount.String())

	captured, err := g.Capture(deferredCtx, auth.ID, types.PartialCapture{
		Amount: pointers.Ptr(decimal.RequireFromString("60.00")),
	})
	if err != nil {
		return err
	}
	slog.InfoContext(deferredCtx, "captured", "transaction", captured.ID, "amount", captured.Amount.String())

	refunded, err := g.Refund(deferredCtx, captured.ID, types.PartialRefund{})
	if err != nil {
		return err
	}
	slog.InfoContext(deferredCtx, "refunded", "transaction", refunded.ID, "status", refunded.Status)

	// Recover everything recorded under the first key.
	it, err := g.Transactions(ctx, payment.IdempotenceKey)
	if err != nil {
		return err
	}
	recovered, err := flows.Drain(ctx, it)
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "recovered", "count", len(recovered))

	return nil
}
