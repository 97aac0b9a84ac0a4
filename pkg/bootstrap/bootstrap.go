// Package bootstrap populates a freshly registered account with a plausible,
// internally consistent financial history: savings pots, budgets, bills and
// transactions against a bounded pool of pre-existing accounts.
package bootstrap

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"finboard/models"

	"golang.org/x/sync/errgroup"
)

const (
	potCount        = 5
	budgetCount     = 6
	billCount       = 5
	generatedPayees = 2
	poolLimit       = 10
	maxTransactions = 100

	// reservedAdmin never appears in a counterparty pool.
	reservedAdmin = "admin"
)

// Store is the storage surface the bootstrapper reads and writes through.
type Store interface {
	CounterpartyPool(ctx context.Context, excludeID uint, excludeName string, limit int) ([]models.User, error)
	CreatePots(ctx context.Context, pots []models.Pot) error
	CreateBudgets(ctx context.Context, budgets []models.Budget) error
	CreateBills(ctx context.Context, bills []models.Bill) error
	CreateTransactions(ctx context.Context, txs []models.Transaction) error
}

// Bootstrapper generates the initial linked records for a new account.
type Bootstrapper struct {
	store Store
	rng   *rand.Rand
	now   func() time.Time
}

// New returns a Bootstrapper writing through store. A nil rng gets a
// time-seeded source; tests pass a fixed-seed one for reproducibility.
func New(store Store, rng *rand.Rand) *Bootstrapper {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Bootstrapper{store: store, rng: rng, now: time.Now}
}

// Seed generates and persists the account's initial records. All random
// draws happen up front on the calling goroutine; the four batch inserts are
// independent given the owner id and the pre-read pool, so they run
// concurrently and any single failure fails the whole bootstrap.
func (b *Bootstrapper) Seed(ctx context.Context, userID uint) error {
	pots := defaultPots(userID)
	budgets := defaultBudgets(userID)

	payees := make([]string, 0, len(wellKnownPayees)+generatedPayees)
	payees = append(payees, wellKnownPayees...)
	for i := 0; i < generatedPayees; i++ {
		payees = append(payees, b.companyName())
	}
	bills := b.generateBills(userID, payees)

	pool, err := b.store.CounterpartyPool(ctx, userID, reservedAdmin, poolLimit)
	if err != nil {
		return fmt.Errorf("read counterparty pool: %w", err)
	}
	txs := b.generateTransactions(userID, pool)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return b.store.CreatePots(ctx, pots) })
	g.Go(func() error { return b.store.CreateBudgets(ctx, budgets) })
	g.Go(func() error { return b.store.CreateBills(ctx, bills) })
	if len(txs) > 0 {
		g.Go(func() error { return b.store.CreateTransactions(ctx, txs) })
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("seed account %d: %w", userID, err)
	}
	return nil
}

func (b *Bootstrapper) generateBills(userID uint, payees []string) []models.Bill {
	now := b.now()
	bills := make([]models.Bill, 0, billCount)
	for i := 0; i < billCount; i++ {
		bill := models.Bill{
			UserID: userID,
			Status: billStatuses[b.rng.Intn(len(billStatuses))],
			Type:   billTypes[b.rng.Intn(len(billTypes))],
			Amount: float64(2000+b.rng.Intn(18001)) / 100, // 20.00 to 200.00
			Payee:  payees[b.rng.Intn(len(payees))],
		}
		if bill.Type == models.BillMonthly {
			day := 1 + b.rng.Intn(28)
			bill.DueDay = &day
		} else {
			// a future date within one year
			due := now.Add(time.Duration(1+b.rng.Int63n(365*24*3600)) * time.Second)
			bill.DueExactDate = &due
		}
		bills = append(bills, bill)
	}
	return bills
}

func (b *Bootstrapper) generateTransactions(userID uint, pool []models.User) []models.Transaction {
	if len(pool) == 0 {
		// the first account in an empty system has no counterparties and
		// therefore no transaction history
		return nil
	}
	now := b.now()
	n := len(pool) * 10
	if n > maxTransactions {
		n = maxTransactions
	}
	txs := make([]models.Transaction, 0, n)
	for i := 0; i < n; i++ {
		counterparty := pool[b.rng.Intn(len(pool))]
		amount := 10 + b.rng.Intn(991) // 10 to 1000
		txType := models.TransactionIncoming
		if b.rng.Intn(2) == 0 {
			txType = models.TransactionOutgoing
			amount = -amount
		}
		txs = append(txs, models.Transaction{
			UserID:         userID,
			CounterpartyID: counterparty.ID,
			Amount:         amount,
			Date:           now.Add(-time.Duration(b.rng.Int63n(30*24*3600)) * time.Second),
			Description:    b.description(),
			Type:           txType,
			Category:       transactionCategories[b.rng.Intn(len(transactionCategories))],
		})
	}
	return txs
}
