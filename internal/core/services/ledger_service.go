package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/corebank/internal/apperrors"
	"github.com/SscSPs/corebank/internal/core/domain"
	portsrepo "github.com/SscSPs/corebank/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/corebank/internal/core/ports/services"
	"github.com/SscSPs/corebank/internal/dto"
	"github.com/SscSPs/corebank/internal/platform/metrics"
	"github.com/SscSPs/corebank/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ledgerService implements portssvc.LedgerSvc. Every mutation runs in one
// session: accounts are locked, rules are evaluated against the locked state,
// balances are written and transaction records appended, then the session commits.
type ledgerService struct {
	BaseService
	txManager       portsrepo.TransactionManager
	accountRepo     portsrepo.AccountRepositoryFacade
	transactionRepo portsrepo.TransactionRepositoryFacade
	principals      portsrepo.PrincipalResolver
	metrics         metrics.MetricsCollector
	now             func() time.Time
}

// LedgerOption is a functional option for configuring the ledger service
type LedgerOption func(*ledgerService)

// WithMetricsCollector reports ledger outcomes to collector.
func WithMetricsCollector(collector metrics.MetricsCollector) LedgerOption {
	return func(s *ledgerService) {
		s.metrics = collector
	}
}

// WithPrincipalResolver overrides the resolver taken from the user repository,
// e.g. with a circuit-breaker wrapped one.
func WithPrincipalResolver(resolver portsrepo.PrincipalResolver) LedgerOption {
	return func(s *ledgerService) {
		s.principals = resolver
	}
}

// WithClock sets the time source used for audit and record timestamps.
func WithClock(now func() time.Time) LedgerOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// NewLedgerService creates the ledger service with the provided options
func NewLedgerService(repos portsrepo.RepositoryProvider, options ...LedgerOption) portssvc.LedgerSvc {
	svc := &ledgerService{
		txManager:       repos.TxManager,
		accountRepo:     repos.AccountRepo,
		transactionRepo: repos.TransactionRepo,
		principals:      repos.UserRepo,
		metrics:         metrics.NoOpCollector{},
		now:             time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

func (s *ledgerService) observe(operation string, start time.Time, err error) {
	s.metrics.RecordLedgerOperation(operation, metrics.Outcome(err), time.Since(start))
}

// lockOptional locks an account by number, returning nil when it does not exist.
func (s *ledgerService) lockOptional(ctx context.Context, session portsrepo.Session, accountNumber string) (*domain.Account, error) {
	acc, err := s.accountRepo.LockAccountByNumber(ctx, session, accountNumber)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock account %s: %w", accountNumber, err)
	}
	return acc, nil
}

// Deposit credits an account on behalf of a TELLER or ADMIN.
func (s *ledgerService) Deposit(ctx context.Context, req dto.DepositRequest, identity string) (view *domain.TransactionView, err error) {
	defer func(start time.Time) { s.observe(metrics.OpDeposit, start, err) }(time.Now())

	check := domain.DepositCheck{Amount: req.Amount}
	if err := domain.Evaluate(check, domain.DepositRequestRules); err != nil {
		s.LogFailure(ctx, err, "Deposit rejected", slog.String("account_number", req.AccountNumber))
		return nil, err
	}

	// The performer is looked up before Begin; the session must be the only
	// store connection held while rows are locked.
	performer, err := resolveOptional(ctx, s.principals, identity)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve deposit performer")
		return nil, err
	}

	session, err := s.txManager.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin deposit session")
		return nil, err
	}
	defer s.RollbackQuietly(ctx, session)

	if check.Account, err = s.lockOptional(ctx, session, req.AccountNumber); err != nil {
		s.LogError(ctx, err, "Failed to lock deposit account", slog.String("account_number", req.AccountNumber))
		return nil, err
	}
	if err := domain.Evaluate(check, domain.DepositLockedRules); err != nil {
		s.LogFailure(ctx, err, "Deposit rejected", slog.String("account_number", req.AccountNumber))
		return nil, err
	}
	check.Performer = performer
	if err := domain.Evaluate(check, domain.DepositRules); err != nil {
		s.LogFailure(ctx, err, "Deposit rejected", slog.String("account_number", req.AccountNumber))
		return nil, err
	}

	now := s.now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     check.Account.AccountID,
		AccountNumber: check.Account.AccountNumber,
		Amount:        req.Amount,
		Type:          domain.Deposit,
		Description:   domain.DescriptionOrDefault(req.Description),
		PerformedBy:   check.Performer.UserID,
		CreatedAt:     now,
	}
	newBalance, err := accounting.ApplyTransaction(check.Account.Balance, txn)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.UpdateAccountBalance(ctx, session, check.Account.AccountID, newBalance, check.Performer.UserID, now); err != nil {
		s.LogError(ctx, err, "Failed to update balance", slog.String("account_id", check.Account.AccountID))
		return nil, err
	}
	if err := s.transactionRepo.AppendTransactions(ctx, session, []domain.Transaction{txn}); err != nil {
		s.LogError(ctx, err, "Failed to append deposit record", slog.String("account_id", check.Account.AccountID))
		return nil, err
	}
	if err := session.Commit(ctx); err != nil {
		s.LogError(ctx, err, "Failed to commit deposit", slog.String("account_id", check.Account.AccountID))
		return nil, err
	}

	s.metrics.RecordAmountMoved(metrics.OpDeposit, req.Amount)
	s.LogInfo(ctx, "Deposit committed",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("account_number", txn.AccountNumber),
		slog.String("amount", req.Amount.String()))

	return &domain.TransactionView{Transaction: txn, NewBalance: newBalance}, nil
}

// Transfer moves money between two distinct accounts. Both accounts are locked
// in ascending account number order.
func (s *ledgerService) Transfer(ctx context.Context, req dto.TransferRequest, identity string) (views []domain.TransactionView, err error) {
	defer func(start time.Time) { s.observe(metrics.OpTransfer, start, err) }(time.Now())

	check := domain.TransferCheck{
		Amount:            req.Amount,
		SourceNumber:      req.SourceAccountNumber,
		DestinationNumber: req.DestinationAccountNumber,
	}
	logAttrs := []any{
		slog.String("source_account", req.SourceAccountNumber),
		slog.String("destination_account", req.DestinationAccountNumber),
	}
	if err := domain.Evaluate(check, domain.TransferRequestRules); err != nil {
		s.LogFailure(ctx, err, "Transfer rejected", logAttrs...)
		return nil, err
	}

	performer, err := resolveOptional(ctx, s.principals, identity)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve transfer performer")
		return nil, err
	}

	session, err := s.txManager.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin transfer session")
		return nil, err
	}
	defer s.RollbackQuietly(ctx, session)

	lockOrder := []string{req.SourceAccountNumber, req.DestinationAccountNumber}
	sort.Strings(lockOrder)
	locked := make(map[string]*domain.Account, len(lockOrder))
	for _, number := range lockOrder {
		acc, err := s.lockOptional(ctx, session, number)
		if err != nil {
			s.LogError(ctx, err, "Failed to lock transfer account", slog.String("account_number", number))
			return nil, err
		}
		locked[number] = acc
	}
	check.Source = locked[req.SourceAccountNumber]
	check.Destination = locked[req.DestinationAccountNumber]

	if err := domain.Evaluate(check, domain.TransferLockedRules); err != nil {
		s.LogFailure(ctx, err, "Transfer rejected", logAttrs...)
		return nil, err
	}
	check.Performer = performer
	if err := domain.Evaluate(check, domain.TransferRules); err != nil {
		s.LogFailure(ctx, err, "Transfer rejected", logAttrs...)
		return nil, err
	}

	now := s.now()
	description := domain.DescriptionOrDefault(req.Description)
	out := domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     check.Source.AccountID,
		AccountNumber: check.Source.AccountNumber,
		Amount:        req.Amount,
		Type:          domain.TransferOut,
		Description:   description,
		PerformedBy:   check.Performer.UserID,
		CreatedAt:     now,
	}
	in := out
	in.TransactionID = uuid.NewString()
	in.AccountID = check.Destination.AccountID
	in.AccountNumber = check.Destination.AccountNumber
	in.Type = domain.TransferIn

	sourceBalance, err := accounting.ApplyTransaction(check.Source.Balance, out)
	if err != nil {
		return nil, err
	}
	destinationBalance, err := accounting.ApplyTransaction(check.Destination.Balance, in)
	if err != nil {
		return nil, err
	}

	for _, update := range []struct {
		accountID string
		balance   decimal.Decimal
	}{
		{check.Source.AccountID, sourceBalance},
		{check.Destination.AccountID, destinationBalance},
	} {
		if err := s.accountRepo.UpdateAccountBalance(ctx, session, update.accountID, update.balance, check.Performer.UserID, now); err != nil {
			s.LogError(ctx, err, "Failed to update balance", slog.String("account_id", update.accountID))
			return nil, err
		}
	}
	if err := s.transactionRepo.AppendTransactions(ctx, session, []domain.Transaction{out, in}); err != nil {
		s.LogError(ctx, err, "Failed to append transfer records", logAttrs...)
		return nil, err
	}
	if err := session.Commit(ctx); err != nil {
		s.LogError(ctx, err, "Failed to commit transfer", logAttrs...)
		return nil, err
	}

	s.metrics.RecordAmountMoved(metrics.OpTransfer, req.Amount)
	s.LogInfo(ctx, "Transfer committed", append(logAttrs,
		slog.String("amount", req.Amount.String()),
		slog.String("out_transaction_id", out.TransactionID),
		slog.String("in_transaction_id", in.TransactionID))...)

	return []domain.TransactionView{
		{Transaction: out, NewBalance: sourceBalance},
		{Transaction: in, NewBalance: destinationBalance},
	}, nil
}

// findOptional reads an account without locking it, returning nil when it does not exist.
func (s *ledgerService) findOptional(ctx context.Context, accountNumber string) (*domain.Account, error) {
	acc, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountNumber, err)
	}
	return acc, nil
}

// authorizeHistory checks that identity owns the account and returns the account.
func (s *ledgerService) authorizeHistory(ctx context.Context, accountNumber string, identity string) (*domain.Account, error) {
	var check domain.HistoryCheck
	var err error
	if check.Account, err = s.findOptional(ctx, accountNumber); err != nil {
		return nil, err
	}
	if check.Account != nil {
		if check.Requester, err = resolveOptional(ctx, s.principals, identity); err != nil {
			return nil, err
		}
	}
	if err := domain.Evaluate(check, domain.HistoryRules); err != nil {
		return nil, err
	}
	return check.Account, nil
}

// annotate pairs each record with the account's current balance, which is what
// history views have always reported.
func annotate(txns []domain.Transaction, account *domain.Account) []domain.TransactionView {
	views := make([]domain.TransactionView, len(txns))
	for i, txn := range txns {
		txn.AccountNumber = account.AccountNumber
		views[i] = domain.TransactionView{Transaction: txn, NewBalance: account.Balance}
	}
	return views
}

// GetAccountHistory returns every record of an account owned by the requester, newest first.
func (s *ledgerService) GetAccountHistory(ctx context.Context, accountNumber string, identity string) (views []domain.TransactionView, err error) {
	defer func(start time.Time) { s.observe(metrics.OpHistory, start, err) }(time.Now())

	account, err := s.authorizeHistory(ctx, accountNumber, identity)
	if err != nil {
		s.LogFailure(ctx, err, "History rejected", slog.String("account_number", accountNumber))
		return nil, err
	}
	txns, err := s.transactionRepo.ListTransactionsByAccountID(ctx, account.AccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("account_id", account.AccountID))
		return nil, err
	}
	return annotate(txns, account), nil
}

// GetAccountHistoryForAdmin returns every record of any account, newest first.
func (s *ledgerService) GetAccountHistoryForAdmin(ctx context.Context, accountNumber string) (views []domain.TransactionView, err error) {
	defer func(start time.Time) { s.observe(metrics.OpHistory, start, err) }(time.Now())

	account, err := s.findOptional(ctx, accountNumber)
	if err != nil {
		s.LogError(ctx, err, "Failed to find account", slog.String("account_number", accountNumber))
		return nil, err
	}
	if err := domain.Evaluate(domain.HistoryCheck{Account: account}, domain.HistoryRules[:1]); err != nil {
		return nil, err
	}
	txns, err := s.transactionRepo.ListTransactionsByAccountID(ctx, account.AccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("account_id", account.AccountID))
		return nil, err
	}
	return annotate(txns, account), nil
}

// ListAccountHistoryPage returns one page of an owned account's history.
func (s *ledgerService) ListAccountHistoryPage(ctx context.Context, accountNumber string, identity string, limit int, nextToken *string) (views []domain.TransactionView, next *string, err error) {
	defer func(start time.Time) { s.observe(metrics.OpHistory, start, err) }(time.Now())

	account, err := s.authorizeHistory(ctx, accountNumber, identity)
	if err != nil {
		s.LogFailure(ctx, err, "History rejected", slog.String("account_number", accountNumber))
		return nil, nil, err
	}
	txns, next, err := s.transactionRepo.ListTransactionsByAccountIDPage(ctx, account.AccountID, limit, nextToken)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to list transactions page", slog.String("account_id", account.AccountID))
		return nil, nil, err
	}
	return annotate(txns, account), next, nil
}
