package services

import (
	portsrepo "github.com/SscSPs/corebank/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/corebank/internal/core/ports/services"
	"github.com/SscSPs/corebank/internal/platform/config"
	"github.com/SscSPs/corebank/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// resolver is the principal lookup shared by every service, typically wrapped in a circuit breaker.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, resolver portsrepo.PrincipalResolver, collector metrics.MetricsCollector) *portssvc.ServiceContainer {
	if resolver == nil {
		resolver = repos.UserRepo
	}
	if collector == nil {
		collector = metrics.NoOpCollector{}
	}

	return &portssvc.ServiceContainer{
		Ledger: NewLedgerService(repos,
			WithPrincipalResolver(resolver),
			WithMetricsCollector(collector),
		),
		Account: NewAccountService(repos.AccountRepo, repos.UserRepo,
			WithAccountPrincipalResolver(resolver),
		),
		Auth: NewAuthService(cfg, repos.UserRepo),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.LedgerSvc  = (*ledgerService)(nil)
	_ portssvc.AccountSvc = (*accountService)(nil)
	_ portssvc.AuthSvc    = (*authService)(nil)
)
