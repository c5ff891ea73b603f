package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/circulation"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/repository"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/validation"
)

type RouterDeps struct {
	DB        *gorm.DB
	Service   *circulation.Service
	Books     repository.BookSearcher
	Auditor   LedgerAuditor
	Logger    *logrus.Logger
	StartTime time.Time
	Version   string
}

// NewRouter wires every handler onto a fresh engine. The health handler is
// returned so callers can register extra readiness checks.
func NewRouter(d RouterDeps) (*gin.Engine, *HealthHandler) {
	validation.RegisterRules()

	e := gin.New()
	e.Use(gin.Recovery(), RequestLogger(d.Logger))

	health := NewHealthHandler(d.DB, d.StartTime, d.Version)
	health.RegisterRoutes(e)

	api := e.Group("/api", RequireActor())
	{
		NewBookHandler(d.Service, d.Books).RegisterRoutes(api)
		NewLoanHandler(d.Service).RegisterRoutes(api)
		NewDonationHandler(d.Service).RegisterRoutes(api)
		if d.Auditor != nil {
			NewAuditHandler(d.Auditor).RegisterRoutes(api)
		}
	}

	return e, health
}
