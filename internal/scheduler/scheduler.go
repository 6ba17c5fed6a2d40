package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"controle-leiteiro/internal/domain/alerts"
	"controle-leiteiro/internal/domain/animals"
	"controle-leiteiro/internal/domain/reproduction"
)

// Scheduler roda o resumo diário do rebanho: para cada produtor,
// recomputa ações pendentes e alertas e registra um sumário no log.
// Serve de gancho para notificação (push/WhatsApp) sem acoplar canal.
type Scheduler struct {
	cron            *cron.Cron
	schedule        string
	animalsSvc      *animals.Service
	reproductionSvc *reproduction.Service
	alertsSvc       *alerts.Service
	logger          *zap.Logger
}

func NewScheduler(schedule string, animalsSvc *animals.Service, reproductionSvc *reproduction.Service, alertsSvc *alerts.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:            cron.New(),
		schedule:        schedule,
		animalsSvc:      animalsSvc,
		reproductionSvc: reproductionSvc,
		alertsSvc:       alertsSvc,
		logger:          logger,
	}
}

// Start agenda o resumo diário e inicia o cron.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.schedule))

	_, err := s.cron.AddFunc(s.schedule, s.runDailyDigest)
	if err != nil {
		s.logger.Error("failed to schedule daily digest", zap.Error(err))
	}

	s.cron.Start()
}

// Stop para o cron.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runDailyDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	today := time.Now()

	owners, err := s.animalsSvc.ListOwners(ctx)
	if err != nil {
		s.logger.Error("failed to list owners for digest", zap.Error(err))
		return
	}

	for _, owner := range owners {
		actions, err := s.reproductionSvc.Actions(ctx, owner, today)
		if err != nil {
			s.logger.Error("failed to compute pending actions",
				zap.String("owner", owner), zap.Error(err))
			continue
		}

		items, err := s.alertsSvc.List(ctx, owner, today)
		if err != nil {
			s.logger.Error("failed to compute alerts",
				zap.String("owner", owner), zap.Error(err))
			continue
		}

		pending := 0
		for _, a := range items {
			if !a.Resolved {
				pending++
			}
		}

		s.logger.Info("daily digest",
			zap.String("owner", owner),
			zap.Int("pending_actions", len(actions)),
			zap.Int("pending_alerts", pending),
		)
	}
}
