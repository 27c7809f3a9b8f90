//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"tracker/internal/handlers/tasks/session_cleanup"
	"tracker/internal/handlers/tasks/stage_cleanup"
	"tracker/internal/pkg/config"
	"tracker/internal/pkg/events"
	"tracker/internal/pkg/image"
	"tracker/internal/pkg/kafka"

	accountRepo "tracker/internal/repository/account"
	deliveryRepo "tracker/internal/repository/delivery"
	eventRepo "tracker/internal/repository/event"
	staffRepo "tracker/internal/repository/staff"
	auditService "tracker/internal/service/audit"
	authService "tracker/internal/service/auth"
	deliveryService "tracker/internal/service/delivery"
	staffService "tracker/internal/service/staff"
	stagingService "tracker/internal/service/staging"

	"tracker/pkg/logger"
	"tracker/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideStageCleanupInterval,
		provideSessionCleanupInterval,

		provideDeliveryRepository,
		provideStaffRepository,
		provideAccountRepository,
		provideEventRepository,

		provideDeliveryFeed,
		provideStaffFeed,
		provideStatusProducer,
		provideNotifier,
		image.NewNormalizer,

		provideServiceDelivery,
		provideServiceStaff,
		provideServiceAuth,
		provideServiceStaging,
		provideServiceAudit,

		provideStageCleanupTask,
		provideSessionCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceAuth), new(*authService.Auth)),
		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceStaff), new(*staffService.Staff)),
		wire.Bind(new(ServiceStaging), new(*stagingService.Staging)),
		wire.Bind(new(ServiceAudit), new(*auditService.Audit)),

		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliveryService.Events), new(*events.Notifier)),
		wire.Bind(new(deliveryService.ImageNormalizer), new(*image.Normalizer)),
		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),

		wire.Bind(new(staffService.Repository), new(*staffRepo.Repository)),
		wire.Bind(new(staffService.Events), new(*events.Notifier)),

		wire.Bind(new(authService.AccountRepository), new(*accountRepo.Repository)),

		wire.Bind(new(stagingService.Deliveries), new(*deliveryService.Delivery)),
		wire.Bind(new(stagingService.StaffDirectory), new(*staffService.Staff)),

		wire.Bind(new(auditService.Repository), new(*eventRepo.Repository)),

		wire.Bind(new(events.StatusPublisher), new(*kafka.Producer)),

		wire.Bind(new(stage_cleanup.Service), new(*stagingService.Staging)),
		wire.Bind(new(session_cleanup.Service), new(*authService.Auth)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-delivery-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideEventRepository,
		provideServiceAudit,

		wire.Bind(new(auditService.Repository), new(*eventRepo.Repository)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
