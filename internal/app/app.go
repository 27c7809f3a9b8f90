package app

import (
	"context"
	"time"

	"tracker/internal/entities"
	"tracker/internal/feed"
	"tracker/internal/handlers/rest/delivery_delete_stage_post"
	"tracker/internal/handlers/rest/delivery_events_get"
	"tracker/internal/handlers/rest/delivery_post"
	"tracker/internal/handlers/rest/delivery_put"
	"tracker/internal/handlers/rest/delivery_status_stage_post"
	"tracker/internal/handlers/rest/login_post"
	"tracker/internal/handlers/rest/logout_post"
	"tracker/internal/handlers/rest/staff_delete_stage_post"
	"tracker/internal/handlers/rest/staff_post"
	"tracker/internal/handlers/rest/staff_put"
	"tracker/internal/handlers/rest/stage_cancel_post"
	"tracker/internal/handlers/rest/stage_confirm_post"
	"tracker/internal/handlers/tasks/session_cleanup"
	"tracker/internal/handlers/tasks/stage_cleanup"
	"tracker/internal/pkg/config"
	"tracker/internal/pkg/events"
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

	"tracker/pkg/background"
	"tracker/pkg/logger"
	"tracker/pkg/querier"
	"tracker/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	StageCleanupInterval   time.Duration
	SessionCleanupInterval time.Duration
)

type Application struct {
	ServiceAuth       ServiceAuth
	ServiceDelivery   ServiceDelivery
	ServiceStaff      ServiceStaff
	ServiceStaging    ServiceStaging
	ServiceAudit      ServiceAudit
	DeliveryFeed      *feed.Hub[entities.Delivery]
	StaffFeed         *feed.Hub[entities.Staff]
	BackgroundWorkers *background.Worker
}

type ServiceAuth interface {
	login_post.Service
	logout_post.Service
	staff_post.Capabilities
	Identity(ctx context.Context, token string) (string, error)
}

type ServiceDelivery interface {
	delivery_post.Service
	delivery_put.Service
}

type ServiceStaff interface {
	staff_post.Service
	staff_put.Service
}

type ServiceStaging interface {
	delivery_status_stage_post.Service
	delivery_delete_stage_post.Service
	staff_delete_stage_post.Service
	stage_confirm_post.Service
	stage_cancel_post.Service
}

type ServiceAudit interface {
	delivery_events_get.Service
}

type KafkaWorkerApp struct {
	AuditService *auditService.Audit
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideStaffRepository(querier *querier.Querier) *staffRepo.Repository {
	return staffRepo.New(querier)
}

func provideAccountRepository(querier *querier.Querier) *accountRepo.Repository {
	return accountRepo.New(querier)
}

func provideEventRepository(querier *querier.Querier) *eventRepo.Repository {
	return eventRepo.New(querier)
}

// Ленты читают снапшоты напрямую из репозиториев: сервисы зависят от
// нотификатора, а нотификатор от лент, и загрузка через сервис дала бы
// цикл.
func provideDeliveryFeed(repository *deliveryRepo.Repository) *feed.Hub[entities.Delivery] {
	return feed.NewHub(repository.GetAll)
}

func provideStaffFeed(repository *staffRepo.Repository) *feed.Hub[entities.Staff] {
	return feed.NewHub(repository.GetAll)
}

func provideStatusProducer(log logger.Logger, cfg *config.Config) (*kafka.Producer, error) {
	return kafka.NewProducer(log, &cfg.Kafka)
}

func provideNotifier(
	log logger.Logger,
	deliveries *feed.Hub[entities.Delivery],
	staff *feed.Hub[entities.Staff],
	publisher events.StatusPublisher,
) *events.Notifier {
	return events.NewNotifier(log, deliveries, staff, publisher)
}

func provideServiceDelivery(
	repository deliveryService.Repository,
	events deliveryService.Events,
	images deliveryService.ImageNormalizer,
	txManager deliveryService.TxManager,
) *deliveryService.Delivery {
	return deliveryService.New(repository, events, images, txManager)
}

func provideServiceStaff(
	repository staffService.Repository,
	events staffService.Events,
) *staffService.Staff {
	return staffService.New(repository, events)
}

func provideServiceAuth(
	repository authService.AccountRepository,
	cfg *config.Config,
) *authService.Auth {
	return authService.New(repository, cfg.Auth.SessionTTL, cfg.Auth.AdminEmails)
}

func provideServiceStaging(
	deliveries stagingService.Deliveries,
	staffDirectory stagingService.StaffDirectory,
	cfg *config.Config,
) *stagingService.Staging {
	return stagingService.New(deliveries, staffDirectory, cfg.Staging.TTL)
}

func provideServiceAudit(repository auditService.Repository) *auditService.Audit {
	return auditService.New(repository)
}

func provideStageCleanupInterval(cfg *config.Config) StageCleanupInterval {
	return StageCleanupInterval(cfg.Tasks.StageCleanupInterval)
}

func provideSessionCleanupInterval(cfg *config.Config) SessionCleanupInterval {
	return SessionCleanupInterval(cfg.Tasks.SessionCleanupInterval)
}

func provideStageCleanupTask(
	log logger.Logger,
	stagingService stage_cleanup.Service,
	interval StageCleanupInterval,
) *stage_cleanup.StageCleanup {
	return stage_cleanup.NewStageCleanup(log, stagingService, time.Duration(interval))
}

func provideSessionCleanupTask(
	log logger.Logger,
	authService session_cleanup.Service,
	interval SessionCleanupInterval,
) *session_cleanup.SessionCleanup {
	return session_cleanup.NewSessionCleanup(log, authService, time.Duration(interval))
}

func provideTaskList(
	stageCleanupTask *stage_cleanup.StageCleanup,
	sessionCleanupTask *session_cleanup.SessionCleanup,
) []background.Task {
	return []background.Task{
		stageCleanupTask,
		sessionCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
