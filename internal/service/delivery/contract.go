//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"

	"tracker/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, deliveryModifyEntity entities.DeliveryModify) (*entities.Delivery, error)
	GetByID(ctx context.Context, id int64) (*entities.Delivery, error)
	GetAll(ctx context.Context) ([]entities.Delivery, error)
	Update(ctx context.Context, deliveryModifyEntity entities.DeliveryModify) (*entities.Delivery, error)
	Delete(ctx context.Context, id int64) error
}

// Events - пост-коммитные уведомления. Лента и брокер узнают о мутации
// только после фиксации; ошибки доставки уведомлений обрабатывает
// адаптер (логирует либо роняет подписки ленты), сервис о них не знает.
type Events interface {
	// DeliveriesChanged дергает перечитку и рассылку снапшота ленты.
	DeliveriesChanged(ctx context.Context)
	// StatusChanged публикует событие смены статуса в брокер.
	StatusChanged(ctx context.Context, change entities.DeliveryStatusChange)
}

// ImageNormalizer приводит загруженное изображение товара к
// ограниченному JPEG до записи в хранилище.
type ImageNormalizer interface {
	Normalize(data []byte) ([]byte, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
