package feed

import (
	"sync"

	"tracker/internal/entities"
	"tracker/internal/filter"
)

type ViewState string

const (
	// ViewLoading - снапшот еще не приходил.
	ViewLoading ViewState = "loading"
	// ViewLive - держим последний снапшот.
	ViewLive ViewState = "live"
	// ViewErrored - подписка упала; терминально до пересоздания view.
	ViewErrored ViewState = "errored"
)

// DeliveryView - состояние одного потребителя ленты доставок: последний
// снапшот плюс фильтр. Видимый список пересчитывается ровно при двух
// событиях - новый снапшот или смена фильтра. Смена фильтра не трогает
// машину состояний и не требует похода в сеть.
type DeliveryView struct {
	mu       sync.Mutex
	state    ViewState
	snapshot []entities.Delivery
	filter   entities.DeliveryFilter
	visible  []entities.Delivery
	err      error
}

func NewDeliveryView(f entities.DeliveryFilter) *DeliveryView {
	return &DeliveryView{
		state:  ViewLoading,
		filter: f,
	}
}

// ApplySnapshot цельно замещает удерживаемый список и пересчитывает
// видимое подмножество. После ошибки снапшоты игнорируются.
func (v *DeliveryView) ApplySnapshot(snapshot []entities.Delivery) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state == ViewErrored {
		return
	}
	v.state = ViewLive
	v.snapshot = snapshot
	v.visible = filter.VisibleDeliveries(v.snapshot, v.filter)
}

// Fail переводит view в терминальное состояние ошибки.
func (v *DeliveryView) Fail(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.state = ViewErrored
	v.err = err
	v.snapshot = nil
	v.visible = nil
}

// SetFilter меняет фильтр и пересчитывает видимый список из того же
// удерживаемого снапшота.
func (v *DeliveryView) SetFilter(f entities.DeliveryFilter) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.filter = f
	if v.state == ViewLive {
		v.visible = filter.VisibleDeliveries(v.snapshot, v.filter)
	}
}

func (v *DeliveryView) Visible() []entities.Delivery {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.visible
}

func (v *DeliveryView) State() ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *DeliveryView) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}
