// Package feed реализует живую ленту коллекции: push-подписку, которая
// отдает подписчику начальный снапшот и затем полный актуальный список
// после каждой зафиксированной мутации. Снапшоты всегда цельные замены,
// никогда не диффы - на этом строится пересчет у потребителей.
package feed

import (
	"context"
	"fmt"
	"sync"
)

// Loader загружает полный упорядоченный список коллекции.
// Порядок определяет сервер (доставки - новые сначала).
type Loader[T any] func(ctx context.Context) ([]T, error)

// Hub раздает снапшоты коллекции подписчикам. Все рассылки
// сериализованы; опубликованный снапшот после отправки не мутируется.
type Hub[T any] struct {
	load Loader[T]

	mu       sync.Mutex
	subs     map[int64]*Subscription[T]
	nextID   int64
	snapshot []T
	loaded   bool
	failed   error
}

func NewHub[T any](load Loader[T]) *Hub[T] {
	return &Hub[T]{
		load: load,
		subs: make(map[int64]*Subscription[T]),
	}
}

// Subscription - одна подписка на ленту. Канал Snapshots закрывается
// при отписке или терминальной ошибке ленты; после закрытия Err
// возвращает причину, если лента упала.
type Subscription[T any] struct {
	hub *Hub[T]
	id  int64
	ch  chan []T
	err error
}

func (s *Subscription[T]) Snapshots() <-chan []T {
	return s.ch
}

// Err валиден после закрытия канала Snapshots.
func (s *Subscription[T]) Err() error {
	return s.err
}

func (s *Subscription[T]) Close() {
	s.hub.unsubscribe(s.id)
}

// Subscribe регистрирует подписчика и немедленно кладет ему текущий
// снапшот. После падения ленты снапшот сброшен, поэтому новая подписка
// сама перечитывает коллекцию: ремоунт и есть восстановление.
// Отмена ctx снимает подписку, дальнейших отправок не будет.
func (h *Hub[T]) Subscribe(ctx context.Context) (*Subscription[T], error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.loaded {
		snapshot, err := h.load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load initial snapshot: %w", err)
		}
		h.snapshot = snapshot
		h.loaded = true
		h.failed = nil
	}

	h.nextID++
	sub := &Subscription[T]{
		hub: h,
		id:  h.nextID,
		// емкость 1: каждый следующий снапшот полностью замещает
		// предыдущий, медленному подписчику достаточно последнего
		ch: make(chan []T, 1),
	}
	sub.ch <- h.snapshot
	h.subs[sub.id] = sub

	go func() {
		<-ctx.Done()
		h.unsubscribe(sub.id)
	}()

	return sub, nil
}

// Invalidate перечитывает коллекцию и рассылает цельный снапшот всем
// подписчикам. Ошибка перечитки терминальна для всех текущих подписок:
// они закрываются с ошибкой, восстановление - только повторная подписка.
func (h *Hub[T]) Invalidate(ctx context.Context) error {
	snapshot, err := h.load(ctx)

	h.mu.Lock()
	defer h.mu.Unlock()

	if err != nil {
		h.failed = fmt.Errorf("reload snapshot: %w", err)
		for id, sub := range h.subs {
			sub.err = h.failed
			close(sub.ch)
			delete(h.subs, id)
		}
		h.loaded = false
		h.snapshot = nil
		return h.failed
	}

	h.failed = nil
	h.snapshot = snapshot
	h.loaded = true

	for _, sub := range h.subs {
		select {
		case sub.ch <- snapshot:
		default:
			// подписчик не забрал предыдущий снапшот - вытесняем
			// его, свежий список полностью его замещает
			select {
			case <-sub.ch:
			default:
			}
			sub.ch <- snapshot
		}
	}
	return nil
}

// Current возвращает удерживаемый снапшот, загружая его при первом
// обращении. Фильтрация у потребителей идет по этому списку, а не
// отдельным запросом в хранилище.
func (h *Hub[T]) Current(ctx context.Context) ([]T, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.loaded {
		snapshot, err := h.load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load snapshot: %w", err)
		}
		h.snapshot = snapshot
		h.loaded = true
		h.failed = nil
	}
	return h.snapshot, nil
}

func (h *Hub[T]) unsubscribe(id int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub, ok := h.subs[id]
	if !ok {
		return
	}
	delete(h.subs, id)
	close(sub.ch)
}
