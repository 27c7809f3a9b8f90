// Package filter - чистые функции над снапшотами коллекций.
// Фильтрация всегда локальная: применяется к уже полученному
// полному списку и никогда не ходит в хранилище.
package filter

import (
	"strings"

	"tracker/internal/entities"
)

const dateLayout = "2006-01-02"

// VisibleDeliveries сводит полный упорядоченный список доставок и состояние
// фильтра к видимому подмножеству. Порядок входа сохраняется, вход не
// мутируется. Три фильтра комбинируются по AND; при дефолтном фильтре
// возвращается вход как есть.
func VisibleDeliveries(all []entities.Delivery, f entities.DeliveryFilter) []entities.Delivery {
	result := all

	// 1. По статусу, точное совпадение
	if f.Status != "" {
		filtered := make([]entities.Delivery, 0, len(result))
		for _, d := range result {
			if d.Status.String() == f.Status {
				filtered = append(filtered, d)
			}
		}
		result = filtered
	}

	// 2. По точной дате создания. Дата сравнивается как календарный
	// день UTC, как это делал оригинальный клиент. Доставка без
	// CreatedAt не совпадает никогда.
	if f.Date != "" {
		filtered := make([]entities.Delivery, 0, len(result))
		for _, d := range result {
			if d.CreatedAt.IsZero() {
				continue
			}
			if d.CreatedAt.UTC().Format(dateLayout) == f.Date {
				filtered = append(filtered, d)
			}
		}
		result = filtered
	}

	// 3. По поисковой строке: подстрока без учета регистра ровно в трех
	// полях - товар, покупатель, адрес. Заметки не участвуют.
	if f.Query != "" {
		query := strings.ToLower(f.Query)
		filtered := make([]entities.Delivery, 0, len(result))
		for _, d := range result {
			if strings.Contains(strings.ToLower(d.ProductName), query) ||
				strings.Contains(strings.ToLower(d.CustomerName), query) ||
				strings.Contains(strings.ToLower(d.Address), query) {
				filtered = append(filtered, d)
			}
		}
		result = filtered
	}

	return result
}

// EmailToName строит индекс email -> имя сотрудника. Авторство мутаций
// доставок записывается почтой действующего пользователя, поэтому индекс
// ключуется почтой, а не ID. При дубликатах почты побеждает последняя
// запись во входном порядке.
func EmailToName(staff []entities.Staff) map[string]string {
	index := make(map[string]string, len(staff))
	for _, member := range staff {
		index[member.Email] = member.Name
	}
	return index
}
