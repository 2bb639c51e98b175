package get_available_slots

import "time"

// Request модель запроса дат и слотов
type Request struct {
	MenteeID string
	Date     *time.Time // Дата, для которой нужны слоты (nil - выбранная в черновике)
}

// ScrollRequest позиция ленты дат при прокрутке (в пикселях)
type ScrollRequest struct {
	MenteeID string
	Offset   int // Текущая прокрутка
	Viewport int // Видимая ширина ленты
	Content  int // Полная ширина ленты
}

// Response модель ответа: лента дат и слоты выбранной даты
type Response struct {
	Dates        []CandidateDate
	WindowDays   int        // Сколько дат сгенерировано
	Date         *time.Time // Дата, для которой посчитаны слоты
	SelectedTime string     // Выбранное время из черновика ("" - не выбрано)
	Slots        []string   // Слоты "HH:00" в порядке окон
	Extended     bool       // Лента была расширена этим запросом
}

// CandidateDate дата в ленте выбора
type CandidateDate struct {
	Date      time.Time
	Available bool // Есть хотя бы одно окно на этот день недели
}
