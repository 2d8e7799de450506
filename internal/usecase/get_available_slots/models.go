package get_available_slots

import (
	"time"

	"github.com/herlindaapr/beautybook-service/pkg/types"
)

// ServiceSelection одна выбранная услуга с количеством
type ServiceSelection struct {
	ServiceID int64
	Quantity  int
}

// Request модель запроса на получение доступного времени
type Request struct {
	Date       time.Time          // Дата для поиска (без времени)
	Selections []ServiceSelection // Выбранные услуги - задают длительность слота
}

// Response модель ответа со списком доступного времени
type Response struct {
	Date            time.Time          // Дата, на которую запрашивались слоты
	DurationMinutes int                // Длительность слота для выбранных услуг
	Slots           []types.TimeString // Доступное время начала
}
