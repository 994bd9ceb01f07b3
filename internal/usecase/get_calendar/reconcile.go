package get_calendar

import (
	"github.com/m04kA/CWT-SchedulingService/internal/domain"
	"github.com/m04kA/CWT-SchedulingService/pkg/types"
)

// cellKey составной ключ ячейки календаря
type cellKey struct {
	date   types.DateString
	period domain.Period
}

// monthIndex одноразовый индекс сведения месяца
// Обе коллекции читаются по одному разу за построение сетки и джойнятся
// по составному ключу (дата, период); cell выполняет сверку по индексу
// без повторных сканирований.
type monthIndex struct {
	slots map[cellKey]*domain.TimeSlot
	appts map[cellKey]*domain.Quote
}

// buildIndex строит индекс месяца из записей обеих коллекций
func buildIndex(slots []*domain.TimeSlot, quotes []*domain.Quote) *monthIndex {
	ix := &monthIndex{
		slots: make(map[cellKey]*domain.TimeSlot, len(slots)),
		appts: make(map[cellKey]*domain.Quote, len(quotes)),
	}

	for _, slot := range slots {
		key := cellKey{date: slot.Date, period: slot.Period}
		// Не больше одной записи на (дату, период); легаси-дубликат игнорируется
		if _, ok := ix.slots[key]; !ok {
			ix.slots[key] = slot
		}
	}

	for _, q := range quotes {
		key := cellKey{date: q.PreferredDate, period: q.PreferredTime}
		existing, ok := ix.appts[key]
		if !ok || (!existing.Confirmed && q.Confirmed) {
			ix.appts[key] = q
		}
	}

	return ix
}

// cell возвращает сведенное состояние (даты, периода)
//
// Приоритет источников: подтвержденная встреча > запись слота > отсутствие
// записи. Подтвержденная встреча переводит отображаемый статус в его
// confirmed-* форму и блокирует ячейку для правок; неподтвержденная заявка
// отображаемый статус не меняет и вешается только бейджем.
func (ix *monthIndex) cell(date types.DateString, period domain.Period) *domain.PeriodView {
	key := cellKey{date: date, period: period}
	slot := ix.slots[key]
	appt := ix.appts[key]

	view := &domain.PeriodView{
		Period:      period,
		Slot:        slot,
		Appointment: appt,
	}

	switch {
	case appt != nil && appt.Confirmed:
		if slot == nil {
			// Записи слота нет - подтвержденная встреча показывается
			// как подтвержденный замер
			view.EffectiveStatus = domain.SlotConfirmedMeasurement
		} else {
			view.EffectiveStatus = slot.Status.ConfirmedVariant()
		}
		view.Locked = true

	case slot != nil:
		view.EffectiveStatus = slot.Status

	default:
		view.EffectiveStatus = domain.SlotNone
	}

	return view
}
