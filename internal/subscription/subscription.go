// Package subscription описывает жизненный цикл абонемента клиента:
// активацию пакета и производные от дат абонемента значения.
package subscription

import (
	"fmt"
	"time"

	"github.com/magabrotheeeer/dreambody-studio/internal/lib/month"
	"github.com/magabrotheeeer/dreambody-studio/internal/models"
)

// noteFormat задаёт строку аудита, дописываемая в заметки клиента при активации.
const noteFormat = "\n[System]: Activated %s on %s"

// Apply активирует пакет клиенту с даты today и возвращает изменённую копию.
//
// Начало абонемента — today, окончание — today плюс DurationMonths календарных месяцев.
// Клиент становится активным, в заметки дописывается строка аудита;
// прежние строки заметок не удаляются и не переставляются.
func Apply(user models.User, pkg models.PricingPackage, today time.Time) models.User {
	start := month.StartOfDay(today)
	end := month.Add(start, pkg.DurationMonths)

	user.SubscriptionStart = &start
	user.SubscriptionEnd = &end
	user.IsActive = true
	user.Notes += fmt.Sprintf(noteFormat, pkg.Name, start.Format(month.DateLayout))
	return user
}

// MonthsLeft возвращает число полных месяцев абонемента, оставшихся на дату now.
func MonthsLeft(user models.User, now time.Time) int {
	if user.SubscriptionEnd == nil {
		return 0
	}
	return month.Remaining(*user.SubscriptionEnd, month.StartOfDay(now))
}

// Expired сообщает, закончился ли абонемент к дате now.
// День окончания ещё входит в абонемент.
func Expired(user models.User, now time.Time) bool {
	if user.SubscriptionEnd == nil {
		return true
	}
	return user.SubscriptionEnd.Before(month.StartOfDay(now))
}
