package widget

import (
	"github.com/m04kA/SMC-CampBooking/internal/widget/calendar"
	"github.com/m04kA/SMC-CampBooking/internal/widget/picker"
	"github.com/m04kA/SMC-CampBooking/internal/widget/push"
	"github.com/m04kA/SMC-CampBooking/internal/widget/selection"
)

// Presenter слой отображения: календарь, форма бронирования и сообщения об ошибках
type Presenter interface {
	calendar.Layout
	selection.Form
	picker.ErrorReporter
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Deps зависимости виджета
type Deps struct {
	Presenter        Presenter
	Fetcher          picker.SlotFetcher
	Platform         push.Platform
	Registrar        push.SubscriptionRegistrar
	Clock            calendar.TimeProvider
	Metrics          picker.Metrics
	Logger           Logger
	ServiceWorkerURL string
}

// Widget виджет записи: календарь, выбор времени и push-подписка
type Widget struct {
	Calendar *calendar.Navigator
	Slots    *selection.View
	Picker   *picker.Picker
	Push     *push.Manager
}

// New собирает виджет
// Выбор даты в календаре запускает загрузку слотов, выбранное время сохраняется в календаре
func New(d Deps) *Widget {
	if d.Clock == nil {
		d.Clock = &calendar.RealTimeProvider{}
	}

	view := selection.NewView(d.Presenter, d.Logger)
	p := picker.NewPicker(d.Fetcher, view, d.Presenter, d.Clock, d.Metrics, d.Logger)
	nav := calendar.NewNavigator(d.Clock, p, d.Presenter, d.Logger)
	view.BindStore(nav)

	var pm *push.Manager
	if d.Platform != nil {
		pm = push.NewManager(d.Platform, d.Registrar, d.ServiceWorkerURL, d.Logger)
	}

	return &Widget{
		Calendar: nav,
		Slots:    view,
		Picker:   p,
		Push:     pm,
	}
}
