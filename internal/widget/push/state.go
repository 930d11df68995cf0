package push

// State состояние подписки на push-уведомления
// Переходы только вперед: Uninitialized -> Registered -> PermissionGranted -> Subscribed.
// Любая ошибка на шаге подписки возвращает в Registered.
type State int

const (
	StateUninitialized State = iota
	StateRegistered
	StatePermissionGranted
	StateSubscribed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRegistered:
		return "registered"
	case StatePermissionGranted:
		return "permission_granted"
	case StateSubscribed:
		return "subscribed"
	default:
		return "unknown"
	}
}

// Permission ответ пользователя на запрос разрешения
type Permission string

const (
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)
