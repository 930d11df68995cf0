package push

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Manager жизненный цикл push-подписки: поддержка платформы, фоновый обработчик,
// разрешение пользователя, подписка и ее регистрация на сервере
type Manager struct {
	mu           sync.Mutex
	state        State
	vapidKey     string
	registration Registration
	bookingID    int64

	scriptURL string
	platform  Platform
	registrar SubscriptionRegistrar
	logger    Logger
}

// NewManager создает менеджер в состоянии Uninitialized
func NewManager(platform Platform, registrar SubscriptionRegistrar, scriptURL string, logger Logger) *Manager {
	return &Manager{
		state:     StateUninitialized,
		scriptURL: scriptURL,
		platform:  platform,
		registrar: registrar,
		logger:    logger,
	}
}

// Init регистрирует фоновый обработчик и запоминает VAPID ключ
// Возвращает false без ошибки, если платформа не поддерживает push или регистрация не удалась.
// Повторный вызов перезаписывает ключ и не откатывает состояние.
func (m *Manager) Init(ctx context.Context, vapidPublicKey string) bool {
	if !m.platform.Supported() {
		m.logger.Warn("Init: push notifications are not supported")
		return false
	}

	reg, err := m.platform.RegisterServiceWorker(ctx, m.scriptURL)
	if err != nil {
		m.logger.Error("Init: failed to register service worker %s: %v", m.scriptURL, err)
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.vapidKey = vapidPublicKey
	m.registration = reg
	if m.state == StateUninitialized {
		m.state = StateRegistered
	}

	m.logger.Info("Init: service worker registered, state=%s", m.state)
	return true
}

// SubscribeToPush запрашивает разрешение, создает подписку и сохраняет ее на сервере
// При любой ошибке состояние возвращается в Registered, повторов нет.
// Если сервер отклонил подписку, она отменяется и на платформе.
func (m *Manager) SubscribeToPush(ctx context.Context, bookingID int64) error {
	m.mu.Lock()
	if m.state < StateRegistered {
		m.mu.Unlock()
		return ErrNotRegistered
	}
	reg := m.registration
	key := m.vapidKey
	m.mu.Unlock()

	perm, err := m.platform.RequestPermission(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	}
	if perm != PermissionGranted {
		m.logger.Warn("SubscribeToPush: permission=%s for booking_id=%d", perm, bookingID)
		return ErrPermissionDenied
	}
	m.transition(StateRegistered, StatePermissionGranted)

	if err := m.subscribe(ctx, reg, key, bookingID); err != nil {
		// откат только из PermissionGranted: параллельный успешный вызов не затирается
		reverted := m.transition(StatePermissionGranted, StateRegistered)
		if reverted && errors.Is(err, ErrRegistrationFailed) {
			if uerr := reg.Unsubscribe(ctx); uerr != nil {
				m.logger.Warn("SubscribeToPush: failed to unsubscribe booking_id=%d: %v", bookingID, uerr)
			}
		}
		m.logger.Error("SubscribeToPush: booking_id=%d: %v", bookingID, err)
		return err
	}

	m.mu.Lock()
	m.state = StateSubscribed
	m.bookingID = bookingID
	m.mu.Unlock()

	m.logger.Info("SubscribeToPush: booking_id=%d subscribed", bookingID)
	return nil
}

func (m *Manager) subscribe(ctx context.Context, reg Registration, key string, bookingID int64) error {
	raw, err := DecodeApplicationServerKey(key)
	if err != nil {
		return err
	}

	sub, err := reg.Subscribe(ctx, raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSubscribeFailed, err)
	}
	if sub == nil {
		return fmt.Errorf("%w: platform returned no subscription", ErrSubscribeFailed)
	}
	sub.BookingID = bookingID

	if err := m.registrar.Subscribe(ctx, bookingID, *sub); err != nil {
		return fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}
	return nil
}

// IsSubscribed сообщает, есть ли у платформы активная подписка
// Безопасен в любом состоянии: до Init возвращает false.
// После перезагрузки страницы подписка, оформленная ранее, видна сразу после Init.
func (m *Manager) IsSubscribed(ctx context.Context) bool {
	m.mu.Lock()
	state := m.state
	reg := m.registration
	m.mu.Unlock()

	if state < StateRegistered || reg == nil {
		return false
	}

	sub, err := reg.Subscription(ctx)
	if err != nil {
		m.logger.Warn("IsSubscribed: failed to query subscription: %v", err)
		return false
	}
	return sub != nil
}

// State возвращает текущее состояние
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// BookingID возвращает запись, для которой оформлена подписка
func (m *Manager) BookingID() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bookingID
}

// transition переводит состояние из from в to; false, если состояние уже другое
func (m *Manager) transition(from, to State) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != from {
		return false
	}
	m.state = to
	return true
}
