package notifications

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CampBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CampBooking/internal/infra/storage/booking"
	notificationRepo "github.com/m04kA/SMC-CampBooking/internal/infra/storage/notification"
	subscriptionRepo "github.com/m04kA/SMC-CampBooking/internal/infra/storage/subscription"
	"github.com/m04kA/SMC-CampBooking/internal/infra/webpush"
	"github.com/m04kA/SMC-CampBooking/internal/service/notifications/models"
)

const (
	reminderTitle    = "Напоминание о записи"
	reminderTemplate = "Напоминаем, что завтра %s в %s у вас запись на услугу '%s'. Номер бронирования: %s"
	displayDate      = "02.01.2006"
)

// Service сервис push-подписок и уведомлений
type Service struct {
	bookingRepo      BookingRepository
	subscriptionRepo SubscriptionRepository
	notificationRepo NotificationRepository
	sender           PushSender
	metrics          Metrics
	timeProvider     TimeProvider
	logger           Logger
}

// NewService создает новый экземпляр сервиса уведомлений
// sender может быть nil: тогда уведомления только сохраняются
func NewService(
	bookingRepo BookingRepository,
	subscriptionRepo SubscriptionRepository,
	notificationRepo NotificationRepository,
	sender PushSender,
	metrics Metrics,
	logger Logger,
) *Service {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &Service{
		bookingRepo:      bookingRepo,
		subscriptionRepo: subscriptionRepo,
		notificationRepo: notificationRepo,
		sender:           sender,
		metrics:          metrics,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// SaveSubscription сохраняет push-подписку бронирования, заменяя прежнюю
func (s *Service) SaveSubscription(ctx context.Context, req *models.SubscribeRequest) error {
	if req.BookingID <= 0 || strings.TrimSpace(req.Endpoint) == "" || req.P256dh == "" || req.Auth == "" {
		return fmt.Errorf("%w: booking_id, endpoint and keys are required", ErrInvalidInput)
	}

	if _, err := s.bookingRepo.GetByID(ctx, req.BookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("SaveSubscription: booking id=%d not found", req.BookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("SaveSubscription: failed to get booking id=%d: %v", req.BookingID, err)
		return fmt.Errorf("%w: SaveSubscription - get booking: %v", ErrInternal, err)
	}

	sub, err := s.subscriptionRepo.Upsert(ctx, &domain.PushSubscription{
		BookingID: req.BookingID,
		Endpoint:  req.Endpoint,
		P256dhKey: req.P256dh,
		AuthKey:   req.Auth,
	})
	if err != nil {
		s.logger.Error("SaveSubscription: failed to save subscription for booking id=%d: %v", req.BookingID, err)
		return fmt.Errorf("%w: SaveSubscription - upsert: %v", ErrInternal, err)
	}

	s.logger.Info("SaveSubscription: subscription id=%d saved for booking id=%d", sub.ID, req.BookingID)
	return nil
}

// GetUserNotifications получает уведомления по всем бронированиям телефона, новые первыми
func (s *Service) GetUserNotifications(ctx context.Context, phone string) ([]models.NotificationResponse, error) {
	ids, err := s.bookingIDs(ctx, phone)
	if err != nil {
		return nil, err
	}

	list, err := s.notificationRepo.ListByBookingIDs(ctx, ids)
	if err != nil {
		s.logger.Error("GetUserNotifications: failed to list notifications: %v", err)
		return nil, fmt.Errorf("%w: GetUserNotifications - list: %v", ErrInternal, err)
	}

	return models.FromDomainNotifications(list), nil
}

// GetUnreadCount считает непрочитанные уведомления по телефону
func (s *Service) GetUnreadCount(ctx context.Context, phone string) (int, error) {
	ids, err := s.bookingIDs(ctx, phone)
	if err != nil {
		return 0, err
	}

	count, err := s.notificationRepo.CountUnreadByBookingIDs(ctx, ids)
	if err != nil {
		s.logger.Error("GetUnreadCount: failed to count notifications: %v", err)
		return 0, fmt.Errorf("%w: GetUnreadCount - count: %v", ErrInternal, err)
	}

	return count, nil
}

// MarkRead отмечает уведомление прочитанным
func (s *Service) MarkRead(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: notification id must be positive", ErrInvalidInput)
	}

	if err := s.notificationRepo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			return ErrNotificationNotFound
		}
		s.logger.Error("MarkRead: failed to mark notification id=%d: %v", id, err)
		return fmt.Errorf("%w: MarkRead - update: %v", ErrInternal, err)
	}

	s.logger.Info("MarkRead: notification id=%d marked as read", id)
	return nil
}

// SendReminder создает напоминание о завтрашней записи и отправляет его push-сообщением,
// если у записи есть подписка. Ошибка доставки не отменяет сохраненное уведомление.
func (s *Service) SendReminder(ctx context.Context, booking *domain.Booking) (*domain.Notification, error) {
	message := fmt.Sprintf(reminderTemplate,
		booking.Date.Format(displayDate),
		booking.TimeSlot.String(),
		booking.ServiceName,
		booking.ReferenceNumber,
	)

	n, err := s.notificationRepo.Create(ctx, &domain.Notification{
		BookingID: booking.ID,
		Title:     reminderTitle,
		Message:   message,
		Type:      domain.NotificationReminder,
	})
	if err != nil {
		s.logger.Error("SendReminder: failed to create notification for booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: SendReminder - create: %v", ErrInternal, err)
	}

	s.deliver(ctx, n)
	return n, nil
}

// deliver отправляет уведомление push-сообщением и отмечает время отправки
func (s *Service) deliver(ctx context.Context, n *domain.Notification) {
	if s.sender == nil {
		return
	}

	sub, err := s.subscriptionRepo.GetByBookingID(ctx, n.BookingID)
	if err != nil {
		if errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound) {
			s.metrics.ObservePush(PushStatusNoSubscription)
			return
		}
		s.logger.Error("deliver: failed to get subscription for booking id=%d: %v", n.BookingID, err)
		s.metrics.ObservePush(PushStatusFailed)
		return
	}

	now := s.timeProvider.Now()
	err = s.sender.Send(ctx, *sub, domain.PushPayload{
		Title:     n.Title,
		Message:   n.Message,
		Timestamp: now.UTC().Format(time.RFC3339Nano),
	})
	switch {
	case err == nil:
		s.metrics.ObservePush(PushStatusSent)
	case errors.Is(err, webpush.ErrSubscriptionGone):
		s.metrics.ObservePush(PushStatusGone)
		if err := s.subscriptionRepo.DeleteByBookingID(ctx, n.BookingID); err != nil && !errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound) {
			s.logger.Error("deliver: failed to delete stale subscription for booking id=%d: %v", n.BookingID, err)
		}
		return
	default:
		s.metrics.ObservePush(PushStatusFailed)
		s.logger.Error("deliver: push failed for notification id=%d: %v", n.ID, err)
		return
	}

	if err := s.notificationRepo.MarkSent(ctx, n.ID, now); err != nil {
		s.logger.Error("deliver: failed to mark notification id=%d as sent: %v", n.ID, err)
		return
	}
	n.SentAt = &now
}

type nopMetrics struct{}

func (nopMetrics) ObservePush(string) {}

func (s *Service) bookingIDs(ctx context.Context, phone string) ([]int64, error) {
	if strings.TrimSpace(phone) == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	ids, err := s.bookingRepo.GetIDsByPhone(ctx, phone)
	if err != nil {
		s.logger.Error("bookingIDs: failed to get bookings for phone: %v", err)
		return nil, fmt.Errorf("%w: get bookings by phone: %v", ErrInternal, err)
	}
	return ids, nil
}
