package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/asistia/homecare-backend-go/internal/domain/notification"
	"github.com/asistia/homecare-backend-go/internal/pkg/sse"
)

// Config holds notification service configuration
type Config struct {
	BatchSize     int           // default: 100
	FlushInterval time.Duration // default: 5 seconds
	WorkerCount   int           // default: 2
	QueueSize     int           // default: 1000
}

type service struct {
	repo   notification.Repository
	hub    *sse.Hub
	config Config

	queue  chan notification.CreateNotificationRequest
	wg     sync.WaitGroup
	stopCh chan struct{}
}

// NewNotificationService creates a new notification service with background workers
func NewNotificationService(repo notification.Repository, hub *sse.Hub, cfg Config) notification.Service {
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushInterval == 0 {
		cfg.FlushInterval = 5 * time.Second
	}
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize == 0 {
		cfg.QueueSize = 1000
	}

	s := &service{
		repo:   repo,
		hub:    hub,
		config: cfg,
		queue:  make(chan notification.CreateNotificationRequest, cfg.QueueSize),
		stopCh: make(chan struct{}),
	}

	for i := 0; i < cfg.WorkerCount; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	slog.Info("notification service started",
		"workers", cfg.WorkerCount,
		"batch_size", cfg.BatchSize,
		"flush_interval", cfg.FlushInterval)

	return s
}

// worker is the background worker that processes notification queue
func (s *service) worker(id int) {
	defer s.wg.Done()

	batch := make([]notification.CreateNotificationRequest, 0, s.config.BatchSize)
	ticker := time.NewTicker(s.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		notifications := make([]*notification.Notification, len(batch))
		for i, req := range batch {
			notifications[i] = &notification.Notification{
				ID:          uuid.New().String(),
				RecipientID: req.RecipientID,
				Type:        req.Type,
				Title:       req.Title,
				Message:     req.Message,
				Data:        req.Data,
				IsRead:      false,
				CreatedAt:   time.Now(),
			}
		}

		if err := s.repo.CreateBatch(ctx, notifications); err != nil {
			slog.Error("notification batch insert failed", "worker", id, "error", err)
		} else {
			for _, n := range notifications {
				s.hub.Publish(n.RecipientID, sse.Event{
					RecipientID: n.RecipientID,
					Name:        "notification",
					Data:        s.toResponse(n),
				})
			}
		}

		batch = batch[:0]
	}

	for {
		select {
		case req := <-s.queue:
			batch = append(batch, req)
			if len(batch) >= s.config.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-s.stopCh:
			flush()
			return
		}
	}
}

// QueueNotification queues a notification for async processing
func (s *service) QueueNotification(ctx context.Context, req notification.CreateNotificationRequest) error {
	select {
	case s.queue <- req:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		// Queue full, try direct insert
		return s.directInsert(ctx, req)
	}
}

// QueueBulkNotification queues multiple notifications for async processing
func (s *service) QueueBulkNotification(ctx context.Context, reqs []notification.CreateNotificationRequest) error {
	for _, req := range reqs {
		if err := s.QueueNotification(ctx, req); err != nil {
			slog.Warn("failed to queue notification", "type", req.Type, "error", err)
		}
	}
	return nil
}

// directInsert inserts a notification directly when queue is full
func (s *service) directInsert(ctx context.Context, req notification.CreateNotificationRequest) error {
	n := &notification.Notification{
		ID:          uuid.New().String(),
		RecipientID: req.RecipientID,
		Type:        req.Type,
		Title:       req.Title,
		Message:     req.Message,
		Data:        req.Data,
		IsRead:      false,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}

	s.hub.Publish(n.RecipientID, sse.Event{
		RecipientID: n.RecipientID,
		Name:        "notification",
		Data:        s.toResponse(n),
	})

	return nil
}

// toResponse converts a Notification entity to NotificationResponse
func (s *service) toResponse(n *notification.Notification) notification.NotificationResponse {
	return notification.NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Data:      n.Data,
		IsRead:    n.IsRead,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}

// GetNotifications retrieves paginated notifications for a recipient
func (s *service) GetNotifications(ctx context.Context, recipientID string, page, pageSize int, unreadOnly bool) (*notification.NotificationListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	notifications, total, err := s.repo.GetByRecipientID(ctx, recipientID, page, pageSize, unreadOnly)
	if err != nil {
		return nil, err
	}

	unreadCount, err := s.repo.GetUnreadCount(ctx, recipientID)
	if err != nil {
		return nil, err
	}

	responses := make([]notification.NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = s.toResponse(n)
	}

	return &notification.NotificationListResponse{
		Notifications: responses,
		Total:         total,
		UnreadCount:   unreadCount,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// GetUnreadCount returns the count of unread notifications
func (s *service) GetUnreadCount(ctx context.Context, recipientID string) (int, error) {
	return s.repo.GetUnreadCount(ctx, recipientID)
}

// MarkAsRead marks specified notifications as read
func (s *service) MarkAsRead(ctx context.Context, recipientID string, req notification.MarkAsReadRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.repo.MarkAsRead(ctx, req.NotificationIDs, recipientID)
}

// MarkAllAsRead marks all notifications as read for a recipient
func (s *service) MarkAllAsRead(ctx context.Context, recipientID string) error {
	return s.repo.MarkAllAsRead(ctx, recipientID)
}

// Delete removes a notification
func (s *service) Delete(ctx context.Context, recipientID string, notificationID string) error {
	return s.repo.Delete(ctx, notificationID, recipientID)
}

// Subscribe creates an SSE subscription for a recipient
func (s *service) Subscribe(ctx context.Context, recipientID string) (<-chan notification.SSEEvent, func()) {
	ch, cleanup := s.hub.Subscribe(recipientID)

	out := make(chan notification.SSEEvent, 10)

	go func() {
		defer close(out)
		for {
			select {
			case event, ok := <-ch:
				if !ok {
					return
				}
				if resp, ok := event.Data.(notification.NotificationResponse); ok {
					out <- notification.SSEEvent{
						Event: event.Name,
						Data:  resp,
					}
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, cleanup
}

// Stop gracefully stops the notification service
func (s *service) Stop() {
	close(s.stopCh)
	s.wg.Wait()
	slog.Info("notification service stopped")
}
