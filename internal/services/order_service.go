package services

import (
	"context"
	"errors"
	"sort"

	"storefront/internal/domain"
	"storefront/internal/infra/rabbitmq"
	"storefront/internal/infra/session"
	"storefront/internal/ordercode"
	"storefront/internal/repository"

	"go.uber.org/zap"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrEmptyCart     = errors.New("cart is empty")
)

// PaymentDetails are validated for shape only; there is no real
// gateway and authorization always succeeds.
type PaymentDetails struct {
	CardNumber string
	Expiry     string
	CVC        string
}

// CheckoutInput is everything checkout needs, passed explicitly. The
// cart comes in as a value so checkout is a function of (cart, catalog)
// rather than of ambient session state.
type CheckoutInput struct {
	Cart     session.Cart
	UserID   *uint // nil for guest checkout
	Fullname string
	Email    string
	Address  string
	Payment  PaymentDetails
}

type OrderService struct {
	orders    repository.OrderRepository
	products  repository.ProductRepository
	notifier  NotificationDispatcher
	publisher rabbitmq.PublisherInterface // nil disables event publishing
	log       *zap.Logger
}

func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository, notifier NotificationDispatcher, publisher rabbitmq.PublisherInterface, log *zap.Logger) *OrderService {
	return &OrderService{
		orders:    orders,
		products:  products,
		notifier:  notifier,
		publisher: publisher,
		log:       log,
	}
}

// Checkout turns a cart into a pending order. Each line is resolved
// against the live catalog; lines whose product no longer exists are
// skipped. Totals and item snapshots use the catalog price at this
// moment, decoupled from later edits. Stock is decremented per line
// only when enough remains; a short line is a silent no-op, never a
// customer-facing error.
func (s *OrderService) Checkout(ctx context.Context, in CheckoutInput) (*domain.Order, error) {
	if len(in.Cart) == 0 {
		return nil, ErrEmptyCart
	}

	if err := authorizePayment(in.Payment); err != nil {
		return nil, err
	}

	// deterministic line order
	ids := make([]uint, 0, len(in.Cart))
	for pid := range in.Cart {
		ids = append(ids, pid)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	type line struct {
		product *domain.Product
		qty     int
	}
	var lines []line
	var total float64
	for _, pid := range ids {
		qty := in.Cart[pid]
		if qty <= 0 {
			continue
		}
		p, err := s.products.FindByID(pid)
		if err != nil {
			return nil, err
		}
		if p == nil {
			// product deleted mid-checkout: skip the line
			continue
		}
		lines = append(lines, line{product: p, qty: qty})
		total += p.Price * float64(qty)
	}

	code, err := ordercode.Generate(s.orders.CodeExists)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		OrderCode: code,
		UserID:    in.UserID,
		Fullname:  in.Fullname,
		Email:     in.Email,
		Address:   in.Address,
		Total:     total,
		Status:    domain.StatusPending,
	}
	for _, l := range lines {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: l.product.ID,
			Name:      l.product.Name,
			Price:     l.product.Price,
			Quantity:  l.qty,
		})
	}

	if err := s.orders.Create(order); err != nil {
		return nil, err
	}

	for _, l := range lines {
		ok, err := s.products.DecrementStockIfAvailable(l.product.ID, l.qty)
		if err != nil {
			s.log.Warn("stock decrement failed",
				zap.Uint("product_id", l.product.ID),
				zap.Error(err))
			continue
		}
		if !ok {
			s.log.Info("insufficient stock at checkout, decrement skipped",
				zap.Uint("product_id", l.product.ID),
				zap.Int("quantity", l.qty))
		}
	}

	s.publishEvent(ctx, "order.created", order)

	return order, nil
}

// Confirm moves a pending order to confirmed and commits the stock for
// its items. The decrement on this path has no floor check and can
// drive stock negative; confirming twice decrements twice. Notification
// and event dispatch run after the status is persisted and never roll
// it back.
func (s *OrderService) Confirm(ctx context.Context, id uint) (*domain.Order, DispatchResult, error) {
	o, err := s.orders.FindByID(id)
	if err != nil {
		return nil, DispatchResult{}, err
	}
	if o == nil {
		return nil, DispatchResult{}, ErrOrderNotFound
	}

	if err := s.orders.UpdateStatus(id, domain.StatusConfirmed); err != nil {
		return nil, DispatchResult{}, err
	}
	o.Status = domain.StatusConfirmed

	for _, item := range o.Items {
		if err := s.products.DecrementStock(item.ProductID, item.Quantity); err != nil {
			s.log.Warn("stock decrement failed on confirm",
				zap.Uint("order_id", id),
				zap.Uint("product_id", item.ProductID),
				zap.Error(err))
		}
	}

	res := s.notifier.OrderConfirmed(ctx, o)
	s.publishEvent(ctx, "order.confirmed", o)

	return o, res, nil
}

// Cancel deletes the order and its items outright; there is no stock
// reversal and no audit trail beyond the notification. Contact data is
// taken from the row loaded before deletion.
func (s *OrderService) Cancel(ctx context.Context, id uint) (DispatchResult, error) {
	o, err := s.orders.FindByID(id)
	if err != nil {
		return DispatchResult{}, err
	}
	if o == nil {
		return DispatchResult{}, ErrOrderNotFound
	}

	if err := s.orders.Delete(id); err != nil {
		return DispatchResult{}, err
	}

	o.Status = domain.StatusCancelled
	res := s.notifier.OrderCancelled(ctx, o)
	s.publishEvent(ctx, "order.cancelled", o)

	return res, nil
}

func (s *OrderService) GetByID(ctx context.Context, id uint) (*domain.Order, error) {
	o, err := s.orders.FindByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (s *OrderService) ListByUser(ctx context.Context, userID uint) ([]domain.Order, error) {
	return s.orders.FindByUser(userID)
}

func (s *OrderService) ListRecent(ctx context.Context, limit int) ([]domain.Order, error) {
	return s.orders.FindRecent(limit)
}

func (s *OrderService) publishEvent(ctx context.Context, routingKey string, o *domain.Order) {
	if s.publisher == nil {
		return
	}
	evt := domain.OrderEvent{
		OrderID:   o.ID,
		OrderCode: o.OrderCode,
		Status:    o.Status,
		Total:     o.Total,
		Guest:     o.UserID == nil,
	}
	if err := s.publisher.Publish(ctx, routingKey, evt); err != nil {
		s.log.Warn("order event publish failed",
			zap.String("routing_key", routingKey),
			zap.Uint("order_id", o.ID),
			zap.Error(err))
	}
}

// authorizePayment stands in for a gateway call. Shape validation
// happens at the transport layer; here payment always succeeds.
func authorizePayment(_ PaymentDetails) error {
	return nil
}
