package services

import (
	"context"
	"lumina_server/database"
	"lumina_server/lib"
	"lumina_server/structs"
	"lumina_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type OrderService struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	db           *database.DB
	emailService *EmailService
}

func NewOrderService(
	logger *gecho.Logger,
	cfg *structs.Config,
	db *database.DB,
	emailService *EmailService,
) *OrderService {
	return &OrderService{
		logger:       logger,
		cfg:          cfg,
		db:           db,
		emailService: emailService,
	}
}

// CreateOrderFromCheckout validates nothing itself (the handler already did),
// builds the order with its line-item snapshots and writes header and items in
// a single transaction. The two notification emails are dispatched
// fire-and-forget after commit.
func (os *OrderService) CreateOrderFromCheckout(ctx context.Context, req *structs.CheckoutRequest) (*tables.Order, error) {
	now := time.Now()
	orderId := uuid.New()

	items := make([]tables.OrderItem, 0, len(req.CartItems))
	var total float64
	for _, cartItem := range req.CartItems {
		lineTotal := lib.RoundCents(cartItem.Price * float64(cartItem.Quantity))
		total += lineTotal

		items = append(items, tables.OrderItem{
			Id:          uuid.New(),
			OrderId:     orderId,
			ProductId:   cartItem.ID,
			ProductName: cartItem.Name,
			UnitPrice:   cartItem.Price,
			Quantity:    cartItem.Quantity,
			LineTotal:   lineTotal,
		})
	}

	order := &tables.Order{
		Id:           orderId,
		OrderNumber:  lib.GeneratePanierCode(now),
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		City:         req.City,
		PostalCode:   req.PostalCode,
		Total:        lib.RoundCents(total),
		Status:       tables.OrderStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := os.db.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(order).Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}
		if _, err := tx.NewInsert().Model(&items).Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	order.Items = items

	// Fire both notifications concurrently; failures are logged and never
	// affect the checkout response.
	go func() {
		if err := os.emailService.SendOrderConfirmationEmail(order); err != nil {
			os.logger.Error("Failed to send order confirmation email",
				gecho.Field("error", err),
				gecho.Field("order_number", order.OrderNumber))
		}
	}()
	go func() {
		if err := os.emailService.SendOrderNotificationEmail(order); err != nil {
			os.logger.Error("Failed to send order notification email",
				gecho.Field("error", err),
				gecho.Field("order_number", order.OrderNumber))
		}
	}()

	os.logger.Info("Order created",
		gecho.Field("order_id", orderId),
		gecho.Field("order_number", order.OrderNumber),
		gecho.Field("total", order.Total))

	return order, nil
}

// GetOrderById retrieves an order with its line items.
func (os *OrderService) GetOrderById(ctx context.Context, orderId uuid.UUID) (*tables.Order, error) {
	order, err := database.Query[tables.Order](os.db).
		Where("id", orderId).
		Relation("Items").
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if order == nil {
		return nil, lib.ErrNotFound
	}
	return order, nil
}

// GetOrderByCode retrieves an order by its panier code, used by the customer
// tracking page. This is an exact case-insensitive lookup, never a pattern
// match: the code is untrusted input on a public endpoint.
func (os *OrderService) GetOrderByCode(ctx context.Context, code string) (*tables.Order, error) {
	order, err := database.Query[tables.Order](os.db).
		WhereRaw("lower(order_number) = lower(?)", code).
		Relation("Items").
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if order == nil {
		return nil, lib.ErrNotFound
	}
	return order, nil
}

// ListOrders returns a paginated order list, newest first, optionally filtered
// by status.
func (os *OrderService) ListOrders(ctx context.Context, status *tables.OrderStatus, page, pageSize int) (*database.PaginationResult[tables.Order], error) {
	query := database.Query[tables.Order](os.db).
		Relation("Items").
		OrderBy("created_at", database.DESC)

	if status != nil {
		query = query.Where("status", *status)
	}

	result, err := database.Paginate(query, ctx, page, pageSize)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return result, nil
}

// SearchOrders matches the term as a literal substring, case-insensitively,
// against the panier code, customer name, email and phone. Conditions are
// OR-combined over the orders table, so results are naturally deduplicated by
// order id. The full result set is returned; order volume is small enough that
// pagination is not worth its complexity here.
func (os *OrderService) SearchOrders(ctx context.Context, term string) ([]tables.Order, error) {
	pattern := "%" + database.EscapeLike(term) + "%"

	orders, err := database.Query[tables.Order](os.db).
		WhereAnyILike(pattern, "order_number", "customer_name", "email", "phone").
		Relation("Items").
		OrderBy("created_at", database.DESC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return orders, nil
}

// UpdateOrderStatus applies a guarded status transition.
func (os *OrderService) UpdateOrderStatus(ctx context.Context, orderId uuid.UUID, next tables.OrderStatus) (*tables.Order, error) {
	order, err := os.GetOrderById(ctx, orderId)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, lib.ErrIllegalTransition
	}

	if order.Status != next {
		_, err = database.Query[tables.Order](os.db).
			Where("id", orderId).
			Update(ctx, map[string]any{
				"status":     next,
				"updated_at": time.Now(),
			})
		if err != nil {
			return nil, lib.MapPgError(err)
		}
		order.Status = next
	}

	return order, nil
}

// ReplaceOrder is the admin full-replace edit: the customer snapshot and the
// line items are replaced wholesale and the total is recomputed from the
// submitted items. Header and items change in one transaction.
func (os *OrderService) ReplaceOrder(ctx context.Context, orderId uuid.UUID, req *structs.OrderUpdateRequest) (*tables.Order, error) {
	existing, err := os.GetOrderById(ctx, orderId)
	if err != nil {
		return nil, err
	}

	items := make([]tables.OrderItem, 0, len(req.Items))
	var total float64
	for _, item := range req.Items {
		lineTotal := lib.RoundCents(item.Price * float64(item.Quantity))
		total += lineTotal

		items = append(items, tables.OrderItem{
			Id:          uuid.New(),
			OrderId:     orderId,
			ProductId:   item.ID,
			ProductName: item.Name,
			UnitPrice:   item.Price,
			Quantity:    item.Quantity,
			LineTotal:   lineTotal,
		})
	}

	err = os.db.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewUpdate().
			Model((*tables.Order)(nil)).
			Set("customer_name = ?", req.CustomerName).
			Set("email = ?", req.Email).
			Set("phone = ?", req.Phone).
			Set("address = ?", req.Address).
			Set("city = ?", req.City).
			Set("postal_code = ?", req.PostalCode).
			Set("total = ?", lib.RoundCents(total)).
			Set("updated_at = ?", time.Now()).
			Where("id = ?", orderId).
			Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		if _, err := tx.NewDelete().
			Model((*tables.OrderItem)(nil)).
			Where("order_id = ?", orderId).
			Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		if _, err := tx.NewInsert().Model(&items).Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	existing.CustomerName = req.CustomerName
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.Address = req.Address
	existing.City = req.City
	existing.PostalCode = req.PostalCode
	existing.Total = lib.RoundCents(total)
	existing.Items = items

	return existing, nil
}

// DeleteOrder removes an order and cascades to its line items.
func (os *OrderService) DeleteOrder(ctx context.Context, orderId uuid.UUID) error {
	var deleted int64

	err := os.db.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*tables.OrderItem)(nil)).
			Where("order_id = ?", orderId).
			Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		res, err := tx.NewDelete().
			Model((*tables.Order)(nil)).
			Where("id = ?", orderId).
			Exec(ctx)
		if err != nil {
			return lib.MapPgError(err)
		}
		deleted, _ = res.RowsAffected()
		return nil
	})
	if err != nil {
		return err
	}

	if deleted == 0 {
		return lib.ErrNotFound
	}
	return nil
}
