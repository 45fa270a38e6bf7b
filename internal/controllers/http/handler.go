package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"storefront/internal/infra/session"
	"storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	catalog *services.CatalogService
	orders  *services.OrderService
	auth    *services.AuthService
	notifs  *services.NotificationService
	carts   session.CartStore
}

func NewHandler(catalog *services.CatalogService, orders *services.OrderService, auth *services.AuthService, notifs *services.NotificationService, carts session.CartStore) *Handler {
	return &Handler{
		catalog: catalog,
		orders:  orders,
		auth:    auth,
		notifs:  notifs,
		carts:   carts,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.Use(Identify(h.auth), CartSession())

	api := r.Group("/api")

	api.GET("/products", h.ListProducts)
	api.GET("/products/:id", h.GetProduct)

	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)
	api.POST("/auth/logout", h.Logout)

	api.GET("/cart", h.GetCart)
	api.POST("/cart/items", h.AddCartItem)
	api.PUT("/cart/items/:product_id", h.UpdateCartItem)
	api.DELETE("/cart/items/:product_id", h.RemoveCartItem)
	api.DELETE("/cart", h.ClearCart)

	api.POST("/checkout", h.Checkout)

	authed := api.Group("", RequireUser())
	authed.GET("/orders", h.MyOrders)
	authed.GET("/notifications", h.MyNotifications)
	authed.POST("/notifications/:id/read", h.MarkNotificationRead)
	authed.DELETE("/notifications", h.ClearNotifications)

	admin := api.Group("/admin", RequireAdmin())
	admin.GET("/orders", h.AdminListOrders)
	admin.GET("/orders/:id", h.AdminGetOrder)
	admin.POST("/orders/:id/confirm", h.AdminConfirmOrder)
	admin.POST("/orders/:id/cancel", h.AdminCancelOrder)
	admin.POST("/products", h.AdminCreateProduct)
	admin.PUT("/products/:id", h.AdminUpdateProduct)
	admin.DELETE("/products/:id", h.AdminDeleteProduct)
}

// ---------- catalog ----------

func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.catalog.List(c.Request.Context(), c.Query("q"), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	categories, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "categories": categories})
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	p, err := h.catalog.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// ---------- auth ----------

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.auth.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, u, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": u})
}

func (h *Handler) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, bearerPrefix) {
		_ = h.auth.Logout(c.Request.Context(), header[len(bearerPrefix):])
	}
	c.Status(http.StatusNoContent)
}

// ---------- cart ----------

func (h *Handler) GetCart(c *gin.Context) {
	cart, err := h.carts.Get(c.Request.Context(), cartSessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := CartResponse{Items: []CartLineResponse{}}
	for pid, qty := range cart {
		p, err := h.catalog.Get(c.Request.Context(), pid)
		if err != nil {
			// deleted products simply drop out of the view
			continue
		}
		line := CartLineResponse{
			ProductID: pid,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  qty,
			Subtotal:  p.Price * float64(qty),
		}
		resp.Items = append(resp.Items, line)
		resp.Total += line.Subtotal
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}
	// only live products can enter the cart
	if _, err := h.catalog.Get(c.Request.Context(), req.ProductID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if err := h.carts.Add(c.Request.Context(), cartSessionID(c), req.ProductID, req.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) UpdateCartItem(c *gin.Context) {
	id, ok := paramID(c, "product_id")
	if !ok {
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.carts.SetQuantity(c.Request.Context(), cartSessionID(c), id, req.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) RemoveCartItem(c *gin.Context) {
	id, ok := paramID(c, "product_id")
	if !ok {
		return
	}
	if err := h.carts.Remove(c.Request.Context(), cartSessionID(c), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ClearCart(c *gin.Context) {
	if err := h.carts.Clear(c.Request.Context(), cartSessionID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// ---------- checkout ----------

func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, err := h.carts.Get(c.Request.Context(), cartSessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	in := services.CheckoutInput{
		Cart:     cart,
		Fullname: req.Fullname,
		Email:    req.Email,
		Address:  req.Address,
		Payment: services.PaymentDetails{
			CardNumber: req.CardNumber,
			Expiry:     req.Expiry,
			CVC:        req.CVC,
		},
	}
	if u := currentUser(c); u != nil {
		in.UserID = &u.ID
	}

	order, err := h.orders.Checkout(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// the session cart is spent once the order exists
	_ = h.carts.Clear(c.Request.Context(), cartSessionID(c))

	c.JSON(http.StatusCreated, order)
}

// ---------- orders & notifications ----------

func (h *Handler) MyOrders(c *gin.Context) {
	u := currentUser(c)
	orders, err := h.orders.ListByUser(c.Request.Context(), u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) MyNotifications(c *gin.Context) {
	u := currentUser(c)
	notes, err := h.notifs.ListForUser(c.Request.Context(), u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, notes)
}

func (h *Handler) MarkNotificationRead(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	u := currentUser(c)
	err := h.notifs.MarkRead(c.Request.Context(), u.ID, id)
	switch {
	case errors.Is(err, services.ErrNotificationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
	case errors.Is(err, services.ErrNotNotificationOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.Status(http.StatusNoContent)
	}
}

func (h *Handler) ClearNotifications(c *gin.Context) {
	u := currentUser(c)
	if err := h.notifs.ClearAll(c.Request.Context(), u.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}
