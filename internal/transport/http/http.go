package httptransport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/corray333/order-ledger/internal/service/models/dashboard"
	"github.com/corray333/order-ledger/internal/service/models/daterange"
	"github.com/corray333/order-ledger/internal/service/models/history"
	"github.com/corray333/order-ledger/internal/service/models/menuitem"
	"github.com/corray333/order-ledger/internal/service/models/order"
	createorder "github.com/corray333/order-ledger/internal/transport/http/create_order"
	dashboardhandler "github.com/corray333/order-ledger/internal/transport/http/dashboard"
	listmenu "github.com/corray333/order-ledger/internal/transport/http/list_menu"
	orderhistory "github.com/corray333/order-ledger/internal/transport/http/order_history"
	"github.com/corray333/order-ledger/pkg/http/middleware/trace"
	"github.com/corray333/order-ledger/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"
)

type orderService interface {
	CreateOrder(ctx context.Context, o order.Order) (order.Order, error)
}

type catalogService interface {
	ListMenuItems(ctx context.Context) ([]menuitem.MenuItem, error)
	ListOrderHistory(ctx context.Context) ([]history.Row, error)
}

type dashboardService interface {
	SalesByItem(ctx context.Context, r daterange.Range) ([]dashboard.ItemSales, error)
	DailySales(ctx context.Context, r daterange.Range) ([]dashboard.DailySales, error)
	PaymentStatusDistribution(ctx context.Context, r daterange.Range) ([]dashboard.StatusSlice, error)
	TopPendingCustomers(ctx context.Context) ([]dashboard.PendingCustomer, error)
}

type HTTPTransport struct {
	server       *http.Server
	router       *chi.Mux
	orderSvc     orderService
	catalogSvc   catalogService
	dashboardSvc dashboardService
}

func NewHTTPTransport(
	orderSvc orderService,
	catalogSvc catalogService,
	dashboardSvc dashboardService,
) *HTTPTransport {
	router := newRouter()
	server := newServer(router)

	return &HTTPTransport{
		server:       server,
		router:       router,
		orderSvc:     orderSvc,
		catalogSvc:   catalogSvc,
		dashboardSvc: dashboardSvc,
	}
}

func (h *HTTPTransport) Run() error {
	return h.server.ListenAndServe()
}

func (h *HTTPTransport) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// RegisterRoutes registers the routes for the HTTPTransport.
func (h *HTTPTransport) RegisterRoutes() {
	h.router.Route("/api", func(r chi.Router) {
		r.Get("/menu-items", textErrors("fetch failed", h.listMenuItems))
		r.Get("/order-history", textErrors("fetch failed", h.listOrderHistory))
		r.Post("/orders", jsonErrors(orderFailure, h.createOrder))

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/sales-by-item", jsonErrors(dashboardFailure, h.salesByItem))
			r.Get("/daily-sales", jsonErrors(dashboardFailure, h.dailySales))
			r.Get("/payment-status-distribution", jsonErrors(dashboardFailure, h.paymentStatusDistribution))
			r.Get("/top-pending-customers", jsonErrors(dashboardFailure, h.topPendingCustomers))
		})
	})
}

func (h *HTTPTransport) createOrder(w http.ResponseWriter, r *http.Request) error {
	return createorder.CreateOrder(w, r, h.orderSvc)
}

func (h *HTTPTransport) listMenuItems(w http.ResponseWriter, r *http.Request) error {
	return listmenu.ListMenuItems(w, r, h.catalogSvc)
}

func (h *HTTPTransport) listOrderHistory(w http.ResponseWriter, r *http.Request) error {
	return orderhistory.ListOrderHistory(w, r, h.catalogSvc)
}

func (h *HTTPTransport) salesByItem(w http.ResponseWriter, r *http.Request) error {
	return dashboardhandler.SalesByItem(w, r, h.dashboardSvc)
}

func (h *HTTPTransport) dailySales(w http.ResponseWriter, r *http.Request) error {
	return dashboardhandler.DailySales(w, r, h.dashboardSvc)
}

func (h *HTTPTransport) paymentStatusDistribution(w http.ResponseWriter, r *http.Request) error {
	return dashboardhandler.PaymentStatusDistribution(w, r, h.dashboardSvc)
}

func (h *HTTPTransport) topPendingCustomers(w http.ResponseWriter, r *http.Request) error {
	return dashboardhandler.TopPendingCustomers(w, r, h.dashboardSvc)
}

// handlerFunc is an HTTP handler that reports store failures instead of
// writing them. The boundary wrappers below translate any returned error
// to the 500 response shape of the endpoint family.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

var (
	orderFailure = map[string]any{
		"success": false,
		"message": "failed to create order",
	}
	dashboardFailure = map[string]any{
		"error": "failed to fetch dashboard data",
	}
)

// textErrors maps handler errors to a plain-text 500 response.
func textErrors(message string, h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}

		slog.Error("Store operation failed", "path", r.URL.Path, "error", err)
		http.Error(w, message, http.StatusInternalServerError)
	}
}

// jsonErrors maps handler errors to a fixed-shape JSON 500 response.
func jsonErrors(body map[string]any, h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}

		slog.Error("Store operation failed", "path", r.URL.Path, "error", err)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		if err := json.NewEncoder(w).Encode(body); err != nil {
			slog.Error("Error sending failure response", "error", err)
		}
	}
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(logger.NewLoggerMiddleware(slog.Default()))
	router.Use(trace.NewTraceMiddleware)

	allowedOrigins := viper.GetStringSlice("server.http.cors.allowed_origins")
	allowedMethods := viper.GetStringSlice("server.http.cors.allowed_methods")
	allowedHeaders := viper.GetStringSlice("server.http.cors.allowed_headers")
	exposedHeaders := viper.GetStringSlice("server.http.cors.exposed_headers")
	allowCredentials := viper.GetBool("server.http.cors.allow_credentials")
	maxAge := viper.GetInt("server.http.cors.max_age")

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   allowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           maxAge,
	})

	router.Use(c.Handler)

	return router
}

func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:    "0.0.0.0:" + viper.GetString("server.http.port"),
		Handler: router,
	}
}
