package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yeremiapane/neo-dine/config"
	"github.com/yeremiapane/neo-dine/database"
	"github.com/yeremiapane/neo-dine/live"
	"github.com/yeremiapane/neo-dine/middlewares"
	"github.com/yeremiapane/neo-dine/models"
	"github.com/yeremiapane/neo-dine/router"
	"github.com/yeremiapane/neo-dine/services"
	"github.com/yeremiapane/neo-dine/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// setupTestServer -> router lengkap + sqlite in-memory, interval dipercepat
func setupTestServer(t *testing.T) (*httptest.Server, *services.RecordingPublisher) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Setup(db))

	cfg := &config.Config{
		SessionSecret:  "integration-secret",
		SessionTTL:     time.Hour,
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
		CORSOrigin:     "http://localhost:5173",
	}
	pub := &services.RecordingPublisher{}
	svc := services.NewServices(db, services.Options{
		OrderStatusInterval:    20 * time.Millisecond,
		PaymentProcessingDelay: 20 * time.Millisecond,
		ToastTTL:               time.Minute,
	}, pub)

	srv := httptest.NewServer(router.SetupRouter(cfg, svc))
	t.Cleanup(func() {
		srv.Close()
		svc.Shutdown()
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return srv, pub
}

func newClient(t *testing.T) *http.Client {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func call(t *testing.T, client *http.Client, method, url string, body interface{}) (int, apiResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

// TestEndToEndIntegration menguji flow utama:
// 1. Session cookie + live channel
// 2. Cart -> checkout -> order sampai delivered
// 3. Booking wizard sampai confirmed
// 4. Cookie consent
func TestEndToEndIntegration(t *testing.T) {
	srv, pub := setupTestServer(t)
	client := newClient(t)

	// 1. request pertama membuat session
	code, _ := call(t, client, "GET", srv.URL+"/cart", nil)
	require.Equal(t, http.StatusOK, code)

	wsConn := dialLive(t, srv, client)
	defer wsConn.Close()
	first := readEvent(t, wsConn)
	assert.Equal(t, live.EventCartUpdate, first.Event)

	// 2. cart + checkout
	code, _ = call(t, client, "POST", srv.URL+"/cart/items", map[string]interface{}{"dish_id": 1})
	require.Equal(t, http.StatusOK, code)
	waitForEvent(t, wsConn, live.EventToast)

	code, resp := call(t, client, "POST", srv.URL+"/orders", map[string]interface{}{
		"name":    "Ada Lovelace",
		"address": "42 Neon Street",
		"phone":   "+5551234567",
		"method":  "drone",
	})
	require.Equal(t, http.StatusCreated, code, resp.Message)
	var order models.Order
	require.NoError(t, json.Unmarshal(resp.Data, &order))
	assert.Equal(t, 29.99, order.Total)

	assert.Eventually(t, func() bool {
		code, resp := call(t, client, "GET", srv.URL+"/orders/active", nil)
		if code != http.StatusOK {
			return false
		}
		var tracking models.OrderTracking
		_ = json.Unmarshal(resp.Data, &tracking)
		return tracking.Progress == 100
	}, 3*time.Second, 20*time.Millisecond)

	assert.Eventually(t, func() bool {
		for _, ev := range pub.Events() {
			if ev.EventType == models.EventOrderDelivered && ev.OrderID == order.ID {
				return true
			}
		}
		return false
	}, time.Second, 10*time.Millisecond)

	// 3. booking wizard
	call(t, client, "POST", srv.URL+"/cart/items", map[string]interface{}{"dish_id": 20})
	code, _ = call(t, client, "POST", srv.URL+"/booking", map[string]interface{}{"kind": "table"})
	require.Equal(t, http.StatusCreated, code)
	code, resp = call(t, client, "POST", srv.URL+"/booking/details", map[string]interface{}{
		"date":   time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
		"time":   "18:00",
		"guests": 6,
		"name":   "Ada Lovelace",
		"email":  "ada@example.com",
		"phone":  "555-123-4567",
	})
	require.Equal(t, http.StatusOK, code, resp.Message)
	code, _ = call(t, client, "POST", srv.URL+"/booking/chef", map[string]interface{}{})
	require.Equal(t, http.StatusOK, code)
	code, _ = call(t, client, "POST", srv.URL+"/booking/pre-order", nil)
	require.Equal(t, http.StatusOK, code)
	code, resp = call(t, client, "POST", srv.URL+"/booking/payment", map[string]interface{}{
		"card_name":   "Ada Lovelace",
		"card_number": "4242 4242 4242 4242",
		"expiry":      "12/99",
		"cvc":         "123",
	})
	require.Equal(t, http.StatusAccepted, code, resp.Message)

	update := waitForEvent(t, wsConn, live.EventBookingUpdate)
	var wizard models.BookingWizard
	require.NoError(t, json.Unmarshal(update.Data, &wizard))
	require.NotNil(t, wizard.Reservation)
	assert.Equal(t, 69.0, wizard.Reservation.Payment.Amount)
	assert.Equal(t, 6, wizard.Reservation.Guests)

	code, resp = call(t, client, "GET", srv.URL+"/cart", nil)
	require.Equal(t, http.StatusOK, code)
	var cart models.Cart
	require.NoError(t, json.Unmarshal(resp.Data, &cart))
	assert.Empty(t, cart.Items)

	// 4. consent
	code, resp = call(t, client, "GET", srv.URL+"/consent", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(resp.Data), `"show_banner":true`)
	code, _ = call(t, client, "POST", srv.URL+"/consent/accept-all", nil)
	require.Equal(t, http.StatusOK, code)
	code, resp = call(t, client, "GET", srv.URL+"/consent", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(resp.Data), `"show_banner":false`)
}

func TestVisitorsDoNotShareState(t *testing.T) {
	srv, _ := setupTestServer(t)
	alice := newClient(t)
	bob := newClient(t)

	call(t, alice, "POST", srv.URL+"/cart/items", map[string]interface{}{"dish_id": 2})

	_, resp := call(t, bob, "GET", srv.URL+"/cart", nil)
	var cart models.Cart
	require.NoError(t, json.Unmarshal(resp.Data, &cart))
	assert.Empty(t, cart.Items)

	_, resp = call(t, alice, "GET", srv.URL+"/cart", nil)
	require.NoError(t, json.Unmarshal(resp.Data, &cart))
	assert.Len(t, cart.Items, 1)
}

func TestPublicEndpointsAndMetrics(t *testing.T) {
	srv, _ := setupTestServer(t)
	client := newClient(t)

	code, resp := call(t, client, "GET", srv.URL+"/menu/dishes", nil)
	require.Equal(t, http.StatusOK, code)
	var dishes []models.Dish
	require.NoError(t, json.Unmarshal(resp.Data, &dishes))
	assert.Len(t, dishes, 39)

	res, err := client.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "nosniff", res.Header.Get("X-Content-Type-Options"))
}

func TestRequestLogCoversPublicAndVisitorRoutes(t *testing.T) {
	srv, _ := setupTestServer(t)
	client := newClient(t)

	var buf bytes.Buffer
	utils.InfoLogger.SetOutput(&buf)
	t.Cleanup(func() { utils.InfoLogger.SetOutput(os.Stdout) })

	code, _ := call(t, client, "GET", srv.URL+"/menu/categories", nil)
	require.Equal(t, http.StatusOK, code)
	code, _ = call(t, client, "GET", srv.URL+"/legal/privacy", nil)
	require.Equal(t, http.StatusOK, code)
	code, _ = call(t, client, "GET", srv.URL+"/cart", nil)
	require.Equal(t, http.StatusOK, code)

	// stop writing into buf before reading it
	utils.InfoLogger.SetOutput(os.Stdout)
	logged := buf.String()
	assert.Contains(t, logged, "GET | 200")
	assert.Contains(t, logged, "/menu/categories")
	assert.Contains(t, logged, "/legal/privacy")
	assert.Contains(t, logged, "/cart")
}

type wsEvent struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func dialLive(t *testing.T, srv *httptest.Server, client *http.Client) *websocket.Conn {
	t.Helper()
	req, _ := http.NewRequest("GET", srv.URL, nil)
	header := http.Header{}
	for _, c := range client.Jar.Cookies(req.URL) {
		if c.Name == middlewares.SessionCookie {
			header.Add("Cookie", c.Name+"="+c.Value)
		}
	}
	require.NotEmpty(t, header.Get("Cookie"), "session cookie missing")

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.NoError(t, err)
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) wsEvent {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	var ev wsEvent
	require.NoError(t, conn.ReadJSON(&ev))
	return ev
}

func waitForEvent(t *testing.T, conn *websocket.Conn, event string) wsEvent {
	t.Helper()
	for {
		ev := readEvent(t, conn)
		if ev.Event == event {
			return ev
		}
	}
}
