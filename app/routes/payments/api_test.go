package payments

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/config"
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/models"
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/routes/auth"
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/services"

	"github.com/gofiber/fiber/v2"
)

// stubIntakeStore keeps submitted payments in memory.
type stubIntakeStore struct {
	payments []*models.Payment
}

func (s *stubIntakeStore) UTRExists(utr string) (bool, error) {
	for _, p := range s.payments {
		if p.UTRNumber != nil && *p.UTRNumber == utr {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubIntakeStore) TransactionIDExists(txnID string) (bool, error) {
	for _, p := range s.payments {
		if p.TransactionID != nil && *p.TransactionID == txnID {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubIntakeStore) InsertPayment(p *models.Payment) error {
	s.payments = append(s.payments, p)
	return nil
}

func newTestApp(store *stubIntakeStore) (*fiber.App, string) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	app := fiber.New()
	intake := services.NewPaymentIntake(store)
	SetupPaymentRoutes(app, intake)

	token, err := auth.GenerateJWT("s1", "REG001")
	if err != nil {
		panic(err)
	}
	return app, token
}

func postPayment(t *testing.T, app *fiber.App, token, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/payments/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestSubmitPaymentAPI(t *testing.T) {
	store := &stubIntakeStore{}
	app, token := newTestApp(store)

	body := `{"method":"upi","amount":25000,"date":"2025-03-01T00:00:00Z","transaction_id":"UPI123456789","upi_id":"asha@upi"}`

	if code := postPayment(t, app, token, body); code != 201 {
		t.Fatalf("first submission: status = %d, want 201", code)
	}
	if len(store.payments) != 1 || store.payments[0].Status != models.PaymentPending {
		t.Fatal("payment not stored as pending")
	}
}

func TestSubmitPaymentAPIDuplicateTransactionID(t *testing.T) {
	store := &stubIntakeStore{}
	app, token := newTestApp(store)

	body := `{"method":"upi","amount":25000,"date":"2025-03-01T00:00:00Z","transaction_id":"UPI123456789"}`

	if code := postPayment(t, app, token, body); code != 201 {
		t.Fatalf("first submission: status = %d, want 201", code)
	}

	req := httptest.NewRequest("POST", "/api/payments/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 400 {
		t.Errorf("duplicate submission: status = %d, want 400", resp.StatusCode)
	}
	raw, _ := io.ReadAll(resp.Body)
	var payload map[string]string
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if payload["message"] != "Duplicate Transaction ID" {
		t.Errorf("message = %q, want duplicate transaction id rejection", payload["message"])
	}
	if len(store.payments) != 1 {
		t.Errorf("store holds %d payments, want 1", len(store.payments))
	}
}

func TestSubmitPaymentAPIRequiresAuth(t *testing.T) {
	store := &stubIntakeStore{}
	app, _ := newTestApp(store)

	req := httptest.NewRequest("POST", "/api/payments/", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 401 {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestSubmitPaymentAPIRejectsInvalidPayload(t *testing.T) {
	store := &stubIntakeStore{}
	app, token := newTestApp(store)

	// Missing amount and date.
	if code := postPayment(t, app, token, `{"method":"upi"}`); code != 400 {
		t.Errorf("status = %d, want 400", code)
	}
	if len(store.payments) != 0 {
		t.Error("invalid payload must not be persisted")
	}
}
