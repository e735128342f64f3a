package httpserver

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	paymentledger "parcelhub/contexts/finance-core/payment-ledger"
	riderdirectory "parcelhub/contexts/fleet-operations/rider-directory"
	authgate "parcelhub/contexts/identity-access/auth-gate"
	userdirectory "parcelhub/contexts/identity-access/user-directory"
	parcelregistry "parcelhub/contexts/parcel-logistics/parcel-registry"
	trackinglog "parcelhub/contexts/parcel-logistics/tracking-log"
	"parcelhub/internal/app/bridge"
	"parcelhub/internal/platform/messaging"
)

const (
	tokenA    = "token-a"
	tokenB    = "token-b"
	tokenRoot = "token-root"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	bus, err := messaging.NewBus(nil, slog.Default())
	if err != nil {
		t.Fatalf("bus setup failed: %v", err)
	}
	parcels := parcelregistry.NewInMemoryModule(nil, slog.Default())
	return New(Modules{
		Auth: authgate.NewInMemoryModule(map[string]string{
			tokenA:    "a@x.com",
			tokenB:    "b@x.com",
			tokenRoot: "root@x.com",
		}, slog.Default()),
		Users:    userdirectory.NewInMemoryModule([]string{"root@x.com"}, slog.Default()),
		Parcels:  parcels,
		Tracking: trackinglog.NewInMemoryModule(bus, slog.Default()),
		Payments: paymentledger.NewInMemoryModule(bridge.ParcelPaymentGate{Parcels: parcels.MarkPaid}, bus, slog.Default()),
		Riders:   riderdirectory.NewInMemoryModule(slog.Default()),
	}, slog.Default(), ":0")
}

func doRequest(server *Server, method string, path string, body string, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), target); err != nil {
		t.Fatalf("decode response failed: %v body=%s", err, rr.Body.String())
	}
}

func createParcel(t *testing.T, server *Server, owner string) string {
	t.Helper()
	rr := doRequest(server, http.MethodPost, "/parcels", `{"created_by":"`+owner+`","weight":2}`, "")
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	var resp struct {
		InsertedID string `json:"inserted_id"`
	}
	decodeBody(t, rr, &resp)
	return resp.InsertedID
}

func TestRootAndHealthz(t *testing.T) {
	server := newTestServer(t)

	rr := doRequest(server, http.MethodGet, "/", "", "")
	if rr.Code != http.StatusOK || rr.Body.String() != "Parcel Server is running" {
		t.Fatalf("unexpected root response %d %q", rr.Code, rr.Body.String())
	}
	rr = doRequest(server, http.MethodGet, "/healthz", "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	rr = doRequest(server, http.MethodGet, "/metrics", "", "")
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "parcelhub_http_requests_total") {
		t.Fatalf("expected request counter in exposition, got %d", rr.Code)
	}
}

func TestMyParcelsRequiresAuthorization(t *testing.T) {
	server := newTestServer(t)
	createParcel(t, server, "a@x.com")

	if rr := doRequest(server, http.MethodGet, "/my-parcels?email=a@x.com", "", ""); rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
	if rr := doRequest(server, http.MethodGet, "/my-parcels?email=a@x.com", "", "not-a-token"); rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for unknown token, got %d body=%s", rr.Code, rr.Body.String())
	}
	if rr := doRequest(server, http.MethodGet, "/my-parcels?email=a@x.com", "", tokenB); rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for foreign owner, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr := doRequest(server, http.MethodGet, "/my-parcels?email=A@x.com", "", tokenA)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Items []map[string]any `json:"items"`
	}
	decodeBody(t, rr, &resp)
	if len(resp.Items) != 1 {
		t.Fatalf("expected one parcel, got %d", len(resp.Items))
	}
}

func TestCreateParcelTakesOwnerFromBearer(t *testing.T) {
	server := newTestServer(t)

	rr := doRequest(server, http.MethodPost, "/parcels", `{"created_by":"someone@x.com","weight":1}`, tokenA)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Parcel struct {
			CreatedBy     string `json:"created_by"`
			PaymentStatus string `json:"payment_status"`
		} `json:"parcel"`
	}
	decodeBody(t, rr, &resp)
	if resp.Parcel.CreatedBy != "a@x.com" {
		t.Fatalf("expected bearer subject as owner, got %s", resp.Parcel.CreatedBy)
	}
	if resp.Parcel.PaymentStatus != "unpaid" {
		t.Fatalf("expected unpaid, got %s", resp.Parcel.PaymentStatus)
	}

	if rr := doRequest(server, http.MethodPost, "/parcels", `{"weight":1}`, ""); rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without owner, got %d body=%s", rr.Code, rr.Body.String())
	}
	if rr := doRequest(server, http.MethodPost, "/parcels", `not json`, ""); rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad json, got %d", rr.Code)
	}
}

func TestGetAndDeleteParcel(t *testing.T) {
	server := newTestServer(t)
	parcelID := createParcel(t, server, "a@x.com")

	if rr := doRequest(server, http.MethodGet, "/parcels/"+parcelID, "", ""); rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr := doRequest(server, http.MethodDelete, "/parcels/"+parcelID, "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var deleted struct {
		DeletedCount int64 `json:"deleted_count"`
	}
	decodeBody(t, rr, &deleted)
	if deleted.DeletedCount != 1 {
		t.Fatalf("expected one deleted, got %d", deleted.DeletedCount)
	}

	if rr := doRequest(server, http.MethodGet, "/parcels/"+parcelID, "", ""); rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rr.Code)
	}
	rr = doRequest(server, http.MethodDelete, "/parcels/"+parcelID, "", "")
	decodeBody(t, rr, &deleted)
	if rr.Code != http.StatusOK || deleted.DeletedCount != 0 {
		t.Fatalf("expected 200 with zero deleted, got %d/%d", rr.Code, deleted.DeletedCount)
	}
}

func TestRecordPaymentLifecycle(t *testing.T) {
	server := newTestServer(t)
	parcelID := createParcel(t, server, "a@x.com")
	body := `{"parcel_id":"` + parcelID + `","email":"a@x.com","amount":12.5,"method":"card","transaction_id":"tx-1"}`

	rr := doRequest(server, http.MethodPost, "/payments", body, "")
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doRequest(server, http.MethodPost, "/payments", body, "")
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 for repeated payment, got %d body=%s", rr.Code, rr.Body.String())
	}
	var repeated struct {
		Code string `json:"code"`
	}
	decodeBody(t, rr, &repeated)
	if repeated.Code != "already_paid" {
		t.Fatalf("expected already_paid, got %s", repeated.Code)
	}

	second := `{"parcel_id":"` + parcelID + `","email":"a@x.com","amount":12.5,"method":"card","transaction_id":"tx-2"}`
	if rr := doRequest(server, http.MethodPost, "/payments", second, ""); rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 already paid, got %d body=%s", rr.Code, rr.Body.String())
	}

	reused := `{"parcel_id":"` + parcelID + `","email":"a@x.com","amount":99,"method":"card","transaction_id":"tx-1"}`
	rr = doRequest(server, http.MethodPost, "/payments", reused, "")
	var conflict struct {
		Code string `json:"code"`
	}
	decodeBody(t, rr, &conflict)
	if rr.Code != http.StatusConflict || conflict.Code != "transaction_conflict" {
		t.Fatalf("expected 409 transaction_conflict, got %d %s", rr.Code, conflict.Code)
	}

	rr = doRequest(server, http.MethodGet, "/payments", "", tokenA)
	var ledger struct {
		Items []map[string]any `json:"items"`
	}
	decodeBody(t, rr, &ledger)
	if len(ledger.Items) != 1 {
		t.Fatalf("expected ledger to keep one entry, got %d", len(ledger.Items))
	}

	missing := `{"parcel_id":"nope","email":"a@x.com","amount":1,"method":"card","transaction_id":"tx-3"}`
	if rr := doRequest(server, http.MethodPost, "/payments", missing, ""); rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}

	invalid := `{"parcel_id":"` + parcelID + `","email":"a@x.com","amount":0,"method":"card","transaction_id":"tx-4"}`
	if rr := doRequest(server, http.MethodPost, "/payments", invalid, ""); rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doRequest(server, http.MethodGet, "/parcels/"+parcelID, "", "")
	var parcel struct {
		Item struct {
			PaymentStatus string `json:"payment_status"`
		} `json:"item"`
	}
	decodeBody(t, rr, &parcel)
	if parcel.Item.PaymentStatus != "paid" {
		t.Fatalf("expected paid parcel, got %s", parcel.Item.PaymentStatus)
	}
}

func TestListPaymentsEnforcesOwnership(t *testing.T) {
	server := newTestServer(t)
	parcelID := createParcel(t, server, "a@x.com")
	body := `{"parcel_id":"` + parcelID + `","email":"a@x.com","amount":"7.25","method":"card","transaction_id":"tx-own"}`
	if rr := doRequest(server, http.MethodPost, "/payments", body, ""); rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	if rr := doRequest(server, http.MethodGet, "/payments?email=a@x.com", "", ""); rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	if rr := doRequest(server, http.MethodGet, "/payments?email=a@x.com", "", tokenB); rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr := doRequest(server, http.MethodGet, "/payments", "", tokenA)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Items []struct {
			TransactionID string `json:"transaction_id"`
		} `json:"items"`
	}
	decodeBody(t, rr, &resp)
	if len(resp.Items) != 1 || resp.Items[0].TransactionID != "tx-own" {
		t.Fatalf("unexpected payments %+v", resp.Items)
	}
}

func TestCreatePaymentIntent(t *testing.T) {
	server := newTestServer(t)

	rr := doRequest(server, http.MethodPost, "/create-payment-intent", `{"amount_in_cents":1250}`, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var resp struct {
		ClientSecret string `json:"clientSecret"`
		Amount       int64  `json:"amount_in_cents"`
	}
	decodeBody(t, rr, &resp)
	if resp.ClientSecret == "" || resp.Amount != 1250 {
		t.Fatalf("unexpected intent %+v", resp)
	}

	if rr := doRequest(server, http.MethodPost, "/create-payment-intent", `{"amount_in_cents":0}`, ""); rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAppendTrackingUsesBearerSubject(t *testing.T) {
	server := newTestServer(t)
	body := `{"tracking_code":"PH-1","status":"in_transit","message":"left hub"}`

	if rr := doRequest(server, http.MethodPost, "/tracking", body, ""); rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	rr := doRequest(server, http.MethodPost, "/tracking", body, tokenA)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	if rr := doRequest(server, http.MethodPost, "/tracking", `{"status":"x"}`, tokenA); rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without tracking code, got %d", rr.Code)
	}

	rr = doRequest(server, http.MethodGet, "/tracking/PH-1", "", "")
	var resp struct {
		Items []struct {
			Status    string `json:"status"`
			UpdatedBy string `json:"updated_by"`
		} `json:"items"`
	}
	decodeBody(t, rr, &resp)
	if len(resp.Items) != 1 {
		t.Fatalf("expected one event, got %d", len(resp.Items))
	}
	if resp.Items[0].UpdatedBy != "a@x.com" || resp.Items[0].Status != "in_transit" {
		t.Fatalf("unexpected event %+v", resp.Items[0])
	}
}

func TestRiderStatusTransitions(t *testing.T) {
	server := newTestServer(t)

	rr := doRequest(server, http.MethodPost, "/riders", `{"email":"rider@x.com","name":"R"}`, "")
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	var created struct {
		InsertedID string `json:"inserted_id"`
	}
	decodeBody(t, rr, &created)

	rr = doRequest(server, http.MethodGet, "/riders", "", "")
	var pending struct {
		Items []map[string]any `json:"items"`
	}
	decodeBody(t, rr, &pending)
	if len(pending.Items) != 1 {
		t.Fatalf("expected one pending rider, got %d", len(pending.Items))
	}

	path := "/riders/" + created.InsertedID + "/status"
	if rr := doRequest(server, http.MethodPatch, path, `{"status":"active"}`, ""); rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if rr := doRequest(server, http.MethodPatch, path, `{"status":"pending"}`, ""); rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rr.Code, rr.Body.String())
	}
	if rr := doRequest(server, http.MethodPatch, path, `{"status":"retired"}`, ""); rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
	if rr := doRequest(server, http.MethodPatch, "/riders/missing/status", `{"status":"active"}`, ""); rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestUserUpsertAndRole(t *testing.T) {
	server := newTestServer(t)

	if rr := doRequest(server, http.MethodPost, "/users", `{"email":"a@x.com","name":"A"}`, ""); rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	if rr := doRequest(server, http.MethodPost, "/users", `{"email":"a@x.com"}`, ""); rr.Code != http.StatusOK {
		t.Fatalf("expected 200 on refresh, got %d body=%s", rr.Code, rr.Body.String())
	}
	if rr := doRequest(server, http.MethodPost, "/users", `{"email":"b@x.com"}`, ""); rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr := doRequest(server, http.MethodGet, "/users/a@x.com/role", "", "")
	var role struct {
		Role string `json:"role"`
	}
	decodeBody(t, rr, &role)
	if role.Role != "user" {
		t.Fatalf("expected default role user, got %s", role.Role)
	}

	if rr := doRequest(server, http.MethodPatch, "/users/a@x.com/role", `{"role":"admin"}`, ""); rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	if rr := doRequest(server, http.MethodPatch, "/users/b@x.com/role", `{"role":"rider"}`, tokenA); rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 changing another user's role, got %d body=%s", rr.Code, rr.Body.String())
	}
	if rr := doRequest(server, http.MethodPatch, "/users/a@x.com/role", `{"role":"admin"}`, tokenA); rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 on self promotion, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doRequest(server, http.MethodPatch, "/users/a@x.com/role", `{"role":"rider"}`, tokenA)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 on own role change, got %d body=%s", rr.Code, rr.Body.String())
	}
	decodeBody(t, rr, &role)
	if role.Role != "rider" {
		t.Fatalf("expected rider, got %s", role.Role)
	}

	rr = doRequest(server, http.MethodPatch, "/users/b@x.com/role", `{"role":"admin"}`, tokenRoot)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 from configured admin, got %d body=%s", rr.Code, rr.Body.String())
	}
	decodeBody(t, rr, &role)
	if role.Role != "admin" {
		t.Fatalf("expected admin, got %s", role.Role)
	}
	if rr := doRequest(server, http.MethodPatch, "/users/a@x.com/role", `{"role":"user"}`, tokenB); rr.Code != http.StatusOK {
		t.Fatalf("expected stored admin to change roles, got %d body=%s", rr.Code, rr.Body.String())
	}

	if rr := doRequest(server, http.MethodGet, "/users/ghost@x.com", "", ""); rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}
