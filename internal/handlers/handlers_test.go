package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/savkar_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/savkar_ledger/internal/core/ports/services"
	"github.com/SscSPs/savkar_ledger/internal/core/services"
	"github.com/SscSPs/savkar_ledger/internal/handlers"
	"github.com/SscSPs/savkar_ledger/internal/middleware"
	"github.com/SscSPs/savkar_ledger/internal/platform/config"
	"github.com/SscSPs/savkar_ledger/internal/repositories/database/docstore"
	"github.com/SscSPs/savkar_ledger/internal/repositories/database/memory"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var fixedNow = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{IsProduction: true, DefaultAccountID: domain.DefaultAccountID}
}

func middlewareLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRouter(container *portssvc.ServiceContainer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(middlewareLogger()))
	handlers.RegisterRoutes(r, testConfig(), container)
	return r
}

type LedgerAPITestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *LedgerAPITestSuite) SetupTest() {
	clock := func() time.Time { return fixedNow }
	repos := docstore.NewRepositoryProvider(memory.NewStore(), clock)
	suite.router = newRouter(services.NewServiceContainer(repos, services.WithReportingClock(clock)))
}

func (suite *LedgerAPITestSuite) do(method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *LedgerAPITestSuite) decode(w *httptest.ResponseRecorder, out any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func loanBody(name, status string, total, paid float64) map[string]any {
	return map[string]any{
		"borrowerName": name,
		"phoneNumber":  "9876543210",
		"emi":          5000,
		"startDate":    "2024-01-01",
		"endDate":      "2024-12-31",
		"interestRate": 2,
		"paymentMode":  "Cash",
		"totalLoan":    total,
		"paidAmount":   paid,
		"status":       status,
	}
}

func (suite *LedgerAPITestSuite) createLoan(path string, body map[string]any, headers ...string) map[string]any {
	w := suite.do(http.MethodPost, path, body, headers...)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var loan map[string]any
	suite.decode(w, &loan)
	return loan
}

func (suite *LedgerAPITestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())

	w = suite.do(http.MethodGet, "/health/store", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"status":"ok"}`, w.Body.String())
}

func (suite *LedgerAPITestSuite) TestCreateLoan_DefaultsAndTimestamps() {
	loan := suite.createLoan("/loans", loanBody("Ramesh Patil", "Active", 100000, 0))

	suite.NotEmpty(loan["id"])
	suite.Equal("Cash Loan", loan["loanType"])
	suite.Equal(0.0, loan["paidAmount"])
	suite.Equal("2025-01-15T12:00:00Z", loan["createdAt"])
	suite.Equal(loan["createdAt"], loan["updatedAt"])
}

func (suite *LedgerAPITestSuite) TestCreateLoan_InvalidEnum() {
	body := loanBody("Ramesh Patil", "Active", 100000, 0)
	body["paymentMode"] = "Bitcoin"

	w := suite.do(http.MethodPost, "/loans", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp map[string]any
	suite.decode(w, &resp)
	suite.Equal("paymentMode", resp["field"])
}

func (suite *LedgerAPITestSuite) TestCreateLoan_MissingRequiredField() {
	body := loanBody("Ramesh Patil", "Active", 100000, 0)
	delete(body, "phoneNumber")

	w := suite.do(http.MethodPost, "/loans", body)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *LedgerAPITestSuite) TestGetUpdateDeleteLoan() {
	loan := suite.createLoan("/loans", loanBody("Ramesh Patil", "Active", 100000, 0))
	id := loan["id"].(string)

	w := suite.do(http.MethodPut, "/loans/"+id, map[string]any{"paidAmount": 25000, "loanType": "Gold Loan"})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var updated map[string]any
	suite.decode(w, &updated)
	suite.Equal(25000.0, updated["paidAmount"])
	suite.Equal("Gold Loan", updated["loanType"])
	suite.Equal("Ramesh Patil", updated["borrowerName"])

	w = suite.do(http.MethodGet, "/loans/"+id, nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodDelete, "/loans/"+id, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"message":"Loan deleted successfully"}`, w.Body.String())

	w = suite.do(http.MethodGet, "/loans/"+id, nil)
	suite.Equal(http.StatusNotFound, w.Code)

	// Deleting again still succeeds.
	w = suite.do(http.MethodDelete, "/loans/"+id, nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *LedgerAPITestSuite) TestUpdateLoan_NotFound() {
	w := suite.do(http.MethodPut, "/loans/missing", map[string]any{"paidAmount": 10})
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *LedgerAPITestSuite) TestCallerRoutes_RequireIdentity() {
	w := suite.do(http.MethodGet, "/users/me/loans", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *LedgerAPITestSuite) TestCallerRoutes_RejectPathLikeIdentity() {
	w := suite.do(http.MethodGet, "/users/me/loans?uid=victim%2Floans%2Fx", nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPost, "/users/me/loans", loanBody("Sunita Jadhav", "Pending", 50000, 0),
		middleware.UserIDHeader, "victim/loans/x")
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodGet, "/users/me/loans", nil, middleware.UserIDHeader, "victim")
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *LedgerAPITestSuite) TestDeleteUnknownIDs() {
	cases := map[string]string{
		"/loans/unknown":     `{"message":"Loan deleted successfully"}`,
		"/documents/unknown": `{"message":"Document deleted successfully"}`,
		"/notices/unknown":   `{"message":"Notice deleted successfully"}`,
	}
	for path, want := range cases {
		w := suite.do(http.MethodDelete, path, nil)
		suite.Equal(http.StatusOK, w.Code, path)
		suite.JSONEq(want, w.Body.String(), path)
	}
}

func (suite *LedgerAPITestSuite) TestCallerRoutes_ArePartitioned() {
	suite.createLoan("/users/me/loans", loanBody("Sunita Jadhav", "Pending", 50000, 0), middleware.UserIDHeader, "user-a")

	w := suite.do(http.MethodGet, "/users/me/loans?uid=user-a", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var mine []map[string]any
	suite.decode(w, &mine)
	suite.Len(mine, 1)

	w = suite.do(http.MethodGet, "/users/me/loans", nil, middleware.UserIDHeader, "user-b")
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())

	w = suite.do(http.MethodGet, "/loans", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *LedgerAPITestSuite) TestDashboardSummaryAndDefaulters() {
	suite.createLoan("/loans", loanBody("A", "Active", 50000, 30000))
	suite.createLoan("/loans", loanBody("B", "Pending", 30000, 12000))
	suite.createLoan("/loans", loanBody("C", "Closed", 100000, 100000))

	w := suite.do(http.MethodGet, "/dashboard/summary", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{
		"totalLoanIssued": 180000,
		"recoveredAmount": 142000,
		"pendingAmount": 38000,
		"activeRecords": 1,
		"pendingRecords": 1,
		"closingRecords": 1
	}`, w.Body.String())

	w = suite.do(http.MethodGet, "/loans/defaulters", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var defaulters []map[string]any
	suite.decode(w, &defaulters)
	suite.Len(defaulters, 2)
}

func (suite *LedgerAPITestSuite) TestDocuments() {
	loan := suite.createLoan("/loans", loanBody("Ramesh Patil", "Active", 100000, 0))
	loanID := loan["id"].(string)

	content := string(bytes.Repeat([]byte("a"), 3048))
	w := suite.do(http.MethodPost, "/documents", map[string]any{
		"loanId":      loanID,
		"name":        "Aadhar Card",
		"type":        "ID Proof",
		"fileName":    "aadhar.pdf",
		"fileContent": content,
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var doc map[string]any
	suite.decode(w, &doc)
	suite.NotContains(doc, "fileContent")
	suite.NotEmpty(doc["fileId"])
	suite.Equal(2.0, doc["fileSize"])
	suite.Equal("Ramesh Patil", doc["borrowerName"])

	w = suite.do(http.MethodGet, "/loans/"+loanID+"/documents", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var docs []map[string]any
	suite.decode(w, &docs)
	suite.Len(docs, 1)

	w = suite.do(http.MethodDelete, "/documents/"+doc["id"].(string), nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"message":"Document deleted successfully"}`, w.Body.String())
}

func (suite *LedgerAPITestSuite) TestNotices() {
	w := suite.do(http.MethodPost, "/notices", map[string]any{
		"borrowerId":   "L1",
		"borrowerName": "Ramesh Patil",
		"amountDue":    15000,
		"noticeDate":   "2024-03-01",
		"status":       "Pending",
		"description":  "First notice",
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var notice map[string]any
	suite.decode(w, &notice)

	w = suite.do(http.MethodPut, "/notices/"+notice["id"].(string), map[string]any{"status": "Resolved"})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var updated map[string]any
	suite.decode(w, &updated)
	suite.Equal("Resolved", updated["status"])

	w = suite.do(http.MethodPut, "/notices/"+notice["id"].(string), map[string]any{"status": "Closed"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *LedgerAPITestSuite) TestTransactions() {
	w := suite.do(http.MethodPost, "/transactions", map[string]any{
		"borrowerId":   "L1",
		"borrowerName": "Ramesh Patil",
		"amount":       5000,
		"type":         "Payment",
		"date":         "2024-03-01",
		"description":  "March EMI",
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = suite.do(http.MethodGet, "/transactions", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var txns []map[string]any
	suite.decode(w, &txns)
	suite.Len(txns, 1)
	suite.Equal("Payment", txns[0]["type"])
}

func (suite *LedgerAPITestSuite) TestProfiles() {
	w := suite.do(http.MethodPost, "/profiles", map[string]any{
		"loanId":     42,
		"occupation": "Farmer",
		"guarantors": []map[string]any{{"id": 7, "name": "Suresh"}},
		"paymentRecords": []map[string]any{
			{"date": "2024-02-01", "amount": 5000},
		},
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var profile map[string]any
	suite.decode(w, &profile)
	suite.Equal("42", profile["loanId"])

	w = suite.do(http.MethodGet, "/loans/42/profile", nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = suite.do(http.MethodGet, "/loans/43/profile", nil)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.do(http.MethodPost, "/profiles", map[string]any{
		"loanId":         "43",
		"paymentRecords": []map[string]any{{"amount": 5000}},
	})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodDelete, "/profiles/"+profile["id"].(string), nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"message":"Profile deleted successfully"}`, w.Body.String())
}

func TestLedgerAPI(t *testing.T) {
	suite.Run(t, new(LedgerAPITestSuite))
}

// Failure mapping with stub services.

type MockHealthService struct {
	mock.Mock
}

func (m *MockHealthService) CheckStore(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockLoanService struct {
	portssvc.LoanSvcFacade
	mock.Mock
}

func (m *MockLoanService) ListLoans(ctx context.Context, accountID string) ([]domain.Loan, error) {
	args := m.Called(ctx, accountID)
	loans, _ := args.Get(0).([]domain.Loan)
	return loans, args.Error(1)
}

func TestStoreHealth_Unavailable(t *testing.T) {
	hs := new(MockHealthService)
	hs.On("CheckStore", mock.Anything).Return(errors.New("connection refused"))
	r := newRouter(&portssvc.ServiceContainer{Health: hs})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/store", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	hs.AssertExpectations(t)
}

func TestListLoans_StoreFailureIsInternalError(t *testing.T) {
	ls := new(MockLoanService)
	ls.On("ListLoans", mock.Anything, domain.DefaultAccountID).Return(nil, errors.New("boom"))
	r := newRouter(&portssvc.ServiceContainer{Loan: ls})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/loans", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	ls.AssertExpectations(t)
}
