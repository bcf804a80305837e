package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/captable-labs/captable-indexer/internal/captable"
	"github.com/captable-labs/captable-indexer/internal/config"
	"github.com/captable-labs/captable-indexer/internal/db"
	"github.com/captable-labs/captable-indexer/internal/db/model"
	"github.com/captable-labs/captable-indexer/tests/mocks"
)

func testServer(t *testing.T) (*Server, *mocks.DbInterface) {
	database := mocks.NewDbInterface(t)
	cfg := &config.ApiConfig{Host: "127.0.0.1", Port: 8080}
	return New(cfg, database), database
}

func serve(s *Server, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestHealthcheck(t *testing.T) {
	s, database := testServer(t)
	database.On("Ping", mock.Anything).Return(nil)

	rec := serve(s, http.MethodGet, "/healthcheck")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthcheckDatabaseDown(t *testing.T) {
	s, database := testServer(t)
	database.On("Ping", mock.Anything).Return(assert.AnError)

	rec := serve(s, http.MethodGet, "/healthcheck")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGetCapTable(t *testing.T) {
	s, database := testServer(t)
	issuerID := uuid.NewString()
	database.On("GetCapTableObjects", mock.Anything, issuerID).
		Return(&db.CapTableObjects{
			Issuer: &model.Issuer{ID: issuerID, SharesAuthorized: "1000000"},
		}, nil)

	rec := serve(s, http.MethodGet, "/v1/captable/"+issuerID)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary captable.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.True(t, summary.IsCapTableEmpty)
	assert.Equal(t, "1000000", summary.Totals.TotalSharesAuthorized.String())
}

func TestGetCapTableRejectsMalformedID(t *testing.T) {
	s, _ := testServer(t)

	rec := serve(s, http.MethodGet, "/v1/captable/not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCapTableUnknownIssuer(t *testing.T) {
	s, database := testServer(t)
	issuerID := uuid.NewString()
	database.On("GetCapTableObjects", mock.Anything, issuerID).
		Return(nil, &db.NotFoundError{Key: issuerID, Message: "issuer not found"})

	rec := serve(s, http.MethodGet, "/v1/captable/"+issuerID)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
