package pudo_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lockerbooking/internal/adapters/out/pudo"
	"lockerbooking/internal/core/domain/model/shipment"
	"lockerbooking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRecorder struct{ mock.Mock }

func (m *MockRecorder) RecordGatewayRequest(operation string, status int, duration time.Duration) {
	m.Called(operation, status, duration)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newClient(t *testing.T, handler http.HandlerFunc, opts ...pudo.Option) *pudo.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := pudo.NewClient(srv.URL+"/", "secret-key", discardLogger(), opts...)
	require.NoError(t, err)
	return c
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := pudo.NewClient("", "  ", discardLogger())

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewClient_DoesNotModifyGivenHTTPClient(t *testing.T) {
	shared := &http.Client{Timeout: time.Minute}
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		_, _ = io.WriteString(w, `[]`)
	}))
	t.Cleanup(srv.Close)

	c, err := pudo.NewClient(srv.URL, "secret-key", discardLogger(),
		pudo.WithHTTPClient(shared), pudo.WithTimeout(time.Second))
	require.NoError(t, err)

	_, err = c.ListTerminals(t.Context())

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, time.Minute, shared.Timeout)
}

func TestClient_ListTerminals(t *testing.T) {
	t.Run("should send credentials and map records", func(t *testing.T) {
		recorder := new(MockRecorder)
		recorder.On("RecordGatewayRequest", pudo.OperationListTerminals, http.StatusOK, mock.Anything).Once()

		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/lockers-data", r.URL.Path)
			assert.Equal(t, "Bearer secret-key", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			_, _ = io.WriteString(w, `[
				{"code":"CG54","name":"Canal Walk","address":"Century Blvd","place":{"town":"Cape Town"},"latitude":-33.89,"longitude":"18.51"},
				{"code":"CG55","name":"No Coords","address":"","place":null,"latitude":null,"longitude":"n/a"},
				{"code":"","name":"Dropped"}
			]`)
		}, pudo.WithRecorder(recorder))

		got, err := c.ListTerminals(t.Context())

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "CG54", got[0].Code())
		assert.Equal(t, "Cape Town", got[0].Town())
		loc, ok := got[0].Location()
		require.True(t, ok)
		assert.InDelta(t, 18.51, loc.Longitude(), 1e-9)

		_, ok = got[1].Location()
		assert.False(t, ok)
		recorder.AssertExpectations(t)
	})

	t.Run("should surface non-2xx as transport error", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "invalid token", http.StatusUnauthorized)
		})

		_, err := c.ListTerminals(t.Context())

		require.ErrorIs(t, err, errs.ErrTransport)
		var te *pudo.TransportError
		require.ErrorAs(t, err, &te)
		assert.Equal(t, http.StatusUnauthorized, te.StatusCode)
		assert.Equal(t, "invalid token", te.Body)
		assert.Contains(t, err.Error(), "status 401")
	})

	t.Run("should reject undecodable body", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{"not":"an array"}`)
		})

		_, err := c.ListTerminals(t.Context())

		require.ErrorIs(t, err, errs.ErrTransport)
	})
}

func TestClient_CreateShipment(t *testing.T) {
	payload := shipment.Payload{
		CollectionAddress: shipment.TerminalEndpoint{Code: "CG01"},
		CollectionContact: shipment.Contact{Name: "Acme", Email: "ops@acme.test", Mobile: "082"},
		DeliveryAddress:   shipment.TerminalEndpoint{Code: "CG54"},
		DeliveryContact:   shipment.Contact{Name: "Jane", Email: "jane@example.test", Mobile: "083"},
		ServiceLevelCode:  shipment.SizeM.ServiceLevelCode(),
	}

	t.Run("should post payload once and parse reference", func(t *testing.T) {
		calls := 0
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls++
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/shipments", r.URL.Path)

			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "L2LM - ECO", body["service_level_code"])
			assert.Equal(t, map[string]any{"terminal_id": "CG54"}, body["delivery_address"])

			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"shipment_id":98765,"status":"pending"}`)
		})

		got, err := c.CreateShipment(t.Context(), payload)

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.Equal(t, "98765", got.Reference)
		assert.Equal(t, "pending", got.Status)
		assert.JSONEq(t, `{"shipment_id":98765,"status":"pending"}`, string(got.Raw))
	})

	t.Run("should not retry server errors", func(t *testing.T) {
		calls := 0
		recorder := new(MockRecorder)
		recorder.On("RecordGatewayRequest", pudo.OperationCreateShipment, http.StatusBadGateway, mock.Anything).Once()

		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			calls++
			w.WriteHeader(http.StatusBadGateway)
		}, pudo.WithRecorder(recorder))

		_, err := c.CreateShipment(t.Context(), payload)

		require.ErrorIs(t, err, errs.ErrTransport)
		assert.Equal(t, 1, calls)
		recorder.AssertExpectations(t)
	})

	t.Run("should time out at the client", func(t *testing.T) {
		recorder := new(MockRecorder)
		recorder.On("RecordGatewayRequest", pudo.OperationCreateShipment, 0, mock.Anything).Once()
		release := make(chan struct{})

		c := newClient(t, func(_ http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}, pudo.WithTimeout(50*time.Millisecond), pudo.WithRecorder(recorder))
		// Registered after the server's own cleanup so the handler is
		// released before Close waits on it.
		t.Cleanup(func() { close(release) })

		_, err := c.CreateShipment(t.Context(), payload)

		require.ErrorIs(t, err, errs.ErrTransport)
		var te *pudo.TransportError
		require.ErrorAs(t, err, &te)
		assert.Zero(t, te.StatusCode)
		recorder.AssertExpectations(t)
	})

	t.Run("should honour caller cancellation", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err := c.CreateShipment(ctx, payload)

		require.ErrorIs(t, err, errs.ErrTransport)
		require.ErrorIs(t, err, context.Canceled)
	})
}
