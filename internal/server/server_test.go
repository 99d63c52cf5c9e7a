package server

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/JahangirOsman/hdp-webapp/internal/config"
	handlerhttp "github.com/JahangirOsman/hdp-webapp/internal/handler/http"
	"github.com/JahangirOsman/hdp-webapp/internal/logger"
	"github.com/JahangirOsman/hdp-webapp/internal/service"
	"github.com/JahangirOsman/hdp-webapp/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthSvc struct{}

func (s *stubAuthSvc) RegisterUser(_ context.Context, username, email, _ string) (models.User, error) {
	return models.User{ID: 1, Username: username, Email: email}, nil
}
func (s *stubAuthSvc) Login(_ context.Context, email, _ string) (models.User, error) {
	return models.User{ID: 1, Email: email}, nil
}

type stubPredictionSvc struct{}

func (s *stubPredictionSvc) Predict(_ context.Context, _ url.Values) (models.Prediction, error) {
	return models.Prediction{}, nil
}

type stubChartSvc struct{}

func (s *stubChartSvc) BuildCharts() []service.ChartFragment {
	return nil
}

func testHandler(t *testing.T) *handlerhttp.Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:       &stubAuthSvc{},
		PredictionService: &stubPredictionSvc{},
		ChartService:      &stubChartSvc{},
	}
	h, err := handlerhttp.NewHandler(svcs, config.Server{RequestTimeout: 30 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return h
}

func TestNewServer_Success(t *testing.T) {
	cfg := config.Server{HTTPAddress: "localhost:0", RequestTimeout: 30 * time.Second}

	srv, err := NewServer(testHandler(t), cfg, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, srv)
}

func TestNewServer_NoAddress(t *testing.T) {
	srv, err := NewServer(testHandler(t), config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServerAddress)
	assert.Nil(t, srv)
}
