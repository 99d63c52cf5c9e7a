package service

import (
	"github.com/JahangirOsman/hdp-webapp/internal/dataset"
	"github.com/JahangirOsman/hdp-webapp/internal/logger"
	"github.com/JahangirOsman/hdp-webapp/internal/store"
)

type Services struct {
	AuthService       AuthService
	PredictionService PredictionService
	ChartService      ChartService
}

func NewServices(userRepository store.UserRepository, classifier Classifier, data *dataset.Dataset, logger *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(userRepository, logger),
		PredictionService: NewPredictionService(classifier, logger),
		ChartService:      NewChartService(data, logger),
	}
}
