package config

import "go.uber.org/zap"

// InitLogging builds the zap logger for the current environment and installs
// it as the global, so packages can log through zap.S() without plumbing.
func InitLogging(env string) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error
	if env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}
