package internal

import "go.uber.org/zap"

// NewLogger builds the process logger. Production config emits
// structured JSON; debug switches to the human-readable development
// encoder with debug level enabled.
func NewLogger(debug bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
