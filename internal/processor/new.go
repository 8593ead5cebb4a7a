package processor

import (
	"github.com/nguyentantai21042004/caption-studio/internal/config"
	"github.com/nguyentantai21042004/caption-studio/internal/logger"
)

type implProcessor struct {
	cfg    *config.Config
	logger logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, log logger.Logger) Processor {
	return &implProcessor{
		cfg:    cfg,
		logger: log,
	}
}
