package di

import (
	"go.uber.org/zap"

	"github.com/rodrigogurgel/catalog-sub001/infrastructure/config"
	"github.com/rodrigogurgel/catalog-sub001/interfaces/http/rest"
)

// Container holds the wired application
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	Router *rest.Router
}
