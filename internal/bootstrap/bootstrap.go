package bootstrap

import (
	"github.com/JieiGarcia/market-microstructure-research/pkg/config"
	"github.com/JieiGarcia/market-microstructure-research/pkg/logger"
	"github.com/JieiGarcia/market-microstructure-research/pkg/questdb"
	"github.com/JieiGarcia/market-microstructure-research/pkg/redis"
)

// Bootstrap holds the wired components of the zigzag tool.
type Bootstrap struct {
	Config     *config.Config
	Logger     logger.Interface
	Repository Repository
	Sink       Sink
	Usecase    Usecase

	QuestDB questdb.QuestDBClient
	Redis   redis.Client
}

// BootstrapConfig is the config for the bootstrap. QuestDB and Redis are
// optional and only needed by the components that use them.
type BootstrapConfig struct {
	Config  *config.Config
	QuestDB questdb.QuestDBClient
	Redis   redis.Client
	Logger  logger.Interface
}

// Init initializes the bootstrap.
func (b *Bootstrap) Init(config BootstrapConfig) (Bootstrap, error) {
	b.Config = config.Config
	b.QuestDB = config.QuestDB
	b.Redis = config.Redis
	b.Logger = config.Logger

	b.registerRepository()
	b.registerSink()
	if err := b.registerUsecase(); err != nil {
		return Bootstrap{}, err
	}

	return *b, nil
}

// Close releases the sinks that hold connections.
func (b *Bootstrap) Close() error {
	if b.Sink.Publisher != nil {
		return b.Sink.Publisher.Close()
	}
	return nil
}
