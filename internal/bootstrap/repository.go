package bootstrap

import (
	swingInfra "github.com/JieiGarcia/market-microstructure-research/internal/infrastructure/questdb/swing"
	tickInfra "github.com/JieiGarcia/market-microstructure-research/internal/infrastructure/questdb/tick"
	"github.com/JieiGarcia/market-microstructure-research/pkg/questdb"
)

// Repository holds the QuestDB repositories.
type Repository struct {
	TickRepository  tickInfra.TickRepository
	SwingRepository swingInfra.SwingRepository
	Transaction     questdb.Transaction
}

// registerRepository registers the repository.
func (b *Bootstrap) registerRepository() {
	if b.QuestDB == nil {
		return
	}
	b.Repository.TickRepository = tickInfra.NewRepository(b.QuestDB)
	b.Repository.SwingRepository = swingInfra.NewRepository(b.QuestDB)
	b.Repository.Transaction = questdb.NewTransaction(b.QuestDB)
}
