package cmd

import (
	"freight/internal/adapters/out/postgres"
	"freight/internal/adapters/out/postgres/raterepo"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	rateStore  *raterepo.GormRateRepository
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		rateStore:  raterepo.NewGormRateRepository(gormDB),
	}
}

func (c *CompositionRoot) RateStore() ports.RateStore {
	return c.rateStore
}

func (c *CompositionRoot) CreateCreateItemCommandHandler() commands.CreateItemCommandHandler {
	return commands.NewCreateItemCommandHandler(c.itemUoWFactory())
}

func (c *CompositionRoot) CreateTagItemCommandHandler() commands.TagItemCommandHandler {
	return commands.NewTagItemCommandHandler(c.uoWFactory(), c.rateStore)
}

func (c *CompositionRoot) CreateLoadItemsIntoContainerCommandHandler() commands.LoadItemsIntoContainerCommandHandler {
	return commands.NewLoadItemsIntoContainerCommandHandler(c.itemUoWFactory(), c.rateStore)
}

func (c *CompositionRoot) CreateUnloadItemFromContainerCommandHandler() commands.UnloadItemFromContainerCommandHandler {
	return commands.NewUnloadItemFromContainerCommandHandler(c.itemUoWFactory(), c.rateStore)
}

func (c *CompositionRoot) CreateMarkContainerArrivedCommandHandler() commands.MarkContainerArrivedCommandHandler {
	return commands.NewMarkContainerArrivedCommandHandler(c.itemUoWFactory(), c.rateStore)
}

func (c *CompositionRoot) CreateUpdateItemStatusCommandHandler() commands.UpdateItemStatusCommandHandler {
	return commands.NewUpdateItemStatusCommandHandler(c.itemUoWFactory(), c.rateStore)
}

func (c *CompositionRoot) CreateSetItemFlagCommandHandler() commands.SetItemFlagCommandHandler {
	return commands.NewSetItemFlagCommandHandler(c.itemUoWFactory(), c.rateStore)
}

func (c *CompositionRoot) CreateApplyBatchCommandHandler() commands.ApplyBatchCommandHandler {
	return commands.NewApplyBatchCommandHandler(c.itemUoWFactory(), c.rateStore)
}

func (c *CompositionRoot) CreateDeleteItemCommandHandler() commands.DeleteItemCommandHandler {
	return commands.NewDeleteItemCommandHandler(c.itemUoWFactory())
}

func (c *CompositionRoot) CreateRecomputeCostsCommandHandler() commands.RecomputeCostsCommandHandler {
	return commands.NewRecomputeCostsCommandHandler(c.itemUoWFactory(), c.rateStore)
}

func (c *CompositionRoot) CreateGetItemsQueryHandler() queries.GetItemsQueryHandler {
	return queries.NewGetItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetContainersQueryHandler() queries.GetContainersQueryHandler {
	return queries.NewGetContainersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllCustomersQueryHandler() queries.GetAllCustomersQueryHandler {
	return queries.NewGetAllCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) itemUoWFactory() commands.ItemUoWFactory {
	return FuncItemUoWFactory(func() commands.ItemUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncItemUoWFactory func() commands.ItemUoW

func (f FuncItemUoWFactory) Create() commands.ItemUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
