package cmd

import (
	"log/slog"
	"os"

	httpin "parcelmarket/internal/adapters/in/http"
	"parcelmarket/internal/adapters/out/notify"
	"parcelmarket/internal/adapters/out/postgres"
	"parcelmarket/internal/core/application/usecases/commands"
	"parcelmarket/internal/core/application/usecases/queries"
	"parcelmarket/internal/core/domain/services"
	"parcelmarket/internal/core/ports"
	"parcelmarket/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	notifier   ports.EventNotifier
	pricing    services.PricingEngine
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		notifier:   notify.NewSlogEventNotifier(logger),
		pricing:    services.NewPricingEngine(),
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	return commands.NewCreateParcelCommandHandler(c.parcelUoWFactory(), c.pricing, c.notifier)
}

func (c *CompositionRoot) CreateAcceptParcelCommandHandler() commands.AcceptParcelCommandHandler {
	var f commands.ParcelCarrierUoWFactory = FuncParcelCarrierUoWFactory(func() commands.ParcelCarrierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptParcelCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateStartJourneyCommandHandler() commands.StartJourneyCommandHandler {
	return commands.NewStartJourneyCommandHandler(c.parcelUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateArriveAtPickupCommandHandler() commands.ArriveAtPickupCommandHandler {
	return commands.NewArriveAtPickupCommandHandler(c.parcelUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateSubmitPackagingCommandHandler() commands.SubmitPackagingCommandHandler {
	return commands.NewSubmitPackagingCommandHandler(c.parcelUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateConfirmPackagingCommandHandler() commands.ConfirmPackagingCommandHandler {
	return commands.NewConfirmPackagingCommandHandler(c.parcelUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateRejectPackagingCommandHandler() commands.RejectPackagingCommandHandler {
	return commands.NewRejectPackagingCommandHandler(c.parcelUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateConfirmPickupCommandHandler() commands.ConfirmPickupCommandHandler {
	return commands.NewConfirmPickupCommandHandler(c.parcelUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateDeliverParcelCommandHandler() commands.DeliverParcelCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeliverParcelCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateCancelParcelCommandHandler() commands.CancelParcelCommandHandler {
	return commands.NewCancelParcelCommandHandler(c.parcelUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateSubmitReviewCommandHandler() commands.SubmitReviewCommandHandler {
	var f commands.ReviewUoWFactory = FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitReviewCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCarrierCommandHandler() commands.CreateCarrierCommandHandler {
	return commands.NewCreateCarrierCommandHandler(c.carrierUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCarrierStatusCommandHandler() commands.UpdateCarrierStatusCommandHandler {
	return commands.NewUpdateCarrierStatusCommandHandler(c.carrierUoWFactory())
}

func (c *CompositionRoot) CreateSweepStalledPackagingCommandHandler() commands.SweepStalledPackagingCommandHandler {
	return commands.NewSweepStalledPackagingCommandHandler(c.parcelUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateFindAvailableMissionsQueryHandler() queries.FindAvailableMissionsQueryHandler {
	// Read-only path: the unit of work is never begun, its repositories run
	// outside any transaction.
	uow := c.uowFactory.Create()
	return queries.NewFindAvailableMissionsQueryHandler(
		uow.CarrierRepository(), uow.ParcelRepository())
}

func (c *CompositionRoot) CreateGetCarrierMissionsQueryHandler() queries.GetCarrierMissionsQueryHandler {
	return queries.NewGetCarrierMissionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateParcelCommandHandler(),
		c.CreateAcceptParcelCommandHandler(),
		c.CreateStartJourneyCommandHandler(),
		c.CreateArriveAtPickupCommandHandler(),
		c.CreateSubmitPackagingCommandHandler(),
		c.CreateConfirmPackagingCommandHandler(),
		c.CreateRejectPackagingCommandHandler(),
		c.CreateConfirmPickupCommandHandler(),
		c.CreateDeliverParcelCommandHandler(),
		c.CreateCancelParcelCommandHandler(),
		c.CreateSubmitReviewCommandHandler(),
		c.CreateCreateCarrierCommandHandler(),
		c.CreateUpdateCarrierStatusCommandHandler(),
		c.CreateFindAvailableMissionsQueryHandler(),
		c.CreateGetCarrierMissionsQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateSweepStalledPackagingCommandHandler(), c.logger)
}

func (c *CompositionRoot) parcelUoWFactory() commands.ParcelUoWFactory {
	return FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) carrierUoWFactory() commands.CarrierUoWFactory {
	return FuncCarrierUoWFactory(func() commands.CarrierUoW {
		return c.uowFactory.Create()
	})
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncCarrierUoWFactory func() commands.CarrierUoW

func (f FuncCarrierUoWFactory) Create() commands.CarrierUoW {
	return f()
}

type FuncParcelCarrierUoWFactory func() commands.ParcelCarrierUoW

func (f FuncParcelCarrierUoWFactory) Create() commands.ParcelCarrierUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}
