package cmd

import (
	"log/slog"

	adapterhttp "parceltrack/internal/adapters/in/http"
	"parceltrack/internal/adapters/out/postgres/deliveryrepo"
	"parceltrack/internal/adapters/out/twilio"
	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. All factory methods
// hand out cheap value handlers sharing the same repository and notifier.
type CompositionRoot struct {
	config   Config
	gormDB   *gorm.DB
	repo     ports.DeliveryRepository
	notifier ports.Notifier
	logger   *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config: config,
		gormDB: gormDB,
		repo:   deliveryrepo.NewGormDeliveryRepository(gormDB),
		notifier: twilio.NewSMSNotifier(twilio.Config{
			AccountSID:    config.TwilioSID,
			AuthToken:     config.TwilioAuth,
			FromNumber:    config.TwilioNumber,
			PublicBaseURL: config.ServerURL,
		}, logger),
		logger: logger,
	}
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(c.repo, c.notifier)
}

func (c *CompositionRoot) CreateSubmitLocationCommandHandler() commands.SubmitLocationCommandHandler {
	return commands.NewSubmitLocationCommandHandler(c.repo, c.notifier)
}

func (c *CompositionRoot) CreateChangeStatusCommandHandler() commands.ChangeStatusCommandHandler {
	return commands.NewChangeStatusCommandHandler(c.repo, c.notifier)
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDeliveriesQueryHandler() queries.ListDeliveriesQueryHandler {
	return queries.NewListDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateStatusCountsQueryHandler() queries.StatusCountsQueryHandler {
	return queries.NewStatusCountsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateStatusCountsQueryHandler(), c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() *adapterhttp.Server {
	return adapterhttp.NewServer(
		adapterhttp.ConfigStatus{
			DatabaseURLSet:  c.config.DatabaseURL != "",
			ServerURLSet:    c.config.ServerURL != "",
			TwilioSIDSet:    c.config.TwilioSID != "",
			TwilioAuthSet:   c.config.TwilioAuth != "",
			TwilioNumberSet: c.config.TwilioNumber != "",
		},
		c.CreateCreateDeliveryCommandHandler(),
		c.CreateSubmitLocationCommandHandler(),
		c.CreateChangeStatusCommandHandler(),
		c.CreateGetDeliveryQueryHandler(),
		c.CreateListDeliveriesQueryHandler(),
	)
}
