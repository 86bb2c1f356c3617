package main

import (
	"atlas-sorter/catalog"
	"atlas-sorter/config"
	"atlas-sorter/container"
	"atlas-sorter/database"
	consumer2 "atlas-sorter/kafka/consumer"
	sort2 "atlas-sorter/kafka/consumer/sort"
	"atlas-sorter/kafka/producer"
	"atlas-sorter/locked"
	"atlas-sorter/logger"
	"atlas-sorter/player"
	"atlas-sorter/preference"
	"atlas-sorter/push"
	"atlas-sorter/rest"
	"atlas-sorter/service"
	"atlas-sorter/session"
	"atlas-sorter/slot"
	"atlas-sorter/snapshot"
	"atlas-sorter/sorter"
	"atlas-sorter/tracing"
	"os"
	"strings"

	"github.com/Chronicle20/atlas-kafka/consumer"
	"github.com/Chronicle20/atlas-rest/server"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const serviceName = "atlas-sorter"

func GetServer() rest.ServerInformation {
	return rest.NewServerInformation("", "/api/")
}

func main() {
	if err := rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:          serviceName,
		Short:        "Inventory sorting service",
		SilenceUsage: true,
	}
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the REST API and consume sort commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configFile)
		},
	}
	serve.Flags().StringVar(&configFile, "config", "", "optional config file (yaml, json or toml)")
	serve.Flags().String("port", "", "REST port")
	serve.Flags().String("db-driver", "", "database driver (postgres or sqlite)")
	serve.Flags().String("catalog", "", "item catalog yaml, the built-in catalog when empty")
	_ = viper.BindPFlag(config.KeyRestPort, serve.Flags().Lookup("port"))
	_ = viper.BindPFlag(config.KeyDbDriver, serve.Flags().Lookup("db-driver"))
	_ = viper.BindPFlag(config.KeyCatalogPath, serve.Flags().Lookup("catalog"))

	root.AddCommand(serve)
	return root
}

func run(configFile string) error {
	l := logger.CreateLogger(serviceName)
	l.Infoln("Starting main service.")

	c, err := config.Load(viper.GetViper(), configFile)
	if err != nil {
		l.WithError(err).Errorf("Invalid configuration.")
		return err
	}

	o, err := loadCatalog(l, c.CatalogPath())
	if err != nil {
		l.WithError(err).Errorf("Unable to load item catalog.")
		return err
	}

	tdm := service.GetTeardownManager()

	tc, err := tracing.InitTracer(l)(serviceName)
	if err != nil {
		l.WithError(err).Errorf("Unable to initialize tracer.")
		return err
	}

	db := database.Connect(l,
		database.SetDriver(c.DbDriver()),
		database.SetDsn(c.DbDsn()),
		database.SetMigrations(slot.Migration, container.Migration, locked.Migration, preference.Migration))

	sessions := session.NewRegistry()
	locks := player.NewLockRegistry()
	hub := push.NewHub(l)
	collaborators := sorter.Collaborators{
		Oracle:   o,
		Locks:    locks,
		Sessions: sessions,
		Sortable: c.Sortable(),
		Defaults: c.DefaultPreference(),
	}

	exportBrokers(l, c.Brokers())
	producer.Enable()

	cmf := consumer.GetManager().AddConsumer(l, tdm.Context(), tdm.WaitGroup())
	sort2.InitConsumers(l)(cmf)(c.GroupId())
	push.InitConsumers(l)(cmf)(c.GroupId() + " Push " + uuid.New().String())
	sort2.InitHandlers(l)(db)(collaborators)(consumer.GetManager().RegisterHandler)
	push.InitHandlers(l)(hub)(consumer.GetManager().RegisterHandler)

	si := GetServer()
	server.New(l).
		WithContext(tdm.Context()).
		WithWaitGroup(tdm.WaitGroup()).
		SetBasePath(si.GetPrefix()).
		SetPort(c.RestPort()).
		AddRouteInitializer(container.InitResource(si)(db)(o)).
		AddRouteInitializer(session.InitResource(si)(db)(sessions)).
		AddRouteInitializer(locked.InitResource(si)(db)(locks)).
		AddRouteInitializer(preference.InitResource(si)(db)(locks, c.DefaultPreference())).
		AddRouteInitializer(sorter.InitResource(si)(db)(collaborators)).
		AddRouteInitializer(snapshot.InitResource(si)(db)(locks, c.DefaultPreference())).
		AddRouteInitializer(push.InitResource(si)(db)(hub, locks, c.DefaultPreference())).
		Run()

	tdm.TeardownFunc(tracing.Teardown(l)(tc))
	tdm.TeardownFunc(hub.Close)

	tdm.Wait()
	l.Infoln("Service shutdown.")
	return nil
}

func loadCatalog(l logrus.FieldLogger, path string) (*catalog.Registry, error) {
	if path == "" {
		l.Infof("Using built-in item catalog.")
		return catalog.Default(), nil
	}
	l.Infof("Loading item catalog from [%s].", path)
	return catalog.Load(path)
}

// exportBrokers publishes brokers from a config file or flag to the environment the kafka clients read.
func exportBrokers(l logrus.FieldLogger, brokers []string) {
	if os.Getenv(consumer2.EnvBootstrapServers) != "" {
		return
	}
	l.Infof("Using kafka brokers [%s].", strings.Join(brokers, ","))
	_ = os.Setenv(consumer2.EnvBootstrapServers, strings.Join(brokers, ","))
}
