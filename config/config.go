package config

import (
	"atlas-sorter/slot"
	"atlas-sorter/sorting"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	KeyRestPort          = "rest.port"
	KeyDbDriver          = "db.driver"
	KeyDbDsn             = "db.dsn"
	KeyKafkaBrokers      = "kafka.brokers"
	KeyKafkaGroup        = "kafka.group"
	KeyDefaultMethod     = "sort.default_method"
	KeyDefaultOrder      = "sort.default_order"
	KeySortableSlotKinds = "sort.sortable_slot_kinds"
	KeyCatalogPath       = "catalog.path"
)

var ErrNoSortableKinds = errors.New("at least one sortable slot kind is required")

type Model struct {
	restPort      string
	dbDriver      string
	dbDsn         string
	brokers       []string
	groupId       string
	defaults      sorting.Preference
	sortableKinds []slot.Kind
	catalogPath   string
}

func (m Model) RestPort() string {
	return m.restPort
}

func (m Model) DbDriver() string {
	return m.dbDriver
}

func (m Model) DbDsn() string {
	return m.dbDsn
}

func (m Model) Brokers() []string {
	return m.brokers
}

func (m Model) GroupId() string {
	return m.groupId
}

// DefaultPreference is applied to players who never chose one, and on reset.
func (m Model) DefaultPreference() sorting.Preference {
	return m.defaults
}

func (m Model) SortableKinds() []slot.Kind {
	return m.sortableKinds
}

func (m Model) Sortable() slot.SortablePredicate {
	return slot.KindPredicate(m.sortableKinds...)
}

func (m Model) CatalogPath() string {
	return m.catalogPath
}

// SetDefaults registers defaults and environment bindings. Keys map to upper snake case variables
// (rest.port is REST_PORT), except the broker list which follows the platform's BOOTSTRAP_SERVERS.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyRestPort, "8080")
	v.SetDefault(KeyDbDriver, "postgres")
	v.SetDefault(KeyDbDsn, "host=localhost user=postgres password=postgres dbname=atlas-sorter port=5432 sslmode=disable")
	v.SetDefault(KeyKafkaBrokers, []string{"localhost:9092"})
	v.SetDefault(KeyKafkaGroup, "Sort Service")
	v.SetDefault(KeyDefaultMethod, sorting.DefaultPreference.Method().String())
	v.SetDefault(KeyDefaultOrder, sorting.DefaultPreference.Order().String())
	v.SetDefault(KeySortableSlotKinds, []string{string(slot.KindGeneric), string(slot.KindHandler)})
	v.SetDefault(KeyCatalogPath, "")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv(KeyKafkaBrokers, "BOOTSTRAP_SERVERS")
}

// Load reads the optional config file and validates the result.
func Load(v *viper.Viper, configFile string) (Model, error) {
	SetDefaults(v)
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Model{}, fmt.Errorf("reading config file [%s]: %w", configFile, err)
		}
	}

	p, err := sorting.ParsePreference(v.GetString(KeyDefaultMethod), v.GetString(KeyDefaultOrder))
	if err != nil {
		return Model{}, err
	}

	var kinds []slot.Kind
	for _, s := range list(v, KeySortableSlotKinds) {
		k, err := slot.ParseKind(s)
		if err != nil {
			return Model{}, err
		}
		kinds = append(kinds, k)
	}
	if len(kinds) == 0 {
		return Model{}, ErrNoSortableKinds
	}

	return Model{
		restPort:      v.GetString(KeyRestPort),
		dbDriver:      v.GetString(KeyDbDriver),
		dbDsn:         v.GetString(KeyDbDsn),
		brokers:       list(v, KeyKafkaBrokers),
		groupId:       v.GetString(KeyKafkaGroup),
		defaults:      p,
		sortableKinds: kinds,
		catalogPath:   v.GetString(KeyCatalogPath),
	}, nil
}

// list accepts both a config file list and a comma separated environment value.
func list(v *viper.Viper, key string) []string {
	var res []string
	for _, e := range v.GetStringSlice(key) {
		for _, s := range strings.Split(e, ",") {
			if s = strings.TrimSpace(s); s != "" {
				res = append(res, s)
			}
		}
	}
	return res
}
