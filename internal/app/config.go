package app

// StorageDriver выбирает реализацию хранилища.
type StorageDriver string

const (
	// StorageDriverMemory — in-memory хранилище для разработки и тестов.
	StorageDriverMemory StorageDriver = "memory"
	// StorageDriverPostgres — боевое хранилище.
	StorageDriverPostgres StorageDriver = "postgres"
)

// Config описывает настройки запуска приложения.
type Config struct {
	// APIAddr — адрес HTTP API маркетплейса.
	APIAddr string
	// MetricsAddr — адрес служебного сервера (/metrics, /healthz, /livez).
	MetricsAddr string

	StorageDriver StorageDriver
	PostgresDSN   string
	// PostgresAutoSchema применяет встроенный DDL при старте.
	PostgresAutoSchema bool
	// SeedDemoData загружает демо-справочники покупателей и товаров.
	SeedDemoData bool

	// KafkaBrokers — список брокеров через запятую; пусто = без Kafka.
	KafkaBrokers string
}

// DefaultConfig возвращает базовые настройки: memory-хранилище с
// демо-данными, API на :9090, метрики на :9091.
func DefaultConfig() Config {
	return Config{
		APIAddr:            ":9090",
		MetricsAddr:        ":9091",
		StorageDriver:      StorageDriverMemory,
		PostgresAutoSchema: true,
		SeedDemoData:       true,
	}
}
