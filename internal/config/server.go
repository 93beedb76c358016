package config

type Server struct {
	ProbeListenAddress  string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
	MetricListenAddress string `env:"METRIC_LISTEN_ADDRESS" envDefault:":9090"`
}
