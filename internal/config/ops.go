package config

type Ops struct {
	ListenAddress string `env:"OPS_LISTEN_ADDRESS" envDefault:":9090"`
}
