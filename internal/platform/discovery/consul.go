package discovery

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/consul/api"
)

// Agent is the slice of the Consul agent API we use.
type Agent interface {
	ServiceRegister(reg *api.AgentServiceRegistration) error
	ServiceDeregister(serviceID string) error
}

// Registrar registers this API instance with Consul.
type Registrar struct {
	agent       Agent
	serviceName string
	serviceID   string
	host        string
	port        int
}

// NewConsulRegistrar connects to the Consul agent at addr.
func NewConsulRegistrar(addr, serviceName, port string) (*Registrar, error) {
	cfg := api.DefaultConfig()
	cfg.Address = addr
	client, err := api.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create consul client: %w", err)
	}
	hostname, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("failed to get hostname: %w", err)
	}
	return NewRegistrar(client.Agent(), serviceName, hostname, port)
}

func NewRegistrar(agent Agent, serviceName, host, port string) (*Registrar, error) {
	p, err := strconv.Atoi(port)
	if err != nil {
		return nil, fmt.Errorf("invalid service port %q: %w", port, err)
	}
	return &Registrar{
		agent:       agent,
		serviceName: serviceName,
		serviceID:   fmt.Sprintf("%s-%s-%d", serviceName, host, p),
		host:        host,
		port:        p,
	}, nil
}

// Register announces the service with an HTTP check against /health.
func (r *Registrar) Register() error {
	return r.agent.ServiceRegister(&api.AgentServiceRegistration{
		ID:      r.serviceID,
		Name:    r.serviceName,
		Address: r.host,
		Port:    r.port,
		Tags:    []string{"http", "api"},
		Check: &api.AgentServiceCheck{
			HTTP:                           fmt.Sprintf("http://%s:%d/health", r.host, r.port),
			Interval:                       "10s",
			Timeout:                        "3s",
			DeregisterCriticalServiceAfter: "1m",
		},
	})
}

func (r *Registrar) Deregister() error {
	return r.agent.ServiceDeregister(r.serviceID)
}
