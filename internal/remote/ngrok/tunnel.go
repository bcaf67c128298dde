package ngrok

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	ngrok "golang.ngrok.com/ngrok"
	"golang.ngrok.com/ngrok/config"
)

// Options configures the public tunnel in front of the local rating server.
type Options struct {
	LocalAddr     string
	Authtoken     string
	Region        string
	Domain        string
	BasicAuthUser string
	BasicAuthPass string
}

func (o Options) endpoint() config.Tunnel {
	opts := make([]config.HTTPEndpointOption, 0, 2)
	if o.Domain != "" {
		opts = append(opts, config.WithDomain(o.Domain))
	}
	if o.BasicAuthUser != "" && o.BasicAuthPass != "" {
		opts = append(opts, config.WithBasicAuth(o.BasicAuthUser, o.BasicAuthPass))
	}
	return config.HTTPEndpoint(opts...)
}

func (o Options) connect() []ngrok.ConnectOption {
	opts := make([]ngrok.ConnectOption, 0, 2)
	switch {
	case o.Authtoken != "":
		opts = append(opts, ngrok.WithAuthtoken(o.Authtoken))
	case os.Getenv("NGROK_AUTHTOKEN") != "":
		opts = append(opts, ngrok.WithAuthtokenFromEnv())
	}
	if o.Region != "" {
		opts = append(opts, ngrok.WithRegion(o.Region))
	}
	return opts
}

// Tunnel forwards a public ngrok endpoint to the local rating server.
type Tunnel struct {
	forwarder ngrok.Forwarder
}

func Start(ctx context.Context, opts Options) (*Tunnel, error) {
	backend, err := url.Parse(opts.LocalAddr)
	if err != nil || backend.Host == "" {
		return nil, fmt.Errorf("invalid tunnel backend address %q", opts.LocalAddr)
	}

	fwd, err := ngrok.ListenAndForward(ctx, backend, opts.endpoint(), opts.connect()...)
	if err != nil {
		return nil, fmt.Errorf("error starting ngrok tunnel: %w", err)
	}

	return &Tunnel{forwarder: fwd}, nil
}

// URL returns the public address of the tunnel, or "" when it is not up.
func (t *Tunnel) URL() string {
	if t == nil || t.forwarder == nil {
		return ""
	}
	return t.forwarder.URL()
}

func (t *Tunnel) Close() error {
	if t == nil || t.forwarder == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return t.forwarder.CloseWithContext(ctx)
}
