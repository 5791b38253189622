package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ryotarai/ec2fleet/httpapi"
	"github.com/ryotarai/ec2fleet/status"
)

type WatchCommand struct {
	*Meta
}

func (c *WatchCommand) Help() string {
	return "Usage: ec2fleet watch -config-path PATH"
}

func (c *WatchCommand) Run(args []string) int {
	flags := c.flagSet("watch")
	configPath := flags.String("config-path", "", "config path")
	if !c.parse(flags, args) {
		return 1
	}

	cc, ok := c.loadConfig(*configPath)
	if !ok {
		return 1
	}
	c.Ui.Info(fmt.Sprintf("Loaded config: %+v", cc))

	var store status.Store = status.NewMemoryStore()
	if cc.RedisURL != "" {
		rs, err := status.NewRedisStore(cc.RedisURL, cc.RedisKeyPrefix)
		if err != nil {
			c.Ui.Error(fmt.Sprint(err))
			return 1
		}
		defer rs.Close()
		store = rs
	}

	if cc.HTTPAddr != "" {
		server := httpapi.NewServer(store)
		go func() {
			c.Ui.Info(fmt.Sprintf("Listening on %s", cc.HTTPAddr))
			if err := server.Run(cc.HTTPAddr); err != nil {
				c.Logger.WithError(err).Error("HTTP server stopped")
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	updater := status.NewUpdater(cc.Clouds, c.registry(), store)
	updater.Logger = c.Logger
	if err := updater.Start(ctx, cc.PollDuration()); err != nil && err != context.Canceled {
		c.Ui.Error(fmt.Sprint(err))
		return 1
	}
	return 0
}

func (c *WatchCommand) Synopsis() string {
	return "Poll fleet states and serve them over HTTP"
}
