package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/postkeeper/internal/client/sync"
)

// runWatch опрашивает сервер и отправляет очередь при каждом
// восстановлении связи, пока не отменен ctx
func (c *Cli) runWatch(ctx context.Context) error {
	if c.prober == nil {
		return fmt.Errorf("offline mode is forced, unset --offline to watch")
	}

	c.io.Println("Watching server connectivity. Press Ctrl+C to stop.")

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.prober.Run(ctx)
	}()

	sync.Watch(ctx, c.processor, c.monitor, c.logger)
	<-done

	c.io.Println("Stopped.")
	return nil
}
