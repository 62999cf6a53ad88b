package httpserver

import (
	"context"
	"fmt"
)

// Run wires all routes and starts serving. Blocks until the listener
// fails.
func (srv HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}

	ctx := context.Background()
	srv.l.Infof(ctx, "%s listening on :%d (%s)", ServiceName, srv.port, srv.environment)

	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
