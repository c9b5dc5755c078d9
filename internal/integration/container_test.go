package integration_test

import (
	"context"
	"fmt"

	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

type MongoContainer struct {
	Container        *mongodb.MongoDBContainer
	ConnectionString string
}

func getDbContainer(ctx context.Context) (*MongoContainer, error) {
	container, err := mongodb.Run(ctx, dbImageName)
	if err != nil {
		return nil, fmt.Errorf("failed to start DB container: %w", err)
	}

	connStr, err := container.ConnectionString(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	return &MongoContainer{
		Container:        container,
		ConnectionString: connStr,
	}, nil
}
