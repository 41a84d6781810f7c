package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the migrated DB instance, and any error encountered during setup.
// A missing container runtime is reported as an error so callers can skip.
func GetTestDB() (teardown func(context.Context, ...testcontainers.TerminateOption) error, db *DBinstanceStruct, err error) {
	defer func() {
		if r := recover(); r != nil {
			teardown, db, err = nil, nil, fmt.Errorf("container runtime unavailable: %v", r)
		}
	}()

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		Host:      dbHost,
		Port:      dbPort.Port(),
		User:      dbUser,
		Password:  dbPwd,
		DBName:    dbName,
		UseConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err = NewDBInstance(config, zap.NewNop())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	return dbContainer.Terminate, db, nil
}
