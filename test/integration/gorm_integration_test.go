package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"

	"parish-be/internal/entity"
	"parish-be/internal/repository/specification"
	"parish-be/internal/repository/unitofwork"
	"parish-be/pkg/database"
)

// Runs against a real postgres instance when DB_CONNECTION_STRING is set;
// skipped otherwise. The service-level behavior is covered by the sqlite
// tests in internal/service.
func TestGormConnection(t *testing.T) {
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.RequestRepository())

	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	t.Run("Check Request Repository", func(t *testing.T) {
		count, err := uow.RequestRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Request count: %d", count)
	})

	t.Run("Check Record Repository", func(t *testing.T) {
		count, err := uow.RecordRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Record count: %d", count)
	})

	t.Run("Transactional Completion Writes Atomically", func(t *testing.T) {
		ctx := context.Background()

		request := &entity.ServiceRequest{
			Id:             uuid.New(),
			Category:       entity.RequestCategorySacrament,
			ServiceType:    "Baptism",
			RequesterName:  "Integration Test " + uuid.New().String(),
			ContactInfo:    "integration@example.com",
			Details:        "Integration test request.",
			Status:         entity.RequestStatusPending,
			SubmissionDate: time.Now(),
			CreatedAt:      time.Now(),
		}

		err := uow.Begin(ctx)
		assert.NoError(t, err)

		err = uow.RequestRepository().Create(ctx, request)
		assert.NoError(t, err)

		record := &entity.SacramentRecord{
			Id:        uuid.New(),
			Name:      request.RequesterName,
			Date:      time.Now(),
			Type:      entity.SacramentTypeBaptism,
			Officiant: "Parish Priest",
			Details:   "Integration test record.",
			CreatedAt: time.Now(),
		}
		err = uow.RecordRepository().Create(ctx, record)
		assert.NoError(t, err)

		// Roll back: neither row may survive.
		err = uow.Rollback()
		assert.NoError(t, err)

		found, err := uow.RequestRepository().FindOne(ctx, specification.ByID{ID: request.Id})
		assert.NoError(t, err)
		assert.Nil(t, found)

		foundRecord, err := uow.RecordRepository().FindOne(ctx, specification.ByID{ID: record.Id})
		assert.NoError(t, err)
		assert.Nil(t, foundRecord)
	})
}
