package backend

import (
	"bytes"
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap"

	"gnapi/internal/config"
	"gnapi/internal/logger"
)

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), &config.AppConfig{DBDriver: "sqlite"}, zap.NewNop())

	assert.ErrorContains(t, err, `unknown DB_DRIVER "sqlite"`)
}

func TestOpen_MongoRequiresURI(t *testing.T) {
	_, err := Open(context.Background(), &config.AppConfig{DBDriver: config.DriverMongo}, zap.NewNop())

	assert.ErrorContains(t, err, "connect mongo")
}

func TestOpen_PostgresRequiresHost(t *testing.T) {
	_, err := Open(context.Background(), &config.AppConfig{DBDriver: config.DriverPostgres}, zap.NewNop())

	assert.ErrorContains(t, err, "connect postgres")
}

func TestPostgresBackend_Lifecycle(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	var buf bytes.Buffer
	b := newPostgres(db, logger.New(&buf, "info", nil), "db.internal")

	assert.Equal(t, config.DriverPostgres, b.Driver)
	assert.NotNil(t, b.Team)
	assert.NotNil(t, b.Projects)
	assert.NotNil(t, b.News)
	assert.NotNil(t, b.Leads)

	mock.ExpectPing()
	assert.NoError(t, b.Pinger.PingContext(context.Background()))

	mock.ExpectQuery("SELECT to_regclass").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	require.NoError(t, b.Migrate(context.Background()))
	assert.Contains(t, buf.String(), `"db_host":"db.internal"`)

	mock.ExpectClose()
	require.NoError(t, b.Close(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMongoBackend_Migrate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("creates indexes", func(mt *mtest.T) {
		var buf bytes.Buffer
		b := newMongo(mt.Client, mt.DB.Name(), logger.New(&buf, "info", nil))
		for i := 0; i < 4; i++ {
			mt.AddMockResponses(mtest.CreateSuccessResponse())
		}

		require.NoError(mt, b.Migrate(context.Background()))
		assert.Equal(mt, config.DriverMongo, b.Driver)
		assert.Contains(mt, buf.String(), "db_migration_success")
	})

	mt.Run("logs failure", func(mt *mtest.T) {
		var buf bytes.Buffer
		b := newMongo(mt.Client, mt.DB.Name(), logger.New(&buf, "info", nil))
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 13, Name: "Unauthorized", Message: "not authorized"}))

		assert.Error(mt, b.Migrate(context.Background()))
		assert.Contains(mt, buf.String(), "db_migration_failed")
	})
}
