package reorder_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"inventory-manager/core/database"
	engine "inventory-manager/core/reorder"
	"inventory-manager/core/snapshot"
	"inventory-manager/core/storage/mocks"
	"inventory-manager/feature/inventory"
	"inventory-manager/feature/inventory/models"
	"inventory-manager/feature/reorder"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const bucket = "inventory"

func ptr[T any](v T) *T { return &v }

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	for _, p := range []*models.Product{
		// rop = 2*7 + 1.65*1*sqrt(7) = 18.37, days = 6
		{SKU: "R1", Name: "Rope", Quantity: 12, ReorderLevel: 5, AvgDailyDemand: ptr(2.0), SigmaDemand: ptr(1.0), LeadTimeDays: ptr(7.0)},
		// rop = 1*7 (default lead, no deviation), days = 3
		{SKU: "R2", Name: "Rivets", Quantity: 3, ReorderLevel: 1, AvgDailyDemand: ptr(1.0)},
		// no demand data: threshold fallback, 4 <= 5
		{SKU: "R3", Name: "Rake", Quantity: 4, ReorderLevel: 5},
		// well stocked
		{SKU: "R4", Name: "Ruler", Quantity: 100, ReorderLevel: 5, AvgDailyDemand: ptr(1.0)},
	} {
		p.UnitPrice = decimal.NewFromInt(1)
		require.NoError(t, db.Create(p).Error)
	}
	return db
}

func newService(t *testing.T, db *gorm.DB, client *mocks.Client) *reorder.Service {
	t.Helper()
	products := inventory.NewService(db, snapshot.New(time.Minute), zap.NewNop())
	return reorder.NewService(products, db, client, bucket, engine.DefaultConfig(), zap.NewNop())
}

func entrySKUs(entries []reorder.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.SKU
	}
	return out
}

func TestReport(t *testing.T) {
	svc := newService(t, setupDB(t), new(mocks.Client))

	report, err := svc.Report(context.Background(), reorder.Overrides{})
	require.NoError(t, err)

	assert.Equal(t, engine.DefaultServiceLevel, report.ServiceLevel)
	assert.Equal(t, engine.DefaultLeadTime, report.DefaultLeadTime)
	require.Equal(t, []string{"R2", "R1", "R3"}, entrySKUs(report.Candidates))

	r2, r1, r3 := report.Candidates[0], report.Candidates[1], report.Candidates[2]
	assert.Equal(t, engine.ModeDemand, r2.Mode)
	assert.Equal(t, 7.0, r2.ReorderPoint)
	assert.Equal(t, 3.0, *r2.DaysToStockout)

	assert.Equal(t, 4.37, r1.SafetyStock)
	assert.Equal(t, 18.37, r1.ReorderPoint)
	assert.Equal(t, 6.0, *r1.DaysToStockout)

	assert.Equal(t, engine.ModeThreshold, r3.Mode)
	assert.Nil(t, r3.DaysToStockout)
}

func TestReport_Overrides(t *testing.T) {
	svc := newService(t, setupDB(t), new(mocks.Client))
	ctx := context.Background()

	// R2 has no lead time of its own: with 2 days its reorder point drops to 2.
	report, err := svc.Report(ctx, reorder.Overrides{LeadTime: ptr(2.0)})
	require.NoError(t, err)
	assert.Equal(t, []string{"R1", "R3"}, entrySKUs(report.Candidates))

	report, err = svc.Report(ctx, reorder.Overrides{ServiceLevel: ptr(0.0)})
	require.NoError(t, err)
	assert.Equal(t, 0.0, report.Candidates[1].SafetyStock)
	assert.Equal(t, 14.0, report.Candidates[1].ReorderPoint)

	for _, o := range []reorder.Overrides{
		{ServiceLevel: ptr(-1.0)},
		{LeadTime: ptr(0.0)},
	} {
		_, err := svc.Report(ctx, o)
		var verr *models.ValidationError
		assert.ErrorAs(t, err, &verr)
	}
}

func TestSuggestions(t *testing.T) {
	svc := newService(t, setupDB(t), new(mocks.Client))

	out, err := svc.Suggestions(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 4)

	rake := out[2]
	assert.Equal(t, "R3", rake.SKU)
	assert.True(t, rake.Estimated)
	assert.Equal(t, 1.09, rake.SafetyStock)
	assert.Equal(t, 8.09, rake.ReorderPoint)
	assert.True(t, rake.NeedsReorder)

	ruler := out[3]
	assert.False(t, ruler.Estimated)
	assert.False(t, ruler.NeedsReorder)
}

func TestRecordAlerts(t *testing.T) {
	svc := newService(t, setupDB(t), new(mocks.Client))
	ctx := context.Background()

	stored, err := svc.RecordAlerts(ctx, reorder.Overrides{})
	require.NoError(t, err)
	require.Len(t, stored, 3)
	for _, a := range stored {
		assert.NotZero(t, a.ID)
	}

	alerts, err := svc.Alerts(ctx, 0)
	require.NoError(t, err)
	require.Len(t, alerts, 3)
	require.NotNil(t, alerts[0].Product)
	assert.Equal(t, "R3", alerts[0].Product.SKU)
	assert.Nil(t, alerts[0].DaysToStockout)
	assert.Equal(t, string(engine.ModeThreshold), alerts[0].Mode)

	limited, err := svc.Alerts(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestExport(t *testing.T) {
	client := new(mocks.Client)
	svc := newService(t, setupDB(t), client)

	var uploaded reorder.Report
	isReportKey := mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, reorder.ExportPrefix) && strings.HasSuffix(key, ".json")
	})

	client.On("BucketExists", mock.Anything, bucket).Return(false, nil)
	client.On("MakeBucket", mock.Anything, bucket, mock.Anything).Return(nil)
	client.On("PutObject", mock.Anything, bucket, isReportKey, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			body, err := io.ReadAll(args.Get(3).(io.Reader))
			require.NoError(t, err)
			assert.Equal(t, int64(len(body)), args.Get(4).(int64))
			assert.Equal(t, "application/json", args.Get(5).(minio.PutObjectOptions).ContentType)
			require.NoError(t, json.Unmarshal(body, &uploaded))
		}).
		Return(minio.UploadInfo{}, nil)

	res, err := svc.Export(context.Background(), reorder.Overrides{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.Key, reorder.ExportPrefix))
	assert.Equal(t, 3, res.Candidates)
	assert.Equal(t, []string{"R2", "R1", "R3"}, entrySKUs(uploaded.Candidates))
	assert.Nil(t, uploaded.Candidates[2].DaysToStockout)

	client.AssertExpectations(t)
}

func TestExport_UploadFails(t *testing.T) {
	client := new(mocks.Client)
	svc := newService(t, setupDB(t), client)

	client.On("BucketExists", mock.Anything, bucket).Return(true, nil)
	client.On("PutObject", mock.Anything, bucket, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("access denied"))

	_, err := svc.Export(context.Background(), reorder.Overrides{})
	assert.ErrorContains(t, err, "access denied")
	client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
}

func TestExports(t *testing.T) {
	client := new(mocks.Client)
	svc := newService(t, setupDB(t), client)

	listing := mocks.Listing(
		minio.ObjectInfo{Key: reorder.ExportPrefix + "20260101T000000.000Z.json", Size: 10},
		minio.ObjectInfo{Key: reorder.ExportPrefix + "notes.txt", Size: 3},
		minio.ObjectInfo{Key: reorder.ExportPrefix + "20260301T000000.000Z.json", Size: 12},
	)
	client.On("ListObjects", mock.Anything, bucket, minio.ListObjectsOptions{Prefix: reorder.ExportPrefix, Recursive: true}).
		Return(listing)

	exports, err := svc.Exports(context.Background())
	require.NoError(t, err)
	require.Len(t, exports, 2)
	assert.Equal(t, "20260301T000000.000Z.json", exports[0].Name)
	assert.Equal(t, int64(12), exports[0].Size)
}

func TestOpenAndDeleteExport(t *testing.T) {
	client := new(mocks.Client)
	svc := newService(t, setupDB(t), client)
	ctx := context.Background()

	key := reorder.ExportPrefix + "a.json"
	client.On("GetObject", mock.Anything, bucket, key, mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(`{"candidates":[]}`))), nil)
	client.On("GetObject", mock.Anything, bucket, reorder.ExportPrefix+"missing.json", mock.Anything).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})
	client.On("RemoveObject", mock.Anything, bucket, key, mock.Anything).Return(nil)

	data, err := svc.OpenExport(ctx, "a.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"candidates":[]}`, string(data))

	_, err = svc.OpenExport(ctx, "missing.json")
	assert.ErrorIs(t, err, models.ErrNotFound)

	for _, bad := range []string{"", "../secrets.json", "report.txt"} {
		_, err = svc.OpenExport(ctx, bad)
		var verr *models.ValidationError
		assert.ErrorAs(t, err, &verr, bad)
	}

	assert.NoError(t, svc.DeleteExport(ctx, "a.json"))
	client.AssertExpectations(t)
}

func TestHandlers(t *testing.T) {
	db := setupDB(t)
	client := new(mocks.Client)
	products := inventory.NewService(db, snapshot.New(time.Minute), zap.NewNop())
	feature := reorder.NewFeature(products, db, client, bucket, engine.DefaultConfig(), zap.NewNop())
	assert.Equal(t, "reorder", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/reorder?lead_time=2", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var report reorder.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, []string{"R1", "R3"}, entrySKUs(report.Candidates))

	resp, err = app.Test(httptest.NewRequest("GET", "/reorder?z=high", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/reorder/suggestions", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/reorder/alerts", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/reorder/alerts?limit=2", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var alerts []models.ReorderAlert
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&alerts))
	assert.Len(t, alerts, 2)

	client.On("GetObject", mock.Anything, bucket, reorder.ExportPrefix+"gone.json", mock.Anything).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})
	resp, err = app.Test(httptest.NewRequest("GET", "/reorder/exports/gone.json", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestStore_UsesGivenReport(t *testing.T) {
	client := new(mocks.Client)
	svc := newService(t, setupDB(t), client)
	ctx := context.Background()

	report, err := svc.Report(ctx, reorder.Overrides{})
	require.NoError(t, err)

	var keys []string
	var uploaded reorder.Report
	client.On("BucketExists", mock.Anything, bucket).Return(true, nil)
	client.On("PutObject", mock.Anything, bucket, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			keys = append(keys, args.Get(2).(string))
			body, err := io.ReadAll(args.Get(3).(io.Reader))
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &uploaded))
		}).
		Return(minio.UploadInfo{}, nil)

	first, err := svc.Store(ctx, report)
	require.NoError(t, err)
	second, err := svc.Store(ctx, report)
	require.NoError(t, err)

	assert.NotEqual(t, first.Key, second.Key)
	assert.Equal(t, []string{first.Key, second.Key}, keys)
	prefix := reorder.ExportPrefix + report.GeneratedAt.UTC().Format("20060102T150405.000Z")
	assert.True(t, strings.HasPrefix(first.Key, prefix), first.Key)
	assert.True(t, report.GeneratedAt.Equal(uploaded.GeneratedAt))
	assert.Equal(t, entrySKUs(report.Candidates), entrySKUs(uploaded.Candidates))
}
