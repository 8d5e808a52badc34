package api

import (
	"bytes"
	"net/http/httptest"
	"testing"
	"time"

	"expensetracker/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReportHandler_ExportExcel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2024, 6, 12, 15, 30, 0, 0, time.UTC)
	svc, mock := newTestService(t, fixedClock{t: now})

	// 周/月/年各查询一次
	for i := 0; i < 3; i++ {
		mock.ExpectQuery("SELECT .* FROM `expenses`").
			WillReturnRows(expenseRows(
				models.Expense{ID: "e1", Description: "Coffee", Amount: decimal.RequireFromString("3.50"), Currency: "USD", Category: "Food", Date: now},
			))
	}

	router := gin.New()
	router.GET("/expenses/report/excel", NewReportHandler(svc).ExportExcel)

	req := httptest.NewRequest("GET", "/expenses/report/excel", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "expense-report.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	assert.Len(t, f.GetSheetList(), 3)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReportHandler_ExportPDF(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2024, 6, 12, 15, 30, 0, 0, time.UTC)
	svc, mock := newTestService(t, fixedClock{t: now})

	for i := 0; i < 3; i++ {
		mock.ExpectQuery("SELECT .* FROM `expenses`").
			WillReturnRows(expenseRows(
				models.Expense{ID: "e1", Description: "Coffee", Amount: decimal.RequireFromString("3.50"), Currency: "USD", Category: "Food", Date: now},
			))
	}

	router := gin.New()
	router.GET("/expenses/report/pdf", NewReportHandler(svc).ExportPDF)

	req := httptest.NewRequest("GET", "/expenses/report/pdf", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "expense-report.pdf")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))

	require.NoError(t, mock.ExpectationsWereMet())
}
