package service

import (
	"bytes"
	"fmt"

	"expensetracker/models"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// BuildPDFReport 生成 PDF 报表，周/月/年各一个章节，每个章节末尾带总计行
func BuildPDFReport(weekly, monthly, yearly []models.Expense) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// 标题
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Expense Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	sections := []struct {
		title    string
		expenses []models.Expense
	}{
		{"Weekly Expenses", weekly},
		{"Monthly Expenses", monthly},
		{"Yearly Expenses", yearly},
	}

	for _, section := range sections {
		addExpenseSection(pdf, section.title, section.expenses)
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("生成 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

// addExpenseSection 写入单个章节：章节标题、表头、数据行、总计行
func addExpenseSection(pdf *gofpdf.Fpdf, title string, expenses []models.Expense) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	headers := []string{"Description", "Amount", "Currency", "Category", "Date"}
	widths := []float64{60, 28, 24, 32, 46}

	// 表头
	pdf.SetFont("Helvetica", "B", 10)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	// 数据行
	pdf.SetFont("Helvetica", "", 10)
	total := decimal.Zero
	for _, expense := range expenses {
		total = total.Add(expense.Amount)
		pdf.CellFormat(widths[0], 8, expense.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 8, expense.Amount.String(), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 8, expense.Currency, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 8, expense.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[4], 8, expense.Date.Format("2006-01-02 15:04:05"), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	// 总计行
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(widths[0], 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[1]+widths[2]+widths[3]+widths[4], 8, total.String(), "1", 1, "L", false, 0, "")
}
