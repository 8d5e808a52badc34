package service

import (
	"fmt"

	"expensetracker/models"

	"github.com/xuri/excelize/v2"
)

// Excel 报表的三个工作表名称
const (
	sheetWeekly  = "Weekly Expenses"
	sheetMonthly = "Monthly Expenses"
	sheetYearly  = "Yearly Expenses"
)

// BuildExcelReport 生成 Excel 报表，周/月/年各一个工作表
func BuildExcelReport(weekly, monthly, yearly []models.Expense) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// 设置表头样式
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("创建表头样式失败: %w", err)
	}

	sections := []struct {
		sheet    string
		expenses []models.Expense
	}{
		{sheetWeekly, weekly},
		{sheetMonthly, monthly},
		{sheetYearly, yearly},
	}

	f.SetSheetName("Sheet1", sheetWeekly)
	for i, section := range sections {
		if i > 0 {
			if _, err := f.NewSheet(section.sheet); err != nil {
				return nil, fmt.Errorf("创建工作表失败: %w", err)
			}
		}
		if err := writeExpenseSheet(f, section.sheet, headerStyle, section.expenses); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("生成 Excel 失败: %w", err)
	}
	return buf.Bytes(), nil
}

// writeExpenseSheet 写入单个工作表：表头一行 + 每条记录一行
func writeExpenseSheet(f *excelize.File, sheet string, headerStyle int, expenses []models.Expense) error {
	headers := []string{"ID", "Description", "Amount", "Currency", "Category", "Date"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("写入表头失败: %w", err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("设置表头样式失败: %w", err)
		}
	}

	for row, expense := range expenses {
		values := []interface{}{
			expense.ID,
			expense.Description,
			expense.Amount.InexactFloat64(),
			expense.Currency,
			expense.Category,
			expense.Date.Format("2006-01-02 15:04:05"),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("写入数据失败: %w", err)
			}
		}
	}

	// 设置列宽
	f.SetColWidth(sheet, "A", "A", 38)
	f.SetColWidth(sheet, "B", "B", 30)
	f.SetColWidth(sheet, "C", "C", 12)
	f.SetColWidth(sheet, "D", "D", 10)
	f.SetColWidth(sheet, "E", "E", 15)
	f.SetColWidth(sheet, "F", "F", 20)

	return nil
}
