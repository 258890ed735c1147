package payslip

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	data := Data{
		EmployeeName: "Jane Doe",
		EmployeeCode: "EMP-001",
		Email:        "jane@example.com",
		Department:   "Engineering",
		PayDate:      time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
		BasicSalary:  decimal.NewFromInt(5000),
		Allowances:   decimal.NewFromInt(500),
		Deductions:   decimal.NewFromInt(200),
		NetSalary:    decimal.NewFromInt(5300),
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, data))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Greater(t, buf.Len(), 500)
}

func TestFilename(t *testing.T) {
	d := Data{EmployeeCode: "EMP-001", PayDate: time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "payslip-EMP-001-2024-05.pdf", d.Filename())
}
