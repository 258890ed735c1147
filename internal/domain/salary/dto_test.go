package salary

import (
	"testing"

	"github.com/shaik-naseema17/employee-management-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSalaryRequest_ToSalary(t *testing.T) {
	req := CreateSalaryRequest{
		EmployeeID:  "123e4567-e89b-12d3-a456-426614174000",
		BasicSalary: decimal.RequireFromString("5000.50"),
		Allowances:  decimal.RequireFromString("250.25"),
		Deductions:  decimal.RequireFromString("100.75"),
		PayDate:     "2024-05-31",
	}
	require.NoError(t, req.Validate())

	s := req.ToSalary()
	assert.True(t, decimal.RequireFromString("5150.00").Equal(s.NetSalary), s.NetSalary.String())
	assert.Equal(t, "2024-05-31", s.PayDate.Format(validator.DateLayout))
}

func TestCreateSalaryRequest_Validate(t *testing.T) {
	req := CreateSalaryRequest{
		EmployeeID:  "x",
		BasicSalary: decimal.Zero,
		Allowances:  decimal.NewFromInt(-1),
		Deductions:  decimal.NewFromInt(-1),
		PayDate:     "2024-13-01",
	}
	var verrs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &verrs)
	assert.Len(t, verrs, 5)
}
