package employee

import (
	"testing"

	"github.com/shaik-naseema17/employee-management-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreateEmployeeRequest {
	return CreateEmployeeRequest{
		Name:          "Jane Doe",
		Email:         "Jane@Example.com",
		EmployeeCode:  "EMP-001",
		DOB:           "1990-04-12",
		Gender:        "Female",
		MaritalStatus: "single",
		Designation:   "Engineer",
		DepartmentID:  "123e4567-e89b-12d3-a456-426614174000",
		Salary:        decimal.NewFromInt(5000),
		Password:      "secret1",
	}
}

func TestCreateEmployeeRequest_Validate(t *testing.T) {
	t.Run("valid request is normalized", func(t *testing.T) {
		req := validCreateRequest()
		require.NoError(t, req.Validate())
		assert.Equal(t, "jane@example.com", req.Email)
		assert.Equal(t, "female", req.Gender)
		assert.Equal(t, "employee", req.Role)
		require.NotNil(t, req.ParsedDOB())
		assert.Equal(t, 1990, req.ParsedDOB().Year())
	})

	t.Run("collects every field error", func(t *testing.T) {
		req := CreateEmployeeRequest{
			Email:        "nope",
			DOB:          "12/04/1990",
			Gender:       "robot",
			DepartmentID: "64b7f0c2a1b2c3d4e5f60718",
			Salary:       decimal.NewFromInt(-1),
			Role:         "owner",
		}
		var verrs validator.ValidationErrors
		require.ErrorAs(t, req.Validate(), &verrs)

		m := verrs.ToMap()
		for _, field := range []string{"name", "email", "employeeId", "dob", "gender", "department", "salary", "password", "role"} {
			assert.Contains(t, m, field)
		}
	})

	t.Run("dob is optional", func(t *testing.T) {
		req := validCreateRequest()
		req.DOB = ""
		require.NoError(t, req.Validate())
		assert.Nil(t, req.ParsedDOB())
	})
}

func TestUpdateEmployeeRequest_Validate(t *testing.T) {
	name := "New Name"
	status := "Married"
	req := UpdateEmployeeRequest{ID: "123e4567-e89b-12d3-a456-426614174000", Name: &name, MaritalStatus: &status}
	require.NoError(t, req.Validate())
	assert.Equal(t, "married", *req.MaritalStatus)

	empty := " "
	dept := "bad"
	negative := decimal.NewFromInt(-10)
	req = UpdateEmployeeRequest{ID: "bad", Name: &empty, DepartmentID: &dept, Salary: &negative}
	var verrs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &verrs)
	assert.Len(t, verrs, 4)
}
