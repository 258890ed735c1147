package employee

import (
	"context"
	"errors"
	"io"
	"maps"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/department"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/employee"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/user"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryUserRepository struct {
	users map[string]user.User
}

func (r *memoryUserRepository) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, pgx.ErrNoRows
}

func (r *memoryUserRepository) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (r *memoryUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return err == nil, nil
}

func (r *memoryUserRepository) Create(_ context.Context, newUser user.User) (user.User, error) {
	newUser.ID = uuid.NewString()
	r.users[newUser.ID] = newUser
	return newUser, nil
}

func (r *memoryUserRepository) UpdateName(_ context.Context, id, name string) error {
	u, ok := r.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	u.Name = name
	r.users[id] = u
	return nil
}

func (r *memoryUserRepository) UpdatePassword(_ context.Context, id, passwordHash string) error {
	u, ok := r.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	u.PasswordHash = passwordHash
	r.users[id] = u
	return nil
}

func (r *memoryUserRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.users, id)
	return nil
}

type memoryEmployeeRepository struct {
	employees   map[string]employee.Employee
	users       *memoryUserRepository
	departments *memoryDepartmentRepository
	createErr   error
}

func (r *memoryEmployeeRepository) Create(_ context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	if r.createErr != nil {
		return employee.Employee{}, r.createErr
	}
	newEmployee.ID = uuid.NewString()
	r.employees[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

func (r *memoryEmployeeRepository) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, pgx.ErrNoRows
	}
	return emp, nil
}

func (r *memoryEmployeeRepository) GetByUserID(_ context.Context, userID string) (employee.Employee, error) {
	for _, emp := range r.employees {
		if emp.UserID == userID {
			return emp, nil
		}
	}
	return employee.Employee{}, pgx.ErrNoRows
}

// details joins like the SQL repository does: employees without a user are
// invisible.
func (r *memoryEmployeeRepository) details(emp employee.Employee) (employee.EmployeeWithDetails, error) {
	u, ok := r.users.users[emp.UserID]
	if !ok {
		return employee.EmployeeWithDetails{}, pgx.ErrNoRows
	}
	return employee.EmployeeWithDetails{
		Employee:       emp,
		User:           u,
		DepartmentName: r.departments.names[emp.DepartmentID],
	}, nil
}

func (r *memoryEmployeeRepository) GetDetailByID(ctx context.Context, id string) (employee.EmployeeWithDetails, error) {
	emp, err := r.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeWithDetails{}, err
	}
	return r.details(emp)
}

func (r *memoryEmployeeRepository) GetDetailByUserID(ctx context.Context, userID string) (employee.EmployeeWithDetails, error) {
	emp, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return employee.EmployeeWithDetails{}, err
	}
	return r.details(emp)
}

func (r *memoryEmployeeRepository) List(_ context.Context, departmentID *string) ([]employee.EmployeeWithDetails, error) {
	list := make([]employee.EmployeeWithDetails, 0, len(r.employees))
	for _, emp := range r.employees {
		if departmentID != nil && emp.DepartmentID != *departmentID {
			continue
		}
		if d, err := r.details(emp); err == nil {
			list = append(list, d)
		}
	}
	return list, nil
}

func (r *memoryEmployeeRepository) Update(_ context.Context, req employee.UpdateEmployeeRequest) error {
	emp, ok := r.employees[req.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	if req.Designation != nil {
		emp.Designation = *req.Designation
	}
	if req.DepartmentID != nil {
		emp.DepartmentID = *req.DepartmentID
	}
	if req.Salary != nil {
		emp.Salary = *req.Salary
	}
	r.employees[req.ID] = emp
	return nil
}

func (r *memoryEmployeeRepository) DeleteOrphans(_ context.Context) ([]string, error) {
	var removed []string
	for id, emp := range r.employees {
		if _, ok := r.users.users[emp.UserID]; !ok {
			delete(r.employees, id)
			removed = append(removed, id)
		}
	}
	return removed, nil
}

func (r *memoryEmployeeRepository) ValidateUserReference(_ context.Context) error {
	return nil
}

type memoryDepartmentRepository struct {
	department.DepartmentRepository
	names map[string]string
}

func (r *memoryDepartmentRepository) ExistsByID(_ context.Context, id string) (bool, error) {
	_, ok := r.names[id]
	return ok, nil
}

type fakeFileService struct {
	uploaded []string
	deleted  []string
}

func (f *fakeFileService) UploadProfileImage(_ context.Context, file io.Reader, filename string) (string, error) {
	if _, err := io.ReadAll(file); err != nil {
		return "", err
	}
	key := "profile-images/" + strings.TrimSuffix(filename, ".png") + ".png"
	f.uploaded = append(f.uploaded, key)
	return key, nil
}

func (f *fakeFileService) DeleteFile(_ context.Context, path string) error {
	if path != "" {
		f.deleted = append(f.deleted, path)
	}
	return nil
}

func (f *fakeFileService) PublicURL(_ context.Context, path string) string {
	if path == "" {
		return ""
	}
	return "http://files.test/" + path
}

type fixture struct {
	svc          *EmployeeServiceImpl
	users        *memoryUserRepository
	employees    *memoryEmployeeRepository
	files        *fakeFileService
	departmentID string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		users:        &memoryUserRepository{users: map[string]user.User{}},
		files:        &fakeFileService{},
		departmentID: uuid.NewString(),
	}
	departments := &memoryDepartmentRepository{names: map[string]string{f.departmentID: "Engineering"}}
	f.employees = &memoryEmployeeRepository{
		employees:   map[string]employee.Employee{},
		users:       f.users,
		departments: departments,
	}
	f.svc = &EmployeeServiceImpl{
		withTx:         f.runTx,
		employeeRepo:   f.employees,
		userRepo:       f.users,
		departmentRepo: departments,
		fileService:    f.files,
	}
	return f
}

// runTx restores the repositories when fn fails, like a rolled back
// transaction would.
func (f *fixture) runTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	users := maps.Clone(f.users.users)
	employees := maps.Clone(f.employees.employees)
	if err := fn(ctx); err != nil {
		f.users.users = users
		f.employees.employees = employees
		return err
	}
	return nil
}

func (f *fixture) createRequest(email string) employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Name:         "Jane Doe",
		Email:        email,
		EmployeeCode: "EMP-001",
		Gender:       "female",
		Designation:  "Engineer",
		DepartmentID: f.departmentID,
		Salary:       decimal.NewFromInt(5000),
		Password:     "secret123",
		Role:         string(user.RoleEmployee),
	}
}

func TestCreateEmployee(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	req := f.createRequest("jane@example.com")
	req.Image = strings.NewReader("png-bytes")
	req.ImageName = "jane.png"

	resp, err := f.svc.CreateEmployee(ctx, req)
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Jane Doe", resp.User.Name)
	assert.Equal(t, "http://files.test/profile-images/jane.png", resp.User.ProfileImage)
	assert.Equal(t, "Engineering", resp.Department.Name)
	assert.Equal(t, 5000.0, resp.Salary)
	assert.Empty(t, f.files.deleted)

	stored := f.users.users[resp.User.ID]
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.Equal(t, "profile-images/jane.png", stored.ProfileImage)
}

func TestCreateEmployee_DuplicateEmailCreatesNothing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.users.Create(ctx, user.User{Name: "Existing", Email: "jane@example.com", Role: user.RoleEmployee})
	require.NoError(t, err)

	req := f.createRequest("jane@example.com")
	req.Image = strings.NewReader("png-bytes")
	req.ImageName = "jane.png"

	_, err = f.svc.CreateEmployee(ctx, req)
	assert.ErrorIs(t, err, user.ErrUserEmailExists)

	assert.Len(t, f.users.users, 1)
	assert.Empty(t, f.employees.employees)
	assert.Empty(t, f.files.uploaded)
}

func TestCreateEmployee_RemovesImageWhenTransactionFails(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.employees.createErr = errors.New("duplicate key value violates unique constraint")

	req := f.createRequest("jane@example.com")
	req.Image = strings.NewReader("png-bytes")
	req.ImageName = "jane.png"

	_, err := f.svc.CreateEmployee(ctx, req)
	require.Error(t, err)

	assert.Equal(t, []string{"profile-images/jane.png"}, f.files.deleted)
	assert.Empty(t, f.users.users)
	assert.Empty(t, f.employees.employees)
}

func TestCreateEmployee_UnknownDepartment(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	req := f.createRequest("jane@example.com")
	req.DepartmentID = uuid.NewString()
	req.Image = strings.NewReader("png-bytes")
	req.ImageName = "jane.png"

	_, err := f.svc.CreateEmployee(ctx, req)
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
	assert.Equal(t, []string{"profile-images/jane.png"}, f.files.deleted)
	assert.Empty(t, f.users.users)
}

func TestGetEmployee_ResolvesEmployeeOrUserID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created, err := f.svc.CreateEmployee(ctx, f.createRequest("jane@example.com"))
	require.NoError(t, err)

	byEmployee, err := f.svc.GetEmployee(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, byEmployee)
	assert.Equal(t, created.ID, byEmployee.ID)

	byUser, err := f.svc.GetEmployee(ctx, created.User.ID)
	require.NoError(t, err)
	require.NotNil(t, byUser)
	assert.Equal(t, created.ID, byUser.ID)

	missing, err := f.svc.GetEmployee(ctx, uuid.NewString())
	assert.NoError(t, err)
	assert.Nil(t, missing)

	_, err = f.svc.GetEmployee(ctx, "not-an-id")
	assert.Error(t, err)
}

func TestUpdateEmployee(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created, err := f.svc.CreateEmployee(ctx, f.createRequest("jane@example.com"))
	require.NoError(t, err)

	name := "Jane Smith"
	designation := "Lead"
	err = f.svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{ID: created.ID, Name: &name, Designation: &designation})
	require.NoError(t, err)

	assert.Equal(t, "Jane Smith", f.users.users[created.User.ID].Name)
	assert.Equal(t, "Lead", f.employees.employees[created.ID].Designation)
}

func TestUpdateEmployee_NotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	designation := "Lead"

	err := f.svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{ID: uuid.NewString(), Designation: &designation})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	created, err := f.svc.CreateEmployee(ctx, f.createRequest("jane@example.com"))
	require.NoError(t, err)
	delete(f.users.users, created.User.ID)

	err = f.svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{ID: created.ID, Designation: &designation})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
	assert.Equal(t, "Engineer", f.employees.employees[created.ID].Designation)
}

func TestUpdateEmployee_UnknownDepartment(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created, err := f.svc.CreateEmployee(ctx, f.createRequest("jane@example.com"))
	require.NoError(t, err)

	other := uuid.NewString()
	err = f.svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{ID: created.ID, DepartmentID: &other})
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}

func TestSweepOrphans(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created, err := f.svc.CreateEmployee(ctx, f.createRequest("jane@example.com"))
	require.NoError(t, err)
	delete(f.users.users, created.User.ID)

	removed, err := f.svc.SweepOrphans(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
	assert.Empty(t, f.employees.employees)
}
