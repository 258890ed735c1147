package http

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEmployee_ClosesUploadedImage(t *testing.T) {
	employees := &fakeEmployeeService{}
	// A zero memory budget spills the image part to a temp file.
	h := &employeeHandlerImpl{employeeService: employees, maxMemory: 0}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range validEmployeeFields() {
		require.NoError(t, mw.WriteField(k, v))
	}
	part, err := mw.CreateFormFile("image", "avatar.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/employee/add", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.CreateEmployee(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, []byte("png-bytes"), employees.image)

	file, ok := employees.imageFile.(io.ReaderAt)
	require.True(t, ok)
	_, err = file.ReadAt(make([]byte, 1), 0)
	assert.ErrorIs(t, err, os.ErrClosed)
}
