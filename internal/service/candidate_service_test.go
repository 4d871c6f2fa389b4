package service_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"voterkyc/internal/config"
	"voterkyc/internal/domain"
	"voterkyc/internal/port"
	"voterkyc/internal/service"
	"voterkyc/mocks"
)

func testS3Config() *config.S3Config {
	return &config.S3Config{
		Bucket:         "test-bucket",
		MaxImageSizeMB: 1,
		PresignExpiry:  600,
	}
}

// createMultipartFile creates a fake multipart file header and content for testing.
func createMultipartFile(filename string, content []byte, contentType string) (multipart.File, *multipart.FileHeader) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)

	part, _ := writer.CreatePart(h)
	_, _ = part.Write(content)
	writer.Close()

	reader := multipart.NewReader(body, writer.Boundary())
	form, _ := reader.ReadForm(int64(len(content) + 1024))
	file, _ := form.File["image"][0].Open()
	return file, form.File["image"][0]
}

// pngContent returns minimal valid PNG bytes (magic bytes).
func pngContent() []byte {
	header := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	return append(header, bytes.Repeat([]byte{0x00}, 100)...)
}

func jpegContent() []byte {
	header := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	return append(header, bytes.Repeat([]byte{0x00}, 100)...)
}

func TestCandidateService_Create(t *testing.T) {
	repo := new(mocks.MockCandidateRepo)
	svc := service.NewCandidateService(repo, new(mocks.MockObjectStorage), testS3Config())

	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Candidate) bool {
		return c.Name == "Asha Rao" && c.Party == "Lotus Front"
	})).Return(nil)

	c, err := svc.Create(context.Background(), service.CandidateInput{Name: " Asha Rao ", Party: "Lotus Front "})

	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", c.Name)
	repo.AssertExpectations(t)
}

func TestCandidateService_Create_BlankName(t *testing.T) {
	repo := new(mocks.MockCandidateRepo)
	svc := service.NewCandidateService(repo, new(mocks.MockObjectStorage), testS3Config())

	_, err := svc.Create(context.Background(), service.CandidateInput{Name: "  ", Party: "Lotus Front"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCandidateService_List_ResolvesUploadedImages(t *testing.T) {
	repo := new(mocks.MockCandidateRepo)
	storage := new(mocks.MockObjectStorage)
	svc := service.NewCandidateService(repo, storage, testS3Config())

	candidates := []domain.Candidate{
		{ID: uuid.New(), Name: "Asha", ImageURL: "https://cdn.example.in/asha.png"},
		{ID: uuid.New(), Name: "Vikram", ImageKey: "candidates/v/1.png"},
		{ID: uuid.New(), Name: "Meera", ImageURL: "https://old.example.in/m.png", ImageKey: "candidates/m/2.jpg"},
	}
	repo.On("List", mock.Anything).Return(candidates, nil)
	storage.On("PresignGet", mock.Anything, "candidates/v/1.png", 10*time.Minute).
		Return("https://s3.example/v?sig", nil)
	storage.On("PresignGet", mock.Anything, "candidates/m/2.jpg", 10*time.Minute).
		Return("", errors.New("presign failed"))

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.in/asha.png", got[0].ImageURL)
	assert.Equal(t, "https://s3.example/v?sig", got[1].ImageURL)
	assert.Equal(t, "https://old.example.in/m.png", got[2].ImageURL)
	storage.AssertExpectations(t)
}

func TestCandidateService_Update_NotFound(t *testing.T) {
	repo := new(mocks.MockCandidateRepo)
	svc := service.NewCandidateService(repo, new(mocks.MockObjectStorage), testS3Config())

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrCandidateNotFound)

	_, err := svc.Update(context.Background(), id, service.CandidateInput{Name: "A", Party: "B"})

	assert.ErrorIs(t, err, domain.ErrCandidateNotFound)
}

func TestCandidateService_Delete_RemovesImage(t *testing.T) {
	repo := new(mocks.MockCandidateRepo)
	storage := new(mocks.MockObjectStorage)
	svc := service.NewCandidateService(repo, storage, testS3Config())

	c := &domain.Candidate{ID: uuid.New(), ImageKey: "candidates/x/1.png"}
	repo.On("GetByID", mock.Anything, c.ID).Return(c, nil)
	repo.On("Delete", mock.Anything, c.ID).Return(nil)
	storage.On("Delete", mock.Anything, "candidates/x/1.png").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), c.ID))
	repo.AssertExpectations(t)
	storage.AssertExpectations(t)
}

func TestCandidateService_UploadImage_Success(t *testing.T) {
	repo := new(mocks.MockCandidateRepo)
	storage := new(mocks.MockObjectStorage)
	svc := service.NewCandidateService(repo, storage, testS3Config())

	c := &domain.Candidate{ID: uuid.New(), Name: "Asha", ImageKey: "candidates/old.png"}
	file, header := createMultipartFile("asha.PNG", pngContent(), "image/png")
	defer file.Close()

	repo.On("GetByID", mock.Anything, c.ID).Return(c, nil)
	storage.On("Put", mock.Anything, mock.MatchedBy(func(in port.PutObjectInput) bool {
		return strings.HasPrefix(in.Key, "candidates/"+c.ID.String()+"/") &&
			strings.HasSuffix(in.Key, ".png") &&
			in.ContentType == "image/png"
	})).Return(nil)
	repo.On("SetImageKey", mock.Anything, c.ID, mock.AnythingOfType("string")).Return(nil)
	storage.On("Delete", mock.Anything, "candidates/old.png").Return(nil)
	storage.On("PresignGet", mock.Anything, mock.AnythingOfType("string"), 10*time.Minute).
		Return("https://s3.example/new?sig", nil)

	got, err := svc.UploadImage(context.Background(), c.ID, service.CandidateImageInput{File: file, Header: header})

	require.NoError(t, err)
	assert.Equal(t, "https://s3.example/new?sig", got.ImageURL)
	assert.NotEqual(t, "candidates/old.png", got.ImageKey)
	repo.AssertExpectations(t)
	storage.AssertExpectations(t)
}

func TestCandidateService_UploadImage_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  []byte
		wantErr  error
	}{
		{"unsupported extension", "asha.gif", pngContent(), domain.ErrUnsupportedFileType},
		{"extension does not match content", "asha.jpg", pngContent(), domain.ErrUnsupportedFileType},
		{"not an image", "asha.png", []byte("%PDF-1.4 definitely not a png"), domain.ErrUnsupportedFileType},
		{"too large", "asha.jpg", append(jpegContent(), bytes.Repeat([]byte{0}, 1024*1024)...), domain.ErrFileTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockCandidateRepo)
			storage := new(mocks.MockObjectStorage)
			svc := service.NewCandidateService(repo, storage, testS3Config())

			file, header := createMultipartFile(tt.filename, tt.content, "application/octet-stream")
			defer file.Close()

			_, err := svc.UploadImage(context.Background(), uuid.New(), service.CandidateImageInput{File: file, Header: header})

			assert.ErrorIs(t, err, tt.wantErr)
			storage.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
		})
	}
}

func TestCandidateService_UploadImage_StorageFailure(t *testing.T) {
	repo := new(mocks.MockCandidateRepo)
	storage := new(mocks.MockObjectStorage)
	svc := service.NewCandidateService(repo, storage, testS3Config())

	c := &domain.Candidate{ID: uuid.New()}
	file, header := createMultipartFile("asha.jpeg", jpegContent(), "image/jpeg")
	defer file.Close()

	repo.On("GetByID", mock.Anything, c.ID).Return(c, nil)
	storage.On("Put", mock.Anything, mock.Anything).Return(errors.New("s3 down"))

	_, err := svc.UploadImage(context.Background(), c.ID, service.CandidateImageInput{File: file, Header: header})

	assert.ErrorIs(t, err, domain.ErrUploadFailed)
	repo.AssertNotCalled(t, "SetImageKey", mock.Anything, mock.Anything, mock.Anything)
}
