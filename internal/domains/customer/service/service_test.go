package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	s3Mocks "lodge/infras/s3/mocks"
	customerMocks "lodge/internal/domains/customer/mocks"
	"lodge/internal/domains/customer/model"
	"lodge/internal/domains/customer/model/dto"
	"lodge/internal/domains/customer/service"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type customerServiceMocks struct {
	repo    *customerMocks.MockCustomer
	storage *s3Mocks.MockS3
	cache   *cacheMocks.MockRedisCache
}

func newCustomerService(t *testing.T) (service.Customer, customerServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := customerServiceMocks{
		repo:    customerMocks.NewMockCustomer(ctrl),
		storage: s3Mocks.NewMockS3(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
	}

	// Cache invalidation runs on a detached goroutine after the service
	// call returns, so the expectations cannot be strict.
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.External.S3.BucketName = "lodge-documents"

	svc := service.New(m.repo, cfg, m.cache, m.storage, mocks.NewOtel())

	return svc, m
}

func validCustomer() model.Customer {
	return model.Customer{
		ID:    "c81e728d-9d4c-4f63-af06-7f89cc14862c",
		Name:  "Asha Verma",
		Phone: "+911234567890",
		Email: "asha@example.com",
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

func uploadRequest() dto.UploadDocumentRequest {
	return dto.UploadDocumentRequest{
		Document: &multipart.FileHeader{
			Filename: "passport.pdf",
			Size:     1024,
		},
	}
}

func TestCustomerCreate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("stores a new customer", func(t *testing.T) {
		t.Parallel()

		svc, m := newCustomerService(t)

		req := dto.CreateCustomerRequest{
			Name:  "Asha Verma",
			Phone: "+911234567890",
			Email: "asha@example.com",
		}

		m.repo.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, customer model.Customer) error {
				assert.Equal(t, req.Name, customer.Name)
				assert.Equal(t, req.Email, customer.Email)
				assert.NotEmpty(t, customer.ID)

				return nil
			},
		)

		err := svc.Create(ctx, req)

		assert.NoError(t, err)
	})

	t.Run("propagates a storage failure", func(t *testing.T) {
		t.Parallel()

		svc, m := newCustomerService(t)

		m.repo.EXPECT().Insert(ctx, gomock.Any()).Return(errors.New("connection refused"))

		err := svc.Create(ctx, dto.CreateCustomerRequest{Name: "Asha Verma"})

		assert.Error(t, err)
	})
}

func TestCustomerUploadDocument(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("uploads the document and saves the folder link", func(t *testing.T) {
		t.Parallel()

		svc, m := newCustomerService(t)

		customer := validCustomer()
		req := uploadRequest()

		m.repo.EXPECT().Get(ctx, gomock.Any()).Return(customer, nil)
		m.storage.EXPECT().UploadFile(ctx, "lodge-documents", model.EntityName+"/"+customer.ID, gomock.Any(), req.Document, gomock.Any()).DoAndReturn(
			func(_ context.Context, _, directory string, _ multipart.File, _ *multipart.FileHeader, fileName string) (string, error) {
				assert.True(t, strings.HasSuffix(fileName, ".pdf"))

				return "https://cdn.example.com/" + directory + "/" + fileName, nil
			},
		)
		m.repo.EXPECT().Update(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fields map[string]any, _ any) error {
				link, ok := fields[model.FieldDocumentsFolderLink].(string)
				assert.True(t, ok)
				assert.Equal(t, "https://cdn.example.com/"+model.EntityName+"/"+customer.ID, link)

				return nil
			},
		)

		res, err := svc.UploadDocument(ctx, req, customer.ID)

		assert.NoError(t, err)
		assert.Equal(t, customer.ID, res.ID)
		assert.Equal(t, "https://cdn.example.com/"+model.EntityName+"/"+customer.ID, res.DocumentsFolderLink)
	})

	t.Run("returns not found for an unknown customer", func(t *testing.T) {
		t.Parallel()

		svc, m := newCustomerService(t)

		m.repo.EXPECT().Get(ctx, gomock.Any()).Return(model.Customer{}, nil)

		_, err := svc.UploadDocument(ctx, uploadRequest(), validCustomer().ID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("fails when the object store rejects the upload", func(t *testing.T) {
		t.Parallel()

		svc, m := newCustomerService(t)

		customer := validCustomer()

		m.repo.EXPECT().Get(ctx, gomock.Any()).Return(customer, nil)
		m.storage.EXPECT().UploadFile(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("access denied"))

		_, err := svc.UploadDocument(ctx, uploadRequest(), customer.ID)

		assert.Error(t, err)
	})

	t.Run("removes the uploaded file when the link update fails", func(t *testing.T) {
		t.Parallel()

		svc, m := newCustomerService(t)

		customer := validCustomer()

		m.repo.EXPECT().Get(ctx, gomock.Any()).Return(customer, nil)
		m.storage.EXPECT().UploadFile(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://cdn.example.com/customer/doc.pdf", nil)
		m.repo.EXPECT().Update(ctx, gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
		m.storage.EXPECT().DeleteFile(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.UploadDocument(ctx, uploadRequest(), customer.ID)

		assert.Error(t, err)
	})
}
