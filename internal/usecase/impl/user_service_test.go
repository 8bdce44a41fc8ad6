package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
	domainerrors "github.com/alfredtoussaint-cpu/dealshaq/internal/domain/errors"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/repository"
	mockRepo "github.com/alfredtoussaint-cpu/dealshaq/internal/mocks/repository"
	mockSvc "github.com/alfredtoussaint-cpu/dealshaq/internal/mocks/service"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/usecase"
)

func createTestUserService(t *testing.T) (
	usecase.UserUsecase,
	*mockRepo.MockConsumerRepository,
	*mockRepo.MockRetailerRepository,
	*mockSvc.MockPasswordHasher,
	*mockSvc.MockTokenService,
) {
	consumerRepo := mockRepo.NewMockConsumerRepository(t)
	retailerRepo := mockRepo.NewMockRetailerRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewUserService(UserServiceParams{
		ConsumerRepo: consumerRepo,
		RetailerRepo: retailerRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return service, consumerRepo, retailerRepo, hasher, tokenService
}

func TestUserService_RegisterConsumer_Defaults(t *testing.T) {
	service, consumerRepo, _, hasher, _ := createTestUserService(t)
	ctx := context.Background()

	hasher.EXPECT().Hash("hunter22").Return("$2a$hash", nil)
	consumerRepo.EXPECT().CreateConsumer(ctx, mock.Anything).Run(func(_ context.Context, consumer *entity.Consumer) {
		assert.Equal(t, "shopper@example.com", consumer.Email)
		assert.Equal(t, "$2a$hash", consumer.PasswordHash)
		assert.Equal(t, DefaultRadiusMiles, consumer.RadiusMiles)
		assert.Zero(t, consumer.AutoFavoriteThresholdDays)
		assert.True(t, consumer.Active)
	}).Return(nil)

	out, err := service.RegisterConsumer(ctx, &usecase.RegisterConsumerInput{
		Name:     "Shopper",
		Email:    "shopper@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, out.Consumer.ID)
}

func TestUserService_RegisterConsumer_DuplicateEmail(t *testing.T) {
	service, consumerRepo, _, hasher, _ := createTestUserService(t)
	ctx := context.Background()

	hasher.EXPECT().Hash(mock.Anything).Return("$2a$hash", nil)
	consumerRepo.EXPECT().CreateConsumer(ctx, mock.Anything).Return(repository.ErrDuplicateConsumer)

	_, err := service.RegisterConsumer(ctx, &usecase.RegisterConsumerInput{
		Name:     "Shopper",
		Email:    "shopper@example.com",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
}

func TestUserService_RegisterRetailer_StartsPendingApproval(t *testing.T) {
	service, _, retailerRepo, hasher, _ := createTestUserService(t)
	ctx := context.Background()

	hasher.EXPECT().Hash(mock.Anything).Return("$2a$hash", nil)
	retailerRepo.EXPECT().CreateRetailer(ctx, mock.Anything).Run(func(_ context.Context, retailer *entity.Retailer) {
		assert.Equal(t, entity.StorePendingApproval, retailer.StoreStatus)
		assert.Equal(t, "Corner Market", retailer.StoreName)
	}).Return(nil)

	_, err := service.RegisterRetailer(ctx, &usecase.RegisterRetailerInput{
		Name:      "Owner",
		Email:     "store@example.com",
		Password:  "hunter22",
		StoreName: "Corner Market",
	})
	require.NoError(t, err)
}

func TestUserService_Login_Consumer(t *testing.T) {
	service, consumerRepo, _, hasher, tokenService := createTestUserService(t)
	ctx := context.Background()

	consumer := &entity.Consumer{ID: uuid.New(), Email: "shopper@example.com", PasswordHash: "$2a$hash", Active: true}
	consumerRepo.EXPECT().FindConsumerByEmail(ctx, consumer.Email).Return(consumer, nil)
	hasher.EXPECT().Check("hunter22", "$2a$hash").Return(true)
	tokenService.EXPECT().GenerateTokens(consumer.ID, []string{"consumer"}).Return("access", "refresh", nil)

	out, err := service.Login(ctx, &usecase.LoginInput{Email: consumer.Email, Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, "access", out.AccessToken)
	assert.Equal(t, entity.RoleConsumer, out.Role)
}

func TestUserService_Login_RetailerFallback(t *testing.T) {
	service, consumerRepo, retailerRepo, hasher, tokenService := createTestUserService(t)
	ctx := context.Background()

	retailer := &entity.Retailer{ID: uuid.New(), Email: "store@example.com", PasswordHash: "$2a$hash", Active: true}
	consumerRepo.EXPECT().FindConsumerByEmail(ctx, retailer.Email).Return(nil, repository.ErrConsumerNotFound)
	retailerRepo.EXPECT().FindRetailerByEmail(ctx, retailer.Email).Return(retailer, nil)
	hasher.EXPECT().Check("hunter22", "$2a$hash").Return(true)
	tokenService.EXPECT().GenerateTokens(retailer.ID, []string{"retailer"}).Return("access", "refresh", nil)

	out, err := service.Login(ctx, &usecase.LoginInput{Email: retailer.Email, Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleRetailer, out.Role)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	service, consumerRepo, _, hasher, _ := createTestUserService(t)
	ctx := context.Background()

	consumer := &entity.Consumer{ID: uuid.New(), Email: "shopper@example.com", PasswordHash: "$2a$hash", Active: true}
	consumerRepo.EXPECT().FindConsumerByEmail(ctx, consumer.Email).Return(consumer, nil)
	hasher.EXPECT().Check("wrong", "$2a$hash").Return(false)

	_, err := service.Login(ctx, &usecase.LoginInput{Email: consumer.Email, Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_DeactivatedAccount(t *testing.T) {
	service, consumerRepo, _, hasher, _ := createTestUserService(t)
	ctx := context.Background()

	consumer := &entity.Consumer{ID: uuid.New(), Email: "gone@example.com", PasswordHash: "$2a$hash", Active: false}
	consumerRepo.EXPECT().FindConsumerByEmail(ctx, consumer.Email).Return(consumer, nil)
	hasher.EXPECT().Check("hunter22", "$2a$hash").Return(true)

	_, err := service.Login(ctx, &usecase.LoginInput{Email: consumer.Email, Password: "hunter22"})
	assert.ErrorIs(t, err, domainerrors.ErrAccountInactive)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	service, consumerRepo, retailerRepo, _, _ := createTestUserService(t)
	ctx := context.Background()

	consumerRepo.EXPECT().FindConsumerByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrConsumerNotFound)
	retailerRepo.EXPECT().FindRetailerByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrRetailerNotFound)

	_, err := service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "hunter22"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
