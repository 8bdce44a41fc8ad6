package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "github.com/alfredtoussaint-cpu/dealshaq/internal/delivery/context"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
	domainerrors "github.com/alfredtoussaint-cpu/dealshaq/internal/domain/errors"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/repository"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/service"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/errors"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/usecase"
)

// DefaultRadiusMiles is assigned to new consumers until they choose
// their own.
const DefaultRadiusMiles = 5.0

// userService implements the UserUsecase interface.
type userService struct {
	consumerRepo repository.ConsumerRepository
	retailerRepo repository.RetailerRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	ConsumerRepo repository.ConsumerRepository
	RetailerRepo repository.RetailerRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		consumerRepo: params.ConsumerRepo,
		retailerRepo: params.RetailerRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterConsumer creates a consumer account with default preferences.
func (srv *userService) RegisterConsumer(ctx context.Context, input *usecase.RegisterConsumerInput) (*usecase.RegisterConsumerOutput, error) {
	srv.log(ctx).Info("Registering consumer", slog.String("email", input.Email))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash consumer password")
	}

	now := time.Now()
	consumer := &entity.Consumer{
		ID:           uuid.New(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
		RadiusMiles:  DefaultRadiusMiles,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.consumerRepo.CreateConsumer(ctx, consumer); err != nil {
		if errors.Is(err, repository.ErrDuplicateConsumer) {
			return nil, domainerrors.ErrAccountAlreadyExists
		}

		srv.log(ctx).Error("Failed to create consumer", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create consumer")
	}

	return &usecase.RegisterConsumerOutput{Consumer: consumer}, nil
}

// RegisterRetailer creates a retailer account awaiting admin approval.
func (srv *userService) RegisterRetailer(ctx context.Context, input *usecase.RegisterRetailerInput) (*usecase.RegisterRetailerOutput, error) {
	srv.log(ctx).Info("Registering retailer", slog.String("email", input.Email))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash retailer password")
	}

	now := time.Now()
	retailer := &entity.Retailer{
		ID:           uuid.New(),
		Email:        input.Email,
		Name:         input.Name,
		StoreName:    input.StoreName,
		PasswordHash: hash,
		StoreStatus:  entity.StorePendingApproval,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.retailerRepo.CreateRetailer(ctx, retailer); err != nil {
		if errors.Is(err, repository.ErrDuplicateRetailer) {
			return nil, domainerrors.ErrAccountAlreadyExists
		}

		srv.log(ctx).Error("Failed to create retailer", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create retailer")
	}

	return &usecase.RegisterRetailerOutput{Retailer: retailer}, nil
}

// Login authenticates a consumer or retailer by email and issues tokens.
// Consumer accounts are tried first; the two roles keep separate email
// namespaces.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if consumer, err := srv.consumerRepo.FindConsumerByEmail(ctx, input.Email); err == nil {
		return srv.loginAs(ctx, consumer.ID, entity.RoleConsumer, consumer.PasswordHash, consumer.Active, input.Password)
	} else if !errors.Is(err, repository.ErrConsumerNotFound) {
		return nil, errors.Wrap(err, "failed to look up consumer for login")
	}

	retailer, err := srv.retailerRepo.FindRetailerByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrRetailerNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up retailer for login")
	}

	return srv.loginAs(ctx, retailer.ID, entity.RoleRetailer, retailer.PasswordHash, retailer.Active, input.Password)
}

func (srv *userService) loginAs(ctx context.Context, userID uuid.UUID, role entity.Role, hash string, active bool, password string) (*usecase.LoginOutput, error) {
	if !srv.hasher.Check(password, hash) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if !active {
		return nil, domainerrors.ErrAccountInactive
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(userID, []string{string(role)})
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Role:         role,
	}, nil
}
