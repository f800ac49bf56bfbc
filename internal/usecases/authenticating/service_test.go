package authenticating

import (
	"testing"

	"github.com/orcafacil/orcafacil-api/infrastructure/repository/mocks"
	"github.com/orcafacil/orcafacil-api/internal/config"
	"github.com/orcafacil/orcafacil-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthServiceForTest(t *testing.T) (*Service, *mocks.MockUserRepository, *mocks.MockCompanyRepository) {
	ctrl := gomock.NewController(t)

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockCompanyRepo := mocks.NewMockCompanyRepository(ctrl)

	service := &Service{
		userRepo:    mockUserRepo,
		companyRepo: mockCompanyRepo,
		cfg:         &config.Config{SecretKey: "chave-de-teste"},
	}

	return service, mockUserRepo, mockCompanyRepo
}

func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestLoginUser_TokenCarriesCompanyAndPlan(t *testing.T) {
	service, mockUserRepo, mockCompanyRepo := newAuthServiceForTest(t)

	mockUserRepo.EXPECT().
		GetUserByEmail("maria@empresa.com").
		Return(&domain.User{
			ID:           1,
			CompanyID:    42,
			Name:         "Maria",
			Email:        "maria@empresa.com",
			PasswordHash: hashPassword(t, "senha123"),
			Active:       true,
			RoleID:       1,
		}, nil)

	mockCompanyRepo.EXPECT().
		GetByID(42).
		Return(&domain.Company{ID: 42, Name: "Empresa A", Plan: domain.PlanPremium}, nil)

	// O email é normalizado antes da consulta
	token, err := service.LoginUser("  Maria@Empresa.com ", "senha123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, 42, claims.CompanyID)
	assert.Equal(t, domain.PlanPremium, claims.CompanyPlan)
	assert.Equal(t, 1, claims.UserRoleID)
}

func TestLoginUser_Errors(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		password    string
		setup       func(*mocks.MockUserRepository)
		expectedErr error
	}{
		{
			name:        "dados ausentes",
			email:       "",
			password:    "",
			setup:       func(_ *mocks.MockUserRepository) {},
			expectedErr: ErrMissingRequiredData,
		},
		{
			name:     "usuário não encontrado",
			email:    "ninguem@empresa.com",
			password: "senha123",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("ninguem@empresa.com").Return(nil, nil)
			},
			expectedErr: ErrUserNotFound,
		},
		{
			name:     "usuário desativado",
			email:    "inativo@empresa.com",
			password: "senha123",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("inativo@empresa.com").Return(&domain.User{
					ID:     2,
					Email:  "inativo@empresa.com",
					Active: false,
				}, nil)
			},
			expectedErr: ErrUserDisabled,
		},
		{
			name:     "senha incorreta",
			email:    "maria@empresa.com",
			password: "senha-errada",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("maria@empresa.com").Return(&domain.User{
					ID:           1,
					Email:        "maria@empresa.com",
					PasswordHash: "$2a$04$invalidinvalidinvalidinvalidinvalidinvalidinvalidinv",
					Active:       true,
				}, nil)
			},
			expectedErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockUserRepo, _ := newAuthServiceForTest(t)
			tt.setup(mockUserRepo)

			token, err := service.LoginUser(tt.email, tt.password)

			assert.Empty(t, token)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestValidateToken_Invalid(t *testing.T) {
	service, _, _ := newAuthServiceForTest(t)

	claims, err := service.ValidateToken("nem-um-token")

	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestValidatePasswordStrength(t *testing.T) {
	service, _, _ := newAuthServiceForTest(t)

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "senha forte", password: "abcdef12", valid: true},
		{name: "curta demais", password: "ab1", valid: false},
		{name: "só letras", password: "abcdefgh", valid: false},
		{name: "só números", password: "12345678", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)

			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrWeakPassword)
		})
	}
}

func TestHandleEmail(t *testing.T) {
	assert.Equal(t, "maria@empresa.com", handleEmail("  Maria@Empresa.com "))
	assert.Equal(t, "joao@empresa.com", handleEmail("joao @empresa.com"))
}
