package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/apperrors"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/domain"
	portssvc "github.com/SwiftEdgeIT/swiftedge_portal/internal/core/ports/services"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/services"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/dto"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	userRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.userRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.userRepo)
}

func (suite *UserServiceTestSuite) TestCreateUser_HashesPassword() {
	req := dto.CreateUserRequest{
		Username: "priya",
		Password: "s3cret-password",
		Name:     "Priya",
		Email:    "priya@example.com",
	}
	var saved domain.User
	suite.userRepo.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		saved = u
		return u.Username == "priya" && u.PasswordHash != "" && u.PasswordHash != req.Password
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(context.Background(), req)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), user.UserID, user.CreatedBy)
	assert.True(suite.T(), utils.CheckPasswordHash(req.Password, saved.PasswordHash))
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	req := dto.CreateUserRequest{
		Username: "priya",
		Password: "s3cret-password",
		Name:     "Priya",
		Email:    "priya@example.com",
	}
	suite.userRepo.On("SaveUser", mock.Anything, mock.Anything).
		Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateUser(context.Background(), req)
	assert.ErrorIs(suite.T(), err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_ExistingAccount() {
	existing := &domain.User{UserID: "u1", GoogleID: "g1"}
	suite.userRepo.On("FindUserByGoogleID", mock.Anything, "g1").Return(existing, nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(context.Background(), &domain.GoogleUserInfo{ID: "g1"})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "u1", user.UserID)
	suite.userRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_FirstSignIn() {
	info := &domain.GoogleUserInfo{ID: "g1", Email: "Dana.K@example.com", Name: "Dana K"}
	suite.userRepo.On("FindUserByGoogleID", mock.Anything, "g1").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.userRepo.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.GoogleID == "g1" && u.Username == "dana.k" && u.PasswordHash == ""
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(context.Background(), info)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "dana.k", user.Username)
}

func (suite *UserServiceTestSuite) TestUpdateUser_PartialUpdate() {
	existing := &domain.User{UserID: "u1", Name: "Old Name", Email: "old@example.com", Company: "Acme"}
	suite.userRepo.On("FindUserByID", mock.Anything, "u1").Return(existing, nil).Once()

	newName := "New Name"
	suite.userRepo.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Name == newName && u.Email == "old@example.com" && u.Company == "Acme"
	})).Return(nil).Once()

	user, err := suite.service.UpdateUser(context.Background(), "u1", dto.UpdateUserRequest{Name: &newName})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), newName, user.Name)
}

func (suite *UserServiceTestSuite) TestClearRefreshToken() {
	suite.userRepo.On("UpdateRefreshToken", mock.Anything, "u1", "", (*time.Time)(nil)).Return(nil).Once()

	err := suite.service.ClearRefreshToken(context.Background(), "u1")
	assert.NoError(suite.T(), err)
	suite.userRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
