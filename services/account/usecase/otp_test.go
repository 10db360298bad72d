package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sigap-app/sigap-backend/internal/pkg/models"
	"github.com/sigap-app/sigap-backend/services/account"
	"github.com/sigap-app/sigap-backend/services/account/mocks"
	"github.com/stretchr/testify/assert"
)

func TestSendOTP_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockAccountGW(ctrl)
	uc := NewAccountUC(mockGW, &models.Config{})

	mockGW.EXPECT().SendOTP(gomock.Any(), "+6281234567890").Return(nil)

	// Act
	err := uc.SendOTP(context.Background(), "+62 812-3456-7890")

	// Assert
	assert.NoError(t, err)
}

func TestSendOTP_InvalidPhone(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockAccountGW(ctrl)
	uc := NewAccountUC(mockGW, &models.Config{})

	// No platform call is made for a malformed phone

	// Act
	err := uc.SendOTP(context.Background(), "abc")

	// Assert
	assert.ErrorIs(t, err, account.ErrInvalidPhone)
}

func TestSendOTP_DispatchFailure(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockAccountGW(ctrl)
	uc := NewAccountUC(mockGW, &models.Config{})

	mockGW.EXPECT().SendOTP(gomock.Any(), "+6281234567890").
		Return(errors.New("sms channel down"))

	// Act
	err := uc.SendOTP(context.Background(), "+6281234567890")

	// Assert
	assert.Error(t, err)
	assert.NotErrorIs(t, err, account.ErrInvalidPhone)
}

func TestVerifyOTP_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockAccountGW(ctrl)
	uc := NewAccountUC(mockGW, &models.Config{})

	gomock.InOrder(
		mockGW.EXPECT().VerifyOTP(gomock.Any(), "+6281234567890", "123456").Return(nil),
		mockGW.EXPECT().MarkPhoneVerified(gomock.Any(), "+6281234567890").Return(nil),
	)

	// Act
	err := uc.VerifyOTP(context.Background(), "+6281234567890", "123456")

	// Assert
	assert.NoError(t, err)
}

func TestVerifyOTP_RejectedCode(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockAccountGW(ctrl)
	uc := NewAccountUC(mockGW, &models.Config{})

	// The flag must not be touched when the code is rejected
	mockGW.EXPECT().VerifyOTP(gomock.Any(), "+6281234567890", "000000").
		Return(errors.New("invalid or expired token"))

	// Act
	err := uc.VerifyOTP(context.Background(), "+6281234567890", "000000")

	// Assert
	assert.Error(t, err)
}

func TestVerifyOTP_FlagUpdateFailure(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockAccountGW(ctrl)
	uc := NewAccountUC(mockGW, &models.Config{})

	gomock.InOrder(
		mockGW.EXPECT().VerifyOTP(gomock.Any(), "+6281234567890", "123456").Return(nil),
		mockGW.EXPECT().MarkPhoneVerified(gomock.Any(), "+6281234567890").
			Return(account.ErrAccountNotFound),
	)

	// Act
	err := uc.VerifyOTP(context.Background(), "+6281234567890", "123456")

	// Assert
	assert.Error(t, err)
	assert.ErrorIs(t, err, account.ErrAccountNotFound)
}

func TestVerifyOTP_InvalidPhone(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockAccountGW(ctrl)
	uc := NewAccountUC(mockGW, &models.Config{})

	// Act
	err := uc.VerifyOTP(context.Background(), "not-a-number", "123456")

	// Assert
	assert.ErrorIs(t, err, account.ErrInvalidPhone)
}
