package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/blogem/token-gate/authenticator"
	authmocks "github.com/blogem/token-gate/authenticator/mocks"
	"github.com/blogem/token-gate/models"
	"github.com/blogem/token-gate/repositories"
	"github.com/blogem/token-gate/repositories/mocks"
)

// AuthServiceTestSuite is a test suite for the login flow
type AuthServiceTestSuite struct {
	suite.Suite
	service      *authService
	mockProvider *authmocks.MockProvider
	mockStates   *mocks.MockStateRepository
	mockAudit    *mocks.MockAuditRepository
	now          time.Time
	info         RequestInfo
}

// SetupTest sets up the test suite before each test
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockProvider = authmocks.NewMockProvider(suite.T())
	suite.mockStates = mocks.NewMockStateRepository(suite.T())
	suite.mockAudit = mocks.NewMockAuditRepository(suite.T())
	suite.now = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	suite.info = RequestInfo{ClientIP: "198.51.100.4", UserAgent: "suite"}

	suite.service = NewAuthService(
		suite.mockProvider,
		suite.mockStates,
		suite.mockAudit,
		AuthOptions{StateTTL: 5 * time.Minute, ExchangeTimeout: time.Second},
	).(*authService)
	suite.service.now = func() time.Time { return suite.now }
}

// expectAudit expects exactly one audit event with the given outcome
func (suite *AuthServiceTestSuite) expectAudit(kind, outcome string) {
	suite.mockAudit.EXPECT().Create(mock.MatchedBy(func(e *models.AuthEvent) bool {
		return e.Kind == kind && e.Outcome == outcome && e.ClientIP == suite.info.ClientIP
	})).Return(nil).Once()
}

func (suite *AuthServiceTestSuite) callback(state, expected, code string) CallbackRequest {
	return CallbackRequest{RequestInfo: suite.info, State: state, ExpectedState: expected, Code: code}
}

// TestBeginLogin_Success tests that a state is persisted and embedded in the URL
func (suite *AuthServiceTestSuite) TestBeginLogin_Success() {
	var saved *models.LoginState
	suite.mockStates.EXPECT().Save(mock.Anything).Run(func(s *models.LoginState) { saved = s }).Return(nil)
	suite.mockProvider.EXPECT().AuthCodeURL(mock.Anything, mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, state string) (string, error) {
			return "https://idp.example/authorize?state=" + state, nil
		})
	suite.expectAudit(models.EventKindLogin, models.OutcomeRedirected)

	result, err := suite.service.BeginLogin(context.Background(), suite.info)

	require.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), result.State)
	assert.Equal(suite.T(), "https://idp.example/authorize?state="+result.State, result.URL)
	require.NotNil(suite.T(), saved)
	assert.Equal(suite.T(), result.State, saved.State)
	assert.Equal(suite.T(), suite.now, saved.IssuedAt)
	assert.Equal(suite.T(), suite.now.Add(5*time.Minute), saved.ExpiresAt)
}

// TestBeginLogin_SaveFailure tests that a storage failure aborts the login
func (suite *AuthServiceTestSuite) TestBeginLogin_SaveFailure() {
	suite.mockStates.EXPECT().Save(mock.Anything).Return(errors.New("disk full"))
	suite.expectAudit(models.EventKindLogin, models.OutcomeInternalError)

	result, err := suite.service.BeginLogin(context.Background(), suite.info)

	assert.Nil(suite.T(), result)
	assert.ErrorContains(suite.T(), err, "disk full")
}

// TestBeginLogin_ProviderFailure tests URL construction errors
func (suite *AuthServiceTestSuite) TestBeginLogin_ProviderFailure() {
	suite.mockStates.EXPECT().Save(mock.Anything).Return(nil)
	suite.mockProvider.EXPECT().AuthCodeURL(mock.Anything, mock.Anything).Return("", errors.New("tenant discovery failed"))
	suite.expectAudit(models.EventKindLogin, models.OutcomeInternalError)

	_, err := suite.service.BeginLogin(context.Background(), suite.info)

	assert.ErrorContains(suite.T(), err, "tenant discovery failed")
}

// TestCompleteLogin_MissingState tests that an absent state is rejected before anything else
func (suite *AuthServiceTestSuite) TestCompleteLogin_MissingState() {
	suite.expectAudit(models.EventKindCallback, models.OutcomeMissingState)

	_, err := suite.service.CompleteLogin(context.Background(), suite.callback("", "issued", "code"))

	assert.ErrorIs(suite.T(), err, ErrMissingState)
}

// TestCompleteLogin_StateMismatch tests that a forged state never reaches the store
func (suite *AuthServiceTestSuite) TestCompleteLogin_StateMismatch() {
	suite.expectAudit(models.EventKindCallback, models.OutcomeInvalidState)

	_, err := suite.service.CompleteLogin(context.Background(), suite.callback("forged", "issued", "code"))

	assert.ErrorIs(suite.T(), err, ErrInvalidState)
}

// TestCompleteLogin_NoSessionState tests a callback from a browser that never started a login
func (suite *AuthServiceTestSuite) TestCompleteLogin_NoSessionState() {
	suite.expectAudit(models.EventKindCallback, models.OutcomeInvalidState)

	_, err := suite.service.CompleteLogin(context.Background(), suite.callback("issued", "", "code"))

	assert.ErrorIs(suite.T(), err, ErrInvalidState)
}

// TestCompleteLogin_StateReplayed tests that a state already consumed is rejected
func (suite *AuthServiceTestSuite) TestCompleteLogin_StateReplayed() {
	suite.mockStates.EXPECT().Consume("issued", suite.now).Return(repositories.ErrStateNotRedeemable)
	suite.expectAudit(models.EventKindCallback, models.OutcomeInvalidState)

	_, err := suite.service.CompleteLogin(context.Background(), suite.callback("issued", "issued", "code"))

	assert.ErrorIs(suite.T(), err, ErrInvalidState)
}

// TestCompleteLogin_StoreFailure tests that storage errors are not reported as forgery
func (suite *AuthServiceTestSuite) TestCompleteLogin_StoreFailure() {
	suite.mockStates.EXPECT().Consume("issued", suite.now).Return(errors.New("database is locked"))
	suite.expectAudit(models.EventKindCallback, models.OutcomeInternalError)

	_, err := suite.service.CompleteLogin(context.Background(), suite.callback("issued", "issued", "code"))

	assert.Error(suite.T(), err)
	assert.NotErrorIs(suite.T(), err, ErrInvalidState)
}

// TestCompleteLogin_ProviderError tests an error redirect from the provider
func (suite *AuthServiceTestSuite) TestCompleteLogin_ProviderError() {
	suite.mockStates.EXPECT().Consume("issued", suite.now).Return(nil)
	suite.expectAudit(models.EventKindCallback, models.OutcomeProviderError)

	req := suite.callback("issued", "issued", "")
	req.ProviderError = "access_denied"
	req.ProviderErrorDescription = "user cancelled"
	_, err := suite.service.CompleteLogin(context.Background(), req)

	assert.ErrorIs(suite.T(), err, authenticator.ErrTokenExchangeFailed)
	var exchangeErr *authenticator.ExchangeError
	require.ErrorAs(suite.T(), err, &exchangeErr)
	assert.Equal(suite.T(), "access_denied", exchangeErr.Code)
}

// TestCompleteLogin_MissingCode tests a callback without an authorization code
func (suite *AuthServiceTestSuite) TestCompleteLogin_MissingCode() {
	suite.mockStates.EXPECT().Consume("issued", suite.now).Return(nil)
	suite.expectAudit(models.EventKindCallback, models.OutcomeMissingCode)

	_, err := suite.service.CompleteLogin(context.Background(), suite.callback("issued", "issued", ""))

	assert.ErrorIs(suite.T(), err, ErrMissingCode)
}

// TestCompleteLogin_Success tests a full exchange with a bounded context
func (suite *AuthServiceTestSuite) TestCompleteLogin_Success() {
	suite.mockStates.EXPECT().Consume("issued", suite.now).Return(nil)
	suite.mockProvider.EXPECT().ExchangeCode(mock.Anything, "the-code").
		RunAndReturn(func(ctx context.Context, code string) (*authenticator.Token, error) {
			deadline, ok := ctx.Deadline()
			assert.True(suite.T(), ok, "exchange context should carry a deadline")
			assert.WithinDuration(suite.T(), time.Now().Add(time.Second), deadline, time.Second)
			return &authenticator.Token{AccessToken: "abc123"}, nil
		})
	suite.expectAudit(models.EventKindCallback, models.OutcomeTokenIssued)

	token, err := suite.service.CompleteLogin(context.Background(), suite.callback("issued", "issued", "the-code"))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "abc123", token.AccessToken)
}

// TestCompleteLogin_ExchangeRejected tests a provider rejection
func (suite *AuthServiceTestSuite) TestCompleteLogin_ExchangeRejected() {
	suite.mockStates.EXPECT().Consume("issued", suite.now).Return(nil)
	suite.mockProvider.EXPECT().ExchangeCode(mock.Anything, "bad").
		Return(nil, &authenticator.ExchangeError{Code: "invalid_grant"})
	suite.expectAudit(models.EventKindCallback, models.OutcomeExchangeFailed)

	_, err := suite.service.CompleteLogin(context.Background(), suite.callback("issued", "issued", "bad"))

	assert.ErrorIs(suite.T(), err, authenticator.ErrTokenExchangeFailed)
}

// TestCompleteLogin_EmptyToken tests a provider response without an access token
func (suite *AuthServiceTestSuite) TestCompleteLogin_EmptyToken() {
	suite.mockStates.EXPECT().Consume("issued", suite.now).Return(nil)
	suite.mockProvider.EXPECT().ExchangeCode(mock.Anything, "code").Return(&authenticator.Token{}, nil)
	suite.expectAudit(models.EventKindCallback, models.OutcomeExchangeFailed)

	_, err := suite.service.CompleteLogin(context.Background(), suite.callback("issued", "issued", "code"))

	assert.ErrorIs(suite.T(), err, authenticator.ErrTokenExchangeFailed)
}

// TestCompleteLogin_Unreachable tests transport failures
func (suite *AuthServiceTestSuite) TestCompleteLogin_Unreachable() {
	suite.mockStates.EXPECT().Consume("issued", suite.now).Return(nil)
	suite.mockProvider.EXPECT().ExchangeCode(mock.Anything, "code").
		Return(nil, authenticator.ErrProviderUnreachable)
	suite.expectAudit(models.EventKindCallback, models.OutcomeProviderUnreachable)

	_, err := suite.service.CompleteLogin(context.Background(), suite.callback("issued", "issued", "code"))

	assert.ErrorIs(suite.T(), err, authenticator.ErrProviderUnreachable)
}

// TestCompleteLogin_AuditFailureIgnored tests that audit errors do not fail the flow
func (suite *AuthServiceTestSuite) TestCompleteLogin_AuditFailureIgnored() {
	suite.mockStates.EXPECT().Consume("issued", suite.now).Return(nil)
	suite.mockProvider.EXPECT().ExchangeCode(mock.Anything, "code").Return(&authenticator.Token{AccessToken: "t"}, nil)
	suite.mockAudit.EXPECT().Create(mock.Anything).Return(errors.New("audit table missing"))

	token, err := suite.service.CompleteLogin(context.Background(), suite.callback("issued", "issued", "code"))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "t", token.AccessToken)
}

// TestPurgeExpiredStates tests that the current time is passed to the store
func (suite *AuthServiceTestSuite) TestPurgeExpiredStates() {
	suite.mockStates.EXPECT().DeleteExpired(suite.now).Return(int64(3), nil)

	n, err := suite.service.PurgeExpiredStates()

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3), n)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func TestGenerateState_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		state, err := GenerateState()
		require.NoError(t, err)
		assert.Len(t, state, 43)
		assert.NotContains(t, state, "+")
		assert.NotContains(t, state, "/")
		assert.False(t, seen[state], "state %s generated twice", state)
		seen[state] = true
	}
}

func TestStatesEqual(t *testing.T) {
	assert.True(t, statesEqual("abc", "abc"))
	assert.False(t, statesEqual("abc", "abd"))
	assert.False(t, statesEqual("abc", "ab"))
	assert.False(t, statesEqual("", ""))
}
