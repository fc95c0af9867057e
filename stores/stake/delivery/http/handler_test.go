package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/staking/base/ctx"
	bValidator "github.com/x-xyz/staking/base/validator"
	"github.com/x-xyz/staking/domain"
	mDomain "github.com/x-xyz/staking/domain/mocks"
	"github.com/x-xyz/staking/domain/staking"
	mStaking "github.com/x-xyz/staking/domain/staking/mocks"
	authMiddleware "github.com/x-xyz/staking/stores/auth/delivery/http/middleware"
)

type HandlerTestSuite struct {
	suite.Suite
	e     *echo.Echo
	auth  *mDomain.AuthUsecase
	stake *mStaking.UseCase
	clk   *clock.Mock
}

func (s *HandlerTestSuite) SetupTest() {
	s.e = echo.New()
	s.e.Validator = bValidator.NewCustomValidator(bValidator.New())
	s.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	s.auth = &mDomain.AuthUsecase{}
	s.stake = &mStaking.UseCase{}
	s.clk = clock.NewMock()
	s.clk.Set(time.Unix(86400, 500))

	contract := staking.ContractProviderFunc(func(c ctx.Ctx) (staking.Contract, error) {
		return staking.Contract{Self: "stakepurple", ClaimCooldown: staking.ClaimCooldown}, nil
	})
	New(s.e, s.stake, contract, s.clk, authMiddleware.New(s.auth, nil))
}

func (s *HandlerTestSuite) TearDownTest() {
	s.auth.AssertExpectations(s.T())
	s.stake.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) do(method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) TestClaimSignedByAccount() {
	s.auth.On("ParseToken", mock.Anything, "alice-token").Return(domain.Name("alice"), nil).Once()
	s.stake.On("Claim", mock.Anything, mock.MatchedBy(func(act staking.Action) bool {
		return len(act.Auth) == 1 && act.Auth[0] == "alice" && act.Now.Equal(time.Unix(86400, 0)) && act.Contract.Self == "stakepurple"
	}), domain.Name("alice")).Return(&staking.ClaimResult{Payouts: []staking.Payout{}, Skipped: []string{}}, nil).Once()

	rec := s.do(http.MethodPost, "/stakes/claim", `{"account":"alice"}`, "alice-token")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data":{"payouts":[],"skipped":[]},"status":"success"}`, rec.Body.String())
}

func (s *HandlerTestSuite) TestClaimWithoutToken() {
	rec := s.do(http.MethodPost, "/stakes/claim", `{"account":"alice"}`, "")
	s.GreaterOrEqual(rec.Code, 400)
	s.stake.AssertNotCalled(s.T(), "Claim", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestUnstakeLocked() {
	s.auth.On("ParseToken", mock.Anything, "alice-token").Return(domain.Name("alice"), nil).Once()
	s.stake.On("Unstake", mock.Anything, mock.Anything, domain.Name("alice"), domain.NewAsset(1000000, domain.NewSymbol("PURPLE", 4))).
		Return(nil, domain.Errorf(domain.ErrPrecondition, "you can unstake in 0 hours and 59 minutes")).Once()

	rec := s.do(http.MethodPost, "/stakes/unstake", `{"account":"alice","quantity":"100.0000 PURPLE"}`, "alice-token")
	s.Equal(http.StatusPreconditionFailed, rec.Code)
	s.JSONEq(`{"data":"you can unstake in 0 hours and 59 minutes","status":"fail"}`, rec.Body.String())
}

func (s *HandlerTestSuite) TestUnstakeBadAccount() {
	s.auth.On("ParseToken", mock.Anything, "alice-token").Return(domain.Name("alice"), nil).Once()

	rec := s.do(http.MethodPost, "/stakes/unstake", `{"account":"Alice!","quantity":"100.0000 PURPLE"}`, "alice-token")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestNotifyTransfer() {
	s.auth.On("ParseToken", mock.Anything, "token-token").Return(domain.Name("purpletoken"), nil).Once()
	s.stake.On("OnTransfer", mock.Anything, mock.Anything, staking.TransferNotification{
		Contract: "purpletoken",
		From:     "alice",
		To:       "stakepurple",
		Quantity: domain.NewAsset(1000000, domain.NewSymbol("PURPLE", 4)),
		Memo:     "for:bob",
	}).Return(&staking.DepositResult{Beneficiary: "bob"}, nil).Once()

	rec := s.do(http.MethodPost, "/notify/transfer",
		`{"contract":"purpletoken","from":"alice","to":"stakepurple","quantity":"100.0000 PURPLE","memo":"for:bob"}`, "token-token")
	s.Equal(http.StatusOK, rec.Code)
}

func stakeOpts(opts ...staking.StakeFindAllOptionsFunc) staking.StakeFindAllOptions {
	res, _ := staking.GetStakeFindAllOptions(opts...)
	return res
}

func (s *HandlerTestSuite) TestPositions() {
	s.stake.On("Positions", mock.Anything, mock.MatchedBy(func(act staking.Action) bool { return len(act.Auth) == 0 }), domain.Name("alice"), mock.Anything).
		Run(func(args mock.Arguments) {
			o := stakeOpts(args.Get(3).(staking.StakeFindAllOptionsFunc))
			s.Equal(int32(0), *o.Offset)
			s.Equal(int32(20), *o.Limit)
			s.Nil(o.Code)
		}).
		Return([]staking.Position{}, nil).Once()

	rec := s.do(http.MethodGet, "/accounts/alice/stakes", "", "")
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/accounts/ALICE/stakes", "", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestPositionsFilteredAndPaged() {
	s.stake.On("Positions", mock.Anything, mock.Anything, domain.Name("alice"), mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			o := stakeOpts(args.Get(3).(staking.StakeFindAllOptionsFunc), args.Get(4).(staking.StakeFindAllOptionsFunc))
			s.Equal(int32(5), *o.Offset)
			s.Equal(int32(100), *o.Limit)
			s.Equal("PURPLE", *o.Code)
		}).
		Return([]staking.Position{}, nil).Once()

	rec := s.do(http.MethodGet, "/accounts/alice/stakes?symbol=PURPLE&offset=5&limit=500", "", "")
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/accounts/alice/stakes?symbol=purple", "", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestPositionsOptionalToken() {
	s.auth.On("ParseToken", mock.Anything, "alice-token").Return(domain.Name("alice"), nil).Once()
	s.stake.On("Positions", mock.Anything, mock.MatchedBy(func(act staking.Action) bool {
		return len(act.Auth) == 1 && act.Auth[0] == "alice"
	}), domain.Name("alice"), mock.Anything).Return([]staking.Position{}, nil).Once()

	rec := s.do(http.MethodGet, "/accounts/alice/stakes", "", "alice-token")
	s.Equal(http.StatusOK, rec.Code)

	s.auth.On("ParseToken", mock.Anything, "forged").Return(domain.Name(""), domain.ErrAuthorization).Once()
	rec = s.do(http.MethodGet, "/accounts/alice/stakes", "", "forged")
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
